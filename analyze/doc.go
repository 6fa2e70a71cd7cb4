package analyze

// Package analyze defines abstraction layers for plugging document-analysis
// providers (for example, Tesseract or cloud table-detection services) into
// the timesheet pipeline. Providers emit a flat list of typed blocks with
// relationship metadata; the interfaces are intentionally small and
// transport-agnostic so engines can be backed by native libraries or remote
// APIs without leaking provider-specific concerns into callers.
