package timesheet

// Package timesheet interprets a document-analysis block list describing a
// scanned paper timesheet: it resolves the detected table, repairs common OCR
// misreads in punch times, pairs clock-in/clock-out times into intervals, and
// aggregates per-employee daily and weekly hours at quarter-hour granularity.
// The pipeline is a pure, synchronous transformation with no shared state;
// independent invocations may run concurrently without coordination.
