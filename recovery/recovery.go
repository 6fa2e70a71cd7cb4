// Package recovery defines how the interpretation pipeline reacts to
// malformed OCR fragments: skip them and keep going, or fail fast.
package recovery

// Strategy decides what to do when a fragment cannot be interpreted.
type Strategy interface {
	OnError(err error, location Location) Action
}

// Location pinpoints the fragment that failed.
type Location struct {
	Row       int
	Column    int
	Component string
	Fragment  string
}

// Components reported in Location.Component.
const (
	ComponentToken    = "token"
	ComponentInterval = "interval"
	ComponentDate     = "date"
)

type Action int

const (
	ActionFail Action = iota
	ActionSkip
)
