package xtext

import "fmt"

// PositionError reports a position outside [0, Len] of the text an operation
// was applied to.
type PositionError struct {
	Op  string
	Pos int
	Len int
}

func (e PositionError) Error() string {
	return fmt.Sprintf("%s: position %d out of range [0,%d]", e.Op, e.Pos, e.Len)
}

// ArgumentError reports a pattern list whose declared or implied length does
// not fit its content.
type ArgumentError struct {
	Op     string
	Count  int
	Len    int
	Reason string
}

func (e ArgumentError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s (%d patterns)", e.Op, e.Reason, e.Len)
	}
	return fmt.Sprintf("%s: count %d does not fit %d patterns", e.Op, e.Count, e.Len)
}
