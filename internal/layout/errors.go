package layout

import "errors"

var (
	// ErrSpanOverflow is returned when a strip claims more widgets than remain unplaced.
	ErrSpanOverflow = errors.New("strip claims more widgets than remain")

	// ErrUnbalancedGroup is returned for an EndGroup with no open group, or a group left open.
	ErrUnbalancedGroup = errors.New("unbalanced group")

	// ErrNestedGroup is returned when a group starts inside another group and nesting is disabled.
	ErrNestedGroup = errors.New("group started inside another group")

	// ErrUnknownDirective is returned for a directive kind the compiler does not handle.
	ErrUnknownDirective = errors.New("unknown directive")

	// ErrOverlap is returned by Grid.Validate when two cells share a grid slot.
	ErrOverlap = errors.New("overlapping placements")
)
