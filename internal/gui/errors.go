package gui

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound    = errors.New("widget not found")
	ErrNotNumber   = errors.New("not a number")
	ErrNotBool     = errors.New("not a boolean")
	ErrBlank       = errors.New("field is blank")
	ErrWrongWidget = errors.New("wrong widget type")
	ErrNotBuilt    = errors.New("layout not built")
)

// LookupError reports an ID that matches no registered widget.
type LookupError struct {
	ID string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("widget %q: %v", e.ID, ErrNotFound)
}

func (e *LookupError) Unwrap() error { return ErrNotFound }

// ParseError reports a widget value that could not be coerced to the
// requested type. Raw holds the text as read from the widget.
type ParseError struct {
	ID   string
	Raw  string
	Want string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("widget %q: cannot read %q as %s: %v", e.ID, e.Raw, e.Want, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
