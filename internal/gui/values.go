package gui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gwen/internal/gui/widgets"
)

// value reads the raw value of the first widget registered under id.
func (e *Engine) value(id string) (any, error) {
	entry, ok := e.builder.Registry().Find(id)
	if !ok {
		return nil, &LookupError{ID: id}
	}
	v, err := entry.Value.Value()
	if errors.Is(err, widgets.ErrNoValue) {
		return nil, fmt.Errorf("widget %q: %w: %w", id, ErrWrongWidget, err)
	}
	if err != nil {
		return nil, fmt.Errorf("widget %q: %w", id, err)
	}
	return v, nil
}

// Int returns the widget's value as an integer. Booleans read as 1 and 0.
func (e *Engine) Int(id string) (int, error) {
	v, err := e.value(id)
	if err != nil {
		return 0, err
	}
	switch v := v.(type) {
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, &ParseError{ID: id, Raw: v, Want: "int", Err: ErrBlank}
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, &ParseError{ID: id, Raw: v, Want: "int", Err: ErrNotNumber}
		}
		return n, nil
	default:
		return 0, &ParseError{ID: id, Raw: fmt.Sprint(v), Want: "int", Err: ErrNotNumber}
	}
}

// Float returns the widget's value as a float. Booleans read as 1 and 0.
func (e *Engine) Float(id string) (float64, error) {
	v, err := e.value(id)
	if err != nil {
		return 0, err
	}
	switch v := v.(type) {
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, &ParseError{ID: id, Raw: v, Want: "float", Err: ErrBlank}
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, &ParseError{ID: id, Raw: v, Want: "float", Err: ErrNotNumber}
		}
		return f, nil
	default:
		return 0, &ParseError{ID: id, Raw: fmt.Sprint(v), Want: "float", Err: ErrNotNumber}
	}
}

// Bool returns the widget's value as a boolean. Text is parsed with
// strconv.ParseBool.
func (e *Engine) Bool(id string) (bool, error) {
	v, err := e.value(id)
	if err != nil {
		return false, err
	}
	switch v := v.(type) {
	case bool:
		return v, nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return false, &ParseError{ID: id, Raw: v, Want: "bool", Err: ErrBlank}
		}
		b, err := strconv.ParseBool(s)
		if err != nil {
			return false, &ParseError{ID: id, Raw: v, Want: "bool", Err: ErrNotBool}
		}
		return b, nil
	default:
		return false, &ParseError{ID: id, Raw: fmt.Sprint(v), Want: "bool", Err: ErrNotBool}
	}
}

// String returns the widget's value as text.
func (e *Engine) String(id string) (string, error) {
	v, err := e.value(id)
	if err != nil {
		return "", err
	}
	switch v := v.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return fmt.Sprint(v), nil
	}
}

// Strings reads the text of each id in order, stopping at the first error.
func (e *Engine) Strings(ids ...string) ([]string, error) {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		s, err := e.String(id)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
