// Package widgets holds the controls the engine can place on its grid. Each
// control carries its registry ID and grid span and exposes the fyne object
// the renderer places.
package widgets

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"gwen/internal/layout"
)

// ErrNoValue is returned by Value on controls that hold no value, such as
// plain buttons, images and plots.
var ErrNoValue = errors.New("widget has no value")

// Widget is a control the engine can register and place.
type Widget interface {
	layout.ValueHolder
	ID() string
	Span() layout.Span
	CanvasObject() fyne.CanvasObject
}

type base struct {
	id   string
	span layout.Span
}

func newBase(id string, span layout.Span) base {
	if span.Rows < 1 || span.Cols < 1 {
		span = layout.One
	}
	return base{id: id, span: span}
}

func (b base) ID() string { return b.id }

func (b base) Span() layout.Span { return b.span }

// fixed wraps obj in a container that reports size as its minimum. A zero
// size leaves obj unwrapped.
func fixed(obj fyne.CanvasObject, size fyne.Size) fyne.CanvasObject {
	if size.Width <= 0 && size.Height <= 0 {
		return obj
	}
	natural := obj.MinSize()
	if size.Width <= 0 {
		size.Width = natural.Width
	}
	if size.Height <= 0 {
		size.Height = natural.Height
	}
	return container.NewGridWrap(size, obj)
}
