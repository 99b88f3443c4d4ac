package widgets

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"gwen/internal/layout"
)

// Button runs a callback when tapped. It holds no value.
type Button struct {
	base
	button *widget.Button
	object fyne.CanvasObject
}

func NewButton(id, label string, span layout.Span, size fyne.Size, onTap func()) *Button {
	b := widget.NewButton(label, onTap)
	return &Button{
		base:   newBase(id, span),
		button: b,
		object: fixed(b, size),
	}
}

func (b *Button) Value() (any, error) { return nil, ErrNoValue }

func (b *Button) CanvasObject() fyne.CanvasObject { return b.object }

func (b *Button) SetText(text string) { b.button.SetText(text) }

// Tap runs the callback as if the button were tapped.
func (b *Button) Tap() {
	if b.button.OnTapped != nil {
		b.button.OnTapped()
	}
}

// Toggle is a button that latches on and off. It is highlighted while on,
// in red instead of green when SetRed is set.
type Toggle struct {
	base
	button *widget.Button
	object fyne.CanvasObject

	mu  sync.Mutex
	on  bool
	red bool

	// OnToggled runs after each tap with the new state.
	OnToggled func(on bool)
}

func NewToggle(id, label string, span layout.Span, size fyne.Size) *Toggle {
	t := &Toggle{base: newBase(id, span)}
	t.button = widget.NewButton(label, t.Toggle)
	t.object = fixed(t.button, size)
	return t
}

// Toggle flips the state and fires OnToggled.
func (t *Toggle) Toggle() {
	t.mu.Lock()
	t.on = !t.on
	on := t.on
	t.mu.Unlock()

	t.restyle()
	if t.OnToggled != nil {
		t.OnToggled(on)
	}
}

// SetOn changes the state without firing OnToggled.
func (t *Toggle) SetOn(on bool) {
	t.mu.Lock()
	t.on = on
	t.mu.Unlock()
	t.restyle()
}

func (t *Toggle) On() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.on
}

func (t *Toggle) SetRed(red bool) {
	t.mu.Lock()
	t.red = red
	t.mu.Unlock()
	t.restyle()
}

func (t *Toggle) SetText(text string) { t.button.SetText(text) }

func (t *Toggle) Text() string { return t.button.Text }

func (t *Toggle) Value() (any, error) { return t.On(), nil }

func (t *Toggle) CanvasObject() fyne.CanvasObject { return t.object }

func (t *Toggle) restyle() {
	t.mu.Lock()
	on, red := t.on, t.red
	t.mu.Unlock()

	switch {
	case on && red:
		t.button.Importance = widget.DangerImportance
	case on:
		t.button.Importance = widget.SuccessImportance
	default:
		t.button.Importance = widget.MediumImportance
	}
	t.button.Refresh()
}
