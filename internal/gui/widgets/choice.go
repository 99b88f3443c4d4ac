package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"gwen/internal/layout"
)

// Checkbox holds a bool.
type Checkbox struct {
	base
	check  *widget.Check
	object fyne.CanvasObject
}

func NewCheckbox(id, label string, span layout.Span, width float32) *Checkbox {
	c := widget.NewCheck(label, nil)
	return &Checkbox{
		base:   newBase(id, span),
		check:  c,
		object: fixed(c, fyne.NewSize(width, 0)),
	}
}

func (c *Checkbox) SetChecked(checked bool) { c.check.SetChecked(checked) }

func (c *Checkbox) Value() (any, error) { return c.check.Checked, nil }

func (c *Checkbox) CanvasObject() fyne.CanvasObject { return c.object }

// RadioButton is a single selectable option; its value is whether it is selected.
type RadioButton struct {
	base
	label string
	radio *widget.RadioGroup
}

func NewRadioButton(id, label string, span layout.Span) *RadioButton {
	return &RadioButton{
		base:  newBase(id, span),
		label: label,
		radio: widget.NewRadioGroup([]string{label}, nil),
	}
}

func (r *RadioButton) SetSelected(selected bool) {
	if selected {
		r.radio.SetSelected(r.label)
	} else {
		r.radio.SetSelected("")
	}
}

func (r *RadioButton) Value() (any, error) { return r.radio.Selected == r.label, nil }

func (r *RadioButton) CanvasObject() fyne.CanvasObject { return r.radio }

// ComboBox is a drop-down whose value is the selected text.
type ComboBox struct {
	base
	sel    *widget.Select
	object fyne.CanvasObject
}

func NewComboBox(id string, items []string, span layout.Span, width float32) *ComboBox {
	s := widget.NewSelect(items, nil)
	if len(items) > 0 {
		s.SetSelected(items[0])
	}
	return &ComboBox{
		base:   newBase(id, span),
		sel:    s,
		object: fixed(s, fyne.NewSize(width, 0)),
	}
}

func (c *ComboBox) SetSelected(item string) { c.sel.SetSelected(item) }

func (c *ComboBox) Value() (any, error) { return c.sel.Selected, nil }

func (c *ComboBox) CanvasObject() fyne.CanvasObject { return c.object }
