package widgets

import (
	"strconv"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"gwen/internal/layout"
)

// Input is a single-line editable text field.
type Input struct {
	base
	entry  *widget.Entry
	object fyne.CanvasObject
}

func NewInput(id, def string, span layout.Span, width float32) *Input {
	e := widget.NewEntry()
	e.SetText(def)
	return &Input{
		base:   newBase(id, span),
		entry:  e,
		object: fixed(e, fyne.NewSize(width, 0)),
	}
}

func (i *Input) SetText(text string) { i.entry.SetText(text) }

func (i *Input) Value() (any, error) { return i.entry.Text, nil }

func (i *Input) CanvasObject() fyne.CanvasObject { return i.object }

// Indicator is a read-only text field the application writes to.
type Indicator struct {
	Input
}

func NewIndicator(id, def string, span layout.Span, width float32) *Indicator {
	in := NewInput(id, def, span, width)
	in.entry.Disable()
	return &Indicator{Input: *in}
}

// TextBox is a multi-line editable text area.
type TextBox struct {
	base
	entry *widget.Entry
}

func NewTextBox(id, def string, span layout.Span) *TextBox {
	e := widget.NewMultiLineEntry()
	e.SetText(def)
	return &TextBox{base: newBase(id, span), entry: e}
}

func (t *TextBox) Value() (any, error) { return t.entry.Text, nil }

func (t *TextBox) CanvasObject() fyne.CanvasObject { return t.entry }

// LogBox is an append-only scrolling log.
type LogBox struct {
	base
	label  *widget.Label
	scroll *container.Scroll

	mu    sync.Mutex
	lines []string
}

func NewLogBox(id string, span layout.Span, size fyne.Size) *LogBox {
	l := widget.NewLabel("")
	l.Wrapping = fyne.TextWrapWord
	s := container.NewVScroll(l)
	s.SetMinSize(size)
	return &LogBox{base: newBase(id, span), label: l, scroll: s}
}

// Append adds message as a new line and scrolls to it.
func (l *LogBox) Append(message string) {
	l.mu.Lock()
	l.lines = append(l.lines, strings.TrimRight(message, "\n"))
	text := strings.Join(l.lines, "\n")
	l.mu.Unlock()

	l.label.SetText(text)
	l.scroll.ScrollToBottom()
}

func (l *LogBox) Value() (any, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return strings.Join(l.lines, "\n"), nil
}

func (l *LogBox) CanvasObject() fyne.CanvasObject { return l.scroll }

// Label is static text. Its value is the text.
type Label struct {
	base
	label *widget.Label
}

func NewLabel(id, text string, span layout.Span) *Label {
	l := widget.NewLabelWithStyle(text, fyne.TextAlignCenter, fyne.TextStyle{})
	return &Label{base: newBase(id, span), label: l}
}

// NewSpace returns a blank 1x1 label used to pad the grid.
func NewSpace() *Label {
	return NewLabel("", "", layout.One)
}

func (l *Label) SetText(text string) { l.label.SetText(text) }

func (l *Label) Value() (any, error) { return l.label.Text, nil }

func (l *Label) CanvasObject() fyne.CanvasObject { return l.label }

// SpinBox is a numeric entry with step buttons.
type SpinBox struct {
	base
	entry  *widget.Entry
	step   float64
	object fyne.CanvasObject
}

func NewSpinBox(id string, def, step float64, span layout.Span) *SpinBox {
	if step == 0 {
		step = 1
	}
	s := &SpinBox{base: newBase(id, span), entry: widget.NewEntry(), step: step}
	s.entry.SetText(formatFloat(def))

	up := widget.NewButtonWithIcon("", theme.MoveUpIcon(), func() { s.Step(1) })
	down := widget.NewButtonWithIcon("", theme.MoveDownIcon(), func() { s.Step(-1) })
	s.object = container.NewBorder(nil, nil, nil, container.NewVBox(up, down), s.entry)
	return s
}

// Step moves the value by n steps. Non-numeric text restarts from zero.
func (s *SpinBox) Step(n int) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s.entry.Text), 64)
	if err != nil {
		v = 0
	}
	s.entry.SetText(formatFloat(v + float64(n)*s.step))
}

func (s *SpinBox) Value() (any, error) { return s.entry.Text, nil }

func (s *SpinBox) CanvasObject() fyne.CanvasObject { return s.object }

// Slider picks a number between lower and upper. Its value is the number as text.
type Slider struct {
	base
	slider *widget.Slider
}

func NewSlider(id string, lower, upper float64, span layout.Span) *Slider {
	return &Slider{base: newBase(id, span), slider: widget.NewSlider(lower, upper)}
}

func (s *Slider) SetValue(v float64) { s.slider.SetValue(v) }

func (s *Slider) Value() (any, error) { return formatFloat(s.slider.Value), nil }

func (s *Slider) CanvasObject() fyne.CanvasObject { return s.slider }

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
