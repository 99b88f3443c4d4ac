// Package gui builds a fyne window from an ordered series of widget and
// layout calls. Widgets are registered as they are added, layout calls are
// recorded as directives, and Build compiles both into a grid once.
package gui

import (
	"fmt"
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"gwen/internal/gui/widgets"
	"gwen/internal/layout"
	"gwen/internal/logger"
)

const component = "Engine"

// Engine owns the window, the widget registry and the directive stream.
type Engine struct {
	app    fyne.App
	window fyne.Window
	log    logger.Logger
	opts   layout.Options

	builder *layout.Builder
	aligns  map[int]fyne.TextAlign
	status  *widget.Label

	mu     sync.Mutex
	layout *layout.Layout

	dispatch func(func())
}

func NewEngine(app fyne.App, title string, log logger.Logger, opts layout.Options) *Engine {
	return &Engine{
		app:      app,
		window:   app.NewWindow(title),
		log:      log,
		opts:     opts,
		builder:  layout.NewBuilder(),
		aligns:   make(map[int]fyne.TextAlign),
		status:   widget.NewLabel("Ready."),
		dispatch: fyne.Do,
	}
}

func (e *Engine) Window() fyne.Window { return e.window }

// Option adjusts how a widget is added.
type Option func(*addOptions)

type addOptions struct {
	span    layout.Span
	caption *string
	align   *fyne.TextAlign
	size    fyne.Size
	width   float32
	colors  []color.Color
}

// WithSpan sets the number of grid rows and columns the widget covers.
func WithSpan(rows, cols int) Option {
	return func(o *addOptions) { o.span = layout.Span{Rows: rows, Cols: cols} }
}

// WithCaption replaces the widget's caption. An empty caption removes it.
func WithCaption(text string) Option {
	return func(o *addOptions) { o.caption = &text }
}

// WithCaptionAlign aligns the caption text. Captions are centered by default.
func WithCaptionAlign(align fyne.TextAlign) Option {
	return func(o *addOptions) { o.align = &align }
}

// WithSize fixes the control's minimum size. Zero dimensions keep the natural size.
func WithSize(width, height float32) Option {
	return func(o *addOptions) { o.size = fyne.NewSize(width, height) }
}

// WithWidth fixes the control's minimum width.
func WithWidth(width float32) Option {
	return func(o *addOptions) { o.width = width }
}

// WithColors sets the line colours of a plot, one per curve in turn.
func WithColors(colors ...color.Color) Option {
	return func(o *addOptions) { o.colors = colors }
}

// HorizontalAlign gives a control without a caption a blank one, so it lines
// up with captioned neighbours on the same row.
func HorizontalAlign() Option {
	return WithCaption(" ")
}

func collect(span layout.Span, opts []Option) addOptions {
	o := addOptions{span: span}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// add registers w with its caption. def is the caption used when the caller
// gives none; empty means no caption.
func (e *Engine) add(w widgets.Widget, def string, o addOptions) {
	text := def
	if o.caption != nil {
		text = *o.caption
	}
	var caption *layout.Caption
	if text != "" {
		caption = &layout.Caption{ID: w.ID(), Text: text}
	}
	i := e.builder.Add(layout.Entry{ID: w.ID(), Span: w.Span(), Value: w}, caption)
	if o.align != nil {
		e.aligns[i] = *o.align
	}
	e.log.Debug(component, "widget added", map[string]interface{}{
		"index": i,
		"id":    w.ID(),
		"span":  fmt.Sprintf("%dx%d", w.Span().Rows, w.Span().Cols),
	})
}

func labelOr(label, id string) string {
	if label == "" {
		return id
	}
	return label
}

// AddButton adds a push button running onTap. The button shows label, or id
// when label is empty.
func (e *Engine) AddButton(id, label string, onTap func(), opts ...Option) *widgets.Button {
	o := collect(layout.One, opts)
	if o.size.IsZero() {
		o.size = fyne.NewSize(120, 25)
	}
	b := widgets.NewButton(id, labelOr(label, id), o.span, o.size, onTap)
	e.add(b, "", o)
	return b
}

// AddToggle adds a latching button. Its value is whether it is on.
func (e *Engine) AddToggle(id, label string, opts ...Option) *widgets.Toggle {
	o := collect(layout.One, opts)
	if o.size.IsZero() {
		o.size = fyne.NewSize(120, 20)
	}
	t := widgets.NewToggle(id, labelOr(label, id), o.span, o.size)
	e.add(t, "", o)
	return t
}

// AddLED adds an on/off indicator in c, captioned with its id.
func (e *Engine) AddLED(id string, c color.Color, opts ...Option) *widgets.LED {
	o := collect(layout.One, opts)
	l := widgets.NewLED(id, o.span, c, o.size.Width)
	e.add(l, id, o)
	return l
}

func (e *Engine) AddCheckbox(id, label string, opts ...Option) *widgets.Checkbox {
	o := collect(layout.One, opts)
	c := widgets.NewCheckbox(id, labelOr(label, id), o.span, o.width)
	e.add(c, "", o)
	return c
}

func (e *Engine) AddRadioButton(id, label string, opts ...Option) *widgets.RadioButton {
	o := collect(layout.One, opts)
	r := widgets.NewRadioButton(id, labelOr(label, id), o.span)
	e.add(r, "", o)
	return r
}

// AddIndicator adds a read-only text field, captioned with its id.
func (e *Engine) AddIndicator(id, def string, opts ...Option) *widgets.Indicator {
	o := collect(layout.One, opts)
	if o.width == 0 {
		o.width = 120
	}
	in := widgets.NewIndicator(id, def, o.span, o.width)
	e.add(in, id, o)
	return in
}

// AddInput adds an editable text field holding def, captioned with its id.
func (e *Engine) AddInput(id, def string, opts ...Option) *widgets.Input {
	o := collect(layout.One, opts)
	if o.width == 0 {
		o.width = 120
	}
	in := widgets.NewInput(id, def, o.span, o.width)
	e.add(in, id, o)
	return in
}

func (e *Engine) AddTextBox(id, def string, opts ...Option) *widgets.TextBox {
	o := collect(layout.One, opts)
	t := widgets.NewTextBox(id, def, o.span)
	e.add(t, id, o)
	return t
}

func (e *Engine) AddSpinBox(id string, def, step float64, opts ...Option) *widgets.SpinBox {
	o := collect(layout.One, opts)
	s := widgets.NewSpinBox(id, def, step, o.span)
	e.add(s, id, o)
	return s
}

func (e *Engine) AddSlider(id string, lower, upper float64, opts ...Option) *widgets.Slider {
	o := collect(layout.One, opts)
	s := widgets.NewSlider(id, lower, upper, o.span)
	e.add(s, id, o)
	return s
}

func (e *Engine) AddComboBox(id string, items []string, opts ...Option) *widgets.ComboBox {
	o := collect(layout.One, opts)
	c := widgets.NewComboBox(id, items, o.span, o.width)
	e.add(c, id, o)
	return c
}

// AddLogBox adds an append-only log. It spans 2x2 and is captioned with its
// id unless told otherwise.
func (e *Engine) AddLogBox(id string, opts ...Option) *widgets.LogBox {
	o := collect(layout.Span{Rows: 2, Cols: 2}, opts)
	if o.size.IsZero() {
		o.size = fyne.NewSize(200, 200)
	}
	l := widgets.NewLogBox(id, o.span, o.size)
	e.add(l, id, o)
	return l
}

// AddLabel adds static text. The label shows id when text is empty.
func (e *Engine) AddLabel(id, text string, opts ...Option) *widgets.Label {
	o := collect(layout.One, opts)
	l := widgets.NewLabel(id, labelOr(text, id), o.span)
	e.add(l, "", o)
	return l
}

// AddSpace adds a blank 1x1 cell.
func (e *Engine) AddSpace() *widgets.Label {
	s := widgets.NewSpace()
	e.add(s, "", collect(layout.One, nil))
	return s
}

// AddFileBox adds a button opening a file dialog filtered to filetypes,
// starting in dir.
func (e *Engine) AddFileBox(id string, filetypes []string, dir string, opts ...Option) (*widgets.FileBox, error) {
	o := collect(layout.One, opts)
	f, err := widgets.NewFileBox(e.window, id, filetypes, dir, o.span)
	if err != nil {
		return nil, fmt.Errorf("file box %q: %w", id, err)
	}
	e.add(f, "", o)
	return f, nil
}

// AddImage adds the picture at path scaled to fit within the given size,
// 100x100 by default.
func (e *Engine) AddImage(id, path string, opts ...Option) (*widgets.Image, error) {
	o := collect(layout.One, opts)
	if o.size.IsZero() {
		o.size = fyne.NewSize(100, 100)
	}
	img, err := widgets.NewImage(id, path, o.span, o.size)
	if err != nil {
		return nil, fmt.Errorf("image %q: %w", id, err)
	}
	e.add(img, "", o)
	return img, nil
}

// AddPlot adds a line plot. labels holds the title and the x and y axis
// labels. Plots span 4x4 by default and are never captioned; WithColors
// picks the curve colours.
func (e *Engine) AddPlot(id string, labels []string, opts ...Option) *widgets.Plot {
	o := collect(widgets.DefaultPlotSpan, opts)
	p := widgets.NewPlot(id, labels, o.span, o.size)
	if len(o.colors) > 0 {
		p.SetColors(o.colors...)
	}
	o.caption = nil
	e.add(p, "", o)
	return p
}

// EndRow lays out the widgets added since the last EndRow or EndColumn
// side by side on one row.
func (e *Engine) EndRow() { e.builder.EndRow() }

// EndColumn stacks the widgets added since the last EndRow or EndColumn
// in one column.
func (e *Engine) EndColumn() { e.builder.EndColumn() }

// NewRow starts the next strip below everything placed so far.
func (e *Engine) NewRow() { e.builder.NewRow() }

// NewColumn starts the next strip to the right of everything placed so far.
func (e *Engine) NewColumn() { e.builder.NewColumn() }

// BeginTab closes the grid built so far as a tab page called name.
func (e *Engine) BeginTab(name string) { e.builder.BeginTab(name) }

func (e *Engine) StartGroup(title string) { e.builder.StartGroup(title) }

// EndGroup closes the current group, sized to what it holds.
func (e *Engine) EndGroup() { e.builder.EndGroup(nil) }

// EndGroupSized closes the current group with an explicit size.
func (e *Engine) EndGroupSized(rows, cols int) {
	e.builder.EndGroup(&layout.Span{Rows: rows, Cols: cols})
}

// Widget returns the first widget registered under id.
func (e *Engine) Widget(id string) (widgets.Widget, error) {
	entry, ok := e.builder.Registry().Find(id)
	if !ok {
		return nil, &LookupError{ID: id}
	}
	w, ok := entry.Value.(widgets.Widget)
	if !ok {
		return nil, fmt.Errorf("widget %q: %w", id, ErrWrongWidget)
	}
	return w, nil
}

// Caption returns the caption text registered for id.
func (e *Engine) Caption(id string) (string, error) {
	c, ok := e.builder.Registry().FindCaption(id)
	if !ok {
		return "", &LookupError{ID: id}
	}
	return c.Text, nil
}

// Layout returns the compiled layout, or ErrNotBuilt before Build.
func (e *Engine) Layout() (*layout.Layout, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.layout == nil {
		return nil, ErrNotBuilt
	}
	return e.layout, nil
}

// Build compiles the recorded calls and sets the window content. Later calls
// return the first result; the layout is never recomputed.
func (e *Engine) Build() (*layout.Layout, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.layout != nil {
		return e.layout, nil
	}

	l, err := e.builder.Compile(e.opts)
	if err != nil {
		e.log.Error(component, err, map[string]interface{}{
			"directives": e.builder.Stream().Len(),
			"widgets":    e.builder.Registry().Len(),
		})
		return nil, fmt.Errorf("compile layout: %w", err)
	}

	if err := l.Validate(); err != nil {
		e.log.Warning(component, "layout has overlapping cells", map[string]interface{}{
			"error": err.Error(),
		})
	}
	if l.Unplaced > 0 {
		e.log.Warning(component, "widgets added after the last row or column are not shown", map[string]interface{}{
			"unplaced": l.Unplaced,
		})
	}
	e.log.Debug(component, "layout compiled", map[string]interface{}{
		"tabbed":  l.Tabbed(),
		"preview": "\n" + layout.Preview(l, e.builder.Registry()),
	})

	r := &renderer{reg: e.builder.Registry(), aligns: e.aligns}
	e.window.SetContent(container.NewBorder(nil, e.status, nil, nil, r.render(l)))
	e.layout = l
	return l, nil
}

// Launch builds the window, runs the application until the window closes and
// then calls cleanup.
func (e *Engine) Launch(cleanup func()) error {
	if _, err := e.Build(); err != nil {
		return err
	}
	e.log.Info(component, "window shown", map[string]interface{}{
		"title": e.window.Title(),
	})
	e.window.ShowAndRun()
	if cleanup != nil {
		cleanup()
	}
	return nil
}

// SetStatus shows text in the status line. Safe from any goroutine.
func (e *Engine) SetStatus(text string) {
	e.dispatch(func() { e.status.SetText(text) })
}
