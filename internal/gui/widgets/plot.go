package widgets

import (
	"image/color"
	"math"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"gwen/internal/layout"
)

// DefaultPlotSpan is the grid area a plot takes when none is given.
var DefaultPlotSpan = layout.Span{Rows: 4, Cols: 4}

var seriesColors = []color.Color{
	color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	color.NRGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	color.NRGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	color.NRGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
}

// Plot draws one or more line series against a shared x axis.
type Plot struct {
	widget.BaseWidget
	base

	Title  string
	XLabel string
	YLabel string
	size   fyne.Size

	mu     sync.RWMutex
	x      []float64
	series [][]float64
	colors []color.Color
}

// NewPlot creates an empty plot. labels holds the title, x label and y label
// in that order; missing entries stay blank.
func NewPlot(id string, labels []string, span layout.Span, size fyne.Size) *Plot {
	if span.Rows < 1 || span.Cols < 1 {
		span = DefaultPlotSpan
	}
	p := &Plot{base: newBase(id, span), size: size}
	for i, l := range labels {
		switch i {
		case 0:
			p.Title = l
		case 1:
			p.XLabel = l
		case 2:
			p.YLabel = l
		}
	}
	p.ExtendBaseWidget(p)
	return p
}

// Update replaces the plotted data. Each series is drawn against x up to the
// shorter of the two lengths.
func (p *Plot) Update(x []float64, ys ...[]float64) {
	p.mu.Lock()
	p.x = append(p.x[:0], x...)
	p.series = p.series[:0]
	for _, y := range ys {
		p.series = append(p.series, append([]float64(nil), y...))
	}
	p.mu.Unlock()
	p.Refresh()
}

// SetColors sets the line colours, used in turn for each series. With none
// set the plot cycles through its default palette.
func (p *Plot) SetColors(colors ...color.Color) {
	p.mu.Lock()
	p.colors = append(p.colors[:0:0], colors...)
	p.mu.Unlock()
	p.Refresh()
}

// SeriesColor returns the colour series i is drawn in.
func (p *Plot) SeriesColor(i int) color.Color {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.seriesColor(i)
}

// seriesColor expects mu held.
func (p *Plot) seriesColor(i int) color.Color {
	if len(p.colors) > 0 {
		return p.colors[i%len(p.colors)]
	}
	return seriesColors[i%len(seriesColors)]
}

// Points returns how many samples each series holds.
func (p *Plot) Points() []int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	n := make([]int, len(p.series))
	for i, y := range p.series {
		n[i] = min(len(p.x), len(y))
	}
	return n
}

func (p *Plot) Value() (any, error) { return nil, ErrNoValue }

func (p *Plot) CanvasObject() fyne.CanvasObject { return p }

func (p *Plot) MinSize() fyne.Size {
	p.ExtendBaseWidget(p)
	return p.BaseWidget.MinSize().Max(p.size)
}

func (p *Plot) CreateRenderer() fyne.WidgetRenderer {
	r := &plotRenderer{
		plot:   p,
		frame:  canvas.NewRectangle(color.Transparent),
		title:  canvas.NewText("", theme.Color(theme.ColorNameForeground)),
		xLabel: canvas.NewText("", theme.Color(theme.ColorNameForeground)),
		yLabel: canvas.NewText("", theme.Color(theme.ColorNameForeground)),
	}
	r.frame.StrokeColor = theme.Color(theme.ColorNameForeground)
	r.frame.StrokeWidth = 1
	r.title.TextStyle = fyne.TextStyle{Bold: true}
	r.title.Alignment = fyne.TextAlignCenter
	r.xLabel.Alignment = fyne.TextAlignCenter
	r.xLabel.TextSize = theme.CaptionTextSize()
	r.yLabel.TextSize = theme.CaptionTextSize()
	r.sync()
	return r
}

type plotRenderer struct {
	plot   *Plot
	frame  *canvas.Rectangle
	title  *canvas.Text
	xLabel *canvas.Text
	yLabel *canvas.Text
	lines  []*canvas.Line
	size   fyne.Size
}

func (r *plotRenderer) Destroy() {}

func (r *plotRenderer) MinSize() fyne.Size {
	return fyne.NewSize(120, 90)
}

func (r *plotRenderer) Objects() []fyne.CanvasObject {
	objs := []fyne.CanvasObject{r.frame, r.title, r.xLabel, r.yLabel}
	for _, l := range r.lines {
		objs = append(objs, l)
	}
	return objs
}

func (r *plotRenderer) Layout(size fyne.Size) {
	r.size = size
	pad := theme.Padding()
	th := r.title.MinSize().Height
	lh := r.xLabel.MinSize().Height

	r.title.Move(fyne.NewPos(0, 0))
	r.title.Resize(fyne.NewSize(size.Width, th))
	r.yLabel.Move(fyne.NewPos(pad, th))
	r.xLabel.Move(fyne.NewPos(0, size.Height-lh))
	r.xLabel.Resize(fyne.NewSize(size.Width, lh))

	area := r.area()
	r.frame.Move(area.Position)
	r.frame.Resize(area.Size)
	r.placeLines(area)
}

type plotArea struct {
	Position fyne.Position
	Size     fyne.Size
}

func (r *plotRenderer) area() plotArea {
	pad := theme.Padding()
	top := r.title.MinSize().Height + r.yLabel.MinSize().Height + pad
	bottom := r.xLabel.MinSize().Height + pad
	w := max(r.size.Width-2*pad, 1)
	h := max(r.size.Height-top-bottom, 1)
	return plotArea{Position: fyne.NewPos(pad, top), Size: fyne.NewSize(w, h)}
}

// placeLines maps the data onto the plot area, one segment per sample pair.
func (r *plotRenderer) placeLines(area plotArea) {
	r.plot.mu.RLock()
	defer r.plot.mu.RUnlock()

	xmin, xmax, ymin, ymax := bounds(r.plot.x, r.plot.series)
	sx := float64(area.Size.Width) / (xmax - xmin)
	sy := float64(area.Size.Height) / (ymax - ymin)
	toPos := func(x, y float64) fyne.Position {
		return fyne.NewPos(
			area.Position.X+float32((x-xmin)*sx),
			area.Position.Y+area.Size.Height-float32((y-ymin)*sy),
		)
	}

	i := 0
	for s, y := range r.plot.series {
		n := min(len(r.plot.x), len(y))
		for k := 1; k < n; k++ {
			if i < len(r.lines) {
				l := r.lines[i]
				l.Position1 = toPos(r.plot.x[k-1], y[k-1])
				l.Position2 = toPos(r.plot.x[k], y[k])
				l.StrokeColor = r.plot.seriesColor(s)
				l.Hidden = false
			}
			i++
		}
	}
	for ; i < len(r.lines); i++ {
		r.lines[i].Hidden = true
	}
}

func (r *plotRenderer) Refresh() {
	r.sync()
	canvas.Refresh(r.plot)
}

// sync copies the plot's labels and grows the segment pool to fit its data.
func (r *plotRenderer) sync() {
	p := r.plot
	r.title.Text = p.Title
	r.xLabel.Text = p.XLabel
	r.yLabel.Text = p.YLabel

	p.mu.RLock()
	segments := 0
	for _, y := range p.series {
		segments += max(min(len(p.x), len(y))-1, 0)
	}
	p.mu.RUnlock()
	for len(r.lines) < segments {
		l := canvas.NewLine(seriesColors[0])
		l.StrokeWidth = 2
		r.lines = append(r.lines, l)
	}

	if r.size.Width > 0 && r.size.Height > 0 {
		r.Layout(r.size)
	}
}

// bounds returns the data range over x and every series, widened so neither
// axis has zero length.
func bounds(x []float64, series [][]float64) (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, y := range series {
		n := min(len(x), len(y))
		for k := 0; k < n; k++ {
			xmin, xmax = math.Min(xmin, x[k]), math.Max(xmax, x[k])
			ymin, ymax = math.Min(ymin, y[k]), math.Max(ymax, y[k])
		}
	}
	if math.IsInf(xmin, 1) {
		return 0, 1, 0, 1
	}
	if xmax == xmin {
		xmin, xmax = xmin-0.5, xmax+0.5
	}
	if ymax == ymin {
		ymin, ymax = ymin-0.5, ymax+0.5
	}
	return xmin, xmax, ymin, ymax
}
