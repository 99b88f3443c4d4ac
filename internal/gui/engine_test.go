package gui

import (
	"errors"
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gwen/internal/gui/widgets"
	"gwen/internal/layout"
	"gwen/internal/logger"
)

func newTestEngine(t *testing.T, opts layout.Options) *Engine {
	t.Helper()
	a := test.NewTempApp(t)
	e := NewEngine(a, "test", logger.NewNop(), opts)
	e.dispatch = func(f func()) { f() }
	return e
}

func placementOf(t *testing.T, e *Engine, l *layout.Layout, id string) layout.Placement {
	t.Helper()
	i, ok := e.builder.Registry().Index(id)
	require.True(t, ok, "widget %q registered", id)
	p, ok := l.Widgets()[i]
	require.True(t, ok, "widget %q placed", id)
	return p
}

func TestEngine_RowAndColumn(t *testing.T) {
	e := newTestEngine(t, layout.Options{})
	e.AddInput("a", "1")
	e.AddInput("b", "2")
	e.EndRow()
	e.AddInput("c", "3")
	e.EndRow()

	l, err := e.Build()
	require.NoError(t, err)
	assert.Equal(t, layout.Placement{Row: 0, Col: 0, RowSpan: 1, ColSpan: 1}, placementOf(t, e, l, "a"))
	assert.Equal(t, layout.Placement{Row: 0, Col: 1, RowSpan: 1, ColSpan: 1}, placementOf(t, e, l, "b"))
	assert.Equal(t, layout.Placement{Row: 1, Col: 0, RowSpan: 1, ColSpan: 1}, placementOf(t, e, l, "c"))
	assert.NotNil(t, e.Window().Content())
}

func TestEngine_BuildOnce(t *testing.T) {
	e := newTestEngine(t, layout.Options{})
	_, err := e.Layout()
	assert.ErrorIs(t, err, ErrNotBuilt)

	e.AddLabel("x", "hello")
	e.EndColumn()
	first, err := e.Build()
	require.NoError(t, err)

	e.AddLabel("late", "ignored")
	e.EndRow()
	second, err := e.Build()
	require.NoError(t, err)
	assert.Same(t, first, second)

	got, err := e.Layout()
	require.NoError(t, err)
	assert.Same(t, first, got)
}

func TestEngine_BuildReportsCompileError(t *testing.T) {
	e := newTestEngine(t, layout.Options{})
	e.StartGroup("open")
	e.AddInput("a", "")
	e.EndRow()

	_, err := e.Build()
	assert.ErrorIs(t, err, layout.ErrUnbalancedGroup)
}

func TestEngine_GroupAndTabsRender(t *testing.T) {
	e := newTestEngine(t, layout.Options{})
	e.StartGroup("Settings")
	e.AddCheckbox("on", "")
	e.AddComboBox("mode", []string{"a", "b"})
	e.EndRow()
	e.EndGroup()
	e.BeginTab("First")
	e.AddLogBox("log")
	e.EndColumn()
	e.BeginTab("Second")

	l, err := e.Build()
	require.NoError(t, err)
	require.True(t, l.Tabbed())
	require.Len(t, l.Tabs, 2)

	border, ok := e.Window().Content().(*fyne.Container)
	require.True(t, ok)
	var tabs *container.AppTabs
	for _, obj := range border.Objects {
		if at, ok := obj.(*container.AppTabs); ok {
			tabs = at
		}
	}
	require.NotNil(t, tabs)
	require.Len(t, tabs.Items, 2)
	assert.Equal(t, "First", tabs.Items[0].Text)
	assert.Equal(t, "Second", tabs.Items[1].Text)

	page, ok := tabs.Items[0].Content.(*fyne.Container)
	require.True(t, ok)
	require.Len(t, page.Objects, 1)
	card, ok := page.Objects[0].(*widget.Card)
	require.True(t, ok)
	assert.Equal(t, "Settings", card.Title)
}

func TestEngine_Captions(t *testing.T) {
	e := newTestEngine(t, layout.Options{})
	e.AddInput("height", "50")
	e.AddIndicator("speed", "", WithCaption("Speed [m/s]"))
	e.AddButton("go", "Go", nil)
	e.AddPlot("plot", nil)
	e.EndRow()

	text, err := e.Caption("height")
	require.NoError(t, err)
	assert.Equal(t, "height", text)

	text, err = e.Caption("speed")
	require.NoError(t, err)
	assert.Equal(t, "Speed [m/s]", text)

	_, err = e.Caption("go")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = e.Caption("plot")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEngine_Values(t *testing.T) {
	e := newTestEngine(t, layout.Options{})
	e.AddInput("n", " 42 ")
	e.AddInput("f", "2.5")
	e.AddInput("word", "abc")
	e.AddInput("blank", "  ")
	e.AddInput("yes", "true")
	tg := e.AddToggle("PLOT", "")
	e.AddPlot("plot", nil)
	e.EndRow()

	n, err := e.Int("n")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	f, err := e.Float("f")
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)

	_, err = e.Int("f")
	assert.ErrorIs(t, err, ErrNotNumber)

	_, err = e.Float("word")
	assert.ErrorIs(t, err, ErrNotNumber)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "word", pe.ID)
	assert.Equal(t, "abc", pe.Raw)
	assert.Equal(t, "float", pe.Want)

	_, err = e.Float("blank")
	assert.ErrorIs(t, err, ErrBlank)

	b, err := e.Bool("yes")
	require.NoError(t, err)
	assert.True(t, b)
	_, err = e.Bool("word")
	assert.ErrorIs(t, err, ErrNotBool)

	tg.SetOn(true)
	b, err = e.Bool("PLOT")
	require.NoError(t, err)
	assert.True(t, b)
	n, err = e.Int("PLOT")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	s, err := e.String("PLOT")
	require.NoError(t, err)
	assert.Equal(t, "true", s)

	_, err = e.String("plot")
	assert.ErrorIs(t, err, ErrWrongWidget)
	assert.ErrorIs(t, err, widgets.ErrNoValue)

	_, err = e.String("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	var le *LookupError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "missing", le.ID)

	_, err = e.String("")
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := e.Strings("n", "f")
	require.NoError(t, err)
	assert.Equal(t, []string{" 42 ", "2.5"}, all)
	_, err = e.Strings("n", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEngine_Updates(t *testing.T) {
	e := newTestEngine(t, layout.Options{})
	ind := e.AddIndicator("out", "")
	lb := e.AddLogBox("log")
	p := e.AddPlot("plot", []string{"t", "x", "y"})
	led := e.AddLED("led", nil)
	e.EndRow()

	require.NoError(t, e.UpdateIndicator("out", 3.5))
	v, _ := ind.Value()
	assert.Equal(t, "3.5", v)

	require.NoError(t, e.UpdateLog("log", "hello"))
	require.NoError(t, e.UpdateLog("log", 7))
	v, _ = lb.Value()
	assert.Equal(t, "hello\n7", v)

	require.NoError(t, e.UpdatePlot("plot", []float64{0, 1}, []float64{1, 2}))
	assert.Equal(t, []int{2}, p.Points())

	require.NoError(t, e.UpdateLED("led", true))
	assert.True(t, led.On())

	assert.ErrorIs(t, e.UpdatePlot("log", nil), ErrWrongWidget)
	assert.ErrorIs(t, e.UpdateLED("out", true), ErrWrongWidget)
	assert.ErrorIs(t, e.UpdateLog("nope", "x"), ErrNotFound)
	assert.ErrorIs(t, e.UpdateIndicator("plot", 1), ErrWrongWidget)
}

func TestEngine_SetStatus(t *testing.T) {
	e := newTestEngine(t, layout.Options{})
	e.SetStatus("Running")
	assert.Equal(t, "Running", e.status.Text)
}

func TestEngine_AddFileBoxRejectsUnknownType(t *testing.T) {
	e := newTestEngine(t, layout.Options{})
	_, err := e.AddFileBox("in", []string{"*.bin"}, "")
	assert.ErrorIs(t, err, widgets.ErrUnsupportedFileType)
	assert.Zero(t, e.builder.Registry().Len())
}

func TestEngine_AddFileBoxKeepsSpan(t *testing.T) {
	e := newTestEngine(t, layout.Options{})
	f, err := e.AddFileBox("in", []string{"*.csv"}, "", WithSpan(1, 3))
	require.NoError(t, err)
	assert.Equal(t, layout.Span{Rows: 1, Cols: 3}, f.Span())
	e.EndRow()

	l, err := e.Build()
	require.NoError(t, err)
	assert.Equal(t, layout.Placement{Row: 0, Col: 0, RowSpan: 1, ColSpan: 3}, placementOf(t, e, l, "in"))
}

func TestEngine_AddPlotWithColors(t *testing.T) {
	e := newTestEngine(t, layout.Options{})
	green := color.NRGBA{G: 0x80, A: 0xff}
	p := e.AddPlot("plot", nil, WithColors(green))
	assert.Equal(t, green, p.SeriesColor(0))
	assert.Equal(t, green, p.SeriesColor(3))
}

func TestEngine_ShowDialog(t *testing.T) {
	e := newTestEngine(t, layout.Options{})
	e.AddLabel("x", "x")
	e.EndRow()
	_, err := e.Build()
	require.NoError(t, err)

	d := e.ShowDialog("Oops", "Something happened", Critical)
	require.NotNil(t, d)
	d.Hide()
	assert.Equal(t, "critical", Critical.String())
	assert.Equal(t, "information", Information.String())
}

func rect(w, h float32) fyne.CanvasObject {
	r := canvas.NewRectangle(nil)
	r.SetMinSize(fyne.NewSize(w, h))
	return r
}

func TestSpanGrid_MinSizeAndLayout(t *testing.T) {
	cells := []layout.Placement{
		{Row: 0, Col: 0, RowSpan: 1, ColSpan: 1},
		{Row: 0, Col: 1, RowSpan: 1, ColSpan: 1},
		{Row: 1, Col: 0, RowSpan: 1, ColSpan: 2},
	}
	objs := []fyne.CanvasObject{rect(10, 20), rect(30, 10), rect(100, 5)}
	g := NewSpanGrid(cells, 0)

	// Columns 10 and 30 cannot hold the 100-wide spanning cell, so each grows by 30.
	assert.Equal(t, fyne.NewSize(100, 25), g.MinSize(objs))

	g.Layout(objs, fyne.NewSize(200, 45))
	// Extra 100 width and 20 height are shared evenly between tracks.
	assert.Equal(t, fyne.NewPos(0, 0), objs[0].Position())
	assert.Equal(t, fyne.NewSize(90, 30), objs[0].Size())
	assert.Equal(t, fyne.NewPos(90, 0), objs[1].Position())
	assert.Equal(t, fyne.NewSize(110, 30), objs[1].Size())
	assert.Equal(t, fyne.NewPos(0, 30), objs[2].Position())
	assert.Equal(t, fyne.NewSize(200, 15), objs[2].Size())
}

func TestSpanGrid_Padding(t *testing.T) {
	cells := []layout.Placement{
		{Row: 0, Col: 0, RowSpan: 2, ColSpan: 1},
		{Row: 0, Col: 1, RowSpan: 1, ColSpan: 1},
		{Row: 1, Col: 1, RowSpan: 1, ColSpan: 1},
	}
	objs := []fyne.CanvasObject{rect(10, 10), rect(10, 10), rect(10, 10)}
	g := NewSpanGrid(cells, 4)

	assert.Equal(t, fyne.NewSize(24, 24), g.MinSize(objs))
	g.Layout(objs, g.MinSize(objs))
	assert.Equal(t, fyne.NewSize(10, 24), objs[0].Size())
	assert.Equal(t, fyne.NewPos(14, 14), objs[2].Position())
}

func TestSpanGrid_Empty(t *testing.T) {
	g := NewSpanGrid(nil, 4)
	assert.Equal(t, fyne.NewSize(0, 0), g.MinSize(nil))
	g.Layout(nil, fyne.NewSize(10, 10))
}
