package widgets

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gwen/internal/layout"
)

func TestWidgets_ReportIDAndSpan(t *testing.T) {
	test.NewTempApp(t)

	in := NewInput("height", "50", layout.Span{Rows: 1, Cols: 2}, 100)
	assert.Equal(t, "height", in.ID())
	assert.Equal(t, layout.Span{Rows: 1, Cols: 2}, in.Span())

	lbl := NewLabel("note", "hello", layout.Span{})
	assert.Equal(t, layout.One, lbl.Span(), "zero span falls back to 1x1")

	p := NewPlot("plot", nil, layout.Span{}, fyne.NewSize(0, 0))
	assert.Equal(t, DefaultPlotSpan, p.Span())
}

func TestInput_ValueIsText(t *testing.T) {
	test.NewTempApp(t)

	in := NewInput("v", "1, 1", layout.One, 0)
	v, err := in.Value()
	require.NoError(t, err)
	assert.Equal(t, "1, 1", v)

	in.SetText("3")
	v, _ = in.Value()
	assert.Equal(t, "3", v)
}

func TestIndicator_IsReadOnly(t *testing.T) {
	test.NewTempApp(t)

	ind := NewIndicator("out", "0", layout.One, 80)
	assert.True(t, ind.entry.Disabled())

	ind.SetText("42")
	v, err := ind.Value()
	require.NoError(t, err)
	assert.Equal(t, "42", v)
}

func TestButton_HasNoValue(t *testing.T) {
	test.NewTempApp(t)

	tapped := 0
	b := NewButton("go", "Go", layout.One, fyne.NewSize(0, 0), func() { tapped++ })
	b.Tap()
	test.Tap(b.button)
	assert.Equal(t, 2, tapped)

	_, err := b.Value()
	assert.ErrorIs(t, err, ErrNoValue)
}

func TestToggle_LatchesAndFires(t *testing.T) {
	test.NewTempApp(t)

	tg := NewToggle("PLOT", "PLOT", layout.Span{Rows: 1, Cols: 2}, fyne.NewSize(150, 90))
	var seen []bool
	tg.OnToggled = func(on bool) { seen = append(seen, on) }

	test.Tap(tg.button)
	assert.True(t, tg.On())
	test.Tap(tg.button)
	assert.False(t, tg.On())
	assert.Equal(t, []bool{true, false}, seen)

	tg.SetOn(true)
	assert.Len(t, seen, 2, "SetOn does not fire OnToggled")
	v, err := tg.Value()
	require.NoError(t, err)
	assert.Equal(t, true, v)

	tg.SetRed(true)
	assert.Equal(t, widget.DangerImportance, tg.button.Importance)
	tg.SetRed(false)
	assert.Equal(t, widget.SuccessImportance, tg.button.Importance)
	tg.SetOn(false)
	assert.Equal(t, widget.MediumImportance, tg.button.Importance)
}

func TestLED_SwitchesColor(t *testing.T) {
	test.NewTempApp(t)

	led := NewLED("led", layout.One, nil, 0)
	assert.Equal(t, ledOff, led.circle.FillColor)

	led.SetOn(true)
	assert.Equal(t, LEDGreen, led.circle.FillColor)
	v, err := led.Value()
	require.NoError(t, err)
	assert.Equal(t, true, v)

	led.SetOn(false)
	assert.Equal(t, ledOff, led.circle.FillColor)
}

func TestChoices_Values(t *testing.T) {
	test.NewTempApp(t)

	cb := NewCheckbox("agree", "Agree", layout.One, 0)
	v, _ := cb.Value()
	assert.Equal(t, false, v)
	cb.SetChecked(true)
	v, _ = cb.Value()
	assert.Equal(t, true, v)

	rb := NewRadioButton("opt", "Option", layout.One)
	v, _ = rb.Value()
	assert.Equal(t, false, v)
	rb.SetSelected(true)
	v, _ = rb.Value()
	assert.Equal(t, true, v)

	combo := NewComboBox("mode", []string{"fast", "slow"}, layout.One, 0)
	combo.SetSelected("slow")
	v, _ = combo.Value()
	assert.Equal(t, "slow", v)
}

func TestLogBox_AppendsLines(t *testing.T) {
	test.NewTempApp(t)

	lb := NewLogBox("log", layout.Span{Rows: 2, Cols: 4}, fyne.NewSize(300, 200))
	lb.Append("first\n")
	lb.Append("second")

	v, err := lb.Value()
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond", v)
	assert.Equal(t, "first\nsecond", lb.label.Text)
}

func TestSpinBox_Steps(t *testing.T) {
	test.NewTempApp(t)

	s := NewSpinBox("n", 1, 0.5, layout.One)
	s.Step(3)
	v, _ := s.Value()
	assert.Equal(t, "2.5", v)

	s.entry.SetText("junk")
	s.Step(-1)
	v, _ = s.Value()
	assert.Equal(t, "-0.5", v)
}

func TestSlider_ValueIsText(t *testing.T) {
	test.NewTempApp(t)

	s := NewSlider("s", 0, 10, layout.One)
	s.SetValue(4)
	v, err := s.Value()
	require.NoError(t, err)
	assert.Equal(t, "4", v)
}

func TestFilterExtensions(t *testing.T) {
	exts, err := FilterExtensions([]string{"*.png", "*.csv", "*.jpg"})
	require.NoError(t, err)
	assert.Equal(t, []string{".csv", ".jpg", ".png", ".xpm"}, exts)

	exts, err = FilterExtensions(nil)
	require.NoError(t, err)
	assert.Empty(t, exts)

	_, err = FilterExtensions([]string{"*.exe"})
	assert.ErrorIs(t, err, ErrUnsupportedFileType)
}

func TestFileBox_RejectsUnknownType(t *testing.T) {
	a := test.NewTempApp(t)
	w := a.NewWindow("files")

	_, err := NewFileBox(w, "in", []string{"*.doc"}, "", layout.One)
	assert.ErrorIs(t, err, ErrUnsupportedFileType)

	f, err := NewFileBox(w, "in", []string{"*.txt"}, "", layout.Span{Rows: 1, Cols: 3})
	require.NoError(t, err)
	assert.Equal(t, layout.Span{Rows: 1, Cols: 3}, f.Span())
	assert.Equal(t, []string{".txt"}, f.Extensions())
	v, _ := f.Value()
	assert.Equal(t, "", v)
}

func TestScaleToFit(t *testing.T) {
	tests := []struct {
		name             string
		w, h, maxW, maxH int
		wantW, wantH     int
	}{
		{"wide", 400, 200, 100, 100, 100, 50},
		{"tall", 200, 400, 100, 100, 50, 100},
		{"grow", 50, 50, 100, 200, 100, 100},
		{"width only", 400, 200, 200, 0, 200, 100},
		{"unbounded", 30, 20, 0, 0, 30, 20},
		{"empty", 0, 0, 10, 10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := scaleToFit(tt.w, tt.h, tt.maxW, tt.maxH)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestPlot_UpdateAndLayout(t *testing.T) {
	test.NewTempApp(t)

	p := NewPlot("_Plot_", []string{"", "x (distance) [m]", "y (height) [m]"}, layout.Span{}, fyne.NewSize(300, 200))
	assert.Equal(t, "", p.Title)
	assert.Equal(t, "x (distance) [m]", p.XLabel)
	assert.Equal(t, "y (height) [m]", p.YLabel)

	_, err := p.Value()
	assert.ErrorIs(t, err, ErrNoValue)

	p.Update([]float64{0, 1, 2, 3}, []float64{5, 4, 2}, []float64{0, 1, 2, 3})
	assert.Equal(t, []int{3, 4}, p.Points())

	w := test.NewWindow(p)
	defer w.Close()
	w.Resize(fyne.NewSize(320, 240))

	r := test.WidgetRenderer(p).(*plotRenderer)
	visible := 0
	for _, l := range r.lines {
		if !l.Hidden {
			visible++
		}
	}
	assert.Equal(t, 5, visible)

	p.Update(nil)
	visible = 0
	for _, l := range r.lines {
		if !l.Hidden {
			visible++
		}
	}
	assert.Zero(t, visible)
}

func TestPlot_Colors(t *testing.T) {
	test.NewTempApp(t)

	red := color.NRGBA{R: 0xff, A: 0xff}
	blue := color.NRGBA{B: 0xff, A: 0xff}
	p := NewPlot("p", nil, layout.Span{}, fyne.NewSize(100, 100))
	assert.Equal(t, seriesColors[1], p.SeriesColor(1), "default palette")

	p.SetColors(red, blue)
	assert.Equal(t, red, p.SeriesColor(0))
	assert.Equal(t, blue, p.SeriesColor(1))
	assert.Equal(t, red, p.SeriesColor(2))

	p.Update([]float64{0, 1}, []float64{0, 1}, []float64{1, 0})
	w := test.NewWindow(p)
	defer w.Close()
	w.Resize(fyne.NewSize(120, 120))

	r := test.WidgetRenderer(p).(*plotRenderer)
	require.Len(t, r.lines, 2)
	assert.Equal(t, red, r.lines[0].StrokeColor)
	assert.Equal(t, blue, r.lines[1].StrokeColor)
}

func TestBounds(t *testing.T) {
	xmin, xmax, ymin, ymax := bounds(nil, nil)
	assert.Equal(t, []float64{0, 1, 0, 1}, []float64{xmin, xmax, ymin, ymax})

	xmin, xmax, ymin, ymax = bounds([]float64{2}, [][]float64{{3}})
	assert.Equal(t, []float64{1.5, 2.5, 2.5, 3.5}, []float64{xmin, xmax, ymin, ymax})
}
