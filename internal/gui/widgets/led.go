package widgets

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"gwen/internal/layout"
)

var (
	LEDBlack  = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	LEDWhite  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	LEDBlue   = color.NRGBA{R: 0x73, G: 0xce, B: 0xf4, A: 0xff}
	LEDGreen  = color.NRGBA{R: 0x39, G: 0xff, B: 0x14, A: 0xff}
	LEDOrange = color.NRGBA{R: 0xff, G: 0xa5, B: 0x00, A: 0xff}
	LEDRed    = color.NRGBA{R: 0xf4, G: 0x36, B: 0x36, A: 0xff}

	ledOff = color.NRGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}
)

const DefaultLEDDiameter = 24

// LED is a round on/off indicator.
type LED struct {
	base
	circle *canvas.Circle
	object fyne.CanvasObject
	color  color.Color

	mu sync.Mutex
	on bool
}

func NewLED(id string, span layout.Span, c color.Color, diameter float32) *LED {
	if c == nil {
		c = LEDGreen
	}
	if diameter <= 0 {
		diameter = DefaultLEDDiameter
	}
	circle := canvas.NewCircle(ledOff)
	circle.StrokeColor = LEDBlack
	circle.StrokeWidth = 1

	return &LED{
		base:   newBase(id, span),
		circle: circle,
		object: container.NewGridWrap(fyne.NewSize(diameter, diameter), circle),
		color:  c,
	}
}

func (l *LED) SetOn(on bool) {
	l.mu.Lock()
	l.on = on
	l.mu.Unlock()

	if on {
		l.circle.FillColor = l.color
	} else {
		l.circle.FillColor = ledOff
	}
	l.circle.Refresh()
}

func (l *LED) On() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.on
}

func (l *LED) Value() (any, error) { return l.On(), nil }

func (l *LED) CanvasObject() fyne.CanvasObject { return l.object }
