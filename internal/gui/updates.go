package gui

import (
	"fmt"

	"gwen/internal/gui/widgets"
)

type textSetter interface {
	SetText(string)
}

// lookup finds id and checks it is a T.
func lookup[T any](e *Engine, id string) (T, error) {
	var zero T
	w, err := e.Widget(id)
	if err != nil {
		return zero, err
	}
	t, ok := w.(T)
	if !ok {
		return zero, fmt.Errorf("widget %q is %T: %w", id, w, ErrWrongWidget)
	}
	return t, nil
}

// UpdateIndicator sets the text of an indicator, input or label to v.
// The change is applied on the UI goroutine.
func (e *Engine) UpdateIndicator(id string, v any) error {
	w, err := lookup[textSetter](e, id)
	if err != nil {
		return err
	}
	text := fmt.Sprint(v)
	e.dispatch(func() { w.SetText(text) })
	return nil
}

// UpdateLog appends message to a log box.
func (e *Engine) UpdateLog(id string, message any) error {
	l, err := lookup[*widgets.LogBox](e, id)
	if err != nil {
		return err
	}
	text := fmt.Sprint(message)
	e.dispatch(func() { l.Append(text) })
	return nil
}

// UpdatePlot redraws a plot with the given data.
func (e *Engine) UpdatePlot(id string, x []float64, ys ...[]float64) error {
	p, err := lookup[*widgets.Plot](e, id)
	if err != nil {
		return err
	}
	e.dispatch(func() { p.Update(x, ys...) })
	return nil
}

// UpdateLED switches an LED on or off.
func (e *Engine) UpdateLED(id string, on bool) error {
	l, err := lookup[*widgets.LED](e, id)
	if err != nil {
		return err
	}
	e.dispatch(func() { l.SetOn(on) })
	return nil
}
