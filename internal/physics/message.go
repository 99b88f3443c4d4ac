package physics

import (
	"fmt"
	"strconv"
)

// Kind tags a message on the results channel.
type Kind int

const (
	KindLog Kind = iota
	KindPlot
	KindDone
)

func (k Kind) String() string {
	switch k {
	case KindLog:
		return "log"
	case KindPlot:
		return "plot"
	case KindDone:
		return "done"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Message is one result sent from the simulator to the UI.
// KindPlot carries the trajectory so far in X and Y, KindDone carries
// Summary, KindLog carries Text.
type Message struct {
	Kind    Kind
	Text    string
	X, Y    []float64
	Summary Summary
}

func LogMessage(text string) Message {
	return Message{Kind: KindLog, Text: text}
}

// Summary reports the peak velocity and acceleration magnitudes of a run
// and where they occurred.
type Summary struct {
	MaxVelocity   float64
	MaxVelocityAt Vec
	MaxAccel      float64
	MaxAccelAt    Vec
}

func (s Summary) String() string {
	return fmt.Sprintf("Magnitude Max Velocity of %s m/s occurred at (x,y) = (%s,%s) meters\n"+
		"Magnitude of Max Acceleration of %s m/s^2 occurred at (x,y) = (%s,%s) meters\n",
		short(s.MaxVelocity), short(s.MaxVelocityAt.X), short(s.MaxVelocityAt.Y),
		short(s.MaxAccel), short(s.MaxAccelAt.X), short(s.MaxAccelAt.Y))
}

func short(f float64) string {
	return strconv.FormatFloat(f, 'f', 3, 64)
}
