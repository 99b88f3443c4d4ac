package physics

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FieldCount is the number of raw fields a parameter message carries.
const FieldCount = 7

// MaxFrames caps ceil(total time / timestep), the number of samples a run
// allocates and streams.
const MaxFrames = 100_000

var (
	ErrMissingParams = errors.New("did not receive parameters")
	ErrBadParams     = errors.New("please input a number (float or int)")
)

// Vec is a 2-D vector.
type Vec struct {
	X, Y float64
}

func (v Vec) add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

func (v Vec) scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }

func (v Vec) abs() Vec { return Vec{math.Abs(v.X), math.Abs(v.Y)} }

func (v Vec) norm() float64 { return math.Hypot(v.X, v.Y) }

func (v Vec) String() string { return fmt.Sprintf("(%g, %g)", v.X, v.Y) }

// Params are the simulator inputs.
type Params struct {
	Height     float64
	Velocity   Vec
	Timestep   float64
	TotalTime  float64
	Drag       float64
	Reflection float64
	Gravity    Vec
}

// Fields renders the parameters in the order ParseParams expects.
func (p Params) Fields() []string {
	return []string{
		strconv.FormatFloat(p.Height, 'g', -1, 64),
		p.Velocity.String(),
		strconv.FormatFloat(p.Timestep, 'g', -1, 64),
		strconv.FormatFloat(p.TotalTime, 'g', -1, 64),
		strconv.FormatFloat(p.Drag, 'g', -1, 64),
		strconv.FormatFloat(p.Reflection, 'g', -1, 64),
		p.Gravity.String(),
	}
}

// ParseParams converts the seven raw fields: initial height, initial
// velocity pair, timestep, total time, drag, reflection coefficient and
// gravity pair. Pairs are written "(x, y)".
func ParseParams(fields []string) (Params, error) {
	if len(fields) != FieldCount {
		return Params{}, fmt.Errorf("%w: got %d fields, want %d", ErrMissingParams, len(fields), FieldCount)
	}

	var (
		p    Params
		errs []error
	)
	scalar := func(name, raw string, dst *float64) {
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || !finite(f) {
			errs = append(errs, fmt.Errorf("%s %q", name, raw))
			return
		}
		*dst = f
	}
	pair := func(name, raw string, dst *Vec) {
		v, err := ParsePair(raw)
		if err != nil || !finite(v.X) || !finite(v.Y) {
			errs = append(errs, fmt.Errorf("%s %q", name, raw))
			return
		}
		*dst = v
	}

	scalar("height", fields[0], &p.Height)
	pair("velocity", fields[1], &p.Velocity)
	scalar("timestep", fields[2], &p.Timestep)
	scalar("total time", fields[3], &p.TotalTime)
	scalar("drag", fields[4], &p.Drag)
	scalar("reflection", fields[5], &p.Reflection)
	pair("gravity", fields[6], &p.Gravity)

	if len(errs) > 0 {
		return Params{}, fmt.Errorf("%w: %w", ErrBadParams, errors.Join(errs...))
	}
	if p.Timestep <= 0 || p.TotalTime < p.Timestep {
		return Params{}, fmt.Errorf("%w: need 0 < timestep <= total time", ErrBadParams)
	}
	if frames := math.Ceil(p.TotalTime / p.Timestep); frames > MaxFrames {
		return Params{}, fmt.Errorf("%w: %g frames, at most %d", ErrBadParams, frames, MaxFrames)
	}
	return p, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ParsePair reads "(x, y)", "x, y" or "x y".
func ParsePair(raw string) (Vec, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	if len(parts) != 2 {
		return Vec{}, fmt.Errorf("expected two components in %q", raw)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return Vec{}, err
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Vec{}, err
	}
	return Vec{X: x, Y: y}, nil
}
