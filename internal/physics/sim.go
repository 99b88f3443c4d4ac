package physics

import (
	"context"
	"fmt"
	"math"
	"time"
)

// Options control how a run is paced.
type Options struct {
	// Realtime sleeps one timestep between frames so the plot animates.
	Realtime bool
}

// Simulate integrates a bouncing projectile with explicit Euler steps and
// streams the trajectory to out, one KindPlot message per frame, followed by
// a KindDone summary. Drag is linear in velocity. Hitting the ground
// reflects the vertical velocity scaled by the reflection coefficient.
//
// Cancellation is checked between frames; a frame in progress completes.
func Simulate(ctx context.Context, p Params, opts Options, out chan<- Message) error {
	n := math.Ceil(p.TotalTime / p.Timestep)
	if math.IsNaN(n) || n > MaxFrames {
		return fmt.Errorf("%w: %g frames, at most %d", ErrBadParams, n, MaxFrames)
	}
	frames := max(int(n), 1)
	dt := p.Timestep

	s := make([]Vec, frames)
	v := make([]Vec, frames)
	a := make([]Vec, frames)
	f := make([]Vec, frames)

	s[0] = Vec{X: 0, Y: p.Height}
	v[0] = p.Velocity
	a[0] = p.Gravity
	f[0] = v[0].abs().scale(-p.Drag)

	for i := 1; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		s[i] = s[i-1].add(v[i-1].scale(dt))
		v[i] = v[i-1].add(a[i-1].scale(dt))
		a[i] = a[i-1].add(f[i-1])
		f[i] = v[i].abs().scale(-p.Drag)

		if s[i].Y <= 0 {
			v[i].Y = -p.Reflection * v[i-1].Y
			s[i].Y = 0
		}

		xs, ys := trajectory(s[:i+1])
		if err := send(ctx, out, Message{Kind: KindPlot, X: xs, Y: ys}); err != nil {
			return err
		}

		if opts.Realtime {
			if err := sleep(ctx, time.Duration(dt*float64(time.Second))); err != nil {
				return err
			}
		}
	}

	return send(ctx, out, Message{Kind: KindDone, Summary: summarize(s, v, a)})
}

func summarize(s, v, a []Vec) Summary {
	var sum Summary
	vi, ai := 0, 0
	for i := range s {
		if n := v[i].norm(); n > sum.MaxVelocity {
			sum.MaxVelocity, vi = n, i
		}
		if n := a[i].norm(); n > sum.MaxAccel {
			sum.MaxAccel, ai = n, i
		}
	}
	sum.MaxVelocityAt = s[vi]
	sum.MaxAccelAt = s[ai]
	return sum
}

func trajectory(s []Vec) (xs, ys []float64) {
	xs = make([]float64, len(s))
	ys = make([]float64, len(s))
	for i, p := range s {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}

func send(ctx context.Context, out chan<- Message, msg Message) error {
	select {
	case out <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
