package worker

import (
	"context"
	"sync"
	"time"

	"fyne.io/fyne/v2"

	"gwen/internal/logger"
	"gwen/internal/physics"
)

const DefaultInterval = 50 * time.Millisecond

// Sink receives simulator output on the UI goroutine.
type Sink interface {
	Plot(x, y []float64)
	Log(text string)
	Done(summary physics.Summary)
}

// Pump drains the results channel and re-emits each message on the UI
// goroutine. Plot frames are coalesced: only the latest frame is drawn,
// at most once per interval. Log and done messages flush any pending frame
// first so ordering is preserved.
type Pump struct {
	results  <-chan physics.Message
	sink     Sink
	interval time.Duration
	log      logger.Logger
	dispatch func(func())

	stop chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

func NewPump(results <-chan physics.Message, sink Sink, interval time.Duration, log logger.Logger) *Pump {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Pump{
		results:  results,
		sink:     sink,
		interval: interval,
		log:      log,
		dispatch: fyne.Do,
		stop:     make(chan struct{}),
	}
}

// Start runs the pump on its own goroutine until ctx ends or Stop is called.
func (p *Pump) Start(ctx context.Context) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.Run(ctx)
	}()
}

// Run blocks until ctx is done, Stop is called or the results channel closes.
func (p *Pump) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	var pending *physics.Message
	flush := func() {
		if pending == nil {
			return
		}
		x, y := pending.X, pending.Y
		pending = nil
		p.dispatch(func() { p.sink.Plot(x, y) })
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stop:
			return
		case <-ticker.C:
			flush()
		case msg, ok := <-p.results:
			if !ok {
				flush()
				return
			}
			switch msg.Kind {
			case physics.KindPlot:
				m := msg
				pending = &m
			case physics.KindDone:
				flush()
				summary := msg.Summary
				p.dispatch(func() { p.sink.Done(summary) })
			case physics.KindLog:
				flush()
				text := msg.Text
				p.dispatch(func() { p.sink.Log(text) })
			default:
				p.log.Warning("Pump", "dropping message of unknown kind", map[string]interface{}{
					"kind": msg.Kind.String(),
				})
			}
		}
	}
}

func (p *Pump) Stop() {
	p.once.Do(func() { close(p.stop) })
	p.wg.Wait()
}

func (p *Pump) Shutdown() {
	p.Stop()
}
