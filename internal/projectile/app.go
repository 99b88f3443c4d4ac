// Package projectile is the bouncing-ball simulator window. It lays out the
// parameter inputs, a plot and a log with the gui engine and drives a worker
// runner from the PLOT toggle.
package projectile

import (
	"context"
	"image/color"

	"gwen/internal/config"
	"gwen/internal/gui"
	"gwen/internal/gui/widgets"
	"gwen/internal/logger"
	"gwen/internal/physics"
)

// Widget IDs. The inputs are listed in the order the simulator reads them.
const (
	IDHeight     = "Initial Height [m]"
	IDVelocity   = "  Initial Velocity\n(V_x, V_y) [m/s]"
	IDTimestep   = "Timestep dt [s]"
	IDTotalTime  = "Total time [s]"
	IDDrag       = "Drag"
	IDReflection = "Reflection coefficient"
	IDGravity    = "Gravity [m/s^2]"
	IDPlotToggle = "PLOT"
	IDPlot       = "_Plot_"

	plotText    = "PLOT"
	runningText = "Plotting..."
	gravityHint = "Ever wanted to try side gravity? --->\n   format: (side, -9.81)"
)

var plotColor = color.NRGBA{G: 0x80, A: 0xff}

var inputIDs = []string{IDHeight, IDVelocity, IDTimestep, IDTotalTime, IDDrag, IDReflection, IDGravity}

// Runner starts and stops simulation runs.
type Runner interface {
	Start(ctx context.Context, fields []string)
	Stop()
}

// App wires the simulator window to a runner. It implements worker.Sink.
type App struct {
	engine *gui.Engine
	runner Runner
	log    logger.Logger
	ctx    context.Context

	toggle *widgets.Toggle
	plot   *widgets.Plot
	logBox *widgets.LogBox
}

// ParamsFromConfig converts the configured starting values.
func ParamsFromConfig(p config.Projectile) physics.Params {
	return physics.Params{
		Height:     p.Height,
		Velocity:   physics.Vec{X: p.Velocity[0], Y: p.Velocity[1]},
		Timestep:   p.Timestep,
		TotalTime:  p.TotalTime,
		Drag:       p.Drag,
		Reflection: p.Reflection,
		Gravity:    physics.Vec{X: p.Gravity[0], Y: p.Gravity[1]},
	}
}

// New adds the simulator's widgets and layout calls to engine, with the
// inputs pre-filled from defaults. ctx bounds every run started from the window.
func New(ctx context.Context, engine *gui.Engine, runner Runner, defaults physics.Params, log logger.Logger) *App {
	a := &App{engine: engine, runner: runner, log: log, ctx: ctx}
	def := defaults.Fields()

	engine.StartGroup("Initial Conditions")
	engine.AddInput(IDHeight, def[0])
	engine.AddInput(IDVelocity, def[1])
	engine.EndRow()
	engine.EndGroup()

	engine.NewRow()
	engine.StartGroup("Parameters")
	engine.AddInput(IDTimestep, def[2])
	engine.AddInput(IDTotalTime, def[3])
	engine.EndRow()
	engine.AddInput(IDDrag, def[4])
	engine.AddInput(IDReflection, def[5])
	engine.EndRow()
	engine.AddSpace()
	engine.EndRow()
	engine.AddLabel("", gravityHint)
	engine.AddInput(IDGravity, def[6])
	engine.EndRow()
	engine.EndGroup()

	engine.NewRow()
	a.toggle = engine.AddToggle(IDPlotToggle, plotText, gui.WithSpan(1, 2), gui.WithSize(150, 90))
	a.toggle.OnToggled = a.onToggle
	engine.EndRow()

	engine.NewColumn()
	a.plot = engine.AddPlot(IDPlot, []string{"", "x (distance) [m]", "y (height) [m]"}, gui.WithColors(plotColor))
	a.logBox = engine.AddLogBox("", gui.WithSpan(2, 4), gui.WithSize(300, 200))
	engine.EndColumn()

	return a
}

func (a *App) onToggle(on bool) {
	if !on {
		a.runner.Stop()
		a.toggle.SetText(plotText)
		a.engine.SetStatus("Stopped.")
		return
	}

	a.toggle.SetText(runningText)
	a.engine.SetStatus("Running.")
	fields, err := a.engine.Strings(inputIDs...)
	if err != nil {
		a.log.Error("Projectile", err, nil)
		a.engine.ShowError(err)
		a.reset()
		return
	}
	a.runner.Start(a.ctx, fields)
}

func (a *App) reset() {
	a.toggle.SetOn(false)
	a.toggle.SetText(plotText)
}

// Plot draws the trajectory so far.
func (a *App) Plot(x, y []float64) {
	a.plot.Update(x, y)
}

// Log appends text to the log box. Rejected parameters end the run, so the
// toggle is released.
func (a *App) Log(text string) {
	a.logBox.Append(text)
	if a.toggle.On() && text != "" {
		a.reset()
		a.engine.SetStatus("Ready.")
	}
}

// Done releases the toggle and logs the run summary.
func (a *App) Done(summary physics.Summary) {
	a.reset()
	a.logBox.Append(summary.String())
	a.engine.SetStatus("Done.")
}
