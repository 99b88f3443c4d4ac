package main

import (
	"log"
	"os"
	"runtime"

	"gwen/internal/config"
	"gwen/internal/gui"
	"gwen/internal/layout"
	"gwen/internal/logger"
	"gwen/internal/physics"
	"gwen/internal/projectile"
	"gwen/internal/shutdown"
	"gwen/internal/worker"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Projectile Motion Simulator"
	AppID      = "io.gwen.projectile-motion"
	AppVersion = "1.0.0"
)

func main() {
	platform, err := config.CheckPlatform()
	if err != nil {
		log.Fatalf("Startup failed: %v", err)
	}

	cfg, err := config.Load(os.Getenv(config.EnvConfigPath))
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}
	appLogger := logger.NewConsoleLogger(level)

	appLogger.Info("Main", "application starting", map[string]interface{}{
		"version":    AppVersion,
		"platform":   platform,
		"go_version": runtime.Version(),
		"log_level":  level.String(),
	})

	fyneApp := app.NewWithID(AppID)
	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})

	title := cfg.Title
	if title == "" {
		title = AppName
	}
	engine := gui.NewEngine(fyneApp, title, appLogger, layout.Options{NestedGroups: cfg.NestedGroups})

	shutdownManager := shutdown.NewManager(appLogger, shutdown.DefaultTimeout)
	runner := worker.NewRunner(appLogger, worker.DefaultBuffer, physics.Options{
		Realtime: cfg.Projectile.RealtimePace,
	})

	sim := projectile.New(
		shutdownManager.Context(),
		engine,
		runner,
		projectile.ParamsFromConfig(cfg.Projectile),
		appLogger,
	)

	pump := worker.NewPump(runner.Results(), sim, cfg.PollInterval(), appLogger)
	pump.Start(shutdownManager.Context())

	shutdownManager.Register("pump", pump)
	shutdownManager.Register("runner", runner)
	shutdownManager.Listen(func() { fyne.Do(fyneApp.Quit) })

	if err := engine.Launch(shutdownManager.Shutdown); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}

	log.Println("Application terminated successfully")
}
