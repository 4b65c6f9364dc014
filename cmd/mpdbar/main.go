package main

import (
	"context"
	"fmt"
	"os"

	"github.com/genricoloni/mpdbar/internal/config"
	"github.com/genricoloni/mpdbar/internal/display"
	"github.com/genricoloni/mpdbar/internal/domain"
	"github.com/genricoloni/mpdbar/internal/player"
	"github.com/genricoloni/mpdbar/internal/terminal"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// AppOptions is the dependency graph shared by main and its tests
var AppOptions = fx.Options(
	// Logger configuration
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log}
	}),

	// Provide dependencies
	fx.Provide(
		newLogger,
		fx.Annotate(config.NewAppConfig, fx.As(new(domain.Config))),
		player.New,
		fx.Annotate(terminal.NewScreen, fx.As(new(domain.Terminal))),
		display.NewLoop,
	),
)

func main() {
	var (
		loop   *display.Loop
		logger *zap.Logger
	)

	app := fx.New(
		AppOptions,
		fx.Populate(&loop, &logger),
	)
	if err := app.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "mpdbar: %v\n", err)
		os.Exit(1)
	}

	// Connects to the player; an unreachable daemon is fatal
	startCtx, cancel := context.WithTimeout(context.Background(), app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		logger.Fatal("Error connecting to player", zap.Error(err))
	}

	// The loop owns the main goroutine until quit is pressed
	runErr := loop.Run()

	stopCtx, cancelStop := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil {
		logger.Warn("Failed to stop application cleanly", zap.Error(err))
	}

	if runErr != nil {
		logger.Fatal("Display loop aborted", zap.Error(runErr))
	}
}

// defaultLogLevel keeps info chatter off the status line unless asked for
const defaultLogLevel = "warn"

// newLogger creates a production zap logger writing to stderr.
// The level comes from MPDBAR_LOG_LEVEL since it is needed before AppConfig exists.
func newLogger() (*zap.Logger, error) {
	levelName := os.Getenv("MPDBAR_LOG_LEVEL")
	if levelName == "" {
		levelName = defaultLogLevel
	}

	level, err := zap.ParseAtomicLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = level
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger, nil
}
