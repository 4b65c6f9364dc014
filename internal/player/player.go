package player

import (
	"context"

	"github.com/genricoloni/mpdbar/internal/config"
	"github.com/genricoloni/mpdbar/internal/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Backend is a domain.Player with an explicit connection lifecycle
type Backend interface {
	domain.Player

	// Connect establishes the connection to the daemon
	Connect(ctx context.Context) error

	// Close releases the connection
	Close() error
}

// New creates the player backend selected by the configuration and ties its
// connection to the application lifecycle. A failed connection aborts startup.
func New(lc fx.Lifecycle, logger *zap.Logger, cfg domain.Config) domain.Player {
	var backend Backend
	switch cfg.GetBackend() {
	case config.BackendMPRIS:
		backend = NewMPRISPlayer(logger, cfg.GetMPRISPlayer())
	default:
		backend = NewMPDPlayer(logger, cfg.GetAddress(), cfg.GetPassword())
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return backend.Connect(ctx)
		},
		OnStop: func(ctx context.Context) error {
			if err := backend.Close(); err != nil {
				logger.Warn("Failed to close player connection", zap.Error(err))
			}
			return nil
		},
	})

	return backend
}
