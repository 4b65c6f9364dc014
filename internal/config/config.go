package config

import (
	"os"
	"strings"

	"go.uber.org/zap"
)

const (
	// DefaultAddress is the well-known MPD endpoint
	DefaultAddress = "127.0.0.1:6600"
	defaultBackend = "mpd"
)

// Supported player backends
const (
	BackendMPD   = "mpd"
	BackendMPRIS = "mpris"
)

// AppConfig holds application configuration
type AppConfig struct {
	logger      *zap.Logger
	backend     string
	address     string
	password    string
	mprisPlayer string
}

// NewAppConfig creates a new application configuration instance
func NewAppConfig(logger *zap.Logger) *AppConfig {
	// Read from environment variables or use defaults
	backend := strings.ToLower(os.Getenv("MPDBAR_BACKEND"))
	switch backend {
	case BackendMPD, BackendMPRIS:
	case "":
		backend = defaultBackend
	default:
		logger.Warn("Unknown backend, falling back to default",
			zap.String("backend", backend),
			zap.String("default", defaultBackend))
		backend = defaultBackend
	}

	cfg := &AppConfig{
		logger:      logger,
		backend:     backend,
		address:     DefaultAddress,
		password:    os.Getenv("MPDBAR_PASSWORD"),
		mprisPlayer: os.Getenv("MPDBAR_MPRIS_PLAYER"),
	}

	logger.Info("Configuration loaded",
		zap.String("backend", cfg.backend),
		zap.String("address", cfg.address),
		zap.Bool("password", cfg.password != ""),
		zap.String("mprisPlayer", cfg.mprisPlayer))

	return cfg
}

// GetBackend returns the player backend name
func (c *AppConfig) GetBackend() string {
	return c.backend
}

// GetAddress returns the MPD network address
func (c *AppConfig) GetAddress() string {
	return c.address
}

// GetPassword returns the MPD password
func (c *AppConfig) GetPassword() string {
	return c.password
}

// GetMPRISPlayer returns the preferred MPRIS player bus name
func (c *AppConfig) GetMPRISPlayer() string {
	return c.mprisPlayer
}
