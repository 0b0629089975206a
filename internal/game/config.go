package game

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/samdwyer/streamer/internal/config"
	"github.com/samdwyer/streamer/internal/save"
)

// Config holds game configuration options, read from STREAMER_* variables.
type Config struct {
	// SavePath overrides the save file location. Empty means the per-user
	// config directory.
	SavePath string `env:"STREAMER_SAVE_PATH"`

	// TickInterval is the period of the passive income tick.
	TickInterval time.Duration `env:"STREAMER_TICK_INTERVAL" envDefault:"1s"`

	// LogFile is where log output goes while the terminal is in use.
	// Empty means streamer.log next to the save file; "-" means stderr.
	LogFile string `env:"STREAMER_LOG_FILE"`

	// Telemetry enables OTLP trace export.
	Telemetry bool `env:"STREAMER_TELEMETRY" envDefault:"true"`
}

// LoadConfig reads Config from the environment and validates it.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings the game cannot run with.
func (c Config) Validate() error {
	if c.TickInterval <= 0 {
		return errors.New("tick interval must be positive")
	}
	return nil
}

// ResolveSavePath returns the configured save path or the platform default.
func (c Config) ResolveSavePath() (string, error) {
	if c.SavePath != "" {
		return c.SavePath, nil
	}
	return save.DefaultPath()
}

// ResolveLogPath returns the log file path, or "" for stderr.
func (c Config) ResolveLogPath(savePath string) string {
	switch c.LogFile {
	case "-":
		return ""
	case "":
		return filepath.Join(filepath.Dir(savePath), "streamer.log")
	default:
		return c.LogFile
	}
}
