package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/voxel-map/config"
)

const (
	// FileName is the active log file inside the log directory
	FileName = "voxel-map.log"
	// MaxLogSize triggers rotation of an existing log file at startup
	MaxLogSize = 10 * 1024 * 1024
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup returns a logger for cfg and the closer of its file
// Disabled logging yields a logger writing to io.Discard; the terminal is never written to
func Setup(cfg config.LogConfig) (zerolog.Logger, io.Closer, error) {
	if !cfg.Enabled {
		return zerolog.New(io.Discard).Level(zerolog.Disabled), nopCloser{}, nil
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	f, err := openLogFile(cfg.Dir)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	log := zerolog.New(f).Level(level).With().Timestamp().Logger()
	log.Info().Str("level", level.String()).Msg("logging started")
	return log, f, nil
}

// openLogFile creates dir, rotates an oversized log and opens the active file for append
func openLogFile(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if info, err := os.Stat(path); err == nil && info.Size() > MaxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("voxel-map-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(path, rotated); err != nil {
			return nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return f, nil
}
