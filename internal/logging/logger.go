package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	OutputStderr = "stderr"
	OutputStdout = "stdout"
	OutputFile   = "file"
)

// Config contains logger configuration.
type Config struct {
	// Level sets the logging level (debug, info, warn, error).
	Level string
	// Verbose lets debug lines through. Without it the level never drops
	// below info.
	Verbose bool
	// Pretty enables human-readable console output with colors.
	Pretty bool
	// Output selects stderr, stdout or a rotating file.
	Output string

	FilePath   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int

	// Writer overrides Output when set.
	Writer io.Writer
}

func DefaultConfig() Config {
	return Config{
		Level:      "info",
		Verbose:    false,
		Pretty:     true,
		Output:     OutputStderr,
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 28,
	}
}

// New creates a zerolog logger from cfg.
func New(cfg Config) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	output := cfg.Writer
	if output == nil {
		output = openOutput(cfg)
	}

	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: "15:04:05",
			NoColor:    cfg.Output == OutputFile,
		}
	}

	return zerolog.New(output).
		Level(ParseLevel(cfg.Level, cfg.Verbose)).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a level name to a zerolog level. Unknown names fall back to
// info. Verbose lowers the level to at least debug; without it the level is
// never below info.
func ParseLevel(name string, verbose bool) zerolog.Level {
	level := zerolog.InfoLevel
	switch strings.ToLower(name) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn", "warning":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	if verbose && level > zerolog.DebugLevel {
		return zerolog.DebugLevel
	}
	if !verbose && level < zerolog.InfoLevel {
		return zerolog.InfoLevel
	}
	return level
}

func openOutput(cfg Config) io.Writer {
	switch cfg.Output {
	case OutputStdout:
		return os.Stdout
	case OutputFile:
		if cfg.FilePath == "" {
			return os.Stderr
		}
		return &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSizeMB, // megabytes
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays, // days
			Compress:   true,
		}
	default:
		return os.Stderr
	}
}
