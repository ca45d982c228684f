package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls Init.
type Options struct {
	Level   string // trace|debug|info|warn(ing)|error; empty means info
	Verbose bool   // forces debug
	File    string // optional rotating log file
}

// Init configures the global zerolog logger: a console writer on stderr
// (coloured only when stderr is a terminal) plus an optional rotating file.
// The returned closer flushes the file sink and is safe to call when no file
// was configured.
func Init(opts Options) (io.Closer, error) {
	zerolog.SetGlobalLevel(ParseLevel(opts.Level, opts.Verbose))

	isTerminal := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !isTerminal,
	}

	writers := []io.Writer{console}
	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, err
		}
		file := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    16, // megabytes
			MaxBackups: 8,
			MaxAge:     90, // days
			Compress:   true,
		}
		writers = append(writers, file)
		closer = file
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().
		Timestamp().
		Logger()
	return closer, nil
}

// ParseLevel maps a level name to a zerolog level. verbose wins over name.
func ParseLevel(name string, verbose bool) zerolog.Level {
	if verbose {
		return zerolog.DebugLevel
	}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
