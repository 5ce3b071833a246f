package logging

import (
	"fmt"
	"os"
	"time"

	prettyconsole "github.com/thessem/zap-prettyconsole"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

type LogOpts struct {
	Verbose bool
	// Color is one of "auto", "always"/"on" or "never"/"off".
	Color    string
	Encoding string
	// LogFileDir, when set, receives a daily DEBUG-level log file in addition to stderr.
	LogFileDir    string
	LogFilePrefix string
	// Service switches console timestamps from offsets to wall-clock time,
	// for long-running processes such as the webhook listener.
	Service       bool
	DefaultLevels map[string]zapcore.Level
}

func (opts LogOpts) useColor() bool {
	switch opts.Color {
	case "always", "on":
		return true
	case "never", "off":
		return false
	default:
		return term.IsTerminal(int(os.Stderr.Fd()))
	}
}

func (opts LogOpts) timeEncoder(color bool) zapcore.TimeEncoder {
	if opts.Service {
		return zapcore.ISO8601TimeEncoder
	}
	return TimeOffsetFormatter(time.Now(), color)
}

func (opts LogOpts) Encoder() zapcore.Encoder {
	switch opts.Encoding {
	case "json":
		if opts.Verbose {
			return zapcore.NewJSONEncoder(zap.NewDevelopmentEncoderConfig())
		}
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())

	case "console", "pretty_console", "":
		if color := opts.useColor(); color {
			cfg := prettyconsole.NewEncoderConfig()
			cfg.EncodeTime = opts.timeEncoder(true)
			return prettyconsole.NewEncoder(cfg)
		}
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = opts.timeEncoder(false)
		return zapcore.NewConsoleEncoder(cfg)

	default:
		panic(fmt.Errorf("unknown encoding %q", opts.Encoding))
	}
}

// fileEncoder is always plain text (or JSON) since log files are never a terminal.
func (opts LogOpts) fileEncoder() zapcore.Encoder {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if opts.Encoding == "json" {
		return zapcore.NewJSONEncoder(cfg)
	}
	return zapcore.NewConsoleEncoder(cfg)
}

func (opts LogOpts) levels() map[string]zapcore.Level {
	if levelEnv, ok := os.LookupEnv("LOG_LEVEL"); ok {
		return ParseLevels(levelEnv)
	}
	return opts.DefaultLevels
}

func (opts LogOpts) NewCore(w zapcore.WriteSyncer) zapcore.Core {
	leveller := zap.NewAtomicLevelAt(zap.InfoLevel)
	if opts.Verbose {
		leveller.SetLevel(zap.DebugLevel)
	}

	core := zapcore.NewCore(opts.Encoder(), w, leveller)
	if levels := opts.levels(); len(levels) > 0 {
		core = NewEntryLeveller(core, levels)
	}
	if opts.LogFileDir != "" {
		fileCore, err := NewDailyFileCore(opts.fileEncoder(), opts.LogFileDir, opts.LogFilePrefix)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not open log file in %s: %v\n", opts.LogFileDir, err)
			return core
		}
		core = zapcore.NewTee(core, fileCore)
	}
	return core
}

func (opts LogOpts) NewLogger() *zap.Logger {
	return zap.New(opts.NewCore(os.Stderr))
}

// TimeOffsetFormatter returns a time encoder that formats the time as an offset from the start time.
// Only useful for short CLI runs, see [LogOpts.Service].
func TimeOffsetFormatter(start time.Time, color bool) zapcore.TimeEncoder {
	var colStart = "\x1b[90m"
	var colEnd = "\x1b[0m"
	if !color {
		colStart = ""
		colEnd = ""
	}
	return func(t time.Time, e zapcore.PrimitiveArrayEncoder) {
		diff := t.Sub(start)
		switch {
		case diff < time.Second:
			e.AppendString(fmt.Sprintf(" %s%3dms%s", colStart, diff.Milliseconds(), colEnd))
		case diff < 5*time.Minute:
			e.AppendString(fmt.Sprintf("%s%5.1fs%s", colStart, diff.Seconds(), colEnd))
		default:
			e.AppendString(fmt.Sprintf("%s%5.1fm%s", colStart, diff.Minutes(), colEnd))
		}
	}
}
