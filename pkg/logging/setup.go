package logging

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

type LogOpts struct {
	// Level is the minimum level written. Verbose forces debug regardless.
	Level   zapcore.Level
	Verbose bool
	// Color is one of "auto" (default), "always"/"on" or "never"/"off". It only
	// applies to the console encoding.
	Color string
	// Encoding is "json" or "console" (default).
	Encoding string
}

func (opts LogOpts) Encoder() zapcore.Encoder {
	switch opts.Encoding {
	case "json":
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(cfg)

	case "console", "":
		useColor := false
		switch opts.Color {
		case "auto", "":
			useColor = term.IsTerminal(int(os.Stderr.Fd()))
		case "always", "on":
			useColor = true
		}

		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = TimeOffsetFormatter(time.Now(), useColor)
		if useColor {
			cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		return zapcore.NewConsoleEncoder(cfg)

	default:
		panic(fmt.Errorf("unknown encoding %q", opts.Encoding))
	}
}

func (opts LogOpts) NewCore(w zapcore.WriteSyncer) zapcore.Core {
	leveller := zap.NewAtomicLevelAt(opts.Level)
	if opts.Verbose {
		leveller.SetLevel(zap.DebugLevel)
	}
	return zapcore.NewCore(opts.Encoder(), w, leveller)
}

func (opts LogOpts) NewLogger() *zap.Logger {
	return zap.New(opts.NewCore(zapcore.Lock(os.Stderr)), zap.AddCaller())
}

// TimeOffsetFormatter returns a time encoder that formats the time as an offset from the start time.
// This is mostly useful for CLI logging not long-standing services as times beyond a few minutes will
// be less readable.
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
