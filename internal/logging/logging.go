// Package logging holds the process-wide zap logger used by the quotation
// service, the storage adapters and the HTTP API.
//
// Log output never shares a stream with the interactive menu: it defaults to
// stderr at warn level, and --verbose lowers it to debug.
package logging

import (
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger. It is never nil.
var Logger *zap.Logger

// Config selects level, encoding and destination of the log stream
type Config struct {
	// Level is a zap level name; unknown names fall back to warn
	Level string `json:"level"`

	// Format is "console" or "json"
	Format string `json:"format"`

	// Output is "stderr", "stdout" or a file path that is appended to
	Output string `json:"output"`

	// Development adds stack traces to error-level entries
	Development bool `json:"development"`
}

// DefaultConfig keeps quote sessions quiet unless something goes wrong
func DefaultConfig() Config {
	return Config{
		Level:  "warn",
		Format: "console",
		Output: "stderr",
	}
}

// Initialize replaces the global logger according to cfg
func Initialize(cfg Config) error {
	sink, err := openSink(cfg.Output)
	if err != nil {
		return err
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.WarnLevel
	}

	opts := []zap.Option{zap.AddCaller()}
	if cfg.Development {
		opts = append(opts, zap.Development(), zap.AddStacktrace(zapcore.ErrorLevel))
	}

	Logger = zap.New(zapcore.NewCore(newEncoder(cfg.Format), sink, level), opts...)
	return nil
}

func newEncoder(format string) zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "timestamp"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder

	if format == "json" {
		return zapcore.NewJSONEncoder(ec)
	}
	ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(ec)
}

func openSink(output string) (zapcore.WriteSyncer, error) {
	var w io.Writer
	switch output {
	case "", "stderr":
		w = os.Stderr
	case "stdout":
		w = os.Stdout
	default:
		f, err := os.OpenFile(output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
		w = f
	}
	return zapcore.AddSync(w), nil
}

// InitializeDefault resets the logger to DefaultConfig
func InitializeDefault() {
	_ = Initialize(DefaultConfig())
}

// Sync flushes buffered entries
func Sync() {
	_ = Logger.Sync()
}

// NewSession returns a logger whose entries carry a fresh session_id, so the
// estimates of one CLI run can be told apart in a shared log file.
func NewSession() (*zap.Logger, string) {
	id := uuid.NewString()
	return Logger.With(zap.String("session_id", id)), id
}

// Debug, Info, Warn and Error write through the global logger.

func Debug(msg string, fields ...zap.Field) { Logger.Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { Logger.Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { Logger.Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { Logger.Error(msg, fields...) }

func init() {
	InitializeDefault()
}
