// Package zaplog adapts a zap.Logger to the observability.Logger interface so
// services can plug structured production logging into the pipeline without
// the library packages importing zap directly.
package zaplog

import (
	"go.uber.org/zap"

	"github.com/delamyth/timecard/observability"
)

type logger struct {
	z *zap.Logger
}

// New wraps a zap.Logger. A nil logger yields a NopLogger.
func New(z *zap.Logger) observability.Logger {
	if z == nil {
		return observability.NopLogger{}
	}
	return logger{z: z}
}

func (l logger) Debug(msg string, fields ...observability.Field) { l.z.Debug(msg, convert(fields)...) }
func (l logger) Info(msg string, fields ...observability.Field)  { l.z.Info(msg, convert(fields)...) }
func (l logger) Warn(msg string, fields ...observability.Field)  { l.z.Warn(msg, convert(fields)...) }
func (l logger) Error(msg string, fields ...observability.Field) { l.z.Error(msg, convert(fields)...) }

func (l logger) With(fields ...observability.Field) observability.Logger {
	return logger{z: l.z.With(convert(fields)...)}
}

func convert(fields []observability.Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		switch v := f.Value().(type) {
		case string:
			out = append(out, zap.String(f.Key(), v))
		case int:
			out = append(out, zap.Int(f.Key(), v))
		case float64:
			out = append(out, zap.Float64(f.Key(), v))
		case error:
			out = append(out, zap.NamedError(f.Key(), v))
		default:
			out = append(out, zap.Any(f.Key(), v))
		}
	}
	return out
}
