/*
Package zapadapter implements tracing with the zap logger.

Tracing/logging is a cross cutting concern. Packages of this module trace
through the schuko tracing facade; package zapadapter routes those traces
to a "go.uber.org/zap" logger. Register it before configuring tracing:

    tracing.RegisterTraceAdapter("zap", zapadapter.GetAdapter(), false)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package zapadapter

import (
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Tracer is our adapter implementation which implements interface
// tracing.Trace, using a zap logger.
type Tracer struct {
	log    *zap.Logger
	sugar  *zap.SugaredLogger
	level  tracing.TraceLevel
	fields []interface{}
}

// New creates a new Tracer instance based on a zap logger writing to
// os.Stderr.
func New() tracing.Trace {
	return NewWithLogger(zap.New(newCore(os.Stderr)))
}

// NewWithLogger creates a Tracer which logs to an existing zap logger.
// The logger's own level applies in addition to the trace level.
func NewWithLogger(log *zap.Logger) *Tracer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Tracer{
		log:   log,
		sugar: log.Sugar(),
		level: tracing.LevelInfo,
	}
}

// GetAdapter returns an adapter (i.e., factory for tracing.Trace) to
// be used to initialize (global) tracers.
func GetAdapter() tracing.Adapter {
	return New
}

// Logger returns the underlying zap logger.
func (t *Tracer) Logger() *zap.Logger {
	return t.log
}

func newCore(w io.Writer) zapcore.Core {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel)
}

// next returns the logger for the next message, including fields collected
// by P.
func (t *Tracer) next() *zap.SugaredLogger {
	if len(t.fields) == 0 {
		return t.sugar
	}
	s := t.sugar.With(t.fields...)
	t.fields = nil
	return s
}

// Interface tracing.Trace
func (t *Tracer) P(key string, val interface{}) tracing.Trace {
	t.fields = append(t.fields, key, val)
	return t
}

// Interface tracing.Trace
func (t *Tracer) Debugf(s string, args ...interface{}) {
	if t.level < tracing.LevelDebug {
		t.fields = nil
		return
	}
	t.next().Debugf(s, args...)
}

// Interface tracing.Trace
func (t *Tracer) Infof(s string, args ...interface{}) {
	if t.level < tracing.LevelInfo {
		t.fields = nil
		return
	}
	t.next().Infof(s, args...)
}

// Interface tracing.Trace
func (t *Tracer) Errorf(s string, args ...interface{}) {
	t.next().Errorf(s, args...)
}

// Interface tracing.Trace
func (t *Tracer) SetTraceLevel(l tracing.TraceLevel) {
	t.level = l
}

// Interface tracing.Trace
func (t *Tracer) GetTraceLevel() tracing.TraceLevel {
	return t.level
}

// Interface tracing.Trace
func (t *Tracer) SetOutput(writer io.Writer) {
	_ = t.log.Sync()
	t.log = zap.New(newCore(writer))
	t.sugar = t.log.Sugar()
}

var _ tracing.Trace = &Tracer{}
