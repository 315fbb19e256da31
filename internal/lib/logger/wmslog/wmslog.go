// Package wmslog adapts *slog.Logger to watermill.LoggerAdapter.
package wmslog

import (
	"context"
	"log/slog"
	"sort"

	"github.com/ThreeDotsLabs/watermill"

	"trekBooker/internal/lib/logger/sl"
)

const LevelTrace = slog.LevelDebug - 4

type Adapter struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Adapter {
	return &Adapter{log: log}
}

func (a *Adapter) Error(msg string, err error, fields watermill.LogFields) {
	args := attrs(fields)
	if err != nil {
		args = append(args, sl.Err(err))
	}
	a.log.Error(msg, args...)
}

func (a *Adapter) Info(msg string, fields watermill.LogFields) {
	a.log.Info(msg, attrs(fields)...)
}

func (a *Adapter) Debug(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, attrs(fields)...)
}

func (a *Adapter) Trace(msg string, fields watermill.LogFields) {
	a.log.Log(context.Background(), LevelTrace, msg, attrs(fields)...)
}

func (a *Adapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &Adapter{log: a.log.With(attrs(fields)...)}
}

func attrs(fields watermill.LogFields) []any {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]any, 0, len(fields))
	for _, k := range keys {
		out = append(out, slog.Any(k, fields[k]))
	}
	return out
}
