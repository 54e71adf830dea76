// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/accumulatenetwork/detrand/pkg/errors"
)

// ModuleKey is the attribute used to select a per-module log level.
const ModuleKey = "module"

// messageKey is the field zerolog writes the message to.
var messageKey = zerolog.MessageFieldName

// levelDisabled is above every level slog defines.
const levelDisabled = slog.LevelError + 100

// SlogConfig is the configuration of a slog handler.
type SlogConfig struct {
	DefaultLevel slog.Level
	ModuleLevels map[string]slog.Level
}

// NewSlogHandler returns a slog handler that writes zerolog events to w.
func NewSlogHandler(c SlogConfig, w io.Writer) (slog.Handler, error) {
	if w == nil {
		return nil, errors.BadRequest.With("missing log writer")
	}

	lowest := c.DefaultLevel
	for _, l := range c.ModuleLevels {
		if l < lowest {
			lowest = l
		}
	}

	return &logHandler{
		logger:       zerolog.New(w),
		defaultLevel: c.DefaultLevel,
		lowestLevel:  lowest,
		modules:      c.ModuleLevels,
	}, nil
}

// ConsoleSlogWriter returns a writer that formats zerolog's JSON events as
// plain text.
func ConsoleSlogWriter(w io.Writer, color bool) io.Writer {
	return &zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !color,
		TimeFormat: time.RFC3339,
		FormatLevel: func(i interface{}) string {
			if ll, ok := i.(string); ok {
				return strings.ToUpper(ll)
			}
			return "????"
		},
	}
}

type logHandler struct {
	logger       zerolog.Logger
	defaultLevel slog.Level
	lowestLevel  slog.Level
	modules      map[string]slog.Level
	module       string
	attrs        []slog.Attr
	group        string
}

func (h *logHandler) Enabled(_ context.Context, level slog.Level) bool {
	if h.module != "" {
		return level >= h.levelFor(h.module)
	}
	return level >= h.lowestLevel
}

func (h *logHandler) levelFor(module string) slog.Level {
	if l, ok := h.modules[module]; ok {
		return l
	}
	return h.defaultLevel
}

func (h *logHandler) Handle(ctx context.Context, r slog.Record) error {
	// The module may come from the handler, the context, or the record
	module := h.module
	ctxAttrs := Attrs(ctx)
	for _, a := range ctxAttrs {
		if a.Key == ModuleKey {
			module = a.Value.String()
		}
	}
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == ModuleKey {
			module = a.Value.String()
		}
		return true
	})
	if r.Level < h.levelFor(module) {
		return nil
	}

	e := h.logger.WithLevel(zerologLevel(r.Level))
	if !r.Time.IsZero() {
		e = e.Time(zerolog.TimestampFieldName, r.Time)
	}
	for _, a := range h.attrs {
		addAttr(e, "", a)
	}
	for _, a := range ctxAttrs {
		addAttr(e, h.group, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		addAttr(e, h.group, a)
		return true
	})
	e.Msg(r.Message)
	return nil
}

func (h *logHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	g := *h
	g.attrs = append(g.attrs[:len(g.attrs):len(g.attrs)], make([]slog.Attr, 0, len(attrs))...)
	for _, a := range attrs {
		if a.Key == ModuleKey {
			g.module = a.Value.String()
		}
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		g.attrs = append(g.attrs, a)
	}
	return &g
}

func (h *logHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	g := *h
	if g.group == "" {
		g.group = name
	} else {
		g.group += "." + name
	}
	return &g
}

func addAttr(e *zerolog.Event, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	switch {
	case group == "":
	case key == "":
		key = group
	default:
		key = group + "." + key
	}

	switch a.Value.Kind() {
	case slog.KindString:
		e.Str(key, a.Value.String())
	case slog.KindInt64:
		e.Int64(key, a.Value.Int64())
	case slog.KindUint64:
		e.Uint64(key, a.Value.Uint64())
	case slog.KindFloat64:
		e.Float64(key, a.Value.Float64())
	case slog.KindBool:
		e.Bool(key, a.Value.Bool())
	case slog.KindDuration:
		e.Dur(key, a.Value.Duration())
	case slog.KindTime:
		e.Time(key, a.Value.Time())
	case slog.KindGroup:
		for _, b := range a.Value.Group() {
			addAttr(e, key, b)
		}
	default:
		e.Interface(key, a.Value.Any())
	}
}

func zerologLevel(l slog.Level) zerolog.Level {
	switch {
	case l < slog.LevelInfo:
		return zerolog.DebugLevel
	case l < slog.LevelWarn:
		return zerolog.InfoLevel
	case l < slog.LevelError:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

func slogLevel(l zerolog.Level) slog.Level {
	switch l {
	case zerolog.TraceLevel, zerolog.DebugLevel:
		return slog.LevelDebug
	case zerolog.InfoLevel:
		return slog.LevelInfo
	case zerolog.WarnLevel:
		return slog.LevelWarn
	case zerolog.Disabled:
		return levelDisabled
	default:
		return slog.LevelError
	}
}
