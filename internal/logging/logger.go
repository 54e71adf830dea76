// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package logging

import (
	"io"
	"log/slog"
	"strings"

	"gitlab.com/accumulatenetwork/detrand/pkg/errors"
)

const (
	LogFormatPlain = "plain"
	LogFormatText  = "text"
	LogFormatJSON  = "json"
)

// New returns a logger writing to w in the given format, filtered by a level
// string as accepted by [ParseLogLevel].
func New(w io.Writer, format, level string, color bool) (*slog.Logger, error) {
	switch strings.ToLower(format) {
	case LogFormatPlain, LogFormatText:
		w = ConsoleSlogWriter(w, color)
	case LogFormatJSON:
	default:
		return nil, errors.BadRequest.WithFormat("unsupported log format: %s", format)
	}

	c, err := ParseLogLevel(level)
	if err != nil {
		return nil, errors.UnknownError.Wrap(err)
	}

	h, err := NewSlogHandler(c, w)
	if err != nil {
		return nil, errors.UnknownError.Wrap(err)
	}
	return slog.New(h), nil
}

// Module returns a logger that tags every record with the module name, which
// selects the module's log level.
func Module(logger *slog.Logger, name string) *slog.Logger {
	return logger.With(ModuleKey, name)
}
