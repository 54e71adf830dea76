// Copyright 2022 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package logging

import (
	"log/slog"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/accumulatenetwork/detrand/pkg/errors"
)

// ParseLogLevel parses a string such as "error;replay=debug" into a default
// level and per-module levels. Level names are zerolog's.
func ParseLogLevel(s string) (SlogConfig, error) {
	c := SlogConfig{DefaultLevel: slog.LevelInfo}
	modules := strings.FieldsFunc(s, func(r rune) bool { return r == ';' })
	for _, module := range modules {
		parts := strings.SplitN(module, "=", 2)
		level, err := zerolog.ParseLevel(strings.TrimSpace(parts[len(parts)-1]))
		if err != nil {
			return SlogConfig{}, errors.BadRequest.WithFormat("invalid log level %q: %w", module, err)
		}

		name := strings.TrimSpace(parts[0])
		if len(parts) == 1 || name == "*" {
			c.DefaultLevel = slogLevel(level)
			continue
		}

		if c.ModuleLevels == nil {
			c.ModuleLevels = map[string]slog.Level{}
		}
		c.ModuleLevels[name] = slogLevel(level)
	}
	return c, nil
}
