// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package replay

import (
	"bytes"
	"encoding/json"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gitlab.com/accumulatenetwork/detrand/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Load reads a plan from a TOML, YAML, or JSON file.
func Load(file string) (*Plan, error) {
	return LoadFS(os.DirFS(filepath.Dir(file)), filepath.Base(file))
}

// LoadFS reads a plan from a TOML, YAML, or JSON file in fsys.
func LoadFS(fsys fs.FS, file string) (*Plan, error) {
	format, err := unmarshalFor(file)
	if err != nil {
		return nil, err
	}

	f, err := fsys.Open(file)
	if err != nil {
		return nil, errors.NotFound.WithFormat("open %s: %w", file, err)
	}
	defer func() { _ = f.Close() }()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.UnknownError.WithFormat("read %s: %w", file, err)
	}

	p := new(Plan)
	err = format(b, p)
	if err != nil {
		return nil, errors.EncodingError.WithFormat("decode %s: %w", file, err)
	}
	return p, nil
}

// Save writes the result to a TOML, YAML, or JSON file.
func (r *Result) Save(file string) error {
	var format func(any) ([]byte, error)
	switch s := filepath.Ext(file); s {
	case ".toml", ".tml", ".ini":
		format = marshalTOML
	case ".yaml", ".yml":
		format = yaml.Marshal
	case ".json":
		format = func(v any) ([]byte, error) { return json.MarshalIndent(v, "", "  ") }
	default:
		return errors.BadRequest.WithFormat("unknown file type %s", s)
	}

	b, err := format(r)
	if err != nil {
		return errors.EncodingError.WithFormat("encode %s: %w", file, err)
	}

	return os.WriteFile(file, b, 0600)
}

func unmarshalFor(file string) (func([]byte, any) error, error) {
	switch s := filepath.Ext(file); s {
	case ".toml", ".tml", ".ini":
		return toml.Unmarshal, nil
	case ".yaml", ".yml":
		return yaml.Unmarshal, nil
	case ".json":
		return json.Unmarshal, nil
	default:
		return nil, errors.BadRequest.WithFormat("unknown file type %s", s)
	}
}

func marshalTOML(a any) ([]byte, error) {
	b := new(bytes.Buffer)
	e := toml.NewEncoder(b)
	err := e.Encode(a)
	return b.Bytes(), err
}
