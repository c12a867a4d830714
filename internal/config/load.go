package config

import (
	"bytes"
	"io/fs"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
)

// Load reads name from fsys and overlays it onto the defaults. A missing file
// is not an error; the defaults are returned.
func Load(fsys fs.FS, name string) (Config, error) {
	data, err := fs.ReadFile(fsys, name)
	return decode(name, data, err)
}

// LoadFile is Load against the operating system's file system.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	return decode(path, data, err)
}

func decode(path string, data []byte, readErr error) (Config, error) {
	cfg := Default()
	if readErr != nil {
		if errors.Is(readErr, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(readErr, "reading config file %s", path)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Default(), toParseError(path, err)
	}
	return cfg, nil
}

// toParseError attaches a position to go-toml's decode and strict-mode errors.
func toParseError(path string, err error) *ParseError {
	pe := &ParseError{Path: path, Message: err.Error(), Err: err}

	var decErr *toml.DecodeError
	if errors.As(err, &decErr) {
		pe.Line, pe.Column = decErr.Position()
		return pe
	}

	var strictErr *toml.StrictMissingError
	if errors.As(err, &strictErr) && len(strictErr.Errors) > 0 {
		first := strictErr.Errors[0]
		pe.Line, pe.Column = first.Position()
		pe.Message = "unknown setting " + strings.Join(first.Key(), ".")
	}
	return pe
}
