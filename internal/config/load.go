package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Format is a module tree encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnsupportedFormat is returned for a file extension with no decoder.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// ErrEmptyTree is returned when the decoded root module has no name.
var ErrEmptyTree = errors.New("config has no root module")

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", errors.Wrapf(ErrUnsupportedFormat, "%s", path)
}

// LoadFile reads a module tree from a file.
func LoadFile(path string) (*Module, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	m, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "load config %s", path)
	}
	return m, nil
}

// Parse decodes a module tree.
func Parse(data []byte, format Format) (*Module, error) {
	m := &Module{}
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(m); err != nil {
			return nil, errors.Wrap(err, "decode yaml")
		}
	case FormatTOML:
		meta, err := toml.NewDecoder(bytes.NewReader(data)).Decode(m)
		if err != nil {
			return nil, errors.Wrap(err, "decode toml")
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, errors.Newf("decode toml: unknown key %s", undecoded[0])
		}
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
	if m.Name == "" {
		return nil, ErrEmptyTree
	}
	return m, nil
}

// Walk calls fn for m and every descendant, parents first.
func Walk(m *Module, fn func(m, parent *Module)) {
	var walk func(m, parent *Module)
	walk = func(m, parent *Module) {
		fn(m, parent)
		for _, c := range m.Children {
			walk(c, m)
		}
	}
	walk(m, nil)
}
