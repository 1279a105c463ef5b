// Package config holds the module tree that describes a checker and loads it
// from YAML or TOML.
package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrInvalidProperty marks a property value that cannot be converted.
var ErrInvalidProperty = errors.New("invalid property")

// Module is one node of the module tree: a type name, an optional explicit
// identifier, scalar properties and nested modules.
type Module struct {
	Name       string         `yaml:"name" toml:"name"`
	ID         string         `yaml:"id,omitempty" toml:"id,omitempty"`
	Properties map[string]any `yaml:"properties,omitempty" toml:"properties,omitempty"`
	Children   []*Module      `yaml:"children,omitempty" toml:"children,omitempty"`
}

// New returns a module with the given type name and children.
func New(name string, children ...*Module) *Module {
	return &Module{Name: name, Children: children}
}

// With sets a property and returns m.
func (m *Module) With(name string, value any) *Module {
	if m.Properties == nil {
		m.Properties = make(map[string]any)
	}
	m.Properties[name] = value
	return m
}

// WithID sets the explicit identifier and returns m.
func (m *Module) WithID(id string) *Module {
	m.ID = id
	return m
}

// Add appends children and returns m.
func (m *Module) Add(children ...*Module) *Module {
	m.Children = append(m.Children, children...)
	return m
}

// Identifier returns the explicit identifier, also accepted as an "id"
// property.
func (m *Module) Identifier() string {
	if m.ID != "" {
		return m.ID
	}
	id, _ := m.Prop("id")
	return id
}

// Prop returns a property as a string. Lists are joined with commas.
func (m *Module) Prop(name string) (string, bool) {
	v, ok := m.Properties[name]
	if !ok || v == nil {
		return "", false
	}
	switch v := v.(type) {
	case string:
		return v, true
	case []any:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = fmt.Sprint(e)
		}
		return strings.Join(parts, ","), true
	}
	return fmt.Sprint(v), true
}

// String returns a property or def.
func (m *Module) String(name, def string) string {
	if v, ok := m.Prop(name); ok {
		return v
	}
	return def
}

// Int returns an integer property or def.
func (m *Module) Int(name string, def int) (int, error) {
	v, ok := m.Prop(name)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, m.invalid(name, v)
	}
	return n, nil
}

// Bool returns a boolean property or def.
func (m *Module) Bool(name string, def bool) (bool, error) {
	v, ok := m.Prop(name)
	if !ok {
		return def, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, m.invalid(name, v)
	}
	return b, nil
}

// Regexp returns a compiled pattern property or the compiled def.
func (m *Module) Regexp(name, def string) (*regexp.Regexp, error) {
	v := m.String(name, def)
	re, err := regexp.Compile(v)
	if err != nil {
		return nil, m.invalid(name, v)
	}
	return re, nil
}

// List returns a comma separated property as trimmed, non-empty elements.
func (m *Module) List(name string, def ...string) []string {
	v, ok := m.Prop(name)
	if !ok {
		return def
	}
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (m *Module) invalid(name, value string) error {
	return errors.Wrapf(ErrInvalidProperty, "%s: property %s=%q", m.Name, name, value)
}
