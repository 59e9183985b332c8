// Package seed selects, loads and writes seed data into DynamoDB tables.
//
// Seed data is organized into named categories ("users", "orders", ...).
// Each category holds sources, and each source targets exactly one table
// with one or more payload files: document files decoded to native values,
// or raw files already in the wire attribute-value format.
package seed

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Category is a named group of seed sources.
type Category struct {
	Sources []Source `yaml:"sources" json:"sources"`
}

// Source references seed content destined for a single table.
type Source struct {
	TableName  string   `yaml:"table" json:"table"`
	Sources    []string `yaml:"sources,omitempty" json:"sources,omitempty"`
	RawSources []string `yaml:"rawsources,omitempty" json:"rawsources,omitempty"`
}

// Selector expresses which categories a run requested: none, all, or an
// explicit list. In configuration it is spelled either as a boolean or as a
// comma-separated category list, so it unmarshals from both.
type Selector struct {
	all   bool
	names []string
}

// SelectNone requests no seeding.
func SelectNone() Selector { return Selector{} }

// SelectAll requests every configured category.
func SelectAll() Selector { return Selector{all: true} }

// SelectNames requests the named categories.
func SelectNames(names ...string) Selector { return Selector{names: names} }

// ParseSelector reads a selector from its string spelling: empty or "false"
// selects nothing, "true" selects everything, anything else is a
// comma-separated category list.
func ParseSelector(raw string) Selector {
	switch strings.TrimSpace(raw) {
	case "", "false":
		return SelectNone()
	case "true":
		return SelectAll()
	}
	var names []string
	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return Selector{names: names}
}

// Enabled reports whether the selector requests any seeding at all.
func (s Selector) Enabled() bool { return s.all || len(s.names) > 0 }

// All reports whether every configured category was requested.
func (s Selector) All() bool { return s.all }

// Names returns the explicitly requested category names, nil when the
// selector is all-or-nothing.
func (s Selector) Names() []string { return s.names }

func (s Selector) String() string {
	switch {
	case s.all:
		return "true"
	case len(s.names) > 0:
		return strings.Join(s.names, ",")
	default:
		return "false"
	}
}

// UnmarshalYAML accepts both spellings used in configuration files:
//
//	seed: true
//	seed: users,orders
func (s *Selector) UnmarshalYAML(value *yaml.Node) error {
	var b bool
	if err := value.Decode(&b); err == nil {
		if b {
			*s = SelectAll()
		} else {
			*s = SelectNone()
		}
		return nil
	}
	var raw string
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("seed selector must be a boolean or a category list: %w", err)
	}
	*s = ParseSelector(raw)
	return nil
}
