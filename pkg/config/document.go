// Package config locates and models the declarative logger configuration:
// a YAML document naming loggers and the level/handler settings to apply to
// each. Anchors, aliases and merge keys are resolved entirely by the parser;
// nothing here special-cases them.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/my-go-utils/nogging/pkg/logging"
)

// Document maps logger names to their settings, preserving document order.
// Duplicate names are last-write-wins, keeping the first occurrence's
// position.
type Document []LoggerEntry

// LoggerEntry is one named logger's settings.
type LoggerEntry struct {
	Name string
	Spec LoggerSpec
}

// LoggerSpec holds the settings for one logger. A nil Level leaves the
// logger's threshold untouched. A nil Handlers leaves its handler set
// untouched; a present (even empty) Handlers replaces it.
type LoggerSpec struct {
	Level    *LevelValue    `yaml:"level"`
	Handlers *[]HandlerSpec `yaml:"handlers"`
}

// HandlerSpec describes one handler to construct. Filename is required
// when Type is FileHandler.
type HandlerSpec struct {
	Type     string      `yaml:"type"`
	Level    *LevelValue `yaml:"level"`
	Format   *string     `yaml:"format"`
	Filename string      `yaml:"filename"`
}

// UnmarshalYAML decodes a mapping node into an ordered document. Document
// level merge keys are honored with standard YAML semantics: explicit keys
// win over merged ones, earlier merges over later ones.
func (d *Document) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Tag == "!!null" {
		*d = nil
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("logger configuration must be a mapping, got %s", node.Tag)
	}

	var out Document
	var merged Document
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		if keyNode.Tag == "!!merge" {
			var m Document
			if err := valNode.Decode(&m); err != nil {
				return err
			}
			for _, e := range m {
				if _, ok := merged.Get(e.Name); !ok {
					merged = append(merged, e)
				}
			}
			continue
		}

		var name string
		if err := keyNode.Decode(&name); err != nil {
			return err
		}
		var spec LoggerSpec
		if err := valNode.Decode(&spec); err != nil {
			return fmt.Errorf("logger %q: %w", name, err)
		}
		out.set(name, spec)
	}

	for _, e := range merged {
		if _, ok := out.Get(e.Name); !ok {
			out = append(out, e)
		}
	}
	*d = out
	return nil
}

func (d *Document) set(name string, spec LoggerSpec) {
	for i, e := range *d {
		if e.Name == name {
			(*d)[i].Spec = spec
			return
		}
	}
	*d = append(*d, LoggerEntry{Name: name, Spec: spec})
}

// Get returns the spec for a logger name.
func (d Document) Get(name string) (LoggerSpec, bool) {
	for _, e := range d {
		if e.Name == name {
			return e.Spec, true
		}
	}
	return LoggerSpec{}, false
}

// Names returns the logger names in document order.
func (d Document) Names() []string {
	names := make([]string, 0, len(d))
	for _, e := range d {
		names = append(names, e.Name)
	}
	return names
}

// LevelValue is a severity as written in the document: a symbolic name or
// a numeric value. Resolution against the severity table is deferred to
// Resolve so that unknown names surface as construction errors during
// apply, not as parse errors during discovery.
type LevelValue struct {
	name  string
	num   int
	isNum bool
}

// UnmarshalYAML accepts a string or integer scalar.
func (v *LevelValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	var n int
	if err := node.Decode(&n); err == nil {
		v.num = n
		v.isNum = true
		return nil
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("level must be a severity name or integer, got %s", node.Tag)
	}
	v.name = s
	return nil
}

// Resolve maps the document value through the severity table.
func (v *LevelValue) Resolve() (logging.Level, error) {
	if v.isNum {
		return logging.LevelFromInt(v.num)
	}
	return logging.ParseLevel(v.name)
}

// String returns the value as written in the document.
func (v *LevelValue) String() string {
	if v.isNum {
		return fmt.Sprintf("%d", v.num)
	}
	return v.name
}
