package effect

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Definition is a magic effect definition (the base object of an active
// effect). Definitions are immutable once loaded into a Catalog.
type Definition struct {
	FormID   uint32 `yaml:"form_id"`
	EditorID string `yaml:"editor_id"`

	Hostile  bool `yaml:"hostile"`
	HideInUI bool `yaml:"hide_in_ui"`

	Archetype      Archetype   `yaml:"archetype"`
	ResistVariable ActorValue  `yaml:"resist_variable"`
	CastingType    CastingType `yaml:"casting_type"`

	MinimumSkillLevel int32  `yaml:"minimum_skill_level"`
	ProjectileType    *int32 `yaml:"projectile_type,omitempty"` // nil: no projectile

	Keywords []string `yaml:"keywords"`
}

// HasKeyword reports whether the definition carries keyword (case-insensitive,
// like the engine's editor ID lookup).
func (d *Definition) HasKeyword(keyword string) bool {
	if keyword == "" {
		return false
	}
	return slices.ContainsFunc(d.Keywords, func(k string) bool {
		return strings.EqualFold(k, keyword)
	})
}

// DefinitionSource looks up definitions by form ID.
// Returns nil if the form is unknown.
type DefinitionSource interface {
	Definition(formID uint32) *Definition
}

// Catalog is an immutable, map-backed DefinitionSource.
// Safe for concurrent reads.
type Catalog struct {
	defs map[uint32]*Definition
}

// NewCatalog indexes defs by form ID. Later duplicates replace earlier ones.
func NewCatalog(defs []*Definition) *Catalog {
	c := &Catalog{defs: make(map[uint32]*Definition, len(defs))}
	for _, d := range defs {
		if d == nil {
			continue
		}
		c.defs[d.FormID] = d
	}
	return c
}

// Definition returns the definition for formID, or nil.
func (c *Catalog) Definition(formID uint32) *Definition {
	if c == nil {
		return nil
	}
	return c.defs[formID]
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.defs)
}

// All returns the definitions sorted by form ID.
func (c *Catalog) All() []*Definition {
	out := make([]*Definition, 0, len(c.defs))
	for _, d := range c.defs {
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, b *Definition) int {
		switch {
		case a.FormID < b.FormID:
			return -1
		case a.FormID > b.FormID:
			return 1
		}
		return 0
	})
	return out
}

// definitionsFile is the on-disk YAML layout.
type definitionsFile struct {
	Effects []*Definition `yaml:"effects"`
}

// LoadDefinitionsFile reads magic effect definitions from a YAML file.
func LoadDefinitionsFile(path string) ([]*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading definitions %s: %w", path, err)
	}

	var f definitionsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing definitions %s: %w", path, err)
	}

	for i, d := range f.Effects {
		if d == nil {
			return nil, fmt.Errorf("definitions %s: entry %d is empty", path, i)
		}
		if d.FormID == 0 {
			return nil, fmt.Errorf("definitions %s: entry %d (%q) has no form_id", path, i, d.EditorID)
		}
	}

	slog.Info("loaded effect definitions", "path", path, "count", len(f.Effects))
	return f.Effects, nil
}
