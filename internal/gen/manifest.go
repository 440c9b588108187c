package gen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/refined/pkg/predicate"
)

// Manifest is the decoded kinds.yaml.
type Manifest struct {
	Package    string      `yaml:"package"`
	Primitives []Primitive `yaml:"primitives"`
	Rules      []string    `yaml:"rules"`
}

// Primitive describes one numeric primitive and the primitives it widens to.
type Primitive struct {
	Alias    string   `yaml:"alias"`
	Type     string   `yaml:"type"`
	WidensTo []string `yaml:"widens_to"`
}

type primitiveInfo struct {
	bits  int
	float bool
}

var knownPrimitives = map[string]primitiveInfo{
	"int32":   {bits: 32},
	"int64":   {bits: 64},
	"float32": {bits: 32, float: true},
	"float64": {bits: 64, float: true},
}

// LoadManifest reads and validates the manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return ParseManifest(data)
}

// ParseManifest decodes and validates a manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks that every primitive is known and unique, that every
// widening edge is lossless in sign (int to wider int or any float, float to
// wider float) and that every rule parses.
func (m *Manifest) Validate() error {
	if m.Package == "" {
		return fmt.Errorf("%w: package is required", ErrInvalidManifest)
	}
	if len(m.Primitives) == 0 {
		return fmt.Errorf("%w: no primitives", ErrInvalidManifest)
	}
	if len(m.Rules) == 0 {
		return fmt.Errorf("%w: no rules", ErrInvalidManifest)
	}

	byAlias := make(map[string]Primitive, len(m.Primitives))
	seenTypes := make(map[string]bool, len(m.Primitives))
	for _, p := range m.Primitives {
		if p.Alias == "" {
			return fmt.Errorf("%w: primitive %q has no alias", ErrInvalidManifest, p.Type)
		}
		if _, ok := knownPrimitives[p.Type]; !ok {
			return fmt.Errorf("%w: unsupported primitive type %q", ErrInvalidManifest, p.Type)
		}
		if _, dup := byAlias[p.Alias]; dup {
			return fmt.Errorf("%w: duplicate primitive alias %q", ErrInvalidManifest, p.Alias)
		}
		if seenTypes[p.Type] {
			return fmt.Errorf("%w: duplicate primitive type %q", ErrInvalidManifest, p.Type)
		}
		byAlias[p.Alias] = p
		seenTypes[p.Type] = true
	}

	for _, p := range m.Primitives {
		for _, target := range p.WidensTo {
			to, ok := byAlias[target]
			if !ok {
				return fmt.Errorf("%w: %s widens to unknown primitive %q", ErrInvalidManifest, p.Alias, target)
			}
			if !canWiden(knownPrimitives[p.Type], knownPrimitives[to.Type]) {
				return fmt.Errorf("%w: %s (%s) cannot widen to %s (%s)", ErrInvalidManifest, p.Alias, p.Type, to.Alias, to.Type)
			}
		}
	}

	seenRules := make(map[predicate.Rule]bool, len(m.Rules))
	for _, name := range m.Rules {
		r, err := predicate.ParseRule(name)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidManifest, err)
		}
		if seenRules[r] {
			return fmt.Errorf("%w: duplicate rule %q", ErrInvalidManifest, name)
		}
		seenRules[r] = true
	}

	return nil
}

// canWiden reports whether converting from -> to preserves the sign and
// zero-ness of every value. Edges strictly increase (float, bits), so the
// primitive graph is acyclic.
func canWiden(from, to primitiveInfo) bool {
	if from.float {
		return to.float && to.bits > from.bits
	}
	return to.float || to.bits > from.bits
}
