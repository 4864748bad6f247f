package config

import (
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/albertsgarde/phi"
	"github.com/albertsgarde/phi/errors"
	"github.com/albertsgarde/phi/numeral"
)

// Presets maps preset names to rule digit patterns, as read from a
// YAML mapping:
//
//	fib: [1, 1]
//	trib: [1, 1, 1]
//	decimal: [9, 1]
//
// Digit patterns are validated lazily, when a rule is requested.
type Presets map[string][]phi.Value

// Load reads a preset file from disk.
func Load(path string) (Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidData, err, "read preset file")
	}
	return Parse(data)
}

// Parse decodes preset YAML.
func Parse(data []byte) (Presets, error) {
	var p Presets
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidData, err, "decode preset file")
	}
	return p, nil
}

// Rule looks up name and constructs its rule.
func (p Presets) Rule(name string) (*numeral.Rule, error) {
	digits, ok := p[name]
	if !ok {
		return nil, errors.NotFound(errors.PhaseConfig, "preset", name)
	}
	return numeral.New(digits...)
}

// Names returns the preset names in sorted order.
func (p Presets) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
