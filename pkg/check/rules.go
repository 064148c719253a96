package check

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rules holds the configuration-level field grammars: the rules that are
// policy for the data set rather than structural properties of the schema.
// They are documented alongside the schema and loaded from a YAML file,
// with built-in defaults when no file is given.
type Rules struct {
	// Federations is the closed list of accepted federation codes. When
	// empty, federation values are only charset-checked.
	Federations []string `yaml:"federations"`

	// MinYear is the earliest plausible meet year. Dates before it draw a
	// warning, not an error.
	MinYear int `yaml:"min_year"`

	federationSet map[string]struct{}
}

// DefaultRules returns the built-in rules: no closed federation list and a
// minimum year of 1945 (no recorded meet predates organized competition).
func DefaultRules() *Rules {
	rules := &Rules{MinYear: 1945}
	rules.index()
	return rules
}

// LoadRules reads a YAML rules file and fills unset fields from defaults.
func LoadRules(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file %s: %w", path, err)
	}

	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parse rules file %s: %w", path, err)
	}

	if rules.MinYear == 0 {
		rules.MinYear = DefaultRules().MinYear
	}
	rules.index()
	return &rules, nil
}

func (r *Rules) index() {
	r.federationSet = make(map[string]struct{}, len(r.Federations))
	for _, federation := range r.Federations {
		r.federationSet[federation] = struct{}{}
	}
}

// KnownFederation reports whether a federation code is acceptable under
// these rules. With no configured list, any code passes (the charset check
// in the validator still applies).
func (r *Rules) KnownFederation(code string) bool {
	if len(r.federationSet) == 0 {
		return true
	}
	_, ok := r.federationSet[code]
	return ok
}
