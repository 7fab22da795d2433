package htmlfilter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RuleSet is the serializable form of a Remover configuration.
//
//	accept:
//	  - element: b
//	  - element: a
//	    attributes: [href]
//	remove:
//	  - script
type RuleSet struct {
	Accept []AcceptRule `yaml:"accept"`
	Remove []string     `yaml:"remove"`
}

// AcceptRule accepts one element. A nil Attributes list keeps every
// attribute; an empty list strips them all.
type AcceptRule struct {
	Element    string   `yaml:"element"`
	Attributes []string `yaml:"attributes"`
}

// Apply registers every rule on r, in order.
func (rs *RuleSet) Apply(r *Remover) {
	for _, a := range rs.Accept {
		r.AcceptElement(a.Element, a.Attributes)
	}
	for _, name := range rs.Remove {
		r.RemoveElement(name)
	}
}

// ParseRules decodes a YAML rule set.
func ParseRules(data []byte) (*RuleSet, error) {
	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}
	return &rs, nil
}

// LoadRules reads and decodes a YAML rule set from path.
func LoadRules(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}
	return ParseRules(data)
}
