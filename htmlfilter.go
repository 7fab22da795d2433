package htmlfilter

import (
	"bytes"
	"io"
	"strings"
)

// FilterString tokenizes input, runs the events through a Remover
// configured by rules, and returns the surviving markup. A nil rules
// leaves the Remover rule-free, which strips every tag.
func FilterString(input string, rules *RuleSet) (string, error) {
	return FilterReader(strings.NewReader(input), rules)
}

// FilterReader reads markup from r and filters it as FilterString
// does.
func FilterReader(r io.Reader, rules *RuleSet) (string, error) {
	var buf bytes.Buffer
	rm := NewRemover(NewWriter(&buf))
	if rules != nil {
		rules.Apply(rm)
	}
	if err := Tokenize(r, rm); err != nil {
		return "", err
	}
	return buf.String(), nil
}
