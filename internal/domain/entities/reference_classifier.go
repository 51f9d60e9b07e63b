package entities

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnclassifiedReference = errors.New("unclassified payment reference")
	ErrInvalidPrefixMapping  = errors.New("invalid reference prefix mapping")
)

// ReferenceClassifier maps a provider external reference to an entity kind using an
// explicit prefix table. Matching is case-insensitive and the longest prefix wins.
type ReferenceClassifier struct {
	prefixes []prefixRule
}

type prefixRule struct {
	prefix string
	kind   EntityKind
}

func NewReferenceClassifier(mapping map[string]string) (*ReferenceClassifier, error) {
	rules := make([]prefixRule, 0, len(mapping))
	for rawPrefix, rawKind := range mapping {
		prefix := strings.ToUpper(strings.TrimSpace(rawPrefix))
		if prefix == "" {
			return nil, fmt.Errorf("%w: empty prefix", ErrInvalidPrefixMapping)
		}
		kind, err := ParseEntityKind(rawKind)
		if err != nil {
			return nil, fmt.Errorf("%w: prefix %q -> %q", ErrInvalidPrefixMapping, rawPrefix, rawKind)
		}
		rules = append(rules, prefixRule{prefix: prefix, kind: kind})
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("%w: no prefixes", ErrInvalidPrefixMapping)
	}
	sort.Slice(rules, func(i, j int) bool {
		if len(rules[i].prefix) != len(rules[j].prefix) {
			return len(rules[i].prefix) > len(rules[j].prefix)
		}
		return rules[i].prefix < rules[j].prefix
	})
	return &ReferenceClassifier{prefixes: rules}, nil
}

// Classify returns the kind and the trimmed entity id for reference.
func (c *ReferenceClassifier) Classify(reference string) (EntityKind, string, error) {
	ref := strings.TrimSpace(reference)
	upper := strings.ToUpper(ref)
	for _, rule := range c.prefixes {
		if strings.HasPrefix(upper, rule.prefix) {
			return rule.kind, ref, nil
		}
	}
	return "", "", fmt.Errorf("%w: %q", ErrUnclassifiedReference, ref)
}

// PrefixFor returns the prefix configured for kind (the first one in match order).
func (c *ReferenceClassifier) PrefixFor(kind EntityKind) (string, bool) {
	for _, rule := range c.prefixes {
		if rule.kind == kind {
			return rule.prefix, true
		}
	}
	return "", false
}
