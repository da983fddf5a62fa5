// Package rules manages registration of lint rules.
package rules

import (
	"github.com/donaldgifford/memberfmt/internal/lint"
)

var registered []lint.Rule

// Register adds a rule to the registry. Rules run in the order they are
// registered.
func Register(r lint.Rule) {
	registered = append(registered, r)
}

// All returns all registered rules in execution order.
func All() []lint.Rule {
	return registered
}

// Lookup returns the rule with the given ID.
func Lookup(id string) (lint.Rule, bool) {
	for _, r := range registered {
		if r.Descriptor().ID == id {
			return r, true
		}
	}
	return nil, false
}
