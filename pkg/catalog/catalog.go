// Package catalog loads, validates, and indexes rule catalogs.
//
// A catalog is immutable once constructed: Load either returns a fully
// validated catalog or fails with the first violation it finds, and
// accessors hand out copies so callers cannot mutate shared state. One
// catalog may serve any number of concurrent readers.
package catalog

import "github.com/uilint/core/pkg/domain"

// Catalog is a validated, ordered collection of rules indexed by id and
// by anti-pattern fact kind.
type Catalog struct {
	rules  []domain.Rule
	byID   map[string]int
	byKind map[domain.FactKind]int
}

// Len returns the number of rules in the catalog.
func (c *Catalog) Len() int {
	return len(c.rules)
}

// Rules returns every rule in catalog declaration order. The returned
// slice is a copy.
func (c *Catalog) Rules() []domain.Rule {
	out := make([]domain.Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// Lookup returns the rule with the given id, if present.
func (c *Catalog) Lookup(id string) (domain.Rule, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Rule{}, false
	}
	return c.rules[i], true
}

// ByCategory returns the rules of one category, declaration order
// preserved. A category with no rules yields an empty slice, not an
// error.
func (c *Catalog) ByCategory(cat domain.Category) []domain.Rule {
	out := make([]domain.Rule, 0)
	for _, r := range c.rules {
		if r.Category == cat {
			out = append(out, r)
		}
	}
	return out
}

// RuleForKind returns the rule whose anti-pattern is the given fact
// kind. This is the constant-time index evaluation matches against.
func (c *Catalog) RuleForKind(kind domain.FactKind) (domain.Rule, bool) {
	i, ok := c.byKind[kind]
	if !ok {
		return domain.Rule{}, false
	}
	return c.rules[i], true
}
