// Package evaluator matches call-site facts against a rule catalog.
//
// Evaluation is a pure function of its inputs: one indexed pass over
// the facts, no I/O, no state carried between calls. A single evaluator
// is safe for concurrent use because the catalog it reads is immutable.
package evaluator

import (
	"sort"

	"github.com/uilint/core/pkg/catalog"
	"github.com/uilint/core/pkg/domain"
)

// Evaluator decides which facts violate which rules of one catalog.
type Evaluator struct {
	cat *catalog.Catalog
}

// New returns an evaluator bound to cat.
func New(cat *catalog.Catalog) *Evaluator {
	return &Evaluator{cat: cat}
}

// Evaluate matches each fact's kind against the catalog's anti-pattern
// index and returns one finding per matched fact, ordered by descending
// severity with ties in input order.
//
// Facts whose kind is known but claimed by no rule are skipped: not
// every observable call site is a violation. A fact whose kind falls
// outside the vocabulary entirely fails the whole call with
// *UnknownFactKindError and no findings, since it signals a front end
// speaking a different vocabulary version.
func (e *Evaluator) Evaluate(facts []domain.CallSiteFact) ([]domain.Finding, error) {
	findings := make([]domain.Finding, 0, len(facts))

	for i, fact := range facts {
		if !fact.Kind.Known() {
			return nil, &UnknownFactKindError{Kind: fact.Kind, Location: fact.Location, Index: i}
		}

		rule, ok := e.cat.RuleForKind(fact.Kind)
		if !ok {
			continue
		}

		findings = append(findings, domain.Finding{
			RuleID:   rule.ID,
			Category: rule.Category,
			Severity: rule.Severity,
			Location: fact.Location,
			Message:  rule.Recommendation,
		})
	}

	// Stable sort keeps input order inside each severity band, so equal
	// inputs always produce byte-identical output.
	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Severity.Rank() > findings[j].Severity.Rank()
	})

	return findings, nil
}

// Evaluate runs a one-off evaluation of facts against cat.
func Evaluate(cat *catalog.Catalog, facts []domain.CallSiteFact) ([]domain.Finding, error) {
	return New(cat).Evaluate(facts)
}
