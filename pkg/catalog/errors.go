package catalog

import (
	"fmt"

	"github.com/uilint/core/pkg/domain"
)

// MalformedRuleError reports a rule entry with a missing required field
// or a value outside its closed set. Index is the entry's zero-based
// position in the source document; RuleID is empty when the id itself
// is the missing field.
type MalformedRuleError struct {
	RuleID string
	Index  int
	Field  string
	Reason string
}

func (e *MalformedRuleError) Error() string {
	if e.RuleID == "" {
		return fmt.Sprintf("catalog: rule #%d: field %q %s", e.Index, e.Field, e.Reason)
	}
	return fmt.Sprintf("catalog: rule %q: field %q %s", e.RuleID, e.Field, e.Reason)
}

// DuplicateRuleIDError reports two rule entries sharing one id.
type DuplicateRuleIDError struct {
	RuleID string
}

func (e *DuplicateRuleIDError) Error() string {
	return fmt.Sprintf("catalog: duplicate rule id %q", e.RuleID)
}

// UnmappedAntiPatternError reports a rule whose anti-pattern is outside
// the fact kind vocabulary, meaning no front end could ever trigger it.
type UnmappedAntiPatternError struct {
	RuleID      string
	AntiPattern string
}

func (e *UnmappedAntiPatternError) Error() string {
	return fmt.Sprintf("catalog: rule %q: anti-pattern %q is not a known fact kind", e.RuleID, e.AntiPattern)
}

// DuplicateAntiPatternError reports two rules claiming the same fact
// kind, which would break the one-to-one kind-to-rule mapping.
type DuplicateAntiPatternError struct {
	RuleID      string
	OtherRuleID string
	Kind        domain.FactKind
}

func (e *DuplicateAntiPatternError) Error() string {
	return fmt.Sprintf("catalog: rules %q and %q both claim fact kind %q", e.OtherRuleID, e.RuleID, e.Kind)
}
