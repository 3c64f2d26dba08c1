package domain

// Example pairs a violating snippet with its corrected form. Examples
// document a rule for human readers; they are never parsed or executed.
type Example struct {
	Bad  string `json:"bad"`
	Good string `json:"good"`
}

// Rule is one entry of guidance with a machine-detectable anti-pattern.
type Rule struct {
	// ID is the stable identifier rules are referenced by, unique within
	// a catalog (e.g. "prefer-get-by-role").
	ID string `json:"id"`

	// Category groups the rule by the aspect of a test it polices.
	Category Category `json:"category"`

	// Severity drives finding order and CI blocking decisions.
	Severity Severity `json:"severity"`

	// AntiPattern names the single fact kind this rule detects. The
	// mapping is one-to-one within a catalog.
	AntiPattern FactKind `json:"antiPattern"`

	// Recommendation is the corrective guidance findings carry as their
	// message.
	Recommendation string `json:"recommendation"`

	// Examples optionally illustrate the rule with bad/good snippets.
	Examples []Example `json:"examples,omitempty"`
}
