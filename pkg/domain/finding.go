package domain

// Finding is one reported violation: a call-site fact matched to the
// rule whose anti-pattern it exhibits.
type Finding struct {
	// RuleID identifies the violated rule.
	RuleID string `json:"ruleId"`

	// Category is the violated rule's category.
	Category Category `json:"category"`

	// Severity is the violated rule's severity.
	Severity Severity `json:"severity"`

	// Location is the offending call site.
	Location Location `json:"location"`

	// Message is the rule's recommendation.
	Message string `json:"message"`
}
