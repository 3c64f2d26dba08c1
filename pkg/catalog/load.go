package catalog

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/uilint/core/pkg/domain"
)

// document mirrors the wire schema of a catalog file.
type document struct {
	Rules []ruleEntry `yaml:"rules"`
}

type ruleEntry struct {
	ID             string         `yaml:"id"`
	Category       string         `yaml:"category"`
	Severity       string         `yaml:"severity"`
	AntiPattern    string         `yaml:"antiPattern"`
	Recommendation string         `yaml:"recommendation"`
	Examples       []exampleEntry `yaml:"examples"`
}

type exampleEntry struct {
	Bad  string `yaml:"bad"`
	Good string `yaml:"good"`
}

// Load parses and validates a YAML catalog document. Validation is
// atomic: the result is either a complete, consistent catalog or the
// first error encountered, never a partial catalog.
func Load(r io.Reader) (*Catalog, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("catalog: read source: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("catalog: parse yaml: %w", err)
	}

	return build(doc)
}

// LoadFile reads and validates the catalog document at path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

func build(doc document) (*Catalog, error) {
	cat := &Catalog{
		rules:  make([]domain.Rule, 0, len(doc.Rules)),
		byID:   make(map[string]int, len(doc.Rules)),
		byKind: make(map[domain.FactKind]int, len(doc.Rules)),
	}

	for i, entry := range doc.Rules {
		rule, err := compile(entry, i)
		if err != nil {
			return nil, err
		}

		if _, dup := cat.byID[rule.ID]; dup {
			return nil, &DuplicateRuleIDError{RuleID: rule.ID}
		}
		if prev, dup := cat.byKind[rule.AntiPattern]; dup {
			return nil, &DuplicateAntiPatternError{
				RuleID:      rule.ID,
				OtherRuleID: cat.rules[prev].ID,
				Kind:        rule.AntiPattern,
			}
		}

		cat.rules = append(cat.rules, rule)
		cat.byID[rule.ID] = len(cat.rules) - 1
		cat.byKind[rule.AntiPattern] = len(cat.rules) - 1
	}

	return cat, nil
}

// compile checks one entry and converts it to a domain rule. Field
// checks run in declaration order so error messages point at the first
// problem in the document.
func compile(entry ruleEntry, index int) (domain.Rule, error) {
	if entry.ID == "" {
		return domain.Rule{}, &MalformedRuleError{Index: index, Field: "id", Reason: "is required"}
	}
	if entry.Category == "" {
		return domain.Rule{}, &MalformedRuleError{RuleID: entry.ID, Index: index, Field: "category", Reason: "is required"}
	}
	category := domain.Category(entry.Category)
	if !category.Valid() {
		return domain.Rule{}, &MalformedRuleError{
			RuleID: entry.ID,
			Index:  index,
			Field:  "category",
			Reason: fmt.Sprintf("has unknown value %q", entry.Category),
		}
	}
	if entry.Severity == "" {
		return domain.Rule{}, &MalformedRuleError{RuleID: entry.ID, Index: index, Field: "severity", Reason: "is required"}
	}
	severity := domain.Severity(entry.Severity)
	if !severity.Valid() {
		return domain.Rule{}, &MalformedRuleError{
			RuleID: entry.ID,
			Index:  index,
			Field:  "severity",
			Reason: fmt.Sprintf("has unknown value %q", entry.Severity),
		}
	}
	if entry.AntiPattern == "" {
		return domain.Rule{}, &MalformedRuleError{RuleID: entry.ID, Index: index, Field: "antiPattern", Reason: "is required"}
	}
	kind := domain.FactKind(entry.AntiPattern)
	if !kind.Known() {
		return domain.Rule{}, &UnmappedAntiPatternError{RuleID: entry.ID, AntiPattern: entry.AntiPattern}
	}
	if entry.Recommendation == "" {
		return domain.Rule{}, &MalformedRuleError{RuleID: entry.ID, Index: index, Field: "recommendation", Reason: "is required"}
	}

	rule := domain.Rule{
		ID:             entry.ID,
		Category:       category,
		Severity:       severity,
		AntiPattern:    kind,
		Recommendation: entry.Recommendation,
	}
	for _, ex := range entry.Examples {
		rule.Examples = append(rule.Examples, domain.Example{Bad: ex.Bad, Good: ex.Good})
	}

	return rule, nil
}
