package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uilint/core/pkg/domain"
)

func TestDefault_LoadsAndValidates(t *testing.T) {
	t.Parallel()

	cat, err := Default()

	require.NoError(t, err)
	require.NotNil(t, cat)
	assert.Greater(t, cat.Len(), 0)
}

func TestDefault_IsCachedAcrossCalls(t *testing.T) {
	t.Parallel()

	first, err := Default()
	require.NoError(t, err)

	second, err := Default()
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestDefault_CoversEveryCategory(t *testing.T) {
	t.Parallel()

	cat, err := Default()
	require.NoError(t, err)

	for _, category := range domain.Categories() {
		assert.NotEmpty(t, cat.ByCategory(category), "category %q has no built-in rules", category)
	}
}

func TestDefault_QueryPriorityGuidance(t *testing.T) {
	t.Parallel()

	cat, err := Default()
	require.NoError(t, err)

	// The flagship rule: raw DOM access maps to the role-query guidance.
	rule, ok := cat.Lookup("prefer-get-by-role")
	require.True(t, ok)
	assert.Equal(t, domain.CategoryQueryPriority, rule.Category)
	assert.Equal(t, domain.SeverityHigh, rule.Severity)
	assert.Equal(t, domain.FactDirectDOMQuery, rule.AntiPattern)
	assert.NotEmpty(t, rule.Recommendation)
	assert.NotEmpty(t, rule.Examples)

	matched, ok := cat.RuleForKind(domain.FactDirectDOMQuery)
	require.True(t, ok)
	assert.Equal(t, rule.ID, matched.ID)
}

func TestDefault_LeavesRecommendedKindsUnclaimed(t *testing.T) {
	t.Parallel()

	cat, err := Default()
	require.NoError(t, err)

	// Kinds that describe good practice must not resolve to rules.
	for _, kind := range []domain.FactKind{
		domain.FactGetByRoleQuery,
		domain.FactUserEventCall,
		domain.FactNetworkHandlerSetup,
		domain.FactSkippedTest,
	} {
		_, ok := cat.RuleForKind(kind)
		assert.False(t, ok, "kind %q should not be claimed by a built-in rule", kind)
	}
}

func TestDefault_EverySeverityRepresented(t *testing.T) {
	t.Parallel()

	cat, err := Default()
	require.NoError(t, err)

	counts := make(map[domain.Severity]int)
	for _, rule := range cat.Rules() {
		counts[rule.Severity]++
	}
	for _, severity := range domain.Severities() {
		assert.Greater(t, counts[severity], 0, "no built-in rule with severity %q", severity)
	}
}
