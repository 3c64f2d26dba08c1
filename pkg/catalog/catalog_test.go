package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uilint/core/pkg/domain"
)

func TestCatalog_Lookup(t *testing.T) {
	t.Parallel()

	cat := mustLoad(t, validSource)

	t.Run("should find an existing rule", func(t *testing.T) {
		t.Parallel()

		rule, ok := cat.Lookup("no-empty-wait-for")

		require.True(t, ok)
		assert.Equal(t, "no-empty-wait-for", rule.ID)
		assert.Equal(t, domain.SeverityHigh, rule.Severity)
	})

	t.Run("should miss an unknown id", func(t *testing.T) {
		t.Parallel()

		rule, ok := cat.Lookup("no-such-rule")

		assert.False(t, ok)
		assert.Zero(t, rule)
	})
}

func TestCatalog_ByCategory(t *testing.T) {
	t.Parallel()

	cat := mustLoad(t, validSource)

	t.Run("should return rules in declaration order", func(t *testing.T) {
		t.Parallel()

		rules := cat.ByCategory(domain.CategoryAsync)

		require.Len(t, rules, 2)
		assert.Equal(t, "no-empty-wait-for", rules[0].ID)
		assert.Equal(t, "prefer-find-by", rules[1].ID)
	})

	t.Run("should return empty for a category with no rules", func(t *testing.T) {
		t.Parallel()

		rules := cat.ByCategory(domain.CategoryMocking)

		assert.NotNil(t, rules)
		assert.Empty(t, rules)
	})
}

func TestCatalog_RuleForKind(t *testing.T) {
	t.Parallel()

	cat := mustLoad(t, validSource)

	t.Run("should resolve a claimed kind to its rule", func(t *testing.T) {
		t.Parallel()

		rule, ok := cat.RuleForKind(domain.FactEmptyWaitFor)

		require.True(t, ok)
		assert.Equal(t, "no-empty-wait-for", rule.ID)
	})

	t.Run("should miss a known kind no rule claims", func(t *testing.T) {
		t.Parallel()

		rule, ok := cat.RuleForKind(domain.FactSkippedTest)

		assert.False(t, ok)
		assert.Zero(t, rule)
	})
}

// Mutating the slice returned by Rules must not change the catalog.
func TestCatalog_RulesReturnsCopy(t *testing.T) {
	t.Parallel()

	cat := mustLoad(t, validSource)

	rules := cat.Rules()
	rules[0].ID = "hijacked"
	rules[0].Severity = domain.SeverityLow

	fresh := cat.Rules()
	assert.Equal(t, "no-empty-wait-for", fresh[0].ID)
	assert.Equal(t, domain.SeverityHigh, fresh[0].Severity)

	rule, ok := cat.Lookup("no-empty-wait-for")
	require.True(t, ok)
	assert.Equal(t, domain.SeverityHigh, rule.Severity)
}
