package evaluator

import (
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uilint/core/pkg/catalog"
	"github.com/uilint/core/pkg/domain"
)

const guideSource = `
rules:
  - id: prefer-get-by-role
    category: query-priority
    severity: high
    antiPattern: direct-dom-query
    recommendation: Query by role and accessible name instead of reaching into the DOM.
  - id: no-shared-render
    category: structure
    severity: high
    antiPattern: shared-render-across-tests
    recommendation: Give every test its own render.
  - id: prefer-user-event
    category: interaction
    severity: medium
    antiPattern: fire-event-call
    recommendation: Simulate input with userEvent.
  - id: prefer-find-by
    category: async
    severity: low
    antiPattern: wait-for-wrapping-get-by
    recommendation: Replace waitFor around a single getBy query with findBy.
`

func guideCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load(strings.NewReader(guideSource))
	require.NoError(t, err)
	return cat
}

func TestEvaluate_MatchesFactToRule(t *testing.T) {
	t.Parallel()

	eval := New(guideCatalog(t))

	facts := []domain.CallSiteFact{
		{
			Kind:     domain.FactDirectDOMQuery,
			Location: domain.Location{File: "src/Login.test.tsx", StartLine: 42},
		},
	}

	findings, err := eval.Evaluate(facts)

	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, "prefer-get-by-role", findings[0].RuleID)
	assert.Equal(t, domain.SeverityHigh, findings[0].Severity)
	assert.Equal(t, domain.CategoryQueryPriority, findings[0].Category)
	assert.Equal(t, "src/Login.test.tsx", findings[0].Location.File)
	assert.Equal(t, 42, findings[0].Location.StartLine)
	assert.Equal(t, "Query by role and accessible name instead of reaching into the DOM.", findings[0].Message)
}

func TestEvaluate_OrdersBySeverityThenInput(t *testing.T) {
	t.Parallel()

	eval := New(guideCatalog(t))

	// Mixed severities arriving out of order; two high facts to prove
	// ties keep input order.
	facts := []domain.CallSiteFact{
		{Kind: domain.FactWaitForWrappingGetBy, Location: domain.Location{File: "a.test.tsx", StartLine: 10}},
		{Kind: domain.FactSharedRenderAcrossTests, Location: domain.Location{File: "a.test.tsx", StartLine: 20}},
		{Kind: domain.FactFireEventCall, Location: domain.Location{File: "a.test.tsx", StartLine: 30}},
		{Kind: domain.FactDirectDOMQuery, Location: domain.Location{File: "a.test.tsx", StartLine: 40}},
	}

	findings, err := eval.Evaluate(facts)

	require.NoError(t, err)
	require.Len(t, findings, 4)

	assert.Equal(t, "no-shared-render", findings[0].RuleID)
	assert.Equal(t, 20, findings[0].Location.StartLine)
	assert.Equal(t, "prefer-get-by-role", findings[1].RuleID)
	assert.Equal(t, 40, findings[1].Location.StartLine)
	assert.Equal(t, "prefer-user-event", findings[2].RuleID)
	assert.Equal(t, "prefer-find-by", findings[3].RuleID)
}

func TestEvaluate_SkipsUnclaimedKinds(t *testing.T) {
	t.Parallel()

	eval := New(guideCatalog(t))

	// Known vocabulary, but no rule in this catalog claims them.
	facts := []domain.CallSiteFact{
		{Kind: domain.FactGetByRoleQuery, Location: domain.Location{File: "a.test.tsx", StartLine: 5}},
		{Kind: domain.FactDirectDOMQuery, Location: domain.Location{File: "a.test.tsx", StartLine: 6}},
		{Kind: domain.FactSkippedTest, Location: domain.Location{File: "a.test.tsx", StartLine: 7}},
	}

	findings, err := eval.Evaluate(facts)

	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, "prefer-get-by-role", findings[0].RuleID)
}

func TestEvaluate_RejectsUnknownKind(t *testing.T) {
	t.Parallel()

	eval := New(guideCatalog(t))

	facts := []domain.CallSiteFact{
		{Kind: domain.FactDirectDOMQuery, Location: domain.Location{File: "a.test.tsx", StartLine: 1}},
		{Kind: domain.FactKind("quantum-query"), Location: domain.Location{File: "a.test.tsx", StartLine: 2}},
	}

	findings, err := eval.Evaluate(facts)

	require.Error(t, err)
	assert.Nil(t, findings)

	var unknown *UnknownFactKindError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, domain.FactKind("quantum-query"), unknown.Kind)
	assert.Equal(t, 1, unknown.Index)
	assert.Equal(t, "a.test.tsx", unknown.Location.File)
	assert.Contains(t, err.Error(), `unknown kind "quantum-query"`)
}

func TestEvaluate_EmptyFacts(t *testing.T) {
	t.Parallel()

	eval := New(guideCatalog(t))

	findings, err := eval.Evaluate(nil)

	require.NoError(t, err)
	assert.NotNil(t, findings)
	assert.Empty(t, findings)
}

// One finding per fact whose kind a rule claims, regardless of how
// often the same kind repeats.
func TestEvaluate_CountsEveryMatchedFact(t *testing.T) {
	t.Parallel()

	eval := New(guideCatalog(t))

	facts := make([]domain.CallSiteFact, 0, 10)
	for line := 1; line <= 10; line++ {
		facts = append(facts, domain.CallSiteFact{
			Kind:     domain.FactFireEventCall,
			Location: domain.Location{File: "form.test.tsx", StartLine: line},
		})
	}

	findings, err := eval.Evaluate(facts)

	require.NoError(t, err)
	require.Len(t, findings, 10)
	for i, f := range findings {
		assert.Equal(t, "prefer-user-event", f.RuleID)
		assert.Equal(t, i+1, f.Location.StartLine)
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	t.Parallel()

	eval := New(guideCatalog(t))

	facts := []domain.CallSiteFact{
		{Kind: domain.FactFireEventCall, Location: domain.Location{File: "a.test.tsx", StartLine: 3}},
		{Kind: domain.FactDirectDOMQuery, Location: domain.Location{File: "a.test.tsx", StartLine: 1}},
		{Kind: domain.FactGetByRoleQuery, Location: domain.Location{File: "a.test.tsx", StartLine: 2}},
		{Kind: domain.FactSharedRenderAcrossTests, Location: domain.Location{File: "b.test.tsx", StartLine: 9}},
	}

	first, err := eval.Evaluate(facts)
	require.NoError(t, err)

	second, err := eval.Evaluate(facts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEvaluate_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	eval := New(guideCatalog(t))

	facts := []domain.CallSiteFact{
		{Kind: domain.FactWaitForWrappingGetBy, Location: domain.Location{File: "a.test.tsx", StartLine: 1}},
		{Kind: domain.FactDirectDOMQuery, Location: domain.Location{File: "a.test.tsx", StartLine: 2}},
	}
	original := make([]domain.CallSiteFact, len(facts))
	copy(original, facts)

	_, err := eval.Evaluate(facts)

	require.NoError(t, err)
	assert.Equal(t, original, facts)
}

func TestEvaluate_Concurrency(t *testing.T) {
	t.Parallel()

	eval := New(guideCatalog(t))

	facts := []domain.CallSiteFact{
		{Kind: domain.FactDirectDOMQuery, Location: domain.Location{File: "a.test.tsx", StartLine: 1}},
		{Kind: domain.FactFireEventCall, Location: domain.Location{File: "a.test.tsx", StartLine: 2}},
	}

	const goroutines = 16

	var wg sync.WaitGroup
	var failures atomic.Int32

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			findings, err := eval.Evaluate(facts)
			if err != nil || len(findings) != 2 || findings[0].RuleID != "prefer-get-by-role" {
				failures.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Zero(t, failures.Load(), "concurrent evaluations diverged")
}

func TestEvaluate_PackageLevelHelper(t *testing.T) {
	t.Parallel()

	cat := guideCatalog(t)

	facts := []domain.CallSiteFact{
		{Kind: domain.FactDirectDOMQuery, Location: domain.Location{File: "a.test.tsx", StartLine: 1}},
	}

	findings, err := Evaluate(cat, facts)

	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, "prefer-get-by-role", findings[0].RuleID)
}
