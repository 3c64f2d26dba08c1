package domain

// FactKind classifies a call site observed in a UI test file. The
// vocabulary is closed: front ends may only emit kinds listed here, and
// every rule's anti-pattern must name one of them.
//
// Not every kind maps to a rule. Kinds that describe recommended usage
// exist so front ends can report complete observations without the
// evaluator treating them as violations.
type FactKind string

// Query kinds describe how a test locates elements.
const (
	// FactDirectDOMQuery is a raw DOM lookup (querySelector, getElementById)
	// inside a test instead of a semantic query.
	FactDirectDOMQuery FactKind = "direct-dom-query"

	// FactTestIDQuery is a getByTestId-style lookup.
	FactTestIDQuery FactKind = "test-id-query"

	// FactGetByRoleQuery is a role-based semantic query. Recommended
	// usage; no rule claims it.
	FactGetByRoleQuery FactKind = "get-by-role-query"

	// FactGetByAbsenceAssertion asserts absence with a throwing getBy*
	// query instead of queryBy*.
	FactGetByAbsenceAssertion FactKind = "get-by-absence-assertion"

	// FactQueryByPresenceAssertion asserts presence with a null-returning
	// queryBy* query instead of getBy*.
	FactQueryByPresenceAssertion FactKind = "query-by-presence-assertion"
)

// Interaction kinds describe how a test simulates user input.
const (
	// FactFireEventCall dispatches a single synthetic event via fireEvent.
	FactFireEventCall FactKind = "fire-event-call"

	// FactNativeEventDispatch dispatches a browser event object directly
	// on a DOM node, bypassing the testing layer entirely.
	FactNativeEventDispatch FactKind = "native-event-dispatch"

	// FactUserEventDirectAPI calls the userEvent module API without a
	// setup() session.
	FactUserEventDirectAPI FactKind = "user-event-direct-api"

	// FactUserEventCall interacts through a userEvent session.
	// Recommended usage; no rule claims it.
	FactUserEventCall FactKind = "user-event-call"
)

// Async kinds describe how a test waits for UI updates.
const (
	// FactEmptyWaitFor is a waitFor call whose callback asserts nothing.
	FactEmptyWaitFor FactKind = "empty-wait-for"

	// FactSideEffectInWaitFor is a waitFor callback that performs actions
	// (clicks, renders, mutations) rather than only asserting.
	FactSideEffectInWaitFor FactKind = "side-effect-in-wait-for"

	// FactWaitForWrappingGetBy is a waitFor whose body is a single getBy*
	// query, expressible as one findBy* call.
	FactWaitForWrappingGetBy FactKind = "wait-for-wrapping-get-by"

	// FactFixedDelayWait is a sleep-style fixed timeout standing in for a
	// condition wait.
	FactFixedDelayWait FactKind = "fixed-delay-wait"

	// FactActWarningSuppression silences act() warnings instead of
	// awaiting the update that caused them.
	FactActWarningSuppression FactKind = "act-warning-suppression"
)

// Assertion kinds describe what a test asserts and how.
const (
	// FactRawAttributeAssertion inspects node attributes or properties by
	// hand where a dedicated DOM matcher exists.
	FactRawAttributeAssertion FactKind = "raw-attribute-assertion"

	// FactConditionalAssertion wraps an assertion in a branch, so the
	// test can pass without asserting anything.
	FactConditionalAssertion FactKind = "conditional-assertion"

	// FactFullComponentSnapshot snapshots an entire rendered component.
	FactFullComponentSnapshot FactKind = "full-component-snapshot"
)

// Mocking kinds describe what a test replaces with test doubles.
const (
	// FactDirectFetchMock stubs the fetch/XHR function itself rather than
	// intercepting at the network boundary.
	FactDirectFetchMock FactKind = "direct-fetch-mock"

	// FactMockWithoutReset installs a mock with no matching reset or
	// restore between tests.
	FactMockWithoutReset FactKind = "mock-without-reset"

	// FactInternalModuleMock mocks an internal collaborator of the
	// component under test.
	FactInternalModuleMock FactKind = "internal-module-mock"

	// FactNetworkHandlerSetup installs request handlers at the network
	// boundary. Recommended usage; no rule claims it.
	FactNetworkHandlerSetup FactKind = "network-handler-setup"
)

// Accessibility kinds describe habits that erode the accessibility
// contract of the UI under test.
const (
	// FactRoleAttributeCSSQuery selects elements by role attribute CSS
	// selectors instead of role-based queries.
	FactRoleAttributeCSSQuery FactKind = "role-attribute-css-query"

	// FactHiddenElementQuery queries elements hidden from the
	// accessibility tree by opting into hidden: true.
	FactHiddenElementQuery FactKind = "hidden-element-query"
)

// Structure kinds describe suite layout and test isolation.
const (
	// FactRenderInDescribeBlock renders a component in a describe body
	// shared by multiple tests.
	FactRenderInDescribeBlock FactKind = "render-in-describe-block"

	// FactSharedRenderAcrossTests reuses one rendered instance across
	// test boundaries.
	FactSharedRenderAcrossTests FactKind = "shared-render-across-tests"

	// FactFocusedTest is a test or suite pinned with .only.
	FactFocusedTest FactKind = "focused-test"

	// FactManualCleanupCall calls cleanup() by hand where the framework
	// already does it automatically.
	FactManualCleanupCall FactKind = "manual-cleanup-call"

	// FactSkippedTest is a test or suite disabled with .skip. Observed
	// for reporting; no rule claims it.
	FactSkippedTest FactKind = "skipped-test"
)

// AllFactKinds returns the complete vocabulary in declaration order.
func AllFactKinds() []FactKind {
	return []FactKind{
		FactDirectDOMQuery,
		FactTestIDQuery,
		FactGetByRoleQuery,
		FactGetByAbsenceAssertion,
		FactQueryByPresenceAssertion,
		FactFireEventCall,
		FactNativeEventDispatch,
		FactUserEventDirectAPI,
		FactUserEventCall,
		FactEmptyWaitFor,
		FactSideEffectInWaitFor,
		FactWaitForWrappingGetBy,
		FactFixedDelayWait,
		FactActWarningSuppression,
		FactRawAttributeAssertion,
		FactConditionalAssertion,
		FactFullComponentSnapshot,
		FactDirectFetchMock,
		FactMockWithoutReset,
		FactInternalModuleMock,
		FactNetworkHandlerSetup,
		FactRoleAttributeCSSQuery,
		FactHiddenElementQuery,
		FactRenderInDescribeBlock,
		FactSharedRenderAcrossTests,
		FactFocusedTest,
		FactManualCleanupCall,
		FactSkippedTest,
	}
}

var factKindSet = func() map[FactKind]struct{} {
	kinds := AllFactKinds()
	set := make(map[FactKind]struct{}, len(kinds))
	for _, k := range kinds {
		set[k] = struct{}{}
	}
	return set
}()

// Known reports whether k belongs to the vocabulary.
func (k FactKind) Known() bool {
	_, ok := factKindSet[k]
	return ok
}
