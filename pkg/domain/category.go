package domain

// Category groups rules by the aspect of a UI test they police. Every
// rule belongs to exactly one category.
type Category string

const (
	// CategoryQueryPriority covers how elements are located: roles and
	// accessible text before test ids, test ids before raw DOM access.
	CategoryQueryPriority Category = "query-priority"

	// CategoryInteraction covers how user input is simulated.
	CategoryInteraction Category = "interaction"

	// CategoryAsync covers waiting for asynchronous UI updates.
	CategoryAsync Category = "async"

	// CategoryAssertion covers what tests assert and how.
	CategoryAssertion Category = "assertion"

	// CategoryMocking covers what gets mocked and at which boundary.
	CategoryMocking Category = "mocking"

	// CategoryAccessibility covers test habits that preserve the
	// accessibility contract of the UI under test.
	CategoryAccessibility Category = "accessibility"

	// CategoryStructure covers suite layout and test isolation.
	CategoryStructure Category = "structure"
)

// Categories returns all valid categories in declaration order.
func Categories() []Category {
	return []Category{
		CategoryQueryPriority,
		CategoryInteraction,
		CategoryAsync,
		CategoryAssertion,
		CategoryMocking,
		CategoryAccessibility,
		CategoryStructure,
	}
}

// Valid reports whether c is one of the enumerated categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryQueryPriority, CategoryInteraction, CategoryAsync,
		CategoryAssertion, CategoryMocking, CategoryAccessibility,
		CategoryStructure:
		return true
	default:
		return false
	}
}
