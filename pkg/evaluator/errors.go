package evaluator

import (
	"fmt"

	"github.com/uilint/core/pkg/domain"
)

// UnknownFactKindError reports a fact whose kind is outside the fixed
// vocabulary. This is distinct from a known kind no rule claims: an
// unknown kind means the front end and this module disagree about the
// vocabulary itself, so the whole evaluation is rejected.
type UnknownFactKindError struct {
	Kind     domain.FactKind
	Location domain.Location
	Index    int
}

func (e *UnknownFactKindError) Error() string {
	return fmt.Sprintf("evaluator: fact #%d at %s has unknown kind %q", e.Index, e.Location, e.Kind)
}
