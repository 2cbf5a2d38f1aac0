package validation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingRequiredParam = errors.New("missing required parameter")
	ErrInvalidDate          = errors.New("invalid date")
	ErrNoParamProvided      = errors.New("no parameter provided")
)

// ParamError describes a rejected query parameter. Kind is one of the
// sentinel errors above, so callers can match it with errors.Is.
type ParamError struct {
	Kind       error
	Param      string
	Value      string
	Candidates []string
}

func (e *ParamError) Error() string {
	switch e.Kind {
	case ErrMissingRequiredParam:
		return fmt.Sprintf("%v: %s", e.Kind, e.Param)
	case ErrInvalidDate:
		if e.Param != "" {
			return fmt.Sprintf("%v: %s=%q, expected YYYY-MM-DD", e.Kind, e.Param, e.Value)
		}
		return fmt.Sprintf("%v: %q, expected YYYY-MM-DD", e.Kind, e.Value)
	case ErrNoParamProvided:
		return fmt.Sprintf("%v: provide at least one of %s", e.Kind, strings.Join(e.Candidates, ", "))
	default:
		return fmt.Sprintf("%v", e.Kind)
	}
}

func (e *ParamError) Unwrap() error {
	return e.Kind
}
