// Package validation checks and normalizes raw query parameters before they
// are forwarded upstream. Every function here is pure.
package validation

import "regexp"

// Params maps an inbound parameter name to its raw value. An empty value is
// treated the same as a missing key.
type Params map[string]string

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateDate returns value unchanged when it has the YYYY-MM-DD shape.
// Only the shape is checked, so "2016-99-99" is accepted.
func ValidateDate(value string) (string, error) {
	if !datePattern.MatchString(value) {
		return "", &ParamError{Kind: ErrInvalidDate, Value: value}
	}
	return value, nil
}

// RequireParam returns the value of name, failing when it is absent or empty.
func RequireParam(params Params, name string) (string, error) {
	v, ok := params[name]
	if !ok || v == "" {
		return "", &ParamError{Kind: ErrMissingRequiredParam, Param: name}
	}
	return v, nil
}

// RequireAtLeastOne returns the subset of names present in params, in the
// order given. It fails when none of them are present.
func RequireAtLeastOne(params Params, names ...string) ([]string, error) {
	var present []string
	for _, name := range names {
		if v, ok := params[name]; ok && v != "" {
			present = append(present, name)
		}
	}
	if len(present) == 0 {
		candidates := make([]string, len(names))
		copy(candidates, names)
		return nil, &ParamError{Kind: ErrNoParamProvided, Candidates: candidates}
	}
	return present, nil
}

// ValidateDateParam is ValidateDate for a named parameter. An absent key
// passes, since every date parameter is optional; a present but empty value
// does not.
func ValidateDateParam(params Params, name string) error {
	v, ok := params[name]
	if !ok {
		return nil
	}
	if _, err := ValidateDate(v); err != nil {
		return &ParamError{Kind: ErrInvalidDate, Param: name, Value: v}
	}
	return nil
}
