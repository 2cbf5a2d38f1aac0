package service

import (
	"errors"
	"fmt"
)

var ErrUpstreamCallFailed = errors.New("upstream call failed")

// UpstreamError reports a failed outbound call to Resource. It matches
// ErrUpstreamCallFailed and the underlying cause.
type UpstreamError struct {
	Resource string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrUpstreamCallFailed, e.Resource, e.Err)
}

func (e *UpstreamError) Unwrap() []error {
	return []error{ErrUpstreamCallFailed, e.Err}
}
