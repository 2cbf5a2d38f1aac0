package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the whole configuration tree.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %s", ValidationError(err))
	}
	return nil
}

// ValidationError turns validator.ValidationErrors into a readable message.
func ValidationError(err error) string {
	if err == nil {
		return ""
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	var errorMsgs []string
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required":
			errorMsgs = append(errorMsgs, fmt.Sprintf("Field '%s' is required", e.Namespace()))
		case "url":
			errorMsgs = append(errorMsgs, fmt.Sprintf("Field '%s' must be a valid URL", e.Namespace()))
		case "oneof":
			errorMsgs = append(errorMsgs, fmt.Sprintf("Field '%s' must be one of [%s]", e.Namespace(), e.Param()))
		case "gt", "gte":
			errorMsgs = append(errorMsgs, fmt.Sprintf("Field '%s' must be %s %s", e.Namespace(), e.Tag(), e.Param()))
		default:
			errorMsgs = append(errorMsgs, fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Namespace(), e.Tag()))
		}
	}

	return strings.Join(errorMsgs, ", ")
}
