package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
}

func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validation failed: %w", err)
	}

	errMsgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errMsgs = append(errMsgs, fmt.Sprintf(
			"Field: %s, Tag: %s, Param: %s", fe.Namespace(), fe.Tag(), fe.Param(),
		))
	}
	return fmt.Errorf("validation failed: %s", strings.Join(errMsgs, "; "))
}

// ValidateValue checks a single value against a tag, e.g. "oneof=easy hard".
func ValidateValue(v interface{}, tag string) error {
	if err := validate.Var(v, tag); err != nil {
		return fmt.Errorf("invalid value %v: %w", v, err)
	}
	return nil
}
