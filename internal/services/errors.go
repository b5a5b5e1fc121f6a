package services

import "errors"

// ValidationError marks a failure the user can fix (missing required field,
// unusable coordinates). Handlers surface its message as a blocking response;
// everything else stays a generic failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationError(msg string) error {
	return &ValidationError{Message: msg}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
