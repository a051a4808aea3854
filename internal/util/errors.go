package util

import "errors"

// Validation failures. All are user-correctable and map to 400.
var (
	ErrNoResponses         = errors.New("no responses")
	ErrDuplicateQuestionID = errors.New("duplicate question id")
	ErrInvalidQuestionID   = errors.New("invalid question id")
	ErrInvalidAnswerID     = errors.New("invalid answer id")
	ErrAnswerMismatch      = errors.New("answer does not belong to question")
)

var validationErrors = []error{
	ErrNoResponses,
	ErrDuplicateQuestionID,
	ErrInvalidQuestionID,
	ErrInvalidAnswerID,
	ErrAnswerMismatch,
}

// IsValidationError reports whether err belongs to the validation
// taxonomy, as opposed to a storage failure.
func IsValidationError(err error) bool {
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
