package validators

import "errors"

// ValidationError is a client input error. Its message is safe to return to
// the caller.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func newValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

// AsValidationError returns the *ValidationError err is or wraps.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return nil, false
	}
	return ve, true
}

var ErrUnsupportedType = errors.New("unsupported type for validation")

var (
	ErrCredentialsRequired     = newValidationError("username and password are required")
	ErrUsernameTooLong         = newValidationError("username must be at most 64 characters")
	ErrPasswordTooLong         = newValidationError("password must be at most 72 bytes")
	ErrNameAndPositionRequired = newValidationError("name and position are required")
	ErrTitleAndContentRequired = newValidationError("title and content are required")
	ErrInvalidOrderIndex       = newValidationError("orderIndex must not be negative")
	ErrContactFieldsRequired   = newValidationError("name, email, and message are required")
	ErrInvalidEmail            = newValidationError("invalid email address")
	ErrIsReadRequired          = newValidationError("isRead field is required")
	ErrCommentFieldsRequired   = newValidationError("content and pageId are required")
	ErrGuestNameRequired       = newValidationError("guest name is required for anonymous comments")
	ErrContentRequired         = newValidationError("content is required")
	ErrInvalidParentID         = newValidationError("invalid parentId")
	ErrParentPageMismatch      = newValidationError("parent comment belongs to another page")
	ErrTitleRequired           = newValidationError("title is required")
	ErrInvalidSlug             = newValidationError("slug may contain only lowercase letters, digits and dashes")
	ErrTitleAndGroupRequired   = newValidationError("title and groupSlug are required")
	ErrInvalidID               = newValidationError("invalid id")
	ErrInvalidRequestBody      = newValidationError("invalid request body")
)
