package service

import "errors"

var (
	// ErrForbidden is returned by [AccessService.Authorize] when the caller
	// lacks the required permission.
	ErrForbidden = errors.New("403 Forbidden")

	// ErrProjectNotFound hides both unknown projects and projects the caller
	// cannot read.
	ErrProjectNotFound = errors.New("404 Project Not Found")

	// ErrLabelAlreadyExists is the explicit create-time conflict.
	ErrLabelAlreadyExists = errors.New("409 Label already exists")

	// ErrMissingUpdateAttributes is returned when an update carries none of
	// new_name, color and description.
	ErrMissingUpdateAttributes = errors.New("new_name, color, description are missing, at least one parameter must be provided")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrUserBlocked             = errors.New("user is blocked")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
