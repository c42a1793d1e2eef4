// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

// Store-level errors returned by UserRepository implementations.
var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser is returned when a write violates the username or email unique constraint.
	ErrDuplicateUser = errors.New("username or email already exists")

	// ErrSessionNotFound is returned when a session cannot be found by ID.
	ErrSessionNotFound = errors.New("session not found")
)

// Errors surfaced to the user. Their messages are rendered as-is.
var (
	ErrPasswordMismatch     = errors.New("Password confirmation does not match.")
	ErrUsernameOrEmailTaken = errors.New("This username/email is already taken.")
	ErrAccountNotFound      = errors.New("An account with this username does not exists.")
	ErrWrongPassword        = errors.New("Wrong password")
	ErrProfileConflict      = errors.New("This email/username already exists.")
	ErrSocialOnlyAccount    = errors.New("Can't change password.")
	ErrIncorrectPassword    = errors.New("The current password is incorrect")
	ErrSamePassword         = errors.New("The old password equals new password")
	ErrPasswordConfirmation = errors.New("The password does not match the confirmation")
	ErrPasswordTooLong      = errors.New("Password must be at most 72 bytes long.")
)

// ValidationError reports a user record rejected by the store's field validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	msg := "User validation failed"
	for i, f := range e.Fields {
		if i == 0 {
			msg += ": "
		} else {
			msg += ", "
		}
		msg += f + " is required"
	}
	return msg
}

// OAuth flow errors. Every one of them ends the attempt with a redirect to the login page.
var (
	ErrUnknownProvider      = errors.New("unknown oauth provider")
	ErrMissingAuthorization = errors.New("missing authorization code")

	// ErrUnverifiedEmail is returned when a provider profile has no verified primary email.
	ErrUnverifiedEmail = errors.New("provider did not return a verified primary email")
)
