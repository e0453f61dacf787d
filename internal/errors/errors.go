package errors

import "errors"

var (
	// ErrDuplicateEmail is returned when a signup email is already registered.
	ErrDuplicateEmail = errors.New("Existing User found!")
	// ErrInvalidEmail is returned when a login email matches no user.
	ErrInvalidEmail = errors.New("Invalid Email")
	// ErrWrongPassword is returned when the login password does not verify.
	ErrWrongPassword = errors.New("Wrong Password")
	// ErrUserNotFound is returned when a cart operation targets a missing user.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidSlot is returned when an item id is outside the cart range.
	ErrInvalidSlot = errors.New("invalid item id")
)

// AuthRequired is the body sent with every 401 on the cart endpoints.
type AuthRequired struct {
	Errors string `json:"errors"`
}

// FailureResponse is the flat failure body used by signup and login.
type FailureResponse struct {
	Success bool   `json:"success"`
	Errors  string `json:"errors"`
}

// NewFailure builds a FailureResponse from a domain error.
func NewFailure(err error) FailureResponse {
	return FailureResponse{Success: false, Errors: err.Error()}
}
