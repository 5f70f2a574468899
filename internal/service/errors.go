package service

import "errors"

// Service-level errors. Handlers map these onto the HTTP surface:
// validation failures to 400, missing/invalid sessions to 401, unique-key
// conflicts to 409, missing records to 404; anything else is a 500.
var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrUsernameTaken      = errors.New("username taken")
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrAuthRequired = errors.New("you must be logged in")
	// ErrSessionUserGone means a live session references a deleted user.
	ErrSessionUserGone = errors.New("user not found")

	ErrUserNotFound  = errors.New("user not found")
	ErrItemNotFound  = errors.New("item not found")
	ErrInvalidItemID = errors.New("invalid item id format")

	ErrInvalidItem  = errors.New("name and a positive price are required")
	ErrEmptyUpdate  = errors.New("update body cannot be empty")
	ErrInvalidName  = errors.New("name must be a non-empty string")
	ErrInvalidPrice = errors.New("price must be a positive number")
)
