package service

import "errors"

var (
	// ErrInvalidCredentials covers both unknown username and wrong password,
	// so callers cannot probe which usernames exist
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUsernameTaken is returned when registering with an existing username
	ErrUsernameTaken = errors.New("username already exists")

	// ErrEmailTaken is returned when registering with an existing email,
	// or patching a profile to one
	ErrEmailTaken = errors.New("email already exists")
)
