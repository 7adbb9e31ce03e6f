package domain

import "errors"

// Authentication and authorization failures. Callers must not expose which
// step of a login failed, so unknown users and wrong passwords share
// ErrInvalidCredentials.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("access forbidden")
	ErrConfiguration      = errors.New("invalid configuration")
	ErrEmptyPassword      = errors.New("password must not be empty")
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUserExists      = errors.New("user already exists")
	ErrArticleNotFound = errors.New("article not found")
	ErrCourseNotFound  = errors.New("course not found")
)
