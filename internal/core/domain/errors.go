package domain

import "errors"

// Auth errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrCorruptCredential  = errors.New("stored credential is corrupt")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("token is invalid")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("forbidden")
)

// User errors
var (
	ErrEmailTaken  = errors.New("email already registered")
	ErrInvalidRole = errors.New("invalid access role")
)

// Product errors
var (
	ErrProductNotFound = errors.New("product not found")
	ErrCodeRequired    = errors.New("product code is required")
	ErrInvalidABC      = errors.New("invalid ABC classification")
	ErrInvalidType     = errors.New("invalid product type")
	ErrDuplicateCode   = errors.New("product code already registered")
)
