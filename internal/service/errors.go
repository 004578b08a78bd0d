package service

import "errors"

// Sentinel errors of the business layer. The HTTP layer maps each kind to a
// fixed status code.
var (
	ErrInvalidCredentials = errors.New("failed to validate credentials") // 401
	ErrUserExists         = errors.New("user already exists")            // 400
	ErrUserNotFound       = errors.New("user not found")                 // 404
	ErrItemNotFound       = errors.New("item not found")                 // 404
	ErrOrderNotFound      = errors.New("order not found")                // 404
	ErrItemNotInOrder     = errors.New("item not in order")              // 404
	ErrOrderIsEmpty       = errors.New("order is empty")                 // 400
)
