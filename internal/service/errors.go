// FILE: internal/service/errors.go
package service

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyFile          = errors.New("file is empty")
)
