package model

import "errors"

var (
	ErrNotFound           = errors.New("record not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrWeakPassword       = errors.New("password does not meet security requirements")
	ErrInvalidCredentials = errors.New("incorrect email or password")
)
