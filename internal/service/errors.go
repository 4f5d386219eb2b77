package service

import "errors"

var (
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrSessionRequired  = errors.New("sign in to manage services")
	ErrServiceNotFound  = errors.New("service no longer exists")
	ErrRemoteConflict   = errors.New("the service was changed by someone else")
	ErrRemoteDown       = errors.New("the server is temporarily unavailable")
)
