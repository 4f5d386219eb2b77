// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Durmanov

package service

import (
	"errors"

	"github.com/ndurmanov/medirates/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrInvalidCredentials):
		return ErrWrongCredentials

	case errors.Is(err, adapter.ErrNotAuthenticated),
		errors.Is(err, adapter.ErrUnauthorized):
		return ErrSessionRequired

	case errors.Is(err, adapter.ErrNotFound):
		return ErrServiceNotFound

	case errors.Is(err, adapter.ErrConflict):
		return ErrRemoteConflict

	case errors.Is(err, adapter.ErrServerUnavailable):
		return ErrRemoteDown
	}

	return err
}
