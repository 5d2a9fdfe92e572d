// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-table-sync/internal/adapter"
	"github.com/MKhiriev/go-table-sync/internal/app"
)

// mapAdapterError adds a service error to the adapter error chain. The
// original chain stays intact, so callers can still match adapter errors
// and unwrap a *adapter.RowError.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := err.Error()

	switch {
	case errors.Is(err, adapter.ErrInvalidCredential),
		errors.Is(err, adapter.ErrUnauthorized),
		errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrNotAuthorized, err)

	case errors.Is(err, adapter.ErrStaleVersion) && strings.Contains(msg, app.MsgPropertiesETagMismatch):
		return fmt.Errorf("%w: %w", ErrPropertiesVersionConflict, err)

	case errors.Is(err, adapter.ErrStaleVersion) && strings.Contains(msg, app.MsgRowETagMismatch):
		return fmt.Errorf("%w: %w", ErrRowVersionConflict, err)

	case errors.Is(err, adapter.ErrNotFound) && strings.Contains(msg, app.MsgTableNotFound):
		return fmt.Errorf("%w: %w", ErrRemoteTableNotFound, err)
	}

	return err
}
