// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport wraps network, connection and timeout failures. The
	// caller may retry the batch or the single row.
	ErrTransport = errors.New("transport error")
	// ErrStaleVersion means the remote side moved past the caller's version
	// even after the table handle was refreshed. The caller must pull before
	// pushing again.
	ErrStaleVersion = errors.New("stale version")
	// ErrInvalidCredential is fatal for the session: the caller must obtain
	// a new token and construct a new synchronizer.
	ErrInvalidCredential = errors.New("invalid credential")
)

// HTTP status sentinels produced by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrPreconditionFailed  = errors.New("precondition failed")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

// RowError reports the row on which a push or delete batch stopped.
type RowError struct {
	// RowID is the row that failed.
	RowID string
	// Confirmed lists the rows the remote side accepted before the failure.
	Confirmed []string
	// Err is the underlying failure.
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %s: %v", e.RowID, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
