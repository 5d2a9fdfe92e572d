// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-table-sync/internal/app"
)

// Errors of the reference table service. Their messages are written into
// HTTP error bodies unchanged.
var (
	ErrInvalidDataProvided    = errors.New(app.MsgInvalidDataProvided)
	ErrTableNotFound          = errors.New(app.MsgTableNotFound)
	ErrRowNotFound            = errors.New(app.MsgRowNotFound)
	ErrRowETagMismatch        = errors.New(app.MsgRowETagMismatch)
	ErrPropertiesETagMismatch = errors.New(app.MsgPropertiesETagMismatch)
	ErrTableIDMismatch        = errors.New(app.MsgTableIDMismatch)
	ErrRowIDMismatch          = errors.New(app.MsgRowIDMismatch)
)

// Errors of the client sync services.
var (
	// ErrRemoteTableNotFound means the remote side does not know the table.
	// Publish it first.
	ErrRemoteTableNotFound = errors.New("remote table not found")

	// ErrRowVersionConflict means a pushed row was changed remotely since it
	// was last pulled. The next pull surfaces it as a conflict.
	ErrRowVersionConflict = errors.New("row changed remotely")

	// ErrPropertiesVersionConflict means the remote properties moved on; pull
	// before writing properties again.
	ErrPropertiesVersionConflict = errors.New("table properties changed remotely")

	// ErrNotAuthorized means the remote side rejected the credential.
	ErrNotAuthorized = errors.New("not authorized by remote side")

	// ErrTableNeverSynced is returned by operations that need a sync tag.
	ErrTableNeverSynced = errors.New("table was never synchronized")
)
