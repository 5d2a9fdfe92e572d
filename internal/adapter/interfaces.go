// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter implements the client side of the remote table protocol.
//
// The primary abstraction is [Synchronizer], which decouples the sync
// orchestration from the transport. The package ships an HTTP/REST
// implementation ([NewHTTPSynchronizer]) that talks to a table collection
// rooted at "<address>/odktables/tables/" in JSON or XML.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling. Row-level push failures are reported as [*RowError]
// alongside the partial result.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-table-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/synchronizer_mock.go -package=mock

// Synchronizer performs incremental pull, row push and properties
// reconciliation against one remote table collection.
//
// Every operation fails with an error wrapping [ErrTransport] on network or
// timeout failures, which is distinct from application-level rejections.
type Synchronizer interface {
	// GetTables enumerates the remote tables visible to the credential,
	// keyed by table id with the table key as value.
	GetTables(ctx context.Context) (map[string]string, error)

	// CreateTable creates or replaces the remote table resource keyed by
	// tableID and returns its initial tag. Local column types are downgraded
	// to remote element types with [RemoteColumnType].
	CreateTable(ctx context.Context, tableID string, columns []models.LocalColumn, tableKey, dbTableName string,
		tableType models.TableType, accessControlTableID string) (models.SyncTag, error)

	// DeleteTable removes the remote table. A table that is already gone is
	// not an error.
	DeleteTable(ctx context.Context, tableID string) error

	// GetUpdates pulls the remote changes since current. A nil current means
	// the table was never synchronized and yields a full snapshot. When the
	// remote versions equal current the result is empty and nothing but the
	// table handle is transferred.
	GetUpdates(ctx context.Context, tableID string, current *models.SyncTag) (models.IncomingModification, error)

	// InsertRows pushes rows the remote side has never confirmed.
	//
	// On a row failure the remaining rows are abandoned and the returned
	// Modification holds only the rows confirmed so far, together with an
	// error of type [*RowError].
	InsertRows(ctx context.Context, tableID string, current models.SyncTag, rows []models.SyncRow) (models.Modification, error)

	// UpdateRows pushes rows previously confirmed under their RowETag.
	// Partial failures are reported as in InsertRows.
	UpdateRows(ctx context.Context, tableID string, current models.SyncTag, rows []models.SyncRow) (models.Modification, error)

	// DeleteRows deletes rows remotely and returns the advanced tag. On a
	// row failure the returned tag reflects only the confirmed deletions
	// and the [*RowError] lists them in Confirmed.
	DeleteRows(ctx context.Context, tableID string, current models.SyncTag, rowIDs []string) (models.SyncTag, error)

	// SetTableProperties conditionally replaces the table properties. It
	// fails with [ErrStaleVersion] when the remote properties version has
	// advanced past current.
	SetTableProperties(ctx context.Context, tableID string, current models.SyncTag, tableKey string,
		entries []models.KeyValueStoreEntry) (models.SyncTag, error)
}

// ResourceCache holds the last known remote handle per table id. It is
// owned by one synchronizer and may be shared by several of them.
type ResourceCache interface {
	Get(tableID string) (models.TableResource, bool)
	Put(resource models.TableResource)
	Invalidate(tableID string)
}
