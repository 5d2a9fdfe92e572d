// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-table-sync/internal/store"
	"github.com/MKhiriev/go-table-sync/models"
)

// SyncResult reports one table synchronization.
type SyncResult struct {
	TableID string

	// FullResync is set when the pull started from no tag, either because
	// the table was never synchronized or because its stored tag was corrupt.
	FullResync bool

	Pulled store.ApplyResult

	Inserted int
	Updated  int
	Deleted  int

	// Conflicts is the number of rows waiting for resolution after the sync.
	Conflicts int

	// TableSyncTag is the tag persisted at the end of the sync.
	TableSyncTag models.SyncTag
}

// ClientTableSyncService synchronizes local tables with the remote side.
type ClientTableSyncService interface {
	// SyncTable pulls the remote changes of one table, applies them locally
	// and pushes pending local inserts, updates and deletions in that order.
	// Progress is persisted after every step, so a failed sync keeps the
	// rows confirmed before the failure.
	SyncTable(ctx context.Context, tableID string) (SyncResult, error)

	// SyncAll synchronizes every registered table. A failing table does not
	// stop the others; the returned error joins all table failures.
	SyncAll(ctx context.Context) ([]SyncResult, error)
}

// ClientTableService manages the remote lifecycle of local tables.
type ClientTableService interface {
	// PublishTable creates the remote table from the locally registered
	// definition.
	PublishTable(ctx context.Context, tableID string) (models.SyncTag, error)

	// ImportRemoteTables registers every remote table that is unknown
	// locally and returns their ids. Columns arrive with the first sync.
	ImportRemoteTables(ctx context.Context) ([]string, error)

	// UnpublishTable deletes the table remotely and locally.
	UnpublishTable(ctx context.Context, tableID string) error

	// PushProperties replaces the remote table properties. It requires a
	// synchronized table and fails with ErrPropertiesVersionConflict when
	// the remote properties changed since the last pull.
	PushProperties(ctx context.Context, tableID string, entries []models.KeyValueStoreEntry) (models.SyncTag, error)
}

// ClientSyncJob defines the contract for a background sync worker that
// periodically calls SyncAll.
type ClientSyncJob interface {
	// Start launches the background sync goroutine. It syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
