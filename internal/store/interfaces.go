// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-table-sync/internal/rowstate"
	"github.com/MKhiriev/go-table-sync/models"
)

// LocalRow is one row of a synchronized table as kept on this device.
type LocalRow struct {
	TableID string
	RowID   string
	// RowETag is the last remote-confirmed row version. Empty for rows that
	// were never accepted by the remote side.
	RowETag string
	State   rowstate.State
	Values  models.Values
	// Conflict holds the remote side of a collision. Set only while State is
	// CONFLICTING.
	Conflict  *RowConflict
	UpdatedAt time.Time
}

// RowConflict is the remote version retained next to a conflicting local row.
type RowConflict struct {
	RowETag string
	Values  models.Values
	Deleted bool
}

// SyncRow returns the transmissible payload of r.
func (r LocalRow) SyncRow() models.SyncRow {
	return models.SyncRow{
		RowID:   r.RowID,
		RowETag: r.RowETag,
		Deleted: r.State == rowstate.Deleting,
		Values:  r.Values.Clone(),
	}
}

// ApplyResult counts what happened to the rows of one pull.
type ApplyResult struct {
	Created     int
	Overwritten int
	Purged      int
	Kept        int
	Ignored     int
	Conflicts   int
}

// Total is the number of pulled rows the result accounts for.
func (r ApplyResult) Total() int {
	return r.Created + r.Overwritten + r.Purged + r.Kept + r.Ignored + r.Conflicts
}

//go:generate mockgen -source=interfaces.go -destination=../mock/local_table_repository_mock.go -package=mock
type LocalTableRepository interface {
	RegisterTable(ctx context.Context, table models.LocalTable, columns []models.LocalColumn) error
	GetTable(ctx context.Context, tableID string) (models.LocalTable, error)
	ListTables(ctx context.Context) ([]models.LocalTable, error)
	GetColumns(ctx context.Context, tableID string) ([]models.LocalColumn, error)
	DeleteTable(ctx context.Context, tableID string) error

	// GetSyncTag returns nil when the table has never been synchronized. A
	// stored token that cannot be parsed yields an error wrapping
	// models.ErrMalformedSyncTag.
	GetSyncTag(ctx context.Context, tableID string) (*models.SyncTag, error)
	SaveSyncTag(ctx context.Context, tableID string, tag models.SyncTag) error

	// InsertRow stores a new local row and returns its id. An empty rowID
	// gets a generated one.
	InsertRow(ctx context.Context, tableID, rowID string, values models.Values) (string, error)
	UpdateRow(ctx context.Context, tableID, rowID string, values models.Values) error
	DeleteRow(ctx context.Context, tableID, rowID string) error
	GetRow(ctx context.Context, tableID, rowID string) (LocalRow, error)

	PendingRows(ctx context.Context, tableID string, state rowstate.State) ([]LocalRow, error)
	ConfirmRows(ctx context.Context, tableID string, pushed []models.SyncRow, mod models.Modification) error
	ConfirmDeletedRows(ctx context.Context, tableID string, rowIDs []string, tag models.SyncTag) error
	ApplyIncoming(ctx context.Context, tableID string, incoming models.IncomingModification) (ApplyResult, error)

	ListConflicts(ctx context.Context, tableID string) ([]LocalRow, error)
	ResolveConflict(ctx context.Context, tableID, rowID string, keepLocal bool) error
}
