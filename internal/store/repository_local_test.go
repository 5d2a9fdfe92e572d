// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-table-sync/internal/config"
	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/rowstate"
	"github.com/MKhiriev/go-table-sync/models"
)

const testTableID = "patients"

func newTestRepo(t *testing.T) LocalTableRepository {
	t.Helper()

	ctx := context.Background()
	db, err := NewConnectSQLite(ctx, config.ClientDB{DSN: filepath.Join(t.TempDir(), "sync.db")}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())

	return NewLocalTableRepository(db, logger.Nop())
}

func newRegisteredRepo(t *testing.T) LocalTableRepository {
	t.Helper()

	repo := newTestRepo(t)
	err := repo.RegisterTable(context.Background(), models.LocalTable{
		TableID:     testTableID,
		TableKey:    testTableID,
		DBTableName: testTableID,
	}, []models.LocalColumn{
		{ElementKey: "name", ElementName: "name", ElementType: models.ColumnTypeText, IsPersisted: true},
		{ElementKey: "age", ElementName: "age", ElementType: models.ColumnTypeInteger, IsPersisted: true},
	})
	require.NoError(t, err)
	return repo
}

func stateOf(t *testing.T, repo LocalTableRepository, rowID string) rowstate.State {
	t.Helper()
	row, err := repo.GetRow(context.Background(), testTableID, rowID)
	require.NoError(t, err)
	return row.State
}

// ── Tables ──────────────────────────────────────────────────────────────────

func TestRegisterTable(t *testing.T) {
	ctx := context.Background()
	repo := newRegisteredRepo(t)

	table, err := repo.GetTable(ctx, testTableID)
	require.NoError(t, err)
	assert.Equal(t, models.TableTypeData, table.Type)
	assert.Empty(t, table.SyncTag)
	assert.False(t, table.CreatedAt.IsZero())

	columns, err := repo.GetColumns(ctx, testTableID)
	require.NoError(t, err)
	require.Len(t, columns, 2)
	assert.Equal(t, "name", columns[0].ElementKey)
	assert.Equal(t, models.ColumnTypeInteger, columns[1].ElementType)

	err = repo.RegisterTable(ctx, models.LocalTable{TableID: testTableID}, nil)
	assert.ErrorIs(t, err, ErrTableAlreadyExists)
}

func TestListTables(t *testing.T) {
	ctx := context.Background()
	repo := newRegisteredRepo(t)
	require.NoError(t, repo.RegisterTable(ctx, models.LocalTable{TableID: "households", TableKey: "households"}, nil))

	tables, err := repo.ListTables(ctx)
	require.NoError(t, err)
	require.Len(t, tables, 2)
	assert.Equal(t, "households", tables[0].TableID)
	assert.Equal(t, testTableID, tables[1].TableID)
}

func TestDeleteTable(t *testing.T) {
	ctx := context.Background()
	repo := newRegisteredRepo(t)
	rowID, err := repo.InsertRow(ctx, testTableID, "", models.Values{"name": "a"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteTable(ctx, testTableID))

	_, err = repo.GetTable(ctx, testTableID)
	assert.ErrorIs(t, err, ErrTableNotFound)
	_, err = repo.GetRow(ctx, testTableID, rowID)
	assert.ErrorIs(t, err, ErrRowNotFound)
	assert.ErrorIs(t, repo.DeleteTable(ctx, testTableID), ErrTableNotFound)
}

// ── Sync tags ───────────────────────────────────────────────────────────────

func TestSyncTag(t *testing.T) {
	ctx := context.Background()
	repo := newRegisteredRepo(t)

	tag, err := repo.GetSyncTag(ctx, testTableID)
	require.NoError(t, err)
	assert.Nil(t, tag, "never synced")

	want := models.NewSyncTag("d1", "p1").WithIncrementedData()
	require.NoError(t, repo.SaveSyncTag(ctx, testTableID, want))

	tag, err = repo.GetSyncTag(ctx, testTableID)
	require.NoError(t, err)
	require.NotNil(t, tag)
	assert.Equal(t, want, *tag)

	assert.ErrorIs(t, repo.SaveSyncTag(ctx, "missing", want), ErrTableNotFound)
	_, err = repo.GetSyncTag(ctx, "missing")
	assert.ErrorIs(t, err, ErrTableNotFound)
}

// ── Local writes ────────────────────────────────────────────────────────────

func TestLocalWrites(t *testing.T) {
	ctx := context.Background()
	repo := newRegisteredRepo(t)

	rowID, err := repo.InsertRow(ctx, testTableID, "", models.Values{"name": "alice"})
	require.NoError(t, err)
	assert.NotEmpty(t, rowID)
	assert.Equal(t, rowstate.Inserting, stateOf(t, repo, rowID))

	// still INSERTING after an edit
	require.NoError(t, repo.UpdateRow(ctx, testTableID, rowID, models.Values{"name": "alice", "age": "30"}))
	row, err := repo.GetRow(ctx, testTableID, rowID)
	require.NoError(t, err)
	assert.Equal(t, rowstate.Inserting, row.State)
	assert.Equal(t, models.Values{"name": "alice", "age": "30"}, row.Values)

	// never pushed, so delete purges
	require.NoError(t, repo.DeleteRow(ctx, testTableID, rowID))
	_, err = repo.GetRow(ctx, testTableID, rowID)
	assert.ErrorIs(t, err, ErrRowNotFound)

	_, err = repo.InsertRow(ctx, "missing", "", nil)
	assert.ErrorIs(t, err, ErrTableNotFound)

	_, err = repo.InsertRow(ctx, testTableID, "r1", nil)
	require.NoError(t, err)
	_, err = repo.InsertRow(ctx, testTableID, "r1", nil)
	assert.ErrorIs(t, err, ErrRowAlreadyExists)

	assert.ErrorIs(t, repo.UpdateRow(ctx, testTableID, "nope", nil), ErrRowNotFound)
}

func TestDeleteConfirmedRow(t *testing.T) {
	ctx := context.Background()
	repo := newRegisteredRepo(t)

	_, err := repo.ApplyIncoming(ctx, testTableID, models.IncomingModification{
		Rows:         []models.SyncRow{{RowID: "r1", RowETag: "e1", Values: models.Values{"name": "a"}}},
		TableSyncTag: models.NewSyncTag("d1", "p1"),
	})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteRow(ctx, testTableID, "r1"))
	assert.Equal(t, rowstate.Deleting, stateOf(t, repo, "r1"))

	err = repo.UpdateRow(ctx, testTableID, "r1", models.Values{"name": "b"})
	assert.ErrorIs(t, err, rowstate.ErrInvalidStateTransition)
}

// ── Push confirmation ───────────────────────────────────────────────────────

func TestPendingAndConfirmRows(t *testing.T) {
	ctx := context.Background()
	repo := newRegisteredRepo(t)

	for _, id := range []string{"r1", "r2", "r3"} {
		_, err := repo.InsertRow(ctx, testTableID, id, models.Values{"name": id})
		require.NoError(t, err)
	}

	pending, err := repo.PendingRows(ctx, testTableID, rowstate.Inserting)
	require.NoError(t, err)
	require.Len(t, pending, 3)
	assert.Equal(t, []string{"r1", "r2", "r3"}, []string{pending[0].RowID, pending[1].RowID, pending[2].RowID})

	pushed := []models.SyncRow{pending[0].SyncRow(), pending[1].SyncRow(), pending[2].SyncRow()}

	// r2 edited while the push was in flight, r3 not confirmed
	require.NoError(t, repo.UpdateRow(ctx, testTableID, "r2", models.Values{"name": "r2-edited"}))

	mod := models.NewModification(models.NewSyncTag("d1", "p1"))
	mod.RowETags["r1"] = "e1"
	mod.RowETags["r2"] = "e2"
	mod.TableSyncTag = mod.TableSyncTag.WithIncrementedData().WithIncrementedData()

	require.NoError(t, repo.ConfirmRows(ctx, testTableID, pushed, mod))

	r1, err := repo.GetRow(ctx, testTableID, "r1")
	require.NoError(t, err)
	assert.Equal(t, rowstate.Rest, r1.State)
	assert.Equal(t, "e1", r1.RowETag)

	r2, err := repo.GetRow(ctx, testTableID, "r2")
	require.NoError(t, err)
	assert.Equal(t, rowstate.Updating, r2.State)
	assert.Equal(t, "e2", r2.RowETag)
	assert.Equal(t, "r2-edited", r2.Values["name"])

	assert.Equal(t, rowstate.Inserting, stateOf(t, repo, "r3"))

	tag, err := repo.GetSyncTag(ctx, testTableID)
	require.NoError(t, err)
	assert.Equal(t, "d1::p1::2", tag.String())
}

func TestConfirmDeletedRows(t *testing.T) {
	ctx := context.Background()
	repo := newRegisteredRepo(t)

	_, err := repo.ApplyIncoming(ctx, testTableID, models.IncomingModification{
		Rows: []models.SyncRow{
			{RowID: "r1", RowETag: "e1", Values: models.Values{"name": "a"}},
			{RowID: "r2", RowETag: "e2", Values: models.Values{"name": "b"}},
		},
		TableSyncTag: models.NewSyncTag("d1", "p1"),
	})
	require.NoError(t, err)
	require.NoError(t, repo.DeleteRow(ctx, testTableID, "r1"))

	// r2 is REST and must survive
	require.NoError(t, repo.ConfirmDeletedRows(ctx, testTableID, []string{"r1", "r2"}, models.NewSyncTag("d1", "p1").WithIncrementedData()))

	_, err = repo.GetRow(ctx, testTableID, "r1")
	assert.ErrorIs(t, err, ErrRowNotFound)
	assert.Equal(t, rowstate.Rest, stateOf(t, repo, "r2"))
}

// ── Pull ────────────────────────────────────────────────────────────────────

func TestApplyIncoming(t *testing.T) {
	ctx := context.Background()
	repo := newRegisteredRepo(t)

	_, err := repo.ApplyIncoming(ctx, testTableID, models.IncomingModification{
		Rows: []models.SyncRow{
			{RowID: "rest", RowETag: "e1", Values: models.Values{"name": "a"}},
			{RowID: "edited", RowETag: "e1", Values: models.Values{"name": "b"}},
			{RowID: "gone", RowETag: "e1", Values: models.Values{"name": "c"}},
		},
		TableSyncTag: models.NewSyncTag("d1", "p1"),
	})
	require.NoError(t, err)
	require.NoError(t, repo.UpdateRow(ctx, testTableID, "edited", models.Values{"name": "local"}))

	result, err := repo.ApplyIncoming(ctx, testTableID, models.IncomingModification{
		Rows: []models.SyncRow{
			{RowID: "rest", RowETag: "e2", Values: models.Values{"name": "a2"}},
			{RowID: "edited", RowETag: "e2", Values: models.Values{"name": "remote"}},
			{RowID: "gone", RowETag: "e2", Deleted: true},
			{RowID: "unknown", RowETag: "e2", Deleted: true},
			{RowID: "new", RowETag: "e1", Values: models.Values{"name": "n"}},
		},
		TableSyncTag:      models.NewSyncTag("d2", "p2"),
		PropertiesChanged: true,
		Definition: &models.TableDefinitionResource{
			TableID: testTableID,
			Columns: []models.Column{{ElementKey: "name", ElementName: "name", ElementType: models.RemoteTypeString, IsPersisted: true}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, ApplyResult{Created: 1, Overwritten: 1, Purged: 1, Ignored: 1, Conflicts: 1}, result)
	assert.Equal(t, 5, result.Total())

	rest, err := repo.GetRow(ctx, testTableID, "rest")
	require.NoError(t, err)
	assert.Equal(t, "a2", rest.Values["name"])
	assert.Equal(t, "e2", rest.RowETag)

	edited, err := repo.GetRow(ctx, testTableID, "edited")
	require.NoError(t, err)
	assert.Equal(t, rowstate.Conflicting, edited.State)
	assert.Equal(t, "local", edited.Values["name"])
	require.NotNil(t, edited.Conflict)
	assert.Equal(t, "e2", edited.Conflict.RowETag)
	assert.Equal(t, "remote", edited.Conflict.Values["name"])

	_, err = repo.GetRow(ctx, testTableID, "gone")
	assert.ErrorIs(t, err, ErrRowNotFound)
	_, err = repo.GetRow(ctx, testTableID, "unknown")
	assert.ErrorIs(t, err, ErrRowNotFound)

	columns, err := repo.GetColumns(ctx, testTableID)
	require.NoError(t, err)
	require.Len(t, columns, 1)

	tag, err := repo.GetSyncTag(ctx, testTableID)
	require.NoError(t, err)
	assert.Equal(t, "d2::p2", tag.String())

	conflicts, err := repo.ListConflicts(ctx, testTableID)
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "edited", conflicts[0].RowID)
}

func TestApplyIncoming_UnknownTable(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.ApplyIncoming(context.Background(), "missing", models.IncomingModification{})
	assert.ErrorIs(t, err, ErrTableNotFound)
}

// ── Conflict resolution ─────────────────────────────────────────────────────

func newConflict(t *testing.T, remoteDeleted bool) LocalTableRepository {
	t.Helper()
	ctx := context.Background()
	repo := newRegisteredRepo(t)

	_, err := repo.ApplyIncoming(ctx, testTableID, models.IncomingModification{
		Rows:         []models.SyncRow{{RowID: "r1", RowETag: "e1", Values: models.Values{"name": "base"}}},
		TableSyncTag: models.NewSyncTag("d1", "p1"),
	})
	require.NoError(t, err)
	require.NoError(t, repo.UpdateRow(ctx, testTableID, "r1", models.Values{"name": "local"}))

	remote := models.SyncRow{RowID: "r1", RowETag: "e2", Values: models.Values{"name": "remote"}, Deleted: remoteDeleted}
	_, err = repo.ApplyIncoming(ctx, testTableID, models.IncomingModification{
		Rows:         []models.SyncRow{remote},
		TableSyncTag: models.NewSyncTag("d2", "p1"),
	})
	require.NoError(t, err)
	require.Equal(t, rowstate.Conflicting, stateOf(t, repo, "r1"))
	return repo
}

func TestResolveConflict(t *testing.T) {
	ctx := context.Background()

	t.Run("keep local", func(t *testing.T) {
		repo := newConflict(t, false)
		require.NoError(t, repo.ResolveConflict(ctx, testTableID, "r1", true))

		row, err := repo.GetRow(ctx, testTableID, "r1")
		require.NoError(t, err)
		assert.Equal(t, rowstate.Updating, row.State)
		assert.Equal(t, "e2", row.RowETag)
		assert.Equal(t, "local", row.Values["name"])
		assert.Nil(t, row.Conflict)
	})

	t.Run("take remote", func(t *testing.T) {
		repo := newConflict(t, false)
		require.NoError(t, repo.ResolveConflict(ctx, testTableID, "r1", false))

		row, err := repo.GetRow(ctx, testTableID, "r1")
		require.NoError(t, err)
		assert.Equal(t, rowstate.Rest, row.State)
		assert.Equal(t, "e2", row.RowETag)
		assert.Equal(t, "remote", row.Values["name"])
	})

	t.Run("take remote tombstone", func(t *testing.T) {
		repo := newConflict(t, true)
		require.NoError(t, repo.ResolveConflict(ctx, testTableID, "r1", false))

		_, err := repo.GetRow(ctx, testTableID, "r1")
		assert.ErrorIs(t, err, ErrRowNotFound)
	})

	t.Run("not conflicting", func(t *testing.T) {
		repo := newRegisteredRepo(t)
		_, err := repo.InsertRow(ctx, testTableID, "r1", nil)
		require.NoError(t, err)
		assert.ErrorIs(t, repo.ResolveConflict(ctx, testTableID, "r1", true), ErrRowNotConflicting)
	})
}
