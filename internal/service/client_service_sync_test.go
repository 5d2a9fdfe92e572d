// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-table-sync/internal/adapter"
	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/mock"
	"github.com/MKhiriev/go-table-sync/internal/rowstate"
	"github.com/MKhiriev/go-table-sync/internal/store"
	"github.com/MKhiriev/go-table-sync/internal/utils"
	"github.com/MKhiriev/go-table-sync/models"
)

const testTableID = "patients"

// tracedContext carries a trace id, so SyncTable passes it on unchanged.
func tracedContext() context.Context {
	return utils.WithTraceID(context.Background(), "trace-1")
}

// newTestSyncSvc builds a clientTableSyncService on top of mocks.
func newTestSyncSvc(t *testing.T) (ClientTableSyncService, *mock.MockLocalTableRepository, *mock.MockSynchronizer) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := mock.NewMockLocalTableRepository(ctrl)
	remote := mock.NewMockSynchronizer(ctrl)

	return NewClientTableSyncService(repo, remote, logger.Nop()), repo, remote
}

func localRow(id, etag string, state rowstate.State, values models.Values) store.LocalRow {
	return store.LocalRow{TableID: testTableID, RowID: id, RowETag: etag, State: state, Values: values}
}

func syncRows(rows ...store.LocalRow) []models.SyncRow {
	out := make([]models.SyncRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.SyncRow())
	}
	return out
}

// expectPull sets up a pull from current that brings incoming.
func expectPull(repo *mock.MockLocalTableRepository, remote *mock.MockSynchronizer, ctx context.Context,
	current *models.SyncTag, incoming models.IncomingModification) {
	repo.EXPECT().GetSyncTag(ctx, testTableID).Return(current, nil)
	remote.EXPECT().GetUpdates(ctx, testTableID, current).Return(incoming, nil)
	repo.EXPECT().ApplyIncoming(ctx, testTableID, incoming).Return(store.ApplyResult{Overwritten: len(incoming.Rows)}, nil)
}

// ── SyncTable ────────────────────────────────────────────────────────────────

func TestClientTableSyncService_SyncTable_PullAndPush(t *testing.T) {
	svc, repo, remote := newTestSyncSvc(t)
	ctx := tracedContext()

	current := models.NewSyncTag("d1", "p1")
	pulled := models.NewSyncTag("d2", "p1")
	incoming := models.IncomingModification{
		Rows:         []models.SyncRow{{RowID: "remote1", RowETag: "e9", Values: models.Values{"name": "r"}}},
		TableSyncTag: pulled,
	}
	expectPull(repo, remote, ctx, &current, incoming)

	inserting := []store.LocalRow{
		localRow("r1", "", rowstate.Inserting, models.Values{"name": "a"}),
		localRow("r2", "", rowstate.Inserting, models.Values{"name": "b"}),
	}
	insertMod := models.NewModification(pulled)
	insertMod.RowETags["r1"] = "e1"
	insertMod.RowETags["r2"] = "e2"
	insertMod.TableSyncTag = pulled.WithIncrementedData().WithIncrementedData()

	updating := []store.LocalRow{localRow("r3", "e3", rowstate.Updating, models.Values{"name": "c"})}
	updateMod := models.NewModification(insertMod.TableSyncTag)
	updateMod.RowETags["r3"] = "e4"
	updateMod.TableSyncTag = insertMod.TableSyncTag.WithIncrementedData()

	deleting := []store.LocalRow{localRow("r4", "e5", rowstate.Deleting, nil)}
	deleteTag := updateMod.TableSyncTag.WithIncrementedData()

	gomock.InOrder(
		repo.EXPECT().PendingRows(ctx, testTableID, rowstate.Inserting).Return(inserting, nil),
		remote.EXPECT().InsertRows(ctx, testTableID, pulled, syncRows(inserting...)).Return(insertMod, nil),
		repo.EXPECT().ConfirmRows(ctx, testTableID, syncRows(inserting...), insertMod).Return(nil),

		repo.EXPECT().PendingRows(ctx, testTableID, rowstate.Updating).Return(updating, nil),
		remote.EXPECT().UpdateRows(ctx, testTableID, insertMod.TableSyncTag, syncRows(updating...)).Return(updateMod, nil),
		repo.EXPECT().ConfirmRows(ctx, testTableID, syncRows(updating...), updateMod).Return(nil),

		repo.EXPECT().PendingRows(ctx, testTableID, rowstate.Deleting).Return(deleting, nil),
		remote.EXPECT().DeleteRows(ctx, testTableID, updateMod.TableSyncTag, []string{"r4"}).Return(deleteTag, nil),
		repo.EXPECT().ConfirmDeletedRows(ctx, testTableID, []string{"r4"}, deleteTag).Return(nil),

		repo.EXPECT().ListConflicts(ctx, testTableID).Return(nil, nil),
	)

	result, err := svc.SyncTable(ctx, testTableID)
	require.NoError(t, err)

	assert.False(t, result.FullResync)
	assert.Equal(t, 1, result.Pulled.Overwritten)
	assert.Equal(t, 2, result.Inserted)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 1, result.Deleted)
	assert.Equal(t, "d2::p1::4", result.TableSyncTag.String())
}

func TestClientTableSyncService_SyncTable_MalformedTagResyncs(t *testing.T) {
	svc, repo, remote := newTestSyncSvc(t)
	ctx := tracedContext()

	incoming := models.IncomingModification{TableSyncTag: models.NewSyncTag("d1", "p1"), PropertiesChanged: true}

	repo.EXPECT().GetSyncTag(ctx, testTableID).Return(nil, fmt.Errorf("table %s: %w", testTableID, models.ErrMalformedSyncTag))
	remote.EXPECT().GetUpdates(ctx, testTableID, gomock.Nil()).Return(incoming, nil)
	repo.EXPECT().ApplyIncoming(ctx, testTableID, incoming).Return(store.ApplyResult{}, nil)
	repo.EXPECT().PendingRows(ctx, testTableID, gomock.Any()).Return(nil, nil).Times(3)
	repo.EXPECT().ListConflicts(ctx, testTableID).Return([]store.LocalRow{{RowID: "c1"}}, nil)

	result, err := svc.SyncTable(ctx, testTableID)
	require.NoError(t, err)
	assert.True(t, result.FullResync)
	assert.Equal(t, 1, result.Conflicts)
	assert.Equal(t, "d1::p1", result.TableSyncTag.String())
}

func TestClientTableSyncService_SyncTable_PartialInsertPersistsProgress(t *testing.T) {
	svc, repo, remote := newTestSyncSvc(t)
	ctx := tracedContext()

	current := models.NewSyncTag("d1", "p1")
	expectPull(repo, remote, ctx, &current, models.IncomingModification{TableSyncTag: current})

	inserting := []store.LocalRow{
		localRow("r1", "", rowstate.Inserting, models.Values{"name": "a"}),
		localRow("r2", "", rowstate.Inserting, models.Values{"name": "b"}),
	}
	mod := models.NewModification(current)
	mod.RowETags["r1"] = "e1"
	mod.TableSyncTag = current.WithIncrementedData()
	rowErr := &adapter.RowError{RowID: "r2", Confirmed: []string{"r1"}, Err: fmt.Errorf("put row: %w", adapter.ErrTransport)}

	repo.EXPECT().PendingRows(ctx, testTableID, rowstate.Inserting).Return(inserting, nil)
	remote.EXPECT().InsertRows(ctx, testTableID, current, syncRows(inserting...)).Return(mod, rowErr)
	repo.EXPECT().ConfirmRows(ctx, testTableID, syncRows(inserting...), mod).Return(nil)

	result, err := svc.SyncTable(ctx, testTableID)
	require.Error(t, err)

	var gotRowErr *adapter.RowError
	require.ErrorAs(t, err, &gotRowErr)
	assert.Equal(t, "r2", gotRowErr.RowID)
	assert.ErrorIs(t, err, adapter.ErrTransport)
	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, "d1::p1::1", result.TableSyncTag.String())
}

func TestClientTableSyncService_SyncTable_FirstRowFailsConfirmsNothing(t *testing.T) {
	svc, repo, remote := newTestSyncSvc(t)
	ctx := tracedContext()

	current := models.NewSyncTag("d1", "p1")
	expectPull(repo, remote, ctx, &current, models.IncomingModification{TableSyncTag: current})

	updating := []store.LocalRow{localRow("r1", "e1", rowstate.Updating, models.Values{"name": "a"})}
	rowErr := &adapter.RowError{RowID: "r1", Err: fmt.Errorf("%w: %w", adapter.ErrStaleVersion,
		fmt.Errorf("put row: %w: %s", adapter.ErrConflict, "row etag mismatch"))}

	repo.EXPECT().PendingRows(ctx, testTableID, rowstate.Inserting).Return(nil, nil)
	repo.EXPECT().PendingRows(ctx, testTableID, rowstate.Updating).Return(updating, nil)
	remote.EXPECT().UpdateRows(ctx, testTableID, current, syncRows(updating...)).Return(models.NewModification(current), rowErr)

	_, err := svc.SyncTable(ctx, testTableID)
	assert.ErrorIs(t, err, ErrRowVersionConflict)
	assert.ErrorIs(t, err, adapter.ErrStaleVersion)
}

func TestClientTableSyncService_SyncTable_PartialDelete(t *testing.T) {
	svc, repo, remote := newTestSyncSvc(t)
	ctx := tracedContext()

	current := models.NewSyncTag("d1", "p1")
	expectPull(repo, remote, ctx, &current, models.IncomingModification{TableSyncTag: current})

	deleting := []store.LocalRow{
		localRow("r1", "e1", rowstate.Deleting, nil),
		localRow("r2", "e2", rowstate.Deleting, nil),
	}
	partial := current.WithIncrementedData()
	rowErr := &adapter.RowError{RowID: "r2", Confirmed: []string{"r1"}, Err: adapter.ErrTransport}

	repo.EXPECT().PendingRows(ctx, testTableID, rowstate.Inserting).Return(nil, nil)
	repo.EXPECT().PendingRows(ctx, testTableID, rowstate.Updating).Return(nil, nil)
	repo.EXPECT().PendingRows(ctx, testTableID, rowstate.Deleting).Return(deleting, nil)
	remote.EXPECT().DeleteRows(ctx, testTableID, current, []string{"r1", "r2"}).Return(partial, rowErr)
	repo.EXPECT().ConfirmDeletedRows(ctx, testTableID, []string{"r1"}, partial).Return(nil)

	result, err := svc.SyncTable(ctx, testTableID)
	assert.ErrorIs(t, err, adapter.ErrTransport)
	assert.Equal(t, 1, result.Deleted)
	assert.Equal(t, partial, result.TableSyncTag)
}

func TestClientTableSyncService_SyncTable_UnknownRemoteTable(t *testing.T) {
	svc, repo, remote := newTestSyncSvc(t)
	ctx := tracedContext()

	repo.EXPECT().GetSyncTag(ctx, testTableID).Return(nil, nil)
	remote.EXPECT().GetUpdates(ctx, testTableID, gomock.Nil()).
		Return(models.IncomingModification{}, fmt.Errorf("get table resource: %w: %s", adapter.ErrNotFound, "table not found: patients"))

	_, err := svc.SyncTable(ctx, testTableID)
	assert.ErrorIs(t, err, ErrRemoteTableNotFound)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestClientTableSyncService_SyncTable_ApplyError(t *testing.T) {
	svc, repo, remote := newTestSyncSvc(t)
	ctx := tracedContext()

	incoming := models.IncomingModification{TableSyncTag: models.NewSyncTag("d1", "p1")}
	repo.EXPECT().GetSyncTag(ctx, testTableID).Return(nil, nil)
	remote.EXPECT().GetUpdates(ctx, testTableID, gomock.Nil()).Return(incoming, nil)
	repo.EXPECT().ApplyIncoming(ctx, testTableID, incoming).Return(store.ApplyResult{}, store.ErrExecutingStatement)

	_, err := svc.SyncTable(ctx, testTableID)
	assert.ErrorIs(t, err, store.ErrExecutingStatement)
}

// ── SyncAll ──────────────────────────────────────────────────────────────────

func TestClientTableSyncService_SyncAll_ContinuesAfterFailure(t *testing.T) {
	svc, repo, remote := newTestSyncSvc(t)
	ctx := tracedContext()

	repo.EXPECT().ListTables(ctx).Return([]models.LocalTable{{TableID: "broken"}, {TableID: testTableID}}, nil)

	repo.EXPECT().GetSyncTag(ctx, "broken").Return(nil, store.ErrScanningRow)

	current := models.NewSyncTag("d1", "p1")
	expectPull(repo, remote, ctx, &current, models.IncomingModification{TableSyncTag: current})
	repo.EXPECT().PendingRows(ctx, testTableID, gomock.Any()).Return(nil, nil).Times(3)
	repo.EXPECT().ListConflicts(ctx, testTableID).Return(nil, nil)

	results, err := svc.SyncAll(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrScanningRow)
	assert.Contains(t, err.Error(), "table broken")
	require.Len(t, results, 2)
	assert.Equal(t, testTableID, results[1].TableID)
}

func TestClientTableSyncService_SyncTable_StampsTraceID(t *testing.T) {
	svc, repo, remote := newTestSyncSvc(t)
	tag := models.NewSyncTag("d1", "p1")

	var traceIDs []string
	capture := func(ctx context.Context) {
		traceID, ok := utils.GetTraceIDFromContext(ctx)
		require.True(t, ok)
		traceIDs = append(traceIDs, traceID)
	}

	repo.EXPECT().GetSyncTag(gomock.Any(), testTableID).Return(&tag, nil)
	remote.EXPECT().GetUpdates(gomock.Any(), testTableID, &tag).
		DoAndReturn(func(ctx context.Context, _ string, _ *models.SyncTag) (models.IncomingModification, error) {
			capture(ctx)
			return models.IncomingModification{TableSyncTag: tag}, nil
		})
	repo.EXPECT().ApplyIncoming(gomock.Any(), testTableID, gomock.Any()).Return(store.ApplyResult{}, nil)
	repo.EXPECT().PendingRows(gomock.Any(), testTableID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ rowstate.State) ([]store.LocalRow, error) {
			capture(ctx)
			return nil, nil
		}).Times(3)
	repo.EXPECT().ListConflicts(gomock.Any(), testTableID).Return(nil, nil)

	_, err := svc.SyncTable(context.Background(), testTableID)
	require.NoError(t, err)

	require.Len(t, traceIDs, 4)
	assert.NotEmpty(t, traceIDs[0])
	for _, id := range traceIDs {
		assert.Equal(t, traceIDs[0], id)
	}
}

func TestClientTableSyncService_SyncAll_CanceledContext(t *testing.T) {
	svc, repo, _ := newTestSyncSvc(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo.EXPECT().ListTables(ctx).Return([]models.LocalTable{{TableID: testTableID}}, nil)

	results, err := svc.SyncAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}

// ── ClientTableService ───────────────────────────────────────────────────────

func newTestTableSvc(t *testing.T) (ClientTableService, *mock.MockLocalTableRepository, *mock.MockSynchronizer) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := mock.NewMockLocalTableRepository(ctrl)
	remote := mock.NewMockSynchronizer(ctrl)

	return NewClientTableService(repo, remote, logger.Nop()), repo, remote
}

func TestClientTableService_PublishTable(t *testing.T) {
	svc, repo, remote := newTestTableSvc(t)
	ctx := tracedContext()

	table := models.LocalTable{TableID: testTableID, TableKey: "k", DBTableName: "db", Type: models.TableTypeData}
	columns := []models.LocalColumn{{ElementKey: "name", ElementType: models.ColumnTypeText}}
	want := models.NewSyncTag("d1", "p1")

	repo.EXPECT().GetTable(ctx, testTableID).Return(table, nil)
	repo.EXPECT().GetColumns(ctx, testTableID).Return(columns, nil)
	remote.EXPECT().CreateTable(ctx, testTableID, columns, "k", "db", models.TableTypeData, "").Return(want, nil)

	tag, err := svc.PublishTable(ctx, testTableID)
	require.NoError(t, err)
	assert.Equal(t, want, tag)
}

func TestClientTableService_ImportRemoteTables(t *testing.T) {
	svc, repo, remote := newTestTableSvc(t)
	ctx := tracedContext()

	remote.EXPECT().GetTables(ctx).Return(map[string]string{testTableID: "k1", "visits": "k2"}, nil)
	repo.EXPECT().ListTables(ctx).Return([]models.LocalTable{{TableID: testTableID}}, nil)
	repo.EXPECT().RegisterTable(ctx, models.LocalTable{
		TableID:     "visits",
		TableKey:    "k2",
		DBTableName: "visits",
		Type:        models.TableTypeData,
	}, nil).Return(nil)

	ids, err := svc.ImportRemoteTables(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"visits"}, ids)
}

func TestClientTableService_UnpublishTable(t *testing.T) {
	svc, repo, remote := newTestTableSvc(t)
	ctx := tracedContext()

	remote.EXPECT().DeleteTable(ctx, testTableID).Return(nil)
	repo.EXPECT().DeleteTable(ctx, testTableID).Return(store.ErrTableNotFound)

	require.NoError(t, svc.UnpublishTable(ctx, testTableID))
}

func TestClientTableService_PushProperties(t *testing.T) {
	ctx := tracedContext()
	entries := []models.KeyValueStoreEntry{{TableID: testTableID, Partition: "Table", Aspect: "default", Key: "displayName", Type: "string", Value: "Patients"}}

	t.Run("never synced", func(t *testing.T) {
		svc, repo, _ := newTestTableSvc(t)
		repo.EXPECT().GetSyncTag(ctx, testTableID).Return(nil, nil)

		_, err := svc.PushProperties(ctx, testTableID, entries)
		assert.ErrorIs(t, err, ErrTableNeverSynced)
	})

	t.Run("saves new tag", func(t *testing.T) {
		svc, repo, remote := newTestTableSvc(t)
		current := models.NewSyncTag("d1", "p1")
		want := current.WithPropertiesETag("p2")

		repo.EXPECT().GetSyncTag(ctx, testTableID).Return(&current, nil)
		repo.EXPECT().GetTable(ctx, testTableID).Return(models.LocalTable{TableID: testTableID, TableKey: "k"}, nil)
		remote.EXPECT().SetTableProperties(ctx, testTableID, current, "k", entries).Return(want, nil)
		repo.EXPECT().SaveSyncTag(ctx, testTableID, want).Return(nil)

		tag, err := svc.PushProperties(ctx, testTableID, entries)
		require.NoError(t, err)
		assert.Equal(t, want, tag)
	})

	t.Run("stale properties", func(t *testing.T) {
		svc, repo, remote := newTestTableSvc(t)
		current := models.NewSyncTag("d1", "p1")
		stale := fmt.Errorf("%w: %w", adapter.ErrStaleVersion,
			fmt.Errorf("set table properties: %w: %s", adapter.ErrPreconditionFailed, "properties etag mismatch"))

		repo.EXPECT().GetSyncTag(ctx, testTableID).Return(&current, nil)
		repo.EXPECT().GetTable(ctx, testTableID).Return(models.LocalTable{TableID: testTableID}, nil)
		remote.EXPECT().SetTableProperties(ctx, testTableID, current, "", entries).Return(models.SyncTag{}, stale)

		_, err := svc.PushProperties(ctx, testTableID, entries)
		assert.ErrorIs(t, err, ErrPropertiesVersionConflict)
	})
}

// ── mapAdapterError ──────────────────────────────────────────────────────────

func TestMapAdapterError(t *testing.T) {
	assert.NoError(t, mapAdapterError(nil))

	err := mapAdapterError(fmt.Errorf("check: %w", adapter.ErrInvalidCredential))
	assert.ErrorIs(t, err, ErrNotAuthorized)

	plain := errors.New("boom")
	assert.Same(t, plain, mapAdapterError(plain))
}
