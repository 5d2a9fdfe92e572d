// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/models"
	"golang.org/x/sync/errgroup"
)

func (s *httpSynchronizer) InsertRows(ctx context.Context, tableID string, current models.SyncTag, rows []models.SyncRow) (models.Modification, error) {
	return s.pushRows(ctx, tableID, current, rows, func(r models.SyncRow) models.Row {
		return models.RowForInsert(r.RowID, r.Values)
	})
}

func (s *httpSynchronizer) UpdateRows(ctx context.Context, tableID string, current models.SyncTag, rows []models.SyncRow) (models.Modification, error) {
	return s.pushRows(ctx, tableID, current, rows, func(r models.SyncRow) models.Row {
		return models.RowForUpdate(r.RowID, r.RowETag, r.Values)
	})
}

func (s *httpSynchronizer) DeleteRows(ctx context.Context, tableID string, current models.SyncTag, rowIDs []string) (models.SyncTag, error) {
	tag := current
	confirmed, err := s.forEachRow(ctx, rowIDs, func(ctx context.Context, rowID string) (string, error) {
		return "", s.deleteRow(ctx, tableID, rowID)
	}, func(string, string) {
		tag = tag.WithIncrementedData()
	})
	if err != nil {
		s.logFailure("httpSynchronizer.DeleteRows", tableID, len(confirmed), err)
	}
	return tag, err
}

func (s *httpSynchronizer) pushRows(ctx context.Context, tableID string, current models.SyncTag, rows []models.SyncRow,
	body func(models.SyncRow) models.Row) (models.Modification, error) {
	mod := models.NewModification(current)

	ids := make([]string, 0, len(rows))
	byID := make(map[string]models.SyncRow, len(rows))
	for _, r := range rows {
		ids = append(ids, r.RowID)
		byID[r.RowID] = r
	}

	confirmed, err := s.forEachRow(ctx, ids, func(ctx context.Context, rowID string) (string, error) {
		return s.putRow(ctx, tableID, rowID, body(byID[rowID]))
	}, func(rowID, etag string) {
		mod.RowETags[rowID] = etag
		mod.TableSyncTag = mod.TableSyncTag.WithIncrementedData()
	})
	if err != nil {
		s.logFailure("httpSynchronizer.pushRows", tableID, len(confirmed), err)
	}

	return mod, err
}

// forEachRow runs send for every row id with at most pushWorkers in flight.
// A single worker keeps the caller order. onConfirmed is called under a lock
// for every accepted row, with the etag send returned for it. The first
// failure cancels the rows not yet sent and is returned as a [*RowError].
func (s *httpSynchronizer) forEachRow(ctx context.Context, rowIDs []string, send func(context.Context, string) (string, error),
	onConfirmed func(rowID, etag string)) ([]string, error) {
	var (
		mu        sync.Mutex
		confirmed = make([]string, 0, len(rowIDs))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.pushWorkers)

	for _, rowID := range rowIDs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return &RowError{RowID: rowID, Err: err}
			}
			etag, err := send(gctx, rowID)
			if err != nil {
				return &RowError{RowID: rowID, Err: err}
			}
			mu.Lock()
			confirmed = append(confirmed, rowID)
			onConfirmed(rowID, etag)
			mu.Unlock()
			return nil
		})
	}

	err := g.Wait()
	if err == nil && ctx.Err() != nil && len(confirmed) < len(rowIDs) {
		// The caller's context was canceled before every row was scheduled.
		err = &RowError{RowID: firstUnconfirmed(rowIDs, confirmed), Err: ctx.Err()}
	}
	if err == nil {
		return confirmed, nil
	}

	var rowErr *RowError
	if errors.As(err, &rowErr) {
		rowErr.Confirmed = confirmed
	}
	return confirmed, err
}

func firstUnconfirmed(rowIDs, confirmed []string) string {
	done := make(map[string]struct{}, len(confirmed))
	for _, id := range confirmed {
		done[id] = struct{}{}
	}
	for _, id := range rowIDs {
		if _, ok := done[id]; !ok {
			return id
		}
	}
	return ""
}

func (s *httpSynchronizer) putRow(ctx context.Context, tableID, rowID string, body models.Row) (string, error) {
	var etag string
	err := s.withHandle(ctx, tableID, false, func(h models.TableResource) error {
		var res models.RowResource
		resp, err := s.client.R().
			SetContext(ctx).
			SetBody(body).
			SetResult(&res).
			Put(rowURI(h, rowID))
		if err = check("put row", resp, err); err != nil {
			return err
		}
		etag = res.RowETag
		return nil
	})
	return etag, err
}

// deleteRow deletes one row. A row still missing after the handle was
// refreshed is already gone and counts as deleted.
func (s *httpSynchronizer) deleteRow(ctx context.Context, tableID, rowID string) error {
	err := s.withHandle(ctx, tableID, false, func(h models.TableResource) error {
		resp, err := s.client.R().
			SetContext(ctx).
			Delete(rowURI(h, rowID))
		return check("delete row", resp, err)
	})
	if errors.Is(err, ErrStaleVersion) && errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}

func (s *httpSynchronizer) logFailure(fn, tableID string, confirmed int, err error) {
	var rowErr *RowError
	ev := s.logger.Err(err).
		Str("func", fn).
		Str(logger.FieldTableID, tableID).
		Int("confirmed", confirmed)
	if errors.As(err, &rowErr) {
		ev = ev.Str(logger.FieldRowID, rowErr.RowID)
	}
	ev.Msg("row batch stopped")
}
