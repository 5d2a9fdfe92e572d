// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-table-sync/internal/adapter"
	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/rowstate"
	"github.com/MKhiriev/go-table-sync/internal/store"
	"github.com/MKhiriev/go-table-sync/internal/utils"
	"github.com/MKhiriev/go-table-sync/models"
)

type clientTableSyncService struct {
	repo   store.LocalTableRepository
	remote adapter.Synchronizer

	logger *logger.Logger
}

func NewClientTableSyncService(repo store.LocalTableRepository, remote adapter.Synchronizer, log *logger.Logger) ClientTableSyncService {
	return &clientTableSyncService{
		repo:   repo,
		remote: remote,
		logger: log,
	}
}

type pushFunc func(ctx context.Context, tableID string, current models.SyncTag, rows []models.SyncRow) (models.Modification, error)

func (s *clientTableSyncService) SyncTable(ctx context.Context, tableID string) (SyncResult, error) {
	traceID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		traceID = uuid.NewString()
		ctx = utils.WithTraceID(ctx, traceID)
	}
	log := s.logger.ForTable(tableID).ForTrace(traceID)
	result := SyncResult{TableID: tableID}

	current, err := s.repo.GetSyncTag(ctx, tableID)
	if errors.Is(err, models.ErrMalformedSyncTag) {
		log.Warn().Err(err).Str("func", "clientTableSyncService.SyncTable").Msg("stored sync tag is corrupt, resyncing from scratch")
		current, err = nil, nil
	}
	if err != nil {
		return result, fmt.Errorf("read sync tag: %w", err)
	}
	result.FullResync = current == nil

	incoming, err := s.remote.GetUpdates(ctx, tableID, current)
	if err != nil {
		return result, fmt.Errorf("pull %s: %w", tableID, mapAdapterError(err))
	}

	if result.Pulled, err = s.repo.ApplyIncoming(ctx, tableID, incoming); err != nil {
		return result, fmt.Errorf("apply pulled rows: %w", err)
	}
	tag := incoming.TableSyncTag.Authoritative()
	result.TableSyncTag = tag

	if tag, result.Inserted, err = s.push(ctx, tableID, tag, rowstate.Inserting, s.remote.InsertRows); err != nil {
		result.TableSyncTag = tag
		return result, err
	}
	if tag, result.Updated, err = s.push(ctx, tableID, tag, rowstate.Updating, s.remote.UpdateRows); err != nil {
		result.TableSyncTag = tag
		return result, err
	}
	if tag, result.Deleted, err = s.pushDeletes(ctx, tableID, tag); err != nil {
		result.TableSyncTag = tag
		return result, err
	}
	result.TableSyncTag = tag

	conflicts, err := s.repo.ListConflicts(ctx, tableID)
	if err != nil {
		return result, fmt.Errorf("list conflicts: %w", err)
	}
	result.Conflicts = len(conflicts)

	log.Info().
		Str("func", "clientTableSyncService.SyncTable").
		Bool("full_resync", result.FullResync).
		Int("pulled", result.Pulled.Total()).
		Int("inserted", result.Inserted).
		Int("updated", result.Updated).
		Int("deleted", result.Deleted).
		Int("conflicts", result.Conflicts).
		Str("sync_tag", result.TableSyncTag.String()).
		Msg("table synchronized")

	return result, nil
}

// push sends the rows in state and persists whatever the remote side
// confirmed, also when the batch stopped early.
func (s *clientTableSyncService) push(ctx context.Context, tableID string, tag models.SyncTag, state rowstate.State, send pushFunc) (models.SyncTag, int, error) {
	pending, err := s.repo.PendingRows(ctx, tableID, state)
	if err != nil {
		return tag, 0, fmt.Errorf("list %s rows: %w", state, err)
	}
	if len(pending) == 0 {
		return tag, 0, nil
	}

	rows := make([]models.SyncRow, 0, len(pending))
	for _, p := range pending {
		rows = append(rows, p.SyncRow())
	}

	mod, pushErr := send(ctx, tableID, tag, rows)
	confirmed := len(mod.RowETags)
	if confirmed > 0 {
		if err = s.repo.ConfirmRows(ctx, tableID, rows, mod); err != nil {
			return tag, 0, fmt.Errorf("persist confirmed %s rows: %w", state, err)
		}
		tag = mod.TableSyncTag
	}

	if pushErr != nil {
		s.logger.ForTable(tableID).Err(pushErr).
			Str("func", "clientTableSyncService.push").
			Stringer("state", state).
			Int("confirmed", confirmed).
			Int("pending", len(rows)).
			Msg("push stopped")
		return tag, confirmed, fmt.Errorf("push %s rows: %w", state, mapAdapterError(pushErr))
	}

	return tag, confirmed, nil
}

func (s *clientTableSyncService) pushDeletes(ctx context.Context, tableID string, tag models.SyncTag) (models.SyncTag, int, error) {
	pending, err := s.repo.PendingRows(ctx, tableID, rowstate.Deleting)
	if err != nil {
		return tag, 0, fmt.Errorf("list %s rows: %w", rowstate.Deleting, err)
	}
	if len(pending) == 0 {
		return tag, 0, nil
	}

	ids := make([]string, 0, len(pending))
	for _, p := range pending {
		ids = append(ids, p.RowID)
	}

	newTag, pushErr := s.remote.DeleteRows(ctx, tableID, tag, ids)

	confirmed := ids
	if pushErr != nil {
		confirmed = nil
		var rowErr *adapter.RowError
		if errors.As(pushErr, &rowErr) {
			confirmed = rowErr.Confirmed
		}
	}

	if len(confirmed) > 0 {
		if err = s.repo.ConfirmDeletedRows(ctx, tableID, confirmed, newTag); err != nil {
			return tag, 0, fmt.Errorf("persist confirmed deletions: %w", err)
		}
		tag = newTag
	}

	if pushErr != nil {
		s.logger.ForTable(tableID).Err(pushErr).
			Str("func", "clientTableSyncService.pushDeletes").
			Int("confirmed", len(confirmed)).
			Int("pending", len(ids)).
			Msg("delete push stopped")
		return tag, len(confirmed), fmt.Errorf("push deletions: %w", mapAdapterError(pushErr))
	}

	return tag, len(confirmed), nil
}

func (s *clientTableSyncService) SyncAll(ctx context.Context) ([]SyncResult, error) {
	tables, err := s.repo.ListTables(ctx)
	if err != nil {
		return nil, fmt.Errorf("list local tables: %w", err)
	}

	results := make([]SyncResult, 0, len(tables))
	var errs []error
	for _, t := range tables {
		if err = ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		res, err := s.SyncTable(ctx, t.TableID)
		results = append(results, res)
		if err != nil {
			s.logger.ForTable(t.TableID).Err(err).Str("func", "clientTableSyncService.SyncAll").Msg("table sync failed")
			errs = append(errs, fmt.Errorf("table %s: %w", t.TableID, err))
		}
	}

	return results, errors.Join(errs...)
}
