// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/MKhiriev/go-table-sync/internal/adapter"
	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/store"
	"github.com/MKhiriev/go-table-sync/models"
)

type clientTableService struct {
	repo   store.LocalTableRepository
	remote adapter.Synchronizer

	logger *logger.Logger
}

func NewClientTableService(repo store.LocalTableRepository, remote adapter.Synchronizer, log *logger.Logger) ClientTableService {
	return &clientTableService{
		repo:   repo,
		remote: remote,
		logger: log,
	}
}

// PublishTable leaves the local sync tag untouched: a table that was never
// synchronized gets a full snapshot on its next sync.
func (s *clientTableService) PublishTable(ctx context.Context, tableID string) (models.SyncTag, error) {
	table, err := s.repo.GetTable(ctx, tableID)
	if err != nil {
		return models.SyncTag{}, err
	}
	columns, err := s.repo.GetColumns(ctx, tableID)
	if err != nil {
		return models.SyncTag{}, err
	}

	tag, err := s.remote.CreateTable(ctx, tableID, columns, table.TableKey, table.DBTableName, table.Type, table.AccessControl)
	if err != nil {
		return models.SyncTag{}, fmt.Errorf("create remote table %s: %w", tableID, mapAdapterError(err))
	}
	return tag, nil
}

func (s *clientTableService) ImportRemoteTables(ctx context.Context) ([]string, error) {
	remote, err := s.remote.GetTables(ctx)
	if err != nil {
		return nil, fmt.Errorf("list remote tables: %w", mapAdapterError(err))
	}

	local, err := s.repo.ListTables(ctx)
	if err != nil {
		return nil, err
	}
	known := make(map[string]struct{}, len(local))
	for _, t := range local {
		known[t.TableID] = struct{}{}
	}

	ids := make([]string, 0, len(remote))
	for id := range remote {
		if _, ok := known[id]; !ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	for _, id := range ids {
		err = s.repo.RegisterTable(ctx, models.LocalTable{
			TableID:     id,
			TableKey:    remote[id],
			DBTableName: id,
			Type:        models.TableTypeData,
		}, nil)
		if err != nil && !errors.Is(err, store.ErrTableAlreadyExists) {
			return nil, fmt.Errorf("register table %s: %w", id, err)
		}
		s.logger.Info().Str("func", "clientTableService.ImportRemoteTables").Str(logger.FieldTableID, id).Msg("remote table registered locally")
	}

	return ids, nil
}

func (s *clientTableService) UnpublishTable(ctx context.Context, tableID string) error {
	if err := s.remote.DeleteTable(ctx, tableID); err != nil {
		return fmt.Errorf("delete remote table %s: %w", tableID, mapAdapterError(err))
	}
	if err := s.repo.DeleteTable(ctx, tableID); err != nil && !errors.Is(err, store.ErrTableNotFound) {
		return err
	}
	return nil
}

func (s *clientTableService) PushProperties(ctx context.Context, tableID string, entries []models.KeyValueStoreEntry) (models.SyncTag, error) {
	current, err := s.repo.GetSyncTag(ctx, tableID)
	if err != nil {
		return models.SyncTag{}, err
	}
	if current == nil {
		return models.SyncTag{}, fmt.Errorf("%w: %s", ErrTableNeverSynced, tableID)
	}

	table, err := s.repo.GetTable(ctx, tableID)
	if err != nil {
		return models.SyncTag{}, err
	}

	tag, err := s.remote.SetTableProperties(ctx, tableID, *current, table.TableKey, entries)
	if err != nil {
		return models.SyncTag{}, fmt.Errorf("set properties of %s: %w", tableID, mapAdapterError(err))
	}

	if err = s.repo.SaveSyncTag(ctx, tableID, tag); err != nil {
		return models.SyncTag{}, err
	}
	return tag, nil
}
