// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/models"
)

func (s *httpSynchronizer) GetTables(ctx context.Context) (map[string]string, error) {
	var list models.TableResourceList
	resp, err := s.client.R().
		SetContext(ctx).
		SetResult(&list).
		Get(tablesPath)
	if err = check("get tables", resp, err); err != nil {
		return nil, err
	}

	tables := make(map[string]string, len(list.Tables))
	for _, res := range list.Tables {
		s.cache.Put(res)
		tables[res.TableID] = res.TableKey
	}

	return tables, nil
}

func (s *httpSynchronizer) CreateTable(ctx context.Context, tableID string, columns []models.LocalColumn, tableKey, dbTableName string,
	tableType models.TableType, accessControlTableID string) (models.SyncTag, error) {
	unlock := s.tableLocks.Lock(tableID)
	defer unlock()

	def := models.TableDefinition{
		TableID:              tableID,
		Columns:              ToRemoteColumns(tableID, columns),
		TableKey:             tableKey,
		DBTableName:          dbTableName,
		Type:                 tableType,
		AccessControlTableID: accessControlTableID,
	}

	var res models.TableResource
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(def).
		SetResult(&res).
		Put(tableURI(tableID))
	if err = check("create table", resp, err); err != nil {
		return models.SyncTag{}, err
	}

	s.cache.Put(res)

	s.logger.Info().
		Str("func", "httpSynchronizer.CreateTable").
		Str(logger.FieldTableID, tableID).
		Str("sync_tag", res.SyncTag().String()).
		Msg("remote table created")

	return res.SyncTag(), nil
}

func (s *httpSynchronizer) DeleteTable(ctx context.Context, tableID string) error {
	unlock := s.tableLocks.Lock(tableID)
	defer unlock()

	defer s.cache.Invalidate(tableID)

	resp, err := s.client.R().
		SetContext(ctx).
		Delete(tableURI(tableID))
	if err = check("delete table", resp, err); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}

	return nil
}

func (s *httpSynchronizer) SetTableProperties(ctx context.Context, tableID string, current models.SyncTag, tableKey string,
	entries []models.KeyValueStoreEntry) (models.SyncTag, error) {
	unlock := s.tableLocks.Lock(tableID)
	defer unlock()

	body := models.TableProperties{
		PropertiesETag: current.PropertiesETag,
		TableKey:       tableKey,
		Entries:        entries,
	}

	var res models.PropertiesResource
	// A 412 here rejects the caller's PropertiesETag, which a refetched
	// handle cannot change.
	err := s.withHandleRetrying(ctx, tableID, false, isMovedHandle, func(h models.TableResource) error {
		resp, err := s.client.R().
			SetContext(ctx).
			SetBody(body).
			SetResult(&res).
			Put(h.PropertiesURI)
		if err = check("set table properties", resp, err); err != nil {
			return err
		}

		h.PropertiesETag = res.PropertiesETag
		s.cache.Put(h)
		return nil
	})
	if errors.Is(err, ErrPreconditionFailed) && !errors.Is(err, ErrStaleVersion) {
		return models.SyncTag{}, fmt.Errorf("%w: %w", ErrStaleVersion, err)
	}
	if err != nil {
		return models.SyncTag{}, err
	}

	return current.WithPropertiesETag(res.PropertiesETag), nil
}
