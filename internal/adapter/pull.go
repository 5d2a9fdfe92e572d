// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/models"
)

// diffQueryParam names the data version a diff is computed from.
const diffQueryParam = "data_etag"

func (s *httpSynchronizer) GetUpdates(ctx context.Context, tableID string, current *models.SyncTag) (models.IncomingModification, error) {
	unlock := s.tableLocks.Lock(tableID)
	defer unlock()

	var incoming models.IncomingModification
	err := s.withHandle(ctx, tableID, true, func(h models.TableResource) error {
		var err error
		incoming, err = s.pull(ctx, h, current)
		return err
	})
	if err != nil {
		return models.IncomingModification{}, err
	}

	s.logger.Debug().
		Str("func", "httpSynchronizer.GetUpdates").
		Str(logger.FieldTableID, tableID).
		Int("rows", len(incoming.Rows)).
		Bool("properties_changed", incoming.PropertiesChanged).
		Str("sync_tag", incoming.TableSyncTag.String()).
		Msg("pulled remote updates")

	return incoming, nil
}

// pull compares the advertised versions with current and fetches only the
// dimensions that changed.
func (s *httpSynchronizer) pull(ctx context.Context, h models.TableResource, current *models.SyncTag) (models.IncomingModification, error) {
	remote := h.SyncTag()
	incoming := models.IncomingModification{TableSyncTag: remote}

	if current != nil && current.Equal(remote) {
		return incoming, nil
	}

	if current == nil || current.DataChanged(remote) {
		rows, err := s.fetchRows(ctx, h, current)
		if err != nil {
			return models.IncomingModification{}, err
		}
		incoming.Rows = rows
	}

	if current == nil || current.PropertiesChanged(remote) {
		props, def, err := s.fetchProperties(ctx, h)
		if err != nil {
			return models.IncomingModification{}, err
		}
		incoming.PropertiesChanged = true
		incoming.Properties = &props
		incoming.Definition = &def
	}

	return incoming, nil
}

// fetchRows returns the full snapshot for a first sync and the diff since
// current.DataETag otherwise.
func (s *httpSynchronizer) fetchRows(ctx context.Context, h models.TableResource, current *models.SyncTag) ([]models.SyncRow, error) {
	var list models.RowResourceList

	req := s.client.R().
		SetContext(ctx).
		SetResult(&list)

	uri := h.DataURI
	op := "get rows"
	if current != nil {
		uri = h.DiffURI
		op = "get diff"
		req.SetQueryParam(diffQueryParam, current.DataETag)
	}

	resp, err := req.Get(uri)
	if err = check(op, resp, err); err != nil {
		return nil, err
	}

	rows := make([]models.SyncRow, 0, len(list.Rows))
	for _, r := range list.Rows {
		rows = append(rows, r.SyncRow())
	}
	return rows, nil
}

func (s *httpSynchronizer) fetchProperties(ctx context.Context, h models.TableResource) (models.PropertiesResource, models.TableDefinitionResource, error) {
	var props models.PropertiesResource
	resp, err := s.client.R().
		SetContext(ctx).
		SetResult(&props).
		Get(h.PropertiesURI)
	if err = check("get properties", resp, err); err != nil {
		return models.PropertiesResource{}, models.TableDefinitionResource{}, err
	}

	var def models.TableDefinitionResource
	resp, err = s.client.R().
		SetContext(ctx).
		SetResult(&def).
		Get(h.DefinitionURI)
	if err = check("get definition", resp, err); err != nil {
		return models.PropertiesResource{}, models.TableDefinitionResource{}, err
	}

	return props, def, nil
}
