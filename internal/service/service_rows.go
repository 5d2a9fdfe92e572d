// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/url"
	"sort"

	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/models"
)

func (s *tableService) ListRows(ctx context.Context, tableID string) ([]models.RowResource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, err := s.table(tableID)
	if err != nil {
		return nil, err
	}
	return t.rowsAfter(0, false), nil
}

func (s *tableService) Diff(ctx context.Context, tableID, sinceDataETag string) ([]models.RowResource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, err := s.table(tableID)
	if err != nil {
		return nil, err
	}

	since, ok := t.versions[sinceDataETag]
	if !ok {
		s.logger.Debug().Str("func", "tableService.Diff").Str(logger.FieldTableID, tableID).
			Str("data_etag", sinceDataETag).Msg("unknown data version, returning full history")
	}
	return t.rowsAfter(since, true), nil
}

func (s *tableService) PutRow(ctx context.Context, tableID string, row models.Row) (models.RowResource, error) {
	if row.RowID == "" {
		return models.RowResource{}, fmt.Errorf("%w: empty row id", ErrInvalidDataProvided)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.table(tableID)
	if err != nil {
		return models.RowResource{}, err
	}

	current, exists := t.rows[row.RowID]
	switch {
	case exists && !current.row.Deleted && current.row.Values.Equal(row.Values):
		// a retried write whose first reply was lost
		return current.row, nil
	case !exists && row.RowETag != "":
		return models.RowResource{}, fmt.Errorf("%w: row %s does not exist", ErrRowETagMismatch, row.RowID)
	case exists && !current.row.Deleted && row.RowETag != current.row.RowETag:
		return models.RowResource{}, fmt.Errorf("%w: row %s is at %s", ErrRowETagMismatch, row.RowID, current.row.RowETag)
	case exists && current.row.Deleted && row.RowETag != "" && row.RowETag != current.row.RowETag:
		return models.RowResource{}, fmt.Errorf("%w: row %s was deleted at %s", ErrRowETagMismatch, row.RowID, current.row.RowETag)
	}

	rec := &rowRecord{row: models.RowResource{
		RowID:   row.RowID,
		RowETag: s.ids.Generate(),
		Values:  row.Values.Clone(),
	}}
	rec.seq = t.bumpData(s.ids.Generate())
	rec.row.SelfURI = rowSelfURI(tableID, row.RowID)
	rec.row.TableURI = tableBase(tableID)
	t.rows[row.RowID] = rec

	return rec.row, nil
}

func (s *tableService) DeleteRow(ctx context.Context, tableID, rowID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.table(tableID)
	if err != nil {
		return err
	}

	current, exists := t.rows[rowID]
	if !exists || current.row.Deleted {
		return fmt.Errorf("%w: %s", ErrRowNotFound, rowID)
	}

	tombstone := current.row
	tombstone.RowETag = s.ids.Generate()
	tombstone.Deleted = true
	tombstone.Values = nil
	current.row = tombstone
	current.seq = t.bumpData(s.ids.Generate())

	return nil
}

// rowsAfter returns the rows last changed after seq in change order.
func (t *tableState) rowsAfter(seq int64, withTombstones bool) []models.RowResource {
	recs := make([]*rowRecord, 0, len(t.rows))
	for _, rec := range t.rows {
		if rec.seq <= seq || (rec.row.Deleted && !withTombstones) {
			continue
		}
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq < recs[j].seq })

	out := make([]models.RowResource, 0, len(recs))
	for _, rec := range recs {
		row := rec.row
		row.Values = row.Values.Clone()
		out = append(out, row)
	}
	return out
}

func rowSelfURI(tableID, rowID string) string {
	return tableBase(tableID) + "/rows/" + url.PathEscape(rowID)
}
