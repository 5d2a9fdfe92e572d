// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"sort"
	"sync"

	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/utils"
	"github.com/MKhiriev/go-table-sync/models"
)

// tableService keeps every table in memory.
type tableService struct {
	mu     sync.RWMutex
	tables map[string]*tableState

	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

type tableState struct {
	def       models.TableDefinition
	dataETag  string
	propsETag string
	tableKey  string
	entries   []models.KeyValueStoreEntry

	rows map[string]*rowRecord
	// seq numbers every data change; versions maps each issued data version
	// to the change it was issued for.
	seq      int64
	versions map[string]int64
}

type rowRecord struct {
	row models.RowResource
	seq int64
}

// NewTableService returns an empty in-memory TableService.
func NewTableService(logger *logger.Logger) TableService {
	return &tableService{
		tables: make(map[string]*tableState),
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

func (s *tableService) ListTables(ctx context.Context) ([]models.TableResource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.tables))
	for id := range s.tables {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]models.TableResource, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.tables[id].resource())
	}
	return out, nil
}

func (s *tableService) GetTable(ctx context.Context, tableID string) (models.TableResource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, err := s.table(tableID)
	if err != nil {
		return models.TableResource{}, err
	}
	return t.resource(), nil
}

func (s *tableService) PutTable(ctx context.Context, def models.TableDefinition) (models.TableResource, error) {
	if def.TableID == "" {
		return models.TableResource{}, fmt.Errorf("%w: empty table id", ErrInvalidDataProvided)
	}
	if def.Type == "" {
		def.Type = models.TableTypeData
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tables[def.TableID]
	if !ok {
		t = &tableState{
			def:       def,
			tableKey:  def.TableKey,
			propsETag: s.ids.Generate(),
			rows:      make(map[string]*rowRecord),
			versions:  make(map[string]int64),
		}
		t.bumpData(s.ids.Generate())
		s.tables[def.TableID] = t

		s.logger.Info().Str("func", "tableService.PutTable").Str(logger.FieldTableID, def.TableID).
			Int("columns", len(def.Columns)).Msg("table created")
		return t.resource(), nil
	}

	if !sameDefinition(t.def, def) {
		t.def = def
		t.propsETag = s.ids.Generate()
		s.logger.Info().Str("func", "tableService.PutTable").Str(logger.FieldTableID, def.TableID).
			Msg("table definition replaced")
	}
	return t.resource(), nil
}

func sameDefinition(a, b models.TableDefinition) bool {
	return a.TableKey == b.TableKey &&
		a.DBTableName == b.DBTableName &&
		a.Type == b.Type &&
		a.AccessControlTableID == b.AccessControlTableID &&
		slices.Equal(a.Columns, b.Columns)
}

func (s *tableService) DeleteTable(ctx context.Context, tableID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.table(tableID); err != nil {
		return err
	}
	delete(s.tables, tableID)

	s.logger.Info().Str("func", "tableService.DeleteTable").Str(logger.FieldTableID, tableID).Msg("table deleted")
	return nil
}

func (s *tableService) GetProperties(ctx context.Context, tableID string) (models.PropertiesResource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, err := s.table(tableID)
	if err != nil {
		return models.PropertiesResource{}, err
	}
	return t.properties(), nil
}

func (s *tableService) PutProperties(ctx context.Context, tableID string, props models.TableProperties) (models.PropertiesResource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.table(tableID)
	if err != nil {
		return models.PropertiesResource{}, err
	}
	if props.PropertiesETag != t.propsETag {
		return models.PropertiesResource{}, fmt.Errorf("%w: have %s, got %s", ErrPropertiesETagMismatch, t.propsETag, props.PropertiesETag)
	}

	if props.TableKey != "" {
		t.tableKey = props.TableKey
	}
	t.entries = slices.Clone(props.Entries)
	t.propsETag = s.ids.Generate()

	return t.properties(), nil
}

func (s *tableService) GetDefinition(ctx context.Context, tableID string) (models.TableDefinitionResource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, err := s.table(tableID)
	if err != nil {
		return models.TableDefinitionResource{}, err
	}

	base := tableBase(tableID)
	return models.TableDefinitionResource{
		TableID:              t.def.TableID,
		Columns:              slices.Clone(t.def.Columns),
		TableKey:             t.def.TableKey,
		DBTableName:          t.def.DBTableName,
		Type:                 t.def.Type,
		AccessControlTableID: t.def.AccessControlTableID,
		SelfURI:              base + "/definition",
		TableURI:             base,
	}, nil
}

// table must be called with s.mu held.
func (s *tableService) table(tableID string) (*tableState, error) {
	t, ok := s.tables[tableID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, tableID)
	}
	return t, nil
}

func tableBase(tableID string) string {
	return TablesPath + url.PathEscape(tableID)
}

func (t *tableState) resource() models.TableResource {
	base := tableBase(t.def.TableID)
	return models.TableResource{
		TableID:        t.def.TableID,
		TableKey:       t.tableKey,
		DataETag:       t.dataETag,
		PropertiesETag: t.propsETag,
		SelfURI:        base,
		DataURI:        base + "/rows",
		PropertiesURI:  base + "/properties",
		DiffURI:        base + "/diff",
		DefinitionURI:  base + "/definition",
	}
}

func (t *tableState) properties() models.PropertiesResource {
	base := tableBase(t.def.TableID)
	return models.PropertiesResource{
		PropertiesETag: t.propsETag,
		TableKey:       t.tableKey,
		Entries:        slices.Clone(t.entries),
		SelfURI:        base + "/properties",
		TableURI:       base,
	}
}

// bumpData records a data change under a new data version and returns its
// sequence number.
func (t *tableState) bumpData(etag string) int64 {
	t.seq++
	t.dataETag = etag
	t.versions[etag] = t.seq
	return t.seq
}
