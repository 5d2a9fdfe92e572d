// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/utils"
	"github.com/MKhiriev/go-table-sync/models"
)

type localTableRepository struct {
	*DB
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewLocalTableRepository returns a LocalTableRepository backed by db.
func NewLocalTableRepository(db *DB, log *logger.Logger) LocalTableRepository {
	return &localTableRepository{
		DB:     db,
		ids:    utils.NewUUIDGenerator(),
		logger: log,
	}
}

func (r *localTableRepository) RegisterTable(ctx context.Context, table models.LocalTable, columns []models.LocalColumn) error {
	if table.Type == "" {
		table.Type = models.TableTypeData
	}

	return r.inTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, insertTable, table.TableID, table.TableKey, table.DBTableName, string(table.Type), table.AccessControl)
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrTableAlreadyExists, table.TableID)
		}
		if err != nil {
			r.logger.Err(err).Str("func", "localTableRepository.RegisterTable").Str(logger.FieldTableID, table.TableID).Msg("error inserting table")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return insertColumns(ctx, tx, table.TableID, columns)
	})
}

func insertColumns(ctx context.Context, tx *sql.Tx, tableID string, columns []models.LocalColumn) error {
	for i, c := range columns {
		_, err := tx.ExecContext(ctx, insertColumn,
			tableID,
			c.ElementKey,
			c.ElementName,
			string(c.ElementType),
			c.ListChildElementKeys,
			c.IsPersisted,
			c.Joins,
			i,
		)
		if err != nil {
			return fmt.Errorf("%w: column %s: %w", ErrExecutingStatement, c.ElementKey, err)
		}
	}
	return nil
}

// replaceColumns swaps the stored columns for the ones of a remote definition.
func replaceColumns(ctx context.Context, tx *sql.Tx, tableID string, def *models.TableDefinitionResource) error {
	if _, err := tx.ExecContext(ctx, deleteColumnsByTable, tableID); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	columns := make([]models.LocalColumn, 0, len(def.Columns))
	for _, c := range def.Columns {
		columns = append(columns, models.LocalColumn{
			ElementKey:           c.ElementKey,
			ElementName:          c.ElementName,
			ElementType:          models.ColumnType(c.ElementType),
			ListChildElementKeys: c.ListChildElementKeys,
			IsPersisted:          c.IsPersisted,
			Joins:                c.Joins,
		})
	}
	return insertColumns(ctx, tx, tableID, columns)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTable(s scanner) (models.LocalTable, error) {
	var (
		t         models.LocalTable
		tableType string
	)
	err := s.Scan(&t.TableID, &t.TableKey, &t.DBTableName, &tableType, &t.AccessControl, &t.SyncTag, &t.CreatedAt, &t.UpdatedAt)
	t.Type = models.TableType(tableType)
	return t, err
}

func (r *localTableRepository) GetTable(ctx context.Context, tableID string) (models.LocalTable, error) {
	t, err := scanTable(r.QueryRowContext(ctx, selectTableByID, tableID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.LocalTable{}, fmt.Errorf("%w: %s", ErrTableNotFound, tableID)
	}
	if err != nil {
		r.logger.Err(err).Str("func", "localTableRepository.GetTable").Str(logger.FieldTableID, tableID).Msg("error scanning table")
		return models.LocalTable{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return t, nil
}

func (r *localTableRepository) ListTables(ctx context.Context) ([]models.LocalTable, error) {
	query, args, err := buildSelectTablesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "localTableRepository.ListTables").Msg("error querying tables")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var tables []models.LocalTable
	for rows.Next() {
		t, err := scanTable(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tables = append(tables, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tables, nil
}

func (r *localTableRepository) GetColumns(ctx context.Context, tableID string) ([]models.LocalColumn, error) {
	if err := r.tableExists(ctx, r.DB.DB, tableID); err != nil {
		return nil, err
	}

	rows, err := r.QueryContext(ctx, selectColumnsByTable, tableID)
	if err != nil {
		r.logger.Err(err).Str("func", "localTableRepository.GetColumns").Str(logger.FieldTableID, tableID).Msg("error querying columns")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var columns []models.LocalColumn
	for rows.Next() {
		var (
			c           models.LocalColumn
			elementType string
		)
		if err = rows.Scan(&c.ElementKey, &c.ElementName, &elementType, &c.ListChildElementKeys, &c.IsPersisted, &c.Joins); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		c.ElementType = models.ColumnType(elementType)
		columns = append(columns, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return columns, nil
}

func (r *localTableRepository) DeleteTable(ctx context.Context, tableID string) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, deleteTableByID, tableID)
		if err != nil {
			r.logger.Err(err).Str("func", "localTableRepository.DeleteTable").Str(logger.FieldTableID, tableID).Msg("error deleting table")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("%w: %s", ErrTableNotFound, tableID)
		}

		for _, q := range []string{deleteColumnsByTable, deleteRowsByTable} {
			if _, err = tx.ExecContext(ctx, q, tableID); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return nil
	})
}

func (r *localTableRepository) GetSyncTag(ctx context.Context, tableID string) (*models.SyncTag, error) {
	var raw string
	err := r.QueryRowContext(ctx, selectSyncTag, tableID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, tableID)
	}
	if err != nil {
		r.logger.Err(err).Str("func", "localTableRepository.GetSyncTag").Str(logger.FieldTableID, tableID).Msg("error reading sync tag")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if raw == "" {
		return nil, nil
	}

	tag, err := models.ParseSyncTag(raw)
	if err != nil {
		return nil, fmt.Errorf("table %s: %w", tableID, err)
	}
	return &tag, nil
}

func (r *localTableRepository) SaveSyncTag(ctx context.Context, tableID string, tag models.SyncTag) error {
	err := saveSyncTag(ctx, r.DB.DB, tableID, tag)
	if err != nil && !errors.Is(err, ErrTableNotFound) {
		r.logger.Err(err).Str("func", "localTableRepository.SaveSyncTag").Str(logger.FieldTableID, tableID).Msg("error saving sync tag")
	}
	return err
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func saveSyncTag(ctx context.Context, e execer, tableID string, tag models.SyncTag) error {
	res, err := e.ExecContext(ctx, updateSyncTag, tag.String(), tableID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrTableNotFound, tableID)
	}
	return nil
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (r *localTableRepository) tableExists(ctx context.Context, q queryer, tableID string) error {
	var one int
	err := q.QueryRowContext(ctx, selectTableExists, tableID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrTableNotFound, tableID)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}
