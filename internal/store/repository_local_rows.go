// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/rowstate"
	"github.com/MKhiriev/go-table-sync/models"
)

func (r *localTableRepository) InsertRow(ctx context.Context, tableID, rowID string, values models.Values) (string, error) {
	if rowID == "" {
		rowID = r.ids.Generate()
	}

	outcome, err := rowstate.Transition(rowstate.Rest, rowstate.EventInsert)
	if err != nil {
		return "", err
	}

	encoded, err := encodeValues(values)
	if err != nil {
		return "", err
	}

	err = r.inTx(ctx, func(tx *sql.Tx) error {
		if err := r.tableExists(ctx, tx, tableID); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, insertRow, tableID, rowID, "", int(outcome.State), encoded)
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrRowAlreadyExists, rowID)
		}
		if err != nil {
			r.logger.Err(err).Str("func", "localTableRepository.InsertRow").
				Str(logger.FieldTableID, tableID).Str(logger.FieldRowID, rowID).
				Msg("error inserting row")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return rowID, nil
}

func (r *localTableRepository) UpdateRow(ctx context.Context, tableID, rowID string, values models.Values) error {
	encoded, err := encodeValues(values)
	if err != nil {
		return err
	}

	return r.inTx(ctx, func(tx *sql.Tx) error {
		row, err := getRow(ctx, tx, tableID, rowID)
		if err != nil {
			return err
		}

		outcome, err := rowstate.Transition(row.State, rowstate.EventUpdate)
		if err != nil {
			return fmt.Errorf("row %s: %w", rowID, err)
		}

		if _, err = tx.ExecContext(ctx, updateRowValues, encoded, int(outcome.State), tableID, rowID); err != nil {
			r.logger.Err(err).Str("func", "localTableRepository.UpdateRow").
				Str(logger.FieldTableID, tableID).Str(logger.FieldRowID, rowID).
				Msg("error updating row")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}

func (r *localTableRepository) DeleteRow(ctx context.Context, tableID, rowID string) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		row, err := getRow(ctx, tx, tableID, rowID)
		if err != nil {
			return err
		}

		outcome, err := rowstate.Transition(row.State, rowstate.EventDelete)
		if err != nil {
			return fmt.Errorf("row %s: %w", rowID, err)
		}

		if outcome.Purge {
			_, err = tx.ExecContext(ctx, deleteRowByID, tableID, rowID)
		} else {
			_, err = tx.ExecContext(ctx, updateRowState, int(outcome.State), tableID, rowID)
		}
		if err != nil {
			r.logger.Err(err).Str("func", "localTableRepository.DeleteRow").
				Str(logger.FieldTableID, tableID).Str(logger.FieldRowID, rowID).
				Msg("error deleting row")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}

func (r *localTableRepository) GetRow(ctx context.Context, tableID, rowID string) (LocalRow, error) {
	return getRow(ctx, r.DB.DB, tableID, rowID)
}

func getRow(ctx context.Context, q queryer, tableID, rowID string) (LocalRow, error) {
	row, err := scanLocalRow(q.QueryRowContext(ctx, selectRowByID, tableID, rowID))
	if errors.Is(err, sql.ErrNoRows) {
		return LocalRow{}, fmt.Errorf("%w: %s/%s", ErrRowNotFound, tableID, rowID)
	}
	if err != nil {
		return LocalRow{}, err
	}
	return row, nil
}

func scanLocalRow(s scanner) (LocalRow, error) {
	var (
		row             LocalRow
		state           int
		values          string
		conflictETag    sql.NullString
		conflictValues  sql.NullString
		conflictDeleted bool
	)

	err := s.Scan(
		&row.TableID,
		&row.RowID,
		&row.RowETag,
		&state,
		&values,
		&conflictETag,
		&conflictValues,
		&conflictDeleted,
		&row.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return LocalRow{}, err
	}
	if err != nil {
		return LocalRow{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if row.State, err = rowstate.ParseState(state); err != nil {
		return LocalRow{}, fmt.Errorf("row %s: %w", row.RowID, err)
	}
	if row.Values, err = decodeValues(values); err != nil {
		return LocalRow{}, fmt.Errorf("row %s: %w", row.RowID, err)
	}

	if conflictETag.Valid {
		row.Conflict = &RowConflict{RowETag: conflictETag.String, Deleted: conflictDeleted}
		if conflictValues.Valid {
			if row.Conflict.Values, err = decodeValues(conflictValues.String); err != nil {
				return LocalRow{}, fmt.Errorf("row %s: %w", row.RowID, err)
			}
		}
	}

	return row, nil
}

func encodeValues(v models.Values) (string, error) {
	if v == nil {
		v = models.Values{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingValues, err)
	}
	return string(b), nil
}

func decodeValues(s string) (models.Values, error) {
	v := models.Values{}
	if s == "" {
		return v, nil
	}
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingValues, err)
	}
	return v, nil
}
