// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/rowstate"
	"github.com/MKhiriev/go-table-sync/models"
)

func (r *localTableRepository) PendingRows(ctx context.Context, tableID string, state rowstate.State) ([]LocalRow, error) {
	if !state.Valid() {
		return nil, fmt.Errorf("%w: %d", rowstate.ErrUnknownState, int(state))
	}
	return r.rowsInState(ctx, tableID, state)
}

func (r *localTableRepository) ListConflicts(ctx context.Context, tableID string) ([]LocalRow, error) {
	return r.rowsInState(ctx, tableID, rowstate.Conflicting)
}

func (r *localTableRepository) rowsInState(ctx context.Context, tableID string, state rowstate.State) ([]LocalRow, error) {
	if err := r.tableExists(ctx, r.DB.DB, tableID); err != nil {
		return nil, err
	}

	query, args, err := buildSelectRowsByStateQuery(tableID, state)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := queryRows(ctx, r.DB.DB, query, args)
	if err != nil {
		r.logger.Err(err).Str("func", "localTableRepository.rowsInState").
			Str(logger.FieldTableID, tableID).Stringer("state", state).
			Msg("error querying rows")
		return nil, err
	}
	return rows, nil
}

func queryRows(ctx context.Context, q queryer, query string, args []any) ([]LocalRow, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var out []LocalRow
	for rows.Next() {
		row, err := scanLocalRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return out, nil
}

// rowsByID loads the given rows of a table keyed by row id. Missing rows are
// absent from the map.
func rowsByID(ctx context.Context, q queryer, tableID string, rowIDs []string) (map[string]LocalRow, error) {
	out := make(map[string]LocalRow, len(rowIDs))
	for _, chunk := range chunkIDs(rowIDs) {
		query, args, err := buildSelectRowsByIDQuery(tableID, chunk)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		rows, err := queryRows(ctx, q, query, args)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			out[row.RowID] = row
		}
	}
	return out, nil
}

// ConfirmRows records the row versions the remote side issued for pushed
// and saves the running table tag.
//
// A row edited again while its push was in flight keeps its newer values and
// stays UPDATING on top of the confirmed version. A row deleted meanwhile
// stays DELETING.
func (r *localTableRepository) ConfirmRows(ctx context.Context, tableID string, pushed []models.SyncRow, mod models.Modification) error {
	log := r.logger.ForTable(tableID)

	return r.inTx(ctx, func(tx *sql.Tx) error {
		ids := make([]string, 0, len(pushed))
		for _, p := range pushed {
			if _, ok := mod.RowETags[p.RowID]; ok {
				ids = append(ids, p.RowID)
			}
		}

		current, err := rowsByID(ctx, tx, tableID, ids)
		if err != nil {
			return err
		}

		for _, p := range pushed {
			etag, ok := mod.RowETags[p.RowID]
			if !ok {
				continue
			}

			row, ok := current[p.RowID]
			if !ok {
				log.Debug().Str("func", "localTableRepository.ConfirmRows").Str(logger.FieldRowID, p.RowID).
					Msg("confirmed row no longer exists locally")
				continue
			}

			next, err := confirmedState(row, p)
			if err != nil {
				log.Warn().Err(err).Str("func", "localTableRepository.ConfirmRows").Str(logger.FieldRowID, p.RowID).
					Msg("skipping confirmation")
				continue
			}

			if _, err = tx.ExecContext(ctx, confirmRow, etag, int(next), tableID, p.RowID); err != nil {
				log.Err(err).Str("func", "localTableRepository.ConfirmRows").Str(logger.FieldRowID, p.RowID).
					Msg("error confirming row")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}

		return saveSyncTag(ctx, tx, tableID, mod.TableSyncTag)
	})
}

func confirmedState(row LocalRow, pushed models.SyncRow) (rowstate.State, error) {
	if row.State == rowstate.Deleting {
		return rowstate.Deleting, nil
	}

	outcome, err := rowstate.Transition(row.State, rowstate.EventConfirm)
	if err != nil {
		return 0, err
	}
	if row.Values.Equal(pushed.Values) {
		return outcome.State, nil
	}

	// edited while the push was in flight
	outcome, err = rowstate.Transition(outcome.State, rowstate.EventUpdate)
	if err != nil {
		return 0, err
	}
	return outcome.State, nil
}

// ConfirmDeletedRows purges rows whose deletion the remote side accepted and
// saves the running table tag.
func (r *localTableRepository) ConfirmDeletedRows(ctx context.Context, tableID string, rowIDs []string, tag models.SyncTag) error {
	log := r.logger.ForTable(tableID)

	return r.inTx(ctx, func(tx *sql.Tx) error {
		current, err := rowsByID(ctx, tx, tableID, rowIDs)
		if err != nil {
			return err
		}

		purge := make([]string, 0, len(rowIDs))
		for _, id := range rowIDs {
			row, ok := current[id]
			if !ok {
				continue
			}
			outcome, err := rowstate.Transition(row.State, rowstate.EventConfirmDelete)
			if err != nil {
				log.Warn().Err(err).Str("func", "localTableRepository.ConfirmDeletedRows").Str(logger.FieldRowID, id).
					Msg("skipping deletion confirmation")
				continue
			}
			if outcome.Purge {
				purge = append(purge, id)
			}
		}

		for _, chunk := range chunkIDs(purge) {
			query, args, err := buildDeleteRowsInStateQuery(tableID, chunk, rowstate.Deleting)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				log.Err(err).Str("func", "localTableRepository.ConfirmDeletedRows").Msg("error purging rows")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}

		return saveSyncTag(ctx, tx, tableID, tag)
	})
}

// ApplyIncoming merges the rows of a pull into the table, replaces the
// stored columns when a new definition came along and saves the remote tag.
// It runs in one transaction.
func (r *localTableRepository) ApplyIncoming(ctx context.Context, tableID string, incoming models.IncomingModification) (ApplyResult, error) {
	var result ApplyResult

	err := r.inTx(ctx, func(tx *sql.Tx) error {
		if err := r.tableExists(ctx, tx, tableID); err != nil {
			return err
		}

		ids := make([]string, 0, len(incoming.Rows))
		for _, row := range incoming.Rows {
			ids = append(ids, row.RowID)
		}
		current, err := rowsByID(ctx, tx, tableID, ids)
		if err != nil {
			return err
		}

		result = ApplyResult{}
		for _, remote := range incoming.Rows {
			var local *rowstate.Local
			if row, ok := current[remote.RowID]; ok {
				local = &rowstate.Local{State: row.State, RowETag: row.RowETag}
			}

			action := rowstate.ReconcilePull(local, remote)
			if err = applyPulledRow(ctx, tx, tableID, action, remote); err != nil {
				r.logger.Err(err).Str("func", "localTableRepository.ApplyIncoming").
					Str(logger.FieldTableID, tableID).Str(logger.FieldRowID, remote.RowID).
					Stringer("action", action).Msg("error applying pulled row")
				return err
			}
			countAction(&result, action)
			trackAction(current, tableID, action, remote)
		}

		if incoming.Definition != nil {
			if err = replaceColumns(ctx, tx, tableID, incoming.Definition); err != nil {
				return err
			}
		}

		return saveSyncTag(ctx, tx, tableID, incoming.TableSyncTag.Authoritative())
	})
	if err != nil {
		return ApplyResult{}, err
	}

	return result, nil
}

func applyPulledRow(ctx context.Context, tx *sql.Tx, tableID string, action rowstate.PullAction, remote models.SyncRow) error {
	var err error

	switch action {
	case rowstate.ActionIgnore, rowstate.ActionKeep:
		return nil

	case rowstate.ActionCreate:
		var values string
		if values, err = encodeValues(remote.Values); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, insertRow, tableID, remote.RowID, remote.RowETag, int(rowstate.Rest), values)

	case rowstate.ActionOverwrite:
		var values string
		if values, err = encodeValues(remote.Values); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, overwriteRow, remote.RowETag, values, int(rowstate.Rest), tableID, remote.RowID)

	case rowstate.ActionPurge:
		_, err = tx.ExecContext(ctx, deleteRowByID, tableID, remote.RowID)

	case rowstate.ActionConflict:
		var values string
		if values, err = encodeValues(remote.Values); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, markRowConflict, int(rowstate.Conflicting), remote.RowETag, values, remote.Deleted, tableID, remote.RowID)

	default:
		return fmt.Errorf("unknown pull action %d", int(action))
	}

	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func countAction(result *ApplyResult, action rowstate.PullAction) {
	switch action {
	case rowstate.ActionIgnore:
		result.Ignored++
	case rowstate.ActionCreate:
		result.Created++
	case rowstate.ActionOverwrite:
		result.Overwritten++
	case rowstate.ActionPurge:
		result.Purged++
	case rowstate.ActionKeep:
		result.Kept++
	case rowstate.ActionConflict:
		result.Conflicts++
	}
}

// trackAction keeps current in step with the rows written so far, so a row
// listed twice in one pull is matched against its updated state.
func trackAction(current map[string]LocalRow, tableID string, action rowstate.PullAction, remote models.SyncRow) {
	switch action {
	case rowstate.ActionCreate, rowstate.ActionOverwrite:
		current[remote.RowID] = LocalRow{TableID: tableID, RowID: remote.RowID, RowETag: remote.RowETag, State: rowstate.Rest}
	case rowstate.ActionPurge:
		delete(current, remote.RowID)
	case rowstate.ActionConflict:
		row := current[remote.RowID]
		row.State = rowstate.Conflicting
		current[remote.RowID] = row
	}
}

// ResolveConflict settles a CONFLICTING row. keepLocal rebases the local
// values on the remote version so the next push overwrites it; otherwise the
// remote version replaces the local row.
func (r *localTableRepository) ResolveConflict(ctx context.Context, tableID, rowID string, keepLocal bool) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		row, err := getRow(ctx, tx, tableID, rowID)
		if err != nil {
			return err
		}
		if row.State != rowstate.Conflicting || row.Conflict == nil {
			return fmt.Errorf("%w: %s", ErrRowNotConflicting, rowID)
		}

		event := rowstate.EventResolveTakeRemote
		if keepLocal {
			event = rowstate.EventResolveKeepLocal
		}
		outcome, err := rowstate.Transition(row.State, event)
		if err != nil {
			return fmt.Errorf("row %s: %w", rowID, err)
		}

		switch {
		case keepLocal:
			_, err = tx.ExecContext(ctx, keepLocalRow, int(outcome.State), tableID, rowID)
		case row.Conflict.Deleted:
			_, err = tx.ExecContext(ctx, deleteRowByID, tableID, rowID)
		default:
			var values string
			if values, err = encodeValues(row.Conflict.Values); err != nil {
				return err
			}
			_, err = tx.ExecContext(ctx, overwriteRow, row.Conflict.RowETag, values, int(outcome.State), tableID, rowID)
		}
		if err != nil {
			r.logger.Err(err).Str("func", "localTableRepository.ResolveConflict").
				Str(logger.FieldTableID, tableID).Str(logger.FieldRowID, rowID).
				Msg("error resolving conflict")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}
