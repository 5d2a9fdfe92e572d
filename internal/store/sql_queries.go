// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-table-sync/internal/rowstate"
)

// maxQueryIDs bounds the ids bound into a single IN clause. SQLite limits
// the number of host parameters per statement.
const maxQueryIDs = 500

const (
	insertTable = `INSERT INTO sync_tables (table_id, table_key, db_table_name, table_type, access_control)
		VALUES (?, ?, ?, ?, ?);`

	insertColumn = `INSERT INTO sync_columns (
			table_id,
			element_key,
			element_name,
			element_type,
			list_child_element_keys,
			is_persisted,
			joins,
			position
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?);`

	selectTableByID = `SELECT table_id, table_key, db_table_name, table_type, access_control, sync_tag, created_at, updated_at
		FROM sync_tables
		WHERE table_id = ?;`

	selectTableExists = `SELECT 1 FROM sync_tables WHERE table_id = ?;`

	selectColumnsByTable = `SELECT element_key, element_name, element_type, list_child_element_keys, is_persisted, joins
		FROM sync_columns
		WHERE table_id = ?
		ORDER BY position;`

	deleteColumnsByTable = `DELETE FROM sync_columns WHERE table_id = ?;`
	deleteRowsByTable    = `DELETE FROM sync_rows WHERE table_id = ?;`
	deleteTableByID      = `DELETE FROM sync_tables WHERE table_id = ?;`

	selectSyncTag = `SELECT sync_tag FROM sync_tables WHERE table_id = ?;`
	updateSyncTag = `UPDATE sync_tables
		SET sync_tag = ?, updated_at = CURRENT_TIMESTAMP
		WHERE table_id = ?;`

	insertRow = `INSERT INTO sync_rows (table_id, row_id, row_etag, sync_state, row_values)
		VALUES (?, ?, ?, ?, ?);`

	selectRowByID = `SELECT ` + rowColumns + `
		FROM sync_rows
		WHERE table_id = ? AND row_id = ?;`

	updateRowValues = `UPDATE sync_rows
		SET row_values = ?, sync_state = ?, updated_at = CURRENT_TIMESTAMP
		WHERE table_id = ? AND row_id = ?;`

	updateRowState = `UPDATE sync_rows
		SET sync_state = ?, updated_at = CURRENT_TIMESTAMP
		WHERE table_id = ? AND row_id = ?;`

	confirmRow = `UPDATE sync_rows
		SET row_etag = ?, sync_state = ?, updated_at = CURRENT_TIMESTAMP
		WHERE table_id = ? AND row_id = ?;`

	// overwriteRow replaces the row with a remote version and drops any
	// retained conflict.
	overwriteRow = `UPDATE sync_rows
		SET row_etag = ?, row_values = ?, sync_state = ?,
			conflict_etag = NULL, conflict_values = NULL, conflict_deleted = 0,
			updated_at = CURRENT_TIMESTAMP
		WHERE table_id = ? AND row_id = ?;`

	markRowConflict = `UPDATE sync_rows
		SET sync_state = ?, conflict_etag = ?, conflict_values = ?, conflict_deleted = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE table_id = ? AND row_id = ?;`

	// keepLocalRow rebases the local values on the retained remote version.
	keepLocalRow = `UPDATE sync_rows
		SET row_etag = conflict_etag, sync_state = ?,
			conflict_etag = NULL, conflict_values = NULL, conflict_deleted = 0,
			updated_at = CURRENT_TIMESTAMP
		WHERE table_id = ? AND row_id = ?;`

	deleteRowByID = `DELETE FROM sync_rows WHERE table_id = ? AND row_id = ?;`

	rowColumns = `table_id, row_id, row_etag, sync_state, row_values, conflict_etag, conflict_values, conflict_deleted, updated_at`
)

// buildSelectTablesQuery lists all registered tables ordered by id.
func buildSelectTablesQuery() (string, []any, error) {
	return sq.Select("table_id", "table_key", "db_table_name", "table_type", "access_control", "sync_tag", "created_at", "updated_at").
		From("sync_tables").
		OrderBy("table_id").
		ToSql()
}

// buildSelectRowsByStateQuery lists the rows of a table in the given states,
// in local insertion order.
func buildSelectRowsByStateQuery(tableID string, states ...rowstate.State) (string, []any, error) {
	values := make([]int, 0, len(states))
	for _, s := range states {
		values = append(values, int(s))
	}

	return sq.Select(rowColumns).
		From("sync_rows").
		Where(sq.Eq{"table_id": tableID, "sync_state": values}).
		OrderBy("rowid").
		ToSql()
}

// buildSelectRowsByIDQuery fetches the given rows of a table.
func buildSelectRowsByIDQuery(tableID string, rowIDs []string) (string, []any, error) {
	return sq.Select(rowColumns).
		From("sync_rows").
		Where(sq.Eq{"table_id": tableID, "row_id": rowIDs}).
		ToSql()
}

// buildDeleteRowsInStateQuery removes the given rows if they are still in
// state.
func buildDeleteRowsInStateQuery(tableID string, rowIDs []string, state rowstate.State) (string, []any, error) {
	return sq.Delete("sync_rows").
		Where(sq.Eq{"table_id": tableID, "row_id": rowIDs, "sync_state": int(state)}).
		ToSql()
}

// chunkIDs splits ids into slices of at most maxQueryIDs elements.
func chunkIDs(ids []string) [][]string {
	var chunks [][]string
	for len(ids) > maxQueryIDs {
		chunks = append(chunks, ids[:maxQueryIDs])
		ids = ids[maxQueryIDs:]
	}
	if len(ids) > 0 {
		chunks = append(chunks, ids)
	}
	return chunks
}
