// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-table-sync/models"
)

// TablesPath is the root of the table collection served by TableService.
// Resource URIs returned by the service are relative to the server address.
const TablesPath = "/odktables/tables/"

// TableService is the server side of the remote table protocol. Every data
// change issues a fresh row version and a fresh table data version; every
// properties change issues a fresh properties version.
type TableService interface {
	ListTables(ctx context.Context) ([]models.TableResource, error)
	GetTable(ctx context.Context, tableID string) (models.TableResource, error)
	// PutTable creates the table or replaces its definition. Replacing with
	// an identical definition leaves both versions unchanged.
	PutTable(ctx context.Context, def models.TableDefinition) (models.TableResource, error)
	DeleteTable(ctx context.Context, tableID string) error

	// ListRows returns the live rows of the table.
	ListRows(ctx context.Context, tableID string) ([]models.RowResource, error)
	// Diff returns the rows changed after the data version sinceDataETag,
	// tombstones included. An unknown version yields every row ever stored.
	Diff(ctx context.Context, tableID, sinceDataETag string) ([]models.RowResource, error)
	// PutRow inserts or updates a row. A write repeating the stored values is
	// accepted without a new version.
	PutRow(ctx context.Context, tableID string, row models.Row) (models.RowResource, error)
	DeleteRow(ctx context.Context, tableID, rowID string) error

	GetProperties(ctx context.Context, tableID string) (models.PropertiesResource, error)
	PutProperties(ctx context.Context, tableID string, props models.TableProperties) (models.PropertiesResource, error)
	GetDefinition(ctx context.Context, tableID string) (models.TableDefinitionResource, error)
}
