// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LocalTable is a table registered for synchronization on this device.
type LocalTable struct {
	TableID       string
	TableKey      string
	DBTableName   string
	Type          TableType
	AccessControl string
	// SyncTag is the persisted token as written by SyncTag.String. Empty when
	// the table has never been synchronized.
	SyncTag   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
