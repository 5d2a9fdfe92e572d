// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rowstate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-table-sync/models"
)

func TestReconcilePull(t *testing.T) {
	remote := models.SyncRow{RowID: "r1", RowETag: "e2", Values: models.Values{"name": "remote"}}
	tombstone := models.SyncRow{RowID: "r1", RowETag: "e3", Deleted: true}

	tests := []struct {
		name   string
		local  *Local
		remote models.SyncRow
		want   PullAction
	}{
		{"unknown row is created", nil, remote, ActionCreate},
		{"unknown tombstone is ignored", nil, tombstone, ActionIgnore},
		{"rest row is overwritten", &Local{State: Rest, RowETag: "e1"}, remote, ActionOverwrite},
		{"rest row with tombstone is purged", &Local{State: Rest, RowETag: "e1"}, tombstone, ActionPurge},
		{"updating row with new etag conflicts", &Local{State: Updating, RowETag: "e1"}, remote, ActionConflict},
		{"updating row with same etag is kept", &Local{State: Updating, RowETag: "e2"}, remote, ActionKeep},
		{"inserting row collision conflicts", &Local{State: Inserting}, remote, ActionConflict},
		{"deleting row with tombstone is purged", &Local{State: Deleting, RowETag: "e1"}, tombstone, ActionPurge},
		{"deleting row with new etag conflicts", &Local{State: Deleting, RowETag: "e1"}, remote, ActionConflict},
		{"updating row with tombstone conflicts", &Local{State: Updating, RowETag: "e1"}, tombstone, ActionConflict},
		{"conflicting row stays conflicting", &Local{State: Conflicting, RowETag: "e2"}, remote, ActionConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReconcilePull(tt.local, tt.remote))
		})
	}
}
