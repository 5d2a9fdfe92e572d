// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rowstate

import "github.com/MKhiriev/go-table-sync/models"

// PullAction tells the storage layer what to do with one pulled row.
type PullAction int

const (
	// ActionIgnore drops the pulled row (remote tombstone of an unknown row).
	ActionIgnore PullAction = iota
	// ActionCreate stores the pulled row as a new row in state REST.
	ActionCreate
	// ActionOverwrite replaces the local values and version; the row stays REST.
	ActionOverwrite
	// ActionPurge removes the local row.
	ActionPurge
	// ActionKeep leaves the local row untouched. The pulled version is the one
	// the local change is already based on.
	ActionKeep
	// ActionConflict moves the local row to CONFLICTING and retains the pulled
	// values next to the local ones.
	ActionConflict
)

var actionNames = [...]string{
	ActionIgnore:    "ignore",
	ActionCreate:    "create",
	ActionOverwrite: "overwrite",
	ActionPurge:     "purge",
	ActionKeep:      "keep",
	ActionConflict:  "conflict",
}

func (a PullAction) String() string {
	if a < ActionIgnore || a > ActionConflict {
		return "unknown"
	}
	return actionNames[a]
}

// Local is the part of a local row that conflict detection looks at.
type Local struct {
	State   State
	RowETag string
}

// ReconcilePull decides how a pulled row is applied. local is nil when no row
// with the same id exists on this device.
func ReconcilePull(local *Local, remote models.SyncRow) PullAction {
	if local == nil {
		if remote.Deleted {
			return ActionIgnore
		}
		return ActionCreate
	}

	switch {
	case local.State == Rest && remote.Deleted:
		return ActionPurge
	case local.State == Rest:
		return ActionOverwrite
	case local.State == Deleting && remote.Deleted:
		// both sides agree on the outcome
		return ActionPurge
	case local.State != Conflicting && remote.RowETag == local.RowETag:
		return ActionKeep
	default:
		return ActionConflict
	}
}
