// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Modification is the result of a push. RowETags holds the confirmed row
// versions keyed by row id; TableSyncTag is the running table tag after the
// confirmed rows.
type Modification struct {
	RowETags     map[string]string
	TableSyncTag SyncTag
}

// NewModification returns an empty push result starting at tag.
func NewModification(tag SyncTag) Modification {
	return Modification{RowETags: make(map[string]string), TableSyncTag: tag}
}

// IncomingModification is the result of a pull.
type IncomingModification struct {
	// Rows holds new, changed and deleted rows since the caller's tag.
	Rows []SyncRow

	// TableSyncTag is the authoritative remote tag at the time of the pull.
	TableSyncTag SyncTag

	// PropertiesChanged is set when the remote properties version differs
	// from the caller's.
	PropertiesChanged bool

	// Properties and Definition are fetched only when PropertiesChanged is set.
	Properties *PropertiesResource
	Definition *TableDefinitionResource
}

// Empty reports whether the pull carried neither rows nor properties.
func (m IncomingModification) Empty() bool {
	return len(m.Rows) == 0 && !m.PropertiesChanged
}
