// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncRow is the transmissible payload of one local row.
type SyncRow struct {
	// RowID is stable for the lifetime of the row.
	RowID string `json:"row_id"`

	// RowETag is the remote-issued row version. Empty until the row has been
	// accepted by the remote side for the first time.
	RowETag string `json:"row_etag,omitempty"`

	// Deleted marks a remote tombstone.
	Deleted bool `json:"deleted"`

	// Values holds the row cells keyed by column element key.
	Values Values `json:"values"`
}

// Row is the body of a row PUT. RowETag is empty for inserts and carries the
// last confirmed version for updates.
type Row struct {
	XMLName struct{} `json:"-" xml:"row"`
	RowID   string   `json:"rowId" xml:"rowId"`
	RowETag string   `json:"rowEtag,omitempty" xml:"rowEtag,omitempty"`
	Deleted bool     `json:"deleted" xml:"deleted"`
	Values  Values   `json:"values" xml:"values"`
}

// RowForInsert builds the PUT body for a row the remote side has never seen.
func RowForInsert(rowID string, values Values) Row {
	return Row{RowID: rowID, Values: values}
}

// RowForUpdate builds the PUT body for a row previously confirmed as rowETag.
func RowForUpdate(rowID, rowETag string, values Values) Row {
	return Row{RowID: rowID, RowETag: rowETag, Values: values}
}

// RowResource is a row as returned by the remote side.
type RowResource struct {
	XMLName  struct{} `json:"-" xml:"rowResource"`
	RowID    string   `json:"rowId" xml:"rowId"`
	RowETag  string   `json:"rowEtag" xml:"rowEtag"`
	Deleted  bool     `json:"deleted" xml:"deleted"`
	Values   Values   `json:"values" xml:"values"`
	SelfURI  string   `json:"selfUri,omitempty" xml:"selfUri,omitempty"`
	TableURI string   `json:"tableUri,omitempty" xml:"tableUri,omitempty"`
}

// SyncRow converts the remote row into a transfer record.
func (r RowResource) SyncRow() SyncRow {
	return SyncRow{
		RowID:   r.RowID,
		RowETag: r.RowETag,
		Deleted: r.Deleted,
		Values:  r.Values,
	}
}

// RowResourceList wraps a list of rows so that it has an XML root element.
type RowResourceList struct {
	XMLName struct{}      `json:"-" xml:"rows"`
	Rows    []RowResource `json:"rows" xml:"rowResource"`
}
