// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ColumnType is the element type of a local column.
type ColumnType string

const (
	ColumnTypeNone            ColumnType = "NONE"
	ColumnTypeText            ColumnType = "TEXT"
	ColumnTypeInteger         ColumnType = "INTEGER"
	ColumnTypeNumber          ColumnType = "NUMBER"
	ColumnTypeDate            ColumnType = "DATE"
	ColumnTypeDateTime        ColumnType = "DATETIME"
	ColumnTypeTime            ColumnType = "TIME"
	ColumnTypeBoolean         ColumnType = "BOOLEAN"
	ColumnTypeMimeURI         ColumnType = "MIMEURI"
	ColumnTypeMultipleChoices ColumnType = "MULTIPLE_CHOICES"
	ColumnTypeGeoPoint        ColumnType = "GEOPOINT"
	ColumnTypeDateRange       ColumnType = "DATE_RANGE"
	ColumnTypePhoneNumber     ColumnType = "PHONE_NUMBER"
	ColumnTypeCollectForm     ColumnType = "COLLECT_FORM"
	ColumnTypeMCOptions       ColumnType = "MC_OPTIONS"
	ColumnTypeTableJoin       ColumnType = "TABLE_JOIN"
)

// RemoteElementType is the element type understood by the remote side.
type RemoteElementType string

const (
	RemoteTypeString  RemoteElementType = "STRING"
	RemoteTypeInteger RemoteElementType = "INTEGER"
	RemoteTypeDecimal RemoteElementType = "DECIMAL"
	RemoteTypeBoolean RemoteElementType = "BOOLEAN"
)

// LocalColumn describes a column of a local table as supplied by the schema
// layer.
type LocalColumn struct {
	ElementKey           string
	ElementName          string
	ElementType          ColumnType
	ListChildElementKeys string
	IsPersisted          bool
	Joins                string
}
