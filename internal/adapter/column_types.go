// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "github.com/MKhiriev/go-table-sync/models"

// RemoteColumnType maps a local column type onto the remote element types.
//
// The mapping is one-way and lossy: every type other than INTEGER, NUMBER and
// BOOLEAN, including choice lists, geopoints, join columns and form media
// references, travels as STRING. Restoring composite semantics is up to the
// local schema layer.
func RemoteColumnType(t models.ColumnType) models.RemoteElementType {
	switch t {
	case models.ColumnTypeInteger:
		return models.RemoteTypeInteger
	case models.ColumnTypeNumber:
		return models.RemoteTypeDecimal
	case models.ColumnTypeBoolean:
		return models.RemoteTypeBoolean
	default:
		return models.RemoteTypeString
	}
}

// ToRemoteColumns converts local column definitions of tableID into their
// wire form.
func ToRemoteColumns(tableID string, columns []models.LocalColumn) []models.Column {
	out := make([]models.Column, 0, len(columns))
	for _, c := range columns {
		out = append(out, models.Column{
			TableID:              tableID,
			ElementKey:           c.ElementKey,
			ElementName:          c.ElementName,
			ElementType:          RemoteColumnType(c.ElementType),
			ListChildElementKeys: c.ListChildElementKeys,
			IsPersisted:          c.IsPersisted,
			Joins:                c.Joins,
		})
	}
	return out
}
