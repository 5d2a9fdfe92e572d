// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TableType classifies a remote table.
type TableType string

const (
	TableTypeData     TableType = "DATA"
	TableTypeSecurity TableType = "SECURITY"
	TableTypeShortcut TableType = "SHORTCUT"
)

// TableResource is the remote handle of one table. It lists the URIs of the
// table's sub-resources and the current data and properties versions.
type TableResource struct {
	XMLName        struct{} `json:"-" xml:"tableResource"`
	TableID        string   `json:"tableId" xml:"tableId"`
	TableKey       string   `json:"tableKey" xml:"tableKey"`
	DataETag       string   `json:"dataEtag" xml:"dataEtag"`
	PropertiesETag string   `json:"propertiesEtag" xml:"propertiesEtag"`
	SelfURI        string   `json:"selfUri" xml:"selfUri"`
	DataURI        string   `json:"dataUri" xml:"dataUri"`
	PropertiesURI  string   `json:"propertiesUri" xml:"propertiesUri"`
	DiffURI        string   `json:"diffUri" xml:"diffUri"`
	DefinitionURI  string   `json:"definitionUri" xml:"definitionUri"`
}

// SyncTag returns the authoritative tag advertised by the resource.
func (r TableResource) SyncTag() SyncTag {
	return NewSyncTag(r.DataETag, r.PropertiesETag)
}

// TableResourceList wraps the table enumeration so that it has an XML root.
type TableResourceList struct {
	XMLName struct{}        `json:"-" xml:"tables"`
	Tables  []TableResource `json:"tables" xml:"tableResource"`
}

// Column is the remote description of one table column.
type Column struct {
	XMLName              struct{}          `json:"-" xml:"column"`
	TableID              string            `json:"tableId" xml:"tableId"`
	ElementKey           string            `json:"elementKey" xml:"elementKey"`
	ElementName          string            `json:"elementName" xml:"elementName"`
	ElementType          RemoteElementType `json:"elementType" xml:"elementType"`
	ListChildElementKeys string            `json:"listChildElementKeys,omitempty" xml:"listChildElementKeys,omitempty"`
	IsPersisted          bool              `json:"isPersisted" xml:"isPersisted"`
	Joins                string            `json:"joins,omitempty" xml:"joins,omitempty"`
}

// TableDefinition is the body of a table create-or-replace request.
type TableDefinition struct {
	XMLName              struct{}  `json:"-" xml:"tableDefinition"`
	TableID              string    `json:"tableId" xml:"tableId"`
	Columns              []Column  `json:"columns" xml:"columns>column"`
	TableKey             string    `json:"tableKey" xml:"tableKey"`
	DBTableName          string    `json:"dbTableName" xml:"dbTableName"`
	Type                 TableType `json:"type" xml:"type"`
	AccessControlTableID string    `json:"tableIdAccessControls,omitempty" xml:"tableIdAccessControls,omitempty"`
}

// TableDefinitionResource is a table definition as returned by the remote side.
type TableDefinitionResource struct {
	XMLName              struct{}  `json:"-" xml:"tableDefinitionResource"`
	TableID              string    `json:"tableId" xml:"tableId"`
	Columns              []Column  `json:"columns" xml:"columns>column"`
	TableKey             string    `json:"tableKey" xml:"tableKey"`
	DBTableName          string    `json:"dbTableName" xml:"dbTableName"`
	Type                 TableType `json:"type" xml:"type"`
	AccessControlTableID string    `json:"tableIdAccessControls,omitempty" xml:"tableIdAccessControls,omitempty"`
	SelfURI              string    `json:"selfUri,omitempty" xml:"selfUri,omitempty"`
	TableURI             string    `json:"tableUri,omitempty" xml:"tableUri,omitempty"`
}

// KeyValueStoreEntry is one table or column property.
type KeyValueStoreEntry struct {
	XMLName   struct{} `json:"-" xml:"entry"`
	TableID   string   `json:"tableId" xml:"tableId"`
	Partition string   `json:"partition" xml:"partition"`
	Aspect    string   `json:"aspect" xml:"aspect"`
	Key       string   `json:"key" xml:"key"`
	Type      string   `json:"type" xml:"type"`
	Value     string   `json:"value" xml:"value"`
}

// TableProperties is the body of a properties update. PropertiesETag is the
// version the caller last saw; the remote side rejects the write when it has
// moved on.
type TableProperties struct {
	XMLName        struct{}             `json:"-" xml:"properties"`
	PropertiesETag string               `json:"propertiesEtag" xml:"propertiesEtag"`
	TableKey       string               `json:"tableKey" xml:"tableKey"`
	Entries        []KeyValueStoreEntry `json:"kvsEntries" xml:"kvsEntries>entry"`
}

// PropertiesResource is the properties payload as returned by the remote side.
type PropertiesResource struct {
	XMLName        struct{}             `json:"-" xml:"propertiesResource"`
	PropertiesETag string               `json:"propertiesEtag" xml:"propertiesEtag"`
	TableKey       string               `json:"tableKey" xml:"tableKey"`
	Entries        []KeyValueStoreEntry `json:"kvsEntries" xml:"kvsEntries>entry"`
	SelfURI        string               `json:"selfUri,omitempty" xml:"selfUri,omitempty"`
	TableURI       string               `json:"tableUri,omitempty" xml:"tableUri,omitempty"`
}
