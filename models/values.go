// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/xml"
	"sort"
)

// Values maps a column element key to its serialized cell value.
//
// JSON encodes it as a plain object. XML has no native map representation,
// so it is encoded as a list of <entry column="key">value</entry> elements
// ordered by column key.
type Values map[string]string

type valueEntry struct {
	Column string `xml:"column,attr"`
	Value  string `xml:",chardata"`
}

// MarshalXML implements [xml.Marshaler].
func (v Values) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := struct {
		Entries []valueEntry `xml:"entry"`
	}{Entries: make([]valueEntry, 0, len(keys))}
	for _, k := range keys {
		entries.Entries = append(entries.Entries, valueEntry{Column: k, Value: v[k]})
	}

	return e.EncodeElement(entries, start)
}

// UnmarshalXML implements [xml.Unmarshaler].
func (v *Values) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var entries struct {
		Entries []valueEntry `xml:"entry"`
	}
	if err := d.DecodeElement(&entries, &start); err != nil {
		return err
	}

	out := make(Values, len(entries.Entries))
	for _, e := range entries.Entries {
		out[e.Column] = e.Value
	}
	*v = out
	return nil
}

// Clone returns an independent copy of v.
func (v Values) Clone() Values {
	if v == nil {
		return nil
	}
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Equal reports whether v and other hold the same cells.
func (v Values) Equal(other Values) bool {
	if len(v) != len(other) {
		return false
	}
	for k, val := range v {
		if o, ok := other[k]; !ok || o != val {
			return false
		}
	}
	return true
}
