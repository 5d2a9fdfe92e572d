// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// syncTagDelimiter separates the components of a serialized [SyncTag].
const syncTagDelimiter = "::"

// ErrMalformedSyncTag is returned by [ParseSyncTag] when the persisted token
// cannot be decoded. Callers should treat the table as never synchronized and
// fall back to a full resync.
var ErrMalformedSyncTag = errors.New("malformed sync tag")

// SyncTag is the composite version token of one remote table. It pairs the
// data-content version with the properties (schema and metadata) version.
//
// Both versions are issued by the remote side only. LocalPushes counts rows
// pushed since the last authoritative tag was received; it is an advisory
// marker and never takes part in version comparison.
type SyncTag struct {
	// DataETag is the remote data version.
	DataETag string `json:"data_etag" xml:"dataEtag"`
	// PropertiesETag is the remote properties version.
	PropertiesETag string `json:"properties_etag" xml:"propertiesEtag"`
	// LocalPushes is the number of accepted pushes not yet reflected by an
	// authoritative tag from a pull.
	LocalPushes int `json:"local_pushes,omitempty" xml:"localPushes,omitempty"`
}

// NewSyncTag returns an authoritative tag built from remote versions.
func NewSyncTag(dataETag, propertiesETag string) SyncTag {
	return SyncTag{DataETag: dataETag, PropertiesETag: propertiesETag}
}

// ParseSyncTag decodes a token produced by [SyncTag.String].
//
// Accepted forms are "<data>::<properties>" and "<data>::<properties>::<n>"
// where n is a positive number of local pushes. Anything else yields an error
// wrapping [ErrMalformedSyncTag].
func ParseSyncTag(s string) (SyncTag, error) {
	parts := strings.Split(s, syncTagDelimiter)

	switch len(parts) {
	case 2:
		return SyncTag{DataETag: parts[0], PropertiesETag: parts[1]}, nil
	case 3:
		n, err := strconv.Atoi(parts[2])
		if err != nil || n <= 0 {
			return SyncTag{}, fmt.Errorf("%w: invalid local push counter in %q", ErrMalformedSyncTag, s)
		}
		return SyncTag{DataETag: parts[0], PropertiesETag: parts[1], LocalPushes: n}, nil
	default:
		return SyncTag{}, fmt.Errorf("%w: %q", ErrMalformedSyncTag, s)
	}
}

// String serializes the tag. ParseSyncTag(t.String()) reproduces t exactly.
func (t SyncTag) String() string {
	s := t.DataETag + syncTagDelimiter + t.PropertiesETag
	if t.LocalPushes > 0 {
		s += syncTagDelimiter + strconv.Itoa(t.LocalPushes)
	}
	return s
}

// Equal reports whether both version components match.
func (t SyncTag) Equal(other SyncTag) bool {
	return t.DataETag == other.DataETag && t.PropertiesETag == other.PropertiesETag
}

// DataChanged reports whether other carries a different data version.
func (t SyncTag) DataChanged(other SyncTag) bool {
	return t.DataETag != other.DataETag
}

// PropertiesChanged reports whether other carries a different properties version.
func (t SyncTag) PropertiesChanged(other SyncTag) bool {
	return t.PropertiesETag != other.PropertiesETag
}

// WithIncrementedData returns a copy of t marked with one more local push.
// The authoritative versions are left untouched; the marker is discarded by
// the next successful pull.
func (t SyncTag) WithIncrementedData() SyncTag {
	t.LocalPushes++
	return t
}

// WithPropertiesETag returns a copy of t with a new properties version.
func (t SyncTag) WithPropertiesETag(etag string) SyncTag {
	t.PropertiesETag = etag
	return t
}

// Authoritative returns t without the local push marker.
func (t SyncTag) Authoritative() SyncTag {
	t.LocalPushes = 0
	return t
}

// HasLocalPushes reports whether t carries unconfirmed local pushes.
func (t SyncTag) HasLocalPushes() bool {
	return t.LocalPushes > 0
}
