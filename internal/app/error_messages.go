// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the reference table server
// and the sync agent.
//
// The server writes them into HTTP error bodies; the agent matches them to
// tell apart rejections that share a status code.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or misses required fields.
	MsgInvalidDataProvided = "invalid data provided"

	MsgInternalServerError = "internal server error"

	// MsgTableNotFound is returned for a table id the server does not know.
	MsgTableNotFound = "table not found"

	// MsgRowNotFound is returned when a row delete targets a row that does
	// not exist or is already deleted.
	MsgRowNotFound = "row not found"

	// MsgRowETagMismatch is returned when a row write is based on a row
	// version other than the current one.
	MsgRowETagMismatch = "row etag mismatch"

	// MsgPropertiesETagMismatch is returned when a properties write is based
	// on a properties version other than the current one.
	MsgPropertiesETagMismatch = "properties etag mismatch"

	MsgTableIDMismatch = "table id in body does not match path"
	MsgRowIDMismatch   = "row id in body does not match path"

	// MsgInvalidToken and MsgMissingToken are the token info error codes.
	MsgInvalidToken = "invalid_token"
	MsgMissingToken = "missing_token"
)
