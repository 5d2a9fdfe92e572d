// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrTableNotFound is returned when the table id is not registered locally.
	ErrTableNotFound = errors.New("table was not found")

	// ErrTableAlreadyExists is returned by RegisterTable for a known table id.
	ErrTableAlreadyExists = errors.New("table already exists")

	// ErrRowNotFound is returned when a row id does not exist in the table.
	ErrRowNotFound = errors.New("row was not found")

	// ErrRowAlreadyExists is returned when an insert reuses an existing row id.
	ErrRowAlreadyExists = errors.New("row already exists")

	// ErrRowNotConflicting is returned by ResolveConflict for a row that has
	// no pending conflict.
	ErrRowNotConflicting = errors.New("row is not in conflict")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	ErrScanningRow  = errors.New("failed to scan row")
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingValues is returned when row values cannot be converted to or
	// from their stored JSON form.
	ErrEncodingValues = errors.New("failed to encode row values")
)
