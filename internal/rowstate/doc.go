// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package rowstate implements the per-row synchronization state machine.
//
// Every local row carries a [State] next to its remote row version. Local
// writes and sync results are expressed as [Event] values and applied with
// [Transition]; rows arriving from a pull are matched against local state
// with [ReconcilePull]. Both are pure functions so storage layers can apply
// them inside their own transactions.
//
// Rules for the basic write operations:
//
//	insert:  state = INSERTING
//	update:  REST -> UPDATING; INSERTING, UPDATING unchanged;
//	         DELETING, CONFLICTING rejected
//	delete:  REST, UPDATING -> DELETING (kept until the remote confirms);
//	         INSERTING -> purged locally; DELETING, CONFLICTING unchanged
//
// CONFLICTING is entered only from a pull and is left only through an
// explicit resolution event.
package rowstate
