// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rowstate

import (
	"errors"
	"fmt"
)

// ErrInvalidStateTransition is returned when an event is not allowed in the
// row's current state.
var ErrInvalidStateTransition = errors.New("invalid row state transition")

// ErrUnknownState is returned by [ParseState] for values outside the enum.
var ErrUnknownState = errors.New("unknown row state")

// State is the synchronization state of one local row. The numeric values
// are persisted and must not be reordered.
type State int

const (
	// Rest means the row has no pending local change.
	Rest State = iota
	// Inserting means the row was created locally and never confirmed.
	Inserting
	// Updating means the row was changed locally after its last confirmation.
	Updating
	// Deleting means the row was deleted locally; it stays until the remote
	// side confirms the deletion.
	Deleting
	// Conflicting means a pull found a remote change that collides with a
	// pending local change. Ordinary writes are rejected until resolution.
	Conflicting
)

var stateNames = [...]string{
	Rest:        "REST",
	Inserting:   "INSERTING",
	Updating:    "UPDATING",
	Deleting:    "DELETING",
	Conflicting: "CONFLICTING",
}

func (s State) String() string {
	if !s.Valid() {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Valid reports whether s is one of the defined states.
func (s State) Valid() bool {
	return s >= Rest && s <= Conflicting
}

// Pending reports whether the row holds a local change that has to be pushed.
func (s State) Pending() bool {
	return s == Inserting || s == Updating || s == Deleting
}

// ParseState converts a persisted value back to a State.
func ParseState(v int) (State, error) {
	s := State(v)
	if !s.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownState, v)
	}
	return s, nil
}
