// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rowstate

import "fmt"

// Event is a local write or a sync result applied to a row.
type Event int

const (
	// EventInsert creates the row locally.
	EventInsert Event = iota
	// EventUpdate changes the row values locally.
	EventUpdate
	// EventDelete deletes the row locally.
	EventDelete
	// EventConfirm is a remote acknowledgement of an insert or update,
	// carrying a fresh row version.
	EventConfirm
	// EventConfirmDelete is a remote acknowledgement of a deletion.
	EventConfirmDelete
	// EventResolveKeepLocal resolves a conflict in favour of the local values,
	// which then have to be pushed over the remote version.
	EventResolveKeepLocal
	// EventResolveTakeRemote resolves a conflict by accepting the remote values.
	EventResolveTakeRemote
)

var eventNames = [...]string{
	EventInsert:            "insert",
	EventUpdate:            "update",
	EventDelete:            "delete",
	EventConfirm:           "confirm",
	EventConfirmDelete:     "confirm-delete",
	EventResolveKeepLocal:  "resolve-keep-local",
	EventResolveTakeRemote: "resolve-take-remote",
}

func (e Event) String() string {
	if e < EventInsert || e > EventResolveTakeRemote {
		return fmt.Sprintf("Event(%d)", int(e))
	}
	return eventNames[e]
}

// Outcome is the result of applying an event.
type Outcome struct {
	// State is the state the row moves to. Meaningless when Purge is set.
	State State
	// Purge means the row must be removed from local storage.
	Purge bool
}

// Transition applies ev to a row in state current.
//
// It never touches storage; callers persist the outcome. Events that are not
// allowed in the current state return an error wrapping
// [ErrInvalidStateTransition] and leave the row as it was.
func Transition(current State, ev Event) (Outcome, error) {
	if !current.Valid() {
		return Outcome{}, fmt.Errorf("%w: %s on %s", ErrInvalidStateTransition, ev, current)
	}

	switch ev {
	case EventInsert:
		return Outcome{State: Inserting}, nil

	case EventUpdate:
		switch current {
		case Rest:
			return Outcome{State: Updating}, nil
		case Inserting, Updating:
			return Outcome{State: current}, nil
		}

	case EventDelete:
		switch current {
		case Rest, Updating:
			return Outcome{State: Deleting}, nil
		case Inserting:
			// never seen by the remote side
			return Outcome{Purge: true}, nil
		case Deleting, Conflicting:
			return Outcome{State: current}, nil
		}

	case EventConfirm:
		switch current {
		case Inserting, Updating, Rest:
			return Outcome{State: Rest}, nil
		}

	case EventConfirmDelete:
		if current == Deleting {
			return Outcome{Purge: true}, nil
		}

	case EventResolveKeepLocal:
		if current == Conflicting {
			return Outcome{State: Updating}, nil
		}

	case EventResolveTakeRemote:
		if current == Conflicting {
			return Outcome{State: Rest}, nil
		}
	}

	return Outcome{}, fmt.Errorf("%w: %s on %s", ErrInvalidStateTransition, ev, current)
}
