// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated is returned by NewServer when no transport has
	// handlers and an address to serve them on.
	errNoServersAreCreated = errors.New("no servers are created")

	// errListenFailed wraps the listener error that stopped RunServer.
	errListenFailed = errors.New("server stopped listening")
)
