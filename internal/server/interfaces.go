// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle of the transport servers managed by this
// package.
//
// [RunServer] blocks until shutdown is requested; [Shutdown] releases the
// resources.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// It returns an error when the server could not keep listening.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
