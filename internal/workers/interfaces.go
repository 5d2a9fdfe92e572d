// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background workers of the sync agent.
//
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers together.
package workers

import "context"

// Worker is a background worker.
//
// Run starts the work and returns without blocking; the work ends when ctx
// is cancelled or Stop is called. Stop blocks until the work has ended.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
