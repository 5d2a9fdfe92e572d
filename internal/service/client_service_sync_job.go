// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-table-sync/internal/logger"
)

// DefaultSyncInterval is used when Start gets no positive interval.
const DefaultSyncInterval = 5 * time.Minute

type clientSyncJob struct {
	syncService ClientTableSyncService
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a clientSyncJob that calls syncService.SyncAll on a
// ticker. The job is idle until Start is called.
func NewClientSyncJob(syncService ClientTableSyncService, log *logger.Logger) ClientSyncJob {
	return &clientSyncJob{syncService: syncService, logger: log}
}

// Start implements ClientSyncJob. The first sync runs immediately, then one
// runs every interval. The goroutine exits when ctx is cancelled or Stop is
// called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.runOnce(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.runOnce(jobCtx)
			}
		}
	}()
}

func (j *clientSyncJob) runOnce(ctx context.Context) {
	results, err := j.syncService.SyncAll(ctx)
	if err != nil && ctx.Err() == nil {
		j.logger.Err(err).Str("func", "clientSyncJob.runOnce").Int("tables", len(results)).Msg("sync round finished with errors")
		return
	}
	j.logger.Debug().Str("func", "clientSyncJob.runOnce").Int("tables", len(results)).Msg("sync round finished")
}

// Stop implements ClientSyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
