// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-table-sync/internal/config"
	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewClientWorkers builds the workers of the sync agent.
func NewClientWorkers(services *service.ClientServices, cfg config.ClientWorkers, log *logger.Logger) *Workers {
	return &Workers{workers: []Worker{
		newSyncWorker(services.SyncJob, cfg.SyncInterval, log),
	}}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// syncWorker drives the periodic synchronization of all local tables.
type syncWorker struct {
	job      service.ClientSyncJob
	interval time.Duration
	logger   *logger.Logger
}

func newSyncWorker(job service.ClientSyncJob, interval time.Duration, log *logger.Logger) *syncWorker {
	return &syncWorker{job: job, interval: interval, logger: log}
}

func (s *syncWorker) Run(ctx context.Context) {
	s.logger.Info().Str("func", "syncWorker.Run").Dur("interval", s.interval).Msg("starting sync worker")
	s.job.Start(ctx, s.interval)
}

func (s *syncWorker) Stop() {
	s.job.Stop()
	s.logger.Info().Str("func", "syncWorker.Stop").Msg("sync worker stopped")
}
