// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-table-sync/internal/config"
	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/service"
	"github.com/MKhiriev/go-table-sync/internal/workers"
	"github.com/MKhiriev/go-table-sync/models"
)

type fakeTableService struct {
	imported []string
	err      error
	calls    atomic.Int32
}

func (f *fakeTableService) PublishTable(context.Context, string) (models.SyncTag, error) {
	return models.SyncTag{}, nil
}

func (f *fakeTableService) ImportRemoteTables(context.Context) ([]string, error) {
	f.calls.Add(1)
	return f.imported, f.err
}

func (f *fakeTableService) UnpublishTable(context.Context, string) error { return nil }

func (f *fakeTableService) PushProperties(context.Context, string, []models.KeyValueStoreEntry) (models.SyncTag, error) {
	return models.SyncTag{}, nil
}

type fakeSyncJob struct {
	started atomic.Int32
	stopped atomic.Int32
}

func (f *fakeSyncJob) Start(context.Context, time.Duration) { f.started.Add(1) }
func (f *fakeSyncJob) Stop()                                { f.stopped.Add(1) }

func newTestApp(t *testing.T, tables *fakeTableService, job *fakeSyncJob) *App {
	t.Helper()
	services := &service.ClientServices{TableService: tables, SyncJob: job}
	w := workers.NewClientWorkers(services, config.ClientWorkers{SyncInterval: time.Minute}, logger.Nop())

	app, err := NewApp(services, w, logger.Nop())
	require.NoError(t, err)
	return app
}

func runUntilCanceled(t *testing.T, app *App) (context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()
	return cancel, done
}

func TestNewApp_RequiresServices(t *testing.T) {
	_, err := NewApp(nil, &workers.Workers{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServices)
}

func TestApp_Run_ImportsAndStartsWorkers(t *testing.T) {
	tables := &fakeTableService{imported: []string{"visits"}}
	job := &fakeSyncJob{}
	app := newTestApp(t, tables, job)

	cancel, done := runUntilCanceled(t, app)
	require.Eventually(t, func() bool { return job.started.Load() == 1 }, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	assert.EqualValues(t, 1, tables.calls.Load())
	assert.EqualValues(t, 1, job.stopped.Load())
}

func TestApp_Run_ImportFailureKeepsRunning(t *testing.T) {
	tables := &fakeTableService{err: errors.New("connection refused")}
	job := &fakeSyncJob{}
	app := newTestApp(t, tables, job)

	cancel, done := runUntilCanceled(t, app)
	require.Eventually(t, func() bool { return job.started.Load() == 1 }, time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	assert.EqualValues(t, 1, job.stopped.Load())
}
