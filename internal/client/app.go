// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/service"
	"github.com/MKhiriev/go-table-sync/internal/workers"
)

var errNoServices = errors.New("no client services were provided")

// App is the sync agent process: it registers the remote tables it does
// not know yet, then keeps every local table synchronized in the background.
type App struct {
	services *service.ClientServices
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, w *workers.Workers, log *logger.Logger) (*App, error) {
	if services == nil || w == nil {
		return nil, errNoServices
	}

	return &App{services: services, workers: w, logger: log}, nil
}

// Run blocks until ctx is cancelled. A failed import of remote tables is
// logged and does not stop the agent; the next sync round retries against
// the same remote side.
func (a *App) Run(ctx context.Context) error {
	imported, err := a.services.TableService.ImportRemoteTables(ctx)
	if err != nil {
		a.logger.Err(err).Str("func", "*App.Run").Msg("importing remote tables failed")
	} else if len(imported) > 0 {
		a.logger.Info().Str("func", "*App.Run").Strs("tables", imported).Msg("imported remote tables")
	}

	a.workers.Run(ctx)
	a.logger.Info().Str("func", "*App.Run").Msg("sync agent started")

	<-ctx.Done()

	a.workers.Stop()
	a.logger.Info().Str("func", "*App.Run").Msg("sync agent stopped")

	return nil
}
