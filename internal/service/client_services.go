// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-table-sync/internal/adapter"
	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/store"
)

type ClientServices struct {
	SyncService  ClientTableSyncService
	TableService ClientTableService
	SyncJob      ClientSyncJob
}

func NewClientServices(repo store.LocalTableRepository, remote adapter.Synchronizer, log *logger.Logger) *ClientServices {
	syncSvc := NewClientTableSyncService(repo, remote, log)

	return &ClientServices{
		SyncService:  syncSvc,
		TableService: NewClientTableService(repo, remote, log),
		SyncJob:      NewClientSyncJob(syncSvc, log),
	}
}
