// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-table-sync/internal/logger"
)

// Services groups the services of the reference table server.
type Services struct {
	TableService TableService
}

func NewServices(logger *logger.Logger) *Services {
	return &Services{
		TableService: NewTableService(logger),
	}
}
