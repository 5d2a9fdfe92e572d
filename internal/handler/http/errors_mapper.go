// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-table-sync/internal/app"
	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/service"
	"github.com/MKhiriev/go-table-sync/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:    http.StatusBadRequest,
	service.ErrTableIDMismatch:        http.StatusBadRequest,
	service.ErrRowIDMismatch:          http.StatusBadRequest,
	service.ErrTableNotFound:          http.StatusNotFound,
	service.ErrRowNotFound:            http.StatusNotFound,
	service.ErrRowETagMismatch:        http.StatusConflict,
	service.ErrPropertiesETagMismatch: http.StatusPreconditionFailed,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err. Client errors carry
// the error text; clients match the messages defined in package app.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if subject, ok := utils.GetSubjectFromContext(r.Context()); ok {
		log = &logger.Logger{Logger: log.With().Str("subject", subject).Logger()}
	}
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Msg("request failed")
		http.Error(w, app.MsgInternalServerError, status)
		return
	}

	log.Warn().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	http.Error(w, err.Error(), status)
}
