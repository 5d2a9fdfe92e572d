// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-table-sync/internal/service"
	"github.com/MKhiriev/go-table-sync/internal/utils"
	"github.com/MKhiriev/go-table-sync/models"
)

// diffQueryParam names the data version a diff is computed from.
const diffQueryParam = "data_etag"

func (h *Handler) listRows(w http.ResponseWriter, r *http.Request) {
	rows, err := h.services.TableService.ListRows(r.Context(), chi.URLParam(r, paramTableID))
	if err != nil {
		writeError(w, r, "*Handler.listRows", err)
		return
	}
	h.write(w, r, "*Handler.listRows", rowList(baseURL(r), rows), http.StatusOK)
}

func (h *Handler) diff(w http.ResponseWriter, r *http.Request) {
	since := r.URL.Query().Get(diffQueryParam)
	if since == "" {
		writeError(w, r, "*Handler.diff", fmt.Errorf("%w: missing %s", service.ErrInvalidDataProvided, diffQueryParam))
		return
	}

	rows, err := h.services.TableService.Diff(r.Context(), chi.URLParam(r, paramTableID), since)
	if err != nil {
		writeError(w, r, "*Handler.diff", err)
		return
	}
	h.write(w, r, "*Handler.diff", rowList(baseURL(r), rows), http.StatusOK)
}

func (h *Handler) putRow(w http.ResponseWriter, r *http.Request) {
	rowID := chi.URLParam(r, paramRowID)

	var row models.Row
	if err := utils.DecodeBody(r, &row); err != nil {
		writeError(w, r, "*Handler.putRow", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}
	if row.RowID == "" {
		row.RowID = rowID
	}
	if row.RowID != rowID {
		writeError(w, r, "*Handler.putRow", fmt.Errorf("%w: %s", service.ErrRowIDMismatch, row.RowID))
		return
	}

	res, err := h.services.TableService.PutRow(r.Context(), chi.URLParam(r, paramTableID), row)
	if err != nil {
		writeError(w, r, "*Handler.putRow", err)
		return
	}
	h.write(w, r, "*Handler.putRow", rowResourceURIs(baseURL(r), res), http.StatusOK)
}

func (h *Handler) deleteRow(w http.ResponseWriter, r *http.Request) {
	err := h.services.TableService.DeleteRow(r.Context(), chi.URLParam(r, paramTableID), chi.URLParam(r, paramRowID))
	if err != nil {
		writeError(w, r, "*Handler.deleteRow", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func rowList(base string, rows []models.RowResource) models.RowResourceList {
	list := models.RowResourceList{Rows: make([]models.RowResource, 0, len(rows))}
	for _, row := range rows {
		list.Rows = append(list.Rows, rowResourceURIs(base, row))
	}
	return list
}
