// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/service"
	"github.com/MKhiriev/go-table-sync/internal/utils"
	"github.com/MKhiriev/go-table-sync/models"
)

func (h *Handler) listTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.services.TableService.ListTables(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listTables", err)
		return
	}

	base := baseURL(r)
	list := models.TableResourceList{Tables: make([]models.TableResource, 0, len(tables))}
	for _, t := range tables {
		list.Tables = append(list.Tables, tableResourceURIs(base, t))
	}

	h.write(w, r, "*Handler.listTables", list, http.StatusOK)
}

func (h *Handler) getTable(w http.ResponseWriter, r *http.Request) {
	res, err := h.services.TableService.GetTable(r.Context(), chi.URLParam(r, paramTableID))
	if err != nil {
		writeError(w, r, "*Handler.getTable", err)
		return
	}

	h.write(w, r, "*Handler.getTable", tableResourceURIs(baseURL(r), res), http.StatusOK)
}

func (h *Handler) putTable(w http.ResponseWriter, r *http.Request) {
	tableID := chi.URLParam(r, paramTableID)

	var def models.TableDefinition
	if err := utils.DecodeBody(r, &def); err != nil {
		writeError(w, r, "*Handler.putTable", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}
	if def.TableID == "" {
		def.TableID = tableID
	}
	if def.TableID != tableID {
		writeError(w, r, "*Handler.putTable", fmt.Errorf("%w: %s", service.ErrTableIDMismatch, def.TableID))
		return
	}

	res, err := h.services.TableService.PutTable(r.Context(), def)
	if err != nil {
		writeError(w, r, "*Handler.putTable", err)
		return
	}

	h.write(w, r, "*Handler.putTable", tableResourceURIs(baseURL(r), res), http.StatusOK)
}

func (h *Handler) deleteTable(w http.ResponseWriter, r *http.Request) {
	if err := h.services.TableService.DeleteTable(r.Context(), chi.URLParam(r, paramTableID)); err != nil {
		writeError(w, r, "*Handler.deleteTable", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getProperties(w http.ResponseWriter, r *http.Request) {
	props, err := h.services.TableService.GetProperties(r.Context(), chi.URLParam(r, paramTableID))
	if err != nil {
		writeError(w, r, "*Handler.getProperties", err)
		return
	}

	base := baseURL(r)
	props.SelfURI = absolute(base, props.SelfURI)
	props.TableURI = absolute(base, props.TableURI)
	h.write(w, r, "*Handler.getProperties", props, http.StatusOK)
}

func (h *Handler) putProperties(w http.ResponseWriter, r *http.Request) {
	var body models.TableProperties
	if err := utils.DecodeBody(r, &body); err != nil {
		writeError(w, r, "*Handler.putProperties", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	props, err := h.services.TableService.PutProperties(r.Context(), chi.URLParam(r, paramTableID), body)
	if err != nil {
		writeError(w, r, "*Handler.putProperties", err)
		return
	}

	base := baseURL(r)
	props.SelfURI = absolute(base, props.SelfURI)
	props.TableURI = absolute(base, props.TableURI)
	h.write(w, r, "*Handler.putProperties", props, http.StatusOK)
}

func (h *Handler) getDefinition(w http.ResponseWriter, r *http.Request) {
	def, err := h.services.TableService.GetDefinition(r.Context(), chi.URLParam(r, paramTableID))
	if err != nil {
		writeError(w, r, "*Handler.getDefinition", err)
		return
	}

	base := baseURL(r)
	def.SelfURI = absolute(base, def.SelfURI)
	def.TableURI = absolute(base, def.TableURI)
	h.write(w, r, "*Handler.getDefinition", def, http.StatusOK)
}

// write encodes data in the media type the request asked for.
func (h *Handler) write(w http.ResponseWriter, r *http.Request, fn string, data any, status int) {
	if _, err := utils.WriteNegotiated(w, r, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", fn).Msg("error writing response")
	}
}
