// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Route parameters.
const (
	paramTableID = "tableId"
	paramRowID   = "rowId"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Get("/tokeninfo", h.tokenInfo)

	router.Route("/odktables/tables", func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/", h.listTables)

		r.Route("/{"+paramTableID+"}", func(r chi.Router) {
			r.Get("/", h.getTable)
			r.Put("/", h.putTable)
			r.Delete("/", h.deleteTable)

			r.Get("/rows", h.listRows)
			r.Put("/rows/{"+paramRowID+"}", h.putRow)
			r.Delete("/rows/{"+paramRowID+"}", h.deleteRow)
			r.Get("/diff", h.diff)

			r.Get("/properties", h.getProperties)
			r.Put("/properties", h.putProperties)
			r.Get("/definition", h.getDefinition)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
