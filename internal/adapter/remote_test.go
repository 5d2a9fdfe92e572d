// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-table-sync/internal/config"
	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/utils"
	"github.com/MKhiriev/go-table-sync/models"
	"github.com/stretchr/testify/require"
)

const testTableID = "patients"

// fakeRemote serves one table of the remote protocol. Handlers for row and
// properties writes can be replaced per test.
type fakeRemote struct {
	*httptest.Server

	mu           sync.Mutex
	resource     models.TableResource
	rows         []models.RowResource
	props        models.PropertiesResource
	def          models.TableDefinitionResource
	calls        map[string]int
	lastDiffETag string
	authHeaders  []string
	traceIDs     []string

	putRow    func(w http.ResponseWriter, r *http.Request, row models.Row)
	deleteRow func(w http.ResponseWriter, r *http.Request, rowID string)
	putProps  func(w http.ResponseWriter, r *http.Request, body models.TableProperties)
	putTable  func(w http.ResponseWriter, r *http.Request, body models.TableDefinition)
}

func newFakeRemote(t *testing.T, dataETag, propertiesETag string) *fakeRemote {
	t.Helper()

	f := &fakeRemote{calls: make(map[string]int)}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /odktables/tables/{$}", f.handleListTables)
	mux.HandleFunc("GET /odktables/tables/{tableId}", f.handleGetResource)
	mux.HandleFunc("PUT /odktables/tables/{tableId}", f.handlePutTable)
	mux.HandleFunc("DELETE /odktables/tables/{tableId}", f.handleDeleteTable)
	mux.HandleFunc("GET /odktables/tables/{tableId}/rows", f.handleRows("rows"))
	mux.HandleFunc("GET /odktables/tables/{tableId}/diff", f.handleRows("diff"))
	mux.HandleFunc("PUT /odktables/tables/{tableId}/rows/{rowId}", f.handlePutRow)
	mux.HandleFunc("DELETE /odktables/tables/{tableId}/rows/{rowId}", f.handleDeleteRow)
	mux.HandleFunc("GET /odktables/tables/{tableId}/properties", f.handleGetProperties)
	mux.HandleFunc("PUT /odktables/tables/{tableId}/properties", f.handlePutProperties)
	mux.HandleFunc("GET /odktables/tables/{tableId}/definition", f.handleGetDefinition)

	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.authHeaders = append(f.authHeaders, r.Header.Get("Authorization"))
		f.traceIDs = append(f.traceIDs, r.Header.Get(utils.TraceIDHeader))
		f.mu.Unlock()
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(f.Close)

	base := f.URL + "/odktables/tables/" + testTableID
	f.resource = models.TableResource{
		TableID:        testTableID,
		TableKey:       "patients_key",
		DataETag:       dataETag,
		PropertiesETag: propertiesETag,
		SelfURI:        base,
		DataURI:        base + "/rows",
		PropertiesURI:  base + "/properties",
		DiffURI:        base + "/diff",
		DefinitionURI:  base + "/definition",
	}
	f.props = models.PropertiesResource{PropertiesETag: propertiesETag, TableKey: "patients_key"}
	f.def = models.TableDefinitionResource{TableID: testTableID, TableKey: "patients_key"}

	return f
}

func (f *fakeRemote) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[key]
}

func (f *fakeRemote) hit(key string) {
	f.mu.Lock()
	f.calls[key]++
	f.mu.Unlock()
}

func (f *fakeRemote) handleListTables(w http.ResponseWriter, r *http.Request) {
	f.hit("tables")
	f.mu.Lock()
	list := models.TableResourceList{Tables: []models.TableResource{f.resource}}
	f.mu.Unlock()
	_, _ = utils.WriteNegotiated(w, r, list, http.StatusOK)
}

func (f *fakeRemote) handleGetResource(w http.ResponseWriter, r *http.Request) {
	f.hit("resource")
	if r.PathValue("tableId") != testTableID {
		http.Error(w, "no such table", http.StatusNotFound)
		return
	}
	f.mu.Lock()
	res := f.resource
	f.mu.Unlock()
	_, _ = utils.WriteNegotiated(w, r, res, http.StatusOK)
}

func (f *fakeRemote) handlePutTable(w http.ResponseWriter, r *http.Request) {
	f.hit("put table")
	var body models.TableDefinition
	if err := utils.DecodeBody(r, &body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if f.putTable != nil {
		f.putTable(w, r, body)
		return
	}
	f.mu.Lock()
	res := f.resource
	f.mu.Unlock()
	_, _ = utils.WriteNegotiated(w, r, res, http.StatusOK)
}

func (f *fakeRemote) handleDeleteTable(w http.ResponseWriter, r *http.Request) {
	f.hit("delete table")
	if r.PathValue("tableId") != testTableID {
		http.Error(w, "no such table", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (f *fakeRemote) handleRows(key string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.hit(key)
		f.mu.Lock()
		f.lastDiffETag = r.URL.Query().Get(diffQueryParam)
		list := models.RowResourceList{Rows: f.rows}
		f.mu.Unlock()
		_, _ = utils.WriteNegotiated(w, r, list, http.StatusOK)
	}
}

func (f *fakeRemote) handlePutRow(w http.ResponseWriter, r *http.Request) {
	rowID := r.PathValue("rowId")
	f.hit("put:" + rowID)

	var row models.Row
	if err := utils.DecodeBody(r, &row); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if f.putRow != nil {
		f.putRow(w, r, row)
		return
	}
	res := models.RowResource{RowID: row.RowID, RowETag: "e-" + row.RowID, Values: row.Values}
	_, _ = utils.WriteNegotiated(w, r, res, http.StatusOK)
}

func (f *fakeRemote) handleDeleteRow(w http.ResponseWriter, r *http.Request) {
	rowID := r.PathValue("rowId")
	f.hit("delete:" + rowID)
	if f.deleteRow != nil {
		f.deleteRow(w, r, rowID)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (f *fakeRemote) handleGetProperties(w http.ResponseWriter, r *http.Request) {
	f.hit("properties")
	f.mu.Lock()
	props := f.props
	f.mu.Unlock()
	_, _ = utils.WriteNegotiated(w, r, props, http.StatusOK)
}

func (f *fakeRemote) handlePutProperties(w http.ResponseWriter, r *http.Request) {
	f.hit("put properties")
	var body models.TableProperties
	if err := utils.DecodeBody(r, &body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if f.putProps != nil {
		f.putProps(w, r, body)
		return
	}
	res := models.PropertiesResource{PropertiesETag: "p-next", TableKey: body.TableKey, Entries: body.Entries}
	_, _ = utils.WriteNegotiated(w, r, res, http.StatusOK)
}

func (f *fakeRemote) handleGetDefinition(w http.ResponseWriter, r *http.Request) {
	f.hit("definition")
	f.mu.Lock()
	def := f.def
	f.mu.Unlock()
	_, _ = utils.WriteNegotiated(w, r, def, http.StatusOK)
}

// dropConnection closes the connection without a response.
func dropConnection(w http.ResponseWriter) {
	hj, ok := w.(http.Hijacker)
	if !ok {
		panic("response writer does not support hijacking")
	}
	conn, _, err := hj.Hijack()
	if err != nil {
		panic(err)
	}
	_ = conn.Close()
}

type syncOption func(*config.ClientAdapter)

func withFormat(format string) syncOption {
	return func(c *config.ClientAdapter) { c.Format = format }
}

func withPushWorkers(n int) syncOption {
	return func(c *config.ClientAdapter) { c.PushWorkers = n }
}

func withToken(token, tokenInfoURL string) syncOption {
	return func(c *config.ClientAdapter) {
		c.AccessToken = token
		c.TokenInfoURL = tokenInfoURL
	}
}

func newTestSynchronizer(t *testing.T, serverURL string, opts ...syncOption) *httpSynchronizer {
	t.Helper()

	cfg := config.ClientAdapter{
		HTTPAddress:    serverURL,
		RequestTimeout: 5 * time.Second,
		AccessToken:    "test-token",
		Format:         config.FormatJSON,
		PushWorkers:    1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s, err := NewHTTPSynchronizer(context.Background(), cfg, NewMemoryResourceCache(), logger.Nop())
	require.NoError(t, err)
	return s.(*httpSynchronizer)
}
