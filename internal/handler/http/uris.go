// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-table-sync/models"
)

const forwardedProtoHeader = "X-Forwarded-Proto"

// baseURL returns the scheme and host the request was sent to.
func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get(forwardedProtoHeader); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}

// absolute turns a server-relative URI into one the caller can follow.
func absolute(base, uri string) string {
	if uri == "" || strings.Contains(uri, "://") {
		return uri
	}
	return base + uri
}

func tableResourceURIs(base string, res models.TableResource) models.TableResource {
	res.SelfURI = absolute(base, res.SelfURI)
	res.DataURI = absolute(base, res.DataURI)
	res.PropertiesURI = absolute(base, res.PropertiesURI)
	res.DiffURI = absolute(base, res.DiffURI)
	res.DefinitionURI = absolute(base, res.DefinitionURI)
	return res
}

func rowResourceURIs(base string, res models.RowResource) models.RowResource {
	res.SelfURI = absolute(base, res.SelfURI)
	res.TableURI = absolute(base, res.TableURI)
	return res
}
