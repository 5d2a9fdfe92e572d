// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
)

// Media types understood by the table protocol.
const (
	MediaTypeJSON = "application/json"
	MediaTypeXML  = "application/xml"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", MediaTypeJSON)
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteXML is the XML counterpart of [WriteJSON].
func WriteXML(w http.ResponseWriter, data any, statusCode int) (int, error) {
	xmlData, err := xml.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to XML", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to XML: %w", err)
	}

	w.Header().Set("Content-Type", MediaTypeXML)
	w.WriteHeader(statusCode)

	return w.Write(append([]byte(xml.Header), xmlData...))
}

// WriteNegotiated writes data as XML when the request's Accept header asks
// for XML and as JSON otherwise.
func WriteNegotiated(w http.ResponseWriter, r *http.Request, data any, statusCode int) (int, error) {
	if WantsXML(r.Header.Get("Accept")) {
		return WriteXML(w, data, statusCode)
	}
	return WriteJSON(w, data, statusCode)
}

// WantsXML reports whether a media type header value selects XML.
func WantsXML(header string) bool {
	return strings.Contains(header, "xml")
}

// DecodeBody decodes the request body according to its Content-Type
// header. JSON is assumed when the header is absent.
func DecodeBody(r *http.Request, v any) error {
	if WantsXML(r.Header.Get("Content-Type")) {
		return xml.NewDecoder(r.Body).Decode(v)
	}
	return json.NewDecoder(r.Body).Decode(v)
}
