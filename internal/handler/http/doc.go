// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the reference table server.
//
// It exposes the table collection under /odktables/tables/ together with a
// token info endpoint used by sync agents to validate their credential.
// Authentication, request tracing, access logging and response compression
// are handled here before requests reach [service.TableService]. Bodies are
// JSON by default and XML when the request asks for it.
package http
