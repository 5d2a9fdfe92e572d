// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors of the authentication middleware.
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrWrongAccessToken is returned when the bearer token is not the one
	// the server was configured with.
	ErrWrongAccessToken = errors.New("wrong access token")
)
