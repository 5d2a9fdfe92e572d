// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/utils"
)

func newAuthHandler(token string) *Handler {
	return &Handler{logger: logger.Nop(), accessToken: token}
}

func signedToken(t *testing.T, subject string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": subject}).SignedString([]byte("secret"))
	require.NoError(t, err)
	return s
}

func executeAuth(h *Handler, authHeader string) (*httptest.ResponseRecorder, string, bool) {
	var (
		subject    string
		nextCalled bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		subject, _ = utils.GetSubjectFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/odktables/tables/", nil)
	req = req.WithContext(logger.Nop().WithContext(req.Context()))
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)
	return rr, subject, nextCalled
}

func TestAuth_Middleware_TableTest(t *testing.T) {
	jwtToken := signedToken(t, "agent-1")

	tests := []struct {
		name           string
		configured     string
		authHeader     string
		expectedStatus int
		nextCalled     bool
		wantSubject    string
	}{
		{
			name:           "empty Authorization header",
			configured:     "s3cret",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "header without token",
			configured:     "s3cret",
			authHeader:     "Bearer",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong token",
			configured:     "s3cret",
			authHeader:     "Bearer other",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "opaque token accepted",
			configured:     "s3cret",
			authHeader:     "Bearer s3cret",
			expectedStatus: http.StatusOK,
			nextCalled:     true,
			wantSubject:    anonymousSubject,
		},
		{
			name:           "jwt subject stored",
			configured:     jwtToken,
			authHeader:     "Bearer " + jwtToken,
			expectedStatus: http.StatusOK,
			nextCalled:     true,
			wantSubject:    "agent-1",
		},
		{
			name:           "auth disabled",
			expectedStatus: http.StatusOK,
			nextCalled:     true,
			wantSubject:    anonymousSubject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, subject, nextCalled := executeAuth(newAuthHandler(tt.configured), tt.authHeader)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
			assert.Equal(t, tt.wantSubject, subject)
		})
	}
}

func TestAuth_WrongTokenBody(t *testing.T) {
	rr, _, _ := executeAuth(newAuthHandler("s3cret"), "Bearer other")
	assert.Contains(t, rr.Body.String(), ErrWrongAccessToken.Error())
}
