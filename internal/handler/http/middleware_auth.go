// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/utils"
)

// anonymousSubject is stored for callers of a server running without auth
// and for opaque tokens that carry no subject.
const anonymousSubject = "anonymous"

// auth is an HTTP middleware that enforces bearer token authentication.
//
// The bearer token must equal the configured access token. The caller's
// subject, taken from the "sub" claim when the token is a JWT, is stored in
// the request context under [utils.SubjectCtxKey].
//
// Requests are rejected with HTTP 401 when the header is absent, malformed
// or carries another token. A handler configured without an access token
// lets every request through.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.accessToken == "" {
			ctx := context.WithValue(r.Context(), utils.SubjectCtxKey, anonymousSubject)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Str("func", "*Handler.auth").Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		token, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Str("func", "*Handler.auth").Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		if !h.tokenAccepted(token) {
			log.Err(ErrWrongAccessToken).Str("func", "*Handler.auth").Msg("rejected bearer token")
			http.Error(w, ErrWrongAccessToken.Error(), http.StatusUnauthorized)
			return
		}

		subject := utils.TokenSubject(token)
		if subject == "" {
			subject = anonymousSubject
		}
		log.Debug().Str("func", "*Handler.auth").Str("subject", subject).Msg("request authenticated")
		ctx := context.WithValue(r.Context(), utils.SubjectCtxKey, subject)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) tokenAccepted(token string) bool {
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.accessToken)) == 1
}
