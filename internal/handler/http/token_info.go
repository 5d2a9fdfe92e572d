// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-table-sync/internal/app"
	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/utils"
)

const (
	accessTokenQueryParam = "access_token"
	expiredTokenReason    = "expired_token"
)

type tokenInfoResponse struct {
	Subject   string `json:"sub,omitempty"`
	ExpiresIn int64  `json:"expires_in,omitempty"`
}

type tokenInfoError struct {
	Error string `json:"error"`
}

// tokenInfo answers whether the token in the query would be accepted by
// the table endpoints. Rejections are 400 replies carrying an error code.
func (h *Handler) tokenInfo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	token := r.URL.Query().Get(accessTokenQueryParam)
	if token == "" {
		h.rejectToken(w, r, app.MsgMissingToken)
		return
	}

	exp, hasExpiry := utils.TokenExpiry(token)
	if hasExpiry && !exp.After(time.Now()) {
		h.rejectToken(w, r, expiredTokenReason)
		return
	}

	if h.accessToken != "" && !h.tokenAccepted(token) {
		h.rejectToken(w, r, app.MsgInvalidToken)
		return
	}

	resp := tokenInfoResponse{Subject: utils.TokenSubject(token)}
	if hasExpiry {
		resp.ExpiresIn = int64(time.Until(exp).Seconds())
	}

	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.tokenInfo").Msg("error writing response")
	}
}

func (h *Handler) rejectToken(w http.ResponseWriter, r *http.Request, reason string) {
	log := logger.FromRequest(r)
	log.Warn().Str("func", "*Handler.tokenInfo").Str("reason", reason).Msg("token rejected")

	if _, err := utils.WriteJSON(w, tokenInfoError{Error: reason}, http.StatusBadRequest); err != nil {
		log.Err(err).Str("func", "*Handler.rejectToken").Msg("error writing response")
	}
}
