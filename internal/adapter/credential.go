// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/MKhiriev/go-table-sync/internal/utils"
)

// tokenInfoReply is the error body returned by the identity provider.
type tokenInfoReply struct {
	Error string `json:"error"`
}

// checkAccessToken validates the bearer credential once per synchronizer.
//
// A JWT carrying an exp claim in the past is rejected locally. When
// tokenInfoURL is set the token is appended to it and a 4xx reply naming
// invalid_token or expired_token is rejected. Any other reply is accepted.
func (s *httpSynchronizer) checkAccessToken(ctx context.Context, token, tokenInfoURL string) error {
	if token == "" {
		return fmt.Errorf("%w: empty access token", ErrInvalidCredential)
	}

	if exp, ok := utils.TokenExpiry(token); ok && !exp.After(time.Now()) {
		return fmt.Errorf("%w: token expired at %s", ErrInvalidCredential, exp.Format(time.RFC3339))
	}

	if tokenInfoURL == "" {
		return nil
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Accept", utils.MediaTypeJSON).
		Get(tokenInfoURL + url.QueryEscape(token))
	if err != nil {
		return mapTransportError("check access token", err)
	}

	if resp.StatusCode() < http.StatusBadRequest || resp.StatusCode() >= http.StatusInternalServerError {
		return nil
	}

	var reply tokenInfoReply
	if err = json.Unmarshal(resp.Body(), &reply); err != nil {
		return nil
	}

	switch reply.Error {
	case "invalid_token", "expired_token":
		s.logger.Error().
			Str("func", "httpSynchronizer.checkAccessToken").
			Int("status", resp.StatusCode()).
			Str("reason", reply.Error).
			Msg("identity provider rejected access token")
		return fmt.Errorf("%w: %s", ErrInvalidCredential, reply.Error)
	default:
		return nil
	}
}
