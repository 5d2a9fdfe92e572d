// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-table-sync/internal/config"
	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/utils"
	"github.com/MKhiriev/go-table-sync/models"
	"github.com/go-resty/resty/v2"
)

// tablesPath is the table collection resource relative to the service address.
const tablesPath = "/odktables/tables/"

const defaultRetryWait = 200 * time.Millisecond

type httpSynchronizer struct {
	client *utils.HTTPClient
	cache  ResourceCache

	// tableLocks serializes table-level operations per table id.
	tableLocks  *utils.KeyedMutex
	pushWorkers int

	logger *logger.Logger
}

// NewHTTPSynchronizer constructs an HTTP/REST implementation of [Synchronizer].
//
// It normalises the base URL from cfg.HTTPAddress, configures per-call
// timeouts, transport retries and content negotiation, and checks the access
// token once. A token that is expired or rejected by the identity provider
// fails with [ErrInvalidCredential]; an unreachable provider fails with
// [ErrTransport].
//
// A nil cache is replaced with [NewMemoryResourceCache].
func NewHTTPSynchronizer(ctx context.Context, cfg config.ClientAdapter, cache ResourceCache, log *logger.Logger) (Synchronizer, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	if cache == nil {
		cache = NewMemoryResourceCache()
	}
	if cfg.PushWorkers <= 0 {
		cfg.PushWorkers = config.DefaultPushWorkers
	}

	mediaType := utils.MediaTypeJSON
	if cfg.Format == config.FormatXML {
		mediaType = utils.MediaTypeXML
	}

	client := utils.NewHTTPClient().
		WithTransportRetries(cfg.RetryCount, defaultRetryWait).
		WithTracePropagation()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", mediaType).
		SetHeader("Content-Type", mediaType)

	s := &httpSynchronizer{
		client:      client,
		cache:       cache,
		tableLocks:  utils.NewKeyedMutex(),
		pushWorkers: cfg.PushWorkers,
		logger:      log,
	}

	token := strings.TrimSpace(cfg.AccessToken)
	if err = s.checkAccessToken(ctx, token, cfg.TokenInfoURL); err != nil {
		return nil, err
	}
	client.SetAuthToken(token)

	return s, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func tableURI(tableID string) string {
	return tablesPath + url.PathEscape(tableID)
}

func rowURI(h models.TableResource, rowID string) string {
	return strings.TrimRight(h.DataURI, "/") + "/" + url.PathEscape(rowID)
}

// check turns a resty result into an error of this package.
func check(op string, resp *resty.Response, err error) error {
	if err != nil {
		return mapTransportError(op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *httpSynchronizer) fetchResource(ctx context.Context, tableID string) (models.TableResource, error) {
	var res models.TableResource
	resp, err := s.client.R().
		SetContext(ctx).
		SetResult(&res).
		Get(tableURI(tableID))
	if err = check("get table resource", resp, err); err != nil {
		return models.TableResource{}, err
	}

	s.cache.Put(res)
	return res, nil
}

// resource returns the table handle, from the cache unless refresh is set.
func (s *httpSynchronizer) resource(ctx context.Context, tableID string, refresh bool) (models.TableResource, error) {
	if !refresh {
		if res, ok := s.cache.Get(tableID); ok {
			return res, nil
		}
	}
	return s.fetchResource(ctx, tableID)
}

// withHandle runs fn against the table handle. On a version mismatch the
// handle is invalidated, refetched and fn runs once more; a second mismatch
// is wrapped in [ErrStaleVersion].
func (s *httpSynchronizer) withHandle(ctx context.Context, tableID string, refresh bool, fn func(models.TableResource) error) error {
	return s.withHandleRetrying(ctx, tableID, refresh, isVersionMismatch, fn)
}

// withHandleRetrying is withHandle with the refetch limited to failures
// accepted by retryable.
func (s *httpSynchronizer) withHandleRetrying(ctx context.Context, tableID string, refresh bool,
	retryable func(error) bool, fn func(models.TableResource) error) error {
	h, err := s.resource(ctx, tableID, refresh)
	if err != nil {
		return err
	}

	err = fn(h)
	if !retryable(err) {
		return err
	}

	s.logger.Debug().
		Str("func", "httpSynchronizer.withHandleRetrying").
		Str(logger.FieldTableID, tableID).
		Err(err).
		Msg("version mismatch, refreshing table handle")

	s.cache.Invalidate(tableID)
	if h, err = s.fetchResource(ctx, tableID); err != nil {
		return err
	}

	err = fn(h)
	if isVersionMismatch(err) {
		return fmt.Errorf("%w: %w", ErrStaleVersion, err)
	}
	return err
}
