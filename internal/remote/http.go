// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HarborWatch

package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"

	"github.com/harborwatch/favsync/internal/config"
	"github.com/harborwatch/favsync/internal/logger"
	"github.com/harborwatch/favsync/internal/utils"
	"github.com/harborwatch/favsync/models"
)

// retryBase and retryMax bound the exponential backoff applied to transient
// network failures. Retrying is safe: every remote operation is idempotent.
const (
	retryBase = 200 * time.Millisecond
	retryMax  = 2
)

type httpStore struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPStore constructs an HTTP/REST implementation of [Store]. It
// normalises and validates the base URL from cfg.HTTPAddress, configures the
// underlying HTTP client with the resolved base URL and request timeout, and
// stores cfg.Token for the Authorization header.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPStore(cfg config.Remote, log *logger.Logger) (Store, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid remote store address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	s := &httpStore{client: client, logger: log}
	s.SetToken(cfg.Token)
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

// SetToken implements [Store]. It stores token (whitespace-trimmed) for use
// in the Authorization header of all subsequent requests.
func (h *httpStore) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [Store].
func (h *httpStore) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// ListFavorites implements [Store]. It GETs /api/favorites and decodes the
// response into the shared record slice.
func (h *httpStore) ListFavorites(ctx context.Context) ([]models.FavoriteRecord, error) {
	var body []byte
	err := h.doWithRetry(ctx, func(ctx context.Context) (*resty.Response, error) {
		return h.authedRequest(ctx).Get("/api/favorites")
	}, &body, false)
	if err != nil {
		return nil, fmt.Errorf("list favorites request: %w", err)
	}

	var records []models.FavoriteRecord
	if err = json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decode favorites response: %w", err)
	}

	return records, nil
}

// PushFavorite implements [Store]. It PUTs the record to /api/favorites.
func (h *httpStore) PushFavorite(ctx context.Context, record models.FavoriteRecord) error {
	err := h.doWithRetry(ctx, func(ctx context.Context) (*resty.Response, error) {
		return h.authedRequest(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(record).
			Put("/api/favorites")
	}, nil, false)
	if err != nil {
		return fmt.Errorf("push favorite %s: %w", record.Key, err)
	}

	return nil
}

// DeleteFavorite implements [Store]. It DELETEs /api/favorites with the key
// in query parameters. A 404 from the server is treated as success so that
// retried deletes stay idempotent.
func (h *httpStore) DeleteFavorite(ctx context.Context, key models.FavoriteKey) error {
	err := h.doWithRetry(ctx, func(ctx context.Context) (*resty.Response, error) {
		req := h.authedRequest(ctx).SetQueryParam("station_id", key.StationID)
		if key.Bin != "" {
			req.SetQueryParam("bin", key.Bin)
		}
		return req.Delete("/api/favorites")
	}, nil, true)
	if err != nil {
		return fmt.Errorf("delete favorite %s: %w", key, err)
	}

	return nil
}

// doWithRetry executes one request attempt via send, retrying transport
// failures with bounded exponential backoff. Response-level failures (non-2xx)
// are mapped to sentinel errors and never retried here. When body is non-nil
// the successful response body is copied into it. allowNotFound turns a 404
// into success, which keeps retried deletes idempotent.
func (h *httpStore) doWithRetry(ctx context.Context, send func(context.Context) (*resty.Response, error), body *[]byte, allowNotFound bool) error {
	backoff := retry.WithMaxRetries(retryMax, retry.NewExponential(retryBase))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		resp, err := send(ctx)
		if err != nil {
			// No response at all: transport-level failure, retryable.
			h.logger.Warn().Err(err).Msg("transient network failure, retrying request")
			return retry.RetryableError(fmt.Errorf("%w: %v", ErrNetwork, err))
		}

		if allowNotFound && resp.StatusCode() == http.StatusNotFound {
			return nil
		}

		if err = mapHTTPError(resp); err != nil {
			return err
		}

		if body != nil {
			*body = resp.Body()
		}
		return nil
	})
}

func (h *httpStore) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
