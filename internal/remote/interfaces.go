// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HarborWatch

// Package remote provides the transport-layer abstraction for the remote
// favorites store of record.
//
// The primary abstraction is [Store], which decouples the sync engine from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPStore]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthenticated] for 401, [ErrServerRejected] for
// other non-2xx responses).
package remote

import (
	"context"

	"github.com/harborwatch/favsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// Store defines transport-agnostic communication with the remote favorites
// store. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level failures to the sentinel
// errors defined in this package.
//
// Push and Delete must be idempotent on the server side: the sync engine
// retries them after partial failures.
type Store interface {
	// SetToken stores the bearer token attached to all subsequent
	// requests.
	SetToken(token string)

	// Token returns the bearer token currently held by the store, or an
	// empty string if none has been set.
	Token() string

	// ListFavorites fetches the full remote favorites listing used as the
	// remote snapshot of a sync pass.
	ListFavorites(ctx context.Context) ([]models.FavoriteRecord, error)

	// PushFavorite creates or replaces the record on the remote store.
	PushFavorite(ctx context.Context, record models.FavoriteRecord) error

	// DeleteFavorite removes the record for key from the remote store.
	// Deleting an absent key is not an error.
	DeleteFavorite(ctx context.Context, key models.FavoriteKey) error
}
