// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-table-sync/internal/config"
	"github.com/MKhiriev/go-table-sync/internal/logger"
)

// Repositories groups the local repositories used by the sync agent.
type Repositories struct {
	LocalTables LocalTableRepository

	db *DB
}

// NewRepositories opens the local database, applies pending migrations and
// builds the repositories on top of it.
func NewRepositories(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*Repositories, error) {
	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewRepositories").Msg("error applying migrations")
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Repositories{
		LocalTables: NewLocalTableRepository(db, log),
		db:          db,
	}, nil
}

// Close releases the underlying database connection.
func (r *Repositories) Close() error {
	return r.db.Close()
}
