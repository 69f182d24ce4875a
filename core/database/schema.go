package database

import (
	"context"
	"fmt"

	"salon-api/core/logger"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS sales (
		id              TEXT PRIMARY KEY,
		date_service    TEXT NOT NULL,
		nailer          TEXT NOT NULL,
		service_type    TEXT NOT NULL,
		description     TEXT NOT NULL DEFAULT '',
		quantity        INTEGER NOT NULL DEFAULT 1,
		unit_price      NUMERIC(12,2) NOT NULL DEFAULT 0,
		payment_method  TEXT NOT NULL DEFAULT '',
		percent_nailer  INTEGER NOT NULL DEFAULT 0,
		city            TEXT NOT NULL DEFAULT '',
		advance         NUMERIC(12,2) NOT NULL DEFAULT 0,
		balance         NUMERIC(12,2) NOT NULL DEFAULT 0,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS clients (
		id          TEXT PRIMARY KEY,
		dni         TEXT NOT NULL,
		phone       TEXT NOT NULL DEFAULT '',
		nombres     TEXT NOT NULL,
		apellidos   TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS purchases (
		id              TEXT PRIMARY KEY,
		date            TEXT NOT NULL,
		supplier        TEXT NOT NULL DEFAULT '',
		item            TEXT NOT NULL,
		quantity        INTEGER NOT NULL DEFAULT 1,
		unit_cost       NUMERIC(12,2) NOT NULL DEFAULT 0,
		payment_method  TEXT NOT NULL DEFAULT '',
		notes           TEXT NOT NULL DEFAULT '',
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS store_settings (
		id                   TEXT PRIMARY KEY,
		can_edit_sales       BOOLEAN NOT NULL DEFAULT TRUE,
		can_delete_sales     BOOLEAN NOT NULL DEFAULT FALSE,
		can_see_totals       BOOLEAN NOT NULL DEFAULT FALSE,
		can_download_report  BOOLEAN NOT NULL DEFAULT FALSE,
		updated_at           TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS calendar_tokens (
		uid            TEXT PRIMARY KEY,
		refresh_token  TEXT NOT NULL DEFAULT '',
		access_token   TEXT NOT NULL DEFAULT '',
		scope          TEXT NOT NULL DEFAULT '',
		token_type     TEXT NOT NULL DEFAULT '',
		expiry_date    BIGINT NOT NULL DEFAULT 0,
		created_at     BIGINT NOT NULL DEFAULT 0
	)`,
}

// EnsureSchema creates the application tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db IDatabase) error {
	for _, stmt := range schemaStatements {
		if err := db.ExecContext(ctx, stmt); err != nil {
			logger.Error("Database:EnsureSchema:Error", "error", err)
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	logger.Info("Database schema ensured")
	return nil
}
