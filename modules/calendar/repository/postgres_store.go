package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"salon-api/core/database"
	"salon-api/core/logger"
	"salon-api/modules/calendar/entity"
)

// PostgresTokenStore keeps one row per uid and relies on the database's
// per-row atomicity for the upsert, so no in-process locking is needed.
type PostgresTokenStore struct {
	db database.IDatabase
}

func NewPostgresTokenStore(db database.IDatabase) *PostgresTokenStore {
	return &PostgresTokenStore{db: db}
}

func (s *PostgresTokenStore) Save(ctx context.Context, uid string, record entity.TokenRecord) error {
	query := `
		INSERT INTO calendar_tokens (uid, refresh_token, access_token, scope, token_type, expiry_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (uid)
		DO UPDATE SET refresh_token = $2, access_token = $3, scope = $4, token_type = $5, expiry_date = $6, created_at = $7
	`
	createdAt := time.Now().UnixMilli()
	err := s.db.ExecContext(ctx, query,
		uid, record.RefreshToken, record.AccessToken, record.Scope, record.TokenType, record.ExpiryDate, createdAt,
	)
	if err != nil {
		logger.Error("PostgresTokenStore:Save:Error", "error", err, "uid", uid)
		return err
	}
	return nil
}

func (s *PostgresTokenStore) Get(ctx context.Context, uid string) (*entity.TokenRecord, error) {
	var record entity.TokenRecord
	query := `
		SELECT refresh_token, access_token, scope, token_type, expiry_date, created_at
		FROM calendar_tokens
		WHERE uid = $1
	`
	err := s.db.GetContext(ctx, &record, query, uid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		// Fail open to "disconnected", same policy as the file store.
		logger.Error("PostgresTokenStore:Get:Error", "error", err, "uid", uid)
		return nil, nil
	}
	return &record, nil
}

func (s *PostgresTokenStore) Delete(ctx context.Context, uid string) error {
	query := `DELETE FROM calendar_tokens WHERE uid = $1`
	if err := s.db.ExecContext(ctx, query, uid); err != nil {
		logger.Error("PostgresTokenStore:Delete:Error", "error", err, "uid", uid)
		return err
	}
	return nil
}
