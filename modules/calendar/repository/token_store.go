package repository

import (
	"context"
	"fmt"

	"salon-api/core/config"
	"salon-api/core/constants"
	"salon-api/core/database"
	"salon-api/modules/calendar/entity"
)

// TokenStore persists at most one TokenRecord per uid.
//
// Save overwrites the uid's record wholesale and stamps CreatedAt.
// Get returns (nil, nil) for a missing uid; read or parse failures also
// degrade to (nil, nil) after logging, because callers only need a
// connected/disconnected answer.
// Delete of an absent uid is a no-op success.
type TokenStore interface {
	Save(ctx context.Context, uid string, record entity.TokenRecord) error
	Get(ctx context.Context, uid string) (*entity.TokenRecord, error)
	Delete(ctx context.Context, uid string) error
}

// NewTokenStore builds the store selected by TOKEN_STORE_DRIVER.
func NewTokenStore(cfg config.TokenStoreConfig, db database.IDatabase) (TokenStore, error) {
	switch cfg.Driver {
	case constants.TokenStoreDriverFile, "":
		return NewFileTokenStore(cfg.FilePath), nil
	case constants.TokenStoreDriverPostgres:
		if db == nil {
			return nil, fmt.Errorf("token store: postgres driver requires a database")
		}
		return NewPostgresTokenStore(db), nil
	default:
		return nil, fmt.Errorf("token store: unknown driver %q", cfg.Driver)
	}
}
