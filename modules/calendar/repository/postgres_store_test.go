package repository

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon-api/modules/calendar/entity"
)

// fakeDB records queries and serves canned rows, enough to drive the token
// store without a live database.
type fakeDB struct {
	execQueries []string
	execArgs    [][]any
	execErr     error

	getErr    error
	getRecord *entity.TokenRecord
}

func (f *fakeDB) ExecContext(_ context.Context, query string, args ...any) error {
	f.execQueries = append(f.execQueries, query)
	f.execArgs = append(f.execArgs, args)
	return f.execErr
}

func (f *fakeDB) GetContext(_ context.Context, dest any, _ string, _ ...any) error {
	if f.getErr != nil {
		return f.getErr
	}
	*dest.(*entity.TokenRecord) = *f.getRecord
	return nil
}

func (f *fakeDB) SelectContext(context.Context, any, string, ...any) error { return nil }

func (f *fakeDB) QueryRowContext(context.Context, string, ...any) *sql.Row { return nil }

func (f *fakeDB) QueryContext(context.Context, string, ...any) (*sql.Rows, error) {
	return nil, nil
}

func (f *fakeDB) NamedExecContext(context.Context, string, any) (sql.Result, error) {
	return nil, nil
}

func (f *fakeDB) SQLx() *sqlx.DB { return nil }

func TestPostgresTokenStore_SaveUpserts(t *testing.T) {
	db := &fakeDB{}
	store := NewPostgresTokenStore(db)

	before := time.Now().UnixMilli()
	err := store.Save(context.Background(), "user123", entity.TokenRecord{
		RefreshToken: "rt-1",
		AccessToken:  "at-1",
		Scope:        "https://www.googleapis.com/auth/calendar.events",
		TokenType:    "Bearer",
		ExpiryDate:   before + 3600_000,
	})
	require.NoError(t, err)

	require.Len(t, db.execQueries, 1)
	assert.Contains(t, db.execQueries[0], "INSERT INTO calendar_tokens")
	assert.Contains(t, db.execQueries[0], "ON CONFLICT (uid)")
	assert.Contains(t, db.execQueries[0], "DO UPDATE")

	args := db.execArgs[0]
	require.Len(t, args, 7)
	assert.Equal(t, "user123", args[0])
	assert.Equal(t, "rt-1", args[1])
	assert.Equal(t, "at-1", args[2])
	// created_at is stamped by the store, not taken from the caller.
	assert.GreaterOrEqual(t, args[6].(int64), before)
}

func TestPostgresTokenStore_SaveFailurePropagates(t *testing.T) {
	db := &fakeDB{execErr: fmt.Errorf("connection reset")}
	store := NewPostgresTokenStore(db)

	err := store.Save(context.Background(), "user123", entity.TokenRecord{RefreshToken: "rt-1"})
	require.Error(t, err)
}

func TestPostgresTokenStore_Get(t *testing.T) {
	db := &fakeDB{getRecord: &entity.TokenRecord{
		RefreshToken: "rt-1",
		TokenType:    "Bearer",
	}}
	store := NewPostgresTokenStore(db)

	record, err := store.Get(context.Background(), "user123")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "rt-1", record.RefreshToken)
	assert.True(t, record.Connected())
}

func TestPostgresTokenStore_GetMissing(t *testing.T) {
	db := &fakeDB{getErr: sql.ErrNoRows}
	store := NewPostgresTokenStore(db)

	record, err := store.Get(context.Background(), "never-saved")
	require.NoError(t, err)
	assert.Nil(t, record)
	assert.False(t, record.Connected())
}

func TestPostgresTokenStore_GetFailureFailsOpen(t *testing.T) {
	db := &fakeDB{getErr: fmt.Errorf("connection reset")}
	store := NewPostgresTokenStore(db)

	// Same policy as the file store: a read failure reads as "disconnected".
	record, err := store.Get(context.Background(), "user123")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestPostgresTokenStore_Delete(t *testing.T) {
	db := &fakeDB{}
	store := NewPostgresTokenStore(db)

	require.NoError(t, store.Delete(context.Background(), "user123"))
	require.Len(t, db.execQueries, 1)
	assert.Contains(t, db.execQueries[0], "DELETE FROM calendar_tokens")
	assert.Equal(t, []any{"user123"}, db.execArgs[0])

	db.execErr = fmt.Errorf("connection reset")
	require.Error(t, store.Delete(context.Background(), "user123"))
}
