package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	myErr "freshcart/internal/types/errors"
)

// PostgresStore хранит значения в таблице kv_store (см. migrations)
type PostgresStore struct {
	DB     *sql.DB
	Logger *zap.SugaredLogger
}

func NewPostgresStore(db *sql.DB, logger *zap.SugaredLogger) *PostgresStore {
	return &PostgresStore{
		DB:     db,
		Logger: logger,
	}
}

func (ps *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	query := `
	SELECT value FROM kv_store
	WHERE key = $1
`
	var value string
	err := ps.DB.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}

		ps.Logger.Errorf("Ошибка при чтении ключа %s: %v", key, err)
		return "", false, fmt.Errorf("%w: %v", myErr.ErrStorageUnavailable, err)
	}

	return value, true, nil
}

func (ps *PostgresStore) Set(ctx context.Context, key string, value string) error {
	query := `
	INSERT INTO kv_store(key, value, updated_at)
	VALUES ($1, $2, NOW()) ON CONFLICT (key)
	DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
`
	_, err := ps.DB.ExecContext(ctx, query, key, value)
	if err != nil {
		ps.Logger.Errorf("Ошибка при записи ключа %s: %v", key, err)
		return fmt.Errorf("%w: %v", myErr.ErrStorageUnavailable, err)
	}

	return nil
}

func (ps *PostgresStore) Delete(ctx context.Context, key string) error {
	query := `
	DELETE FROM kv_store
	WHERE key = $1
`
	_, err := ps.DB.ExecContext(ctx, query, key)
	if err != nil {
		ps.Logger.Errorf("Ошибка при удалении ключа %s: %v", key, err)
		return fmt.Errorf("%w: %v", myErr.ErrStorageUnavailable, err)
	}

	return nil
}
