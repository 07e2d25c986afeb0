// Package repository реализует хранилище данных на основе PostgreSQL
// для биллинга клуба: тарифы, члены клуба, сессии, журнал использования
// минут и счётчики гостевых пропусков.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// ErrSessionNotFound возвращается при перерасчёте несуществующей сессии.
var ErrSessionNotFound = errors.New("session not found")

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с данными биллинга.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady проверяет готовность базы данных.
func CheckDatabaseReady(storage *Storage) error {
	var exists bool
	err := storage.DB.QueryRow(`SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'usage_ledger'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table usage_ledger missing or query error: %w", err)
	}
	return nil
}
