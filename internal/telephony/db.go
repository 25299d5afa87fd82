package telephony

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"
)

// smsInboxType is the sms.type value of received messages.
const smsInboxType = 1

//go:embed migrations/*.sql
var migrations embed.FS

// Open opens the provider database at path.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open telephony db: %w", err)
	}
	db.SetMaxOpenConns(1) // sqlite
	return db, nil
}

// EnsureSchema applies all up migrations to db.
func EnsureSchema(db *sql.DB) error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("telephony migrations: %w", err)
	}
	// m.Close would also close db, so only the source is released.
	defer src.Close()

	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("telephony migrate driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("telephony migrate: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("telephony migrate up: %w", err)
	}
	return nil
}
