package postgres

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"scanhub.backend/internal/config"
)

func testDBConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "scanhub",
		Password: "scanhub",
		DBName:   "scanhub",
		SSLMode:  "disable",
	}
}

func TestNewConnection_OpenError(t *testing.T) {
	orig := sqlOpen
	t.Cleanup(func() { sqlOpen = orig })

	sqlOpen = func(driver, dsn string) (*sql.DB, error) {
		assert.Equal(t, "postgres", driver)
		assert.Contains(t, dsn, "dbname=scanhub")
		return nil, errors.New("bad dsn")
	}

	_, err := NewConnection(testDBConfig())
	require.ErrorContains(t, err, "failed to open database")
}

func TestNewConnection_PingError(t *testing.T) {
	origOpen, origPing := sqlOpen, dbPing
	t.Cleanup(func() { sqlOpen, dbPing = origOpen, origPing })

	// sql.Open is lazy; no server needed until the (stubbed) ping.
	dbPing = func(*sql.DB) error { return errors.New("refused") }

	_, err := NewConnection(testDBConfig())
	require.ErrorContains(t, err, "failed to ping database")
}

func TestNewConnection_Success(t *testing.T) {
	origOpen, origPing := sqlOpen, dbPing
	t.Cleanup(func() { sqlOpen, dbPing = origOpen, origPing })

	dbPing = func(*sql.DB) error { return nil }

	db, err := NewConnection(testDBConfig())
	require.NoError(t, err)
	require.NotNil(t, db)
	require.NoError(t, db.Close())
}
