package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		is_active BOOLEAN NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE roles (
		id TEXT PRIMARY KEY,
		name TEXT UNIQUE NOT NULL
	);`)
	mustExec(t, db, `CREATE TABLE user_roles (
		user_id TEXT NOT NULL,
		role_id TEXT NOT NULL,
		PRIMARY KEY (user_id, role_id)
	);`)
}

func createAPIKeyTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE api_keys (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		lookup_id TEXT NOT NULL UNIQUE,
		key_hash TEXT NOT NULL,
		is_active BOOLEAN NOT NULL,
		expires_at DATETIME,
		last_used_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createScanResultTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE scan_results (
		id TEXT PRIMARY KEY,
		image_name TEXT NOT NULL,
		image_tag TEXT NOT NULL,
		scanner_type TEXT NOT NULL,
		scan_timestamp DATETIME NOT NULL,
		severity_critical INTEGER NOT NULL,
		severity_high INTEGER NOT NULL,
		severity_medium INTEGER NOT NULL,
		severity_low INTEGER NOT NULL,
		raw_results TEXT,
		uploaded_by TEXT NOT NULL,
		created_at DATETIME
	);`)
}
