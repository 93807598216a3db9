package postgres

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory SQLite database with the
// project schema. SQLite cannot parse FOR UPDATE, so the locking clause
// is dropped before any query SQL is built.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Callback().Query().Before("gorm:query").Register("sqlite_strip_for_update", func(d *gorm.DB) {
		delete(d.Statement.Clauses, "FOR")
	}); err != nil {
		t.Fatalf("failed to register callback: %v", err)
	}

	for _, ddl := range testSchema {
		if err := db.Exec(ddl).Error; err != nil {
			t.Fatalf("failed to create schema: %v", err)
		}
	}

	return db
}

var testSchema = []string{
	`CREATE TABLE addresses (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		owner_type TEXT NOT NULL CHECK (owner_type IN ('account','store')),
		label TEXT NOT NULL DEFAULT '',
		zip_code TEXT NOT NULL,
		street TEXT NOT NULL,
		number TEXT NOT NULL,
		neighborhood TEXT,
		complement TEXT,
		reference TEXT,
		city TEXT,
		state TEXT,
		latitude REAL,
		longitude REAL,
		is_default INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE INDEX idx_addresses_on_owner ON addresses(owner_id, owner_type)`,
	`CREATE UNIQUE INDEX uidx_addresses_default_per_owner
		ON addresses(owner_id, owner_type) WHERE is_default`,
	`CREATE TABLE orders (
		id TEXT PRIMARY KEY,
		store_id TEXT NOT NULL,
		account_id TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending'
			CHECK (status IN ('pending','processing','delivering','completed','canceled')),
		notes TEXT,
		delivery_fee NUMERIC NOT NULL DEFAULT 0,
		subtotal NUMERIC NOT NULL DEFAULT 0,
		total NUMERIC NOT NULL DEFAULT 0,
		zip_code TEXT NOT NULL,
		street TEXT NOT NULL,
		number TEXT NOT NULL,
		neighborhood TEXT,
		complement TEXT,
		reference TEXT,
		city TEXT,
		state TEXT,
		latitude REAL,
		longitude REAL,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE order_items (
		id TEXT PRIMARY KEY,
		order_id TEXT NOT NULL,
		product_uuid TEXT NOT NULL,
		product_name TEXT NOT NULL,
		unit_price NUMERIC NOT NULL,
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE UNIQUE INDEX uidx_order_items_product ON order_items(order_id, product_uuid)`,
}
