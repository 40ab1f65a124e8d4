package kvstore

import (
	"context"
	"errors"
)

// Fixed keys for the four logical records the engine persists. Every write
// is a full-record overwrite; no atomicity is assumed across keys.
const (
	KeyCategories = "pos_categories"
	KeyItems      = "pos_items"
	KeySales      = "pos_sales"
	KeySettings   = "pos_settings"
)

// ErrNotFound is returned when a key has never been written.
var ErrNotFound = errors.New("kvstore: key not found")

// Store persists whole JSON-encoded records under fixed keys.
type Store interface {
	// Get decodes the record stored under key into dest. Returns
	// ErrNotFound when the key has never been written.
	Get(ctx context.Context, key string, dest interface{}) error
	// Put overwrites the record stored under key.
	Put(ctx context.Context, key string, value interface{}) error
}
