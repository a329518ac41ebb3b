package db

import (
	"context"
	"time"
)

// Store is the storage facade the composition root wires. Consumers depend on
// the narrow sub-interfaces.
type Store interface {
	Pinger
	KVStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// KVStore provides simple key-value operations.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// SetNX stores value only if key is absent, returning ErrKeyExists otherwise.
	SetNX(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
}

