package storage

import (
	"context"
	"errors"
)

// ErrNotFound indicates no value is stored under a key.
var ErrNotFound = errors.New("record not found")

// Keys under which the application state lives.
const (
	SnapshotKey = "appData"
	SessionKey  = "currentUser"
)

// KV is the durable client storage the persistence adapter writes to.
// Values are opaque JSON documents.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Namespaced prefixes every key with ns and a colon so several deployments
// can share one backend.
func Namespaced(ns, key string) string {
	if ns == "" {
		return key
	}
	return ns + ":" + key
}
