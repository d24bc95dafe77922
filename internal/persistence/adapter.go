// Package persistence bridges the entity store and durable storage. Storage
// failures never reach callers: they are logged and the in-memory state stays
// authoritative.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Spigel00/work-force-matchup/internal/models"
	"github.com/Spigel00/work-force-matchup/internal/storage"
)

// ExportFilename is the name offered for user-initiated backups.
const ExportFilename = "appData.json"

// Adapter loads and saves snapshots and the current session.
type Adapter struct {
	kv          storage.KV
	seed        func() models.Snapshot
	snapshotKey string
	sessionKey  string
	log         *slog.Logger
}

// New returns an Adapter writing under namespace ns. seed provides the
// fallback dataset and is called on every load that finds no usable snapshot.
func New(kv storage.KV, ns string, seed func() models.Snapshot, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{
		kv:          kv,
		seed:        seed,
		snapshotKey: storage.Namespaced(ns, storage.SnapshotKey),
		sessionKey:  storage.Namespaced(ns, storage.SessionKey),
		log:         logger.With("component", "persistence"),
	}
}

// Load returns the stored snapshot, or the seed dataset when none is stored
// or it cannot be read. The boolean reports whether the result came from
// storage.
func (a *Adapter) Load(ctx context.Context) (models.Snapshot, bool) {
	raw, err := a.kv.Get(ctx, a.snapshotKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			a.log.Warn("load snapshot failed; using seed data", "key", a.snapshotKey, "err", err)
		}
		return a.seed(), false
	}
	var snap models.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		a.log.Warn("stored snapshot is not valid JSON; using seed data", "key", a.snapshotKey, "err", err)
		return a.seed(), false
	}
	return snap, true
}

// Save writes the full snapshot. Errors are logged only.
func (a *Adapter) Save(ctx context.Context, snap models.Snapshot) {
	raw, err := json.Marshal(snap)
	if err != nil {
		a.log.Error("encode snapshot failed", "err", err)
		return
	}
	if err := a.kv.Set(ctx, a.snapshotKey, raw); err != nil {
		a.log.Error("save snapshot failed; durable copy is stale", "key", a.snapshotKey, "err", err)
		return
	}
	a.log.Debug("snapshot saved", "key", a.snapshotKey, "bytes", len(raw))
}

// Export writes snap as indented JSON in the same shape as the persisted
// snapshot.
func (a *Adapter) Export(w io.Writer, snap models.Snapshot) error {
	return WriteSnapshot(w, snap)
}

// WriteSnapshot encodes snap with two-space indentation.
func WriteSnapshot(w io.Writer, snap models.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	return nil
}

// LoadSession returns the persisted session user, if any.
func (a *Adapter) LoadSession(ctx context.Context) (models.User, bool) {
	raw, err := a.kv.Get(ctx, a.sessionKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			a.log.Warn("load session failed", "key", a.sessionKey, "err", err)
		}
		return models.User{}, false
	}
	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil || user.ID == "" {
		a.log.Warn("stored session is unusable; starting anonymous", "key", a.sessionKey, "err", err)
		return models.User{}, false
	}
	return user, true
}

// SaveSession persists user as the current session.
func (a *Adapter) SaveSession(ctx context.Context, user models.User) {
	raw, err := json.Marshal(user)
	if err != nil {
		a.log.Error("encode session failed", "err", err)
		return
	}
	if err := a.kv.Set(ctx, a.sessionKey, raw); err != nil {
		a.log.Error("save session failed", "key", a.sessionKey, "err", err)
	}
}

// ClearSession removes the persisted session.
func (a *Adapter) ClearSession(ctx context.Context) {
	if err := a.kv.Delete(ctx, a.sessionKey); err != nil {
		a.log.Error("clear session failed", "key", a.sessionKey, "err", err)
	}
}
