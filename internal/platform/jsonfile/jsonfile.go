// Package jsonfile is the persistence backend: it stores the progress
// snapshot as one pretty-printed JSON document. The layout matches the
// store snapshot shape directly, so an existing data file keeps loading
// across versions of the tool.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mseguin/recallbox/internal/domain"
	"github.com/mseguin/recallbox/internal/store"
)

var _ store.SnapshotRepository = (*Repository)(nil)

// Repository loads and saves snapshots at a fixed file path. It
// implements store.SnapshotRepository.
type Repository struct {
	path   string
	logger *slog.Logger
}

// New creates a repository for the given snapshot file path.
func New(path string, logger *slog.Logger) *Repository {
	return &Repository{
		path:   path,
		logger: logger.With(slog.String("component", "jsonfile")),
	}
}

// Load reads the snapshot file. A missing file reports ok=false with no
// error: first runs start from an empty snapshot.
func (r *Repository) Load(ctx context.Context) (domain.Snapshot, bool, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		r.logger.Debug("no snapshot file yet", slog.String("path", r.path))
		return domain.NewSnapshot(), false, nil
	}
	if err != nil {
		return domain.Snapshot{}, false, fmt.Errorf("reading snapshot %s: %w", r.path, err)
	}

	snap := domain.NewSnapshot()
	if err := json.Unmarshal(data, &snap); err != nil {
		return domain.Snapshot{}, false, fmt.Errorf("parsing snapshot %s: %w", r.path, err)
	}
	return snap, true, nil
}

// Save writes the full snapshot atomically: the document goes to a
// temporary file in the same directory which then renames over the
// target, so a crash mid-write never corrupts existing progress.
func (r *Repository) Save(ctx context.Context, snap domain.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp snapshot file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp snapshot file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing snapshot %s: %w", r.path, err)
	}

	r.logger.Debug("snapshot saved",
		slog.String("path", r.path),
		slog.Int("units", len(snap.Units)))
	return nil
}
