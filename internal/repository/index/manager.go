package index

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/jobboard/internal/db"
)

// store is the consumer interface for index lifecycle (ISP).
type store interface {
	IndexExists(ctx context.Context, name string) (bool, error)
	CreateIndex(ctx context.Context, name string, mapping *db.Mapping) error
}

// Manager creates the fixed job and application indices when absent.
type Manager struct {
	store  store
	names  Names
	logger *zap.Logger
}

// New creates an index manager.
func New(s store, names Names, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{store: s, names: names.WithDefaults(), logger: logger}
}

// Names returns the configured index names.
func (m *Manager) Names() Names { return m.names }

// EnsureIndex creates name with mapping unless it already exists.
// A racing create reported as already-existing counts as success.
func (m *Manager) EnsureIndex(ctx context.Context, name string, mapping *db.Mapping) error {
	exists, err := m.store.IndexExists(ctx, name)
	if err != nil {
		return fmt.Errorf("check index %s: %w", name, err)
	}
	if exists {
		return nil
	}

	if err := m.store.CreateIndex(ctx, name, mapping); err != nil {
		if errors.Is(err, db.ErrIndexExists) {
			return nil
		}
		return fmt.Errorf("create index %s: %w", name, err)
	}
	m.logger.Info("Search index created", zap.String("index", name))
	return nil
}

// EnsureAll ensures both indices. A failure on one does not stop the other.
func (m *Manager) EnsureAll(ctx context.Context) error {
	var errs []error
	for _, spec := range []struct {
		name    string
		mapping *db.Mapping
	}{
		{m.names.Jobs, JobsMapping()},
		{m.names.Applications, ApplicationsMapping()},
	} {
		if err := m.EnsureIndex(ctx, spec.name, spec.mapping); err != nil {
			m.logger.Error("Failed to ensure search index",
				zap.String("index", spec.name),
				zap.Error(err),
			)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
