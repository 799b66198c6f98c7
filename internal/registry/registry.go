// Package registry holds compiled models by name for lookup at runtime.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Faultbox/blockmodels/internal/store"
	"github.com/Faultbox/blockmodels/pkg/mesh"
)

// Registration errors.
var (
	ErrNilModel = errors.New("nil model")
	ErrNotFound = errors.New("model not registered")
)

// Registry maps model names to compiled models. Models can be registered
// directly, bulk-loaded from a store, or fetched lazily from attached
// stores on first use.
type Registry struct {
	log          *zap.Logger
	invertBottom bool

	mu     sync.RWMutex
	models map[string]*mesh.Model
	stores []store.Store

	hits   atomic.Int64
	misses atomic.Int64
}

// Option configures a Registry.
type Option func(*Registry)

// WithInvertBottomFaces flips the V range of every box bottom face as
// models are registered.
func WithInvertBottomFaces(invert bool) Option {
	return func(r *Registry) { r.invertBottom = invert }
}

// New creates an empty registry. A nil logger discards output.
func New(log *zap.Logger, opts ...Option) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Registry{
		log:    log,
		models: make(map[string]*mesh.Model),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds m under name, replacing any model already there.
func (r *Registry) Register(name string, m *mesh.Model) error {
	if m == nil {
		return fmt.Errorf("%w: %s", ErrNilModel, name)
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("registering %s: %w", name, err)
	}
	if r.invertBottom {
		m.InvertBottomFaces()
	}

	r.mu.Lock()
	r.models[name] = m
	r.mu.Unlock()

	r.log.Debug("Registered model",
		zap.String("name", name),
		zap.Int("meshes", len(m.Meshes)),
		zap.Int("faces", m.FaceCount()))
	return nil
}

// Lookup returns the model registered under name.
func (r *Registry) Lookup(name string) (*mesh.Model, bool) {
	r.mu.RLock()
	m, ok := r.models[name]
	r.mu.RUnlock()

	if ok {
		r.hits.Add(1)
	} else {
		r.misses.Add(1)
	}
	return m, ok
}

// AddStore attaches a store for Get to search. Stores are searched in
// reverse order (last added = highest priority).
func (r *Registry) AddStore(s store.Store) {
	r.mu.Lock()
	r.stores = append(r.stores, s)
	r.mu.Unlock()
}

// Get returns the model registered under name, or loads the model stored
// under the key name from the attached stores and registers it under
// both the key and its own name.
func (r *Registry) Get(name string) (*mesh.Model, error) {
	if m, ok := r.Lookup(name); ok {
		return m, nil
	}

	r.mu.RLock()
	stores := append([]store.Store(nil), r.stores...)
	r.mu.RUnlock()

	for i := len(stores) - 1; i >= 0; i-- {
		m, err := stores[i].Load(name)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			r.log.Warn("Failed to load model", zap.String("key", name), zap.Error(err))
			continue
		}
		if err := r.Register(m.Name, m); err != nil {
			return nil, err
		}
		if m.Name != name {
			r.mu.Lock()
			r.models[name] = m
			r.mu.Unlock()
		}
		return m, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// LoadAll registers every model in s under its own name. Models that
// fail to load or register are logged and skipped. The error is non-nil
// only if the store cannot be listed.
func (r *Registry) LoadAll(s store.Store) (int, error) {
	keys, err := s.List()
	if err != nil {
		return 0, fmt.Errorf("listing store: %w", err)
	}

	loaded := 0
	for _, key := range keys {
		m, err := s.Load(key)
		if err != nil {
			r.log.Warn("Skipping model", zap.String("key", key), zap.Error(err))
			continue
		}
		if err := r.Register(m.Name, m); err != nil {
			r.log.Warn("Skipping model", zap.String("key", key), zap.Error(err))
			continue
		}
		loaded++
	}

	r.log.Info("Loaded models", zap.Int("count", loaded), zap.Int("keys", len(keys)))
	return loaded, nil
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered names.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.models)
}

// Stats returns lookup statistics.
func (r *Registry) Stats() (hits, misses int64) {
	return r.hits.Load(), r.misses.Load()
}

// Close closes all attached stores and drops every model.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for _, s := range r.stores {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	r.stores = nil
	r.models = make(map[string]*mesh.Model)
	r.hits.Store(0)
	r.misses.Store(0)
	return errors.Join(errs...)
}
