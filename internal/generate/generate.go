// Package generate builds, compiles and saves a batch of catalog models.
package generate

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/blockmodels/internal/models"
	"github.com/Faultbox/blockmodels/internal/rig"
	"github.com/Faultbox/blockmodels/internal/store"
)

// ErrUnknownModel is returned by Select for a name not in the catalog.
var ErrUnknownModel = errors.New("unknown model")

// Result reports what a Run wrote and what failed, keyed by file stem.
type Result struct {
	Written []string
	Failed  map[string]error
}

// OK reports whether every entry was written.
func (r Result) OK() bool { return len(r.Failed) == 0 }

// Options adjusts a Run.
type Options struct {
	// ScaleFactor multiplies every entry's own scale. Zero means 1.
	ScaleFactor float32
	// PivotMarkers adds a marker cube at each part pivot.
	PivotMarkers bool
}

// Run builds every entry, compiles it at its scale and saves it under its
// file stem. A failing entry is logged and recorded; the pass goes on.
func Run(s store.Store, entries []models.Entry, log *zap.Logger) Result {
	return RunWith(s, entries, Options{}, log)
}

// RunWith is Run with options.
func RunWith(s store.Store, entries []models.Entry, opts Options, log *zap.Logger) Result {
	if log == nil {
		log = zap.NewNop()
	}
	factor := opts.ScaleFactor
	if factor == 0 {
		factor = 1
	}

	res := Result{Failed: make(map[string]error)}
	start := time.Now()

	for _, e := range entries {
		if err := runOne(s, e, factor, opts.PivotMarkers, log); err != nil {
			log.Error("Failed to generate model", zap.String("model", e.Name), zap.Error(err))
			res.Failed[e.File] = err
			continue
		}
		res.Written = append(res.Written, e.File)
	}

	log.Info("Generation finished",
		zap.Int("written", len(res.Written)),
		zap.Int("failed", len(res.Failed)),
		zap.Duration("elapsed", time.Since(start)))
	return res
}

func runOne(s store.Store, e models.Entry, factor float32, markers bool, log *zap.Logger) error {
	src, err := e.Build()
	if err != nil {
		return fmt.Errorf("building: %w", err)
	}
	m, err := rig.CompileWith(src, e.Name, rig.Options{Scale: e.Scale * factor, PivotMarkers: markers})
	if err != nil {
		return fmt.Errorf("compiling: %w", err)
	}
	if err := s.Save(e.File, m); err != nil {
		return fmt.Errorf("saving: %w", err)
	}

	log.Debug("Saved model",
		zap.String("model", e.Name),
		zap.String("key", e.File),
		zap.Int("meshes", len(m.Meshes)),
		zap.Int("faces", m.FaceCount()))
	return nil
}

// Select returns the entries whose display name or file stem is in
// names, in catalog order. An empty names selects everything.
func Select(entries []models.Entry, names []string) ([]models.Entry, error) {
	if len(names) == 0 {
		return entries, nil
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}

	var out []models.Entry
	for _, e := range entries {
		if want[e.Name] || want[e.File] {
			out = append(out, e)
			delete(want, e.Name)
			delete(want, e.File)
		}
	}
	for n := range want {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, n)
	}
	return out, nil
}
