package mesh

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	ErrEmptyModelName = errors.New("model has no name")
	ErrNoMeshes       = errors.New("model has no meshes")
	ErrBadIndices     = errors.New("face indices are not a quad winding")
	ErrNonFinite      = errors.New("non-finite value")
)

// Validate checks that m is complete enough to register: it has a name
// and meshes, every face uses one of the two quad windings, and no
// position or texture coordinate is NaN or infinite.
func (m *Model) Validate() error {
	if m.Name == "" {
		return ErrEmptyModelName
	}
	if len(m.Meshes) == 0 {
		return fmt.Errorf("%w: %s", ErrNoMeshes, m.Name)
	}
	for i := range m.Meshes {
		ms := &m.Meshes[i]
		for _, v := range [...]struct {
			name string
			ok   bool
		}{
			{"translate", ms.Translate.IsFinite()},
			{"rotate", ms.Rotate.IsFinite()},
			{"pivot", ms.Pivot.IsFinite()},
		} {
			if !v.ok {
				return fmt.Errorf("%w: %s mesh %d %s", ErrNonFinite, m.Name, i, v.name)
			}
		}
		for j := range ms.Faces {
			f := &ms.Faces[j]
			if f.Indices != WindingCW && f.Indices != WindingCCW {
				return fmt.Errorf("%w: %s mesh %d face %d: %v", ErrBadIndices, m.Name, i, j, f.Indices)
			}
			for k := 0; k < 4; k++ {
				if !f.Positions[k].IsFinite() || !f.TexCoords[k].IsFinite() {
					return fmt.Errorf("%w: %s mesh %d face %d", ErrNonFinite, m.Name, i, j)
				}
			}
		}
	}
	return nil
}
