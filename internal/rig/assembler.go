// Package rig assembles models from parts and compiles them to meshes.
package rig

import (
	"errors"

	"github.com/Faultbox/blockmodels/pkg/mesh"
)

// ErrUnknownTextureOffset is returned when a named box refers to an
// offset the assembler never registered.
var ErrUnknownTextureOffset = errors.New("unknown texture offset")

// TextureOffset is a named atlas anchor.
type TextureOffset struct {
	U, V int
}

// Assembler owns the ordered part list of one model.
//
// Construction errors are sticky: the first failed box is kept, later
// calls keep building, and Err or Compile report it.
type Assembler struct {
	TextureWidth  int
	TextureHeight int

	parts   []*Part
	offsets map[string]TextureOffset
	err     error
}

// NewAssembler creates an assembler with the default 64x32 atlas.
func NewAssembler() *Assembler {
	return &Assembler{
		TextureWidth:  DefaultTextureWidth,
		TextureHeight: DefaultTextureHeight,
		offsets:       make(map[string]TextureOffset),
	}
}

// NewBox creates a box part and appends it to the part list. The part
// inherits the assembler's atlas size.
func (a *Assembler) NewBox(name string, category mesh.PartFlag, traits ...Trait) *Part {
	p := newPart(a, name, category, traits)
	a.parts = append(a.parts, p)
	return p
}

// NewPlane creates a plane part and appends it to the part list. Planes
// start with the default atlas size and draw both sides.
func (a *Assembler) NewPlane(name string, category mesh.PartFlag, traits ...Trait) *Part {
	p := newPart(a, name, category, traits)
	p.texW, p.texH = DefaultTextureWidth, DefaultTextureHeight
	p.AlsoReverse = true
	a.parts = append(a.parts, p)
	return p
}

// Remove splices p out of the part list. It reports whether p was there.
func (a *Assembler) Remove(p *Part) bool {
	for i, q := range a.parts {
		if q == p {
			a.parts = append(a.parts[:i], a.parts[i+1:]...)
			return true
		}
	}
	return false
}

// Append adds an existing part at the end of the list. Paired with
// Remove it moves a part to the back of the compile order.
func (a *Assembler) Append(p *Part) {
	a.parts = append(a.parts, p)
}

// SetTextureOffset registers a named atlas anchor for AddNamedBox.
func (a *Assembler) SetTextureOffset(name string, u, v int) {
	if a.offsets == nil {
		a.offsets = make(map[string]TextureOffset)
	}
	a.offsets[name] = TextureOffset{U: u, V: v}
}

// Parts returns the part list in compile order.
func (a *Assembler) Parts() []*Part {
	return a.parts
}

// Part returns the first part with the given name, or nil.
func (a *Assembler) Part(name string) *Part {
	for _, p := range a.parts {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Err returns the first construction error.
func (a *Assembler) Err() error {
	return a.err
}

func (a *Assembler) fail(err error) {
	if a.err == nil {
		a.err = err
	}
}
