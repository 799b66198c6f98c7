package geom

import "github.com/Faultbox/blockmodels/pkg/math"

// FaceLocation names one side of a centered cube.
type FaceLocation uint8

// Cube faces.
const (
	FaceFront FaceLocation = iota
	FaceBack
	FaceTop
	FaceBottom
	FaceLeft
	FaceRight
)

var faceLocationNames = [...]string{"front", "back", "top", "bottom", "left", "right"}

func (f FaceLocation) String() string {
	if int(f) < len(faceLocationNames) {
		return faceLocationNames[f]
	}
	return "unknown"
}

// FaceLocations lists every face in declaration order.
var FaceLocations = [6]FaceLocation{FaceFront, FaceBack, FaceTop, FaceBottom, FaceLeft, FaceRight}

// cubeFaceCorners indexes MakeBox corners per face.
var cubeFaceCorners = [6][4]int{
	FaceFront:  {3, 2, 1, 0},
	FaceBack:   {4, 5, 6, 7},
	FaceTop:    {7, 6, 2, 3},
	FaceBottom: {5, 4, 0, 1},
	FaceLeft:   {7, 3, 0, 4},
	FaceRight:  {2, 6, 5, 1},
}

// MakeBox returns the corners of a w x h x l cuboid centered on the
// origin. Corners 0-3 lie on the +Z side, 4-7 on the -Z side, each ring
// starting at (-X,-Y).
func MakeBox(w, h, l float32) [8]math.Vec3 {
	w, h, l = w/2, h/2, l/2
	return [8]math.Vec3{
		{X: -w, Y: -h, Z: l},
		{X: w, Y: -h, Z: l},
		{X: w, Y: h, Z: l},
		{X: -w, Y: h, Z: l},
		{X: -w, Y: -h, Z: -l},
		{X: w, Y: -h, Z: -l},
		{X: w, Y: h, Z: -l},
		{X: -w, Y: h, Z: -l},
	}
}

// MakeFace picks the four corners of one face in its fixed order.
func MakeFace(loc FaceLocation, corners [8]math.Vec3) [4]math.Vec3 {
	idx := cubeFaceCorners[loc]
	return [4]math.Vec3{corners[idx[0]], corners[idx[1]], corners[idx[2]], corners[idx[3]]}
}

// TexCoordRect returns the normalized corners of a pixel rectangle in the
// order top-left, top-right, bottom-right, bottom-left.
func TexCoordRect(x, y, w, h, atlasW, atlasH float32) [4]math.Vec2 {
	rx, ry := x/atlasW, y/atlasH
	rw, rh := w/atlasW, h/atlasH
	return [4]math.Vec2{
		{X: rx, Y: ry},
		{X: rx + rw, Y: ry},
		{X: rx + rw, Y: ry + rh},
		{X: rx, Y: ry + rh},
	}
}

// InvertV re-pairs texture corners for faces stored upside down in the
// atlas. Applying it twice is the identity.
func InvertV(uv [4]math.Vec2) [4]math.Vec2 {
	return [4]math.Vec2{uv[3], uv[2], uv[1], uv[0]}
}

// MakeCube builds a centered cube of the given size at center, every face
// textured with the same pixel rectangle. Bottom faces use InvertV.
func MakeCube(center math.Vec3, size float32, u, v, w, h, atlasW, atlasH float32) [6]Quad {
	corners := MakeBox(size, size, size)
	uv := TexCoordRect(u, v, w, h, atlasW, atlasH)

	var quads [6]Quad
	for i, loc := range FaceLocations {
		pos := MakeFace(loc, corners)
		tex := uv
		if loc == FaceBottom {
			tex = InvertV(uv)
		}
		for j := range pos {
			quads[i].Vertices[j] = Vertex{Pos: pos[j].Add(center), UV: tex[j]}
		}
	}
	return quads
}
