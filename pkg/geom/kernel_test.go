package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/blockmodels/pkg/math"
)

func TestMakeBox(t *testing.T) {
	c := MakeBox(2, 4, 6)
	assert.Equal(t, math.Vec3{X: -1, Y: -2, Z: 3}, c[0])
	assert.Equal(t, math.Vec3{X: 1, Y: 2, Z: 3}, c[2])
	assert.Equal(t, math.Vec3{X: 1, Y: -2, Z: -3}, c[5])
	assert.Equal(t, math.Vec3{X: -1, Y: 2, Z: -3}, c[7])
}

func TestMakeFaceCoversCube(t *testing.T) {
	corners := MakeBox(2, 2, 2)
	uses := make(map[math.Vec3]int)
	normals := make(map[FaceLocation]math.Vec3)

	for _, loc := range FaceLocations {
		f := MakeFace(loc, corners)
		seen := make(map[math.Vec3]bool)
		for _, p := range f {
			assert.False(t, seen[p], "%s reuses corner %v", loc, p)
			seen[p] = true
			uses[p]++
		}
		q := Quad{}
		for i, p := range f {
			q.Vertices[i].Pos = p
		}
		normals[loc] = q.Normal()
	}

	for _, c := range corners {
		assert.Equal(t, 3, uses[c], "corner %v", c)
	}
	pairs := [][2]FaceLocation{{FaceFront, FaceBack}, {FaceTop, FaceBottom}, {FaceLeft, FaceRight}}
	for _, p := range pairs {
		assert.Equal(t, normals[p[0]].Scale(-1), normals[p[1]], "%s/%s", p[0], p[1])
	}
}

func TestTexCoordRect(t *testing.T) {
	uv := TexCoordRect(8, 8, 8, 8, 64, 32)
	want := [4]math.Vec2{
		{X: 0.125, Y: 0.25},
		{X: 0.25, Y: 0.25},
		{X: 0.25, Y: 0.5},
		{X: 0.125, Y: 0.5},
	}
	assert.Equal(t, want, uv)
}

func TestInvertVIsInvolution(t *testing.T) {
	uv := TexCoordRect(16, 0, 8, 4, 64, 32)
	inv := InvertV(uv)
	assert.NotEqual(t, uv, inv)
	assert.Equal(t, uv[3], inv[0])
	assert.Equal(t, uv, InvertV(inv))
}

func TestMakeCube(t *testing.T) {
	c := math.Vec3{X: 1, Y: 2, Z: 3}
	quads := MakeCube(c, 2, 0, 0, 8, 8, 64, 32)

	uv := TexCoordRect(0, 0, 8, 8, 64, 32)
	for i, loc := range FaceLocations {
		want := uv
		if loc == FaceBottom {
			want = InvertV(uv)
		}
		assert.Equal(t, want, quads[i].TexCoords(), "%s", loc)
		for _, v := range quads[i].Vertices {
			d := v.Pos.Sub(c)
			assert.Equal(t, float32(1), math.Abs(d.X))
			assert.Equal(t, float32(1), math.Abs(d.Y))
			assert.Equal(t, float32(1), math.Abs(d.Z))
		}
	}
}
