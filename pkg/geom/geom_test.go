package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/blockmodels/pkg/math"
)

func headBox(mirror bool) BoxParams {
	return BoxParams{
		Origin: math.Vec3{X: -4, Y: -8, Z: -4},
		W:      8, H: 8, D: 8,
		TexW: 64, TexH: 32,
		Mirror: mirror,
	}
}

func armBox(mirror bool) BoxParams {
	return BoxParams{
		Origin: math.Vec3{X: -3, Y: -2, Z: -2},
		W:      4, H: 12, D: 4,
		U:      40, V: 16,
		TexW:   64, TexH: 32,
		Mirror: mirror,
	}
}

func center(q Quad) math.Vec3 {
	var c math.Vec3
	for _, v := range q.Vertices {
		c = c.Add(v.Pos)
	}
	return c.Scale(0.25)
}

func TestConstructBoxUsesEachCornerThreeTimes(t *testing.T) {
	for _, mirror := range []bool{false, true} {
		b, err := ConstructBox(armBox(mirror))
		require.NoError(t, err)

		uses := make(map[math.Vec3]int)
		for _, q := range b.Quads {
			seen := make(map[math.Vec3]bool)
			for _, v := range q.Vertices {
				assert.False(t, seen[v.Pos], "corner %v used twice in one quad", v.Pos)
				seen[v.Pos] = true
				uses[v.Pos]++
			}
		}
		assert.Len(t, uses, 8)
		for _, c := range b.Corners {
			assert.Equal(t, 3, uses[c.Pos], "corner %v", c.Pos)
		}
	}
}

func TestConstructBoxQuadsArePlanarAndOutward(t *testing.T) {
	for _, mirror := range []bool{false, true} {
		b, err := ConstructBox(armBox(mirror))
		require.NoError(t, err)

		mid := b.Min.Add(b.Max).Scale(0.5)
		for i, q := range b.Quads {
			n := q.Normal()
			d := q.Vertices[3].Pos.Sub(q.Vertices[0].Pos).Dot(n)
			assert.InDelta(t, 0, d, 1e-5, "quad %d not planar", i)
			assert.Greater(t, n.Dot(center(q).Sub(mid)), float32(0), "quad %d faces inward (mirror=%v)", i, mirror)
		}
	}
}

func TestConstructBoxUnwrap(t *testing.T) {
	b, err := ConstructBox(headBox(false))
	require.NoError(t, err)

	// Top of an 8x8x8 box at offset (0,0): pixels 8..16 x 0..8.
	top := b.Quads[QuadTop].TexCoords()
	assert.Equal(t, math.Vec2{X: 16.0 / 64, Y: 0}, top[0])
	assert.Equal(t, math.Vec2{X: 8.0 / 64, Y: 0}, top[1])
	assert.Equal(t, math.Vec2{X: 8.0 / 64, Y: 8.0 / 32}, top[2])
	assert.Equal(t, math.Vec2{X: 16.0 / 64, Y: 8.0 / 32}, top[3])

	// Bottom runs its V range backwards: v1 = d, v2 = 0.
	bottom := b.Quads[QuadBottom].TexCoords()
	assert.Equal(t, math.Vec2{X: 24.0 / 64, Y: 8.0 / 32}, bottom[0])
	assert.Equal(t, math.Vec2{X: 16.0 / 64, Y: 0}, bottom[2])
	assert.Equal(t, math.Vec2{X: 24.0 / 64, Y: 0}, bottom[3])

	back := b.Quads[QuadBack].TexCoords()
	assert.Equal(t, math.Vec2{X: 32.0 / 64, Y: 8.0 / 32}, back[0])
	assert.Equal(t, math.Vec2{X: 24.0 / 64, Y: 16.0 / 32}, back[2])
}

func TestConstructBoxInflateKeepsUVs(t *testing.T) {
	plain, err := ConstructBox(headBox(false))
	require.NoError(t, err)

	p := headBox(false)
	p.Inflate = 0.5
	inflated, err := ConstructBox(p)
	require.NoError(t, err)

	assert.Equal(t, plain.Min, inflated.Min)
	assert.Equal(t, plain.Max, inflated.Max)
	assert.Equal(t, math.Vec3{X: -4.5, Y: -8.5, Z: -4.5}, inflated.Corners[0].Pos)
	assert.Equal(t, math.Vec3{X: 4.5, Y: 0.5, Z: 4.5}, inflated.Corners[6].Pos)
	for i := range plain.Quads {
		assert.Equal(t, plain.Quads[i].TexCoords(), inflated.Quads[i].TexCoords(), "quad %d", i)
	}
}

func TestConstructBoxMirror(t *testing.T) {
	plain, err := ConstructBox(armBox(false))
	require.NoError(t, err)
	mirrored, err := ConstructBox(armBox(true))
	require.NoError(t, err)

	sumX := plain.Min.X + plain.Max.X
	for i := range plain.Quads {
		q := mirrored.Quads[i]
		q.Flip()
		for j, v := range q.Vertices {
			want := plain.Quads[i].Vertices[j]
			assert.Equal(t, want.UV, v.UV, "quad %d vertex %d", i, j)
			assert.Equal(t, want.Pos.Y, v.Pos.Y)
			assert.Equal(t, want.Pos.Z, v.Pos.Z)
			assert.InDelta(t, sumX-want.Pos.X, v.Pos.X, 1e-6)
		}
	}

	// Same corner set either way.
	set := func(b Box) map[math.Vec3]bool {
		m := make(map[math.Vec3]bool)
		for _, c := range b.Corners {
			m[c.Pos] = true
		}
		return m
	}
	assert.Equal(t, set(plain), set(mirrored))
}

func TestQuadFlipIsInvolution(t *testing.T) {
	b, err := ConstructBox(armBox(true))
	require.NoError(t, err)

	for _, q := range b.Quads {
		orig := q
		q.Flip()
		assert.NotEqual(t, orig, q)
		q.Flip()
		assert.Equal(t, orig, q)
	}
}

func TestConstructBoxPreconditions(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*BoxParams)
		wantErr error
	}{
		{"negative width", func(p *BoxParams) { p.W = -1 }, ErrNegativeExtent},
		{"negative depth", func(p *BoxParams) { p.D = -8 }, ErrNegativeExtent},
		{"no texture width", func(p *BoxParams) { p.TexW = 0 }, ErrTextureSizeUnset},
		{"no texture height", func(p *BoxParams) { p.TexH = 0 }, ErrTextureSizeUnset},
		{"flat box", func(p *BoxParams) { p.D = 0 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := headBox(false)
			tt.modify(&p)
			_, err := ConstructBox(p)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			_, err = ConstructPlane(PlaneBack, p)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConstructPlane(t *testing.T) {
	p := BoxParams{
		Origin: math.Vec3{X: -4, Y: 4, Z: 2},
		W:      0, H: 8, D: 8,
		U:      32, V: 0,
		TexW:   64, TexH: 32,
	}

	side, err := ConstructPlane(PlaneSide, p)
	require.NoError(t, err)
	uv := side.Quad.TexCoords()
	assert.Equal(t, math.Vec2{X: 40.0 / 64, Y: 0}, uv[0])
	assert.Equal(t, math.Vec2{X: 32.0 / 64, Y: 8.0 / 32}, uv[2])
	for _, v := range side.Quad.Vertices {
		assert.Equal(t, float32(-4), v.Pos.X)
	}

	p.W, p.D = 8, 0
	back, err := ConstructPlane(PlaneBack, p)
	require.NoError(t, err)
	for _, v := range back.Quad.Vertices {
		assert.Equal(t, float32(2), v.Pos.Z)
	}

	p.H, p.D = 0, 4
	top, err := ConstructPlane(PlaneTop, p)
	require.NoError(t, err)
	for _, v := range top.Quad.Vertices {
		assert.Equal(t, float32(4), v.Pos.Y)
	}
	assert.Equal(t, math.Vec2{X: 40.0 / 64, Y: 4.0 / 32}, top.Quad.TexCoords()[3])

	p.Mirror = true
	mirrored, err := ConstructPlane(PlaneTop, p)
	require.NoError(t, err)
	mirrored.Quad.Flip()
	assert.Equal(t, top.Quad.TexCoords(), mirrored.Quad.TexCoords())
}
