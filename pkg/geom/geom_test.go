package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVecAlgebra(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}

	assert.Equal(t, Vec3{5, -3, 9}, a.Add(b))
	assert.Equal(t, Vec3{-3, 7, -3}, a.Sub(b))
	assert.Equal(t, Vec3{2, 4, 6}, a.Scale(2))
	assert.Equal(t, 12.0, a.Dot(b))
	assert.Equal(t, Vec3{27, 6, -13}, a.Cross(b))
	require.InDelta(t, math.Sqrt(14), a.Length(), 1e-12)
}

func TestNormalize(t *testing.T) {
	v := Vec3{3, 0, 4}.Normalize()
	require.InDelta(t, 1, v.Length(), 1e-12)
	require.InDelta(t, 0.6, v.X, 1e-12)
	require.InDelta(t, 0.8, v.Z, 1e-12)

	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
	assert.Equal(t, Vec3{}, Vec3{1e-15, 0, 0}.Normalize())
}

func TestNewEdgeCanonical(t *testing.T) {
	assert.Equal(t, Edge{A: 2, B: 7}, NewEdge(7, 2))
	assert.Equal(t, Edge{A: 2, B: 7}, NewEdge(2, 7))
}

// Unit square in the z=1 plane.
var squareVerts = []Vec3{
	{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
}

func TestPolygonArea(t *testing.T) {
	square := []int{0, 1, 2, 3}
	require.InDelta(t, 1, PolygonArea(squareVerts, square), 1e-12)

	triangle := []int{0, 1, 2}
	require.InDelta(t, 0.5, PolygonArea(squareVerts, triangle), 1e-12)

	assert.Zero(t, PolygonArea(squareVerts, []int{0, 1}))
}

func TestPolygonNormalFollowsWinding(t *testing.T) {
	ccw := PolygonNormal(squareVerts, []int{0, 1, 2, 3})
	require.InDelta(t, 1, ccw.Z, 1e-12)

	cw := PolygonNormal(squareVerts, []int{3, 2, 1, 0})
	require.InDelta(t, -1, cw.Z, 1e-12)
}

func TestPolygonCentroid(t *testing.T) {
	c := PolygonCentroid(squareVerts, []int{0, 1, 2, 3})
	require.InDelta(t, 0.5, c.X, 1e-12)
	require.InDelta(t, 0.5, c.Y, 1e-12)
	require.InDelta(t, 1, c.Z, 1e-12)
}

func TestMeshVolumeCube(t *testing.T) {
	verts := []Vec3{
		{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	}
	faces := [][]int{
		{0, 3, 2, 1}, {4, 5, 6, 7},
		{0, 1, 5, 4}, {1, 2, 6, 5},
		{2, 3, 7, 6}, {3, 0, 4, 7},
	}
	require.InDelta(t, 8, MeshVolume(verts, faces), 1e-12)

	// Orientation independent.
	reversed := make([][]int, len(faces))
	for i, f := range faces {
		r := make([]int, len(f))
		for j, v := range f {
			r[len(f)-1-j] = v
		}
		reversed[i] = r
	}
	require.InDelta(t, 8, MeshVolume(verts, reversed), 1e-12)
}

func TestEdgesFromFaces(t *testing.T) {
	faces := [][]int{
		{0, 1, 2},
		{2, 1, 3},
	}
	edges := EdgesFromFaces(faces)
	assert.Len(t, edges, 5)
	assert.Contains(t, edges, Edge{A: 1, B: 2})

	degenerate := EdgesFromFaces([][]int{{0, 0, 1}})
	assert.Len(t, degenerate, 1)
}

func TestAngleAroundAxisOrdersRing(t *testing.T) {
	axis := Vec3{0, 0, 1}
	ref := Vec3{1, 0, 0}

	// Points at 0°, 90°, 180°, 270° around z must come back equally
	// spaced in one consistent circular direction.
	pts := []Vec3{{1, 0, 0.5}, {0, 1, 0.5}, {-1, 0, 0.5}, {0, -1, 0.5}}
	angles := make([]float64, len(pts))
	for i, p := range pts {
		angles[i] = AngleAroundAxis(p, axis, ref)
	}
	for i := 1; i < len(angles); i++ {
		diff := math.Mod(angles[i-1]-angles[i]+2*math.Pi, 2*math.Pi)
		require.InDelta(t, math.Pi/2, diff, 1e-12)
	}

	// The axis component of p never affects the angle.
	require.InDelta(t,
		AngleAroundAxis(Vec3{1, 2, 0}, axis, ref),
		AngleAroundAxis(Vec3{1, 2, 9}, axis, ref), 1e-12)
}
