package solid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAreaKey(t *testing.T) {
	tests := []struct {
		key   string
		n     int
		total bool
		ok    bool
	}{
		{"area_3_single", 3, false, true},
		{"area_10_total", 10, true, true},
		{"area_2_single", 0, false, false},
		{"area_x_single", 0, false, false},
		{"area_4_half", 0, false, false},
		{"area_4", 0, false, false},
		{"surface_area", 0, false, false},
	}
	for _, tt := range tests {
		n, total, ok := parseAreaKey(tt.key)
		assert.Equal(t, tt.ok, ok, tt.key)
		if tt.ok {
			assert.Equal(t, tt.n, n, tt.key)
			assert.Equal(t, tt.total, total, tt.key)
		}
	}
}

func TestSolveEdgePowers(t *testing.T) {
	def, err := DefinitionFor(Cube)
	require.NoError(t, err)

	// Cube base edge is 2 (vertices at ±1).
	tests := []struct {
		key   string
		value float64
		edge  float64
	}{
		{KeyEdgeLength, 5, 5},
		{KeyVolume, 64, 4},
		{KeySurfaceArea, 54, 3},
		{KeyInradius, 3, 6},
		{KeyCircumradius, math.Sqrt(3), 2},
		{KeySpaceDiagonal, 2 * math.Sqrt(3), 2},
		{KeyFaceDiagonal, math.Sqrt2, 1},
		{KeySurfaceToVolume, 6, 1},
		{areaSingleKey(4), 16, 4},
		{areaTotalKey(4), 96, 4},
	}
	for _, tt := range tests {
		edge, ok := solveEdge(def, tt.key, tt.value)
		require.True(t, ok, tt.key)
		require.InDelta(t, tt.edge, edge, 1e-9, tt.key)
	}
}

func TestSolveEdgeRejects(t *testing.T) {
	def, err := DefinitionFor(Cube)
	require.NoError(t, err)

	for _, tt := range []struct {
		key   string
		value float64
	}{
		{KeyVolume, 0},
		{KeyVolume, -8},
		{KeyVolume, math.NaN()},
		{KeyVolume, math.Inf(1)},
		{KeyDihedralAngle, 90},
		{KeyEulerCharacteristic, 2},
		{KeySolidAngle, 1},
		{areaSingleKey(3), 1}, // cube has no triangular faces
		{"bogus", 1},
	} {
		_, ok := solveEdge(def, tt.key, tt.value)
		assert.False(t, ok, "%s=%v", tt.key, tt.value)
	}
}

func TestSolveInertiaRoundTrip(t *testing.T) {
	for _, kind := range []string{Tetrahedron, Rhombicuboctahedron} {
		s, _ := mustBuild(t, kind, 1)
		for _, key := range []string{KeyInertiaSolid, KeyInertiaShell} {
			target := s.Metadata()[key] * 7
			require.True(t, s.SetProperty(key, target), key)
			require.InDelta(t, target, s.Metadata()[key], target*1e-9, key)
		}
	}
}
