package solid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBuild(t *testing.T, kind string, edge float64) (*Solid, *Metrics) {
	t.Helper()
	s, err := New(kind)
	require.NoError(t, err)
	_, m, err := s.Build(edge)
	require.NoError(t, err)
	return s, m
}

func TestCubeConcrete(t *testing.T) {
	_, m := mustBuild(t, Cube, 2)

	require.InDelta(t, 24, m.SurfaceArea, 1e-9)
	require.InDelta(t, 8, m.Volume, 1e-9)
	require.InDelta(t, 1, m.Inradius, 1e-9)
	require.InDelta(t, math.Sqrt2, m.Midradius, 1e-9)
	require.InDelta(t, math.Sqrt(3), m.Circumradius, 1e-9)
	require.InDelta(t, 2*math.Sqrt2, m.FaceDiagonal, 1e-9)
	require.InDelta(t, 2*math.Sqrt(3), m.SpaceDiagonal, 1e-9)
	require.InDelta(t, 90, m.DihedralAngle, 1e-9)
	require.InDelta(t, math.Pi/2, m.SolidAngle, 1e-9)
	require.InDelta(t, 90, m.AngularDefect, 1e-9)
	assert.Equal(t, 6, m.FaceCount)
	assert.Equal(t, 12, m.EdgeCount)
	assert.Equal(t, 8, m.VertexCount)
	assert.Equal(t, 4, m.FaceSides)
	assert.Equal(t, 3, m.VertexValence)
}

func TestTetrahedronVolume(t *testing.T) {
	_, m := mustBuild(t, Tetrahedron, 1)
	require.InDelta(t, 1/(6*math.Sqrt2), m.Volume, 1e-9)
	require.InDelta(t, math.Acos(1.0/3.0)*180/math.Pi, m.DihedralAngle, 1e-6)
}

func TestPowerLawScaling(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(kind, func(t *testing.T) {
			_, m1 := mustBuild(t, kind, 1.3)
			_, m2 := mustBuild(t, kind, 2.6)

			require.InDelta(t, 2*m1.Inradius, m2.Inradius, 1e-9)
			require.InDelta(t, 2*m1.Midradius, m2.Midradius, 1e-9)
			require.InDelta(t, 2*m1.Circumradius, m2.Circumradius, 1e-9)
			require.InDelta(t, 4*m1.SurfaceArea, m2.SurfaceArea, 1e-8)
			require.InDelta(t, 8*m1.Volume, m2.Volume, 1e-8)
			require.InDelta(t, 16*m1.MomentOfInertiaShell, m2.MomentOfInertiaShell, 1e-6)
			require.InDelta(t, 32*m1.MomentOfInertiaSolid, m2.MomentOfInertiaSolid, 1e-6)
			require.InDelta(t, m1.SurfaceToVolume/2, m2.SurfaceToVolume, 1e-9)

			// Scale-free quantities must not move.
			require.InDelta(t, m1.Sphericity, m2.Sphericity, 1e-12)
			require.InDelta(t, m1.DihedralAngle, m2.DihedralAngle, 1e-12)
			require.InDelta(t, m1.SolidAngle, m2.SolidAngle, 1e-12)
		})
	}
}

func TestEulerCharacteristic(t *testing.T) {
	counts := map[string][3]int{ // faces, edges, vertices
		Tetrahedron:            {4, 6, 4},
		Cube:                   {6, 12, 8},
		Octahedron:             {8, 12, 6},
		Dodecahedron:           {12, 30, 20},
		Icosahedron:            {20, 30, 12},
		TruncatedTetrahedron:   {8, 18, 12},
		Cuboctahedron:          {14, 24, 12},
		TruncatedCube:          {14, 36, 24},
		TruncatedOctahedron:    {14, 36, 24},
		Rhombicuboctahedron:    {26, 48, 24},
		TruncatedCuboctahedron: {26, 72, 48},
		Icosidodecahedron:      {32, 60, 30},
		TruncatedIcosahedron:   {32, 90, 60},
	}

	for _, kind := range Kinds() {
		t.Run(kind, func(t *testing.T) {
			_, m := mustBuild(t, kind, 1)
			want, ok := counts[kind]
			require.True(t, ok)
			assert.Equal(t, want[0], m.FaceCount)
			assert.Equal(t, want[1], m.EdgeCount)
			assert.Equal(t, want[2], m.VertexCount)
			assert.Equal(t, 2, m.EulerCharacteristic)
			require.InDelta(t, 720, m.TotalAngularDefect, 1e-12)
		})
	}
}

func TestSphereOrdering(t *testing.T) {
	for _, kind := range Kinds() {
		for _, edge := range []float64{0.25, 1, 7.5} {
			_, m := mustBuild(t, kind, edge)
			assert.LessOrEqual(t, m.Inradius, m.Midradius, "%s edge %v", kind, edge)
			assert.LessOrEqual(t, m.Midradius, m.Circumradius, "%s edge %v", kind, edge)
			assert.Greater(t, m.Inradius, 0.0, "%s edge %v", kind, edge)
		}
	}
}

func TestVolumeRoundTrip(t *testing.T) {
	for _, kind := range Kinds() {
		s, _ := mustBuild(t, kind, 1)
		for _, v := range []float64{0.01, 1, 123.456} {
			require.True(t, s.SetProperty(KeyVolume, v), kind)
			require.InDelta(t, v, s.Metrics().Volume, v*1e-12, kind)
		}
	}
}

func TestSolveCubeVolume(t *testing.T) {
	s, _ := mustBuild(t, Cube, 1)
	require.True(t, s.SetProperty(KeyVolume, 64))
	require.InDelta(t, 4, s.Metrics().EdgeLength, 1e-12)
	require.InDelta(t, 96, s.Metrics().SurfaceArea, 1e-9)
}

func TestSetPropertyRejectsBadValues(t *testing.T) {
	for _, kind := range []string{Cube, Icosidodecahedron} {
		s, before := mustBuild(t, kind, 3)
		for _, v := range []float64{-1, 0, math.NaN(), math.Inf(1)} {
			require.False(t, s.SetProperty(KeyVolume, v), "%s volume=%v", kind, v)
		}
		require.False(t, s.SetProperty("no_such_property", 1))
		require.False(t, s.SetProperty(KeyDihedralAngle, 100))

		// A rejected set leaves the snapshot untouched.
		assert.Equal(t, before, s.Metrics())
	}
}

func TestBuildRejectsBadEdge(t *testing.T) {
	s, err := New(Octahedron)
	require.NoError(t, err)
	for _, edge := range []float64{0, -2, math.NaN(), math.Inf(1)} {
		_, _, err := s.Build(edge)
		require.ErrorIs(t, err, ErrNonPositiveEdge)
	}
	assert.Nil(t, s.Metrics())
}

func TestNewUnknownKind(t *testing.T) {
	_, err := New("hexahedroid")
	require.ErrorIs(t, err, ErrUnknownSolid)
}

func TestClear(t *testing.T) {
	s, _ := mustBuild(t, Dodecahedron, 2)
	require.NotNil(t, s.Metrics())
	s.Clear()
	assert.Nil(t, s.Metrics())
	assert.Nil(t, s.Metadata())
	assert.Nil(t, s.Properties())
}

func TestDualCounts(t *testing.T) {
	for _, kind := range Kinds() {
		s, err := New(kind)
		require.NoError(t, err)
		p, m, err := s.BuildWithDual(1.5)
		require.NoError(t, err)
		require.NotNil(t, p.Dual)

		d := p.Dual
		assert.Equal(t, m.VertexCount, len(d.Faces), kind)
		assert.Equal(t, m.FaceCount, len(d.Vertices), kind)
		assert.Equal(t, m.EdgeCount, len(d.Edges), kind)
		assert.Equal(t, s.desc.DualName, d.Name, kind)

		// Dual vertices sit on the unit sphere.
		for _, v := range d.Vertices {
			require.InDelta(t, 1, v.Length(), 1e-9, kind)
		}
	}
}

func TestMixedFaceAreaConsistency(t *testing.T) {
	for _, kind := range []string{
		TruncatedTetrahedron, Cuboctahedron, TruncatedCube,
		TruncatedOctahedron, Rhombicuboctahedron,
		TruncatedCuboctahedron, Icosidodecahedron, TruncatedIcosahedron,
	} {
		_, m := mustBuild(t, kind, 2.5)
		meta := m.Metadata()

		sum := 0.0
		for n, count := range m.FaceCountsBySides {
			single := meta[areaSingleKey(n)]
			total := meta[areaTotalKey(n)]
			require.InDelta(t, single*float64(count), total, 1e-9, kind)
			sum += total
		}
		require.InDelta(t, m.SurfaceArea, sum, 1e-8, kind)
	}
}

func TestMixedFaceAreaSolving(t *testing.T) {
	s, _ := mustBuild(t, Cuboctahedron, 1)

	// Eight triangles and six squares share the one edge length; setting a
	// per-type area drives everything else through it.
	require.True(t, s.SetProperty(areaSingleKey(4), 9))
	require.InDelta(t, 3, s.Metrics().EdgeLength, 1e-12)

	require.True(t, s.SetProperty(areaTotalKey(3), 8*math.Sqrt(3)/4))
	require.InDelta(t, 1, s.Metrics().EdgeLength, 1e-12)
}

func TestPayloadShape(t *testing.T) {
	s, _ := mustBuild(t, Cube, 2)
	p, err := s.PayloadAt(2)
	require.NoError(t, err)

	assert.Equal(t, Cube, p.Kind)
	assert.Equal(t, "Cube", p.Name)
	assert.Len(t, p.Vertices, 8)
	assert.Len(t, p.Edges, 12)
	assert.Len(t, p.Faces, 6)
	assert.Nil(t, p.Dual)
	require.InDelta(t, 8, p.Metadata[KeyVolume], 1e-9)
	require.NotEmpty(t, p.Labels)

	// Scaled vertices keep the requested edge length.
	e := p.Edges[0]
	require.InDelta(t, 2, p.Vertices[e.B].Sub(p.Vertices[e.A]).Length(), 1e-9)
}

func TestPropertiesList(t *testing.T) {
	s, _ := mustBuild(t, Cube, 2)
	props := s.Properties()
	require.NotEmpty(t, props)

	byKey := make(map[string]Property, len(props))
	for _, p := range props {
		byKey[p.Key] = p
	}

	require.Contains(t, byKey, KeyVolume)
	assert.True(t, byKey[KeyVolume].Editable)
	assert.InDelta(t, 8, byKey[KeyVolume].Value, 1e-9)
	assert.NotEmpty(t, byKey[KeyVolume].Formula)

	require.Contains(t, byKey, KeyEulerCharacteristic)
	assert.False(t, byKey[KeyEulerCharacteristic].Editable)

	// Edge length heads the list.
	assert.Equal(t, KeyEdgeLength, props[0].Key)
}

func TestArchimedeanProperties(t *testing.T) {
	s, _ := mustBuild(t, TruncatedIcosahedron, 1)
	props := s.Properties()

	byKey := make(map[string]Property, len(props))
	for _, p := range props {
		byKey[p.Key] = p
	}

	// Mixed-face solids expose per-type area pairs instead of face_area.
	require.NotContains(t, byKey, KeyFaceArea)
	for _, n := range []int{5, 6} {
		require.Contains(t, byKey, areaSingleKey(n))
		require.Contains(t, byKey, areaTotalKey(n))
		assert.True(t, byKey[areaSingleKey(n)].Editable)
	}

	require.Contains(t, byKey, dihedralKey(5, 6))
	require.Contains(t, byKey, dihedralKey(6, 6))
	assert.False(t, byKey[dihedralKey(5, 6)].Editable)
}

func TestMetadataGoldenFactor(t *testing.T) {
	_, cube := mustBuild(t, Cube, 1)
	require.InDelta(t, 1, cube.GoldenFactor, 1e-12)

	_, ico := mustBuild(t, Icosahedron, 1)
	require.InDelta(t, goldenRatio, ico.GoldenFactor, 1e-12)

	_, ball := mustBuild(t, TruncatedIcosahedron, 1)
	require.InDelta(t, goldenRatio, ball.GoldenFactor, 1e-12)
}
