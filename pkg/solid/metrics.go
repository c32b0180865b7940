package solid

import (
	"fmt"
	"math"
)

// Canonical property keys. Per-face-type keys (area_<n>_single,
// area_<n>_total, dihedral_<p>_<q>) are generated from the face-side
// histogram at construction time.
const (
	KeyEdgeLength               = "edge_length"
	KeyVolume                   = "volume"
	KeySurfaceArea              = "surface_area"
	KeyFaceArea                 = "face_area"
	KeyFaceDiagonal             = "face_diagonal"
	KeySpaceDiagonal            = "space_diagonal"
	KeyInradius                 = "inradius"
	KeyMidradius                = "midradius"
	KeyCircumradius             = "circumradius"
	KeyInradiusCircumference    = "inradius_circumference"
	KeyMidradiusCircumference   = "midradius_circumference"
	KeyCircumradiusCircumference = "circumradius_circumference"
	KeyFaceInradius             = "face_inradius"
	KeyFaceCircumradius         = "face_circumradius"
	KeyInsphereArea             = "insphere_area"
	KeyInsphereVolume           = "insphere_volume"
	KeyMidsphereArea            = "midsphere_area"
	KeyMidsphereVolume          = "midsphere_volume"
	KeyCircumsphereArea         = "circumsphere_area"
	KeyCircumsphereVolume       = "circumsphere_volume"
	KeySphericity               = "sphericity"
	KeyIsoperimetricQuotient    = "isoperimetric_quotient"
	KeySurfaceToVolume          = "surface_to_volume"
	KeyInertiaSolid             = "moment_of_inertia_solid"
	KeyInertiaShell             = "moment_of_inertia_shell"
	KeyDihedralAngle            = "dihedral_angle"
	KeySolidAngle               = "solid_angle"
	KeyAngularDefect            = "angular_defect"
	KeyTotalAngularDefect       = "total_angular_defect"
	KeyEulerCharacteristic      = "euler_characteristic"
	KeyPackingDensity           = "packing_density"
	KeySymmetryOrder            = "symmetry_order"
	KeyRotationOrder            = "rotation_order"
	KeyGoldenFactor             = "golden_factor"
	KeyFaceCount                = "face_count"
	KeyEdgeCount                = "edge_count"
	KeyVertexCount              = "vertex_count"
	KeyFaceSides                = "face_sides"
	KeyVertexValence            = "vertex_valence"
)

// areaSingleKey is the property key for the area of one n-gon face.
func areaSingleKey(n int) string { return fmt.Sprintf("area_%d_single", n) }

// areaTotalKey is the property key for the combined area of all n-gon faces.
func areaTotalKey(n int) string { return fmt.Sprintf("area_%d_total", n) }

// dihedralKey is the property key for the dihedral angle between a p-gon
// and a q-gon face.
func dihedralKey(p, q int) string { return fmt.Sprintf("dihedral_%d_%d", p, q) }

// Metrics is a frozen snapshot of every derived property at one edge
// length. Every value is a pure deterministic function of the edge length
// (plus, for per-face-type entries, the face type queried). Angles are in
// degrees except SolidAngle, which is in steradians.
type Metrics struct {
	Kind   string
	Name   string
	Family Family

	EdgeLength  float64
	FaceArea    float64
	SurfaceArea float64
	Volume      float64

	// FaceDiagonal is the longest face diagonal (single-face-type solids
	// with at least 4 sides per face); 0 when not applicable.
	FaceDiagonal float64
	// SpaceDiagonal is the vertex-to-antipode distance for centrally
	// symmetric solids; 0 when not applicable.
	SpaceDiagonal float64

	Inradius     float64
	Midradius    float64
	Circumradius float64

	InradiusCircumference     float64
	MidradiusCircumference    float64
	CircumradiusCircumference float64

	FaceInradius     float64
	FaceCircumradius float64

	InsphereArea       float64
	InsphereVolume     float64
	MidsphereArea      float64
	MidsphereVolume    float64
	CircumsphereArea   float64
	CircumsphereVolume float64

	Sphericity            float64
	IsoperimetricQuotient float64
	SurfaceToVolume       float64

	MomentOfInertiaSolid float64
	MomentOfInertiaShell float64

	DihedralAngle      float64
	SolidAngle         float64
	AngularDefect      float64
	TotalAngularDefect float64

	EulerCharacteristic int
	PackingDensity      float64

	SymmetryGroup string
	SymmetryOrder int
	RotationOrder int
	DualName      string
	GoldenFactor  float64

	FaceCount   int
	EdgeCount   int
	VertexCount int

	// FaceSides is the side count per face for single-face-type solids;
	// 0 for mixed-face (Archimedean) solids.
	FaceSides     int
	VertexValence int

	// FaceAreasBySides maps n-gon size to the area of one such face.
	FaceAreasBySides map[int]float64
	// FaceCountsBySides maps n-gon size to how many faces have it.
	FaceCountsBySides map[int]int
	// DihedralsByPair maps sorted adjacent-face-size pairs to their
	// dihedral angle in degrees.
	DihedralsByPair map[[2]int]float64
}

// deriveMetrics builds a full snapshot from the canonical definition at the
// given edge length. The solid at edge length a is the uniform dilation of
// the canonical solid by scale = a / baseEdge, so dimension-k metrics scale
// as scale^k; the rest are closed forms or per-kind constants.
func deriveMetrics(def *Definition, desc *Descriptor, edge float64) *Metrics {
	scale := edge / def.BaseEdge
	s2 := scale * scale
	s3 := s2 * scale
	s4 := s3 * scale
	s5 := s4 * scale

	m := &Metrics{
		Kind:   def.Kind,
		Name:   desc.Name,
		Family: desc.Family,

		EdgeLength:  edge,
		FaceArea:    def.BaseFaceArea * s2,
		SurfaceArea: def.BaseSurfaceArea * s2,
		Volume:      def.BaseVolume * s3,

		Inradius:     def.BaseInradius * scale,
		Midradius:    def.BaseMidradius * scale,
		Circumradius: def.BaseCircumradius * scale,

		MomentOfInertiaSolid: def.BaseInertiaSolid * s5,
		MomentOfInertiaShell: def.BaseInertiaShell * s4,

		SolidAngle:         def.SolidAngle,
		AngularDefect:      degrees(def.AngularDefect),
		TotalAngularDefect: 720,

		EulerCharacteristic: len(def.Vertices) - len(def.Edges) + len(def.Faces),
		PackingDensity:      desc.PackingDensity,

		SymmetryGroup: desc.SymmetryGroup,
		SymmetryOrder: desc.SymmetryOrder,
		RotationOrder: desc.RotationOrder,
		DualName:      desc.DualName,
		GoldenFactor:  desc.GoldenFactor,

		FaceCount:   len(def.Faces),
		EdgeCount:   len(def.Edges),
		VertexCount: len(def.Vertices),

		VertexValence: def.VertexValence,
	}

	m.InradiusCircumference = 2 * math.Pi * m.Inradius
	m.MidradiusCircumference = 2 * math.Pi * m.Midradius
	m.CircumradiusCircumference = 2 * math.Pi * m.Circumradius

	m.InsphereArea = sphereArea(m.Inradius)
	m.InsphereVolume = sphereVolume(m.Inradius)
	m.MidsphereArea = sphereArea(m.Midradius)
	m.MidsphereVolume = sphereVolume(m.Midradius)
	m.CircumsphereArea = sphereArea(m.Circumradius)
	m.CircumsphereVolume = sphereVolume(m.Circumradius)

	m.Sphericity = math.Cbrt(math.Pi) * math.Pow(6*m.Volume, 2.0/3.0) / m.SurfaceArea
	m.IsoperimetricQuotient = 36 * math.Pi * m.Volume * m.Volume / (m.SurfaceArea * m.SurfaceArea * m.SurfaceArea)
	m.SurfaceToVolume = m.SurfaceArea / m.Volume

	// Face polygon metrics use the smallest face type for mixed-face
	// solids; per-type areas are carried alongside.
	n := smallestFaceType(def.FaceSides)
	m.FaceInradius = faceInradius(edge, n)
	m.FaceCircumradius = faceCircumradius(edge, n)

	if len(def.FaceSides) == 1 {
		m.FaceSides = n
		if n >= 4 {
			m.FaceDiagonal = 2 * edge * math.Cos(math.Pi/float64(n))
		}
	}
	if desc.CentrallySymmetric {
		m.SpaceDiagonal = 2 * m.Circumradius
	}

	m.FaceAreasBySides = make(map[int]float64, len(def.FaceSides))
	m.FaceCountsBySides = make(map[int]int, len(def.FaceSides))
	for sidesN, count := range def.FaceSides {
		m.FaceAreasBySides[sidesN] = def.BaseFaceAreaBySides[sidesN] * s2
		m.FaceCountsBySides[sidesN] = count
	}

	m.DihedralsByPair = make(map[[2]int]float64, len(def.Dihedrals))
	for pair, rad := range def.Dihedrals {
		m.DihedralsByPair[pair] = degrees(rad)
	}
	pairs := dihedralPairs(def.Dihedrals)
	m.DihedralAngle = degrees(def.Dihedrals[pairs[0]])

	return m
}

// Metadata flattens the snapshot into a string-keyed numeric map, the form
// payload consumers receive.
func (m *Metrics) Metadata() map[string]float64 {
	meta := map[string]float64{
		KeyEdgeLength:  m.EdgeLength,
		KeyFaceArea:    m.FaceArea,
		KeySurfaceArea: m.SurfaceArea,
		KeyVolume:      m.Volume,

		KeyInradius:     m.Inradius,
		KeyMidradius:    m.Midradius,
		KeyCircumradius: m.Circumradius,

		KeyInradiusCircumference:     m.InradiusCircumference,
		KeyMidradiusCircumference:    m.MidradiusCircumference,
		KeyCircumradiusCircumference: m.CircumradiusCircumference,

		KeyFaceInradius:     m.FaceInradius,
		KeyFaceCircumradius: m.FaceCircumradius,

		KeyInsphereArea:       m.InsphereArea,
		KeyInsphereVolume:     m.InsphereVolume,
		KeyMidsphereArea:      m.MidsphereArea,
		KeyMidsphereVolume:    m.MidsphereVolume,
		KeyCircumsphereArea:   m.CircumsphereArea,
		KeyCircumsphereVolume: m.CircumsphereVolume,

		KeySphericity:            m.Sphericity,
		KeyIsoperimetricQuotient: m.IsoperimetricQuotient,
		KeySurfaceToVolume:       m.SurfaceToVolume,

		KeyInertiaSolid: m.MomentOfInertiaSolid,
		KeyInertiaShell: m.MomentOfInertiaShell,

		KeyDihedralAngle:      m.DihedralAngle,
		KeySolidAngle:         m.SolidAngle,
		KeyAngularDefect:      m.AngularDefect,
		KeyTotalAngularDefect: m.TotalAngularDefect,

		KeyEulerCharacteristic: float64(m.EulerCharacteristic),
		KeyPackingDensity:      m.PackingDensity,
		KeySymmetryOrder:       float64(m.SymmetryOrder),
		KeyRotationOrder:       float64(m.RotationOrder),
		KeyGoldenFactor:        m.GoldenFactor,

		KeyFaceCount:     float64(m.FaceCount),
		KeyEdgeCount:     float64(m.EdgeCount),
		KeyVertexCount:   float64(m.VertexCount),
		KeyVertexValence: float64(m.VertexValence),
	}

	if m.FaceSides != 0 {
		meta[KeyFaceSides] = float64(m.FaceSides)
	}
	if m.FaceDiagonal != 0 {
		meta[KeyFaceDiagonal] = m.FaceDiagonal
	}
	if m.SpaceDiagonal != 0 {
		meta[KeySpaceDiagonal] = m.SpaceDiagonal
	}

	for n, area := range m.FaceAreasBySides {
		meta[areaSingleKey(n)] = area
		meta[areaTotalKey(n)] = area * float64(m.FaceCountsBySides[n])
	}
	for pair, deg := range m.DihedralsByPair {
		meta[dihedralKey(pair[0], pair[1])] = deg
	}
	return meta
}

// faceInradius is the apothem of a regular n-gon with side a.
func faceInradius(a float64, n int) float64 {
	return a / (2 * math.Tan(math.Pi/float64(n)))
}

// faceCircumradius is the circumradius of a regular n-gon with side a.
func faceCircumradius(a float64, n int) float64 {
	return a / (2 * math.Sin(math.Pi/float64(n)))
}

func sphereArea(r float64) float64   { return 4 * math.Pi * r * r }
func sphereVolume(r float64) float64 { return 4.0 / 3.0 * math.Pi * r * r * r }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

func smallestFaceType(sides map[int]int) int {
	min := 0
	for n := range sides {
		if min == 0 || n < min {
			min = n
		}
	}
	return min
}
