// Package solid implements the parametric convex-solid metrics engine:
// canonical Platonic and Archimedean definitions, the scaling/derivation
// engine that turns one edge length into a full metrics snapshot, the
// bidirectional property solver, the dual constructor, and payload assembly.
package solid

// Family distinguishes the supported uniform solid families.
type Family int

const (
	Platonic Family = iota
	Archimedean
)

func (f Family) String() string {
	switch f {
	case Platonic:
		return "platonic"
	case Archimedean:
		return "archimedean"
	default:
		return "unknown"
	}
}

// goldenRatio is φ = (1+√5)/2.
const goldenRatio = 1.6180339887498948482

// Descriptor is the data-only description of one solid kind. All dispatch
// over solid families happens on descriptor values; there is no per-solid
// type hierarchy.
type Descriptor struct {
	Key    string
	Name   string
	Family Family

	// Schläfli symbol {p,q} for Platonic solids; zero for Archimedean.
	SchlaefliP int
	SchlaefliQ int

	SymmetryGroup string
	SymmetryOrder int
	RotationOrder int

	DualName string

	// PackingDensity is the best-known packing fraction from the
	// literature; 0 when no established value is recorded.
	PackingDensity float64

	// GoldenFactor is φ for the icosahedral family and 1 elsewhere.
	GoldenFactor float64

	// CentrallySymmetric solids get a space diagonal (= 2R).
	CentrallySymmetric bool

	// Formulas holds closed-form display strings per property key.
	// Present for Platonic solids only.
	Formulas map[string]string
}

// Solid kind keys, used for lookup in the definition registry.
const (
	Tetrahedron            = "tetrahedron"
	Cube                   = "cube"
	Octahedron             = "octahedron"
	Dodecahedron           = "dodecahedron"
	Icosahedron            = "icosahedron"
	TruncatedTetrahedron   = "truncated_tetrahedron"
	Cuboctahedron          = "cuboctahedron"
	TruncatedCube          = "truncated_cube"
	TruncatedOctahedron    = "truncated_octahedron"
	Rhombicuboctahedron    = "rhombicuboctahedron"
	TruncatedCuboctahedron = "truncated_cuboctahedron"
	Icosidodecahedron      = "icosidodecahedron"
	TruncatedIcosahedron   = "truncated_icosahedron"
)

var descriptors = map[string]*Descriptor{
	Tetrahedron: {
		Key: Tetrahedron, Name: "Tetrahedron", Family: Platonic,
		SchlaefliP: 3, SchlaefliQ: 3,
		SymmetryGroup: "Td", SymmetryOrder: 24, RotationOrder: 12,
		DualName:       Tetrahedron,
		PackingDensity: 0.856347,
		GoldenFactor:   1,
		Formulas: map[string]string{
			KeyVolume:       "V = a³·√2/12",
			KeySurfaceArea:  "A = a²·√3",
			KeyInradius:     "r = a·√6/12",
			KeyMidradius:    "ρ = a·√2/4",
			KeyCircumradius: "R = a·√6/4",
		},
	},
	Cube: {
		Key: Cube, Name: "Cube", Family: Platonic,
		SchlaefliP: 4, SchlaefliQ: 3,
		SymmetryGroup: "Oh", SymmetryOrder: 48, RotationOrder: 24,
		DualName:           Octahedron,
		PackingDensity:     1,
		GoldenFactor:       1,
		CentrallySymmetric: true,
		Formulas: map[string]string{
			KeyVolume:       "V = a³",
			KeySurfaceArea:  "A = 6·a²",
			KeyInradius:     "r = a/2",
			KeyMidradius:    "ρ = a·√2/2",
			KeyCircumradius: "R = a·√3/2",
		},
	},
	Octahedron: {
		Key: Octahedron, Name: "Octahedron", Family: Platonic,
		SchlaefliP: 3, SchlaefliQ: 4,
		SymmetryGroup: "Oh", SymmetryOrder: 48, RotationOrder: 24,
		DualName:           Cube,
		PackingDensity:     0.947368,
		GoldenFactor:       1,
		CentrallySymmetric: true,
		Formulas: map[string]string{
			KeyVolume:       "V = a³·√2/3",
			KeySurfaceArea:  "A = 2·a²·√3",
			KeyInradius:     "r = a·√6/6",
			KeyMidradius:    "ρ = a/2",
			KeyCircumradius: "R = a·√2/2",
		},
	},
	Dodecahedron: {
		Key: Dodecahedron, Name: "Dodecahedron", Family: Platonic,
		SchlaefliP: 5, SchlaefliQ: 3,
		SymmetryGroup: "Ih", SymmetryOrder: 120, RotationOrder: 60,
		DualName:           Icosahedron,
		PackingDensity:     0.904508,
		GoldenFactor:       goldenRatio,
		CentrallySymmetric: true,
		Formulas: map[string]string{
			KeyVolume:       "V = a³·(15+7√5)/4",
			KeySurfaceArea:  "A = 3·a²·√(25+10√5)",
			KeyInradius:     "r = a·√(250+110√5)/20",
			KeyMidradius:    "ρ = a·(3+√5)/4",
			KeyCircumradius: "R = a·√3·(1+√5)/4",
		},
	},
	Icosahedron: {
		Key: Icosahedron, Name: "Icosahedron", Family: Platonic,
		SchlaefliP: 3, SchlaefliQ: 5,
		SymmetryGroup: "Ih", SymmetryOrder: 120, RotationOrder: 60,
		DualName:           Dodecahedron,
		PackingDensity:     0.836357,
		GoldenFactor:       goldenRatio,
		CentrallySymmetric: true,
		Formulas: map[string]string{
			KeyVolume:       "V = 5·a³·(3+√5)/12",
			KeySurfaceArea:  "A = 5·a²·√3",
			KeyInradius:     "r = a·√3·(3+√5)/12",
			KeyMidradius:    "ρ = a·(1+√5)/4",
			KeyCircumradius: "R = a·√(10+2√5)/4",
		},
	},

	TruncatedTetrahedron: {
		Key: TruncatedTetrahedron, Name: "Truncated Tetrahedron", Family: Archimedean,
		SymmetryGroup: "Td", SymmetryOrder: 24, RotationOrder: 12,
		DualName:       "triakis_tetrahedron",
		PackingDensity: 0.995192,
		GoldenFactor:   1,
	},
	Cuboctahedron: {
		Key: Cuboctahedron, Name: "Cuboctahedron", Family: Archimedean,
		SymmetryGroup: "Oh", SymmetryOrder: 48, RotationOrder: 24,
		DualName:           "rhombic_dodecahedron",
		PackingDensity:     0.918367,
		GoldenFactor:       1,
		CentrallySymmetric: true,
	},
	TruncatedCube: {
		Key: TruncatedCube, Name: "Truncated Cube", Family: Archimedean,
		SymmetryGroup: "Oh", SymmetryOrder: 48, RotationOrder: 24,
		DualName:           "triakis_octahedron",
		PackingDensity:     0.973747,
		GoldenFactor:       1,
		CentrallySymmetric: true,
	},
	TruncatedOctahedron: {
		Key: TruncatedOctahedron, Name: "Truncated Octahedron", Family: Archimedean,
		SymmetryGroup: "Oh", SymmetryOrder: 48, RotationOrder: 24,
		DualName:           "tetrakis_hexahedron",
		PackingDensity:     1,
		GoldenFactor:       1,
		CentrallySymmetric: true,
	},
	Rhombicuboctahedron: {
		Key: Rhombicuboctahedron, Name: "Rhombicuboctahedron", Family: Archimedean,
		SymmetryGroup: "Oh", SymmetryOrder: 48, RotationOrder: 24,
		DualName:           "deltoidal_icositetrahedron",
		PackingDensity:     0.875805,
		GoldenFactor:       1,
		CentrallySymmetric: true,
	},
	TruncatedCuboctahedron: {
		Key: TruncatedCuboctahedron, Name: "Truncated Cuboctahedron", Family: Archimedean,
		SymmetryGroup: "Oh", SymmetryOrder: 48, RotationOrder: 24,
		DualName:           "disdyakis_dodecahedron",
		PackingDensity:     0.849373,
		GoldenFactor:       1,
		CentrallySymmetric: true,
	},
	Icosidodecahedron: {
		Key: Icosidodecahedron, Name: "Icosidodecahedron", Family: Archimedean,
		SymmetryGroup: "Ih", SymmetryOrder: 120, RotationOrder: 60,
		DualName:           "rhombic_triacontahedron",
		PackingDensity:     0.864720,
		GoldenFactor:       goldenRatio,
		CentrallySymmetric: true,
	},
	TruncatedIcosahedron: {
		Key: TruncatedIcosahedron, Name: "Truncated Icosahedron", Family: Archimedean,
		SymmetryGroup: "Ih", SymmetryOrder: 120, RotationOrder: 60,
		DualName:           "pentakis_dodecahedron",
		PackingDensity:     0.784987,
		GoldenFactor:       goldenRatio,
		CentrallySymmetric: true,
	},
}

// Kinds returns the keys of every registered solid kind, Platonic solids
// first, each group in a stable order.
func Kinds() []string {
	return []string{
		Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron,
		TruncatedTetrahedron, Cuboctahedron, TruncatedCube,
		TruncatedOctahedron, Rhombicuboctahedron, TruncatedCuboctahedron,
		Icosidodecahedron, TruncatedIcosahedron,
	}
}

// DescriptorFor returns the descriptor for a kind, or nil if unknown.
func DescriptorFor(kind string) *Descriptor {
	return descriptors[kind]
}
