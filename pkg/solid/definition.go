package solid

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tetrakis/solidlab/pkg/geom"
)

// ErrUnknownSolid is returned when a kind has no registered geometry.
var ErrUnknownSolid = errors.New("unknown solid kind")

// Definition is the finalized canonical geometry of one solid kind plus
// every base quantity the derivation engine scales from. Immutable once
// built; built once per kind and cached process-wide.
type Definition struct {
	Kind     string
	Vertices []geom.Vec3
	Faces    [][]int
	Edges    []geom.Edge

	BaseEdge        float64
	BaseFaceArea    float64 // face 0; representative for single-face-type solids
	BaseSurfaceArea float64
	BaseVolume      float64

	// FaceSides is the n-gon size histogram: sides -> face count.
	FaceSides map[int]int

	BaseInradius     float64 // min face-plane distance
	BaseMidradius    float64 // perpendicular distance to edge 0
	BaseCircumradius float64 // vertex distance

	// BaseFaceAreaBySides holds the area of one n-gon face per face type.
	BaseFaceAreaBySides map[int]float64

	// Dihedrals maps a sorted adjacent-face-size pair to the interior
	// dihedral angle along their shared edge, in radians.
	Dihedrals map[[2]int]float64

	SolidAngle    float64 // steradians subtended at a vertex
	AngularDefect float64 // radians at a vertex
	VertexValence int

	// Moments of inertia about an axis through the centroid, at base
	// scale: unit density over the volume (scales a^5) and unit surface
	// density over the faces (scales a^4).
	BaseInertiaSolid float64
	BaseInertiaShell float64

	// baseMeta caches the metadata map of the metrics snapshot at
	// BaseEdge; the solver inverts properties against these values.
	baseMeta map[string]float64
}

var (
	registryMu sync.Mutex
	registry   = make(map[string]*Definition)
)

// DefinitionFor returns the cached definition for a kind, building it on
// first use. Building is a pure function of the kind, so the lock only
// bounds duplicated work; a recomputation race would be harmless.
func DefinitionFor(kind string) (*Definition, error) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if def, ok := registry[kind]; ok {
		return def, nil
	}
	def, err := buildDefinition(kind)
	if err != nil {
		return nil, err
	}
	registry[kind] = def
	return def, nil
}

func buildDefinition(kind string) (*Definition, error) {
	desc := DescriptorFor(kind)
	if desc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSolid, kind)
	}

	var vertices []geom.Vec3
	var faces [][]int
	switch desc.Family {
	case Platonic:
		pm, ok := platonicMeshes[kind]
		if !ok {
			return nil, fmt.Errorf("%w: no canonical mesh for %q", ErrUnknownSolid, kind)
		}
		vertices, faces = pm.vertices, pm.faces
	case Archimedean:
		var err error
		vertices, faces, err = loadArchimedean(kind)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSolid, kind)
	}

	def := finalize(kind, vertices, faces)
	def.baseMeta = deriveMetrics(def, desc, def.BaseEdge).Metadata()
	return def, nil
}

// finalize computes every base quantity from the canonical geometry. The
// solids are uniform, so the first edge and first face are representative
// wherever a single value is recorded.
func finalize(kind string, vertices []geom.Vec3, faces [][]int) *Definition {
	edges := geom.EdgesFromFaces(faces)

	e0 := edges[0]
	baseEdge := vertices[e0.B].Sub(vertices[e0.A]).Length()

	surface := 0.0
	sides := make(map[int]int)
	areaBySides := make(map[int]float64)
	inradius := 0.0
	for i, face := range faces {
		a := geom.PolygonArea(vertices, face)
		surface += a
		n := len(face)
		sides[n]++
		if _, ok := areaBySides[n]; !ok {
			areaBySides[n] = a
		}
		d := facePlaneDistance(vertices, face)
		if i == 0 || d < inradius {
			inradius = d
		}
	}

	def := &Definition{
		Kind:                kind,
		Vertices:            vertices,
		Faces:               faces,
		Edges:               edges,
		BaseEdge:            baseEdge,
		BaseFaceArea:        geom.PolygonArea(vertices, faces[0]),
		BaseSurfaceArea:     surface,
		BaseVolume:          geom.MeshVolume(vertices, faces),
		FaceSides:           sides,
		BaseInradius:        inradius,
		BaseMidradius:       edgeDistance(vertices, e0),
		BaseCircumradius:    vertices[0].Length(),
		BaseFaceAreaBySides: areaBySides,
		Dihedrals:           dihedralAngles(vertices, faces),
		SolidAngle:          solidAngleAtVertex(vertices, faces, 0),
		AngularDefect:       angularDefectAtVertex(faces, 0),
		VertexValence:       vertexValence(edges, 0),
		BaseInertiaSolid:    solidInertia(vertices, faces),
		BaseInertiaShell:    shellInertia(vertices, faces),
	}
	return def
}

// facePlaneDistance is the distance from the origin to the face's plane.
func facePlaneDistance(vertices []geom.Vec3, face []int) float64 {
	n := geom.PolygonNormal(vertices, face)
	d := n.Dot(vertices[face[0]])
	if d < 0 {
		d = -d
	}
	return d
}

// edgeDistance is the perpendicular distance from the origin to the line
// carrying the edge. For uniform solids this is the midsphere radius.
func edgeDistance(vertices []geom.Vec3, e geom.Edge) float64 {
	a := vertices[e.A]
	d := vertices[e.B].Sub(a)
	return a.Cross(d).Length() / d.Length()
}

func vertexValence(edges []geom.Edge, vi int) int {
	n := 0
	for _, e := range edges {
		if e.A == vi || e.B == vi {
			n++
		}
	}
	return n
}
