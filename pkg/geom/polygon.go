package geom

// Edge is an ordered pair of vertex indices, canonicalized so A < B.
type Edge struct {
	A int `json:"a"`
	B int `json:"b"`
}

// NewEdge returns the canonical form of the edge between vertex indices
// a and b.
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// PolygonArea returns the area of the face, fan-triangulated from its first
// vertex. Valid for planar faces that do not self-intersect; every canonical
// solid face satisfies that.
func PolygonArea(vertices []Vec3, face []int) float64 {
	if len(face) < 3 {
		return 0
	}
	v0 := vertices[face[0]]
	total := 0.0
	for i := 1; i < len(face)-1; i++ {
		e1 := vertices[face[i]].Sub(v0)
		e2 := vertices[face[i+1]].Sub(v0)
		total += e1.Cross(e2).Length() / 2
	}
	return total
}

// PolygonNormal returns the unit normal of the face, from the cross product
// of its first two edge vectors. The direction follows the face winding.
func PolygonNormal(vertices []Vec3, face []int) Vec3 {
	if len(face) < 3 {
		return Vec3{}
	}
	e1 := vertices[face[1]].Sub(vertices[face[0]])
	e2 := vertices[face[2]].Sub(vertices[face[0]])
	return e1.Cross(e2).Normalize()
}

// PolygonCentroid returns the arithmetic mean of the face's vertices.
func PolygonCentroid(vertices []Vec3, face []int) Vec3 {
	var c Vec3
	if len(face) == 0 {
		return c
	}
	for _, i := range face {
		c = c.Add(vertices[i])
	}
	return c.Scale(1 / float64(len(face)))
}

// MeshVolume returns the volume enclosed by the faces, computed by
// accumulating signed tetrahedra from the origin over each face's fan
// triangulation (the divergence-theorem formula). The absolute value makes
// the result independent of global winding orientation.
func MeshVolume(vertices []Vec3, faces [][]int) float64 {
	total := 0.0
	for _, face := range faces {
		if len(face) < 3 {
			continue
		}
		v0 := vertices[face[0]]
		for i := 1; i < len(face)-1; i++ {
			total += v0.Dot(vertices[face[i]].Cross(vertices[face[i+1]]))
		}
	}
	if total < 0 {
		total = -total
	}
	return total / 6
}

// EdgesFromFaces extracts the deduplicated edge set of the faces. Edges are
// canonicalized as (min, max) pairs; a face with a repeated adjacent vertex
// contributes no edge for that pair.
func EdgesFromFaces(faces [][]int) []Edge {
	seen := make(map[Edge]bool)
	var edges []Edge
	for _, face := range faces {
		n := len(face)
		for i := 0; i < n; i++ {
			a, b := face[i], face[(i+1)%n]
			if a == b {
				continue
			}
			e := NewEdge(a, b)
			if !seen[e] {
				seen[e] = true
				edges = append(edges, e)
			}
		}
	}
	return edges
}
