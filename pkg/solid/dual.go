package solid

import (
	"sort"

	"github.com/tetrakis/solidlab/pkg/geom"
)

// buildDual constructs the reciprocal polyhedron of a built solid. Each
// primal face contributes one dual vertex, its outward unit normal on the
// unit sphere. Each primal vertex contributes one dual face, wound around
// the vertex direction. Face count and vertex count swap, edge count is
// preserved.
func buildDual(vertices []geom.Vec3, faces [][]int) ([]geom.Vec3, [][]int) {
	dualVerts := make([]geom.Vec3, len(faces))
	for i, face := range faces {
		n := geom.PolygonNormal(vertices, face)
		c := geom.PolygonCentroid(vertices, face)
		// Inconsistent input winding would point the normal inward.
		if n.Dot(c) < 0 {
			n = n.Scale(-1)
		}
		dualVerts[i] = n
	}

	// Faces incident to each primal vertex, in input order.
	incident := make([][]int, len(vertices))
	for fi, face := range faces {
		for _, vi := range face {
			incident[vi] = append(incident[vi], fi)
		}
	}

	dualFaces := make([][]int, 0, len(vertices))
	for vi, ring := range incident {
		if len(ring) < 3 {
			continue
		}
		axis := vertices[vi].Normalize()
		ref := dualVerts[ring[0]]
		face := append([]int(nil), ring...)
		sort.SliceStable(face, func(a, b int) bool {
			return geom.AngleAroundAxis(dualVerts[face[a]], axis, ref) <
				geom.AngleAroundAxis(dualVerts[face[b]], axis, ref)
		})
		dualFaces = append(dualFaces, face)
	}
	return dualVerts, dualFaces
}
