package solid

import (
	"math"
	"sort"

	"github.com/tetrakis/solidlab/pkg/geom"
)

// dihedralAngles computes the interior dihedral angle along each edge and
// groups the results by the sorted (p,q) pair of adjacent face sizes. For a
// uniform solid every edge with the same face-size pair has the same angle.
func dihedralAngles(vertices []geom.Vec3, faces [][]int) map[[2]int]float64 {
	normals := make([]geom.Vec3, len(faces))
	for i, face := range faces {
		n := geom.PolygonNormal(vertices, face)
		if n.Dot(geom.PolygonCentroid(vertices, face)) < 0 {
			n = n.Scale(-1)
		}
		normals[i] = n
	}

	edgeFaces := make(map[geom.Edge][2]int)
	edgeSeen := make(map[geom.Edge]int)
	for fi, face := range faces {
		n := len(face)
		for i := 0; i < n; i++ {
			e := geom.NewEdge(face[i], face[(i+1)%n])
			pair := edgeFaces[e]
			pair[edgeSeen[e]] = fi
			edgeFaces[e] = pair
			edgeSeen[e]++
		}
	}

	out := make(map[[2]int]float64)
	for e, pair := range edgeFaces {
		if edgeSeen[e] != 2 {
			continue
		}
		f1, f2 := pair[0], pair[1]
		p, q := len(faces[f1]), len(faces[f2])
		if p > q {
			p, q = q, p
		}
		key := [2]int{p, q}
		if _, ok := out[key]; ok {
			continue
		}
		cos := normals[f1].Dot(normals[f2])
		cos = math.Max(-1, math.Min(1, cos))
		out[key] = math.Pi - math.Acos(cos)
	}
	return out
}

// dihedralPairs returns the face-size pairs in ascending order.
func dihedralPairs(dihedrals map[[2]int]float64) [][2]int {
	pairs := make([][2]int, 0, len(dihedrals))
	for p := range dihedrals {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})
	return pairs
}

// solidAngleAtVertex computes the solid angle subtended by the polyhedron
// at one of its vertices, by fanning the ordered vertex figure into
// spherical triangles (Van Oosterom–Strackee).
func solidAngleAtVertex(vertices []geom.Vec3, faces [][]int, vi int) float64 {
	nbrSet := make(map[int]bool)
	for _, face := range faces {
		n := len(face)
		for i, v := range face {
			if v == vi {
				nbrSet[face[(i+n-1)%n]] = true
				nbrSet[face[(i+1)%n]] = true
			}
		}
	}
	nbrs := make([]int, 0, len(nbrSet))
	for v := range nbrSet {
		nbrs = append(nbrs, v)
	}
	sort.Ints(nbrs)

	v0 := vertices[vi]
	dirs := make([]geom.Vec3, len(nbrs))
	for i, v := range nbrs {
		dirs[i] = vertices[v].Sub(v0).Normalize()
	}

	// Order the edge directions around the inward vertex axis so the fan
	// triangulation covers the cone exactly once.
	axis := v0.Normalize().Scale(-1)
	ref := dirs[0]
	sort.SliceStable(dirs, func(i, j int) bool {
		return geom.AngleAroundAxis(dirs[i], axis, ref) < geom.AngleAroundAxis(dirs[j], axis, ref)
	})

	total := 0.0
	a := dirs[0]
	for i := 1; i < len(dirs)-1; i++ {
		b, c := dirs[i], dirs[i+1]
		det := math.Abs(a.Dot(b.Cross(c)))
		denom := 1 + a.Dot(b) + a.Dot(c) + b.Dot(c)
		total += math.Abs(2 * math.Atan2(det, denom))
	}
	return total
}

// angularDefectAtVertex is 2π minus the sum of the interior face angles
// meeting at the vertex. The faces are regular, so each contributes
// (n-2)·π/n.
func angularDefectAtVertex(faces [][]int, vi int) float64 {
	defect := 2 * math.Pi
	for _, face := range faces {
		for _, v := range face {
			if v == vi {
				n := float64(len(face))
				defect -= (n - 2) * math.Pi / n
				break
			}
		}
	}
	return defect
}
