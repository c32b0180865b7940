package solid

import (
	"fmt"
	"math"
	"sort"

	"github.com/tetrakis/solidlab/pkg/geom"
)

// Archimedean geometry is table-driven: each entry lists coordinate seed
// tuples plus the permutation/sign expansion that generates the vertex set,
// and its faces as unordered vertex index sets into that expansion order.
// Faces are wound into valid outward windings at load time.

// permutation orders used by the expansion. The vertex order produced by
// expandSeeds is part of the data contract with the face tables below, so
// these lists must not be reordered.
var (
	allPerms    = [][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	cyclicPerms = [][3]int{{0, 1, 2}, {1, 2, 0}, {2, 0, 1}}
)

// archimedeanMesh is one table entry.
type archimedeanMesh struct {
	seeds     []geom.Vec3
	perms     [][3]int
	evenSigns bool // keep only sign combinations with an even number of minuses
	faces     [][]int
}

// expandSeeds generates the vertex set of a table entry: every permutation
// of every seed under every admissible sign combination, deduplicated in
// first-seen order.
func expandSeeds(m archimedeanMesh) []geom.Vec3 {
	var verts []geom.Vec3
	seen := make(map[[3]int64]bool)
	signs := []float64{1, -1}
	for _, seed := range m.seeds {
		s := [3]float64{seed.X, seed.Y, seed.Z}
		for _, p := range m.perms {
			w := [3]float64{s[p[0]], s[p[1]], s[p[2]]}
			for _, sx := range signs {
				for _, sy := range signs {
					for _, sz := range signs {
						if m.evenSigns && minusCount(sx, sy, sz)%2 == 1 {
							continue
						}
						v := geom.Vec3{X: sx * w[0], Y: sy * w[1], Z: sz * w[2]}
						k := quantize(v)
						if !seen[k] {
							seen[k] = true
							verts = append(verts, v)
						}
					}
				}
			}
		}
	}
	return verts
}

func minusCount(s ...float64) int {
	n := 0
	for _, v := range s {
		if v < 0 {
			n++
		}
	}
	return n
}

// quantize maps a vertex to a dedup key, collapsing -0 and float noise.
func quantize(v geom.Vec3) [3]int64 {
	q := func(x float64) int64 {
		r := math.Round(x * 1e6)
		if r == 0 {
			return 0
		}
		return int64(r)
	}
	return [3]int64{q(v.X), q(v.Y), q(v.Z)}
}

// windFace orders an unordered face index set into a simple polygon by
// sorting around the face centroid, then flips it if the resulting normal
// points inward. Solids are origin-centered, so the centroid direction is
// a valid outward sorting axis.
func windFace(vertices []geom.Vec3, face []int) []int {
	ordered := make([]int, len(face))
	copy(ordered, face)
	sort.Ints(ordered)

	c := geom.PolygonCentroid(vertices, ordered)
	axis := c.Normalize()
	ref := vertices[ordered[0]].Sub(c)
	sort.SliceStable(ordered, func(i, j int) bool {
		ai := geom.AngleAroundAxis(vertices[ordered[i]].Sub(c), axis, ref)
		aj := geom.AngleAroundAxis(vertices[ordered[j]].Sub(c), axis, ref)
		return ai < aj
	})

	if geom.PolygonNormal(vertices, ordered).Dot(c) < 0 {
		for i, j := 0, len(ordered)-1; i < j; i, j = i+1, j-1 {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		}
	}
	return ordered
}

// loadArchimedean expands and winds one table entry.
func loadArchimedean(kind string) (vertices []geom.Vec3, faces [][]int, err error) {
	m, ok := archimedeanMeshes[kind]
	if !ok {
		return nil, nil, fmt.Errorf("no archimedean table entry for %q", kind)
	}
	vertices = expandSeeds(m)
	faces = make([][]int, len(m.faces))
	for i, f := range m.faces {
		faces[i] = windFace(vertices, f)
	}
	return vertices, faces, nil
}

var (
	sqrt2 = math.Sqrt2
	xi    = math.Sqrt2 - 1 // truncated cube seed coordinate
)

var archimedeanMeshes = map[string]archimedeanMesh{
	TruncatedTetrahedron: {
		seeds:     []geom.Vec3{{X: 1, Y: 1, Z: 3}},
		perms:     allPerms,
		evenSigns: true,
		faces: [][]int{
			{0, 3, 4, 6, 10, 11},
			{0, 3, 5, 7, 8, 9},
			{0, 4, 8},
			{1, 2, 4, 6, 8, 9},
			{1, 2, 5, 7, 10, 11},
			{1, 5, 9},
			{2, 6, 10},
			{3, 7, 11},
		},
	},
	Cuboctahedron: {
		seeds: []geom.Vec3{{X: 1, Y: 1}},
		perms: allPerms,
		faces: [][]int{
			{0, 1, 4, 5},
			{0, 2, 8, 9},
			{0, 4, 8},
			{0, 5, 9},
			{1, 3, 10, 11},
			{1, 4, 10},
			{1, 5, 11},
			{2, 3, 6, 7},
			{2, 6, 8},
			{2, 7, 9},
			{3, 6, 10},
			{3, 7, 11},
			{4, 6, 8, 10},
			{5, 7, 9, 11},
		},
	},
	TruncatedCube: {
		seeds: []geom.Vec3{{X: xi, Y: 1, Z: 1}},
		perms: allPerms,
		faces: [][]int{
			{0, 1, 4, 5, 16, 17, 20, 21},
			{0, 2, 4, 6, 8, 10, 12, 14},
			{0, 8, 16},
			{1, 3, 5, 7, 9, 11, 13, 15},
			{1, 9, 17},
			{2, 3, 6, 7, 18, 19, 22, 23},
			{2, 10, 18},
			{3, 11, 19},
			{4, 12, 20},
			{5, 13, 21},
			{6, 14, 22},
			{7, 15, 23},
			{8, 9, 10, 11, 16, 17, 18, 19},
			{12, 13, 14, 15, 20, 21, 22, 23},
		},
	},
	TruncatedOctahedron: {
		seeds: []geom.Vec3{{Y: 1, Z: 2}},
		perms: allPerms,
		faces: [][]int{
			{0, 2, 8, 10},
			{0, 4, 8, 12, 16, 20},
			{0, 4, 10, 14, 18, 22},
			{1, 3, 9, 11},
			{1, 5, 9, 12, 17, 20},
			{1, 5, 11, 14, 19, 22},
			{2, 6, 8, 13, 16, 21},
			{2, 6, 10, 15, 18, 23},
			{3, 7, 9, 13, 17, 21},
			{3, 7, 11, 15, 19, 23},
			{4, 5, 12, 14},
			{6, 7, 13, 15},
			{16, 17, 20, 21},
			{18, 19, 22, 23},
		},
	},
	Rhombicuboctahedron: {
		seeds: []geom.Vec3{{X: 1, Y: 1, Z: 1 + sqrt2}},
		perms: allPerms,
		faces: [][]int{
			{0, 2, 4, 6},
			{0, 2, 16, 18},
			{0, 4, 8, 12},
			{0, 8, 16},
			{1, 3, 5, 7},
			{1, 3, 17, 19},
			{1, 5, 9, 13},
			{1, 9, 17},
			{2, 6, 10, 14},
			{2, 10, 18},
			{3, 7, 11, 15},
			{3, 11, 19},
			{4, 6, 20, 22},
			{4, 12, 20},
			{5, 7, 21, 23},
			{5, 13, 21},
			{6, 14, 22},
			{7, 15, 23},
			{8, 9, 12, 13},
			{8, 9, 16, 17},
			{10, 11, 14, 15},
			{10, 11, 18, 19},
			{12, 13, 20, 21},
			{14, 15, 22, 23},
			{16, 17, 18, 19},
			{20, 21, 22, 23},
		},
	},
	TruncatedCuboctahedron: {
		seeds: []geom.Vec3{{X: 1, Y: 1 + sqrt2, Z: 1 + 2*sqrt2}},
		perms: allPerms,
		faces: [][]int{
			{0, 2, 4, 6, 16, 18, 20, 22},
			{0, 4, 8, 12},
			{0, 8, 16, 24, 32, 40},
			{1, 3, 5, 7, 17, 19, 21, 23},
			{1, 5, 9, 13},
			{1, 9, 17, 25, 33, 41},
			{2, 6, 10, 14},
			{2, 10, 18, 26, 34, 42},
			{3, 7, 11, 15},
			{3, 11, 19, 27, 35, 43},
			{4, 12, 20, 28, 36, 44},
			{5, 13, 21, 29, 37, 45},
			{6, 14, 22, 30, 38, 46},
			{7, 15, 23, 31, 39, 47},
			{8, 9, 12, 13, 24, 25, 28, 29},
			{10, 11, 14, 15, 26, 27, 30, 31},
			{16, 18, 32, 34},
			{17, 19, 33, 35},
			{20, 22, 36, 38},
			{21, 23, 37, 39},
			{24, 25, 40, 41},
			{26, 27, 42, 43},
			{28, 29, 44, 45},
			{30, 31, 46, 47},
			{32, 33, 34, 35, 40, 41, 42, 43},
			{36, 37, 38, 39, 44, 45, 46, 47},
		},
	},
	Icosidodecahedron: {
		seeds: []geom.Vec3{
			{Z: goldenRatio},
			{X: 0.5, Y: goldenRatio / 2, Z: goldenRatio * goldenRatio / 2},
		},
		perms: cyclicPerms,
		faces: [][]int{
			{0, 6, 8, 22, 24},
			{0, 6, 10},
			{0, 8, 12},
			{0, 10, 12, 26, 28},
			{1, 7, 9, 23, 25},
			{1, 7, 11},
			{1, 9, 13},
			{1, 11, 13, 27, 29},
			{2, 6, 10, 14, 18},
			{2, 7, 11, 15, 19},
			{2, 14, 15},
			{2, 18, 19},
			{3, 8, 12, 16, 20},
			{3, 9, 13, 17, 21},
			{3, 16, 17},
			{3, 20, 21},
			{4, 14, 15, 22, 23},
			{4, 16, 17, 24, 25},
			{4, 22, 24},
			{4, 23, 25},
			{5, 18, 19, 26, 27},
			{5, 20, 21, 28, 29},
			{5, 26, 28},
			{5, 27, 29},
			{6, 14, 22},
			{7, 15, 23},
			{8, 16, 24},
			{9, 17, 25},
			{10, 18, 26},
			{11, 19, 27},
			{12, 20, 28},
			{13, 21, 29},
		},
	},
	TruncatedIcosahedron: {
		seeds: []geom.Vec3{
			{Y: 1, Z: 3 * goldenRatio},
			{X: 1, Y: 2 + goldenRatio, Z: 2 * goldenRatio},
			{X: goldenRatio, Y: 2, Z: 2*goldenRatio + 1},
		},
		perms: cyclicPerms,
		faces: [][]int{
			{0, 2, 28, 30, 36, 38},
			{0, 2, 32, 34, 40, 42},
			{0, 12, 16, 36, 40},
			{1, 3, 29, 31, 37, 39},
			{1, 3, 33, 35, 41, 43},
			{1, 13, 17, 37, 41},
			{2, 14, 18, 38, 42},
			{3, 15, 19, 39, 43},
			{4, 6, 12, 16, 44, 48},
			{4, 6, 13, 17, 45, 49},
			{4, 20, 21, 44, 45},
			{5, 7, 14, 18, 46, 50},
			{5, 7, 15, 19, 47, 51},
			{5, 22, 23, 46, 47},
			{6, 24, 25, 48, 49},
			{7, 26, 27, 50, 51},
			{8, 9, 20, 21, 52, 53},
			{8, 9, 22, 23, 54, 55},
			{8, 28, 30, 52, 54},
			{9, 29, 31, 53, 55},
			{10, 11, 24, 25, 56, 57},
			{10, 11, 26, 27, 58, 59},
			{10, 32, 34, 56, 58},
			{11, 33, 35, 57, 59},
			{12, 20, 28, 36, 44, 52},
			{13, 21, 29, 37, 45, 53},
			{14, 22, 30, 38, 46, 54},
			{15, 23, 31, 39, 47, 55},
			{16, 24, 32, 40, 48, 56},
			{17, 25, 33, 41, 49, 57},
			{18, 26, 34, 42, 50, 58},
			{19, 27, 35, 43, 51, 59},
		},
	},
}
