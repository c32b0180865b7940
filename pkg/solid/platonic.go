package solid

import "github.com/tetrakis/solidlab/pkg/geom"

// Canonical Platonic geometry. Vertices are hand-specified at a fixed base
// scale; the icosahedral family uses golden-ratio coordinates. Faces are
// explicitly wound with outward normals.

// platonicMesh holds one canonical Platonic solid.
type platonicMesh struct {
	vertices []geom.Vec3
	faces    [][]int
}

const invPhi = 1 / goldenRatio

var platonicMeshes = map[string]platonicMesh{
	Tetrahedron: {
		vertices: []geom.Vec3{
			{X: 1, Y: 1, Z: 1},
			{X: 1, Y: -1, Z: -1},
			{X: -1, Y: 1, Z: -1},
			{X: -1, Y: -1, Z: 1},
		},
		faces: [][]int{
			{0, 1, 2},
			{0, 3, 1},
			{0, 2, 3},
			{1, 3, 2},
		},
	},
	Cube: {
		vertices: []geom.Vec3{
			{X: -1, Y: -1, Z: -1},
			{X: 1, Y: -1, Z: -1},
			{X: 1, Y: 1, Z: -1},
			{X: -1, Y: 1, Z: -1},
			{X: -1, Y: -1, Z: 1},
			{X: 1, Y: -1, Z: 1},
			{X: 1, Y: 1, Z: 1},
			{X: -1, Y: 1, Z: 1},
		},
		faces: [][]int{
			{0, 3, 2, 1},
			{0, 1, 5, 4},
			{0, 4, 7, 3},
			{1, 2, 6, 5},
			{2, 3, 7, 6},
			{4, 5, 6, 7},
		},
	},
	Octahedron: {
		vertices: []geom.Vec3{
			{X: 1}, {X: -1},
			{Y: 1}, {Y: -1},
			{Z: 1}, {Z: -1},
		},
		faces: [][]int{
			{0, 2, 4},
			{0, 5, 2},
			{0, 4, 3},
			{0, 3, 5},
			{1, 4, 2},
			{1, 2, 5},
			{1, 3, 4},
			{1, 5, 3},
		},
	},
	Dodecahedron: {
		vertices: []geom.Vec3{
			{X: 1, Y: 1, Z: 1},
			{X: 1, Y: 1, Z: -1},
			{X: 1, Y: -1, Z: 1},
			{X: 1, Y: -1, Z: -1},
			{X: -1, Y: 1, Z: 1},
			{X: -1, Y: 1, Z: -1},
			{X: -1, Y: -1, Z: 1},
			{X: -1, Y: -1, Z: -1},
			{Y: invPhi, Z: goldenRatio},
			{Y: invPhi, Z: -goldenRatio},
			{Y: -invPhi, Z: goldenRatio},
			{Y: -invPhi, Z: -goldenRatio},
			{X: invPhi, Y: goldenRatio},
			{X: invPhi, Y: -goldenRatio},
			{X: -invPhi, Y: goldenRatio},
			{X: -invPhi, Y: -goldenRatio},
			{X: goldenRatio, Z: invPhi},
			{X: goldenRatio, Z: -invPhi},
			{X: -goldenRatio, Z: invPhi},
			{X: -goldenRatio, Z: -invPhi},
		},
		faces: [][]int{
			{0, 16, 17, 1, 12},
			{8, 10, 2, 16, 0},
			{0, 12, 14, 4, 8},
			{1, 17, 3, 11, 9},
			{1, 9, 5, 14, 12},
			{2, 13, 3, 17, 16},
			{2, 10, 6, 15, 13},
			{3, 13, 15, 7, 11},
			{4, 14, 5, 19, 18},
			{4, 18, 6, 10, 8},
			{9, 11, 7, 19, 5},
			{6, 18, 19, 7, 15},
		},
	},
	Icosahedron: {
		vertices: []geom.Vec3{
			{Y: 1, Z: goldenRatio},
			{Y: 1, Z: -goldenRatio},
			{Y: -1, Z: goldenRatio},
			{Y: -1, Z: -goldenRatio},
			{X: 1, Y: goldenRatio},
			{X: 1, Y: -goldenRatio},
			{X: -1, Y: goldenRatio},
			{X: -1, Y: -goldenRatio},
			{X: goldenRatio, Z: 1},
			{X: goldenRatio, Z: -1},
			{X: -goldenRatio, Z: 1},
			{X: -goldenRatio, Z: -1},
		},
		faces: [][]int{
			{0, 2, 8},
			{10, 2, 0},
			{0, 4, 6},
			{8, 4, 0},
			{0, 6, 10},
			{9, 3, 1},
			{1, 3, 11},
			{1, 6, 4},
			{1, 4, 9},
			{11, 6, 1},
			{2, 7, 5},
			{2, 5, 8},
			{10, 7, 2},
			{3, 5, 7},
			{9, 5, 3},
			{3, 7, 11},
			{4, 8, 9},
			{5, 9, 8},
			{6, 11, 10},
			{7, 10, 11},
		},
	},
}
