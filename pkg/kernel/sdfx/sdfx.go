// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library. A convex polyhedron is
// represented as a bounding box cut by one half-space per face; the mesh
// comes out of marching cubes, so faces are approximated rather than
// exact. Useful when the solid feeds further SDF modeling downstream.
package sdfx

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/tetrakis/solidlab/pkg/geom"
	"github.com/tetrakis/solidlab/pkg/kernel"
)

// Compile-time interface check.
var _ kernel.Kernel = (*SdfxKernel)(nil)

// defaultMeshCells controls marching cubes tessellation resolution.
const defaultMeshCells = 200

// boxPadding oversizes the bounding box before the half-space cuts so
// every face plane lies strictly inside it.
const boxPadding = 1.1

// sdfxSolid wraps an sdf.SDF3 to implement kernel.Solid.
type sdfxSolid struct {
	s sdf.SDF3
}

// BoundingBox returns the axis-aligned bounding box.
func (s *sdfxSolid) BoundingBox() (min, max [3]float64) {
	bb := s.s.BoundingBox()
	min = [3]float64{bb.Min.X, bb.Min.Y, bb.Min.Z}
	max = [3]float64{bb.Max.X, bb.Max.Y, bb.Max.Z}
	return min, max
}

// SdfxKernel implements kernel.Kernel using sdfx.
type SdfxKernel struct {
	meshCells int
}

// New returns a new SdfxKernel at the default mesh resolution.
func New() *SdfxKernel {
	return &SdfxKernel{meshCells: defaultMeshCells}
}

// NewWithResolution returns a kernel with an explicit marching cubes
// cell count.
func NewWithResolution(meshCells int) *SdfxKernel {
	if meshCells <= 0 {
		meshCells = defaultMeshCells
	}
	return &SdfxKernel{meshCells: meshCells}
}

// Polyhedron builds the SDF of a convex polyhedron: a padded bounding
// box cut down by the half-space of every face plane. Cut3D keeps the
// side its normal points to, so each cut passes the inward normal.
func (k *SdfxKernel) Polyhedron(vertices []geom.Vec3, faces [][]int) (kernel.Solid, error) {
	if len(vertices) < 4 || len(faces) < 4 {
		return nil, fmt.Errorf("sdfx: polyhedron needs at least 4 vertices and 4 faces, got %d/%d", len(vertices), len(faces))
	}

	var size float64
	for _, v := range vertices {
		size = math.Max(size, math.Max(math.Abs(v.X), math.Max(math.Abs(v.Y), math.Abs(v.Z))))
	}
	side := 2 * size * boxPadding
	box, err := sdf.Box3D(v3.Vec{X: side, Y: side, Z: side}, 0)
	if err != nil {
		return nil, fmt.Errorf("sdfx: bounding box: %w", err)
	}

	s := box
	for fi, face := range faces {
		if len(face) < 3 {
			return nil, fmt.Errorf("sdfx: face %d has %d vertices", fi, len(face))
		}
		n := geom.PolygonNormal(vertices, face)
		c := geom.PolygonCentroid(vertices, face)
		if n.Dot(c) < 0 {
			n = n.Scale(-1)
		}
		inward := n.Scale(-1)
		s = sdf.Cut3D(s,
			v3.Vec{X: c.X, Y: c.Y, Z: c.Z},
			v3.Vec{X: inward.X, Y: inward.Y, Z: inward.Z})
	}
	return &sdfxSolid{s: s}, nil
}

// ToMesh converts a solid to a triangle mesh using marching cubes.
func (k *SdfxKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	ks, ok := s.(*sdfxSolid)
	if !ok {
		return nil, fmt.Errorf("sdfx: foreign solid %T", s)
	}

	renderer := render.NewMarchingCubesUniform(k.meshCells)
	triangles := render.ToTriangles(ks.s, renderer)

	numTri := len(triangles)
	numVerts := numTri * 3

	vertices := make([]float32, 0, numVerts*3)
	normals := make([]float32, 0, numVerts*3)
	indices := make([]uint32, 0, numVerts)

	for i, tri := range triangles {
		n := tri.Normal()
		nx := float32(n.X)
		ny := float32(n.Y)
		nz := float32(n.Z)

		for j := 0; j < 3; j++ {
			v := tri[j]
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, nx, ny, nz)
			indices = append(indices, uint32(i*3+j))
		}
	}

	return &kernel.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
	}, nil
}

