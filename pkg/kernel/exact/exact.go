// Package exact implements the kernel.Kernel interface with a pure Go
// tessellator. The faces of a convex polyhedron are planar polygons, so
// fan triangulation reproduces the surface exactly; no sampling or
// implicit-surface extraction is involved. This is the default backend.
package exact

import (
	"fmt"

	"github.com/tetrakis/solidlab/pkg/geom"
	"github.com/tetrakis/solidlab/pkg/kernel"
)

// Compile-time interface check.
var _ kernel.Kernel = (*ExactKernel)(nil)

// exactSolid holds the polyhedron geometry verbatim.
type exactSolid struct {
	vertices []geom.Vec3
	faces    [][]int
}

// BoundingBox returns the axis-aligned bounding box.
func (s *exactSolid) BoundingBox() (min, max [3]float64) {
	for i, v := range s.vertices {
		if i == 0 {
			min = [3]float64{v.X, v.Y, v.Z}
			max = min
			continue
		}
		min[0] = minFloat(min[0], v.X)
		min[1] = minFloat(min[1], v.Y)
		min[2] = minFloat(min[2], v.Z)
		max[0] = maxFloat(max[0], v.X)
		max[1] = maxFloat(max[1], v.Y)
		max[2] = maxFloat(max[2], v.Z)
	}
	return min, max
}

// ExactKernel implements kernel.Kernel by direct tessellation.
type ExactKernel struct{}

// New returns a new ExactKernel.
func New() *ExactKernel {
	return &ExactKernel{}
}

// Polyhedron wraps the given geometry. Face indices are validated up
// front so ToMesh cannot fail later.
func (k *ExactKernel) Polyhedron(vertices []geom.Vec3, faces [][]int) (kernel.Solid, error) {
	if len(vertices) < 4 {
		return nil, fmt.Errorf("exact: polyhedron needs at least 4 vertices, got %d", len(vertices))
	}
	for fi, face := range faces {
		if len(face) < 3 {
			return nil, fmt.Errorf("exact: face %d has %d vertices", fi, len(face))
		}
		for _, vi := range face {
			if vi < 0 || vi >= len(vertices) {
				return nil, fmt.Errorf("exact: face %d references vertex %d of %d", fi, vi, len(vertices))
			}
		}
	}
	return &exactSolid{vertices: vertices, faces: faces}, nil
}

// ToMesh fan-triangulates every face with flat shading: vertices are
// duplicated per face so each triangle carries its face's normal.
func (k *ExactKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	es, ok := s.(*exactSolid)
	if !ok {
		return nil, fmt.Errorf("exact: foreign solid %T", s)
	}

	var (
		vertices []float32
		normals  []float32
		indices  []uint32
	)
	next := uint32(0)
	for _, face := range es.faces {
		n := geom.PolygonNormal(es.vertices, face)
		nx, ny, nz := float32(n.X), float32(n.Y), float32(n.Z)

		v0 := es.vertices[face[0]]
		for i := 1; i < len(face)-1; i++ {
			for _, v := range []geom.Vec3{v0, es.vertices[face[i]], es.vertices[face[i+1]]} {
				vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
				normals = append(normals, nx, ny, nz)
				indices = append(indices, next)
				next++
			}
		}
	}

	return &kernel.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
	}, nil
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
