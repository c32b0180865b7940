// Package kernel defines the abstract geometry kernel interface.
// Implementations (exact, sdfx) turn the convex polyhedra produced by
// the solid engine into render-ready triangle meshes behind this
// interface. The kernel abstraction allows swapping backends without
// changing the rest of the system.
package kernel

import "github.com/tetrakis/solidlab/pkg/geom"

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface.
type Kernel interface {
	// Polyhedron builds a kernel solid from the vertices and faces of a
	// convex polyhedron. Faces must be wound with outward normals.
	Polyhedron(vertices []geom.Vec3, faces [][]int) (Solid, error)

	// ToMesh tessellates a solid into a triangle mesh.
	ToMesh(s Solid) (*Mesh, error)
}
