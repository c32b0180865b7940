package exact

import (
	"testing"

	"github.com/tetrakis/solidlab/pkg/geom"
	"github.com/tetrakis/solidlab/pkg/solid"
)

func TestCubeMesh(t *testing.T) {
	s, err := solid.New(solid.Cube)
	if err != nil {
		t.Fatal(err)
	}
	p, _, err := s.Build(2)
	if err != nil {
		t.Fatal(err)
	}

	k := New()
	ks, err := k.Polyhedron(p.Vertices, p.Faces)
	if err != nil {
		t.Fatalf("Polyhedron failed: %v", err)
	}

	min, max := ks.BoundingBox()
	for i := 0; i < 3; i++ {
		if min[i] != -1 || max[i] != 1 {
			t.Fatalf("bounding box = %v..%v, want -1..1 per axis", min, max)
		}
	}

	mesh, err := k.ToMesh(ks)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	// 6 quad faces, 2 triangles each.
	if got := mesh.TriangleCount(); got != 12 {
		t.Errorf("cube triangle count = %d, want 12", got)
	}
	if len(mesh.Vertices) != len(mesh.Normals) {
		t.Errorf("vertices length %d != normals length %d", len(mesh.Vertices), len(mesh.Normals))
	}
	if len(mesh.Indices) != mesh.TriangleCount()*3 {
		t.Errorf("indices length %d, want %d", len(mesh.Indices), mesh.TriangleCount()*3)
	}
}

func TestAllSolidsTessellate(t *testing.T) {
	k := New()
	for _, kind := range solid.Kinds() {
		s, err := solid.New(kind)
		if err != nil {
			t.Fatal(err)
		}
		p, _, err := s.Build(1)
		if err != nil {
			t.Fatal(err)
		}
		ks, err := k.Polyhedron(p.Vertices, p.Faces)
		if err != nil {
			t.Fatalf("%s: Polyhedron failed: %v", kind, err)
		}
		mesh, err := k.ToMesh(ks)
		if err != nil {
			t.Fatalf("%s: ToMesh failed: %v", kind, err)
		}

		// Exact tessellation: every n-gon face contributes n-2 triangles.
		want := 0
		for _, face := range p.Faces {
			want += len(face) - 2
		}
		if got := mesh.TriangleCount(); got != want {
			t.Errorf("%s: triangle count = %d, want %d", kind, got, want)
		}
		if mesh.IsEmpty() {
			t.Errorf("%s: empty mesh", kind)
		}
	}
}

func TestPolyhedronRejectsBadInput(t *testing.T) {
	k := New()
	verts := []geom.Vec3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1}}

	if _, err := k.Polyhedron(verts[:3], nil); err == nil {
		t.Error("expected error for too few vertices")
	}
	if _, err := k.Polyhedron(verts, [][]int{{0, 1}}); err == nil {
		t.Error("expected error for degenerate face")
	}
	if _, err := k.Polyhedron(verts, [][]int{{0, 1, 9}}); err == nil {
		t.Error("expected error for out-of-range index")
	}
}
