package solid

import "github.com/tetrakis/solidlab/pkg/geom"

// Moments of inertia about the z-axis through the centroid, computed by
// exact polynomial integration over the canonical geometry (origin-centered,
// isotropic inertia tensor for every uniform solid, so one axis suffices).

// solidInertia integrates x²+y² over the enclosed volume with unit density,
// decomposing the solid into signed origin tetrahedra per face fan triangle.
// For a tetrahedron (0,p,q,r) with det = p·(q×r):
// ∫ x² dV = det/60 · (px²+qx²+rx²+px·qx+px·rx+qx·rx), and likewise for y.
func solidInertia(vertices []geom.Vec3, faces [][]int) float64 {
	total := 0.0
	for _, face := range faces {
		p := vertices[face[0]]
		for i := 1; i < len(face)-1; i++ {
			q := vertices[face[i]]
			r := vertices[face[i+1]]
			det := p.Dot(q.Cross(r))
			total += det / 60 * (secondMoment(p.X, q.X, r.X) + secondMoment(p.Y, q.Y, r.Y))
		}
	}
	if total < 0 {
		total = -total
	}
	return total
}

// shellInertia integrates x²+y² over the boundary faces with unit surface
// density. Over a triangle of area A:
// ∫ x² dA = A/6 · (x1²+x2²+x3²+x1x2+x1x3+x2x3).
func shellInertia(vertices []geom.Vec3, faces [][]int) float64 {
	total := 0.0
	for _, face := range faces {
		p := vertices[face[0]]
		for i := 1; i < len(face)-1; i++ {
			q := vertices[face[i]]
			r := vertices[face[i+1]]
			area := q.Sub(p).Cross(r.Sub(p)).Length() / 2
			total += area / 6 * (secondMoment(p.X, q.X, r.X) + secondMoment(p.Y, q.Y, r.Y))
		}
	}
	return total
}

func secondMoment(x1, x2, x3 float64) float64 {
	return x1*x1 + x2*x2 + x3*x3 + x1*x2 + x1*x3 + x2*x3
}
