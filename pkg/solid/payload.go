package solid

import (
	"fmt"

	"github.com/tetrakis/solidlab/pkg/geom"
)

// Label is a positioned piece of annotation text attached to a payload.
type Label struct {
	Position geom.Vec3 `json:"position"`
	Text     string    `json:"text"`
}

// Payload packages a built solid for external consumers. Vertices carry
// the requested scale; edges and faces are the fixed canonical topology.
// Metadata mirrors the Metrics snapshot as a flat map. Dual is only set
// when the caller asked for it.
type Payload struct {
	Kind     string             `json:"kind"`
	Name     string             `json:"name"`
	Vertices []geom.Vec3        `json:"vertices"`
	Edges    []geom.Edge        `json:"edges"`
	Faces    [][]int            `json:"faces"`
	Metadata map[string]float64 `json:"metadata"`
	Labels   []Label            `json:"labels"`
	Dual     *Payload           `json:"dual,omitempty"`
}

// assemblePayload scales the canonical vertices and attaches the current
// snapshot. Topology is shared with the definition and must not be
// mutated by consumers.
func assemblePayload(def *Definition, desc *Descriptor, m *Metrics, withDual bool) *Payload {
	scale := m.EdgeLength / def.BaseEdge
	verts := make([]geom.Vec3, len(def.Vertices))
	for i, v := range def.Vertices {
		verts[i] = v.Scale(scale)
	}

	p := &Payload{
		Kind:     def.Kind,
		Name:     desc.Name,
		Vertices: verts,
		Edges:    def.Edges,
		Faces:    def.Faces,
		Metadata: m.Metadata(),
		Labels:   payloadLabels(verts, def.Edges, m),
	}

	if withDual {
		dv, df := buildDual(verts, def.Faces)
		de := geom.EdgesFromFaces(df)
		p.Dual = &Payload{
			Kind:     def.Kind + "_dual",
			Name:     desc.DualName,
			Vertices: dv,
			Edges:    de,
			Faces:    df,
			Metadata: map[string]float64{
				KeyFaceCount:   float64(len(df)),
				KeyEdgeCount:   float64(len(de)),
				KeyVertexCount: float64(len(dv)),
			},
		}
	}
	return p
}

// payloadLabels places the fixed annotation anchors. The edge label sits
// at the midpoint of the first canonical edge, the volume label at the
// body center.
func payloadLabels(verts []geom.Vec3, edges []geom.Edge, m *Metrics) []Label {
	labels := []Label{
		{Position: geom.Vec3{}, Text: fmt.Sprintf("V = %.4f", m.Volume)},
	}
	if len(edges) > 0 {
		e := edges[0]
		mid := verts[e.A].Add(verts[e.B]).Scale(0.5)
		labels = append(labels, Label{Position: mid, Text: fmt.Sprintf("a = %.4f", m.EdgeLength)})
	}
	return labels
}
