package solid

import (
	"fmt"
	"sort"
)

// Property is a named, typed handle over one metrics value, the form the
// UI layer consumes. Many properties are views over one snapshot.
type Property struct {
	Key       string  `json:"key"`
	Label     string  `json:"label"`
	Unit      string  `json:"unit"`
	Precision int     `json:"precision"`
	Editable  bool    `json:"editable"`
	Formula   string  `json:"formula,omitempty"`
	Value     float64 `json:"value"`
}

// propertySpec is one row of the static property catalog.
type propertySpec struct {
	key       string
	label     string
	unit      string
	precision int
}

// propertyCatalog fixes the display order of the non-dynamic properties.
var propertyCatalog = []propertySpec{
	{KeyEdgeLength, "Edge length", "u", 4},
	{KeyVolume, "Volume", "u³", 4},
	{KeySurfaceArea, "Surface area", "u²", 4},
	{KeyFaceArea, "Face area", "u²", 4},
	{KeyFaceDiagonal, "Face diagonal", "u", 4},
	{KeySpaceDiagonal, "Space diagonal", "u", 4},
	{KeyInradius, "Insphere radius", "u", 4},
	{KeyMidradius, "Midsphere radius", "u", 4},
	{KeyCircumradius, "Circumsphere radius", "u", 4},
	{KeyInradiusCircumference, "Insphere circumference", "u", 4},
	{KeyMidradiusCircumference, "Midsphere circumference", "u", 4},
	{KeyCircumradiusCircumference, "Circumsphere circumference", "u", 4},
	{KeyFaceInradius, "Face inradius", "u", 4},
	{KeyFaceCircumradius, "Face circumradius", "u", 4},
	{KeyInsphereArea, "Insphere surface area", "u²", 4},
	{KeyInsphereVolume, "Insphere volume", "u³", 4},
	{KeyMidsphereArea, "Midsphere surface area", "u²", 4},
	{KeyMidsphereVolume, "Midsphere volume", "u³", 4},
	{KeyCircumsphereArea, "Circumsphere surface area", "u²", 4},
	{KeyCircumsphereVolume, "Circumsphere volume", "u³", 4},
	{KeySphericity, "Sphericity", "", 5},
	{KeyIsoperimetricQuotient, "Isoperimetric quotient", "", 5},
	{KeySurfaceToVolume, "Surface/volume ratio", "1/u", 5},
	{KeyInertiaSolid, "Moment of inertia (solid)", "u⁵", 4},
	{KeyInertiaShell, "Moment of inertia (shell)", "u⁴", 4},
	{KeyDihedralAngle, "Dihedral angle", "°", 3},
	{KeySolidAngle, "Solid angle", "sr", 4},
	{KeyAngularDefect, "Angular defect", "°", 3},
	{KeyTotalAngularDefect, "Total angular defect", "°", 0},
	{KeyEulerCharacteristic, "Euler characteristic", "", 0},
	{KeyPackingDensity, "Packing density", "", 5},
	{KeySymmetryOrder, "Symmetry order", "", 0},
	{KeyRotationOrder, "Rotational symmetry order", "", 0},
	{KeyGoldenFactor, "Golden ratio factor", "", 5},
	{KeyFaceCount, "Faces", "", 0},
	{KeyEdgeCount, "Edges", "", 0},
	{KeyVertexCount, "Vertices", "", 0},
	{KeyFaceSides, "Face sides", "", 0},
	{KeyVertexValence, "Vertex valence", "", 0},
}

// buildProperties assembles the ordered property list for a snapshot.
// Per-face-type area pairs are generated from the face-side histogram
// (mixed-face solids only) and slotted after the aggregate areas; dynamic
// dihedral entries follow the scalar dihedral angle.
func buildProperties(def *Definition, desc *Descriptor, m *Metrics) []Property {
	meta := m.Metadata()
	mixed := len(def.FaceSides) > 1

	var out []Property
	appendKey := func(spec propertySpec) {
		value, ok := meta[spec.key]
		if !ok {
			return
		}
		if mixed && spec.key == KeyFaceArea {
			return
		}
		out = append(out, Property{
			Key:       spec.key,
			Label:     spec.label,
			Unit:      spec.unit,
			Precision: spec.precision,
			Editable:  isEditable(spec.key),
			Formula:   desc.Formulas[spec.key],
			Value:     value,
		})
	}

	for _, spec := range propertyCatalog {
		appendKey(spec)

		if spec.key == KeySurfaceArea && mixed {
			for _, n := range sortedFaceTypes(def.FaceSides) {
				out = append(out,
					Property{
						Key:       areaSingleKey(n),
						Label:     fmt.Sprintf("Area per %d-gon face", n),
						Unit:      "u²",
						Precision: 4,
						Editable:  true,
						Value:     meta[areaSingleKey(n)],
					},
					Property{
						Key:       areaTotalKey(n),
						Label:     fmt.Sprintf("Total %d-gon area (×%d)", n, def.FaceSides[n]),
						Unit:      "u²",
						Precision: 4,
						Editable:  true,
						Value:     meta[areaTotalKey(n)],
					},
				)
			}
		}

		if spec.key == KeyDihedralAngle && len(def.Dihedrals) > 1 {
			for _, pair := range dihedralPairs(def.Dihedrals) {
				out = append(out, Property{
					Key:       dihedralKey(pair[0], pair[1]),
					Label:     fmt.Sprintf("Dihedral %d-gon/%d-gon", pair[0], pair[1]),
					Unit:      "°",
					Precision: 3,
					Value:     meta[dihedralKey(pair[0], pair[1])],
				})
			}
		}
	}
	return out
}

// isEditable reports whether the solver can invert the key.
func isEditable(key string) bool {
	if _, ok := propertyPowers[key]; ok {
		return true
	}
	_, _, ok := parseAreaKey(key)
	return ok
}

func sortedFaceTypes(sides map[int]int) []int {
	out := make([]int, 0, len(sides))
	for n := range sides {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}
