package solid

import (
	"math"
	"strconv"
	"strings"
)

// propertyPowers maps every invertible property key to its physical
// dimension: a metric of dimension k scales as scale^k under uniform
// dilation, so a target value inverts to
// scale = (value/base)^(1/power). Keys absent from this map (and not
// per-face-type area keys) are read-only.
var propertyPowers = map[string]float64{
	KeyEdgeLength:                1,
	KeyFaceDiagonal:              1,
	KeySpaceDiagonal:             1,
	KeyInradius:                  1,
	KeyMidradius:                 1,
	KeyCircumradius:              1,
	KeyInradiusCircumference:     1,
	KeyMidradiusCircumference:    1,
	KeyCircumradiusCircumference: 1,
	KeyFaceInradius:              1,
	KeyFaceCircumradius:          1,

	KeyFaceArea:         2,
	KeySurfaceArea:      2,
	KeyInsphereArea:     2,
	KeyMidsphereArea:    2,
	KeyCircumsphereArea: 2,

	KeyVolume:             3,
	KeyInsphereVolume:     3,
	KeyMidsphereVolume:    3,
	KeyCircumsphereVolume: 3,

	// Shell mass scales with area, solid mass with volume; each carries
	// an extra squared lever arm.
	KeyInertiaShell: 4,
	KeyInertiaSolid: 5,

	KeySurfaceToVolume: -1,
}

// parseAreaKey recognizes the dynamic per-face-type area keys
// area_<n>_single and area_<n>_total.
func parseAreaKey(key string) (n int, total bool, ok bool) {
	rest, found := strings.CutPrefix(key, "area_")
	if !found {
		return 0, false, false
	}
	numStr, suffix, found := strings.Cut(rest, "_")
	if !found {
		return 0, false, false
	}
	n, err := strconv.Atoi(numStr)
	if err != nil || n < 3 {
		return 0, false, false
	}
	switch suffix {
	case "single":
		return n, false, true
	case "total":
		return n, true, true
	}
	return 0, false, false
}

// solveEdge inverts a property target back to the single shared edge
// length. Returns false when the key is not solvable or the target is out
// of domain; a failed solve leaves no trace.
func solveEdge(def *Definition, key string, value float64) (float64, bool) {
	if !isFinitePositive(value) {
		return 0, false
	}

	// Per-face-type areas invert through the regular n-gon area formula
	// rather than a power law: with mixed face types the per-type areas
	// do not all scale from the same reference value, but the solid is
	// still rigidly scaled by one edge length, so solving any face type
	// updates everything consistently.
	if n, total, ok := parseAreaKey(key); ok {
		count, present := def.FaceSides[n]
		if !present {
			return 0, false
		}
		target := value
		if total {
			target /= float64(count)
		}
		edge := math.Sqrt(4 * target * math.Tan(math.Pi/float64(n)) / float64(n))
		if !isFinitePositive(edge) {
			return 0, false
		}
		return edge, true
	}

	power, ok := propertyPowers[key]
	if !ok {
		return 0, false
	}
	base := def.baseMeta[key]
	if !isFinitePositive(base) {
		return 0, false
	}
	scale := math.Pow(value/base, 1/power)
	edge := scale * def.BaseEdge
	if !isFinitePositive(edge) {
		return 0, false
	}
	return edge, true
}

func isFinitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
