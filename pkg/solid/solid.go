package solid

import (
	"errors"
	"fmt"
)

// ErrNonPositiveEdge is returned when a build is requested at a
// non-positive or non-finite edge length.
var ErrNonPositiveEdge = errors.New("edge length must be positive and finite")

// Solid is a live instance of one solid kind. It holds the immutable
// shared definition plus the single degree of freedom, the current edge
// length. Every edge change recomputes the full snapshot; there is no
// incremental mutation.
type Solid struct {
	def     *Definition
	desc    *Descriptor
	metrics *Metrics
}

// New returns an unbuilt instance for the given kind.
func New(kind string) (*Solid, error) {
	def, err := DefinitionFor(kind)
	if err != nil {
		return nil, err
	}
	return &Solid{def: def, desc: DescriptorFor(kind)}, nil
}

// Kind returns the solid's registry key.
func (s *Solid) Kind() string { return s.def.Kind }

// Name returns the solid's display name.
func (s *Solid) Name() string { return s.desc.Name }

// Build derives a fresh snapshot at the given edge length and returns
// its payload. The snapshot becomes the instance's current state.
func (s *Solid) Build(edge float64) (*Payload, *Metrics, error) {
	if !isFinitePositive(edge) {
		return nil, nil, fmt.Errorf("build %s at edge %v: %w", s.def.Kind, edge, ErrNonPositiveEdge)
	}
	s.metrics = deriveMetrics(s.def, s.desc, edge)
	return assemblePayload(s.def, s.desc, s.metrics, false), s.metrics, nil
}

// BuildWithDual is Build with the reciprocal solid attached as a nested
// payload.
func (s *Solid) BuildWithDual(edge float64) (*Payload, *Metrics, error) {
	if _, _, err := s.Build(edge); err != nil {
		return nil, nil, err
	}
	return assemblePayload(s.def, s.desc, s.metrics, true), s.metrics, nil
}

// PayloadAt packages the solid at the given edge length without touching
// the instance's current state.
func (s *Solid) PayloadAt(edge float64) (*Payload, error) {
	if !isFinitePositive(edge) {
		return nil, fmt.Errorf("payload %s at edge %v: %w", s.def.Kind, edge, ErrNonPositiveEdge)
	}
	m := deriveMetrics(s.def, s.desc, edge)
	return assemblePayload(s.def, s.desc, m, false), nil
}

// SetProperty inverts the named property back to an edge length and
// rebuilds. It reports whether the value was accepted; on rejection the
// current snapshot is unchanged.
func (s *Solid) SetProperty(key string, value float64) bool {
	edge, ok := solveEdge(s.def, key, value)
	if !ok {
		return false
	}
	s.metrics = deriveMetrics(s.def, s.desc, edge)
	return true
}

// Clear drops the current snapshot, returning the instance to the
// unbuilt state.
func (s *Solid) Clear() { s.metrics = nil }

// Metrics returns the current snapshot, nil when unbuilt.
func (s *Solid) Metrics() *Metrics { return s.metrics }

// Metadata returns the current snapshot as a flat map, nil when unbuilt.
func (s *Solid) Metadata() map[string]float64 {
	if s.metrics == nil {
		return nil
	}
	return s.metrics.Metadata()
}

// Properties returns the ordered property list for the current snapshot,
// nil when unbuilt.
func (s *Solid) Properties() []Property {
	if s.metrics == nil {
		return nil
	}
	return buildProperties(s.def, s.desc, s.metrics)
}
