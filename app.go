package main

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tetrakis/solidlab/internal/config"
	"github.com/tetrakis/solidlab/pkg/engine"
	"github.com/tetrakis/solidlab/pkg/kernel"
	"github.com/tetrakis/solidlab/pkg/kernel/exact"
	"github.com/tetrakis/solidlab/pkg/kernel/sdfx"
	"github.com/tetrakis/solidlab/pkg/solid"
)

// colorPalette is a default palette used to assign distinct colors to solids.
var colorPalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// App is the Wails backend. It exposes methods to the frontend via bindings.
type App struct {
	ctx    context.Context
	engine *engine.Engine
	kernel kernel.Kernel
	cfg    *config.Config
	log    zerolog.Logger

	mu      sync.Mutex
	current *solid.Solid
}

// MeshData is the JSON-serializable mesh format sent to the frontend.
type MeshData struct {
	Vertices  []float32 `json:"vertices"`
	Normals   []float32 `json:"normals"`
	Indices   []uint32  `json:"indices"`
	SolidKind string    `json:"solidKind"`
	Color     string    `json:"color"`
}

// SolidView bundles everything the frontend needs to display one solid.
type SolidView struct {
	Payload    *solid.Payload   `json:"payload"`
	Properties []solid.Property `json:"properties"`
	Mesh       MeshData         `json:"mesh"`
}

// EvalErrorData is a JSON-serializable eval error for the frontend.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// EvalResult is the full result returned to the frontend.
type EvalResult struct {
	Solids []SolidView     `json:"solids"`
	Errors []EvalErrorData `json:"errors"`
}

// NewApp creates a new App with an engine and the configured kernel backend.
func NewApp(cfg *config.Config, log zerolog.Logger) *App {
	var k kernel.Kernel
	switch cfg.Kernel.Backend {
	case "sdfx":
		k = sdfx.NewWithResolution(cfg.Kernel.MeshCells)
	default:
		k = exact.New()
	}

	return &App{
		engine: engine.NewEngine(),
		kernel: k,
		cfg:    cfg,
		log:    log,
	}
}

// startup is called by Wails on app startup. The context is saved
// so we can call Wails runtime methods later if needed.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	a.log.Info().
		Str("backend", a.cfg.Kernel.Backend).
		Str("defaultKind", a.cfg.Solid.DefaultKind).
		Msg("solidlab started")
}

// ListSolids returns every available solid kind.
func (a *App) ListSolids() []string {
	return solid.Kinds()
}

// BuildSolid builds the named solid at the given edge length and makes it
// the current selection.
func (a *App) BuildSolid(kind string, edge float64) EvalResult {
	a.mu.Lock()
	defer a.mu.Unlock()

	s, err := solid.New(kind)
	if err != nil {
		return errorResult(err)
	}
	p, _, err := buildPayload(s, edge, a.cfg.Solid.ShowDual)
	if err != nil {
		return errorResult(err)
	}

	a.current = s
	view, err := a.viewFor(s, p, 0)
	if err != nil {
		a.log.Error().Err(err).Str("kind", kind).Msg("mesh generation failed")
		return errorResult(err)
	}
	return EvalResult{Solids: []SolidView{view}, Errors: []EvalErrorData{}}
}

// SetProperty inverts the named property on the current solid and returns
// the rebuilt view. Invalid values leave the solid unchanged and report an
// error to the frontend.
func (a *App) SetProperty(key string, value float64) EvalResult {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.current == nil || a.current.Metrics() == nil {
		return errorMessage("no solid selected")
	}
	if !a.current.SetProperty(key, value) {
		a.log.Debug().Str("key", key).Float64("value", value).Msg("property rejected")
		return errorMessage("cannot set " + key + " to that value")
	}

	edge := a.current.Metrics().EdgeLength
	p, _, err := buildPayload(a.current, edge, a.cfg.Solid.ShowDual)
	if err != nil {
		return errorResult(err)
	}
	view, err := a.viewFor(a.current, p, 0)
	if err != nil {
		return errorResult(err)
	}
	return EvalResult{Solids: []SolidView{view}, Errors: []EvalErrorData{}}
}

// Evaluate takes Lisp source and returns the solids it builds.
// This is the primary binding called by the frontend console.
func (a *App) Evaluate(source string) EvalResult {
	result := EvalResult{
		Solids: []SolidView{},
		Errors: []EvalErrorData{},
	}

	ws, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		a.log.Error().Err(err).Msg("evaluate fatal error")
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}

	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result
	}

	for i, entry := range ws.Entries() {
		view, err := a.viewFor(entry.Solid, entry.Payload, i)
		if err != nil {
			a.log.Error().Err(err).Str("kind", entry.Solid.Kind()).Msg("mesh generation failed")
			result.Errors = append(result.Errors, EvalErrorData{
				Message: "mesh generation failed: " + err.Error(),
			})
			return result
		}
		result.Solids = append(result.Solids, view)
	}

	return result
}

// viewFor packages a built solid and its mesh for the frontend.
func (a *App) viewFor(s *solid.Solid, p *solid.Payload, index int) (SolidView, error) {
	ks, err := a.kernel.Polyhedron(p.Vertices, p.Faces)
	if err != nil {
		return SolidView{}, err
	}
	mesh, err := a.kernel.ToMesh(ks)
	if err != nil {
		return SolidView{}, err
	}

	return SolidView{
		Payload:    p,
		Properties: s.Properties(),
		Mesh: MeshData{
			Vertices:  mesh.Vertices,
			Normals:   mesh.Normals,
			Indices:   mesh.Indices,
			SolidKind: p.Kind,
			Color:     colorPalette[index%len(colorPalette)],
		},
	}, nil
}

func buildPayload(s *solid.Solid, edge float64, withDual bool) (*solid.Payload, *solid.Metrics, error) {
	if withDual {
		return s.BuildWithDual(edge)
	}
	return s.Build(edge)
}

func errorResult(err error) EvalResult {
	return errorMessage(err.Error())
}

func errorMessage(msg string) EvalResult {
	return EvalResult{
		Solids: []SolidView{},
		Errors: []EvalErrorData{{Message: msg}},
	}
}
