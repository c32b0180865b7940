package engine

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/tetrakis/solidlab/pkg/solid"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms solidlab Lisp source code before passing it
// to zygomys. It performs two transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: set-prop -> set_prop
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
// Both transformations respect string literal boundaries and line comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		// zygomys uses // for line comments, not the traditional Lisp ;.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			// Skip additional ; characters (;; style).
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			// Check for keyword: colon followed by a letter.
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when hyphen sits between identifier characters (not a minus operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpSolid wraps a workspace entry so it can be passed between builtins.
type sexpSolid struct {
	entry *Entry
}

func (s *sexpSolid) SexpString(ps *zygo.PrintState) string {
	m := s.entry.Solid.Metrics()
	if m == nil {
		return fmt.Sprintf("(solid %q)", s.entry.Solid.Kind())
	}
	return fmt.Sprintf("(solid %q :edge %.4f)", s.entry.Solid.Kind(), m.EdgeLength)
}
func (s *sexpSolid) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				// Keyword at end with no value; treat as flag with nil.
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toPropertyKey converts a keyword or plain string into a property key.
// Handles both preprocessed keywords (__kw_surface-area) and plain
// strings ("surface_area"); kebab spellings normalize to the underscore
// form the metrics engine uses.
func toPropertyKey(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected property keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	key := strings.TrimPrefix(str.S, kwPrefix)
	return strings.ReplaceAll(key, "-", "_"), nil
}

// toSolidKind normalizes a user-facing solid kind string to a registry
// key ("truncated-cube" and "truncated_cube" both resolve).
func toSolidKind(s zygo.Sexp) (string, error) {
	str, err := toString(s)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(strings.ToLower(str), "-", "_"), nil
}

// toSolid extracts the workspace entry from a sexpSolid.
func toSolid(s zygo.Sexp) (*Entry, error) {
	if ref, ok := s.(*sexpSolid); ok {
		return ref.entry, nil
	}
	return nil, fmt.Errorf("expected solid reference, got %T (%s)", s, s.SexpString(nil))
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// refreshPayload rebuilds an entry's payload from its solid's current
// metrics, honoring the entry's dual flag.
func refreshPayload(e *Entry) error {
	m := e.Solid.Metrics()
	if m == nil {
		return fmt.Errorf("solid %q has no built state", e.Solid.Kind())
	}
	var err error
	if e.WithDual {
		e.Payload, _, err = e.Solid.BuildWithDual(m.EdgeLength)
	} else {
		e.Payload, _, err = e.Solid.Build(m.EdgeLength)
	}
	return err
}

// registerBuiltins installs all solidlab DSL builtins into a zygomys
// environment. The builtins operate on the provided Workspace, populating
// it during evaluation.
//
// Source code must be preprocessed with preprocessSource() before
// evaluation so that :keyword tokens are converted to recognizable string
// literals.
func registerBuiltins(env *zygo.Zlisp, ws *Workspace) {

	// -----------------------------------------------------------------------
	// (solid "cube" :edge 2)
	// -----------------------------------------------------------------------
	env.AddFunction("solid", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 1 {
			return zygo.SexpNull, fmt.Errorf("solid requires a kind argument")
		}

		kind, err := toSolidKind(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("solid: kind: %w", err)
		}

		edge := 1.0
		if v, ok := pa.kw["edge"]; ok {
			edge, err = toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("solid: edge: %w", err)
			}
		}

		s, err := solid.New(kind)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("solid: %w", err)
		}
		p, _, err := s.Build(edge)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("solid: %w", err)
		}

		entry := &Entry{Solid: s, Payload: p}
		ws.add(entry)
		return &sexpSolid{entry: entry}, nil
	})

	// -----------------------------------------------------------------------
	// (set-prop s :volume 64)
	// -----------------------------------------------------------------------
	env.AddFunction("set_prop", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("set-prop requires a solid, a property, and a value")
		}
		entry, err := toSolid(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("set-prop: %w", err)
		}
		key, err := toPropertyKey(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("set-prop: %w", err)
		}
		value, err := toFloat64(args[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("set-prop: %s: %w", key, err)
		}

		if !entry.Solid.SetProperty(key, value) {
			return zygo.SexpNull, fmt.Errorf("set-prop: cannot set %q to %v on %q", key, value, entry.Solid.Kind())
		}
		if err := refreshPayload(entry); err != nil {
			return zygo.SexpNull, fmt.Errorf("set-prop: %w", err)
		}
		return &sexpSolid{entry: entry}, nil
	})

	// -----------------------------------------------------------------------
	// (metric s :inradius)
	// -----------------------------------------------------------------------
	env.AddFunction("metric", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("metric requires a solid and a property")
		}
		entry, err := toSolid(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("metric: %w", err)
		}
		key, err := toPropertyKey(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("metric: %w", err)
		}

		value, ok := entry.Solid.Metadata()[key]
		if !ok {
			return zygo.SexpNull, fmt.Errorf("metric: %q has no metric %q", entry.Solid.Kind(), key)
		}
		return &zygo.SexpFloat{Val: value}, nil
	})

	// -----------------------------------------------------------------------
	// (props s)
	// -----------------------------------------------------------------------
	env.AddFunction("props", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("props requires a solid argument")
		}
		entry, err := toSolid(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("props: %w", err)
		}

		props := entry.Solid.Properties()
		lines := make([]zygo.Sexp, 0, len(props))
		for _, p := range props {
			line := fmt.Sprintf("%s = %.*f", p.Key, p.Precision, p.Value)
			if p.Unit != "" {
				line += " " + p.Unit
			}
			lines = append(lines, &zygo.SexpStr{S: line})
		}
		return env.NewSexpArray(lines), nil
	})

	// -----------------------------------------------------------------------
	// (dual s)
	// -----------------------------------------------------------------------
	env.AddFunction("dual", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("dual requires a solid argument")
		}
		entry, err := toSolid(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("dual: %w", err)
		}

		entry.WithDual = true
		if err := refreshPayload(entry); err != nil {
			return zygo.SexpNull, fmt.Errorf("dual: %w", err)
		}
		return &sexpSolid{entry: entry}, nil
	})

	// -----------------------------------------------------------------------
	// (solids)
	// -----------------------------------------------------------------------
	env.AddFunction("solids", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		kinds := solid.Kinds()
		out := make([]zygo.Sexp, len(kinds))
		for i, k := range kinds {
			out[i] = &zygo.SexpStr{S: k}
		}
		return env.NewSexpArray(out), nil
	})
}
