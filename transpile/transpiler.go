package transpile

import (
	"fmt"
	"sort"
)

// Transpiler generates target-language source for one code segment.
// Transpilation is a pure function of the segment text: it never fails,
// degrading unrecognized lines instead.
type Transpiler interface {
	Language() string
	FileExtension() string
	Transpile(segment string) string
}

// Registry maps language names to transpilers.
type Registry struct {
	transpilers map[string]Transpiler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{transpilers: make(map[string]Transpiler)}
}

// Register adds or replaces the transpiler for its language.
func (r *Registry) Register(t Transpiler) {
	r.transpilers[t.Language()] = t
}

// Resolve returns the transpiler for a language.
func (r *Registry) Resolve(language string) (Transpiler, error) {
	if t, ok := r.transpilers[language]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("no transpiler registered for language %q", language)
}

// Languages returns the registered language names, sorted.
func (r *Registry) Languages() []string {
	names := make([]string, 0, len(r.transpilers))
	for name := range r.transpilers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry returns a registry with the four built-in targets.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CppTranspiler{})
	r.Register(&RustTranspiler{})
	r.Register(&GoTranspiler{})
	r.Register(&JavaTranspiler{})
	return r
}
