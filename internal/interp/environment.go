package interp

// Environment is SBML's single global symbol table. The language has no
// nested scopes, no functions, and no closures (spec.md §1 Non-goals), so
// unlike the teacher's frame-chained environments, this is a single flat
// map for the lifetime of one program run.
type Environment struct {
	store map[string]Value
}

// NewEnvironment returns an empty global environment.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Value)}
}

// Get looks up an identifier. The bool is false if it has never been
// assigned (spec.md §4.3.2: reading an unbound identifier is a semantic
// error, raised by the caller).
func (e *Environment) Get(name string) (Value, bool) {
	v, ok := e.store[name]
	return v, ok
}

// Set binds or rebinds an identifier. Assignment always succeeds
// regardless of whether the name was previously bound (spec.md §4.3.4).
func (e *Environment) Set(name string, val Value) {
	e.store[name] = val
}
