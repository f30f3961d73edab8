// Package scope tracks, per named notation scope, which (level, key) pairs
// and which bracket delimiters are already active, guaranteeing idempotent
// registration when the same notation arrives again from an independently
// loaded module.
package scope

// DefaultScope is the scope notations land in when none is named.
const DefaultScope = "core"

type Delimiters struct {
	Open, Close string
}

// Registration is one replayable record of a successful notation
// registration. The host framework replays the ordered log to reconstruct
// the scope.
type Registration struct {
	Level int
	Key   string
}

type levelKey struct {
	level int
	key   string
}

// Scope is a named bucket of notations and delimiters sharing a display
// style. Process-wide state, mutated only by successful registration.
type Scope struct {
	name   string
	keys   map[levelKey]bool
	log    []Registration
	delims *Delimiters
}

func (s *Scope) Name() string {
	return s.name
}

// HasNotation reports whether a (level, key) pair is already active.
func (s *Scope) HasNotation(level int, key string) bool {
	return s.keys[levelKey{level, key}]
}

// AddNotation records a (level, key) pair. Returns false if the pair was
// already active, in which case nothing is recorded.
func (s *Scope) AddNotation(level int, key string) bool {
	lk := levelKey{level, key}
	if s.keys[lk] {
		return false
	}

	s.keys[lk] = true
	s.log = append(s.log, Registration{level, key})
	return true
}

// SetDelimiters declares the bracket pair of the scope. Re-declaring the
// same pair is a no-op; a different pair on a scope that already has one is
// an error, as is an empty bracket string.
func (s *Scope) SetDelimiters(d Delimiters) error {
	if d.Open == "" || d.Close == "" {
		return emptyDelimiterError(s.name)
	}
	if s.delims != nil {
		if *s.delims == d {
			return nil
		}
		return delimitersDeclaredError(s.name)
	}

	s.delims = &d
	return nil
}

// Delimiters returns the declared bracket pair, if any.
func (s *Scope) Delimiters() (Delimiters, bool) {
	if s.delims == nil {
		return Delimiters{}, false
	}
	return *s.delims, true
}

// Registrations returns the ordered registration log.
func (s *Scope) Registrations() []Registration {
	log := make([]Registration, len(s.log))
	copy(log, s.log)
	return log
}

// Registry is the process-wide set of scopes.
type Registry struct {
	scopes map[string]*Scope
}

func NewRegistry() *Registry {
	return &Registry{scopes: make(map[string]*Scope)}
}

// Declare creates a scope on first use and returns it; idempotent.
func (r *Registry) Declare(name string) *Scope {
	s := r.scopes[name]
	if s == nil {
		s = &Scope{name: name, keys: make(map[levelKey]bool)}
		r.scopes[name] = s
	}
	return s
}

// Get returns a scope or nil if it was never declared.
func (r *Registry) Get(name string) *Scope {
	return r.scopes[name]
}
