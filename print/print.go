// Package print synthesizes pretty-printer rules from the same symbol
// sequences the grammar rules are built from, keeps the per-key rule
// registry, and renders terms back to text, inserting parentheses exactly
// where a hole's window rejects the sub-term's level.
package print

import (
	"unicode"
	"unicode/utf8"

	"github.com/avlov/notx/format"
	"github.com/avlov/notx/term"
)

type HunkKind int

const (
	// TextHunk emits a literal terminal.
	TextHunk HunkKind = iota
	// SubHunk prints the sub-term at the given hole position within the
	// given window.
	SubHunk
	// BreakHunk is a line-break hint for the layout engine; the bundled
	// single-line renderer ignores it.
	BreakHunk
)

type Hunk struct {
	Kind  HunkKind
	Text  string
	Index int
	Win   format.Window
}

// Rule is the print rule of one notation: its hunk sequence forms a single
// horizontally-breakable box.
type Rule struct {
	Key   string
	Level int
	Hunks []Hunk

	// Match is the reification inverse: it recognizes terms built by other
	// means (tactics, other notations) as instances of this notation and
	// recovers the hole sub-terms. May be nil for rules without a pattern.
	Match Matcher
}

// Matcher recognizes a term as an instance of a notation and returns the
// sub-terms bound at each hole in declaration order.
type Matcher interface {
	Match(t term.Tree) ([]term.Tree, bool)
}

// Synthesize mirrors a symbol sequence into print hunks. Break hints go
// around alphabetic terminals adjacent to other symbols, so keywords never
// glue to neighbouring identifiers on redisplay.
func Synthesize(symbols []format.Symbol) []Hunk {
	hunks := make([]Hunk, 0, len(symbols))
	hole := 0
	for i, s := range symbols {
		if s.Kind == format.VariableSymbol {
			hunks = append(hunks, Hunk{Kind: SubHunk, Index: hole, Win: s.Win})
			hole++
			continue
		}

		if startsAlpha(s.Text) && i > 0 {
			hunks = append(hunks, Hunk{Kind: BreakHunk})
		}
		hunks = append(hunks, Hunk{Kind: TextHunk, Text: s.Text})
		if endsAlpha(s.Text) && i < len(symbols)-1 {
			hunks = append(hunks, Hunk{Kind: BreakHunk})
		}
	}
	return hunks
}

func startsAlpha(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLetter(r)
}

func endsAlpha(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return unicode.IsLetter(r)
}

// Registry holds the canonical print rule per notation key, in registration
// order.
type Registry struct {
	rules map[string]*Rule
	order []string
}

func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]*Rule)}
}

// Add registers a rule and returns the canonical rule for its key: the
// already-registered one if present (the caller re-links to it), otherwise
// the given rule itself.
func (r *Registry) Add(rule *Rule) *Rule {
	if canonical, f := r.rules[rule.Key]; f {
		return canonical
	}

	r.rules[rule.Key] = rule
	r.order = append(r.order, rule.Key)
	return rule
}

// Get returns the rule for a key or nil.
func (r *Registry) Get(key string) *Rule {
	return r.rules[key]
}

// Keys returns the registered keys in registration order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.order))
	copy(keys, r.order)
	return keys
}
