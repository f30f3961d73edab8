// Package format turns a notation's textual format string into a classified
// symbol sequence: literal terminals and variable holes, each hole carrying
// the precedence window that keeps the notation unambiguous at its level.
package format

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Precedence levels run from MinLevel (atoms) to MaxLevel (loosest).
const (
	MinLevel = 0
	MaxLevel = 10
)

type Tightness int

const (
	// Exact accepts sub-terms up to and including the window level.
	Exact Tightness = iota
	// Loose accepts only sub-terms strictly tighter than the window level.
	Loose
)

// Window is a precedence window assigned to a hole: it selects the grammar
// sub-entry the hole parses with and decides when the printer must insert
// parentheses around the sub-term printed there.
type Window struct {
	Level int
	Tight Tightness
}

// Accepts reports whether a sub-term constructed at the given level may
// appear in this window without parentheses.
func (w Window) Accepts(level int) bool {
	if w.Tight == Exact {
		return level <= w.Level
	}
	return level < w.Level
}

func (w Window) String() string {
	t := "E"
	if w.Tight == Loose {
		t = "L"
	}
	return strings.Join([]string{levelName(w.Level), t}, "")
}

func levelName(level int) string {
	if level < 10 {
		return string(rune('0' + level))
	}
	return "10"
}

type Assoc int

const (
	// Unspecified defaults to LeftAssoc for level computation but is
	// recorded distinctly for display.
	Unspecified Assoc = iota
	LeftAssoc
	RightAssoc
	NonAssoc
)

var assocNames = [...]string{"no associativity", "left associative", "right associative", "non-associative"}

func (as Assoc) String() string {
	return assocNames[as]
}

type SymbolKind int

const (
	// TerminalSymbol is a literal keyword or operator token.
	TerminalSymbol SymbolKind = iota
	// VariableSymbol is a named hole with its precedence window.
	VariableSymbol
)

type Symbol struct {
	Kind SymbolKind
	Text string
	Win  Window
}

// Tokenize splits a single-line format string on spaces, discarding empty
// runs, and normalizes every token to NFC so that the same operator spelled
// with different Unicode compositions yields the same token.
func Tokenize(format string) []string {
	fields := strings.Fields(format)
	for i, f := range fields {
		fields[i] = norm.NFC.String(f)
	}
	return fields
}

// Windows derives the left and right border windows for a notation at the
// given level from its declared associativity.
func Windows(level int, assoc Assoc) (left, right Window) {
	switch assoc {
	case RightAssoc:
		return Window{level, Loose}, Window{level, Exact}
	case NonAssoc:
		return Window{level, Loose}, Window{level, Loose}
	default:
		return Window{level, Exact}, Window{level, Loose}
	}
}

// Classify classifies raw tokens into terminals and variable holes and
// assigns every hole its precedence window. A token beginning with a letter
// is a hole; anything else is a terminal after stripping a single enclosing
// quote pair. pinned may pin individual holes to an explicit level; it may
// be nil.
//
// Only the border holes need the associativity-derived windows: interior
// holes are delimited by terminals on both sides and receive the maximal
// window.
func Classify(tokens []string, level int, assoc Assoc, pinned map[string]int) ([]Symbol, error) {
	left, right := Windows(level, assoc)

	for name, lvl := range pinned {
		if lvl < MinLevel || lvl > MaxLevel {
			return nil, pinnedLevelError(name, lvl)
		}
		if !containsVariable(tokens, name) {
			return nil, unknownPinError(name)
		}
	}

	symbols := make([]Symbol, 0, len(tokens))
	seen := make(map[string]bool, len(tokens))
	prevWasVariable := false
	for i, tok := range tokens {
		if !isVariable(tok) {
			symbols = append(symbols, Symbol{Kind: TerminalSymbol, Text: stripQuotes(tok)})
			prevWasVariable = false
			continue
		}

		if seen[tok] {
			return nil, duplicateVariableError(tok)
		}
		if prevWasVariable {
			return nil, adjacentHolesError(tok)
		}
		seen[tok] = true

		// only holes on the borders of the sequence need the
		// associativity windows; interior holes are delimited by
		// terminals on both sides
		var win Window
		switch {
		case hasPin(pinned, tok):
			win = Window{pinned[tok], Exact}
		case i == 0:
			if terminalFollows(tokens, i) {
				win = left
			} else {
				win = right
			}
		case terminalFollows(tokens, i):
			win = Window{MaxLevel, Exact}
		default:
			win = right
		}
		symbols = append(symbols, Symbol{Kind: VariableSymbol, Text: tok, Win: win})
		prevWasVariable = true
	}

	return symbols, nil
}

// Key derives the deterministic notation key from a symbol sequence:
// terminal texts with holes marked, joined by single spaces.
func Key(symbols []Symbol) string {
	parts := make([]string, len(symbols))
	for i, s := range symbols {
		if s.Kind == VariableSymbol {
			parts[i] = "_"
		} else {
			parts[i] = s.Text
		}
	}
	return strings.Join(parts, " ")
}

func isVariable(tok string) bool {
	r, _ := utf8.DecodeRuneInString(tok)
	return unicode.IsLetter(r)
}

func stripQuotes(tok string) string {
	if len(tok) >= 2 && tok[0] == '\'' && tok[len(tok)-1] == '\'' {
		return tok[1 : len(tok)-1]
	}
	return tok
}

func hasPin(pinned map[string]int, name string) bool {
	_, f := pinned[name]
	return f
}

func containsVariable(tokens []string, name string) bool {
	for _, tok := range tokens {
		if isVariable(tok) && tok == name {
			return true
		}
	}
	return false
}

func terminalFollows(tokens []string, i int) bool {
	for _, tok := range tokens[i+1:] {
		if !isVariable(tok) {
			return true
		}
	}
	return false
}
