// Package grammar synthesizes parser productions from classified symbol
// sequences and defines the interface of the extensible-precedence grammar
// engine the productions are installed into. An in-memory engine is provided
// for tests and interactive use; a full proof assistant supplies its own.
package grammar

import (
	"github.com/avlov/notx/format"
	"github.com/avlov/notx/term"
)

// DefaultUniverse is the universe notation productions are installed in.
const DefaultUniverse = "term"

type EntryKind int

const (
	// LevelEntry is one of the numbered precedence entries.
	LevelEntry EntryKind = iota
	// LoosestEntry accepts any expression.
	LoosestEntry
	// PatternEntry parses match patterns; reserved by the proof assistant.
	PatternEntry
)

const (
	LoosestEntryName = "loosest"
	PatternEntryName = "pattern"
)

// Entries 0..9 are numbered; level 10 maps to the loosest entry.
var entryNames = [...]string{
	"term0", "term1", "term2", "term3", "term4",
	"term5", "term6", "term7", "term8", "term9",
}

// EntryName maps a numeric precedence level to the conventional entry name.
func EntryName(level int) string {
	if level >= format.MaxLevel {
		return LoosestEntryName
	}
	return entryNames[level]
}

// Item is one element of a production: either a literal token (Token != "")
// or a reference to the sub-entry a hole parses with.
type Item struct {
	Token string
	Entry string
	Win   format.Window
}

// Production is one parser production for a notation, attached at the entry
// for the notation's overall level.
type Production struct {
	Key   string
	Level int
	Items []Item
}

// Action is the semantic action of a production: given the sub-trees parsed
// at each hole in left-to-right order, it builds the resulting node.
type Action func(a *term.Arena, subs []int) int

// Engine is the base grammar engine consumed by this subsystem. It only ever
// gains entries, productions, and tokens; nothing is ever removed.
type Engine interface {
	CreateEntry(universe, name string, kind EntryKind) error
	EntryExists(universe, name string) bool
	AddProduction(universe, entry string, p Production, act Action) error
	RegisterToken(text string) error
}

// Synthesize builds the production for a symbol sequence: terminals become
// literal tokens, holes become references to the sub-entry of their window
// level.
func Synthesize(symbols []format.Symbol, level int, key string) Production {
	items := make([]Item, len(symbols))
	for i, s := range symbols {
		if s.Kind == format.TerminalSymbol {
			items[i] = Item{Token: s.Text}
		} else {
			items[i] = Item{Entry: EntryName(s.Win.Level), Win: s.Win}
		}
	}
	return Production{Key: key, Level: level, Items: items}
}

// AppliedAction returns the standard semantic action: it wraps the hole
// sub-trees into an applied-notation node carrying the notation key, later
// rewritten into the full term through the macro pattern.
func AppliedAction(key string) Action {
	return func(a *term.Arena, subs []int) int {
		return a.Applied(key, subs...)
	}
}

// EnsureEntries creates the conventional entries of a universe, skipping the
// ones already present. Safe to call repeatedly.
func EnsureEntries(eng Engine, universe string) error {
	for _, name := range entryNames {
		if eng.EntryExists(universe, name) {
			continue
		}
		e := eng.CreateEntry(universe, name, LevelEntry)
		if e != nil {
			return e
		}
	}

	if !eng.EntryExists(universe, LoosestEntryName) {
		e := eng.CreateEntry(universe, LoosestEntryName, LoosestEntry)
		if e != nil {
			return e
		}
	}
	if !eng.EntryExists(universe, PatternEntryName) {
		e := eng.CreateEntry(universe, PatternEntryName, PatternEntry)
		if e != nil {
			return e
		}
	}
	return nil
}
