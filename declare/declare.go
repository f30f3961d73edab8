// Package declare implements the surface declaration forms: infix, distfix,
// general notation, and delimiter. Each declaration runs the full pipeline
// (tokenize, classify, synthesize grammar and print rules, elaborate the
// example term, build the macro pattern) and registers the result as one
// extension object; a malformed declaration fails before anything is
// installed.
package declare

import (
	"strconv"
	"strings"

	"github.com/avlov/notx/format"
	"github.com/avlov/notx/grammar"
	"github.com/avlov/notx/object"
	"github.com/avlov/notx/pattern"
	"github.com/avlov/notx/print"
	"github.com/avlov/notx/scope"
	"github.com/avlov/notx/term"
)

type Declarator struct {
	Elab    pattern.Elaborator
	Objects *object.Adapter
}

func New(elab pattern.Elaborator, objects *object.Adapter) *Declarator {
	return &Declarator{Elab: elab, Objects: objects}
}

// Notation declares a general notation: an arbitrary format string with
// named holes, an example term written in terms of the hole names, and
// optional per-hole pinned precedences. The empty scope name means the
// default scope.
func (d *Declarator) Notation(assoc format.Assoc, level int, formatStr string, example term.Tree, pinned map[string]int, scopeName string) (*object.Object, error) {
	if level < format.MinLevel || level > format.MaxLevel {
		return nil, levelRangeError(level, format.MinLevel)
	}
	tokens := format.Tokenize(formatStr)
	if len(tokens) == 0 {
		return nil, emptyFormatError()
	}

	symbols, e := format.Classify(tokens, level, assoc, pinned)
	if e != nil {
		return nil, e
	}
	holes := make([]string, 0, len(symbols))
	for _, s := range symbols {
		if s.Kind == format.VariableSymbol {
			holes = append(holes, s.Text)
		}
	}
	key := format.Key(symbols)

	// name resolution, implicit-argument insertion, and
	// notation-in-notation expansion happen here, exactly once
	elaborated, e := d.Elab.Elaborate(holes, example)
	if e != nil {
		return nil, e
	}
	pat, e := pattern.Build(elaborated, holes)
	if e != nil {
		return nil, e
	}

	desc := &object.Descriptor{
		Scope:      scopeOrDefault(scopeName),
		Level:      level,
		Assoc:      assoc,
		Symbols:    symbols,
		Key:        key,
		Pattern:    pat,
		Production: grammar.Synthesize(symbols, level, key),
		Rule:       &print.Rule{Key: key, Level: level, Hunks: print.Synthesize(symbols), Match: pat},
	}
	o := &object.Object{Kind: object.NotationObject, Scope: desc.Scope, Desc: desc}
	e = d.Objects.Cache(o)
	if e != nil {
		return nil, e
	}
	return o, nil
}

// Infix declares an infix operator at level 1..10 for an already-resolvable
// operator identifier.
func (d *Declarator) Infix(assoc format.Assoc, level int, token, operator, scopeName string) (*object.Object, error) {
	if level < format.MinLevel+1 || level > format.MaxLevel {
		return nil, levelRangeError(level, format.MinLevel+1)
	}
	if token == "" {
		return nil, emptyInfixTokenError()
	}

	a := term.NewArena()
	example := a.App(a.Var(operator), a.Var("x"), a.Var("y"))
	formatStr := "x '" + token + "' y"
	return d.Notation(assoc, level, formatStr, a.Tree(example), nil, scopeName)
}

// Distfix declares a mixfix form: the format string contains '_'
// placeholders, and expr is applied to the generated hole variables in
// order.
func (d *Declarator) Distfix(assoc format.Assoc, level int, formatStr string, expr term.Tree, scopeName string) (*object.Object, error) {
	tokens := format.Tokenize(formatStr)
	holes := make([]string, 0, len(tokens))
	for i, tok := range tokens {
		if tok == "_" {
			name := "x" + strconv.Itoa(len(holes)+1)
			tokens[i] = name
			holes = append(holes, name)
		}
	}

	a := term.NewArena()
	root := a.Graft(expr.Arena, expr.Root)
	if len(holes) > 0 {
		args := make([]int, len(holes))
		for i, h := range holes {
			args[i] = a.Var(h)
		}
		root = a.App(root, args...)
	}
	return d.Notation(assoc, level, strings.Join(tokens, " "), a.Tree(root), nil, scopeName)
}

// Delimiter declares the bracket pair of a scope. Both bracket strings must
// be non-empty; the brackets also become a grouping notation of the scope.
func (d *Declarator) Delimiter(scopeName, open, close string) (*object.Object, error) {
	sn := scopeOrDefault(scopeName)
	o := &object.Object{
		Kind:   object.DelimiterObject,
		Scope:  sn,
		Delims: scope.Delimiters{Open: open, Close: close},
	}
	if open != "" && close != "" {
		o.Desc = bracketDescriptor(sn, open, close)
	}

	e := d.Objects.Cache(o)
	if e != nil {
		return nil, e
	}
	return o, nil
}

// bracketDescriptor builds the grouping notation of a delimiter pair: the
// bracketed sub-term parses at the loosest level and the whole form is
// atomic.
func bracketDescriptor(scopeName, open, close string) *object.Descriptor {
	win := format.Window{Level: format.MaxLevel, Tight: format.Exact}
	symbols := []format.Symbol{
		{Kind: format.TerminalSymbol, Text: open},
		{Kind: format.VariableSymbol, Text: "x", Win: win},
		{Kind: format.TerminalSymbol, Text: close},
	}
	key := format.Key(symbols)

	a := term.NewArena()
	pat, _ := pattern.Build(a.Tree(a.Var("x")), []string{"x"})
	return &object.Descriptor{
		Scope:      scopeName,
		Level:      format.MinLevel,
		Assoc:      format.NonAssoc,
		Symbols:    symbols,
		Key:        key,
		Pattern:    pat,
		Production: grammar.Synthesize(symbols, format.MinLevel, key),
		// no matcher: a bare metavariable pattern would reify any term
		Rule: &print.Rule{Key: key, Level: format.MinLevel, Hunks: print.Synthesize(symbols)},
	}
}

func scopeOrDefault(name string) string {
	if name == "" {
		return scope.DefaultScope
	}
	return name
}
