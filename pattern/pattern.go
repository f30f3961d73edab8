// Package pattern builds the reusable macro pattern of a notation: the
// user's example term is elaborated once at declaration time, then every
// leaf denoting a hole variable is rewritten into a metavariable keyed by
// the hole's position. The pattern expands parsed notation applications
// (Apply) and recognizes already-built terms for redisplay (Match).
package pattern

import (
	"github.com/avlov/notx/term"
)

// Elaborator is the external elaborator/type-checker: it resolves free
// identifiers of src, treating locals as a temporary local binding context,
// and returns the fully resolved tree. The global environment is captured
// by the implementation.
type Elaborator interface {
	Elaborate(locals []string, src term.Tree) (term.Tree, error)
}

// Pattern is an elaborated term skeleton with metavariable placeholders.
// Immutable after Build; Rename returns a rewritten copy.
type Pattern struct {
	tree  term.Tree
	arity int
}

// Build rewrites an elaborated term into a pattern, replacing every leaf
// that denotes one of the hole variables with a metavariable keyed by the
// hole's position. Every hole must be used exactly once, and the source
// term must not already contain raw metavariables.
func Build(elaborated term.Tree, holes []string) (*Pattern, error) {
	index := make(map[string]int, len(holes))
	for i, h := range holes {
		index[h] = i
	}

	a := term.NewArena()
	root := a.Graft(elaborated.Arena, elaborated.Root)
	used := make([]int, len(holes))
	e := scan(a, root, index, used)
	if e != nil {
		return nil, e
	}

	for i, n := range used {
		if n == 0 {
			return nil, unboundHoleError(holes[i])
		}
		if n > 1 {
			return nil, nonLinearHoleError(holes[i])
		}
	}

	return &Pattern{tree: a.Tree(root), arity: len(holes)}, nil
}

func scan(a *term.Arena, n int, index map[string]int, used []int) error {
	switch a.Kind(n) {
	case term.MetaNode:
		return unexpectedMetavariableError(a.MetaIndex(n))

	case term.VarNode:
		if i, f := index[a.Text(n)]; f {
			a.SetMeta(n, i)
			used[i]++
		}
		return nil

	case term.ConstNode:
		// a hole name resolved to anything but a local variable means
		// the elaborator produced a bound form we cannot substitute
		if _, f := index[a.Text(n)]; f {
			return unexpectedBoundFormError(a.Text(n))
		}
		return nil
	}

	for _, k := range a.Kids(n) {
		e := scan(a, k, index, used)
		if e != nil {
			return e
		}
	}
	return nil
}

// Arity returns the number of holes of the pattern.
func (p *Pattern) Arity() int {
	return p.arity
}

// Tree returns the pattern skeleton.
func (p *Pattern) Tree() term.Tree {
	return p.tree
}

// Apply expands the pattern in arena a, substituting subs (node indices in
// a, in hole order) for the metavariables. Each metavariable is consumed
// exactly once.
func (p *Pattern) Apply(a *term.Arena, subs []int) (int, error) {
	if len(subs) != p.arity {
		return 0, arityError(p.arity, len(subs))
	}
	return p.expand(a, p.tree.Root, subs), nil
}

func (p *Pattern) expand(a *term.Arena, n int, subs []int) int {
	pa := p.tree.Arena
	switch pa.Kind(n) {
	case term.MetaNode:
		return subs[pa.MetaIndex(n)]
	case term.ConstNode:
		return a.Const(pa.Text(n))
	case term.VarNode:
		return a.Var(pa.Text(n))
	}

	kids := pa.Kids(n)
	ks := make([]int, len(kids))
	for i, k := range kids {
		ks[i] = p.expand(a, k, subs)
	}
	if pa.Kind(n) == term.AppliedNode {
		return a.Applied(pa.Text(n), ks...)
	}
	return a.App(ks[0], ks[1:]...)
}

// Match is the reification direction: it reports whether t is an instance
// of the pattern and returns the sub-terms bound at each hole in order.
func (p *Pattern) Match(t term.Tree) ([]term.Tree, bool) {
	binds := make([]term.Tree, p.arity)
	if !p.match(p.tree.Root, t, binds) {
		return nil, false
	}
	return binds, true
}

func (p *Pattern) match(pn int, t term.Tree, binds []term.Tree) bool {
	pa := p.tree.Arena
	a := t.Arena
	switch pa.Kind(pn) {
	case term.MetaNode:
		binds[pa.MetaIndex(pn)] = t
		return true

	case term.ConstNode, term.VarNode:
		return pa.Kind(pn) == a.Kind(t.Root) && pa.Text(pn) == a.Text(t.Root)
	}

	if pa.Kind(pn) != a.Kind(t.Root) || pa.Text(pn) != a.Text(t.Root) {
		return false
	}
	pk := pa.Kids(pn)
	tk := a.Kids(t.Root)
	if len(pk) != len(tk) {
		return false
	}

	for i := range pk {
		if !p.match(pk[i], a.Tree(tk[i]), binds) {
			return false
		}
	}
	return true
}

// Rename returns a copy of the pattern with module-local references
// rewritten according to sub, as required by functor instantiation.
func (p *Pattern) Rename(sub term.Substitution) *Pattern {
	a := p.tree.Arena.Clone()
	a.Rename(sub)
	return &Pattern{tree: a.Tree(p.tree.Root), arity: p.arity}
}
