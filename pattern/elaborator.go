package pattern

import (
	"github.com/avlov/notx/term"
)

// EnvElaborator is a minimal Elaborator resolving identifiers against a
// fixed set of global names, with locals shadowing globals. It performs no
// typing and inserts nothing; a proof assistant supplies the real one.
type EnvElaborator struct {
	Globals map[string]bool
}

func NewEnvElaborator(globals ...string) *EnvElaborator {
	g := make(map[string]bool, len(globals))
	for _, name := range globals {
		g[name] = true
	}
	return &EnvElaborator{Globals: g}
}

func (el *EnvElaborator) Elaborate(locals []string, src term.Tree) (term.Tree, error) {
	bound := make(map[string]bool, len(locals))
	for _, name := range locals {
		bound[name] = true
	}

	a := term.NewArena()
	root, e := el.resolve(a, bound, src)
	if e != nil {
		return term.Tree{}, e
	}
	return a.Tree(root), nil
}

func (el *EnvElaborator) resolve(a *term.Arena, bound map[string]bool, t term.Tree) (int, error) {
	sa := t.Arena
	switch sa.Kind(t.Root) {
	case term.VarNode:
		name := sa.Text(t.Root)
		if bound[name] {
			return a.Var(name), nil
		}
		if el.Globals[name] {
			return a.Const(name), nil
		}
		return 0, unresolvableError(name)

	case term.ConstNode:
		name := sa.Text(t.Root)
		if !el.Globals[name] {
			return 0, unresolvableError(name)
		}
		return a.Const(name), nil

	case term.MetaNode:
		return a.Meta(sa.MetaIndex(t.Root)), nil
	}

	kids := sa.Kids(t.Root)
	ks := make([]int, len(kids))
	for i, k := range kids {
		var e error
		ks[i], e = el.resolve(a, bound, sa.Tree(k))
		if e != nil {
			return 0, e
		}
	}
	if sa.Kind(t.Root) == term.AppliedNode {
		return a.Applied(sa.Text(t.Root), ks...), nil
	}
	return a.App(ks[0], ks[1:]...), nil
}
