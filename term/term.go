// Package term models resolved terms as arenas of tagged nodes referenced by
// index, so that rewriting a subtree into a metavariable and substituting a
// metavariable with a subtree are both index operations, not pointer surgery.
package term

import (
	"strconv"
	"strings"
)

type Kind int

const (
	// ConstNode is a resolved global reference.
	ConstNode Kind = iota
	// VarNode is a local (bound) variable reference.
	VarNode
	// AppNode is plain application, head followed by arguments.
	AppNode
	// MetaNode is a metavariable hole, keyed by position.
	MetaNode
	// AppliedNode is an applied-notation node: a notation key plus the
	// sub-trees parsed at each hole, not yet expanded through the pattern.
	AppliedNode
)

type node struct {
	kind Kind
	text string
	meta int
	kids []int
}

// Arena holds the nodes of one or more trees. The zero value is not usable,
// use NewArena.
type Arena struct {
	nodes []node
}

// Tree is a root index paired with its arena, used to pass terms between
// packages.
type Tree struct {
	Arena *Arena
	Root  int
}

func NewArena() *Arena {
	return &Arena{nodes: make([]node, 0, 8)}
}

func (a *Arena) add(n node) int {
	a.nodes = append(a.nodes, n)
	return len(a.nodes) - 1
}

// Const adds a resolved global reference node.
func (a *Arena) Const(name string) int {
	return a.add(node{kind: ConstNode, text: name})
}

// Var adds a local variable reference node.
func (a *Arena) Var(name string) int {
	return a.add(node{kind: VarNode, text: name})
}

// App adds an application node.
func (a *Arena) App(head int, args ...int) int {
	kids := make([]int, 0, len(args)+1)
	kids = append(kids, head)
	kids = append(kids, args...)
	return a.add(node{kind: AppNode, kids: kids})
}

// Meta adds a metavariable node keyed by hole position.
func (a *Arena) Meta(index int) int {
	return a.add(node{kind: MetaNode, meta: index})
}

// Applied adds an applied-notation node carrying the notation key and the
// sub-trees parsed at each hole in left-to-right order.
func (a *Arena) Applied(key string, subs ...int) int {
	kids := make([]int, len(subs))
	copy(kids, subs)
	return a.add(node{kind: AppliedNode, text: key, kids: kids})
}

func (a *Arena) Kind(n int) Kind {
	return a.nodes[n].kind
}

// Text returns the constant or variable name, or the notation key of an
// applied node.
func (a *Arena) Text(n int) string {
	return a.nodes[n].text
}

// MetaIndex returns the hole position of a metavariable node.
func (a *Arena) MetaIndex(n int) int {
	return a.nodes[n].meta
}

func (a *Arena) Kids(n int) []int {
	return a.nodes[n].kids
}

func (a *Arena) Len() int {
	return len(a.nodes)
}

// SetMeta overwrites node n in place with a metavariable.
// Children of the overwritten node stay in the arena but become unreachable.
func (a *Arena) SetMeta(n, index int) {
	a.nodes[n] = node{kind: MetaNode, meta: index}
}

// Graft deep-copies the subtree rooted at root in src into a and returns the
// new root index.
func (a *Arena) Graft(src *Arena, root int) int {
	n := src.nodes[root]
	if len(n.kids) == 0 {
		return a.add(node{kind: n.kind, text: n.text, meta: n.meta})
	}

	kids := make([]int, len(n.kids))
	for i, k := range n.kids {
		kids[i] = a.Graft(src, k)
	}
	return a.add(node{kind: n.kind, text: n.text, meta: n.meta, kids: kids})
}

// Tree wraps a root index into a Tree.
func (a *Arena) Tree(root int) Tree {
	return Tree{a, root}
}

// Clone returns a deep copy of the whole arena, preserving indices.
func (a *Arena) Clone() *Arena {
	nodes := make([]node, len(a.nodes))
	for i, n := range a.nodes {
		nodes[i] = node{kind: n.kind, text: n.text, meta: n.meta}
		if n.kids != nil {
			nodes[i].kids = make([]int, len(n.kids))
			copy(nodes[i].kids, n.kids)
		}
	}
	return &Arena{nodes: nodes}
}

// Substitution maps module-local global names to their instantiated names,
// as produced by functor application.
type Substitution map[string]string

// Rename rewrites every constant reference in the arena according to sub.
// Names not present in sub are left untouched.
func (a *Arena) Rename(sub Substitution) {
	for i := range a.nodes {
		if a.nodes[i].kind != ConstNode {
			continue
		}
		if to, f := sub[a.nodes[i].text]; f {
			a.nodes[i].text = to
		}
	}
}

// Equal reports structural equality of two trees.
func Equal(x, y Tree) bool {
	xn := x.Arena.nodes[x.Root]
	yn := y.Arena.nodes[y.Root]
	if xn.kind != yn.kind || xn.text != yn.text || xn.meta != yn.meta {
		return false
	}
	if len(xn.kids) != len(yn.kids) {
		return false
	}

	for i := range xn.kids {
		if !Equal(Tree{x.Arena, xn.kids[i]}, Tree{y.Arena, yn.kids[i]}) {
			return false
		}
	}
	return true
}

// String returns a debug form, e.g. plus(?0, x) for an elaborated pattern.
func (t Tree) String() string {
	a := t.Arena
	n := a.nodes[t.Root]
	switch n.kind {
	case ConstNode, VarNode:
		return n.text
	case MetaNode:
		return "?" + strconv.Itoa(n.meta)
	}

	var head string
	kids := n.kids
	if n.kind == AppliedNode {
		head = "<" + n.text + ">"
	} else {
		head = Tree{a, kids[0]}.String()
		kids = kids[1:]
	}
	parts := make([]string, len(kids))
	for i, k := range kids {
		parts[i] = Tree{a, k}.String()
	}
	return head + "(" + strings.Join(parts, ", ") + ")"
}
