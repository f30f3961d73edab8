package pattern

import (
	"testing"

	err "github.com/avlov/notx"
	"github.com/avlov/notx/term"
)

func elaborated(t *testing.T) term.Tree {
	t.Helper()
	a := term.NewArena()
	src := a.App(a.Var("plus"), a.Var("x"), a.Var("y"))

	el := NewEnvElaborator("plus")
	res, e := el.Elaborate([]string{"x", "y"}, a.Tree(src))
	if e != nil {
		t.Fatalf("elaboration failed: %s", e.Error())
	}
	return res
}

func TestElaborate(t *testing.T) {
	res := elaborated(t)
	if res.String() != "plus(x, y)" {
		t.Fatalf("plus(x, y) expected, got %s", res)
	}
	if res.Arena.Kind(res.Arena.Kids(res.Root)[0]) != term.ConstNode {
		t.Errorf("head not resolved to a constant")
	}
}

func TestElaborateUnresolvable(t *testing.T) {
	a := term.NewArena()
	src := a.App(a.Var("plus"), a.Var("x"), a.Var("q"))
	el := NewEnvElaborator("plus")

	_, e := el.Elaborate([]string{"x", "y"}, a.Tree(src))
	checkError(t, e, UnresolvableError)
}

func TestBuild(t *testing.T) {
	p, e := Build(elaborated(t), []string{"x", "y"})
	if e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	if p.Arity() != 2 {
		t.Errorf("arity 2 expected, got %d", p.Arity())
	}
	if p.Tree().String() != "plus(?0, ?1)" {
		t.Errorf("plus(?0, ?1) expected, got %s", p.Tree())
	}
}

func checkError(t *testing.T, e error, code int) {
	t.Helper()
	if e == nil {
		t.Fatalf("error %d expected, got success", code)
	}
	ne, f := e.(*err.Error)
	if !f || ne.Code != code {
		t.Fatalf("error %d expected, got %s", code, e.Error())
	}
}

func TestBuildUnboundHole(t *testing.T) {
	_, e := Build(elaborated(t), []string{"x", "y", "z"})
	checkError(t, e, UnboundHoleError)
}

func TestBuildNonLinearHole(t *testing.T) {
	a := term.NewArena()
	root := a.App(a.Const("plus"), a.Var("x"), a.Var("x"))
	_, e := Build(a.Tree(root), []string{"x"})
	checkError(t, e, NonLinearHoleError)
}

func TestBuildMetaClash(t *testing.T) {
	a := term.NewArena()
	root := a.App(a.Const("plus"), a.Meta(0), a.Var("y"))
	_, e := Build(a.Tree(root), []string{"y"})
	checkError(t, e, UnexpectedMetavariableError)
}

func TestBuildBoundForm(t *testing.T) {
	a := term.NewArena()
	root := a.App(a.Const("plus"), a.Const("x"), a.Var("y"))
	_, e := Build(a.Tree(root), []string{"x", "y"})
	checkError(t, e, UnexpectedBoundFormError)
}

func TestApply(t *testing.T) {
	p, _ := Build(elaborated(t), []string{"x", "y"})

	a := term.NewArena()
	x := a.Var("a")
	y := a.App(a.Const("plus"), a.Var("b"), a.Var("c"))
	n, e := p.Apply(a, []int{x, y})
	if e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	if a.Tree(n).String() != "plus(a, plus(b, c))" {
		t.Errorf("plus(a, plus(b, c)) expected, got %s", a.Tree(n))
	}

	_, e = p.Apply(a, []int{x})
	checkError(t, e, ArityError)
}

func TestMatch(t *testing.T) {
	p, _ := Build(elaborated(t), []string{"x", "y"})

	a := term.NewArena()
	n := a.App(a.Const("plus"), a.Var("a"), a.App(a.Const("f"), a.Var("b")))
	binds, f := p.Match(a.Tree(n))
	if !f {
		t.Fatalf("match expected")
	}
	if len(binds) != 2 || binds[0].String() != "a" || binds[1].String() != "f(b)" {
		t.Errorf("bindings broken: %v", binds)
	}

	m := a.App(a.Const("mult"), a.Var("a"), a.Var("b"))
	if _, f = p.Match(a.Tree(m)); f {
		t.Errorf("mult matched plus pattern")
	}

	leaf := a.Var("a")
	if _, f = p.Match(a.Tree(leaf)); f {
		t.Errorf("leaf matched application pattern")
	}
}

func TestRename(t *testing.T) {
	p, _ := Build(elaborated(t), []string{"x", "y"})
	q := p.Rename(term.Substitution{"plus": "Nat.add"})

	if q.Tree().String() != "Nat.add(?0, ?1)" {
		t.Errorf("Nat.add(?0, ?1) expected, got %s", q.Tree())
	}
	if p.Tree().String() != "plus(?0, ?1)" {
		t.Errorf("rename mutated the original pattern")
	}

	a := term.NewArena()
	n := a.App(a.Const("Nat.add"), a.Var("a"), a.Var("b"))
	if _, f := q.Match(a.Tree(n)); !f {
		t.Errorf("renamed pattern does not match renamed term")
	}
}
