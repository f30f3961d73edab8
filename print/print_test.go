package print

import (
	"testing"

	"github.com/avlov/notx/format"
	"github.com/avlov/notx/term"
)

func classify(t *testing.T, f string, level int, assoc format.Assoc) []format.Symbol {
	t.Helper()
	symbols, e := format.Classify(format.Tokenize(f), level, assoc, nil)
	if e != nil {
		t.Fatalf("%q: %s", f, e.Error())
	}
	return symbols
}

func hunkString(hunks []Hunk) string {
	s := ""
	for _, h := range hunks {
		switch h.Kind {
		case TextHunk:
			s += "'" + h.Text + "'"
		case SubHunk:
			s += h.Win.String()
		case BreakHunk:
			s += "/"
		}
	}
	return s
}

func TestSynthesize(t *testing.T) {
	samples := []struct {
		format   string
		level    int
		assoc    format.Assoc
		expected string
	}{
		{"x '+' y", 4, format.LeftAssoc, "4E'+'4L"},
		{"x '^' y", 4, format.RightAssoc, "4L'^'4E"},
		{"[ x , y ]", 1, format.NonAssoc, "'['10E','10E']'"},
		// alphabetic terminals get break hints so keywords cannot glue
		// to neighbouring identifier runs
		{"x 'mod' y", 5, format.LeftAssoc, "5E/'mod'/5L"},
		{"'if' c 'then' a 'else' b", 2, format.NonAssoc, "'if'/10E/'then'/10E/'else'/2L"},
	}

	for _, s := range samples {
		hunks := Synthesize(classify(t, s.format, s.level, s.assoc))
		got := hunkString(hunks)
		if got != s.expected {
			t.Errorf("%q: expected %s, got %s", s.format, s.expected, got)
		}
	}
}

func TestRegistryCanonical(t *testing.T) {
	reg := NewRegistry()
	first := &Rule{Key: "_ + _", Level: 4}
	if reg.Add(first) != first {
		t.Fatalf("first registration not canonical")
	}

	second := &Rule{Key: "_ + _", Level: 4}
	if reg.Add(second) != first {
		t.Errorf("re-registration did not re-link to canonical rule")
	}
	if len(reg.Keys()) != 1 {
		t.Errorf("1 key expected, got %d", len(reg.Keys()))
	}
}

func addRule(t *testing.T, reg *Registry, f string, level int, assoc format.Assoc, m Matcher) string {
	t.Helper()
	symbols := classify(t, f, level, assoc)
	key := format.Key(symbols)
	reg.Add(&Rule{Key: key, Level: level, Hunks: Synthesize(symbols), Match: m})
	return key
}

func TestRenderApplied(t *testing.T) {
	reg := NewRegistry()
	key := addRule(t, reg, "x '+' y", 4, format.LeftAssoc, nil)
	rd := NewRenderer(reg)

	a := term.NewArena()
	left := a.Applied(key, a.Applied(key, a.Var("a"), a.Var("b")), a.Var("c"))
	got, e := rd.Render(a.Tree(left))
	if e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	if got != "a + b + c" {
		t.Errorf("a + b + c expected, got %q", got)
	}

	right := a.Applied(key, a.Var("a"), a.Applied(key, a.Var("b"), a.Var("c")))
	got, e = rd.Render(a.Tree(right))
	if e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	if got != "a + (b + c)" {
		t.Errorf("a + (b + c) expected, got %q", got)
	}
}

func TestRenderDistfix(t *testing.T) {
	reg := NewRegistry()
	key := addRule(t, reg, "[ x , y ]", 1, format.NonAssoc, nil)
	rd := NewRenderer(reg)

	a := term.NewArena()
	n := a.Applied(key, a.Var("a"), a.Applied(key, a.Var("b"), a.Var("c")))
	got, e := rd.Render(a.Tree(n))
	if e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	if got != "[ a , [ b , c ] ]" {
		t.Errorf("[ a , [ b , c ] ] expected, got %q", got)
	}
}

type plusMatcher struct{}

func (plusMatcher) Match(t term.Tree) ([]term.Tree, bool) {
	a := t.Arena
	if a.Kind(t.Root) != term.AppNode {
		return nil, false
	}
	kids := a.Kids(t.Root)
	if len(kids) != 3 || a.Kind(kids[0]) != term.ConstNode || a.Text(kids[0]) != "plus" {
		return nil, false
	}
	return []term.Tree{a.Tree(kids[1]), a.Tree(kids[2])}, true
}

func TestRenderReified(t *testing.T) {
	// terms built by other means than the notation's own grammar rule
	// must still display through the notation
	reg := NewRegistry()
	addRule(t, reg, "x '+' y", 4, format.LeftAssoc, plusMatcher{})
	rd := NewRenderer(reg)

	a := term.NewArena()
	plus := func(x, y int) int { return a.App(a.Const("plus"), x, y) }
	n := plus(plus(a.Var("a"), a.Var("b")), a.Var("c"))
	got, e := rd.Render(a.Tree(n))
	if e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	if got != "a + b + c" {
		t.Errorf("a + b + c expected, got %q", got)
	}

	n = plus(a.Var("a"), plus(a.Var("b"), a.Var("c")))
	got, e = rd.Render(a.Tree(n))
	if e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	if got != "a + (b + c)" {
		t.Errorf("a + (b + c) expected, got %q", got)
	}
}

func TestRenderApplication(t *testing.T) {
	reg := NewRegistry()
	key := addRule(t, reg, "x '+' y", 4, format.LeftAssoc, nil)
	rd := NewRenderer(reg)

	a := term.NewArena()
	app := a.App(a.Const("f"), a.Var("x"))
	got, e := rd.Render(a.Tree(app))
	if e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	if got != "f x" {
		t.Errorf("f x expected, got %q", got)
	}

	n := a.Applied(key, app, a.Var("c"))
	got, e = rd.Render(a.Tree(n))
	if e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	if got != "(f x) + c" {
		t.Errorf("(f x) + c expected, got %q", got)
	}
}

func TestRenderUnknownKey(t *testing.T) {
	rd := NewRenderer(NewRegistry())
	a := term.NewArena()
	n := a.Applied("_ ?? _", a.Var("a"), a.Var("b"))
	_, e := rd.Render(a.Tree(n))
	if e == nil {
		t.Errorf("error expected for unregistered key")
	}
}
