package format

import (
	"strings"
	"testing"

	err "github.com/avlov/notx"
)

func TestTokenize(t *testing.T) {
	samples := [][]string{
		{"x '+' y", "x|'+'|y"},
		{"  [  x ,   y ] ", "[|x|,|y|]"},
		{"", ""},
		{"   ", ""},
	}
	for _, s := range samples {
		got := strings.Join(Tokenize(s[0]), "|")
		if got != s[1] {
			t.Errorf("%q: expected %q, got %q", s[0], s[1], got)
		}
	}
}

func TestTokenizeRoundTrip(t *testing.T) {
	for _, s := range []string{"x '+' y", "[ x , y ]", "if c then a else b"} {
		got := strings.Join(Tokenize(s), " ")
		if got != s {
			t.Errorf("normalized round-trip broken: %q -> %q", s, got)
		}
	}
}

func TestWindows(t *testing.T) {
	samples := []struct {
		assoc       Assoc
		left, right Window
	}{
		{LeftAssoc, Window{7, Exact}, Window{7, Loose}},
		{Unspecified, Window{7, Exact}, Window{7, Loose}},
		{RightAssoc, Window{7, Loose}, Window{7, Exact}},
		{NonAssoc, Window{7, Loose}, Window{7, Loose}},
	}
	for _, s := range samples {
		l, r := Windows(7, s.assoc)
		if l != s.left || r != s.right {
			t.Errorf("%s: expected %s %s, got %s %s", s.assoc, s.left, s.right, l, r)
		}
	}
}

func TestAccepts(t *testing.T) {
	w := Window{4, Exact}
	if !w.Accepts(4) || !w.Accepts(0) || w.Accepts(5) {
		t.Errorf("exact window broken")
	}
	w = Window{4, Loose}
	if w.Accepts(4) || !w.Accepts(3) {
		t.Errorf("loose window broken")
	}
}

func checkSymbols(symbols []Symbol, expected string) bool {
	parts := make([]string, len(symbols))
	for i, s := range symbols {
		if s.Kind == TerminalSymbol {
			parts[i] = s.Text
		} else {
			parts[i] = s.Text + ":" + s.Win.String()
		}
	}
	return strings.Join(parts, " ") == expected
}

func TestClassify(t *testing.T) {
	samples := []struct {
		format   string
		level    int
		assoc    Assoc
		expected string
	}{
		{"x '+' y", 4, LeftAssoc, "x:4E + y:4L"},
		{"x '^' y", 4, RightAssoc, "x:4L ^ y:4E"},
		{"x '==' y", 7, NonAssoc, "x:7L == y:7L"},
		{"x '+' y", 4, Unspecified, "x:4E + y:4L"},
		// interior holes are delimited on both sides and get the maximal window
		{"[ x , y ]", 1, NonAssoc, "[ x:10E , y:10E ]"},
		{"'if' c 'then' a 'else' b", 2, NonAssoc, "if c:10E then a:10E else b:2L"},
		// single hole with no trailing terminal gets the right window
		{"'-' x", 3, RightAssoc, "- x:3E"},
		{"x '!'", 3, LeftAssoc, "x:3E !"},
	}

	for _, s := range samples {
		symbols, e := Classify(Tokenize(s.format), s.level, s.assoc, nil)
		if e != nil {
			t.Errorf("%q: unexpected error: %s", s.format, e.Error())
			continue
		}
		if !checkSymbols(symbols, s.expected) {
			t.Errorf("%q: expected %q, got %v", s.format, s.expected, symbols)
		}
	}
}

func TestClassifyPinned(t *testing.T) {
	symbols, e := Classify(Tokenize("x '|-' y"), 6, LeftAssoc, map[string]int{"y": 6})
	if e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	if !checkSymbols(symbols, "x:6E |- y:6E") {
		t.Errorf("pinned window not applied: %v", symbols)
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

func TestClassifyErrors(t *testing.T) {
	_, e := Classify(Tokenize("x '+' x"), 4, LeftAssoc, nil)
	checkError(t, e, DuplicateVariableError)

	_, e = Classify(Tokenize("x y '+'"), 4, LeftAssoc, nil)
	checkError(t, e, AdjacentHolesError)

	// unquoted alphabetic keywords are holes, not terminals
	_, e = Classify(Tokenize("if c then a else b"), 2, NonAssoc, nil)
	checkError(t, e, AdjacentHolesError)

	_, e = Classify(Tokenize("x '+' y"), 4, LeftAssoc, map[string]int{"y": 11})
	checkError(t, e, PinnedLevelError)

	_, e = Classify(Tokenize("x '+' y"), 4, LeftAssoc, map[string]int{"z": 4})
	checkError(t, e, UnknownPinError)
}

func TestKey(t *testing.T) {
	symbols, e := Classify(Tokenize("x '+' y"), 4, LeftAssoc, nil)
	if e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	if Key(symbols) != "_ + _" {
		t.Errorf("_ + _ expected, got %q", Key(symbols))
	}

	symbols, _ = Classify(Tokenize("[ x , y ]"), 1, NonAssoc, nil)
	if Key(symbols) != "[ _ , _ ]" {
		t.Errorf("[ _ , _ ] expected, got %q", Key(symbols))
	}
}
