package grammar

import (
	"strings"

	"github.com/avlov/notx/format"
	"github.com/avlov/notx/term"
)

type prodRec struct {
	prod Production
	act  Action
}

type entryRec struct {
	kind  EntryKind
	prods []prodRec
}

// Table is the in-memory grammar engine: an extensible set of entries per
// universe with an ordered list of productions at each precedence level, and
// a whitespace-tokenized precedence-climbing parse driver. The production
// engine of a proof assistant replaces it behind the Engine interface.
type Table struct {
	universes map[string]map[string]*entryRec
	tokens    map[string]bool

	// production indices used by the parse driver, keyed by the terminal
	// that identifies the production: the leading one for closed forms,
	// the one after the left hole for left-open forms.
	closed   map[string][]prodRec
	leftOpen map[string][]prodRec
}

func NewTable() *Table {
	return &Table{
		universes: make(map[string]map[string]*entryRec),
		tokens:    make(map[string]bool),
		closed:    make(map[string][]prodRec),
		leftOpen:  make(map[string][]prodRec),
	}
}

func (t *Table) CreateEntry(universe, name string, kind EntryKind) error {
	u := t.universes[universe]
	if u == nil {
		u = make(map[string]*entryRec)
		t.universes[universe] = u
	}
	if u[name] != nil {
		return entryDefinedError(universe, name)
	}

	u[name] = &entryRec{kind: kind}
	return nil
}

func (t *Table) EntryExists(universe, name string) bool {
	return t.universes[universe][name] != nil
}

func (t *Table) AddProduction(universe, entry string, p Production, act Action) error {
	er := t.universes[universe][entry]
	if er == nil {
		return unknownEntryError(universe, entry)
	}
	if len(p.Items) == 0 {
		return malformedProductionError(p.Key, "no items")
	}

	if p.Items[0].Token != "" {
		er.prods = append(er.prods, prodRec{p, act})
		t.closed[p.Items[0].Token] = append(t.closed[p.Items[0].Token], prodRec{p, act})
		return nil
	}

	if len(p.Items) < 2 || p.Items[1].Token == "" {
		return malformedProductionError(p.Key, "left hole not followed by a terminal")
	}
	er.prods = append(er.prods, prodRec{p, act})
	t.leftOpen[p.Items[1].Token] = append(t.leftOpen[p.Items[1].Token], prodRec{p, act})
	return nil
}

func (t *Table) RegisterToken(text string) error {
	if text == "" {
		return emptyTokenError()
	}

	t.tokens[text] = true
	return nil
}

// HasToken reports whether the token text has been registered.
func (t *Table) HasToken(text string) bool {
	return t.tokens[text]
}

// Productions returns the productions installed at an entry, in order.
func (t *Table) Productions(universe, entry string) []Production {
	er := t.universes[universe][entry]
	if er == nil {
		return nil
	}

	ps := make([]Production, len(er.prods))
	for i, r := range er.prods {
		ps[i] = r.prod
	}
	return ps
}

// Parse parses a whitespace-tokenized input at the loosest level and returns
// the resulting tree. Identifiers become variable leaves; resolution is the
// elaborator's business.
func (t *Table) Parse(input string) (term.Tree, error) {
	run := &parseRun{t: t, toks: strings.Fields(input), a: term.NewArena()}
	n, _, e := run.parse(format.Window{Level: format.MaxLevel, Tight: format.Exact})
	if e != nil {
		return term.Tree{}, e
	}
	if run.pos < len(run.toks) {
		return term.Tree{}, trailingTokenError(run.toks[run.pos])
	}

	return run.a.Tree(n), nil
}

type parseRun struct {
	t    *Table
	toks []string
	pos  int
	a    *term.Arena
}

func (r *parseRun) peek() (string, bool) {
	if r.pos >= len(r.toks) {
		return "", false
	}
	return r.toks[r.pos], true
}

func (r *parseRun) expect(tok string) error {
	got, f := r.peek()
	if !f {
		return unexpectedEndError(tok)
	}
	if got != tok {
		return unexpectedTokenError(got, tok)
	}

	r.pos++
	return nil
}

// parse parses one expression acceptable in window w: a closed form followed
// by any chain of left-open productions whose level and left window allow it.
// Returns the node and the level it was constructed at.
func (r *parseRun) parse(w format.Window) (int, int, error) {
	n, lvl, e := r.parseClosed(w)
	if e != nil {
		return 0, 0, e
	}

	for {
		tok, f := r.peek()
		if !f {
			break
		}
		rec, found := r.matchLeftOpen(tok, w, lvl)
		if !found {
			break
		}

		r.pos++
		subs := []int{n}
		e = r.parseItems(rec.prod.Items[2:], &subs)
		if e != nil {
			return 0, 0, e
		}
		n = rec.act(r.a, subs)
		lvl = rec.prod.Level
	}

	return n, lvl, nil
}

func (r *parseRun) matchLeftOpen(tok string, w format.Window, leftLevel int) (prodRec, bool) {
	for _, rec := range r.t.leftOpen[tok] {
		if w.Accepts(rec.prod.Level) && rec.prod.Items[0].Win.Accepts(leftLevel) {
			return rec, true
		}
	}
	return prodRec{}, false
}

func (r *parseRun) parseClosed(w format.Window) (int, int, error) {
	tok, f := r.peek()
	if !f {
		return 0, 0, unexpectedEndError("expression")
	}

	if tok == "(" {
		r.pos++
		n, _, e := r.parse(format.Window{Level: format.MaxLevel, Tight: format.Exact})
		if e != nil {
			return 0, 0, e
		}
		e = r.expect(")")
		if e != nil {
			return 0, 0, e
		}
		return n, format.MinLevel, nil
	}

	for _, rec := range r.t.closed[tok] {
		if !w.Accepts(rec.prod.Level) {
			continue
		}

		r.pos++
		subs := make([]int, 0, len(rec.prod.Items))
		e := r.parseItems(rec.prod.Items[1:], &subs)
		if e != nil {
			return 0, 0, e
		}
		return rec.act(r.a, subs), rec.prod.Level, nil
	}

	if isIdent(tok) {
		r.pos++
		return r.a.Var(tok), format.MinLevel, nil
	}

	return 0, 0, unexpectedTokenError(tok, "expression")
}

func (r *parseRun) parseItems(items []Item, subs *[]int) error {
	for _, it := range items {
		if it.Token != "" {
			e := r.expect(it.Token)
			if e != nil {
				return e
			}
			continue
		}

		n, _, e := r.parse(it.Win)
		if e != nil {
			return e
		}
		*subs = append(*subs, n)
	}
	return nil
}

func isIdent(tok string) bool {
	c := tok[0]
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_' && len(tok) > 1
}
