package print

import (
	"strconv"
	"strings"

	"github.com/avlov/notx/format"
	"github.com/avlov/notx/term"
)

// Renderer applies registered print rules to terms. Applied-notation nodes
// print through the rule of their key; terms built by other means print
// through the first registered rule whose matcher reifies them; plain
// applications fall back to juxtaposition at the loosest level.
type Renderer struct {
	reg *Registry
}

func NewRenderer(reg *Registry) *Renderer {
	return &Renderer{reg}
}

// Render renders a term at the loosest window.
func (rd *Renderer) Render(t term.Tree) (string, error) {
	return rd.render(t, format.Window{Level: format.MaxLevel, Tight: format.Exact})
}

func (rd *Renderer) render(t term.Tree, w format.Window) (string, error) {
	text, level, e := rd.display(t)
	if e != nil {
		return "", e
	}
	if !w.Accepts(level) {
		text = "(" + text + ")"
	}
	return text, nil
}

// display returns the unparenthesized text of a term together with the
// precedence level it was displayed at.
func (rd *Renderer) display(t term.Tree) (string, int, error) {
	a := t.Arena
	switch a.Kind(t.Root) {
	case term.ConstNode, term.VarNode:
		return a.Text(t.Root), format.MinLevel, nil

	case term.MetaNode:
		return "?" + strconv.Itoa(a.MetaIndex(t.Root)), format.MinLevel, nil

	case term.AppliedNode:
		rule := rd.reg.Get(a.Text(t.Root))
		if rule == nil {
			return "", 0, unknownNotationError(a.Text(t.Root))
		}
		kids := a.Kids(t.Root)
		subs := make([]term.Tree, len(kids))
		for i, k := range kids {
			subs[i] = a.Tree(k)
		}
		text, e := rd.apply(rule, subs)
		return text, rule.Level, e
	}

	// a term not built through any notation: reify it through the first
	// matching rule, or fall back to plain application
	for _, key := range rd.reg.order {
		rule := rd.reg.rules[key]
		if rule.Match == nil {
			continue
		}
		subs, f := rule.Match.Match(t)
		if !f {
			continue
		}
		text, e := rd.apply(rule, subs)
		return text, rule.Level, e
	}

	kids := a.Kids(t.Root)
	parts := make([]string, len(kids))
	atom := format.Window{Level: format.MinLevel, Tight: format.Exact}
	for i, k := range kids {
		s, e := rd.render(a.Tree(k), atom)
		if e != nil {
			return "", 0, e
		}
		parts[i] = s
	}
	return strings.Join(parts, " "), format.MaxLevel, nil
}

// apply emits the hunk sequence of one rule: one box per notation
// application.
func (rd *Renderer) apply(rule *Rule, subs []term.Tree) (string, error) {
	parts := make([]string, 0, len(rule.Hunks))
	for _, h := range rule.Hunks {
		switch h.Kind {
		case TextHunk:
			parts = append(parts, h.Text)
		case SubHunk:
			if h.Index >= len(subs) {
				return "", holeCountError(rule.Key, len(subs))
			}
			s, e := rd.render(subs[h.Index], h.Win)
			if e != nil {
				return "", e
			}
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " "), nil
}
