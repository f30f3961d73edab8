// Package object implements the extension-object lifecycle required by the
// module/persistence framework: every registration (token, grammar rule,
// print rule, notation bundle, delimiter bundle) is one object subject to
// the load/open/cache/subst/export contract plus classification. The
// framework supplies the invocation schedule; this package supplies the
// behavior.
package object

import (
	"github.com/avlov/notx/format"
	"github.com/avlov/notx/grammar"
	"github.com/avlov/notx/pattern"
	"github.com/avlov/notx/print"
	"github.com/avlov/notx/scope"
	"github.com/avlov/notx/term"
)

type Kind int

const (
	TokenObject Kind = iota
	GrammarObject
	PrintObject
	NotationObject
	DelimiterObject
)

type Classification int

const (
	// Keep the object as-is across instantiation.
	Keep Classification = iota
	// Substitute the object through the instantiation substitution.
	Substitute
	// Discard the object on instantiation.
	Discard
)

// Descriptor is the unit of registration produced by compiling one
// declaration: created once, immutable thereafter.
type Descriptor struct {
	Scope   string
	Level   int
	Assoc   format.Assoc
	Symbols []format.Symbol
	Key     string

	// Pattern is the elaborated macro skeleton; it also serves as the
	// reification inverse. Nil for delimiter bundles.
	Pattern    *pattern.Pattern
	Production grammar.Production
	Rule       *print.Rule
}

// Object is the closed variant the five lifecycle operations dispatch over.
type Object struct {
	Kind   Kind
	Scope  string
	Token  string           // TokenObject
	Delims scope.Delimiters // DelimiterObject
	Desc   *Descriptor      // all kinds but TokenObject
}

// Adapter ties the process-wide registries together and carries out the
// lifecycle operations on extension objects.
type Adapter struct {
	Scopes   *scope.Registry
	Engine   grammar.Engine
	Prints   *print.Registry
	Universe string

	descs map[string]*Descriptor
}

// NewAdapter creates an adapter and makes sure the conventional grammar
// entries of the universe exist.
func NewAdapter(scopes *scope.Registry, eng grammar.Engine, prints *print.Registry) (*Adapter, error) {
	ad := &Adapter{
		Scopes:   scopes,
		Engine:   eng,
		Prints:   prints,
		Universe: grammar.DefaultUniverse,
		descs:    make(map[string]*Descriptor),
	}
	e := grammar.EnsureEntries(eng, ad.Universe)
	if e != nil {
		return nil, e
	}
	return ad, nil
}

// Load is called when the object's defining section comes into scope, at
// any nesting depth. Side-effect-free bookkeeping only: it creates the
// scope so later operations find it, and never touches the grammar.
// Idempotent.
func (ad *Adapter) Load(depth int, o *Object) error {
	ad.Scopes.Declare(o.Scope)
	return nil
}

// Open is called when the object becomes active; grammar productions and
// print rules are only installed at the top level (depth 1), guarded by the
// scope registry's dedup check.
func (ad *Adapter) Open(depth int, o *Object) error {
	if depth != 1 {
		return nil
	}
	return ad.install(o)
}

// Cache is Open at depth 1, used on the first installation pass when the
// module is freshly defined rather than re-opened.
func (ad *Adapter) Cache(o *Object) error {
	return ad.install(o)
}

// Subst produces a new object with all references to module-local entities
// rewritten according to the instantiation substitution, without installing
// anything. The pattern and its reification side are substituted
// consistently because they are the same tree.
func (ad *Adapter) Subst(sub term.Substitution, o *Object) *Object {
	return &Object{
		Kind:   o.Kind,
		Scope:  o.Scope,
		Token:  o.Token,
		Delims: o.Delims,
		Desc:   substDescriptor(sub, o.Desc),
	}
}

// Export decides whether the object survives a section boundary: notation
// objects always do, unchanged.
func (ad *Adapter) Export(o *Object) *Object {
	return o
}

// Classify always answers Substitute: a notation has no state beyond what
// Subst already captures.
func (ad *Adapter) Classify(o *Object) Classification {
	return Substitute
}

func substDescriptor(sub term.Substitution, d *Descriptor) *Descriptor {
	if d == nil {
		return nil
	}

	nd := &Descriptor{
		Scope:      d.Scope,
		Level:      d.Level,
		Assoc:      d.Assoc,
		Symbols:    d.Symbols,
		Key:        d.Key,
		Production: d.Production,
	}
	if d.Pattern != nil {
		nd.Pattern = d.Pattern.Rename(sub)
	}
	if d.Rule != nil {
		nd.Rule = &print.Rule{Key: d.Rule.Key, Level: d.Rule.Level, Hunks: d.Rule.Hunks}
		if nd.Pattern != nil {
			nd.Rule.Match = nd.Pattern
		}
	}
	return nd
}

// install registers an object with the grammar and printer services. The
// grammar production and the print rule go in together or not at all; a
// (level, key) pair already active in the scope re-links to the canonical
// print rule and changes nothing else.
func (ad *Adapter) install(o *Object) error {
	switch o.Kind {
	case TokenObject:
		return ad.Engine.RegisterToken(o.Token)

	case DelimiterObject:
		s := ad.Scopes.Declare(o.Scope)
		e := s.SetDelimiters(o.Delims)
		if e != nil {
			return e
		}
		e = ad.Engine.RegisterToken(o.Delims.Open)
		if e == nil {
			e = ad.Engine.RegisterToken(o.Delims.Close)
		}
		if e != nil {
			return e
		}
		if o.Desc != nil {
			return ad.installRules(o.Desc, true, true)
		}
		return nil

	case GrammarObject:
		if o.Desc == nil {
			return noDescriptorError(o.Kind)
		}
		return ad.installRules(o.Desc, true, false)

	case PrintObject:
		if o.Desc == nil {
			return noDescriptorError(o.Kind)
		}
		return ad.installRules(o.Desc, false, true)

	case NotationObject:
		if o.Desc == nil {
			return noDescriptorError(o.Kind)
		}
		return ad.installRules(o.Desc, true, true)
	}

	return unknownKindError(int(o.Kind))
}

func (ad *Adapter) installRules(d *Descriptor, withGrammar, withPrint bool) error {
	s := ad.Scopes.Declare(d.Scope)
	if s.HasNotation(d.Level, d.Key) {
		if withPrint && d.Rule != nil {
			d.Rule = ad.Prints.Add(d.Rule)
		}
		return nil
	}

	if withGrammar {
		for _, sym := range d.Symbols {
			if sym.Kind != format.TerminalSymbol {
				continue
			}
			e := ad.Engine.RegisterToken(sym.Text)
			if e != nil {
				return e
			}
		}

		entry := grammar.EntryName(d.Level)
		e := ad.Engine.AddProduction(ad.Universe, entry, d.Production, grammar.AppliedAction(d.Key))
		if e != nil {
			return e
		}
	}
	if withPrint && d.Rule != nil {
		d.Rule = ad.Prints.Add(d.Rule)
	}
	s.AddNotation(d.Level, d.Key)
	if ad.descs[d.Key] == nil {
		ad.descs[d.Key] = d
	}
	return nil
}

// Descriptor returns the canonical installed descriptor for a notation key,
// or nil.
func (ad *Adapter) Descriptor(key string) *Descriptor {
	return ad.descs[key]
}

// Expand rewrites every applied-notation node of a parsed tree into the
// full term by substituting the hole sub-trees into the notation's macro
// pattern.
func (ad *Adapter) Expand(t term.Tree) (term.Tree, error) {
	a := term.NewArena()
	root, e := ad.expand(a, t)
	if e != nil {
		return term.Tree{}, e
	}
	return a.Tree(root), nil
}

func (ad *Adapter) expand(a *term.Arena, t term.Tree) (int, error) {
	sa := t.Arena
	switch sa.Kind(t.Root) {
	case term.ConstNode, term.VarNode, term.MetaNode:
		return a.Graft(sa, t.Root), nil

	case term.AppliedNode:
		d := ad.descs[sa.Text(t.Root)]
		if d == nil || d.Pattern == nil {
			return 0, unknownNotationKeyError(sa.Text(t.Root))
		}
		kids := sa.Kids(t.Root)
		subs := make([]int, len(kids))
		for i, k := range kids {
			var e error
			subs[i], e = ad.expand(a, sa.Tree(k))
			if e != nil {
				return 0, e
			}
		}
		return d.Pattern.Apply(a, subs)
	}

	kids := sa.Kids(t.Root)
	ks := make([]int, len(kids))
	for i, k := range kids {
		var e error
		ks[i], e = ad.expand(a, sa.Tree(k))
		if e != nil {
			return 0, e
		}
	}
	return a.App(ks[0], ks[1:]...), nil
}
