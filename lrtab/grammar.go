// Package lrtab is a from-scratch canonical-LR(1) table generator and
// table-driven parser engine. It is grounded on the teacher's own parser
// construction library, internal/ictiobus/grammar (LR0Item/LR1Item
// representation) and internal/ictiobus/automaton (closure/goto-driven
// canonical collection construction over named finite automata), trimmed to
// the CLR(1) path only: the teacher also builds SLR(1), LALR(1) and LL(1)
// tables from the same grammar representation, but folidity's grammar is
// defined once, against one fixed algorithm, so those variants and the
// machinery to select between them are not carried over.
//
// Unlike ictiobus, which parses grammar productions out of a textual
// "fishi" spec language (itself out of scope for folidity — no plugin or
// project-scaffolding system, §1), folidity builds its Grammar directly from
// Go data: a Production slice supplied by the internal/parser package.
package lrtab

import "fmt"

const epsilon = ""

// EndOfInput is the lookahead/terminal symbol representing end of token
// stream, analogous to ictiobus's types.TokenEndOfText.
const EndOfInput = "$"

// Production is one grammar rule `Head -> Body`. Action identifies, by
// index, the semantic action the parser should invoke when this production
// is reduced; it is opaque to lrtab itself.
type Production struct {
	Head string
	Body []string
	Action int
}

func (p Production) String() string {
	return fmt.Sprintf("%s -> %v", p.Head, p.Body)
}

// Grammar is a context-free grammar over string-named symbols. A symbol that
// never appears as the Head of any production is a terminal; everything
// else is a nonterminal. Start is augmented internally with a fresh goal
// production `Start' -> Start` so that "accept" has an unambiguous item.
type Grammar struct {
	Start       string
	Productions []Production

	nonterminals map[string]bool
	terminals    map[string]bool
}

// NewGrammar validates and indexes productions. It does not mutate prods.
func NewGrammar(start string, prods []Production) (*Grammar, error) {
	g := &Grammar{
		Start:        start,
		Productions:  prods,
		nonterminals: map[string]bool{},
		terminals:    map[string]bool{},
	}

	for _, p := range prods {
		g.nonterminals[p.Head] = true
	}
	if !g.nonterminals[start] {
		return nil, fmt.Errorf("lrtab: start symbol %q is not the head of any production", start)
	}

	for _, p := range prods {
		for _, sym := range p.Body {
			if sym == epsilon {
				continue
			}
			if !g.nonterminals[sym] {
				g.terminals[sym] = true
			}
		}
	}

	return g, nil
}

func (g *Grammar) IsTerminal(sym string) bool    { return sym != epsilon && !g.nonterminals[sym] }
func (g *Grammar) IsNonterminal(sym string) bool { return g.nonterminals[sym] }

// ProductionsFor returns the indices of every production headed by nt, in
// declaration order.
func (g *Grammar) ProductionsFor(nt string) []int {
	var out []int
	for i, p := range g.Productions {
		if p.Head == nt {
			out = append(out, i)
		}
	}
	return out
}

// firstSets computes FIRST(X) for every grammar symbol via the standard
// fixed-point iteration, needed to compute item-set lookaheads during
// closure.
func (g *Grammar) firstSets() map[string]map[string]bool {
	first := map[string]map[string]bool{}
	ensure := func(sym string) map[string]bool {
		if first[sym] == nil {
			first[sym] = map[string]bool{}
		}
		return first[sym]
	}

	for t := range g.terminals {
		ensure(t)[t] = true
	}
	ensure(EndOfInput)[EndOfInput] = true

	changed := true
	for changed {
		changed = false
		for _, p := range g.Productions {
			headSet := ensure(p.Head)
			if len(p.Body) == 0 {
				if !headSet[epsilon] {
					headSet[epsilon] = true
					changed = true
				}
				continue
			}
			allNullableSoFar := true
			for _, sym := range p.Body {
				symSet := ensure(sym)
				for t := range symSet {
					if t != epsilon && !headSet[t] {
						headSet[t] = true
						changed = true
					}
				}
				if !symSet[epsilon] {
					allNullableSoFar = false
					break
				}
			}
			if allNullableSoFar {
				if !headSet[epsilon] {
					headSet[epsilon] = true
					changed = true
				}
			}
		}
	}

	return first
}

// firstOfSequence computes FIRST of a symbol sequence followed by a known
// lookahead terminal (used for LR(1) item lookahead propagation): FIRST(seq)
// if seq is non-nullable, union {lookahead} if seq is entirely nullable.
func firstOfSequence(seq []string, lookahead string, first map[string]map[string]bool) map[string]bool {
	out := map[string]bool{}
	allNullable := true
	for _, sym := range seq {
		set := first[sym]
		for t := range set {
			if t != epsilon {
				out[t] = true
			}
		}
		if !set[epsilon] {
			allNullable = false
			break
		}
	}
	if allNullable {
		out[lookahead] = true
	}
	return out
}
