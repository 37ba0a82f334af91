package lrtab

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/folidity/folidity/span"
	"github.com/folidity/folidity/token"
)

// A classic unambiguous expression grammar:
//
//	E -> E + T | T
//	T -> T * F | F
//	F -> id
const (
	symE  = "E"
	symT  = "T"
	symF  = "F"
	symId = "id"
	symPl = "+"
	symMl = "*"
)

func exprGrammar(t *testing.T) *Grammar {
	t.Helper()
	g, err := NewGrammar(symE, []Production{
		{Head: symE, Body: []string{symE, symPl, symT}, Action: 0},
		{Head: symE, Body: []string{symT}, Action: 1},
		{Head: symT, Body: []string{symT, symMl, symF}, Action: 2},
		{Head: symT, Body: []string{symF}, Action: 3},
		{Head: symF, Body: []string{symId}, Action: 4},
	})
	if err != nil {
		t.Fatalf("NewGrammar: %v", err)
	}
	return g
}

func Test_Build_producesConflictFreeTablesForExprGrammar(t *testing.T) {
	assert := assert.New(t)

	tables, err := Build(exprGrammar(t))
	assert.NoError(err)
	assert.Empty(tables.Conflicts, "a classically unambiguous grammar must compile without conflicts")
	assert.NotEmpty(tables.States)
}

// evalHooks folds a flat operand/operator stack into an int during Reduce,
// exercising the full shift-reduce loop end to end against id + id * id.
func evalHooks() (Hooks, *[]string) {
	var trace []string
	return Hooks{
		Shift: func(tok token.Token) any { return tok.Lexeme() },
		Reduce: func(prod Production, children []any) any {
			trace = append(trace, prod.String())
			switch prod.Action {
			case 0: // E -> E + T
				return children[0].(int) + children[2].(int)
			case 1, 3: // E -> T | T -> F
				return children[0]
			case 2: // T -> T * F
				return children[0].(int) * children[2].(int)
			case 4: // F -> id
				v := 0
				for range children[0].(string) {
					v++
				}
				return v // lexeme length stands in for a numeric value
			default:
				return nil
			}
		},
		RecoverValue: func(sp span.Span) any { return nil },
		OnError:      func(sp span.Span, msg string) {},
	}, &trace
}

func Test_Parser_Parse_shiftReducesExpression(t *testing.T) {
	assert := assert.New(t)

	tables, err := Build(exprGrammar(t))
	assert.NoError(err)

	idClass := token.MakeClass(symId)
	plClass := token.MakeClass(symPl)
	mlClass := token.MakeClass(symMl)

	// "a" + "bb" * "c": id lengths 1, 2, 1 => 1 + (2*1) = 3
	toks := []token.Token{
		token.New(idClass, "a", span.Zero),
		token.New(plClass, "+", span.Zero),
		token.New(idClass, "bb", span.Zero),
		token.New(mlClass, "*", span.Zero),
		token.New(idClass, "c", span.Zero),
	}
	eot := token.New(token.EndOfText, "", span.Zero)
	stream := token.NewSliceStream(toks, eot)

	hooks, trace := evalHooks()
	classOf := func(tok token.Token) string { return tok.Class().ID() }
	p := NewParser(tables, classOf, hooks)

	result := p.Parse(stream)
	assert.Equal(3, result)
	assert.NotEmpty(*trace)
}
