package verify

import (
	"fmt"

	"github.com/folidity/folidity/ast"
	"github.com/folidity/folidity/ir"
)

// translate lowers e into an SMT-LIB2 formula string by structural
// recursion (§4.4.1 step 2), reusing scope's constants so that repeated
// access to the same bound field (`s.a` appearing twice) refers to the
// same SMT constant both times.
func translate(c *ir.ContractDefinition, scope *symbolScope, e *ast.Expression) string {
	switch e.Kind {
	case ast.ENumberLit:
		if e.IntValue < 0 {
			return fmt.Sprintf("(- %d)", -e.IntValue)
		}
		return fmt.Sprintf("%d", e.IntValue)

	case ast.EFloatLit:
		return fmt.Sprintf("%v", e.FloatValue)

	case ast.EBoolLit:
		if e.BoolValue {
			return "true"
		}
		return "false"

	case ast.EStringLit:
		return internLiteral(scope, "StringSort", "str", e.StringValue)

	case ast.EHexLit:
		return internLiteral(scope, "HexSort", "hex", string(e.ByteValue))

	case ast.EAddressLit:
		return internLiteral(scope, "AddressSort", "addr", e.StringValue)

	case ast.ECharLit:
		return internLiteral(scope, "CharSort", "char", string(e.CharValue))

	case ast.EVarRef:
		if name, ok := scope.vars[e.Name.Name]; ok {
			return name
		}
		return scope.freshName("free_" + e.Name.Name)

	case ast.EMemberAccess:
		return translateMemberAccess(c, scope, e)

	case ast.EBinary:
		return translateBinary(c, scope, e)

	case ast.EUnary:
		return translateUnary(c, scope, e)

	case ast.EListLit:
		// Aggregate literals are not modeled precisely; a fresh opaque
		// constant keeps the surrounding formula well-formed without
		// asserting anything false about its contents.
		return scope.freshName("list")

	case ast.ECall, ast.EInit:
		return scope.freshName("opaque")

	default:
		return "true"
	}
}

func internLiteral(scope *symbolScope, sort, prefix, value string) string {
	key := sort + ":" + value
	if name, ok := scope.literal[key]; ok {
		return name
	}
	name := scope.freshName(prefix)
	scope.literal[key] = name
	return name
}

// translateMemberAccess translates `target.field`, reusing one constant per
// distinct (root variable, field) path so the same access always resolves
// to the same symbol within a declaration's formulas (§4.4.1 step 2:
// "reusing the same constants when accessing fields of a bound state
// variable ... so identities survive cross-block composition").
func translateMemberAccess(c *ir.ContractDefinition, scope *symbolScope, e *ast.Expression) string {
	path := memberPath(e)
	if name, ok := scope.vars[path]; ok {
		return name
	}
	name := scope.freshName("field_" + path)
	scope.vars[path] = name
	return name
}

func memberPath(e *ast.Expression) string {
	if e.Kind != ast.EMemberAccess {
		if e.Kind == ast.EVarRef {
			return e.Name.Name
		}
		return "expr"
	}
	return memberPath(e.Target) + "_" + e.Field.Name
}

func translateBinary(c *ir.ContractDefinition, scope *symbolScope, e *ast.Expression) string {
	left := translate(c, scope, e.Left)
	right := translate(c, scope, e.Right)
	switch e.BinOp {
	case ast.OpAdd:
		return fmt.Sprintf("(+ %s %s)", left, right)
	case ast.OpSub:
		return fmt.Sprintf("(- %s %s)", left, right)
	case ast.OpMul:
		return fmt.Sprintf("(* %s %s)", left, right)
	case ast.OpDiv:
		return fmt.Sprintf("(div %s %s)", left, right)
	case ast.OpMod:
		// Truncating-mod sign convention (Open Question decision,
		// SPEC_FULL.md §9): the result takes the dividend's sign, which
		// `mod` alone does not guarantee, so wrap with the correction
		// `ite` form for negative dividends.
		return fmt.Sprintf("(ite (< %s 0) (- (mod (- %s) %s)) (mod %s %s))", left, left, right, left, right)
	case ast.OpEq:
		return fmt.Sprintf("(= %s %s)", left, right)
	case ast.OpNotEq:
		return fmt.Sprintf("(not (= %s %s))", left, right)
	case ast.OpLt:
		return fmt.Sprintf("(< %s %s)", left, right)
	case ast.OpGt:
		return fmt.Sprintf("(> %s %s)", left, right)
	case ast.OpLtEq:
		return fmt.Sprintf("(<= %s %s)", left, right)
	case ast.OpGtEq:
		return fmt.Sprintf("(>= %s %s)", left, right)
	case ast.OpAnd:
		return fmt.Sprintf("(and %s %s)", left, right)
	case ast.OpOr:
		return fmt.Sprintf("(or %s %s)", left, right)
	case ast.OpIn:
		return fmt.Sprintf("(select %s %s)", right, left)
	default:
		return "true"
	}
}

func translateUnary(c *ir.ContractDefinition, scope *symbolScope, e *ast.Expression) string {
	operand := translate(c, scope, e.Operand)
	switch e.UnOp {
	case ast.OpNot:
		return fmt.Sprintf("(not %s)", operand)
	case ast.OpNeg:
		return fmt.Sprintf("(- %s)", operand)
	default:
		return operand
	}
}
