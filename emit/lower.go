package emit

import (
	"fmt"
	"math"

	"github.com/folidity/folidity/ast"
)

// lowerExpr recursively lowers e into a (§4.5.2: "Statement and expression
// lowering is recursive"), leaving exactly one value on the stack.
func (e *emitter) lowerExpr(a *asm, fn *funcState, expr *ast.Expression) {
	switch expr.Kind {
	case ast.ENumberLit:
		if expr.Resolved.Kind == ast.TSignedInt {
			a.emit("pushbytes %s", encodeSignedInt(expr.IntValue))
		} else {
			a.emit("pushint %d", expr.IntValue)
		}
	case ast.EFloatLit:
		a.emit("pushbytes %s", floatBits(expr.FloatValue))
	case ast.EBoolLit:
		if expr.BoolValue {
			a.line("pushint 1")
		} else {
			a.line("pushint 0")
		}
	case ast.EStringLit:
		a.emit("pushbytes %s", stringBytes(expr.StringValue))
	case ast.EHexLit:
		a.emit("pushbytes 0x%x", expr.ByteValue)
	case ast.EAddressLit:
		a.emit("pushbytes %s", stringBytes(expr.StringValue))
	case ast.ECharLit:
		a.emit("pushint %d", expr.CharValue)

	case ast.EListLit:
		e.lowerListLit(a, fn, expr)

	case ast.EVarRef:
		c, ok := fn.chunkFor(expr.Name.Name)
		if !ok {
			// Not yet materialized (e.g. a state/access-attr binder loaded
			// lazily): fall back to its scratch slot directly.
			c = loadSlotChunk(fn.allocSlot(expr.Name.Name))
		}
		for _, l := range c.lines {
			a.line(l)
		}

	case ast.EMemberAccess:
		e.lowerMemberAccess(a, fn, expr)

	case ast.ECall:
		for i := range expr.Args {
			e.lowerExpr(a, fn, &expr.Args[i])
		}
		a.emit("callsub %s", subroutineLabel(expr.Func, e.c.DeclName(expr.Func)))

	case ast.EInit:
		e.lowerInit(a, fn, expr)

	case ast.EBinary:
		e.lowerBinary(a, fn, expr)

	case ast.EUnary:
		e.lowerExpr(a, fn, expr.Operand)
		if expr.UnOp == ast.OpNot {
			a.line("!")
		} else {
			a.line("pushint 0")
			a.line("swap")
			a.line("-")
		}

	default:
		a.emit("// unsupported expression kind %d", expr.Kind)
	}
}

func (e *emitter) lowerListLit(a *asm, fn *funcState, expr *ast.Expression) {
	a.emit("pushint %d", len(expr.Elements))
	a.line("itob")
	for i := range expr.Elements {
		e.lowerExpr(a, fn, &expr.Elements[i])
		a.line("concat")
	}
}

func (e *emitter) lowerMemberAccess(a *asm, fn *funcState, expr *ast.Expression) {
	e.lowerExpr(a, fn, expr.Target)
	layout := e.layoutForType(expr.Target.Resolved)
	fl := layout.fieldLayout(expr.Field.Name)
	a.emit("extract %d %d", fl.Offset, fl.Size)
}

func (e *emitter) lowerInit(a *asm, fn *funcState, expr *ast.Expression) {
	layout := layoutFor(e.c, expr.InitSym)
	a.emit("// init %s, size %d", e.c.DeclName(expr.InitSym), layout.Size)

	buf := make([]bool, len(layout.Fields))
	for i := range expr.PositionArgs {
		if i < len(buf) {
			buf[i] = true
		}
	}

	a.emit("pushbytes 0x%0*d", layout.Size*2, 0) // zeroed scratch-backed byte array base
	for i, fl := range layout.Fields {
		if i < len(expr.PositionArgs) {
			e.lowerExpr(a, fn, &expr.PositionArgs[i])
		} else if expr.Spread.Present {
			e.lowerExpr(a, fn, expr.Spread.Value)
			a.emit("extract %d %d", fl.Offset, fl.Size)
		} else {
			a.emit("pushbytes 0x%0*d", fl.Size*2, 0)
		}
		a.emit("replace %d", fl.Offset)
	}

	e.emitInitAssertions(a, fn, expr.InitSym)
}

// emitInitAssertions synthesizes the `st`-block assertions attached to a
// struct/state/model initializer (§4.5.2: "After construction, synthesize
// assertions from any attached st block: load each field into scratch, push
// its corresponding chunk, emit the constraint expressions with the assert
// opcode").
func (e *emitter) emitInitAssertions(a *asm, fn *funcState, sym ast.GlobalSymbol) {
	var constraints []ast.Expression
	switch sym.Kind {
	case ast.DeclModel:
		m := e.c.Model(sym)
		if m.St.Present {
			constraints = m.St.Constraints
		}
	case ast.DeclState:
		st := e.c.State(sym)
		if st.St.Present {
			constraints = st.St.Constraints
		}
	}
	for i := range constraints {
		a.line("dup") // keep the constructed value on the stack between assertions
		e.lowerExpr(a, fn, &constraints[i])
		a.line("assert")
	}
}

func (e *emitter) lowerBinary(a *asm, fn *funcState, expr *ast.Expression) {
	signed := expr.Left.Resolved.Kind == ast.TSignedInt && expr.Right.Resolved.Kind == ast.TSignedInt
	e.lowerExpr(a, fn, expr.Left)
	e.lowerExpr(a, fn, expr.Right)

	if signed {
		switch expr.BinOp {
		case ast.OpAdd:
			a.line("callsub __sm_add")
			return
		case ast.OpSub:
			a.line("callsub __sm_sub")
			return
		case ast.OpMul:
			a.line("callsub __sm_mul")
			return
		case ast.OpDiv:
			a.line("callsub __sm_div")
			return
		case ast.OpMod:
			a.line("callsub __sm_mod")
			return
		case ast.OpEq, ast.OpNotEq, ast.OpLt, ast.OpGt, ast.OpLtEq, ast.OpGtEq:
			a.line("callsub __sm_cmp")
			a.emit("pushint %d", signCompareTarget(expr.BinOp))
			a.line(signCompareOp(expr.BinOp))
			return
		}
	}

	switch expr.BinOp {
	case ast.OpAdd:
		a.line("+")
	case ast.OpSub:
		a.line("-")
	case ast.OpMul:
		a.line("*")
	case ast.OpDiv:
		a.line("/")
	case ast.OpMod:
		a.line("%")
	case ast.OpEq:
		a.line("==")
	case ast.OpNotEq:
		a.line("!=")
	case ast.OpLt:
		a.line("<")
	case ast.OpGt:
		a.line(">")
	case ast.OpLtEq:
		a.line("<=")
	case ast.OpGtEq:
		a.line(">=")
	case ast.OpAnd:
		a.line("&&")
	case ast.OpOr:
		a.line("||")
	case ast.OpIn:
		a.line("// in: linear membership scan over fixed-capacity list/set")
		a.line("b __in_scan")
	default:
		a.emit("// unsupported binary op %d", expr.BinOp)
	}
}

// signCompareTarget/signCompareOp turn __sm_cmp's {-1,0,1} result into the
// requested comparison by comparing against the matching native int.
func signCompareTarget(op ast.BinOp) int64 {
	switch op {
	case ast.OpEq, ast.OpNotEq:
		return 0
	case ast.OpLt, ast.OpGtEq:
		return 18446744073709551615 // -1 as uint64
	default:
		return 1
	}
}

func signCompareOp(op ast.BinOp) string {
	switch op {
	case ast.OpEq:
		return "=="
	case ast.OpNotEq, ast.OpLtEq, ast.OpGtEq:
		// <= is "cmp != 1" and >= is "cmp != -1" (see signCompareTarget).
		return "!="
	default:
		return "=="
	}
}

// layoutForType resolves a value type to its struct/model/state Layout,
// panicking on a non-custom type — member access is only legal on those
// kinds once pass B has run.
func (e *emitter) layoutForType(t ast.Type) Layout {
	if t.Kind != ast.TCustom || t.Custom.IsZero() {
		panic(fmt.Sprintf("emit: member access on non-aggregate type %s", t))
	}
	return layoutFor(e.c, t.Custom)
}

func subroutineLabel(sym ast.GlobalSymbol, name string) string {
	return fmt.Sprintf("fn_%s_%d", name, sym.Index)
}

func stringBytes(s string) string {
	return fmt.Sprintf("0x%x", []byte(s))
}

// floatBits reinterprets v as its IEEE 754 binary64 representation
// (§4.5.2: "Floats use IEEE 754"), as a `pushbytes` operand.
func floatBits(v float64) string {
	return fmt.Sprintf("0x%016x", math.Float64bits(v))
}
