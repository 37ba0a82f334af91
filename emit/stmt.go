package emit

import "github.com/folidity/folidity/ast"

// lowerBlock lowers a statement sequence in order (§4.5.2).
func (e *emitter) lowerBlock(a *asm, fn *funcState, stmts []ast.Statement) {
	for i := range stmts {
		e.lowerStmt(a, fn, &stmts[i])
	}
}

func (e *emitter) lowerStmt(a *asm, fn *funcState, s *ast.Statement) {
	switch s.Kind {
	case ast.SLet:
		e.lowerExpr(a, fn, s.Init)
		if s.Pattern.Single {
			slot := fn.allocSlot(s.Pattern.Name.Name)
			a.emit("store %d", slot)
		} else {
			// Destructuring: the initializer's aggregate value is already
			// on the stack; bind each named field from it in turn.
			tmp := fn.next
			fn.next++
			a.emit("store %d", tmp)
			layout := e.layoutForType(s.Init.Resolved)
			for _, field := range s.Pattern.Fields {
				fl := layout.fieldLayout(field.Name)
				a.emit("load %d", tmp)
				a.emit("extract %d %d", fl.Offset, fl.Size)
				slot := fn.allocSlot(field.Name)
				a.emit("store %d", slot)
			}
		}

	case ast.SAssign:
		e.lowerExpr(a, fn, s.Value)
		if s.Target.Kind == ast.EVarRef {
			slot := fn.allocSlot(s.Target.Name.Name)
			a.emit("store %d", slot)
		} else {
			// Member assignment: rebuild the parent with the field
			// replaced, then re-store it into the parent's own slot.
			layout := e.layoutForType(s.Target.Target.Resolved)
			fl := layout.fieldLayout(s.Target.Field.Name)
			slot := fn.allocSlot(s.Target.Target.Name.Name)
			a.emit("load %d", slot)
			a.emit("replace %d", fl.Offset)
			a.emit("store %d", slot)
		}

	case ast.SIf:
		elseLbl := a.freshLabel()
		endLbl := a.freshLabel()
		e.lowerExpr(a, fn, s.Cond)
		a.emit("bz else_%d", elseLbl)
		e.lowerBlock(a, fn, s.Then)
		a.emit("b end_%d", endLbl)
		a.emit("else_%d:", elseLbl)
		if s.ElseIsIf {
			e.lowerStmt(a, fn, &s.Else[0])
		} else {
			e.lowerBlock(a, fn, s.Else)
		}
		a.emit("end_%d:", endLbl)

	case ast.SFor:
		loopID := a.freshLabel()
		outerLoop := fn.currentLoop
		fn.currentLoop = loopID

		e.lowerStmt(a, fn, s.ForInit)
		a.emit("loop_%d:", loopID)
		e.lowerExpr(a, fn, s.ForCond)
		a.emit("bz loop_%d_end", loopID)
		e.lowerBlock(a, fn, s.Body)
		a.emit("loop_%d_incr:", loopID)
		e.lowerExpr(a, fn, s.ForStep)
		a.line("pop")
		a.emit("b loop_%d", loopID)
		a.emit("loop_%d_end:", loopID)

		fn.currentLoop = outerLoop

	case ast.SIterator:
		e.lowerIterator(a, fn, s)

	case ast.SReturn:
		if s.ReturnValue != nil {
			e.lowerExpr(a, fn, s.ReturnValue)
		}
		a.line("retsub")

	case ast.SExpr:
		e.lowerExpr(a, fn, s.Expr)
		a.line("pop")

	case ast.SMove:
		e.lowerExpr(a, fn, s.MoveInit)
		boxTarget := e.c.DeclName(s.MoveInit.InitSym)
		a.emit("pushbytes %s", stringBytes(boxName(e.boxPrefix, boxTarget)))
		a.line("swap")
		a.line("box_put")

	case ast.SSkip:
		a.emit("b loop_%d_incr", fn.currentLoop)

	case ast.SBlock:
		e.lowerBlock(a, fn, s.Body)

	case ast.SError:
		a.emit("// unreachable: parse-error statement %q survived to emission", s.ErrorMessage)

	default:
		a.emit("// unsupported statement kind %d", s.Kind)
	}
}

// lowerIterator lowers a `for (binders in iterable)` loop as a bounded loop
// over the container's length prefix, extracting the current element into
// the binder's chunk each iteration (§4.5.2).
func (e *emitter) lowerIterator(a *asm, fn *funcState, s *ast.Statement) {
	loopID := a.freshLabel()
	outerLoop := fn.currentLoop
	fn.currentLoop = loopID

	idxSlot := fn.next
	fn.next++
	containerSlot := fn.next
	fn.next++

	e.lowerExpr(a, fn, s.Iterable)
	a.emit("store %d", containerSlot)
	a.line("pushint 0")
	a.emit("store %d", idxSlot)

	elemSize := wordSize
	if et := elementType(s.Iterable.Resolved); et != nil {
		elemSize = sizeOf(e.c, *et)
	}

	a.emit("loop_%d:", loopID)
	a.emit("load %d", idxSlot)
	a.emit("load %d", containerSlot)
	a.line("extract_uint64 0 8") // length prefix
	a.line("<")
	a.emit("bz loop_%d_end", loopID)

	if len(s.Binders) > 0 {
		slot := fn.allocSlot(s.Binders[0].Name)
		a.emit("load %d", containerSlot)
		a.emit("load %d", idxSlot)
		a.emit("pushint %d", elemSize)
		a.line("*")
		a.emit("pushint %d", lengthPrefix)
		a.line("+")
		a.emit("pushint %d", elemSize)
		a.line("extract3") // dynamic (array, start, length) extraction
		a.emit("store %d", slot)
	}

	e.lowerBlock(a, fn, s.Body)

	a.emit("loop_%d_incr:", loopID)
	a.emit("load %d", idxSlot)
	a.line("pushint 1")
	a.line("+")
	a.emit("store %d", idxSlot)
	a.emit("b loop_%d", loopID)
	a.emit("loop_%d_end:", loopID)

	fn.currentLoop = outerLoop
}

func elementType(t ast.Type) *ast.Type {
	if t.Kind == ast.TList || t.Kind == ast.TSet {
		return t.Elem
	}
	return nil
}
