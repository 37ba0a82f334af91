package emit

import "fmt"

// asm accumulates one program's worth of textual bytecode lines (§6: the
// target is "textual bytecode", not a binary encoding — approval and clear
// programs are each rendered as a flat instruction listing, the same shape
// translate.go builds SMT-LIB2 text in rather than a structured AST of
// opcodes, since nothing downstream ever needs to walk the emitted program
// as a tree).
type asm struct {
	lines  []string
	fresh  int
}

func newAsm() *asm { return &asm{} }

// line appends one already-formatted instruction.
func (a *asm) line(s string) { a.lines = append(a.lines, s) }

// emit appends a formatted instruction.
func (a *asm) emit(format string, args ...any) {
	a.lines = append(a.lines, fmt.Sprintf(format, args...))
}

// label appends a `label:` marker.
func (a *asm) label(name string) {
	a.lines = append(a.lines, name+":")
}

// freshLabel returns a unique label suffix for this program (§4.5.2: "emit
// `else_N` and `end_N` labels").
func (a *asm) freshLabel() int {
	a.fresh++
	return a.fresh
}

func (a *asm) String() string {
	out := ""
	for i, l := range a.lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}
