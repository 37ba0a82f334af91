package emit

import "fmt"

// chunk is a variable's pre-generated opcode sequence that places its
// current value on the stack (§4.5.2: "a variable-to-chunk map: variable id
// -> a pre-generated sequence of opcodes that places that variable's
// current value on the stack"). The emitter keys chunks by declared name
// rather than the analyzer's numeric VariableSym id: a function body is
// lowered as one flat pass over already-resolved statements, and within one
// function a name uniquely identifies the innermost binding visible at any
// point, exactly as sema's own scope already validated it.
type chunk struct {
	lines []string
}

func loadSlotChunk(slot int) chunk {
	return chunk{lines: []string{fmt.Sprintf("load %d", slot)}}
}

// funcState tracks one function's scratch-slot allocation and variable
// chunk map while it is being lowered (§4.5.2).
type funcState struct {
	chunks      map[string]chunk
	slots       map[string]int
	next        int // next free scratch slot; slots 240+ reserved for emitter helper temporaries (§4.5.2)
	currentLoop int
}

const maxUserScratchSlot = 239

func newFuncState() *funcState {
	return &funcState{chunks: map[string]chunk{}, slots: map[string]int{}}
}

// allocSlot assigns name a scratch slot (reusing one already assigned, so
// that reassignment replaces a chunk in place rather than leaking a new
// slot per statement) and records its load chunk (§4.5.2: "Parameters are
// stored into scratch slots at entry"; "assignment replaces chunk").
func (f *funcState) allocSlot(name string) int {
	slot, ok := f.slots[name]
	if !ok {
		slot = f.next
		f.next++
		f.slots[name] = slot
	}
	f.chunks[name] = loadSlotChunk(slot)
	return slot
}

func (f *funcState) chunkFor(name string) (chunk, bool) {
	c, ok := f.chunks[name]
	return c, ok
}
