package vm

// Program is an ordered sequence of decoded instructions with the label
// table built by the decoder's pre-pass. The program counter of the
// machine indexes Instructions directly, so a program position is always
// the zero-based source line index.
type Program struct {
	Instructions []Instruction
	Lines        []string       // Original source text, one entry per instruction.
	Labels       map[string]int // Map of label names to program positions.
}

// Label resolves a label name to its program position.
// Resolution happens at use-time: a label referenced by a jump or call
// only needs to exist by the moment the instruction executes.
func (prog *Program) Label(name string) (pc int, err error) {
	pc, ok := prog.Labels[name]
	if !ok {
		err = ErrLabelMissing(name)
	}

	return
}

// Line returns the source text for a program position.
func (prog *Program) Line(pc int) (line string) {
	if pc >= 0 && pc < len(prog.Lines) {
		line = prog.Lines[pc]
	}

	return
}
