package vm

import (
	"bufio"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"REGISTERS": strconv.Itoa(DEFAULT_REGISTERS),
	"HEAP":      strconv.Itoa(DEFAULT_HEAP),
}

// Decoder decodes textual bytecode into a Program.
//
// Each program line is one instruction: an opcode keyword followed by its
// operand fields (register indexes, literal integers, labels), a `name:`
// label definition, an `.equ NAME VALUE` equate, a comment, or blank.
// Non-instruction lines decode to no-ops so that program positions always
// match source line order.
type Decoder struct {
	Verbose bool // If set, verbosely logs decoder actions.

	predefine map[string]string // Predefines
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (dec *Decoder) Predefine(equ string, value string) {
	if dec.predefine == nil {
		dec.predefine = map[string]string{equ: value}
	} else {
		dec.predefine[equ] = value
	}
}

// parenEval does load-time $(...) evaluations.
func (dec *Decoder) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range dec.Equate {
		v64, verr := strconv.ParseInt(str, 0, 64)
		if verr != nil {
			// Ignore non-integer equates. They may be labels
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)
	return
}

// splitWords strips the `;` comment and splits a line into words.
func splitWords(text string) (words []string) {
	text_comment := strings.Split(text, ";")
	line := strings.TrimSpace(text_comment[0])

	words = slices.DeleteFunc(strings.Split(line, " "), func(a string) bool { return len(a) == 0 })

	return
}

// parseRegister parses an R<digit> register operand.
func parseRegister(word string) (index int, err error) {
	if len(word) != 2 || word[0] != 'R' || word[1] < '0' || word[1] > '9' {
		err = ErrParseRegister(word)
		return
	}

	index = int(word[1] - '0')

	return
}

// valueOf returns the value of a literal integer word.
func (dec *Decoder) valueOf(word string) (value int, err error) {
	v64, err := strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = int(v64)

	return
}

var parenRe = regexp.MustCompile(`\$\([^\$]*\)`)

// decodeLine decodes a single line into an instruction.
func (dec *Decoder) decodeLine(text string, lineno int) (instr Instruction, err error) {
	// Set line number.
	dec.Equate["LINENO"] = strconv.Itoa(lineno)

	text_comment := strings.Split(text, ";")
	line := strings.TrimSpace(text_comment[0])

	// Do $() evaluations
	line = parenRe.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := dec.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return strconv.Itoa(value)
	})
	if err != nil {
		return
	}

	words := slices.DeleteFunc(strings.Split(line, " "), func(a string) bool { return len(a) == 0 })

	// Blank or comment-only lines occupy a program slot as no-ops.
	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := dec.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		dec.Equate[words[1]] = words[2]
		return
	}

	// label:
	if strings.HasSuffix(words[0], ":") {
		if len(words) != 1 {
			err = ErrOperandExtra
			return
		}
		instr = Instruction{Op: OP_LABEL, Label: strings.TrimSuffix(words[0], ":")}
		return
	}

	// Equate substitution on operand words.
	for n, word := range words[1:] {
		equate, ok := dec.Equate[word]
		if ok {
			words[1+n] = equate
		}
	}

	op, ok := opMap[words[0]]
	if !ok {
		err = ErrOpcodeInvalid
		return
	}
	instr.Op = op

	shape := op.Shape()
	need := shape.Regs
	if shape.Imm {
		need++
	}
	if shape.Label {
		need++
	}

	operands := words[1:]
	if len(operands) < need {
		err = ErrOperandMissing
		return
	}
	if len(operands) > need {
		err = ErrOperandExtra
		return
	}

	if shape.Regs >= 1 {
		instr.Reg1, err = parseRegister(operands[0])
		if err != nil {
			return
		}
		operands = operands[1:]
	}
	if shape.Regs >= 2 {
		instr.Reg2, err = parseRegister(operands[0])
		if err != nil {
			return
		}
		operands = operands[1:]
	}
	if shape.Imm {
		instr.Imm, err = dec.valueOf(operands[0])
		if err != nil {
			return
		}
		operands = operands[1:]
	}
	if shape.Label {
		instr.Label = operands[0]
	}

	return
}

// Load decodes an in-memory ordered list of instruction lines.
//
// A label pre-pass records every `name:` definition at its program
// position before any line decodes, so labels may be forward-referenced
// by jumps and calls appearing earlier in program order.
func (dec *Decoder) Load(lines []string) (prog *Program, err error) {
	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
			prog = nil
		}
	}()

	dec.Equate = maps.Clone(sysEquate)
	for attr, val := range dec.predefine {
		dec.Equate[attr] = val
	}

	prog = &Program{
		Lines:  slices.Clone(lines),
		Labels: make(map[string]int, 16),
	}

	// Label pre-pass.
	for n, text := range lines {
		lineno = n + 1
		line = text

		words := splitWords(text)
		if len(words) != 1 || !strings.HasSuffix(words[0], ":") {
			continue
		}
		label := strings.TrimSuffix(words[0], ":")
		_, ok := prog.Labels[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}
		prog.Labels[label] = n
	}

	for n, text := range lines {
		lineno = n + 1
		line = text

		var instr Instruction
		instr, err = dec.decodeLine(text, lineno)
		if err != nil {
			return
		}

		if dec.Verbose {
			log.Printf("%3d: %v", n, instr)
		}

		prog.Instructions = append(prog.Instructions, instr)
	}

	return
}

// Parse decodes an input stream into a Program.
func (dec *Decoder) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	return dec.Load(lines)
}
