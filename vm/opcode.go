package vm

import (
	"strconv"
	"strings"
)

// Op is the operation keyword of one bytecode instruction.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_NOP   = Op(0)  // nop
	OP_LABEL = Op(1)  // label
	OP_MOV   = Op(2)  // MOV
	OP_ADD   = Op(3)  // ADD
	OP_SUB   = Op(4)  // SUB
	OP_MUL   = Op(5)  // MUL
	OP_DIV   = Op(6)  // DIV
	OP_MOD   = Op(7)  // MOD
	OP_EXP   = Op(8)  // EXP
	OP_GT    = Op(9)  // GT
	OP_LT    = Op(10) // LT
	OP_EQ    = Op(11) // EQ
	OP_PRINT = Op(12) // PRINT
	OP_JMP   = Op(13) // JMP
	OP_JEQ   = Op(14) // JEQ
	OP_CALL  = Op(15) // CALL
	OP_RET   = Op(16) // RET
	OP_ALLOC = Op(17) // ALLOC
	OP_STORE = Op(18) // STORE
	OP_LOAD  = Op(19) // LOAD
)

// opMap maps instruction keywords to operations.
var opMap = map[string]Op{
	"MOV":   OP_MOV,
	"ADD":   OP_ADD,
	"SUB":   OP_SUB,
	"MUL":   OP_MUL,
	"DIV":   OP_DIV,
	"MOD":   OP_MOD,
	"EXP":   OP_EXP,
	"GT":    OP_GT,
	"LT":    OP_LT,
	"EQ":    OP_EQ,
	"PRINT": OP_PRINT,
	"JMP":   OP_JMP,
	"JEQ":   OP_JEQ,
	"CALL":  OP_CALL,
	"RET":   OP_RET,
	"ALLOC": OP_ALLOC,
	"STORE": OP_STORE,
	"LOAD":  OP_LOAD,
}

// Shape describes the operand fields an operation decodes: leading
// R<digit> register operands, then an integer literal (immediate, size,
// or address), then a label name.
type Shape struct {
	Regs  int
	Imm   bool
	Label bool
}

// opShape maps each operation to its operand shape.
var opShape = map[Op]Shape{
	OP_NOP:   {},
	OP_LABEL: {},
	OP_MOV:   {Regs: 1, Imm: true},
	OP_ADD:   {Regs: 2},
	OP_SUB:   {Regs: 2},
	OP_MUL:   {Regs: 2},
	OP_DIV:   {Regs: 2},
	OP_MOD:   {Regs: 2},
	OP_EXP:   {Regs: 2},
	OP_GT:    {Regs: 2},
	OP_LT:    {Regs: 2},
	OP_EQ:    {Regs: 2},
	OP_PRINT: {Regs: 1},
	OP_JMP:   {Label: true},
	OP_JEQ:   {Regs: 2, Label: true},
	OP_CALL:  {Label: true},
	OP_RET:   {},
	OP_ALLOC: {Imm: true},
	OP_STORE: {Regs: 1, Imm: true},
	OP_LOAD:  {Regs: 1, Imm: true},
}

// Shape returns the operand shape for the operation.
func (op Op) Shape() Shape {
	return opShape[op]
}

// Instruction is a single decoded bytecode instruction.
type Instruction struct {
	Op    Op
	Reg1  int    // First register operand.
	Reg2  int    // Second register operand.
	Imm   int    // Immediate value, allocation size, or heap address.
	Label string // Jump/call target, or the name of a label definition.
}

// String returns the textual form of the instruction.
func (instr Instruction) String() (out string) {
	if instr.Op == OP_LABEL {
		return instr.Label + ":"
	}

	shape := instr.Op.Shape()

	words := []string{instr.Op.String()}
	if shape.Regs >= 1 {
		words = append(words, "R"+strconv.Itoa(instr.Reg1))
	}
	if shape.Regs >= 2 {
		words = append(words, "R"+strconv.Itoa(instr.Reg2))
	}
	if shape.Imm {
		words = append(words, strconv.Itoa(instr.Imm))
	}
	if shape.Label {
		words = append(words, instr.Label)
	}

	out = strings.Join(words, " ")

	return
}
