package vm

import (
	"errors"

	"github.com/regvm-dev/regvm/translate"
)

var f = translate.From

var (
	// Execution faults
	ErrDivideByZero    = errors.New(f("division by zero"))
	ErrModuloByZero    = errors.New(f("modulus by zero"))
	ErrCallStackEmpty  = errors.New(f("return from empty call stack"))
	ErrOutOfMemory     = errors.New(f("out of memory"))
	ErrAddressInvalid  = errors.New(f("memory address invalid"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrNoProgram       = errors.New(f("no program loaded"))

	// Decode errors
	ErrOpcodeInvalid   = errors.New(f("opcode invalid"))
	ErrOperandMissing  = errors.New(f("operand missing"))
	ErrOperandExtra    = errors.New(f("excessive operands"))
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
)

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseRegister string

func (err ErrParseRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrSyntax locates a decode error in the program text.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrFault locates an execution fault at its faulting instruction.
type ErrFault struct {
	Pc    int
	Instr Instruction
	Err   error
}

func (err ErrFault) Error() string {
	return f("pc %d '%v' %v", err.Pc, err.Instr, err.Err)
}

func (err ErrFault) Unwrap() error {
	return err.Err
}
