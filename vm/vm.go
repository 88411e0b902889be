package vm

import (
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strings"
)

// Vm is the execution engine for one loaded program.
//
// A Vm owns its register file, heap, and call stack exclusively; nothing
// is shared across instances. Execution is strictly sequential: a single
// fetch-decode-execute loop that runs until the program counter runs off
// the end of the program or a fault halts it.
type Vm struct {
	Verbose bool // Set to enable verbose logging.

	Registers *Registers // Register bank.
	Heap      *Heap      // Simulated heap memory.
	Stack     Stack      // Call stack of saved return addresses.

	Program *Program // Currently loaded program.
	Pc      int      // Program counter.
	Running bool     // True while a run is draining the program.

	Output io.Writer // PRINT destination. Defaults to os.Stdout.
}

// NewVm creates a machine with the default register file and heap.
func NewVm() (vm *Vm) {
	return NewVmSize(DEFAULT_REGISTERS, DEFAULT_HEAP)
}

// NewVmSize creates a machine with a specifically sized register file
// and heap. Sizes of zero or less select the defaults.
func NewVmSize(registers int, heap int) (vm *Vm) {
	vm = &Vm{
		Registers: NewRegisters(registers),
		Heap:      NewHeap(heap),
	}

	return
}

// String returns the current machine state as a string.
func (vm *Vm) String() (text string) {
	text = fmt.Sprintf("   pc: %d\n  run: %v\n", vm.Pc, vm.Running)

	for n, value := range vm.Registers.Data {
		text += fmt.Sprintf("% 5s: %d\n", fmt.Sprintf("r%d", n), value)
	}

	text += fmt.Sprintf("   sp: %d\n", vm.Heap.Pointer)

	var strval string
	value, ok := vm.Stack.Peek()
	if ok {
		strval = fmt.Sprintf("%d (depth %d)", value, len(vm.Stack.Data))
	} else {
		strval = "-"
	}
	text += fmt.Sprintf("stack: %v\n", strval)

	return
}

// Load attaches a program to the machine and rewinds execution state.
// Registers, heap, and call stack are left as-is; use Reset to zero them.
func (vm *Vm) Load(prog *Program) {
	vm.Program = prog
	vm.Pc = 0
	vm.Running = false
}

// Reset zeroes the registers and heap, drops the call stack, and rewinds
// the program counter.
func (vm *Vm) Reset() {
	if vm.Verbose {
		log.Printf("vm: reset")
	}

	vm.Registers.Reset()
	vm.Heap.Reset()
	vm.Stack.Reset()
	vm.Pc = 0
	vm.Running = false
}

func (vm *Vm) output() io.Writer {
	if vm.Output == nil {
		return os.Stdout
	}

	return vm.Output
}

// Step fetches and executes a single instruction.
//
// The program counter advances immediately upon fetch; the dispatched
// instruction may then override it (jump, call, return). done is set
// when the program counter has run off the end of the program.
func (vm *Vm) Step() (done bool, err error) {
	if vm.Program == nil {
		err = ErrNoProgram
		return
	}

	if vm.Pc < 0 || vm.Pc >= len(vm.Program.Instructions) {
		done = true
		return
	}

	pc := vm.Pc
	instr := vm.Program.Instructions[pc]
	vm.Pc++

	if vm.Verbose {
		log.Printf("%3d: %v", pc, instr)
	}

	err = vm.Execute(instr)
	if err != nil {
		err = ErrFault{Pc: pc, Instr: instr, Err: err}
	}

	return
}

// Run drains the loaded program from the start.
//
// Execution halts on normal program exhaustion or on the first fault.
// A fault is returned to the caller as an ordinary error; it is never
// re-raised, and the halted state is observable via Running.
func (vm *Vm) Run() (err error) {
	if vm.Program == nil {
		err = ErrNoProgram
		return
	}

	vm.Pc = 0
	vm.Running = true

	var done bool
	for !done {
		done, err = vm.Step()
		if err != nil {
			break
		}
	}

	vm.Running = false

	return
}

// Execute executes a single decoded instruction.
func (vm *Vm) Execute(instr Instruction) (err error) {
	switch instr.Op {
	case OP_NOP, OP_LABEL:
		// Label definitions occupy a program slot but perform no operation.
	case OP_MOV:
		err = vm.Registers.Set(instr.Reg1, instr.Imm)
	case OP_ADD, OP_SUB, OP_MUL, OP_DIV, OP_MOD, OP_EXP:
		err = vm.arithmetic(instr)
	case OP_GT, OP_LT, OP_EQ:
		err = vm.comparison(instr)
	case OP_PRINT:
		var value int
		value, err = vm.Registers.Get(instr.Reg1)
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(vm.output(), "Register %d: %d\n", instr.Reg1, value)
	case OP_JMP:
		var target int
		target, err = vm.Program.Label(instr.Label)
		if err != nil {
			return
		}
		vm.Pc = target
	case OP_JEQ:
		var a, b int
		a, err = vm.Registers.Get(instr.Reg1)
		if err != nil {
			return
		}
		b, err = vm.Registers.Get(instr.Reg2)
		if err != nil {
			return
		}
		// The target label is only resolved when the branch is taken.
		if a == b {
			var target int
			target, err = vm.Program.Label(instr.Label)
			if err != nil {
				return
			}
			vm.Pc = target
		}
	case OP_CALL:
		var target int
		target, err = vm.Program.Label(instr.Label)
		if err != nil {
			return
		}
		vm.Stack.Push(vm.Pc)
		vm.Pc = target
	case OP_RET:
		pc, ok := vm.Stack.Pop()
		if !ok {
			err = ErrCallStackEmpty
			return
		}
		vm.Pc = pc
	case OP_ALLOC:
		err = vm.Heap.Alloc(instr.Imm)
	case OP_STORE:
		var value int
		value, err = vm.Registers.Get(instr.Reg1)
		if err != nil {
			return
		}
		err = vm.Heap.Store(instr.Imm, value)
	case OP_LOAD:
		var value int
		value, err = vm.Heap.Load(instr.Imm)
		if err != nil {
			return
		}
		err = vm.Registers.Set(instr.Reg1, value)
	default:
		err = ErrOpcodeInvalid
	}

	return
}

// arithmetic performs the two-register arithmetic operations, storing
// the result back into the first register.
func (vm *Vm) arithmetic(instr Instruction) (err error) {
	a, err := vm.Registers.Get(instr.Reg1)
	if err != nil {
		return
	}
	b, err := vm.Registers.Get(instr.Reg2)
	if err != nil {
		return
	}

	switch instr.Op {
	case OP_ADD:
		a += b
	case OP_SUB:
		a -= b
	case OP_MUL:
		a *= b
	case OP_DIV:
		if b == 0 {
			err = ErrDivideByZero
			return
		}
		a /= b
	case OP_MOD:
		if b == 0 {
			err = ErrModuloByZero
			return
		}
		a %= b
	case OP_EXP:
		a = power(a, b)
	}

	err = vm.Registers.Set(instr.Reg1, a)

	return
}

// comparison stores 1 into the first register if it compares true
// against the second, 0 otherwise.
func (vm *Vm) comparison(instr Instruction) (err error) {
	a, err := vm.Registers.Get(instr.Reg1)
	if err != nil {
		return
	}
	b, err := vm.Registers.Get(instr.Reg2)
	if err != nil {
		return
	}

	var result bool
	switch instr.Op {
	case OP_GT:
		result = a > b
	case OP_LT:
		result = a < b
	case OP_EQ:
		result = a == b
	}

	value := 0
	if result {
		value = 1
	}

	err = vm.Registers.Set(instr.Reg1, value)

	return
}

// power is floating-point exponentiation rounded to the nearest integer.
// Negative exponents round the fractional power; results beyond the
// integer range clamp.
func power(base, exp int) (value int) {
	result := math.Round(math.Pow(float64(base), float64(exp)))

	switch {
	case math.IsNaN(result):
		value = 0
	case result >= math.MaxInt:
		value = math.MaxInt
	case result <= math.MinInt:
		value = math.MinInt
	default:
		value = int(result)
	}

	return
}

// Disassemble returns the textual listing of the loaded program.
func (vm *Vm) Disassemble() (text string) {
	if vm.Program == nil {
		return
	}

	var lines []string
	for pc, instr := range vm.Program.Instructions {
		lines = append(lines, fmt.Sprintf("%3d: %v", pc, instr))
	}

	text = strings.Join(lines, "\n")

	return
}
