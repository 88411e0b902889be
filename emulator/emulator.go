package emulator

import (
	"errors"
	"io"
	"log"
	"strconv"

	"github.com/regvm-dev/regvm/vm"
)

// Emulator wires a machine to its program listing and output stream.
type Emulator struct {
	Verbose bool // If set, enables verbose logging.
	*vm.Vm       // Reference to the machine.

	Program *vm.Program // Reference to the currently loaded program listing.
}

// NewEmulator creates an emulator sized by the given configuration.
func NewEmulator(config *Config) (emu *Emulator) {
	if config == nil {
		config = DefaultConfig()
	}

	emu = &Emulator{
		Vm:      vm.NewVmSize(config.Machine.Registers, config.Machine.Heap),
		Verbose: config.Machine.Trace,
	}

	return
}

// decoder builds a program decoder carrying the machine's predefines.
func (emu *Emulator) decoder() (dec *vm.Decoder) {
	dec = &vm.Decoder{Verbose: emu.Verbose}
	dec.Predefine("REGISTERS", strconv.Itoa(len(emu.Vm.Registers.Data)))
	dec.Predefine("HEAP", strconv.Itoa(len(emu.Vm.Heap.Data)))

	return
}

// Load decodes program text from an input stream and attaches it.
func (emu *Emulator) Load(input io.Reader) (err error) {
	prog, err := emu.decoder().Parse(input)
	if err != nil {
		return
	}

	emu.Program = prog
	emu.Vm.Load(prog)

	return
}

// LoadLines decodes an in-memory instruction list and attaches it.
func (emu *Emulator) LoadLines(lines []string) (err error) {
	prog, err := emu.decoder().Load(lines)
	if err != nil {
		return
	}

	emu.Program = prog
	emu.Vm.Load(prog)

	return
}

// LineNo returns the source line number for a program position.
func (emu *Emulator) LineNo(pc int) int {
	return pc + 1
}

// Run executes the loaded program to completion or fault.
//
// A fault is located at its source line, reported to the error stream,
// and returned; the emulator halts without re-raising it.
func (emu *Emulator) Run() (err error) {
	emu.Vm.Verbose = emu.Verbose

	err = emu.Vm.Run()
	if err != nil {
		var fault vm.ErrFault
		if errors.As(err, &fault) {
			err = &ErrRuntime{LineNo: emu.LineNo(fault.Pc), Err: err}
		}
		log.Printf("regvm: %v", err)
	}

	return
}
