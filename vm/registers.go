package vm

const (
	DEFAULT_REGISTERS = 6 // Default register file size (R0-R5).
)

// Registers is the fixed file of signed integer registers.
type Registers struct {
	Data []int
}

// NewRegisters creates a register file with the given number of slots.
// A count of zero or less selects DEFAULT_REGISTERS.
func NewRegisters(count int) (regs *Registers) {
	if count <= 0 {
		count = DEFAULT_REGISTERS
	}

	regs = &Registers{
		Data: make([]int, count),
	}

	return
}

// Get reads a register by validated index.
func (r *Registers) Get(index int) (value int, err error) {
	if index < 0 || index >= len(r.Data) {
		err = ErrRegisterInvalid
		return
	}

	value = r.Data[index]

	return
}

// Set writes a register by validated index.
func (r *Registers) Set(index int, value int) (err error) {
	if index < 0 || index >= len(r.Data) {
		err = ErrRegisterInvalid
		return
	}

	r.Data[index] = value

	return
}

// Reset zeroes all registers.
func (r *Registers) Reset() {
	clear(r.Data)
}
