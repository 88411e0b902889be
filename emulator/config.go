package emulator

import (
	"errors"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/regvm-dev/regvm/vm"
)

// Config represents a regvm.toml machine configuration.
type Config struct {
	Machine MachineConfig `toml:"machine"`
}

// MachineConfig sizes the virtual machine.
type MachineConfig struct {
	Registers int  `toml:"registers"`
	Heap      int  `toml:"heap"`
	Trace     bool `toml:"trace"`
}

// DefaultConfig returns the default machine configuration.
func DefaultConfig() (config *Config) {
	config = &Config{
		Machine: MachineConfig{
			Registers: vm.DEFAULT_REGISTERS,
			Heap:      vm.DEFAULT_HEAP,
		},
	}

	return
}

// LoadConfig parses a regvm.toml machine configuration file.
// A missing file and unset fields yield the defaults.
func LoadConfig(path string) (config *Config, err error) {
	config = DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err = nil
			return
		}
		err = &ErrConfig{Path: path, Err: err}
		return
	}

	err = toml.Unmarshal(data, config)
	if err != nil {
		err = &ErrConfig{Path: path, Err: err}
		return
	}

	if config.Machine.Registers <= 0 {
		config.Machine.Registers = vm.DEFAULT_REGISTERS
	}
	if config.Machine.Heap <= 0 {
		config.Machine.Heap = vm.DEFAULT_HEAP
	}

	return
}
