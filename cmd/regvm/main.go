package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/regvm-dev/regvm/emulator"
)

// demo is the built-in demonstration program, run when no program file
// is given.
var demo = []string{
	"MOV R0 10",  // Move 10 into R0
	"MOV R1 5",   // Move 5 into R1
	"MUL R0 R1",  // Multiply R0 by R1
	"MOD R0 R1",  // Modulo R0 by R1
	"EXP R0 R1",  // Exponentiate R0 by R1
	"STORE R0 0", // Store R0 value at memory address 0
	"LOAD R0 0",  // Load value from memory address 0 into R0
	"PRINT R0",   // Print R0
	"JMP end",    // Jump to 'end' label
	"end:",       // Label for end
	"PRINT R0",   // Print R0 (final value)
}

func main() {
	var program string
	var config string
	var output string
	var list bool
	var verbose bool

	flag.StringVar(&program, "c", "", ".rvm program file to run")
	flag.StringVar(&config, "f", "regvm.toml", "machine configuration file")
	flag.StringVar(&output, "o", "-", "PRINT output destination")
	flag.BoolVar(&list, "l", false, "List the decoded program, do not execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	cfg, err := emulator.LoadConfig(config)
	if err != nil {
		log.Fatalf("%v", err)
	}

	emu := emulator.NewEmulator(cfg)
	if verbose {
		emu.Verbose = true
	}

	if output == "-" {
		emu.Vm.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Vm.Output = ouf
	}

	if len(program) != 0 {
		inf, err := os.Open(program)
		if err != nil {
			log.Fatalf("%v: %v", program, err)
		}
		defer inf.Close()

		err = emu.Load(inf)
		if err != nil {
			log.Fatalf("%v: %v", program, err)
		}
	} else {
		err = emu.LoadLines(demo)
		if err != nil {
			log.Fatalf("%v", err)
		}
	}

	if list {
		fmt.Println(emu.Vm.Disassemble())
		return
	}

	// Faults are reported by the emulator; a faulted run still exits
	// normally.
	_ = emu.Run()
}
