// Package vm implements a minimal register-based bytecode virtual machine.
//
// The machine consists of a program counter, six signed integer registers
// (R0-R5), a fixed-capacity heap with allocation accounting, and a call
// stack of saved return addresses. Programs are ordered lists of textual
// instructions (one instruction per line) decoded at load time into typed
// instruction values, with jump and call targets resolved through a label
// table built by a pre-pass over the program.
//
// The decoder supports label definitions, `.equ` equates, comments, and
// load-time $() expression evaluation.
package vm
