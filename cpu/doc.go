// Package cpu implements the execution engine of the armsim register machine.
//
// The machine has sixteen signed 32-bit registers (R0-R15), 256 signed
// 32-bit memory cells, a comparison flag and a program counter that
// indexes lines of program text. A Program is loaded once: every line is
// decoded into an Instruction and label declarations are indexed. The Cpu
// then executes one line per Tick until HALT, or until a fault stops it.
//
// Lines are either a label declaration (`name:`), an instruction
// (`ADD R0, R1, #3`) or blank. Unknown mnemonics are skipped unless the
// Cpu is in Strict mode.
package cpu
