package cpu

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	REGISTER_COUNT = 16  // Number of general purpose registers.
	MEMORY_SIZE    = 256 // Number of memory cells.
)

// Op is the decoded operation of a program line.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_UNKNOWN = Op(iota) // ?
	OP_NONE               // -
	OP_LABEL              // :
	OP_LDR                // LDR
	OP_STR                // STR
	OP_ADD                // ADD
	OP_SUB                // SUB
	OP_AND                // AND
	OP_ORR                // ORR
	OP_EOR                // EOR
	OP_LSL                // LSL
	OP_LSR                // LSR
	OP_MOV                // MOV
	OP_MVN                // MVN
	OP_CMP                // CMP
	OP_B                  // B
	OP_BEQ                // BEQ
	OP_BNE                // BNE
	OP_BGT                // BGT
	OP_BLT                // BLT
	OP_HALT               // HALT
)

// Flag is the state of the comparison flag.
type Flag int

//go:generate go tool stringer -linecomment -type=Flag
const (
	FLAG_UNSET   = Flag(0) // unset
	FLAG_LESS    = Flag(1) // lt
	FLAG_GREATER = Flag(2) // gt
	FLAG_EQUAL   = Flag(3) // eq
)

// opShape is the operand layout of a mnemonic.
type opShape int

const (
	shapeNone     = opShape(iota) // HALT
	shapeMemory                   // Rd, mem
	shapeTriple                   // Rd, Rn, operand2
	shapeDouble                   // Rd, operand2
	shapeCompare                  // Rn, operand2
	shapeBranch                   // label
)

// shapeArgs is the number of operand words of each shape.
var shapeArgs = [...]int{
	shapeNone:    0,
	shapeMemory:  2,
	shapeTriple:  3,
	shapeDouble:  2,
	shapeCompare: 2,
	shapeBranch:  1,
}

type opInfo struct {
	Op    Op
	Shape opShape
}

// opMap maps mnemonics to operations.
var opMap = map[string]opInfo{
	"LDR":  {OP_LDR, shapeMemory},
	"STR":  {OP_STR, shapeMemory},
	"ADD":  {OP_ADD, shapeTriple},
	"SUB":  {OP_SUB, shapeTriple},
	"AND":  {OP_AND, shapeTriple},
	"ORR":  {OP_ORR, shapeTriple},
	"EOR":  {OP_EOR, shapeTriple},
	"LSL":  {OP_LSL, shapeTriple},
	"LSR":  {OP_LSR, shapeTriple},
	"MOV":  {OP_MOV, shapeDouble},
	"MVN":  {OP_MVN, shapeDouble},
	"CMP":  {OP_CMP, shapeCompare},
	"B":    {OP_B, shapeBranch},
	"BEQ":  {OP_BEQ, shapeBranch},
	"BNE":  {OP_BNE, shapeBranch},
	"BGT":  {OP_BGT, shapeBranch},
	"BLT":  {OP_BLT, shapeBranch},
	"HALT": {OP_HALT, shapeNone},
}

// Branch returns true if the operation is a branch.
func (op Op) Branch() bool {
	return op >= OP_B && op <= OP_BLT
}

// Taken returns true if the branch is taken for the given flag state.
// An UNSET flag never satisfies a conditional branch.
func (op Op) Taken(flag Flag) bool {
	switch op {
	case OP_B:
		return true
	case OP_BEQ:
		return flag == FLAG_EQUAL
	case OP_BNE:
		return flag == FLAG_LESS || flag == FLAG_GREATER
	case OP_BGT:
		return flag == FLAG_GREATER
	case OP_BLT:
		return flag == FLAG_LESS
	}

	return false
}

// Operand is the flexible second operand: an immediate or a register.
type Operand struct {
	Register bool  // If set, Value is a register index.
	Value    int32 // Immediate value, or register index.
}

// String returns the assembly form of the operand.
func (o Operand) String() string {
	if o.Register {
		return fmt.Sprintf("R%d", o.Value)
	}
	return fmt.Sprintf("#%d", o.Value)
}

// Instruction is a single decoded program line.
type Instruction struct {
	Op       Op       // Decoded operation.
	Mnemonic string   // Mnemonic as written.
	Rd       int      // Destination register (or source for STR).
	Rn       int      // First source register.
	Operand  Operand  // Flexible second operand.
	Address  int      // Memory index for LDR/STR.
	Label    string   // Label name for branches and declarations.
	Words    []string // Whitespace separated words of the line.
}

// String returns the canonical assembly form of the instruction.
func (insn Instruction) String() (out string) {
	switch insn.Op {
	case OP_NONE:
		return ""
	case OP_LABEL:
		return insn.Label + ":"
	case OP_UNKNOWN:
		return strings.Join(insn.Words, " ")
	}

	info := opMap[insn.Op.String()]
	switch info.Shape {
	case shapeNone:
		out = insn.Op.String()
	case shapeMemory:
		out = fmt.Sprintf("%v R%d, %d", insn.Op, insn.Rd, insn.Address)
	case shapeTriple:
		out = fmt.Sprintf("%v R%d, R%d, %v", insn.Op, insn.Rd, insn.Rn, insn.Operand)
	case shapeDouble:
		out = fmt.Sprintf("%v R%d, %v", insn.Op, insn.Rd, insn.Operand)
	case shapeCompare:
		out = fmt.Sprintf("%v R%d, %v", insn.Op, insn.Rn, insn.Operand)
	case shapeBranch:
		out = fmt.Sprintf("%v %v", insn.Op, insn.Label)
	}

	return
}

// IsLabel returns the label name if the line is a label declaration.
// A declaration is a single word, terminated by a colon.
func IsLabel(line string) (label string, ok bool) {
	words := strings.Fields(line)
	if len(words) != 1 {
		return
	}

	word := words[0]
	if len(word) < 2 || !strings.HasSuffix(word, ":") {
		return
	}

	return word[:len(word)-1], true
}

// Decode decodes a single program line.
//
// Lines with an unrecognized mnemonic decode to OP_UNKNOWN without
// error; whether that is fatal is the CPU's decision.
func Decode(line string) (insn Instruction, err error) {
	words := strings.Fields(line)
	insn.Words = words

	if len(words) == 0 {
		insn.Op = OP_NONE
		return
	}

	if label, ok := IsLabel(line); ok {
		insn.Op = OP_LABEL
		insn.Label = label
		return
	}

	insn.Mnemonic = words[0]
	info, ok := opMap[words[0]]
	if !ok {
		insn.Op = OP_UNKNOWN
		return
	}

	args := words[1:]

	want := shapeArgs[info.Shape]
	if len(args) < want {
		err = ErrOperandMissing
		return
	}
	if len(args) > want {
		err = ErrOperandExtra
		return
	}

	switch info.Shape {
	case shapeMemory:
		if insn.Rd, err = parseRegister(args[0], true); err != nil {
			return
		}
		if insn.Address, err = parseAddress(args[1]); err != nil {
			return
		}
	case shapeTriple:
		if insn.Rd, err = parseRegister(args[0], true); err != nil {
			return
		}
		if insn.Rn, err = parseRegister(args[1], true); err != nil {
			return
		}
		if insn.Operand, err = parseOperand(args[2]); err != nil {
			return
		}
	case shapeDouble:
		if insn.Rd, err = parseRegister(args[0], true); err != nil {
			return
		}
		if insn.Operand, err = parseOperand(args[1]); err != nil {
			return
		}
	case shapeCompare:
		if insn.Rn, err = parseRegister(args[0], true); err != nil {
			return
		}
		if insn.Operand, err = parseOperand(args[1]); err != nil {
			return
		}
	case shapeBranch:
		insn.Label = args[0]
	}

	insn.Op = info.Op

	return
}

// parseRegister parses an `Rn` register word, with the trailing comma
// if `comma` is set.
func parseRegister(word string, comma bool) (reg int, err error) {
	text := word
	if comma {
		var ok bool
		text, ok = strings.CutSuffix(text, ",")
		if !ok {
			err = ErrCommaMissing(word)
			return
		}
	}

	text, ok := strings.CutPrefix(text, "R")
	if !ok {
		err = ErrParseRegister(word)
		return
	}

	reg, err = parseIndex(text)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if reg < 0 || reg >= REGISTER_COUNT {
		err = ErrRegisterRange(reg)
		return
	}

	return
}

// parseIndex parses an unsigned decimal index.
func parseIndex(text string) (index int, err error) {
	if text == "" || text[0] < '0' || text[0] > '9' {
		err = strconv.ErrSyntax
		return
	}

	return strconv.Atoi(text)
}

// parseAddress parses a bare decimal memory index.
func parseAddress(word string) (addr int, err error) {
	addr, err = parseIndex(word)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if addr < 0 || addr >= MEMORY_SIZE {
		err = ErrAddressRange(addr)
		return
	}

	return
}

// parseOperand parses the final `#imm` or `Rn` operand.
func parseOperand(word string) (op Operand, err error) {
	switch {
	case strings.HasPrefix(word, "#"):
		var v64 int64
		v64, err = strconv.ParseInt(word[1:], 10, 32)
		if err != nil {
			err = ErrParseNumber(word)
			return
		}
		op.Value = int32(v64)
	case strings.HasPrefix(word, "R"):
		var reg int
		reg, err = parseRegister(word, false)
		if err != nil {
			return
		}
		op.Register = true
		op.Value = int32(reg)
	default:
		err = ErrParseValue(word)
	}

	return
}
