package cpu

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Cpu is the execution engine for a loaded program.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.
	Strict  bool // If set, unknown mnemonics are fatal.

	State            // Machine state.
	Program *Program // Program being executed.
	Ticks   int      // Count of executed steps since reset.
}

// NewCpu creates a new CPU, ready to execute a program from line 0.
func NewCpu(prog *Program) (cpu *Cpu) {
	if prog == nil {
		prog = &Program{}
	}

	cpu = &Cpu{
		Program: prog,
	}

	cpu.Reset()

	return
}

// Reset the CPU state.
// - Clears the registers, memory and flag.
// - Zeros the tick counter.
// - Sets the program counter to line 0, running.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.State.Reset()
	cpu.Ticks = 0
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %d\n", "pc", cpu.Pc)
	text += fmt.Sprintf("% 5s: %v\n", "flag", cpu.Flag)
	text += fmt.Sprintf("% 5s: %v\n", "run", cpu.Running)
	for n, val := range cpu.Registers {
		text += fmt.Sprintf("% 5s: %04X_%04X\n", fmt.Sprintf("r%d", n), uint32(val)>>16, uint32(val)&0xffff)
	}

	return
}

// Fetch returns the line at the program counter.
func (cpu *Cpu) Fetch() (line Line, err error) {
	line, ok := cpu.Program.Line(cpu.Pc)
	if !ok {
		err = ErrPcRange
		return
	}

	return
}

// Tick executes a single program line, and returns whether the CPU is
// still running.
//
// A halted CPU does nothing. Any error is fatal: the CPU stops with
// the state as it was before the failing line.
func (cpu *Cpu) Tick() (running bool, err error) {
	if !cpu.Running {
		return
	}

	pc := cpu.Pc

	defer func() {
		if err != nil {
			cpu.Running = false
		}
		running = cpu.Running
	}()

	line, err := cpu.Fetch()
	if err != nil {
		err = &ErrInstruction{Pc: pc, Err: err}
		return
	}

	err = line.Err
	if err == nil {
		err = cpu.Execute(line.Insn)
	}
	if err != nil {
		err = &ErrInstruction{Pc: pc, Line: line.Text, Err: err}
		return
	}

	cpu.Ticks += 1

	return
}

// Execute executes a single decoded instruction.
func (cpu *Cpu) Execute(insn Instruction) (err error) {
	if cpu.Verbose {
		log.Printf("%03d: %v", cpu.Pc, insn)
	}

	next_pc := cpu.Pc + 1

	switch insn.Op {
	case OP_NONE, OP_LABEL:
		// No effect.
	case OP_UNKNOWN:
		if cpu.Strict {
			err = ErrMnemonicUnknown
			return
		}
		if cpu.Verbose {
			log.Printf("%03d: skipping '%v'", cpu.Pc, insn.Mnemonic)
		}
	case OP_LDR:
		var val int32
		val, err = cpu.Load(insn.Address)
		if err != nil {
			return
		}
		err = cpu.SetRegister(insn.Rd, val)
	case OP_STR:
		var val int32
		val, err = cpu.Register(insn.Rd)
		if err != nil {
			return
		}
		err = cpu.Store(insn.Address, val)
	case OP_ADD, OP_SUB, OP_AND, OP_ORR, OP_EOR, OP_LSL, OP_LSR:
		var input, val int32
		input, err = cpu.Register(insn.Rn)
		if err != nil {
			return
		}
		val, err = cpu.value(insn.Operand)
		if err != nil {
			return
		}
		err = cpu.SetRegister(insn.Rd, doAlu(insn.Op, input, val))
	case OP_MOV, OP_MVN:
		var val int32
		val, err = cpu.value(insn.Operand)
		if err != nil {
			return
		}
		if insn.Op == OP_MVN {
			val = ^val
		}
		err = cpu.SetRegister(insn.Rd, val)
	case OP_CMP:
		var input, val int32
		input, err = cpu.Register(insn.Rn)
		if err != nil {
			return
		}
		val, err = cpu.value(insn.Operand)
		if err != nil {
			return
		}
		switch {
		case input < val:
			cpu.Flag = FLAG_LESS
		case input > val:
			cpu.Flag = FLAG_GREATER
		default:
			cpu.Flag = FLAG_EQUAL
		}
	case OP_B, OP_BEQ, OP_BNE, OP_BGT, OP_BLT:
		if !insn.Op.Taken(cpu.Flag) {
			break
		}
		target, ok := cpu.Program.Label(insn.Label)
		if !ok {
			err = ErrLabelMissing(insn.Label)
			return
		}
		next_pc = target
	case OP_HALT:
		cpu.Running = false
		next_pc = cpu.Pc
	default:
		err = ErrMnemonicUnknown
		return
	}

	if err != nil {
		return
	}

	cpu.Pc = next_pc

	return
}

// doAlu performs the requested ALU action, and returns the output value.
func doAlu(op Op, input int32, value int32) (output int32) {
	switch op {
	case OP_ADD:
		output = input + value
	case OP_SUB:
		output = input - value
	case OP_AND:
		output = input & value
	case OP_ORR:
		output = input | value
	case OP_EOR:
		output = input ^ value
	case OP_LSL:
		value &= 0x1f // clamp to 31 bits of shift
		output = int32(uint32(input) << uint32(value))
	case OP_LSR:
		value &= 0x1f // clamp to 31 bits of shift
		output = input >> uint32(value)
	}

	return
}
