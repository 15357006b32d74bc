// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	log "github.com/sirupsen/logrus"

	"github.com/ezrec/armsim/cpu"
)

// Emulator state. CPU + program + initial state preset.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	Strict   bool         // If set, unknown mnemonics are fatal.
	MaxTicks int          // If non-zero, the maximum ticks of a run.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.
	Preset   *Preset      // Initial state applied on reset, if set.
}

// NewEmulator creates a new emulator for a program.
func NewEmulator(prog *cpu.Program) (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(prog),
		Program: prog,
	}

	emu.Program = emu.Cpu.Program

	return
}

// Reset the emulator state, applying the preset if there is one.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Program = emu.Program
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Strict, _ = emu.options()

	emu.Cpu.Reset()

	if emu.Preset != nil {
		err = emu.Preset.Apply(&emu.Cpu.State)
		if err != nil {
			return
		}
	}

	return
}

// options returns the run options in effect. Options set on the emulator
// take precedence over those of the preset.
func (emu *Emulator) options() (strict bool, maxTicks int) {
	strict = emu.Strict
	maxTicks = emu.MaxTicks

	if emu.Preset != nil {
		strict = strict || emu.Preset.Strict
		if maxTicks == 0 {
			maxTicks = emu.Preset.MaxTicks
		}
	}

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// LineNo returns the 1-based source line number of the program counter.
func (emu *Emulator) LineNo() int {
	return emu.Cpu.Pc + 1
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	strict, maxTicks := emu.options()

	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Strict = strict

	lineno := emu.LineNo()
	line, _ := emu.Cpu.Program.Line(emu.Cpu.Pc)
	defer func() {
		if err != nil {
			done = true
			err = &ErrRuntime{LineNo: lineno, Line: line.Text, Err: err}
		}
	}()

	if !emu.Cpu.Running {
		done = true
		return
	}

	if maxTicks > 0 && emu.Cpu.Ticks >= maxTicks {
		emu.Cpu.Running = false
		err = ErrTickLimit
		return
	}

	running, err := emu.Cpu.Tick()
	done = !running

	return
}

// Run ticks the emulator until the program halts, or faults.
func (emu *Emulator) Run() (err error) {
	var done bool
	for !done {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	if emu.Verbose {
		log.Debugf("emulator: halted at line %d after %d ticks", emu.LineNo(), emu.Ticks())
	}

	return
}
