package emulator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/armsim/cpu"
)

func newTestEmulator(t *testing.T, program ...string) (emu *Emulator) {
	prog, err := cpu.NewProgram(strings.Join(program, "\n"))
	if err != nil {
		t.Fatal(err)
	}

	emu = NewEmulator(prog)
	err = emu.Reset()
	if err != nil {
		t.Fatal(err)
	}

	return
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(nil)

	assert.False(emu.Verbose)
	assert.NotNil(emu.Program)
	assert.Equal(0, emu.Program.Len())
	assert.Equal(1, emu.LineNo())
}

func TestEmulatorScenarios(t *testing.T) {
	assert := assert.New(t)

	emu := newTestEmulator(t, "LDR R0, 42")
	emu.Cpu.Memory[42] = 123
	done, err := emu.Tick()
	assert.NoError(err)
	assert.False(done)
	assert.Equal(int32(123), emu.Cpu.Registers[0])

	emu = newTestEmulator(t, "CMP R0, #42", "BEQ label", "HALT", "label:", "HALT")
	emu.Cpu.Registers[0] = 42
	emu.Tick()
	emu.Tick()
	assert.Equal(4, emu.Cpu.Pc)

	emu = newTestEmulator(t, "B label", "label:", "HALT")
	emu.Tick()
	assert.Equal(2, emu.Cpu.Pc)

	emu = newTestEmulator(t, "LSL R0, R1, #1")
	emu.Cpu.Registers[1] = 4
	emu.Tick()
	assert.Equal(int32(8), emu.Cpu.Registers[0])
}

func TestEmulatorRun(t *testing.T) {
	assert := assert.New(t)

	// Multiply R0 by R1 into R2, by repeated addition.
	emu := newTestEmulator(t,
		"LDR R0, 0",
		"LDR R1, 1",
		"MOV R2, #0",
		"loop:",
		"CMP R1, #0",
		"BEQ done",
		"ADD R2, R2, R0",
		"SUB R1, R1, #1",
		"B loop",
		"done:",
		"STR R2, 2",
		"HALT",
	)
	emu.Cpu.Memory[0] = 6
	emu.Cpu.Memory[1] = 7

	err := emu.Run()
	assert.NoError(err)
	assert.False(emu.Cpu.Running)
	assert.Equal(int32(42), emu.Cpu.Memory[2])
	assert.Equal(11, emu.Cpu.Pc)
	assert.Equal(12, emu.LineNo())
	assert.Equal(3+1+7*5+4, emu.Ticks())

	// Halted: further ticks are done.
	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
}

func TestEmulatorFault(t *testing.T) {
	assert := assert.New(t)

	emu := newTestEmulator(t, "MOV R0, #1", "ADD R0, R0, #1")

	err := emu.Run()
	assert.True(errors.Is(err, cpu.ErrPcRange))

	var runtime *ErrRuntime
	assert.True(errors.As(err, &runtime))
	assert.Equal(3, runtime.LineNo)
	assert.Equal("", runtime.Line)
	assert.Equal(int32(2), emu.Cpu.Registers[0])

	emu = newTestEmulator(t, "B missing")
	err = emu.Run()
	assert.True(errors.Is(err, cpu.ErrLabelMissing("missing")))
	assert.True(errors.As(err, &runtime))
	assert.Equal(1, runtime.LineNo)
	assert.Equal("B missing", runtime.Line)
	assert.Contains(err.Error(), "line 1")
	assert.Contains(err.Error(), "missing")
}

func TestEmulatorStrict(t *testing.T) {
	assert := assert.New(t)

	emu := newTestEmulator(t, "FOO R1", "HALT")
	assert.NoError(emu.Run())

	emu.Strict = true
	assert.NoError(emu.Reset())
	err := emu.Run()
	assert.True(errors.Is(err, cpu.ErrMnemonicUnknown))
}

func TestEmulatorTickLimit(t *testing.T) {
	assert := assert.New(t)

	emu := newTestEmulator(t, "loop:", "B loop")
	emu.MaxTicks = 100

	err := emu.Run()
	assert.True(errors.Is(err, ErrTickLimit))
	assert.Equal(100, emu.Ticks())
	assert.False(emu.Cpu.Running)
}

func TestEmulatorReset(t *testing.T) {
	assert := assert.New(t)

	emu := newTestEmulator(t, "ADD R0, R0, #1", "STR R0, 9", "HALT")
	emu.Preset = &Preset{
		Registers: map[int]int32{0: 41},
	}

	for range 2 {
		assert.NoError(emu.Reset())
		assert.NoError(emu.Run())
		assert.Equal(int32(42), emu.Cpu.Memory[9])
		assert.Equal(3, emu.Ticks())
	}
}
