package emulator

import (
	"fmt"
	"maps"
	"slices"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/armsim/cpu"
)

// Preset is the initial machine state, and run options, described by a
// Starlark script:
//
//	registers = {0: 42, 1: -1}
//	memory = {i: i * i for i in range(16)}
//	strict = True
//	max_ticks = 10000
type Preset struct {
	Registers map[int]int32 // Initial register values.
	Memory    map[int]int32 // Initial memory values.
	Strict    bool          // Unknown mnemonics are fatal.
	MaxTicks  int           // Tick limit, if non-zero.
}

// Predefined preset globals
var presetPredeclared = starlark.StringDict{
	"REGISTER_COUNT": starlark.MakeInt(cpu.REGISTER_COUNT),
	"MEMORY_SIZE":    starlark.MakeInt(cpu.MEMORY_SIZE),
}

// LoadPreset executes a Starlark preset script. The src argument is
// handled as by starlark.ExecFile: nil reads the named file.
func LoadPreset(filename string, src any) (preset *Preset, err error) {
	thread := &starlark.Thread{Name: "preset"}
	opts := syntax.FileOptions{Set: true}

	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, presetPredeclared)
	if err != nil {
		return
	}

	preset = &Preset{}

	preset.Registers, err = presetCells(globals, "registers", cpu.REGISTER_COUNT,
		func(index int) error { return cpu.ErrRegisterRange(index) })
	if err != nil {
		return
	}

	preset.Memory, err = presetCells(globals, "memory", cpu.MEMORY_SIZE,
		func(index int) error { return cpu.ErrAddressRange(index) })
	if err != nil {
		return
	}

	if value, ok := globals["strict"]; ok {
		flag, ok := value.(starlark.Bool)
		if !ok {
			err = &ErrPresetType{Name: "strict", Type: value.Type()}
			return
		}
		preset.Strict = bool(flag)
	}

	if value, ok := globals["max_ticks"]; ok {
		preset.MaxTicks, err = starlark.AsInt32(value)
		if err != nil || preset.MaxTicks < 0 {
			err = &ErrPresetValue{Name: "max_ticks", Value: value.String()}
			return
		}
	}

	return
}

// presetCells converts a dict of index to value.
func presetCells(globals starlark.StringDict, name string, limit int, rangeErr func(int) error) (cells map[int]int32, err error) {
	cells = map[int]int32{}

	value, ok := globals[name]
	if !ok {
		return
	}

	dict, ok := value.(*starlark.Dict)
	if !ok {
		err = &ErrPresetType{Name: name, Type: value.Type()}
		return
	}

	for _, item := range dict.Items() {
		var index int
		index, err = starlark.AsInt32(item[0])
		if err != nil {
			err = &ErrPresetType{Name: name, Type: item[0].Type()}
			return
		}
		if index < 0 || index >= limit {
			err = rangeErr(index)
			return
		}

		var val int32
		val, err = valueOf(item[1])
		if err != nil {
			err = &ErrPresetValue{Name: fmt.Sprintf("%v[%d]", name, index), Value: item[1].String()}
			return
		}

		cells[index] = val
	}

	return
}

// valueOf converts a Starlark int to a register value. Both signed and
// unsigned 32-bit ranges are accepted.
func valueOf(value starlark.Value) (val int32, err error) {
	num, ok := value.(starlark.Int)
	if !ok {
		err = &ErrPresetType{Name: "value", Type: value.Type()}
		return
	}

	v64, ok := num.Int64()
	if !ok || v64 > 0xffffffff || v64 < -int64(0x80000000) {
		err = &ErrPresetValue{Name: "value", Value: num.String()}
		return
	}

	val = int32(uint32(v64))
	return
}

// Apply writes the preset values into a machine state.
func (preset *Preset) Apply(state *cpu.State) (err error) {
	for _, index := range slices.Sorted(maps.Keys(preset.Registers)) {
		err = state.SetRegister(index, preset.Registers[index])
		if err != nil {
			return
		}
	}

	for _, addr := range slices.Sorted(maps.Keys(preset.Memory)) {
		err = state.Store(addr, preset.Memory[addr])
		if err != nil {
			return
		}
	}

	return
}
