package emulator

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ezrec/armsim/cpu"
)

const dumpColumns = 4 // Registers per row of the register table.

// DumpOptions control the rendering of the machine state.
type DumpOptions struct {
	Style      table.Style // Table style.
	AllMemory  bool        // If set, show zero memory cells too.
	HideMemory bool        // If set, omit the memory table.
}

// DefaultDumpOptions are suitable for a terminal.
var DefaultDumpOptions = DumpOptions{Style: table.StyleLight}

func newTable(w io.Writer, style table.Style, title string) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(style)
	tw.SetTitle(title)
	return tw
}

// Dump renders the machine state as tables.
func (emu *Emulator) Dump(w io.Writer, opts DumpOptions) {
	st := &emu.Cpu.State

	status := newTable(w, opts.Style, f("Status"))
	status.AppendHeader(table.Row{f("PC"), f("Line"), f("Flag"), f("Running"), f("Ticks")})
	status.AppendRow(table.Row{st.Pc, emu.LineNo(), st.Flag.String(), st.Running, emu.Ticks()})
	status.Render()

	regs := newTable(w, opts.Style, f("Registers"))
	header := table.Row{""}
	for col := range dumpColumns {
		header = append(header, fmt.Sprintf("+%d", col))
	}
	regs.AppendHeader(header)
	for row := 0; row < cpu.REGISTER_COUNT; row += dumpColumns {
		line := table.Row{fmt.Sprintf("R%d-R%d", row, row+dumpColumns-1)}
		for col := range dumpColumns {
			line = append(line, st.Registers[row+col])
		}
		regs.AppendRow(line)
	}
	regs.Render()

	if opts.HideMemory {
		return
	}

	mem := newTable(w, opts.Style, f("Memory"))
	mem.AppendHeader(table.Row{f("Address"), f("Value"), f("Hex")})
	for addr, val := range st.Memory {
		if val == 0 && !opts.AllMemory {
			continue
		}
		mem.AppendRow(table.Row{addr, val, fmt.Sprintf("%08X", uint32(val))})
	}
	mem.Render()
}

// Labels renders the label index of the program.
func (emu *Emulator) Labels(w io.Writer, style table.Style) {
	labels := newTable(w, style, f("Labels"))
	labels.AppendHeader(table.Row{f("Label"), f("Target"), f("Line")})
	for name, index := range emu.Program.Labels() {
		labels.AppendRow(table.Row{name, index, index + 1})
	}
	labels.Render()
}

// Listing renders the program lines, and how each decoded.
func (emu *Emulator) Listing(w io.Writer, style table.Style) {
	listing := newTable(w, style, f("Program"))
	listing.AppendHeader(table.Row{f("Index"), f("Source"), f("Decoded"), f("Target")})
	for n, line := range emu.Program.Lines() {
		var target string
		if line.Err == nil && line.Insn.Op.Branch() {
			index, ok := emu.Program.Label(line.Insn.Label)
			if ok {
				target = fmt.Sprintf("%d", index)
			} else {
				target = f("missing")
			}
		}

		decoded := line.Insn.Op.String()
		switch {
		case line.Err != nil:
			decoded = line.Err.Error()
		case line.Insn.Op == cpu.OP_UNKNOWN:
			decoded = f("skip")
		case line.Insn.Op != cpu.OP_NONE:
			decoded = line.Insn.String()
		}
		listing.AppendRow(table.Row{n, line.Text, decoded, target})
	}
	listing.Render()
}
