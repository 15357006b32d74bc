package cpu

// State is the machine state mutated by the CPU.
type State struct {
	Registers [REGISTER_COUNT]int32 // Register file.
	Memory    [MEMORY_SIZE]int32    // Memory cells.
	Flag      Flag                  // Comparison flag.
	Pc        int                   // Program counter, a line index.
	Running   bool                  // Cleared by HALT or a fault.
}

// Reset zeroes the state, and sets it running from line 0.
func (st *State) Reset() {
	clear(st.Registers[:])
	clear(st.Memory[:])
	st.Flag = FLAG_UNSET
	st.Pc = 0
	st.Running = true
}

// Register returns the value of a register.
func (st *State) Register(index int) (value int32, err error) {
	if index < 0 || index >= len(st.Registers) {
		err = ErrRegisterRange(index)
		return
	}

	return st.Registers[index], nil
}

// SetRegister sets the value of a register.
func (st *State) SetRegister(index int, value int32) (err error) {
	if index < 0 || index >= len(st.Registers) {
		return ErrRegisterRange(index)
	}

	st.Registers[index] = value
	return
}

// Load returns the value of a memory cell.
func (st *State) Load(addr int) (value int32, err error) {
	if addr < 0 || addr >= len(st.Memory) {
		err = ErrAddressRange(addr)
		return
	}

	return st.Memory[addr], nil
}

// Store sets the value of a memory cell.
func (st *State) Store(addr int, value int32) (err error) {
	if addr < 0 || addr >= len(st.Memory) {
		return ErrAddressRange(addr)
	}

	st.Memory[addr] = value
	return
}

// value returns the value of an operand.
func (st *State) value(op Operand) (value int32, err error) {
	if op.Register {
		return st.Register(int(op.Value))
	}

	return op.Value, nil
}
