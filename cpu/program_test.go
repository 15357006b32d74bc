package cpu

import (
	"errors"
	"maps"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgramEmpty(t *testing.T) {
	assert := assert.New(t)

	prog, err := NewProgram("")
	assert.NoError(err)
	assert.Equal(0, prog.Len())

	_, ok := prog.Line(0)
	assert.False(ok)
}

func TestProgramLabels(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"start:",        // 0
		"MOV R0, #1",    // 1
		"loop:",         // 2
		"end:",          // 3
		"HALT",          // 4
		"tail:",         // 5
		"bogus: MOV R0", // 6
	}

	prog, err := NewProgram(strings.Join(program, "\n"))
	assert.NoError(err)
	assert.Equal(len(program), prog.Len())

	expected := map[string]int{
		"start": 1,
		"loop":  3,
		"end":   4,
		"tail":  6,
	}
	assert.Equal(expected, maps.Collect(prog.Labels()))

	index, ok := prog.Label("loop")
	assert.True(ok)
	assert.Equal(3, index)

	_, ok = prog.Label("bogus")
	assert.False(ok)

	var names []string
	for name := range prog.Labels() {
		names = append(names, name)
	}
	assert.Equal([]string{"start", "loop", "end", "tail"}, names)
}

func TestProgramLines(t *testing.T) {
	assert := assert.New(t)

	prog, err := NewProgram("MOV R0, #1\r\n\r\nADD R0, R0\nHALT\n")
	assert.NoError(err)
	assert.Equal(4, prog.Len())

	line, ok := prog.Line(0)
	assert.True(ok)
	assert.Equal("MOV R0, #1", line.Text)
	assert.Equal(OP_MOV, line.Insn.Op)
	assert.NoError(line.Err)

	line, _ = prog.Line(1)
	assert.Equal(OP_NONE, line.Insn.Op)

	// Decode errors are kept with the line.
	line, _ = prog.Line(2)
	assert.True(errors.Is(line.Err, ErrOperandMissing))

	count := 0
	for n, line := range prog.Lines() {
		assert.Equal(count, n)
		expected, _ := prog.Line(n)
		assert.Equal(expected.Text, line.Text)
		count++
		if n == 1 {
			break
		}
	}
	assert.Equal(2, count)
}

func TestProgramLabelDuplicate(t *testing.T) {
	assert := assert.New(t)

	prog, err := NewProgram("a:\nHALT\na:\nHALT")
	assert.Nil(prog)
	assert.True(errors.Is(err, ErrLabelDuplicate))

	var syntax ErrSyntax
	assert.True(errors.As(err, &syntax))
	assert.Equal(3, syntax.LineNo)
	assert.Equal("a:", syntax.Line)
}
