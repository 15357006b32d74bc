// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"cmp"
	"io"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Line is a single line of program text, and its decoded form.
type Line struct {
	Text string      // Source text.
	Insn Instruction // Decoded instruction.
	Err  error       // Decode error, reported when the line executes.
}

// Program is an immutable sequence of decoded lines, and its label index.
type Program struct {
	lines []Line
	label map[string]int // Map of labels to the index following the declaration.
}

// NewProgram loads a program from text.
func NewProgram(text string) (prog *Program, err error) {
	return ParseProgram(strings.NewReader(text))
}

// ParseProgram loads a program from an input stream.
//
// Every line is decoded once. Decode errors are kept with the line,
// as they are only fatal if the line is executed. Duplicate label
// declarations are rejected.
func ParseProgram(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var text string
	var lineno int

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: text, Err: err}
			prog = nil
		}
	}()

	prog = &Program{
		label: make(map[string]int, 16),
	}

	for scanner.Scan() {
		text = scanner.Text()
		lineno += 1

		line := Line{Text: text}
		line.Insn, line.Err = Decode(text)

		if line.Insn.Op == OP_LABEL {
			_, ok := prog.label[line.Insn.Label]
			if ok {
				err = ErrLabelDuplicate
				return
			}
			prog.label[line.Insn.Label] = len(prog.lines) + 1
		}

		prog.lines = append(prog.lines, line)
	}

	err = scanner.Err()

	return
}

// Len returns the number of lines in the program.
func (prog *Program) Len() int {
	return len(prog.lines)
}

// Line returns the line at an index.
func (prog *Program) Line(index int) (line Line, ok bool) {
	if index < 0 || index >= len(prog.lines) {
		return
	}

	return prog.lines[index], true
}

// Label returns the line index a label branches to.
func (prog *Program) Label(name string) (index int, ok bool) {
	index, ok = prog.label[name]
	return
}

// Labels iterates over the label index, in order of target line.
func (prog *Program) Labels() iter.Seq2[string, int] {
	return func(yield func(name string, index int) bool) {
		names := slices.SortedFunc(maps.Keys(prog.label), func(a, b string) int {
			return cmp.Or(cmp.Compare(prog.label[a], prog.label[b]), cmp.Compare(a, b))
		})
		for _, name := range names {
			if !yield(name, prog.label[name]) {
				return
			}
		}
	}
}

// Lines iterates over the program lines.
func (prog *Program) Lines() iter.Seq2[int, Line] {
	return func(yield func(index int, line Line) bool) {
		for n, line := range prog.lines {
			if !yield(n, line) {
				return
			}
		}
	}
}
