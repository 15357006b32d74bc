package emulator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/stretchr/testify/assert"
)

func TestDump(t *testing.T) {
	assert := assert.New(t)

	emu := newTestEmulator(t, "MOV R5, #-2", "STR R5, 17", "HALT")
	assert.NoError(emu.Run())

	buf := &bytes.Buffer{}
	emu.Dump(buf, DumpOptions{Style: table.StyleDefault})
	text := buf.String()

	assert.Contains(strings.ToLower(text), "status")
	assert.Contains(strings.ToLower(text), "registers")
	assert.Contains(text, "R4-R7")
	assert.Contains(text, "-2")
	assert.Contains(text, "FFFFFFFE")
	assert.Contains(text, "unset")

	buf.Reset()
	emu.Dump(buf, DumpOptions{Style: table.StyleDefault, HideMemory: true})
	assert.NotContains(buf.String(), "FFFFFFFE")
}

func TestLabels(t *testing.T) {
	assert := assert.New(t)

	emu := newTestEmulator(t, "B second", "first:", "HALT", "second:", "HALT")

	buf := &bytes.Buffer{}
	emu.Labels(buf, table.StyleDefault)
	text := buf.String()

	assert.Contains(text, "first")
	assert.Contains(text, "second")
	assert.Less(bytes.Index(buf.Bytes(), []byte("first")), bytes.Index(buf.Bytes(), []byte("second")))
}

func TestListing(t *testing.T) {
	assert := assert.New(t)

	emu := newTestEmulator(t, "ADD   R0,  R0, #1", "WAT", "MOV R0, 3", "", "BEQ end", "BNE gone", "end:", "HALT")

	buf := &bytes.Buffer{}
	emu.Listing(buf, table.StyleDefault)
	text := buf.String()

	assert.Contains(text, "ADD R0, R0, #1")
	assert.Contains(text, "skip")
	assert.Contains(text, "'3' is not an immediate or register")
	assert.Contains(text, "HALT")
	assert.Contains(text, "BEQ end")
	assert.Contains(text, "missing")
	assert.Contains(strings.ToLower(text), "target")
}
