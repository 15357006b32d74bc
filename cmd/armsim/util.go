package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/ezrec/armsim/cpu"
)

// Process exit codes.
const (
	EXIT_OK    = 0 // Program halted.
	EXIT_USAGE = 1 // Bad arguments, or the program failed to load.
	EXIT_FAULT = 2 // Program faulted while running.
)

// GetFlag gets an expected flag, or exit if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		atexit.Exit(EXIT_USAGE)
	}

	return r
}

// GetUint gets an expected unsigned int flag, or exit if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		atexit.Exit(EXIT_USAGE)
	}

	return r
}

// GetString gets an expected string flag, or exit if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		atexit.Exit(EXIT_USAGE)
	}

	return r
}

// LoadProgram reads and loads a program file, where "-" is stdin.
func LoadProgram(filename string) (prog *cpu.Program, err error) {
	var input io.Reader = os.Stdin

	if filename != "-" {
		var inf *os.File
		inf, err = os.Open(filename)
		if err != nil {
			return
		}
		defer inf.Close()
		input = inf
	}

	prog, err = cpu.ParseProgram(input)
	if err != nil {
		err = fmt.Errorf("%v: %w", filename, err)
		return
	}

	log.Debugf("%v: %d lines", filename, prog.Len())

	return
}
