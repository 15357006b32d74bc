package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/ezrec/armsim/emulator"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] FILE",
	Short: "Run a program until it halts.",
	Long: `Run a program from its first line until HALT. A fault, such as a
	malformed instruction or running off the end of the program, stops
	the machine and exits with status 2.`,
	Args: cobra.ExactArgs(1),
	Run:  runRunCmd,
}

func runRunCmd(cmd *cobra.Command, args []string) {
	verbose := GetFlag(cmd, "verbose")
	dump := GetFlag(cmd, "dump")
	presetFile := GetString(cmd, "preset")

	prog, err := LoadProgram(args[0])
	if err != nil {
		log.Error(err)
		atexit.Exit(EXIT_USAGE)
	}

	emu := emulator.NewEmulator(prog)
	emu.Verbose = verbose
	emu.Strict = GetFlag(cmd, "strict")
	emu.MaxTicks = int(GetUint(cmd, "max-ticks"))

	if presetFile != "" {
		emu.Preset, err = emulator.LoadPreset(presetFile, nil)
		if err != nil {
			log.Error(err)
			atexit.Exit(EXIT_USAGE)
		}
	}

	err = emu.Reset()
	if err != nil {
		log.Error(err)
		atexit.Exit(EXIT_USAGE)
	}

	// Dump on the way out, halted or not.
	if dump {
		opts := emulator.DefaultDumpOptions
		opts.Style = tableStyle()
		opts.AllMemory = GetFlag(cmd, "all-memory")
		atexit.Register(func() {
			emu.Dump(os.Stdout, opts)
		})
	}

	err = emu.Run()
	if err != nil {
		log.Error(err)
		atexit.Exit(EXIT_FAULT)
	}

	log.Debugf("%v: halted after %d ticks", args[0], emu.Ticks())
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Bool("strict", false, "treat unknown mnemonics as faults")
	runCmd.Flags().String("preset", "", "Starlark script with initial registers and memory")
	runCmd.Flags().Uint("max-ticks", 0, "fault after this many ticks (0 is unlimited)")
	runCmd.Flags().Bool("dump", false, "print the machine state on exit")
	runCmd.Flags().Bool("all-memory", false, "include zero memory cells in the dump")
}
