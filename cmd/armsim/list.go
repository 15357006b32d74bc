package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/ezrec/armsim/emulator"
)

var listCmd = &cobra.Command{
	Use:   "list [flags] FILE",
	Short: "List a program and its labels.",
	Long: `Print each line of a program with its index and decoded form,
	followed by the label index used to resolve branches.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		prog, err := LoadProgram(args[0])
		if err != nil {
			log.Error(err)
			atexit.Exit(EXIT_USAGE)
		}

		emu := emulator.NewEmulator(prog)
		style := tableStyle()

		emu.Listing(os.Stdout, style)
		if !GetFlag(cmd, "no-labels") {
			emu.Labels(os.Stdout, style)
		}
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("no-labels", false, "omit the label table")
}
