package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/jedib0t/go-pretty/v6/table"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
	"golang.org/x/term"
	"golang.org/x/text/language"

	"github.com/ezrec/armsim/emulator"
	"github.com/ezrec/armsim/translate"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "armsim",
	Short: "A register machine simulator.",
	Long: `Load and run programs for a small register machine with sixteen
	32-bit registers, 256 memory cells and a comparison flag.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		if lang := GetString(cmd, "lang"); lang != "" {
			tag, err := language.Parse(lang)
			if err != nil {
				log.Error(err)
				atexit.Exit(EXIT_USAGE)
			}
			translate.SetLanguage(tag)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Print("armsim ")
			if Version != "" {
				// Built via "make"
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				// Built via "go install"
				fmt.Printf("%s", info.Main.Version)
			} else {
				// Unknown, perhaps "go run"
				fmt.Printf("(unknown version)")
			}
			fmt.Println()
			return
		}
		fmt.Println(cmd.UsageString())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(EXIT_USAGE)
	}
}

// tableStyle picks boxed tables for a terminal, and plain ASCII otherwise.
func tableStyle() table.Style {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return emulator.DefaultDumpOptions.Style
	}

	return table.StyleDefault
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().String("lang", "", "message language, overriding the system locale")
	rootCmd.Flags().Bool("version", false, "print the version and exit")
}
