// Command mipssim is the MIPS-I instruction-level simulator's CLI
// entry point: it loads one or more raw program images, opens the
// dumpsim log, and drives the interactive debugger prompt.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"mipssim/internal/repl"
	"mipssim/pkg/mips"
)

func main() {
	log.SetFlags(0)

	var debug bool
	var verbose bool

	root := &cobra.Command{
		Use:   "mipssim <file1> [file2 ...]",
		Short: "MIPS Simulator",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, debug, verbose)
		},
		SilenceUsage: true,
	}
	root.Flags().BoolVarP(&debug, "debug", "d", false, "pause for a keypress before every cycle")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace the decoded instruction on every cycle")

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(files []string, debug, verbose bool) error {
	fmt.Println("MIPS Simulator")
	fmt.Println()

	machine, err := mips.NewMachine(files...)
	if err != nil {
		return fmt.Errorf("mipssim: %w", err)
	}

	dumpFile, err := os.Create("dumpsim")
	if err != nil {
		return fmt.Errorf("mipssim: can't open dumpsim file: %w", err)
	}
	defer dumpFile.Close()

	r := repl.New(machine, os.Stdin, os.Stdout, dumpFile, files)
	r.Verbose = verbose
	r.Debug = debug

	if err := r.Loop(); err != nil && err != repl.ErrQuit {
		return err
	}
	return nil
}
