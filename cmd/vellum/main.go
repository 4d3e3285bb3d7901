// Command vellum runs a single source file: parse it in full, then
// execute each top-level statement in order against one shared
// environment (spec.md §1, §6).
//
// Grounded on the teacher's main.go for the overall "parse everything,
// then walk and evaluate" shape, with argument parsing rebuilt on
// github.com/spf13/cobra per SPEC_FULL.md §9's configuration section --
// the example pack's own CLI lineage (opal-lang-opal/cli) builds its
// command surface the same way.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/vellum-lang/vellum"
	"github.com/vellum-lang/vellum/internal/diag"
)

var fatalBanner = color.New(color.FgRed, color.Bold)

func main() {
	var (
		useColor   bool
		noColor    bool
		verboseRun bool
		colour     = isatty.IsTerminal(os.Stdout.Fd())
	)

	root := &cobra.Command{
		Use:           "vellum <file>",
		Short:         "Run a vellum source file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("color") {
				colour = useColor
			}
			if cmd.Flags().Changed("no-color") && noColor {
				colour = false
			}
			// fatih/color disables itself when stdout is not a terminal;
			// follow the flags instead so --color can force it on.
			color.NoColor = !colour
			return run(args[0], colour, verboseRun)
		},
	}

	root.Flags().BoolVar(&useColor, "color", false, "force ANSI colour in PRINT output and the error banner")
	root.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI colour regardless of terminal detection")
	root.Flags().BoolVar(&verboseRun, "verbose", false, "log each statement's index to stderr before it runs")

	if err := root.Execute(); err != nil {
		fail(err, colour)
	}
}

func run(path string, colour, verbose bool) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	program, err := vellum.Parse(string(source))
	if err != nil {
		return err
	}

	if verbose {
		diag.SetOutput(os.Stderr)
	}

	e := vellum.NewEnv(os.Stdout, colour)
	return program.Run(e, verbose)
}

// fail prints the two-line fatal diagnostic spec.md §6 requires and exits
// nonzero. It never returns.
func fail(err error, colour bool) {
	banner := "FATAL ERROR"
	if colour {
		banner = fatalBanner.Sprint(banner)
	}
	fmt.Fprintf(os.Stderr, "%s\n\t%s\n", banner, err)
	os.Exit(1)
}
