package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/amirrezaask/stackviz/brackets"
	"github.com/amirrezaask/stackviz/trace"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errUnbalanced = errors.New("expression not balanced")

var traceCmd = &cobra.Command{
	Use:   "trace <expression>...",
	Short: "Print the bracket check of each expression step by step",
	Long:  `Runs the balanced bracket check on every expression and prints one line per scanned character. Exits with status 1 if any expression is not balanced.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asYAML, _ := cmd.Flags().GetBool("yaml")
		if asYAML {
			return runTraceYAML(cmd, args)
		}
		plain, _ := cmd.Flags().GetBool("plain")
		if !cmd.Flags().Changed("plain") {
			plain = !isTerminal(cmd.OutOrStdout())
		}
		return runTrace(cmd, args, trace.Options{Plain: plain})
	},
}

func init() {
	rootCmd.AddCommand(traceCmd)
	traceCmd.Flags().Bool("plain", false, "disable colors (default when stdout is not a terminal)")
	traceCmd.Flags().Bool("yaml", false, "print each run as a YAML document")
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func runTrace(cmd *cobra.Command, exprs []string, opts trace.Options) error {
	allBalanced := true
	for i, expr := range exprs {
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		r := brackets.Run(expr)
		fmt.Fprint(cmd.OutOrStdout(), trace.Render(expr, r, opts))
		allBalanced = allBalanced && r.Balanced
	}
	if !allBalanced {
		return errUnbalanced
	}
	return nil
}

// runTraceYAML writes one document per expression, separated by ---.
func runTraceYAML(cmd *cobra.Command, exprs []string) error {
	allBalanced := true
	for i, expr := range exprs {
		r := brackets.Run(expr)
		bs, err := trace.YAML(expr, r)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "---")
		}
		if _, err := cmd.OutOrStdout().Write(bs); err != nil {
			return fmt.Errorf("write trace of %q: %w", expr, err)
		}
		allBalanced = allBalanced && r.Balanced
	}
	if !allBalanced {
		return errUnbalanced
	}
	return nil
}
