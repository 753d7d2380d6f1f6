package main

import (
	"fmt"
	"strings"

	"github.com/amirrezaask/stackviz/session"
	"github.com/spf13/cobra"
)

var stackCmd = &cobra.Command{
	Use:   "stack push:<value>|pop|peek...",
	Short: "Run stack commands without a window",
	Long:  `Creates a stack of --capacity slots (default 5), runs the given commands in order and prints the status after each one, then the final contents bottom first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		capacity, _ := cmd.Flags().GetInt("capacity")
		if !cmd.Flags().Changed("capacity") {
			capacity = 5
		}
		return runStack(cmd, capacity, args)
	},
}

func init() {
	rootCmd.AddCommand(stackCmd)
}

func runStack(cmd *cobra.Command, capacity int, args []string) error {
	s, err := session.New(capacity)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, arg := range args {
		op, value, hasValue := strings.Cut(arg, ":")
		switch {
		case op == "push" && hasValue:
			_ = s.Push(value)
		case op == "pop" && !hasValue:
			_, _ = s.Pop()
		case op == "peek" && !hasValue:
			s.Peek()
		default:
			return fmt.Errorf("unknown stack command %q", arg)
		}
		fmt.Fprintf(out, "%-7s %s: %s\n", s.Status.Kind, arg, s.Status.Text)
	}
	fmt.Fprintf(out, "stack (%d/%d): [%s]\n", s.Len(), s.Capacity(), strings.Join(s.Items(), " "))
	return nil
}
