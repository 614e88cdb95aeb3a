package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newTaxicabCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "taxicab [instructions...]",
		Short: "Day 1: distance to the destination and to the first path crossing",
		Long: `Reads instructions like "R8, R4, R4, R8" from the arguments, or from stdin
when none are given, and prints both taxicab distances.`,
		Example: `  infinity taxicab R8, R4, R4, R8
  echo "R2, L3" | infinity taxicab`,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLauncher(cmd)
			if err != nil {
				return err
			}
			input, err := argsOrStdin(cmd, trimCommas(args), ", ")
			if err != nil {
				return err
			}
			return l.SolveTaxicab(input)
		},
	}
}

// trimCommas drops the trailing comma shells leave on "R8, R4" style args.
func trimCommas(args []string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		if a = strings.TrimSuffix(a, ","); a != "" {
			out = append(out, a)
		}
	}
	return out
}

func newKeypadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keypad [lines...]",
		Short: "Day 2: bathroom code for each keypad layout",
		Long: `Reads one line of U, D, L, R moves per key from the arguments, or from stdin
up to the first empty line, and prints the code on each selected layout.`,
		Example: `  infinity keypad ULL RRDDD LURDL UUUUD
  infinity keypad --layout diamond < moves.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLauncher(cmd)
			if err != nil {
				return err
			}
			names, _ := cmd.Flags().GetStringSlice("layout")
			input, err := argsOrStdin(cmd, args, "\n")
			if err != nil {
				return err
			}
			return l.SolveKeypad(input, names)
		},
	}
	cmd.Flags().StringSliceP("layout", "l", nil, "layout name (repeatable); default all configured layouts")
	return cmd
}

func newLayoutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layouts",
		Short: "List the configured keypad layouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLauncher(cmd)
			if err != nil {
				return err
			}
			l.PrintLayouts()
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of infinity",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "infinity version %s\n", version)
		},
	}
}
