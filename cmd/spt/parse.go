package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ronan1410/SelfPartioningTranspilerV5/pyparser"
)

var parseCmd = &cobra.Command{
	Use:   "parse <script.py>",
	Short: "Parse a script and print its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  showTree,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func showTree(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading script: %w", err)
	}

	program, err := pyparser.ParseSource(string(src))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	fmt.Print(pyparser.Dump(program))
	return nil
}
