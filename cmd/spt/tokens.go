package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Ronan1410/SelfPartioningTranspilerV5/pyparser"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <script.py>",
	Short: "Tokenize a script and print the token stream",
	Args:  cobra.ExactArgs(1),
	RunE:  showTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func showTokens(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading script: %w", err)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Kind", "Text", "Line", "Col"})
	for _, tok := range pyparser.Tokenize(string(src)) {
		t.AppendRow(table.Row{tok.Kind, fmt.Sprintf("%q", tok.Text), tok.Line, tok.Col})
	}
	t.Render()
	return nil
}
