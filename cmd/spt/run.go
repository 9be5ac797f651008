package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Ronan1410/SelfPartioningTranspilerV5/splitter"
	"github.com/Ronan1410/SelfPartioningTranspilerV5/transpile"
)

var runCmd = &cobra.Command{
	Use:   "run <script.py>",
	Short: "Partition a script and transpile each segment",
	Long:  "Split a script into segments by comfort score, transpile each to its selected target language, and optionally compile and execute the results.",
	Args:  cobra.ExactArgs(1),
	RunE:  runScript,
}

func init() {
	runCmd.Flags().String("out-dir", "", "Output directory (default: ./runs/<timestamp>)")
	runCmd.Flags().Bool("dry-run", false, "Split and report only, do not write or execute")
	runCmd.Flags().Bool("no-exec", false, "Write transpiled sources but skip compilation and execution")

	_ = viper.BindPFlag("out_dir", runCmd.Flags().Lookup("out-dir"))

	rootCmd.AddCommand(runCmd)
}

func runScript(cmd *cobra.Command, args []string) error {
	verbose := viper.GetBool("verbose")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	noExec, _ := cmd.Flags().GetBool("no-exec")

	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading script: %w", err)
	}

	s := splitter.New(viper.GetInt("segment_size"))
	segments := s.Split(string(src))
	if verbose {
		fmt.Fprintf(os.Stderr, "[splitter] %d segments from %s\n", len(segments), args[0])
	}

	if dryRun {
		fmt.Fprintf(os.Stderr, "Dry run: %d segments\n", len(segments))
		printSegmentSummary(os.Stdout, segments, nil)
		return nil
	}

	outDir := viper.GetString("out_dir")
	if outDir == "" {
		outDir = filepath.Join("runs", time.Now().Format("20060102-150405"))
	}

	o := transpile.NewOrchestrator(transpile.DefaultRegistry(), outDir)
	o.Execute = !noExec
	if verbose {
		o.Log = os.Stderr
	}

	results, err := o.Process(context.Background(), segments)
	if err != nil {
		return err
	}

	printSegmentSummary(os.Stdout, segments, results)

	for _, res := range results {
		if res.Err != nil {
			return fmt.Errorf("segment %d: %w", res.Index, res.Err)
		}
	}
	return nil
}

func printSegmentSummary(w io.Writer, segments []splitter.Segment, results []transpile.SegmentResult) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Segment", "Lines", "Comfort", "Language", "Status"})
	for i, seg := range segments {
		lines := len(strings.Split(strings.TrimSpace(seg.Code), "\n"))
		status := "planned"
		if results != nil {
			status = resultStatus(results[i])
		}
		t.AppendRow(table.Row{i, lines, fmt.Sprintf("%.2f", seg.Comfort), seg.Language, status})
	}
	t.Render()
}

func resultStatus(res transpile.SegmentResult) string {
	switch {
	case res.Err != nil:
		return "error: " + res.Err.Error()
	case !res.Ran:
		return "written"
	case res.Exit != 0:
		return fmt.Sprintf("exit %d", res.Exit)
	default:
		return "ok"
	}
}
