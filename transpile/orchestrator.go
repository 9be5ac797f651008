package transpile

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Ronan1410/SelfPartioningTranspilerV5/splitter"
)

// SegmentResult is the outcome of processing one segment.
type SegmentResult struct {
	Index   int
	Segment splitter.Segment
	Source  string // generated target-language source
	Path    string // where the source was written
	Ran     bool   // whether execution was attempted
	Stdout  string
	Stderr  string
	Exit    int
	Err     error // resolution, write, or toolchain failure
}

// Orchestrator coordinates segments through transpilation, output
// writing, and optional compilation and execution.
type Orchestrator struct {
	Registry *Registry
	OutDir   string
	Execute  bool
	Log      io.Writer // progress output; nil silences it

	logMu sync.Mutex
}

// NewOrchestrator creates an Orchestrator writing under outDir.
func NewOrchestrator(registry *Registry, outDir string) *Orchestrator {
	return &Orchestrator{Registry: registry, OutDir: outDir}
}

func (o *Orchestrator) logf(format string, args ...any) {
	if o.Log == nil {
		return
	}
	o.logMu.Lock()
	defer o.logMu.Unlock()
	fmt.Fprintf(o.Log, format, args...)
}

// Process runs every segment. Segments are independent, so they fan out
// concurrently; results come back in segment order. A per-segment
// failure is recorded in its SegmentResult rather than aborting the
// run.
func (o *Orchestrator) Process(ctx context.Context, segments []splitter.Segment) ([]SegmentResult, error) {
	o.logf("[orchestrator] received %d segments\n", len(segments))

	if err := os.MkdirAll(o.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	results := make([]SegmentResult, len(segments))
	g, ctx := errgroup.WithContext(ctx)
	for i, seg := range segments {
		i, seg := i, seg
		g.Go(func() error {
			results[i] = o.processSegment(ctx, i, seg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (o *Orchestrator) processSegment(ctx context.Context, index int, seg splitter.Segment) SegmentResult {
	res := SegmentResult{Index: index, Segment: seg}

	t, err := o.Registry.Resolve(seg.Language)
	if err != nil {
		o.logf("[segment %d] %v\n", index, err)
		res.Err = err
		return res
	}

	o.logf("[segment %d] language %s (comfort %.2f)\n", index, seg.Language, seg.Comfort)
	res.Source = t.Transpile(seg.Code)

	dir := filepath.Join(o.OutDir, fmt.Sprintf("segment-%d", index))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		res.Err = fmt.Errorf("creating segment dir: %w", err)
		return res
	}

	name := "main" + t.FileExtension()
	if seg.Language == "java" {
		name = JavaClassName + t.FileExtension()
	}
	res.Path = filepath.Join(dir, name)
	if err := os.WriteFile(res.Path, []byte(res.Source), 0o644); err != nil {
		res.Err = fmt.Errorf("writing segment source: %w", err)
		return res
	}

	if !o.Execute {
		return res
	}

	res.Ran = true
	res.Stdout, res.Stderr, res.Exit, res.Err = runSegment(ctx, seg.Language, dir, res.Path)
	if res.Err != nil {
		o.logf("[segment %d] execution failed: %v\n", index, res.Err)
	} else {
		o.logf("[segment %d] exit %d\n", index, res.Exit)
	}
	return res
}
