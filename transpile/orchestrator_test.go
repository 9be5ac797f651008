package transpile

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ronan1410/SelfPartioningTranspilerV5/splitter"
)

func testSegment(lang, code string) splitter.Segment {
	return splitter.Segment{ID: uuid.New(), Code: code, Language: lang}
}

func TestOrchestratorWritesSegmentSources(t *testing.T) {
	dir := t.TempDir()
	o := NewOrchestrator(DefaultRegistry(), dir)

	segments := []splitter.Segment{
		testSegment("go", "print(1)"),
		testSegment("cpp", "x = 2"),
		testSegment("rust", "print(3)"),
		testSegment("java", "print(4)"),
	}
	results, err := o.Process(context.Background(), segments)
	require.NoError(t, err)
	require.Len(t, results, 4)

	wantNames := []string{"main.go", "main.cpp", "main.rs", "Generated.java"}
	for i, res := range results {
		assert.Equal(t, i, res.Index)
		assert.NoError(t, res.Err)
		assert.False(t, res.Ran)
		assert.Equal(t, filepath.Join(dir, fmt.Sprintf("segment-%d", i), wantNames[i]), res.Path)

		data, readErr := os.ReadFile(res.Path)
		require.NoError(t, readErr)
		assert.Equal(t, res.Source, string(data))
	}
}

func TestOrchestratorUnknownLanguage(t *testing.T) {
	o := NewOrchestrator(DefaultRegistry(), t.TempDir())

	results, err := o.Process(context.Background(), []splitter.Segment{testSegment("cobol", "x = 1")})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Error(t, results[0].Err)
	assert.Empty(t, results[0].Path)
}

func TestOrchestratorResultsInSegmentOrder(t *testing.T) {
	o := NewOrchestrator(DefaultRegistry(), t.TempDir())

	var segments []splitter.Segment
	for i := 0; i < 16; i++ {
		segments = append(segments, testSegment("go", "print(1)"))
	}
	results, err := o.Process(context.Background(), segments)
	require.NoError(t, err)
	for i, res := range results {
		assert.Equal(t, i, res.Index)
	}
}

func TestOrchestratorLogging(t *testing.T) {
	var buf bytes.Buffer
	o := NewOrchestrator(DefaultRegistry(), t.TempDir())
	o.Log = &buf

	_, err := o.Process(context.Background(), []splitter.Segment{testSegment("go", "print(1)")})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "[orchestrator] received 1 segments")
	assert.Contains(t, buf.String(), "[segment 0]")
}
