package splitter

import (
	"strings"

	"github.com/google/uuid"
)

// DefaultSegmentSize caps a segment at this many non-blank lines.
const DefaultSegmentSize = 5

// Segment is one chunk of source with its comfort score and the target
// language chosen for it.
type Segment struct {
	ID       uuid.UUID
	Code     string
	Comfort  float64
	Language string
}

// Splitter splits code into segments and assigns target languages based
// on comfort-value thresholds.
type Splitter struct {
	SegmentSize int
}

// New creates a Splitter. A non-positive segmentSize falls back to
// DefaultSegmentSize.
func New(segmentSize int) *Splitter {
	if segmentSize <= 0 {
		segmentSize = DefaultSegmentSize
	}
	return &Splitter{SegmentSize: segmentSize}
}

// SplitCode splits source by blank lines, additionally flushing whenever
// a chunk reaches SegmentSize lines. Empty chunks are never emitted.
func (s *Splitter) SplitCode(code string) []string {
	lines := strings.Split(strings.TrimSpace(code), "\n")

	var segments []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			segments = append(segments, strings.Join(current, "\n"))
			current = nil
		}
	}

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			flush()
		} else {
			current = append(current, line)
		}
		if len(current) >= s.SegmentSize {
			flush()
		}
	}
	flush()
	return segments
}

// SelectLanguage maps a comfort score onto a target language.
func SelectLanguage(score float64) string {
	switch {
	case score < 0.9:
		return "cpp"
	case score < 1.2:
		return "rust"
	case score < 1.5:
		return "go"
	default:
		return "java"
	}
}

// Split is the main entry: it chunks the code, scores each chunk, and
// tags it with a fresh ID and the selected target language.
func (s *Splitter) Split(code string) []Segment {
	raw := s.SplitCode(code)
	segments := make([]Segment, 0, len(raw))
	for _, chunk := range raw {
		score := ComfortValue(chunk)
		segments = append(segments, Segment{
			ID:       uuid.New(),
			Code:     chunk,
			Comfort:  score,
			Language: SelectLanguage(score),
		})
	}
	return segments
}
