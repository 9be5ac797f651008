package splitter

import "regexp"

// The comfort model estimates how "comfortable" a segment is to keep in
// a high-level language: familiarity with scripting idioms divided by
// estimated runtime cost. Low comfort pushes a segment toward a
// lower-level target.

var (
	loopPattern = regexp.MustCompile(`\bfor\b|\bwhile\b`)
	defPattern  = regexp.MustCompile(`\bdef\b`)
)

// familiarityPatterns and their weights; order is fixed so scoring is
// deterministic.
var familiarityPatterns = []struct {
	re     *regexp.Regexp
	weight float64
}{
	{regexp.MustCompile(`\blen\(`), 0.3},
	{regexp.MustCompile(`\bin\b`), 0.3},
	{regexp.MustCompile(`print\(`), 0.3},
	{regexp.MustCompile(`\[.*for.*in.*\]`), 0.3}, // list comprehension
	{regexp.MustCompile(`lambda`), 0.3},
	{regexp.MustCompile(`\benumerate\(`), 0.3},
	{regexp.MustCompile(`\bzip\(`), 0.3},
	{regexp.MustCompile(`\bmap\(`), 0.2},
	{regexp.MustCompile(`\bfilter\(`), 0.2},
}

// CountLoops counts for and while constructs.
func CountLoops(code string) int {
	return len(loopPattern.FindAllString(code, -1))
}

// CountDefs counts function definitions, a proxy for structural
// complexity.
func CountDefs(code string) int {
	return len(defPattern.FindAllString(code, -1))
}

// Familiarity computes 1 + the sum of weights of matched idiom patterns.
func Familiarity(code string) float64 {
	familiarity := 1.0
	for _, p := range familiarityPatterns {
		if p.re.MatchString(code) {
			familiarity += p.weight
		}
	}
	return familiarity
}

// RuntimeCost estimates complexity as 1 + 0.5*loops + 0.25*defs.
func RuntimeCost(code string) float64 {
	return 1 + 0.5*float64(CountLoops(code)) + 0.25*float64(CountDefs(code))
}

// ComfortValue is Familiarity / RuntimeCost.
func ComfortValue(code string) float64 {
	cost := RuntimeCost(code)
	if cost == 0 {
		return 1.0
	}
	return Familiarity(code) / cost
}

// ComfortReport is a structured scoring breakdown for debugging and
// analysis.
type ComfortReport struct {
	ComfortValue     float64
	FamiliarityScore float64
	RuntimeCost      float64
}

// Report computes the full breakdown for a segment.
func Report(code string) ComfortReport {
	return ComfortReport{
		ComfortValue:     ComfortValue(code),
		FamiliarityScore: Familiarity(code),
		RuntimeCost:      RuntimeCost(code),
	}
}
