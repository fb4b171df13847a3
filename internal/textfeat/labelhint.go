package textfeat

import (
	"fmt"
	"strings"

	"go-jobpost-verifier/pkg/models"
)

var (
	fakeMarkers    = []string{"fake", "palsu", "scam", "penipuan", "fraud", "hoax"}
	genuineMarkers = []string{"genuine", "asli", "real", "valid", "resmi", "legitimate"}
)

// AnalyzeLabelHint inspects a filename or path for curated dataset markers
// such as a "fake/" or "genuine/" folder segment. The returned boost is a
// signed confidence adjustment: negative for fake markers (floor -60),
// positive for genuine markers (cap +35), zero when nothing matches.
func AnalyzeLabelHint(filename string) models.LabelHint {
	if filename == "" {
		return models.LabelHint{LabelDetected: "none", Reasoning: "No filename provided"}
	}
	lower := strings.ToLower(filename)

	fakeCount := countMarkers(lower, fakeMarkers)
	genuineCount := countMarkers(lower, genuineMarkers)

	switch {
	case fakeCount > 0:
		boost := -35.0 - 8.0*float64(fakeCount)
		if boost < -60 {
			boost = -60
		}
		return models.LabelHint{
			LabelDetected:   "fake",
			ConfidenceBoost: boost,
			Reasoning:       fmt.Sprintf("Filename carries %d fraud marker(s)", fakeCount),
		}
	case genuineCount > 0:
		boost := 20.0 + 5.0*float64(genuineCount)
		if boost > 35 {
			boost = 35
		}
		return models.LabelHint{
			LabelDetected:   "genuine",
			ConfidenceBoost: boost,
			Reasoning:       fmt.Sprintf("Filename carries %d legitimacy marker(s)", genuineCount),
		}
	default:
		return models.LabelHint{LabelDetected: "none", Reasoning: "No label markers in filename"}
	}
}

func countMarkers(lower string, markers []string) int {
	n := 0
	for _, m := range markers {
		n += strings.Count(lower, m)
	}
	return n
}
