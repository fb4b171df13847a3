package verdict

import (
	"fmt"

	"go-jobpost-verifier/pkg/models"
)

// QualityAnalyzer stands in for an image classifier by scoring how a
// professional posting reads: completeness, language tier and the count of
// suspicious patterns.
type QualityAnalyzer struct {
	policy *Policy
	noise  Noise
}

func NewQualityAnalyzer(policy *Policy, noise Noise) *QualityAnalyzer {
	return &QualityAnalyzer{policy: policy, noise: noise}
}

func (a *QualityAnalyzer) Name() string { return "quality_heuristic" }

func (a *QualityAnalyzer) Analyze(in Input) models.AnalyzerResult {
	fv := in.Features
	score := a.policy.QualityBase
	reasons := []string{}

	switch {
	case fv.CompletenessScore >= 75:
		score += 35
		reasons = append(reasons, fmt.Sprintf("Posting is complete (%.0f%%)", fv.CompletenessScore))
	case fv.CompletenessScore < 50:
		score -= 15
		reasons = append(reasons, fmt.Sprintf("Posting is incomplete (%.0f%%)", fv.CompletenessScore))
	default:
		reasons = append(reasons, fmt.Sprintf("Posting is partially complete (%.0f%%)", fv.CompletenessScore))
	}

	switch fv.LanguageQuality {
	case models.QualityExcellent:
		score += 30
		reasons = append(reasons, "Excellent language quality")
	case models.QualityGood:
		score += 20
		reasons = append(reasons, "Good language quality")
	case models.QualityFair:
		score += 5
		reasons = append(reasons, "Fair language quality")
	default:
		score -= 20
		reasons = append(reasons, "Poor language quality")
	}

	if n := len(fv.SuspiciousPatterns); n == 0 {
		score += 25
		reasons = append(reasons, "No suspicious patterns detected")
	} else {
		score -= 8 * float64(n)
		reasons = append(reasons, fmt.Sprintf("%d suspicious pattern(s) detected", n))
	}

	score = clamp01To100(score + a.noise.Jitter())
	prediction, confidence := band(score,
		a.policy.QualityGenuineMin, a.policy.QualityFakeMax,
		a.policy.QualityGenuine, a.policy.QualityFake, a.policy.QualityUncertain)

	return models.AnalyzerResult{
		AnalyzerName:     a.Name(),
		Prediction:       prediction,
		Confidence:       confidence,
		Reasoning:        reasons,
		FeaturesAnalyzed: []string{"completeness", "language_quality", "suspicious_patterns"},
	}
}
