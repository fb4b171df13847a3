package verdict

import (
	"fmt"
	"strings"

	"go-jobpost-verifier/internal/model"
	"go-jobpost-verifier/internal/textfeat"
	"go-jobpost-verifier/pkg/models"
)

// LexicalModelName is the registry key of the trained text classifier
const LexicalModelName = "lexical"

// LexicalAnalyzer scores the dual-language genuine/fake vocabulary balance.
// A trained text classifier is preferred when loaded; the lexicon scorer is
// the explainable stand-in. Label hints and salary risk adjust the score
// before the keyword bands are applied.
type LexicalAnalyzer struct {
	registry *model.Registry
	lexicon  *textfeat.Lexicon
	policy   *Policy
	noise    Noise
}

func NewLexicalAnalyzer(registry *model.Registry, lexicon *textfeat.Lexicon, policy *Policy, noise Noise) *LexicalAnalyzer {
	return &LexicalAnalyzer{registry: registry, lexicon: lexicon, policy: policy, noise: noise}
}

func (a *LexicalAnalyzer) Name() string { return "lexical_model" }

func (a *LexicalAnalyzer) Analyze(in Input) models.AnalyzerResult {
	lower := strings.ToLower(in.Text)
	genuineHits := countHits(lower, a.lexicon.DualGenuine)
	fakeHits := countHits(lower, a.lexicon.DualFake)

	score := a.policy.LexicalBase
	reasons := []string{}

	// out-of-band adjustments come before any content scoring
	hint := textfeat.AnalyzeLabelHint(in.Filename)
	if hint.ConfidenceBoost != 0 {
		score += hint.ConfidenceBoost
		reasons = append(reasons, hint.Reasoning)
	}
	switch in.Features.Salary.Tier {
	case models.RiskCritical:
		score -= a.policy.SalaryPenaltyCrit
		reasons = append(reasons, "Critical salary red flag")
	case models.RiskHigh:
		score -= a.policy.SalaryPenaltyHigh
		reasons = append(reasons, "High salary red flag")
	case models.RiskMedium:
		score -= a.policy.SalaryPenaltyMed
		reasons = append(reasons, "Moderate salary red flag")
	}

	delta, deltaReasons := a.keywordScore(in, genuineHits, fakeHits)
	score += delta
	reasons = append(reasons, deltaReasons...)

	if in.Features.SentenceCount >= 3 {
		score += 5
		reasons = append(reasons, "Multi-sentence structure")
	}
	if in.Features.EssentialElements.ContactInfo {
		score += 5
		reasons = append(reasons, "Contact information present")
	} else {
		score -= 10
		reasons = append(reasons, "Contact information missing")
	}

	score = clamp01To100(score + a.noise.Jitter())
	prediction, confidence := band(score,
		a.policy.LexicalGenuineMin, a.policy.LexicalFakeMax,
		a.policy.LexicalGenuine, a.policy.LexicalFake, a.policy.LexicalUncertain)

	return models.AnalyzerResult{
		AnalyzerName:     a.Name(),
		Prediction:       prediction,
		Confidence:       confidence,
		Reasoning:        reasons,
		FeaturesAnalyzed: []string{"vocabulary", "salary", "label_hint", "structure", "contact"},
	}
}

// keywordScore asks the trained classifier first and falls back to ratio and
// difference bands over the raw hit counts.
func (a *LexicalAnalyzer) keywordScore(in Input, genuineHits, fakeHits int) (float64, []string) {
	if m := a.registry.Get(LexicalModelName); m != nil {
		tuple := []float64{
			float64(genuineHits),
			float64(fakeHits),
			float64(in.Features.SentenceCount),
			boolToFloat(in.Features.EssentialElements.ContactInfo),
		}
		if proba, err := m.PredictProba(tuple); err == nil {
			// recenter the probability around the base score
			delta := (proba - 0.5) * 70
			return delta, []string{fmt.Sprintf("Text classifier genuine probability %.1f%%", proba*100)}
		}
	}

	hitSummary := fmt.Sprintf("Vocabulary hits: %d genuine, %d fake", genuineHits, fakeHits)
	switch {
	case fakeHits >= 5 && fakeHits > genuineHits*2:
		return -30, []string{hitSummary, "Scam vocabulary dominates"}
	case fakeHits > genuineHits:
		return -15, []string{hitSummary, "Scam vocabulary outweighs professional vocabulary"}
	case genuineHits >= 5 && genuineHits > fakeHits*2:
		return 30, []string{hitSummary, "Professional vocabulary dominates"}
	case genuineHits > fakeHits:
		return 15, []string{hitSummary, "Professional vocabulary outweighs scam vocabulary"}
	default:
		return 0, []string{hitSummary, "Vocabulary balance inconclusive"}
	}
}

func countHits(lower string, terms []string) int {
	n := 0
	for _, t := range terms {
		if strings.Contains(lower, t) {
			n++
		}
	}
	return n
}
