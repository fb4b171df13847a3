package verdict

import (
	"fmt"
	"strings"

	"go-jobpost-verifier/pkg/models"
)

// OCRConfidenceAnalyzer rates how trustworthy the extracted text itself is,
// independent of what it says. Sparse or garbled extractions drag the score
// down; dense text with recognizable vocabulary and contact details raises
// it. When there is nothing to assess it reports uncertain instead of
// guessing a polarity.
type OCRConfidenceAnalyzer struct {
	policy *Policy
	noise  Noise
}

func NewOCRConfidenceAnalyzer(policy *Policy, noise Noise) *OCRConfidenceAnalyzer {
	return &OCRConfidenceAnalyzer{policy: policy, noise: noise}
}

func (a *OCRConfidenceAnalyzer) Name() string { return "ocr_confidence" }

func (a *OCRConfidenceAnalyzer) Analyze(in Input) models.AnalyzerResult {
	trimmed := strings.TrimSpace(in.Text)
	if len(trimmed) < 10 {
		return models.AnalyzerResult{
			AnalyzerName:     a.Name(),
			Prediction:       models.PredictionUncertain,
			Confidence:       a.policy.OCRFallback.Clamp(a.policy.OCRBase),
			Reasoning:        []string{"Extraction too sparse to assess OCR reliability"},
			FeaturesAnalyzed: []string{"text_length"},
		}
	}

	fv := in.Features
	score := a.policy.OCRBase
	reasons := []string{}

	switch {
	case fv.Length >= 300:
		score += 25
		reasons = append(reasons, fmt.Sprintf("Long extraction (%d chars)", fv.Length))
	case fv.Length >= 100:
		score += 15
		reasons = append(reasons, fmt.Sprintf("Moderate extraction (%d chars)", fv.Length))
	case fv.Length < 30:
		score -= 15
		reasons = append(reasons, fmt.Sprintf("Very short extraction (%d chars)", fv.Length))
	}

	switch {
	case fv.WordCount >= 50:
		score += 20
		reasons = append(reasons, fmt.Sprintf("%d words recovered", fv.WordCount))
	case fv.WordCount >= 20:
		score += 10
		reasons = append(reasons, fmt.Sprintf("%d words recovered", fv.WordCount))
	}

	switch {
	case fv.ProfessionalWordCount >= 5:
		score += 20
		reasons = append(reasons, "Rich professional vocabulary recovered")
	case fv.ProfessionalWordCount >= 2:
		score += 10
		reasons = append(reasons, "Some professional vocabulary recovered")
	}

	if fv.EssentialElements.ContactInfo {
		score += 10
		reasons = append(reasons, "Contact details recovered intact")
	}

	score = clamp01To100(score + a.noise.Jitter())
	prediction, confidence := band(score,
		a.policy.OCRGenuineMin, a.policy.OCRFakeMax,
		a.policy.OCRGenuine, a.policy.OCRFake, a.policy.OCRUncertain)

	return models.AnalyzerResult{
		AnalyzerName:     a.Name(),
		Prediction:       prediction,
		Confidence:       confidence,
		Reasoning:        reasons,
		FeaturesAnalyzed: []string{"text_length", "word_count", "professional_vocabulary", "contact"},
	}
}
