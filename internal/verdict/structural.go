package verdict

import (
	"fmt"

	"go-jobpost-verifier/internal/model"
	"go-jobpost-verifier/pkg/models"
)

// StructuralModelName is the registry key of the trained structural classifier
const StructuralModelName = "structural"

// StructuralAnalyzer feeds a fixed-order numeric tuple into the trained
// binary classifier and maps its genuine-class probability onto the verdict
// bands. Without a loaded model it scores with rule weights instead.
type StructuralAnalyzer struct {
	registry *model.Registry
	policy   *Policy
	noise    Noise
}

func NewStructuralAnalyzer(registry *model.Registry, policy *Policy, noise Noise) *StructuralAnalyzer {
	return &StructuralAnalyzer{registry: registry, policy: policy, noise: noise}
}

func (a *StructuralAnalyzer) Name() string { return "structural_model" }

// featureTuple flattens the vector in the order the classifier was trained
// on. The order is part of the model contract and must not change without
// retraining.
func featureTuple(fv models.FeatureVector) []float64 {
	return []float64{
		float64(fv.Length),
		float64(fv.WordCount),
		float64(fv.SentenceCount),
		fv.AvgWordLength,
		float64(fv.GenuineKeywords),
		float64(fv.FakeKeywords),
		boolToFloat(fv.HasEmail),
		boolToFloat(fv.HasPhone),
		boolToFloat(fv.HasCompany),
		fv.UppercaseRatio,
		float64(fv.ExclamationCount),
		fv.CompletenessScore,
	}
}

func (a *StructuralAnalyzer) Analyze(in Input) models.AnalyzerResult {
	score, reasons, strategyName := runStrategies(in, []strategy{
		{name: "classifier_probability", run: a.modelScore},
		{name: "rule_weights", run: a.ruleScore},
	})

	score = clamp01To100(score + a.noise.Jitter())
	prediction, confidence := band(score,
		a.policy.StructuralGenuineMin, a.policy.StructuralFakeMax,
		a.policy.StructuralGenuine, a.policy.StructuralFake, a.policy.StructuralUncertain)

	reasons = append(reasons, structuralSignals(in.Features)...)
	return models.AnalyzerResult{
		AnalyzerName:     a.Name(),
		Prediction:       prediction,
		Confidence:       confidence,
		Reasoning:        reasons,
		FeaturesAnalyzed: []string{"structure", "keywords", "contact", "length", "scored_by_" + strategyName},
	}
}

func (a *StructuralAnalyzer) modelScore(in Input) (float64, []string, error) {
	m := a.registry.Get(StructuralModelName)
	if m == nil {
		return 0, nil, fmt.Errorf("model %s not loaded", StructuralModelName)
	}
	proba, err := m.PredictProba(featureTuple(in.Features))
	if err != nil {
		return 0, nil, err
	}
	return proba * 100, []string{fmt.Sprintf("Classifier genuine probability %.1f%%", proba*100)}, nil
}

// ruleScore approximates the classifier with hand weights when no model is
// available
func (a *StructuralAnalyzer) ruleScore(in Input) (float64, []string, error) {
	fv := in.Features
	score := a.policy.StructuralBase
	reasons := []string{"Scoring without trained classifier"}

	if fv.FakeKeywords > 3 {
		score -= 20
		reasons = append(reasons, fmt.Sprintf("%d scam-keyword hits", fv.FakeKeywords))
	}
	if fv.HasUrgency {
		score -= 10
		reasons = append(reasons, "Urgency phrasing present")
	}
	if fv.HasMoneyPromise {
		score -= 10
		reasons = append(reasons, "Money-promise phrasing present")
	}
	if !fv.EssentialElements.ContactInfo {
		score -= 10
		reasons = append(reasons, "No contact information")
	}
	if fv.GenuineKeywords >= 3 {
		score += 10
		reasons = append(reasons, fmt.Sprintf("%d professional-posting keyword hits", fv.GenuineKeywords))
	}
	if fv.CompletenessScore >= 75 {
		score += 10
		reasons = append(reasons, "Posting structure is complete")
	}
	if fv.Length > 200 {
		score += 5
		reasons = append(reasons, "Substantive description length")
	}
	return score, reasons, nil
}

// structuralSignals lists the dominant inputs for the reasoning trail
func structuralSignals(fv models.FeatureVector) []string {
	signals := []string{
		fmt.Sprintf("Fake keywords: %d, genuine keywords: %d", fv.FakeKeywords, fv.GenuineKeywords),
		fmt.Sprintf("Description length: %d chars, %d words", fv.Length, fv.WordCount),
	}
	if fv.HasUrgency {
		signals = append(signals, "Urgency flag set")
	}
	if fv.EssentialElements.ContactInfo {
		signals = append(signals, "Contact information present")
	} else {
		signals = append(signals, "Contact information missing")
	}
	return signals
}
