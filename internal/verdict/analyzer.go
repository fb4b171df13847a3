package verdict

import (
	"go-jobpost-verifier/pkg/models"
)

// Input is the shared read-only record every analyzer scores against
type Input struct {
	Text     string
	Filename string
	Features models.FeatureVector
}

// Analyzer produces one independent verdict over an input. Implementations
// must not panic on degenerate input; a failed backing model falls back to
// the analyzer's rule-only scorer instead of surfacing an error.
type Analyzer interface {
	Name() string
	Analyze(in Input) models.AnalyzerResult
}

// strategy is one scoring attempt in an ordered first-success-wins chain
type strategy struct {
	name string
	run  func(in Input) (float64, []string, error)
}

// runStrategies walks the chain and returns the first successful score along
// with the name of the strategy that produced it.
func runStrategies(in Input, chain []strategy) (float64, []string, string) {
	var lastReasons []string
	for _, s := range chain {
		score, reasons, err := s.run(in)
		if err == nil {
			return score, reasons, s.name
		}
		lastReasons = append(lastReasons, "Strategy "+s.name+" unavailable: "+err.Error())
	}
	return 0, lastReasons, ""
}

// band maps a raw score onto the three-way verdict using analyzer thresholds
func band(score, genuineMin, fakeMax float64, genuine, fake, uncertain Band) (models.Prediction, float64) {
	switch {
	case score >= genuineMin:
		return models.PredictionGenuine, genuine.Clamp(score)
	case score <= fakeMax:
		return models.PredictionFake, fake.Clamp(score)
	default:
		return models.PredictionUncertain, uncertain.Clamp(score)
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func clamp01To100(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
