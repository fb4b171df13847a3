package verdict

import (
	"strings"
	"testing"

	"go-jobpost-verifier/pkg/models"
)

func analyzerResult(p models.Prediction, conf float64) models.AnalyzerResult {
	return models.AnalyzerResult{AnalyzerName: "test", Prediction: p, Confidence: conf}
}

func TestEnsembleAllFailed(t *testing.T) {
	e := NewEnsemble(DefaultPolicy())
	res := e.Aggregate([]models.AnalyzerResult{
		analyzerResult(models.PredictionError, 0),
		analyzerResult(models.PredictionError, 0),
	}, "")
	if res.FinalPrediction != models.PredictionError {
		t.Errorf("prediction = %s, want error", res.FinalPrediction)
	}
	if res.FinalConfidence != 0 {
		t.Errorf("confidence = %.0f, want 0", res.FinalConfidence)
	}
}

func TestEnsembleStrictMajority(t *testing.T) {
	e := NewEnsemble(DefaultPolicy())

	t.Run("genuine majority", func(t *testing.T) {
		res := e.Aggregate([]models.AnalyzerResult{
			analyzerResult(models.PredictionGenuine, 80),
			analyzerResult(models.PredictionGenuine, 90),
			analyzerResult(models.PredictionGenuine, 70),
			analyzerResult(models.PredictionFake, 20),
		}, "")
		if res.FinalPrediction != models.PredictionGenuine {
			t.Errorf("prediction = %s, want genuine", res.FinalPrediction)
		}
		if res.FinalConfidence != 80 {
			t.Errorf("confidence = %.0f, want 80", res.FinalConfidence)
		}
	})

	t.Run("fake majority", func(t *testing.T) {
		res := e.Aggregate([]models.AnalyzerResult{
			analyzerResult(models.PredictionFake, 20),
			analyzerResult(models.PredictionFake, 10),
			analyzerResult(models.PredictionFake, 30),
			analyzerResult(models.PredictionUncertain, 50),
		}, "")
		if res.FinalPrediction != models.PredictionFake {
			t.Errorf("prediction = %s, want fake", res.FinalPrediction)
		}
		// average 20 clamped up into the fake vote band
		if res.FinalConfidence != 25 {
			t.Errorf("confidence = %.0f, want 25", res.FinalConfidence)
		}
	})
}

func TestEnsembleTieBrokenByStrength(t *testing.T) {
	e := NewEnsemble(DefaultPolicy())
	res := e.Aggregate([]models.AnalyzerResult{
		analyzerResult(models.PredictionGenuine, 90),
		analyzerResult(models.PredictionGenuine, 80),
		analyzerResult(models.PredictionFake, 10),
		analyzerResult(models.PredictionFake, 10),
	}, "")
	if res.FinalPrediction != models.PredictionGenuine {
		t.Errorf("prediction = %s, want genuine", res.FinalPrediction)
	}
}

func TestEnsembleFilenameOverride(t *testing.T) {
	e := NewEnsemble(DefaultPolicy())
	res := e.Aggregate([]models.AnalyzerResult{
		analyzerResult(models.PredictionFake, 15),
		analyzerResult(models.PredictionUncertain, 50),
		analyzerResult(models.PredictionUncertain, 50),
		analyzerResult(models.PredictionUncertain, 50),
	}, "dataset/fake/sample003.jpg")
	if res.FinalPrediction != models.PredictionFake {
		t.Errorf("prediction = %s, want fake", res.FinalPrediction)
	}
	if !DefaultPolicy().FinalFake.Contains(res.FinalConfidence) {
		t.Errorf("confidence %.0f outside final fake band", res.FinalConfidence)
	}
}

func TestEnsembleUncertainMajorityCascade(t *testing.T) {
	e := NewEnsemble(DefaultPolicy())

	t.Run("strong genuine signal wins", func(t *testing.T) {
		res := e.Aggregate([]models.AnalyzerResult{
			analyzerResult(models.PredictionUncertain, 50),
			analyzerResult(models.PredictionUncertain, 45),
			analyzerResult(models.PredictionUncertain, 55),
			analyzerResult(models.PredictionGenuine, 70),
		}, "")
		if res.FinalPrediction != models.PredictionGenuine {
			t.Errorf("prediction = %s, want genuine", res.FinalPrediction)
		}
	})

	t.Run("adequate fake signal lands on caution", func(t *testing.T) {
		// the fake band caps at 49, so a medium fake signal rebands to
		// uncertain rather than a confident fake call
		res := e.Aggregate([]models.AnalyzerResult{
			analyzerResult(models.PredictionUncertain, 50),
			analyzerResult(models.PredictionUncertain, 45),
			analyzerResult(models.PredictionUncertain, 55),
			analyzerResult(models.PredictionFake, 55),
		}, "")
		if res.FinalPrediction == models.PredictionGenuine {
			t.Errorf("prediction = %s, must not be genuine", res.FinalPrediction)
		}
	})

	t.Run("weak fake average resolves fake", func(t *testing.T) {
		res := e.Aggregate([]models.AnalyzerResult{
			analyzerResult(models.PredictionUncertain, 50),
			analyzerResult(models.PredictionUncertain, 45),
			analyzerResult(models.PredictionUncertain, 55),
			analyzerResult(models.PredictionFake, 40),
		}, "")
		if res.FinalPrediction != models.PredictionFake {
			t.Errorf("prediction = %s, want fake", res.FinalPrediction)
		}
	})

	t.Run("all uncertain never errors", func(t *testing.T) {
		res := e.Aggregate([]models.AnalyzerResult{
			analyzerResult(models.PredictionUncertain, 50),
			analyzerResult(models.PredictionUncertain, 50),
			analyzerResult(models.PredictionUncertain, 50),
			analyzerResult(models.PredictionUncertain, 50),
		}, "")
		if res.FinalPrediction == models.PredictionError {
			t.Error("uncertain-only input must not produce error verdict")
		}
		if res.FinalConfidence < 0 || res.FinalConfidence > 100 {
			t.Errorf("confidence %.0f out of range", res.FinalConfidence)
		}
	})
}

func TestEnsembleErrorVotesExcluded(t *testing.T) {
	e := NewEnsemble(DefaultPolicy())
	res := e.Aggregate([]models.AnalyzerResult{
		analyzerResult(models.PredictionError, 0),
		analyzerResult(models.PredictionError, 0),
		analyzerResult(models.PredictionError, 0),
		analyzerResult(models.PredictionGenuine, 80),
	}, "")
	if res.FinalPrediction != models.PredictionGenuine {
		t.Errorf("prediction = %s, want genuine", res.FinalPrediction)
	}
	if res.Votes.Genuine != 1 || res.Votes.Fake != 0 || res.Votes.Uncertain != 0 {
		t.Errorf("unexpected vote counts %+v", res.Votes)
	}
}

func TestEnsembleRebanding(t *testing.T) {
	policy := DefaultPolicy()
	e := NewEnsemble(policy)
	// a fake majority with high in-band confidence lands between the reband
	// cutoffs and is therefore reported as uncertain
	res := e.Aggregate([]models.AnalyzerResult{
		analyzerResult(models.PredictionFake, 49),
		analyzerResult(models.PredictionFake, 49),
		analyzerResult(models.PredictionFake, 49),
	}, "")
	if res.FinalPrediction != models.PredictionUncertain {
		t.Errorf("prediction = %s, want uncertain after rebanding", res.FinalPrediction)
	}
	if !policy.FinalUncertain.Contains(res.FinalConfidence) {
		t.Errorf("confidence %.0f outside uncertain band", res.FinalConfidence)
	}
}

func TestEnsembleReasoningSummary(t *testing.T) {
	e := NewEnsemble(DefaultPolicy())
	res := e.Aggregate([]models.AnalyzerResult{
		analyzerResult(models.PredictionGenuine, 80),
		analyzerResult(models.PredictionFake, 20),
		analyzerResult(models.PredictionUncertain, 50),
	}, "")
	for _, want := range []string{"fake=1", "genuine=1", "uncertain=1"} {
		if !strings.Contains(res.ReasoningSummary, want) {
			t.Errorf("summary %q missing %q", res.ReasoningSummary, want)
		}
	}
}

func TestRecommend(t *testing.T) {
	fv := models.FeatureVector{SuspiciousPatterns: []string{"Creates artificial urgency"}}

	t.Run("fake verdict", func(t *testing.T) {
		recs := Recommend(models.EnsembleResult{FinalPrediction: models.PredictionFake, FinalConfidence: 20}, fv)
		if len(recs) != 3 {
			t.Fatalf("expected 3 recommendations, got %d", len(recs))
		}
		if recs[0].Category != "ocr_quality" {
			t.Errorf("first card = %s, want ocr_quality", recs[0].Category)
		}
		if recs[1].Category != "security_alert" {
			t.Errorf("second card = %s, want security_alert", recs[1].Category)
		}
		if recs[2].Category != "red_flags" {
			t.Errorf("third card = %s, want red_flags", recs[2].Category)
		}
	})

	t.Run("genuine verdict without flags", func(t *testing.T) {
		recs := Recommend(models.EnsembleResult{FinalPrediction: models.PredictionGenuine, FinalConfidence: 80},
			models.FeatureVector{})
		if len(recs) != 2 {
			t.Fatalf("expected 2 recommendations, got %d", len(recs))
		}
		if recs[1].Category != "verification" {
			t.Errorf("second card = %s, want verification", recs[1].Category)
		}
	})

	t.Run("uncertain verdict", func(t *testing.T) {
		recs := Recommend(models.EnsembleResult{FinalPrediction: models.PredictionUncertain, FinalConfidence: 50},
			models.FeatureVector{})
		if recs[1].Category != "caution" {
			t.Errorf("second card = %s, want caution", recs[1].Category)
		}
	})
}
