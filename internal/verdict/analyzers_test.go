package verdict

import (
	"testing"

	"go-jobpost-verifier/internal/model"
	"go-jobpost-verifier/internal/textfeat"
	"go-jobpost-verifier/pkg/models"
)

func neutralFeatures() models.FeatureVector {
	return models.FeatureVector{
		Length:             120,
		WordCount:          20,
		SentenceCount:      2,
		SuspiciousPatterns: []string{},
		QualityIndicators:  []string{},
		LanguageQuality:    models.QualityFair,
		EssentialElements:  models.EssentialElements{ContactInfo: true},
		CompletenessScore:  50,
		Salary:             models.SalaryFlags{Tier: models.RiskNone},
	}
}

func TestStructuralAnalyzerRuleFallback(t *testing.T) {
	a := NewStructuralAnalyzer(model.NewRegistry(), DefaultPolicy(), NopNoise{})

	t.Run("neutral input is uncertain", func(t *testing.T) {
		res := a.Analyze(Input{Features: neutralFeatures()})
		if res.Prediction != models.PredictionUncertain {
			t.Errorf("prediction = %s, want uncertain", res.Prediction)
		}
		if res.Confidence != 60 {
			t.Errorf("confidence = %.0f, want 60", res.Confidence)
		}
	})

	t.Run("stacked scam signals go fake", func(t *testing.T) {
		fv := neutralFeatures()
		fv.FakeKeywords = 5
		fv.HasUrgency = true
		fv.HasMoneyPromise = true
		fv.EssentialElements.ContactInfo = false
		res := a.Analyze(Input{Features: fv})
		if res.Prediction != models.PredictionFake {
			t.Errorf("prediction = %s, want fake", res.Prediction)
		}
		if !DefaultPolicy().StructuralFake.Contains(res.Confidence) {
			t.Errorf("confidence %.0f outside fake band", res.Confidence)
		}
	})
}

func TestStructuralAnalyzerWithModel(t *testing.T) {
	// zero weights with a large positive bias pin the probability near 1
	reg := model.NewRegistry(model.NewLogistic(StructuralModelName, 5, make([]float64, 12)))
	a := NewStructuralAnalyzer(reg, DefaultPolicy(), NopNoise{})

	res := a.Analyze(Input{Features: neutralFeatures()})
	if res.Prediction != models.PredictionGenuine {
		t.Errorf("prediction = %s, want genuine", res.Prediction)
	}
	if !DefaultPolicy().StructuralGenuine.Contains(res.Confidence) {
		t.Errorf("confidence %.0f outside genuine band", res.Confidence)
	}
}

func TestLexicalAnalyzerLabelHintOverride(t *testing.T) {
	a := NewLexicalAnalyzer(model.NewRegistry(), textfeat.DefaultLexicon(), DefaultPolicy(), NopNoise{})

	fv := neutralFeatures()
	fv.EssentialElements.ContactInfo = false
	res := a.Analyze(Input{
		Text:     "some neutral description of nothing in particular",
		Filename: "dataset/fake/sample003.jpg",
		Features: fv,
	})
	if res.Prediction != models.PredictionFake {
		t.Errorf("prediction = %s, want fake", res.Prediction)
	}
}

func TestLexicalAnalyzerSalaryPenalty(t *testing.T) {
	policy := DefaultPolicy()
	a := NewLexicalAnalyzer(model.NewRegistry(), textfeat.DefaultLexicon(), policy, NopNoise{})

	base := neutralFeatures()
	crit := neutralFeatures()
	crit.Salary = models.SalaryFlags{Found: true, Tier: models.RiskCritical}

	text := "lowongan kerja biasa"
	without := a.Analyze(Input{Text: text, Features: base})
	with := a.Analyze(Input{Text: text, Features: crit})
	if with.Confidence >= without.Confidence {
		t.Errorf("critical salary tier did not lower confidence: %.0f >= %.0f", with.Confidence, without.Confidence)
	}
}

func TestQualityAnalyzer(t *testing.T) {
	a := NewQualityAnalyzer(DefaultPolicy(), NopNoise{})

	t.Run("strong posting", func(t *testing.T) {
		fv := neutralFeatures()
		fv.CompletenessScore = 100
		fv.LanguageQuality = models.QualityExcellent
		res := a.Analyze(Input{Features: fv})
		if res.Prediction != models.PredictionGenuine {
			t.Errorf("prediction = %s, want genuine", res.Prediction)
		}
	})

	t.Run("weak posting", func(t *testing.T) {
		fv := neutralFeatures()
		fv.CompletenessScore = 25
		fv.LanguageQuality = models.QualityPoor
		fv.SuspiciousPatterns = []string{"a", "b", "c"}
		res := a.Analyze(Input{Features: fv})
		if res.Prediction != models.PredictionFake {
			t.Errorf("prediction = %s, want fake", res.Prediction)
		}
	})
}

func TestOCRConfidenceAnalyzer(t *testing.T) {
	policy := DefaultPolicy()
	a := NewOCRConfidenceAnalyzer(policy, NopNoise{})

	t.Run("empty text falls back to uncertain", func(t *testing.T) {
		res := a.Analyze(Input{Text: ""})
		if res.Prediction != models.PredictionUncertain {
			t.Errorf("prediction = %s, want uncertain", res.Prediction)
		}
		if !policy.OCRFallback.Contains(res.Confidence) {
			t.Errorf("confidence %.0f outside fallback band", res.Confidence)
		}
	})

	t.Run("dense extraction scores genuine", func(t *testing.T) {
		fv := neutralFeatures()
		fv.Length = 400
		fv.WordCount = 60
		fv.ProfessionalWordCount = 5
		res := a.Analyze(Input{Text: "long enough text", Features: fv})
		if res.Prediction != models.PredictionGenuine {
			t.Errorf("prediction = %s, want genuine", res.Prediction)
		}
	})
}

func TestAnalyzerConfidenceBounds(t *testing.T) {
	analyzers := []Analyzer{
		NewStructuralAnalyzer(model.NewRegistry(), DefaultPolicy(), NopNoise{}),
		NewLexicalAnalyzer(model.NewRegistry(), textfeat.DefaultLexicon(), DefaultPolicy(), NopNoise{}),
		NewQualityAnalyzer(DefaultPolicy(), NopNoise{}),
		NewOCRConfidenceAnalyzer(DefaultPolicy(), NopNoise{}),
	}
	inputs := []Input{
		{},
		{Text: "GAJI BESAR JUTAAN BURUAN", Filename: "fake/fake/fake.png", Features: func() models.FeatureVector {
			fv := neutralFeatures()
			fv.FakeKeywords = 9
			fv.Salary = models.SalaryFlags{Found: true, Tier: models.RiskCritical, Amount: 500}
			return fv
		}()},
		{Text: "professional posting", Filename: "genuine/asli/resmi.png", Features: neutralFeatures()},
	}
	for _, a := range analyzers {
		for _, in := range inputs {
			res := a.Analyze(in)
			if res.Confidence < 0 || res.Confidence > 100 {
				t.Errorf("%s produced out-of-range confidence %.1f", a.Name(), res.Confidence)
			}
			switch res.Prediction {
			case models.PredictionFake, models.PredictionGenuine, models.PredictionUncertain:
			default:
				t.Errorf("%s produced invalid prediction %s", a.Name(), res.Prediction)
			}
		}
	}
}

func TestNoiseJitter(t *testing.T) {
	if (NopNoise{}).Jitter() != 0 {
		t.Error("NopNoise must return zero")
	}
	n := NewSeededNoise(42, 3)
	for i := 0; i < 100; i++ {
		j := n.Jitter()
		if j < -3 || j > 3 {
			t.Fatalf("jitter %f outside span", j)
		}
	}
	a := NewSeededNoise(7, 3)
	b := NewSeededNoise(7, 3)
	for i := 0; i < 10; i++ {
		if a.Jitter() != b.Jitter() {
			t.Fatal("same seed must reproduce the same sequence")
		}
	}
}
