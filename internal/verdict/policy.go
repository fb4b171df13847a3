// Package verdict holds the four analyzers and the ensemble aggregator that
// turn a feature vector into a final fraud verdict.
package verdict

// Band is an inclusive confidence range on the 0-100 scale
type Band struct {
	Lo float64
	Hi float64
}

// Clamp pins v into the band
func (b Band) Clamp(v float64) float64 {
	if v < b.Lo {
		return b.Lo
	}
	if v > b.Hi {
		return b.Hi
	}
	return v
}

// Contains reports whether v falls inside the band
func (b Band) Contains(v float64) bool {
	return v >= b.Lo && v <= b.Hi
}

// Policy is the single versioned table of every band boundary and decision
// threshold used by the analyzers and the aggregator. Built once at startup
// and treated as read-only.
type Policy struct {
	Version string

	// Structural analyzer: model probability (percent) banding
	StructuralGenuineMin float64
	StructuralFakeMax    float64
	StructuralGenuine    Band
	StructuralFake       Band
	StructuralUncertain  Band
	StructuralBase       float64

	// Lexical analyzer
	LexicalBase        float64
	LexicalGenuineMin  float64
	LexicalFakeMax     float64
	SalaryPenaltyCrit  float64
	SalaryPenaltyHigh  float64
	SalaryPenaltyMed   float64
	LexicalGenuine     Band
	LexicalFake        Band
	LexicalUncertain   Band

	// Quality analyzer
	QualityBase       float64
	QualityGenuineMin float64
	QualityFakeMax    float64
	QualityGenuine    Band
	QualityFake       Band
	QualityUncertain  Band

	// OCR-confidence analyzer
	OCRBase        float64
	OCRGenuineMin  float64
	OCRFakeMax     float64
	OCRGenuine     Band
	OCRFake        Band
	OCRUncertain   Band
	OCRFallback    Band

	// Ensemble aggregator
	EnsembleFakeBand    Band
	EnsembleGenuineBand Band
	CascadeHighSignal   float64
	CascadeMediumSignal float64
	WeightedSplit       float64
	RebandGenuineMin    float64
	RebandFakeMax       float64
	FinalGenuine        Band
	FinalFake           Band
	FinalUncertain      Band
}

// DefaultPolicy returns the production threshold table
func DefaultPolicy() *Policy {
	return &Policy{
		Version: "2024.1",

		StructuralGenuineMin: 70,
		StructuralFakeMax:    30,
		StructuralGenuine:    Band{70, 85},
		StructuralFake:       Band{15, 30},
		StructuralUncertain:  Band{31, 69},
		StructuralBase:       60,

		LexicalBase:       50,
		LexicalGenuineMin: 85,
		LexicalFakeMax:    15,
		SalaryPenaltyCrit: 35,
		SalaryPenaltyHigh: 25,
		SalaryPenaltyMed:  15,
		LexicalGenuine:    Band{85, 95},
		LexicalFake:       Band{5, 15},
		LexicalUncertain:  Band{16, 84},

		QualityBase:       50,
		QualityGenuineMin: 70,
		QualityFakeMax:    30,
		QualityGenuine:    Band{70, 90},
		QualityFake:       Band{10, 30},
		QualityUncertain:  Band{31, 69},

		OCRBase:       30,
		OCRGenuineMin: 80,
		OCRFakeMax:    20,
		OCRGenuine:    Band{80, 95},
		OCRFake:       Band{5, 20},
		OCRUncertain:  Band{21, 79},
		OCRFallback:   Band{45, 74},

		EnsembleFakeBand:    Band{25, 49},
		EnsembleGenuineBand: Band{51, 85},
		CascadeHighSignal:   65,
		CascadeMediumSignal: 50,
		WeightedSplit:       55,
		RebandGenuineMin:    60,
		RebandFakeMax:       40,
		FinalGenuine:        Band{60, 85},
		FinalFake:           Band{15, 40},
		FinalUncertain:      Band{41, 59},
	}
}
