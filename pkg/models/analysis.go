package models

// Prediction is an analyzer or ensemble verdict class
type Prediction string

const (
	PredictionFake      Prediction = "fake"
	PredictionGenuine   Prediction = "genuine"
	PredictionUncertain Prediction = "uncertain"
	PredictionError     Prediction = "error"
)

// RiskTier classifies detected salary red flags by severity
type RiskTier string

const (
	RiskNone     RiskTier = "none"
	RiskMedium   RiskTier = "medium"
	RiskHigh     RiskTier = "high"
	RiskCritical RiskTier = "critical"
)

// LanguageQuality is a coarse tier of how professional the posting text reads
type LanguageQuality string

const (
	QualityPoor      LanguageQuality = "poor"
	QualityFair      LanguageQuality = "fair"
	QualityGood      LanguageQuality = "good"
	QualityExcellent LanguageQuality = "excellent"
)

// SalaryFlags holds the output of the salary-pattern detector
type SalaryFlags struct {
	Found    bool     `json:"found"`
	Patterns []string `json:"patterns,omitempty"`
	Amount   float64  `json:"amount"`
	Tier     RiskTier `json:"tier"`
	Count    int      `json:"count"`
}

// LabelHint is the filename-derived out-of-band signal
type LabelHint struct {
	LabelDetected   string  `json:"label_detected"`
	ConfidenceBoost float64 `json:"confidence_boost"`
	Reasoning       string  `json:"reasoning"`
}

// EssentialElements tracks the four categories a complete posting carries
type EssentialElements struct {
	CompanyName  bool `json:"company_name"`
	JobTitle     bool `json:"job_title"`
	Requirements bool `json:"requirements"`
	ContactInfo  bool `json:"contact_info"`
}

// KeywordAnalysis summarizes Indonesian lexicon hits over the posting text
type KeywordAnalysis struct {
	LegitimateScore float64             `json:"legitimate_score"`
	SuspiciousScore float64             `json:"suspicious_score"`
	NeutralScore    float64             `json:"neutral_score"`
	TotalKeywords   int                 `json:"total_keywords"`
	FoundKeywords   map[string][]string `json:"found_keywords"`
	Analysis        string              `json:"analysis"`
	Recommendation  string              `json:"recommendation"`
}

// FeatureVector is the structured feature record derived from extracted text.
// Built fresh per request and never mutated after construction.
type FeatureVector struct {
	// Structural counts
	Length        int     `json:"length"`
	WordCount     int     `json:"word_count"`
	SentenceCount int     `json:"sentence_count"`
	AvgWordLength float64 `json:"avg_word_length"`

	// Lexicon hit counts
	GenuineKeywords int     `json:"genuine_keywords"`
	FakeKeywords    int     `json:"fake_keywords"`
	KeywordRatio    float64 `json:"keyword_ratio"`

	// Indicator flags
	HasEmail        bool `json:"has_email"`
	HasPhone        bool `json:"has_phone"`
	HasAddress      bool `json:"has_address"`
	HasCompany      bool `json:"has_company"`
	HasWhatsapp     bool `json:"has_whatsapp"`
	HasMoneyPromise bool `json:"has_money_promise"`
	HasUrgency      bool `json:"has_urgency"`
	HasMLMTerms     bool `json:"has_mlm_terms"`
	HasNoExperience bool `json:"has_no_experience"`

	// Text quality ratios
	UppercaseRatio   float64 `json:"uppercase_ratio"`
	ExclamationCount int     `json:"exclamation_count"`
	QuestionCount    int     `json:"question_count"`
	NumberCount      int     `json:"number_count"`

	// Derived assessments
	SuspiciousPatterns    []string          `json:"suspicious_patterns"`
	QualityIndicators     []string          `json:"quality_indicators"`
	LanguageQuality       LanguageQuality   `json:"language_quality"`
	CompletenessScore     float64           `json:"completeness_score"`
	EssentialElements     EssentialElements `json:"essential_elements"`
	ProfessionalWordCount int               `json:"professional_word_count"`
	Salary                SalaryFlags       `json:"salary"`
	KeywordAnalysis       KeywordAnalysis   `json:"indonesian_analysis"`
}

// AnalyzerResult is one analyzer's verdict over a feature vector
type AnalyzerResult struct {
	AnalyzerName     string     `json:"analyzer_name"`
	Prediction       Prediction `json:"prediction"`
	Confidence       float64    `json:"confidence"`
	Reasoning        []string   `json:"reasoning"`
	FeaturesAnalyzed []string   `json:"features_analyzed"`
}

// VoteCounts tallies analyzer verdicts per class
type VoteCounts struct {
	Fake      int `json:"fake"`
	Genuine   int `json:"genuine"`
	Uncertain int `json:"uncertain"`
}

// ClassConfidence holds per-class average confidence
type ClassConfidence struct {
	Fake      float64 `json:"fake"`
	Genuine   float64 `json:"genuine"`
	Uncertain float64 `json:"uncertain"`
}

// EnsembleResult fuses all analyzer verdicts into one
type EnsembleResult struct {
	FinalPrediction  Prediction      `json:"final_prediction"`
	FinalConfidence  float64         `json:"final_confidence"`
	ReasoningSummary string          `json:"reasoning_summary"`
	Votes            VoteCounts      `json:"votes"`
	AvgConfidence    ClassConfidence `json:"avg_confidence"`
}

// Recommendation is one actionable guidance card returned to the caller
type Recommendation struct {
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Suggestions []string `json:"suggestions"`
}

// ExtractionResult carries the winning OCR candidate plus diagnostics
type ExtractionResult struct {
	Text           string  `json:"text"`
	VariantName    string  `json:"variant_name,omitempty"`
	ConfigName     string  `json:"config_name,omitempty"`
	CharCount      int     `json:"char_count"`
	WordCount      int     `json:"word_count"`
	Score          int     `json:"score"`
	CandidatesRun  int     `json:"candidates_run"`
	CleanupRatio   float64 `json:"cleanup_ratio"`
	OCRUnavailable bool    `json:"ocr_unavailable,omitempty"`
	NoText         bool    `json:"no_text,omitempty"`
}

// ClassificationResponse is the full verdict payload for one document
type ClassificationResponse struct {
	FinalPrediction Prediction                `json:"final_prediction"`
	Confidence      float64                   `json:"confidence"`
	Reasoning       string                    `json:"reasoning"`
	Models          map[string]AnalyzerResult `json:"models"`
	TextAnalysis    FeatureVector             `json:"text_analysis"`
	Recommendations []Recommendation          `json:"recommendations"`
	ExtractedText   string                    `json:"extracted_text"`
	Filename        string                    `json:"filename,omitempty"`
	ProcessingSec   float64                   `json:"processing_time_sec"`
}
