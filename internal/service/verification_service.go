// Package service orchestrates the verification pipeline: extraction,
// feature derivation, the four analyzers, the ensemble and the
// recommendation cards.
package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"time"

	"github.com/sirupsen/logrus"

	"go-jobpost-verifier/internal/errors"
	"go-jobpost-verifier/internal/observer"
	"go-jobpost-verifier/internal/ocr"
	"go-jobpost-verifier/internal/textfeat"
	"go-jobpost-verifier/internal/verdict"
	"go-jobpost-verifier/pkg/models"
)

// VerificationService runs the full pipeline for one request at a time.
// All dependencies are read-only after construction, so one instance serves
// concurrent requests.
type VerificationService struct {
	extractor ocr.TextExtractor
	features  *textfeat.Extractor
	analyzers []verdict.Analyzer
	ensemble  *verdict.Ensemble
	publisher *observer.Publisher
	log       *logrus.Entry
}

func NewVerificationService(
	extractor ocr.TextExtractor,
	features *textfeat.Extractor,
	analyzers []verdict.Analyzer,
	ensemble *verdict.Ensemble,
	publisher *observer.Publisher,
	log *logrus.Entry,
) *VerificationService {
	return &VerificationService{
		extractor: extractor,
		features:  features,
		analyzers: analyzers,
		ensemble:  ensemble,
		publisher: publisher,
		log:       log,
	}
}

// ExtractText decodes the image bytes and runs the OCR grid search
func (s *VerificationService) ExtractText(ctx context.Context, imageData []byte) (models.ExtractionResult, error) {
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return models.ExtractionResult{}, errors.NewInvalidImageError("Image data could not be decoded", err)
	}

	started := time.Now()
	result, err := s.extractor.Extract(ctx, img)
	if err != nil {
		return models.ExtractionResult{}, err
	}

	s.publisher.Publish(observer.Event{
		Type:     observer.EventExtractionCompleted,
		Duration: time.Since(started),
		Details: map[string]interface{}{
			"format":          format,
			"chars":           result.CharCount,
			"words":           result.WordCount,
			"candidates":      result.CandidatesRun,
			"ocr_unavailable": result.OCRUnavailable,
		},
	})
	return result, nil
}

// AnalyzeText derives the feature vector for already-extracted text
func (s *VerificationService) AnalyzeText(text string) models.FeatureVector {
	return s.features.Extract(text)
}

// ClassifyText scores text through every analyzer and fuses the verdicts.
// Individual analyzer failures are isolated; the ensemble only errors when
// no analyzer produced a usable result.
func (s *VerificationService) ClassifyText(text, filename string) (models.EnsembleResult, map[string]models.AnalyzerResult, models.FeatureVector) {
	fv := s.features.Extract(text)
	in := verdict.Input{Text: text, Filename: filename, Features: fv}

	results := make([]models.AnalyzerResult, 0, len(s.analyzers))
	breakdown := make(map[string]models.AnalyzerResult, len(s.analyzers))
	for _, a := range s.analyzers {
		res := s.runAnalyzer(a, in)
		results = append(results, res)
		breakdown[res.AnalyzerName] = res
	}

	return s.ensemble.Aggregate(results, filename), breakdown, fv
}

// ClassifyImage runs the full pipeline from image bytes to verdict payload
func (s *VerificationService) ClassifyImage(ctx context.Context, imageData []byte, filename string) (models.ClassificationResponse, error) {
	started := time.Now()

	extraction, err := s.ExtractText(ctx, imageData)
	if err != nil {
		return models.ClassificationResponse{}, err
	}

	response := s.buildResponse(extraction.Text, filename)
	response.ProcessingSec = time.Since(started).Seconds()

	s.publisher.Publish(observer.Event{
		Type:       observer.EventClassificationCompleted,
		Filename:   filename,
		Prediction: response.FinalPrediction,
		Confidence: response.Confidence,
		Duration:   time.Since(started),
	})
	return response, nil
}

// ClassifyExtractedText runs classification over caller-supplied text
func (s *VerificationService) ClassifyExtractedText(text, filename string) models.ClassificationResponse {
	started := time.Now()
	response := s.buildResponse(text, filename)
	response.ProcessingSec = time.Since(started).Seconds()

	s.publisher.Publish(observer.Event{
		Type:       observer.EventClassificationCompleted,
		Filename:   filename,
		Prediction: response.FinalPrediction,
		Confidence: response.Confidence,
		Duration:   time.Since(started),
	})
	return response
}

func (s *VerificationService) buildResponse(text, filename string) models.ClassificationResponse {
	ensembleResult, breakdown, fv := s.ClassifyText(text, filename)
	return models.ClassificationResponse{
		FinalPrediction: ensembleResult.FinalPrediction,
		Confidence:      ensembleResult.FinalConfidence,
		Reasoning:       ensembleResult.ReasoningSummary,
		Models:          breakdown,
		TextAnalysis:    fv,
		Recommendations: verdict.Recommend(ensembleResult, fv),
		ExtractedText:   text,
		Filename:        filename,
	}
}

// runAnalyzer shields the pipeline from a panicking analyzer
func (s *VerificationService) runAnalyzer(a verdict.Analyzer, in verdict.Input) (res models.AnalyzerResult) {
	defer func() {
		if r := recover(); r != nil {
			appErr := errors.NewAnalyzerFailureError(fmt.Sprintf("Analyzer %s failed", a.Name()), fmt.Errorf("panic: %v", r))
			s.log.WithError(appErr).WithField("analyzer", a.Name()).Error("Analyzer crashed, excluding from vote")
			s.publisher.Publish(observer.Event{
				Type:    observer.EventAnalyzerFailed,
				Details: map[string]interface{}{"analyzer": a.Name()},
			})
			res = models.AnalyzerResult{
				AnalyzerName: a.Name(),
				Prediction:   models.PredictionError,
				Reasoning:    []string{"Analyzer failed unexpectedly"},
			}
		}
	}()
	return a.Analyze(in)
}
