package ocr

import (
	"bytes"
	"context"
	"image"
	"image/draw"
	"image/png"
	"strings"
	"time"

	"github.com/arbovm/levenshtein"
	"github.com/otiai10/gosseract/v2"
	"github.com/sirupsen/logrus"

	"go-jobpost-verifier/internal/logger"
	"go-jobpost-verifier/internal/preprocess"
	"go-jobpost-verifier/pkg/models"
)

// Config is one engine configuration tried during grid search. Configs differ
// in page-segmentation mode; job-posting screenshots vary between dense
// paragraph layouts and sparse poster layouts, and no single mode wins on all.
type Config struct {
	Name string
	PSM  gosseract.PageSegMode
}

// DefaultConfigs returns the fixed configuration set swept per image variant
func DefaultConfigs() []Config {
	return []Config{
		{Name: "block", PSM: gosseract.PSM_SINGLE_BLOCK},
		{Name: "column", PSM: gosseract.PSM_SINGLE_COLUMN},
		{Name: "full_page", PSM: gosseract.PSM_AUTO},
		{Name: "sparse", PSM: gosseract.PSM_SPARSE_TEXT},
		{Name: "single_line", PSM: gosseract.PSM_SINGLE_LINE},
		{Name: "single_word", PSM: gosseract.PSM_SINGLE_WORD},
	}
}

// Candidate is one OCR attempt over a (variant, config) grid cell
type Candidate struct {
	VariantName string
	ConfigName  string
	Text        string
	RawText     string
	CharCount   int
	WordCount   int
	Score       int
}

// RecognizeFunc invokes the OCR service over encoded image bytes. Injectable
// so tests can run the grid without a tesseract installation.
type RecognizeFunc func(ctx context.Context, imageData []byte, languages string, psm gosseract.PageSegMode) (string, error)

// TextExtractor is the extraction surface consumed by the service layer
type TextExtractor interface {
	Extract(ctx context.Context, img image.Image) (models.ExtractionResult, error)
}

// Options bound the extraction grid search. Timeout caps one full Extract
// call, since a single tesseract invocation can stall on a degenerate image.
type Options struct {
	Languages  string
	MaxGrid    int
	EarlyStop  int
	MaxWorkers int
	Timeout    time.Duration
}

// Engine performs exhaustive best-of-grid text extraction: every usable image
// variant crossed with every engine config, max candidate score wins. The
// grid is capped by MaxGrid and abandons remaining variants once a candidate
// reaches EarlyStop, since each cell is a blocking OCR call.
type Engine struct {
	avail      Availability
	normalizer *Normalizer
	pool       *WorkerPool
	recognize  RecognizeFunc
	configs    []Config
	opts       Options
}

// NewEngine creates an extraction engine backed by gosseract
func NewEngine(avail Availability, normalizer *Normalizer, opts Options) *Engine {
	return NewEngineWithRecognizer(avail, normalizer, opts, tesseractRecognize)
}

// NewEngineWithRecognizer creates an extraction engine over a custom OCR call
func NewEngineWithRecognizer(avail Availability, normalizer *Normalizer, opts Options, recognize RecognizeFunc) *Engine {
	if opts.MaxGrid <= 0 {
		opts.MaxGrid = 32
	}
	if opts.EarlyStop <= 0 {
		opts.EarlyStop = 4000
	}
	pool := NewWorkerPool(opts.MaxWorkers)
	pool.Start()

	return &Engine{
		avail:      avail,
		normalizer: normalizer,
		pool:       pool,
		recognize:  recognize,
		configs:    DefaultConfigs(),
		opts:       opts,
	}
}

// Close releases the engine's worker pool
func (e *Engine) Close() error {
	e.pool.Close()
	return nil
}

// Extract runs the variant x config grid search and returns the best
// candidate. An unavailable OCR installation or an exhausted grid both yield
// sentinel results, never an error; only context cancellation aborts.
func (e *Engine) Extract(ctx context.Context, img image.Image) (models.ExtractionResult, error) {
	if !e.avail.Available {
		logger.WithComponent("ocr").Warn("extraction requested but tesseract is unavailable")
		return models.ExtractionResult{OCRUnavailable: true}, nil
	}

	if e.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.Timeout)
		defer cancel()
	}

	variants := e.buildVariants(img)
	var best Candidate
	cellsRun := 0

	for _, v := range variants {
		if err := ctx.Err(); err != nil {
			return models.ExtractionResult{}, err
		}
		if cellsRun >= e.opts.MaxGrid {
			break
		}

		configs := e.configs
		if remaining := e.opts.MaxGrid - cellsRun; len(configs) > remaining {
			configs = configs[:remaining]
		}

		results := make([]Candidate, len(configs))
		for i, cfg := range configs {
			i, cfg := i, cfg
			e.pool.Submit(func() {
				results[i] = e.runCell(ctx, v, cfg)
			})
		}
		e.pool.Wait()
		cellsRun += len(configs)

		// Reduce in grid order: ties keep the earlier cell, which makes
		// selection deterministic under stable OCR output.
		for _, cand := range results {
			if cand.CharCount > 0 && cand.Score > best.Score {
				best = cand
				logger.WithComponent("ocr").WithFields(logrus.Fields{
					"variant": cand.VariantName,
					"config":  cand.ConfigName,
					"score":   cand.Score,
				}).Debug("new best extraction candidate")
			}
		}

		if best.Score >= e.opts.EarlyStop {
			break
		}
	}

	if best.CharCount == 0 {
		logger.WithComponent("ocr").WithField("cells_run", cellsRun).Warn("grid exhausted with no text")
		return models.ExtractionResult{NoText: true, CandidatesRun: cellsRun}, nil
	}

	return models.ExtractionResult{
		Text:          best.Text,
		VariantName:   best.VariantName,
		ConfigName:    best.ConfigName,
		CharCount:     best.CharCount,
		WordCount:     best.WordCount,
		Score:         best.Score,
		CandidatesRun: cellsRun,
		CleanupRatio:  cleanupRatio(best.RawText, best.Text),
	}, nil
}

func (e *Engine) runCell(ctx context.Context, v variant, cfg Config) Candidate {
	raw, err := e.recognize(ctx, v.data, e.avail.Languages, cfg.PSM)
	if err != nil {
		logger.WithComponent("ocr").WithError(err).WithFields(logrus.Fields{
			"variant": v.name,
			"config":  cfg.Name,
		}).Debug("grid cell failed")
		return Candidate{VariantName: v.name, ConfigName: cfg.Name}
	}
	return e.scoreCandidate(v.name, cfg.Name, raw)
}

// scoreCandidate cleans raw OCR output and scores it. The score is a pure
// function of the cleaned text: chars + 3x words.
func (e *Engine) scoreCandidate(variantName, configName, raw string) Candidate {
	text := e.normalizer.Normalize(raw)
	chars := len(strings.TrimSpace(text))
	words := len(strings.Fields(text))
	return Candidate{
		VariantName: variantName,
		ConfigName:  configName,
		Text:        text,
		RawText:     raw,
		CharCount:   chars,
		WordCount:   words,
		Score:       chars + 3*words,
	}
}

type variant struct {
	name string
	data []byte
}

// buildVariants encodes the image-variant set tried against every config.
// Any variant whose construction fails is skipped, not fatal.
func (e *Engine) buildVariants(img image.Image) []variant {
	var out []variant
	add := func(name string, m image.Image) {
		data, err := encodePNG(m)
		if err != nil {
			logger.WithComponent("ocr").WithError(err).
				WithField("variant", name).Debug("variant encoding skipped")
			return
		}
		out = append(out, variant{name: name, data: data})
	}

	add("original", img)
	add("rgb", toNRGBA(img))
	add("grayscale", preprocess.ToGray(img))

	enhanced, strategy := preprocess.ForOCR(img)
	logger.WithComponent("ocr").WithField("strategy", strategy).Debug("contrast variant prepared")
	add("enhanced", enhanced)

	return out
}

func toNRGBA(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, bounds, img, bounds.Min, draw.Src)
	return dst
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// cleanupRatio reports how much the normalizer changed the raw output,
// as edit distance over raw length. High values flag noisy recognition.
func cleanupRatio(raw, cleaned string) float64 {
	if len(raw) == 0 {
		return 0
	}
	return float64(levenshtein.Distance(raw, cleaned)) / float64(len(raw))
}

func tesseractRecognize(ctx context.Context, imageData []byte, languages string, psm gosseract.PageSegMode) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetImageFromBytes(imageData); err != nil {
		return "", err
	}
	if languages != "" {
		if err := client.SetLanguage(strings.Split(languages, "+")...); err != nil {
			return "", err
		}
	}
	if err := client.SetPageSegMode(psm); err != nil {
		return "", err
	}
	return client.Text()
}
