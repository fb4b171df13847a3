package container

import (
	"context"
	"net/http"

	"go-jobpost-verifier/internal/config"
	"go-jobpost-verifier/internal/logger"
	"go-jobpost-verifier/internal/model"
	"go-jobpost-verifier/internal/observer"
	"go-jobpost-verifier/internal/ocr"
	"go-jobpost-verifier/internal/service"
	"go-jobpost-verifier/internal/storage"
	"go-jobpost-verifier/internal/textfeat"
	"go-jobpost-verifier/internal/transport"
	"go-jobpost-verifier/internal/verdict"
)

// Container holds all application dependencies. Everything in it is built
// once at startup and immutable afterwards.
type Container struct {
	config       *config.Config
	availability ocr.Availability
	registry     *model.Registry
	engine       *ocr.Engine
	svc          *service.VerificationService
	handler      http.Handler
}

// NewContainer builds the full dependency graph
func NewContainer(cfg *config.Config) (*Container, error) {
	log := logger.WithComponent("container")

	// OCR side: probe once, build the engine around the result
	availability := ocr.Probe(cfg.TesseractPaths, cfg.OCRLanguages)
	if availability.Available {
		log.WithField("languages", availability.Languages).Info("OCR engine available")
	} else {
		log.WithField("error", availability.Error).Warn("OCR engine unavailable, extraction will degrade")
	}

	normalizer := ocr.NewNormalizerWithRules(ocr.DefaultRuleset())
	engine := ocr.NewEngine(availability, normalizer, ocr.Options{
		Languages: availability.Languages,
		MaxGrid:   cfg.OCRMaxGrid,
		EarlyStop: cfg.OCREarlyStop,
		Timeout:   cfg.OCRTimeout,
	})

	// Model side: optionally sync artifacts from blob storage, then load
	if cfg.ModelsContainerURL != "" && cfg.AzureAccountName != "" {
		store, err := storage.NewAzureArtifactStore(cfg.AzureAccountName, cfg.AzureAccountKey)
		if err != nil {
			log.WithError(err).Warn("Artifact store unavailable, using local models only")
		} else {
			n, err := store.SyncModels(context.Background(), cfg.ModelsContainerURL, cfg.ModelsDir)
			if err != nil {
				log.WithError(err).Warn("Model sync failed, using local models only")
			} else {
				log.WithField("artifacts", n).Info("Model artifacts synced")
			}
		}
	}
	registry := model.LoadRegistry(cfg.ModelsDir, logger.WithComponent("models"))

	var noise verdict.Noise = verdict.NopNoise{}
	if cfg.ConfidenceJitter > 0 {
		noise = verdict.NewSeededNoise(cfg.JitterSeed, cfg.ConfidenceJitter)
	}

	policy := verdict.DefaultPolicy()
	lexicon := textfeat.DefaultLexicon()
	analyzers := []verdict.Analyzer{
		verdict.NewStructuralAnalyzer(registry, policy, noise),
		verdict.NewLexicalAnalyzer(registry, lexicon, policy, noise),
		verdict.NewQualityAnalyzer(policy, noise),
		verdict.NewOCRConfidenceAnalyzer(policy, noise),
	}

	publisher := observer.NewPublisher()
	publisher.Register(observer.NewLoggingObserver(logger.WithComponent("pipeline")))

	svc := service.NewVerificationService(
		engine,
		textfeat.NewExtractor(lexicon),
		analyzers,
		verdict.NewEnsemble(policy),
		publisher,
		logger.WithComponent("service"),
	)

	fetcher := storage.NewHTTPImageFetcher(cfg.ImageFetchTimeout, cfg.MaxRequestBodySize)
	handler := transport.NewHandler(svc, fetcher, availability, registry, cfg)

	return &Container{
		config:       cfg,
		availability: availability,
		registry:     registry,
		engine:       engine,
		svc:          svc,
		handler:      handler,
	}, nil
}

// Handler returns the HTTP handler
func (c *Container) Handler() http.Handler {
	return c.handler
}

// Config returns the configuration
func (c *Container) Config() *config.Config {
	return c.config
}

// Close releases held resources
func (c *Container) Close() error {
	return c.engine.Close()
}
