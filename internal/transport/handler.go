package transport

import (
	"context"
	"encoding/base64"
	goerrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"go-jobpost-verifier/internal/config"
	apperrors "go-jobpost-verifier/internal/errors"
	"go-jobpost-verifier/internal/logger"
	"go-jobpost-verifier/internal/model"
	"go-jobpost-verifier/internal/ocr"
	"go-jobpost-verifier/internal/service"
	"go-jobpost-verifier/internal/storage"
	"go-jobpost-verifier/pkg/validation"
)

// AnalyzeRequest is the JSON form of the extract/analyze endpoints. Images
// arrive as multipart uploads, base64 payloads or fetchable URLs.
type AnalyzeRequest struct {
	URL         string `json:"url,omitempty"`
	ImageBase64 string `json:"image_base64,omitempty"`
	Filename    string `json:"filename,omitempty"`
}

// AnalyzeTextRequest carries already-extracted text
type AnalyzeTextRequest struct {
	Text     string `json:"text" binding:"required"`
	Filename string `json:"filename,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Handler wires the verification service into gin routes
type Handler struct {
	svc          *service.VerificationService
	fetcher      storage.ImageFetcher
	urlValidator *validation.URLValidator
	imgValidator *validation.ImageValidator
	availability ocr.Availability
	registry     *model.Registry
	cfg          *config.Config
}

func NewHandler(
	svc *service.VerificationService,
	fetcher storage.ImageFetcher,
	availability ocr.Availability,
	registry *model.Registry,
	cfg *config.Config,
) http.Handler {
	h := &Handler{
		svc:          svc,
		fetcher:      fetcher,
		urlValidator: validation.NewURLValidator(),
		imgValidator: validation.NewImageValidator(cfg.MaxRequestBodySize),
		availability: availability,
		registry:     registry,
		cfg:          cfg,
	}

	r := gin.Default()
	r.Use(
		requestSizeLimiter(cfg.MaxRequestBodySize),
		errorHandler(),
	)

	r.GET("/health", h.healthCheck)
	r.GET("/api/models", h.modelsInfo)
	r.POST("/api/extract", h.extract)
	r.POST("/api/analyze", h.analyze)
	r.POST("/api/analyze-text", h.analyzeText)

	return r
}

func (h *Handler) healthCheck(c *gin.Context) {
	status := "available"
	if !h.availability.Available {
		status = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  status,
		"version": "1.0.0",
		"time":    time.Now().UTC().Format(time.RFC3339),
		"ocr": gin.H{
			"available": h.availability.Available,
			"path":      h.availability.Path,
			"languages": h.availability.Languages,
		},
		"models_loaded": h.registry.Len(),
	})
}

func (h *Handler) modelsInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"loaded": h.registry.Len(),
		"names":  h.registry.Names(),
	})
}

func (h *Handler) extract(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.cfg.RequestTimeout)
	defer cancel()

	imageData, _, ok := h.resolveImage(ctx, c)
	if !ok {
		return
	}

	result, err := h.svc.ExtractText(ctx, imageData)
	if err != nil {
		respondAppError(c, "extraction failed", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) analyze(c *gin.Context) {
	startTime := time.Now()
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.cfg.RequestTimeout)
	defer cancel()

	logger.WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
		"ip":     c.ClientIP(),
	}).Info("Processing verification request")

	imageData, filename, ok := h.resolveImage(ctx, c)
	if !ok {
		return
	}

	response, err := h.svc.ClassifyImage(ctx, imageData, filename)
	if err != nil {
		respondAppError(c, "verification failed", err)
		return
	}

	logger.WithFields(logrus.Fields{
		"prediction":         response.FinalPrediction,
		"confidence":         response.Confidence,
		"processing_time_ms": time.Since(startTime).Milliseconds(),
	}).Info("Verification completed")
	c.JSON(http.StatusOK, response)
}

func (h *Handler) analyzeText(c *gin.Context) {
	var req AnalyzeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request format", err)
		return
	}
	c.JSON(http.StatusOK, h.svc.ClassifyExtractedText(req.Text, req.Filename))
}

// resolveImage obtains the image bytes from a multipart upload, a base64
// payload or a fetchable URL, and validates them. On failure it writes the
// error response and returns ok=false.
func (h *Handler) resolveImage(ctx context.Context, c *gin.Context) ([]byte, string, bool) {
	var (
		imageData []byte
		filename  string
	)

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			respondError(c, http.StatusBadRequest, "missing image upload", err)
			return nil, "", false
		}
		filename = fileHeader.Filename

		file, err := fileHeader.Open()
		if err != nil {
			respondError(c, http.StatusBadRequest, "unreadable image upload", err)
			return nil, "", false
		}
		defer file.Close()
		imageData, err = io.ReadAll(file)
		if err != nil {
			respondError(c, http.StatusBadRequest, "unreadable image upload", err)
			return nil, "", false
		}
	} else {
		var req AnalyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request format", err)
			return nil, "", false
		}
		filename = req.Filename

		switch {
		case req.ImageBase64 != "":
			data, err := decodeBase64Image(req.ImageBase64)
			if err != nil {
				respondAppError(c, "invalid base64 image", err)
				return nil, "", false
			}
			imageData = data
		case req.URL != "":
			if err := h.urlValidator.ValidateImageURL(req.URL); err != nil {
				respondAppError(c, "invalid image URL", err)
				return nil, "", false
			}
			data, err := h.fetcher.FetchImage(ctx, req.URL)
			if err != nil {
				if goerrors.Is(err, context.DeadlineExceeded) {
					err = apperrors.NewTimeoutError("Image fetch timeout", err)
				}
				respondAppError(c, "failed to fetch image", err)
				return nil, "", false
			}
			imageData = data
		default:
			respondError(c, http.StatusBadRequest, "no image supplied",
				fmt.Errorf("provide a multipart upload, image_base64 or url"))
			return nil, "", false
		}
	}

	if err := h.imgValidator.ValidateImageData(imageData); err != nil {
		respondAppError(c, "invalid image data", err)
		return nil, "", false
	}
	return imageData, filename, true
}

// decodeBase64Image strips an optional data-URL prefix before decoding
func decodeBase64Image(payload string) ([]byte, error) {
	if idx := strings.Index(payload, ";base64,"); idx >= 0 {
		payload = payload[idx+len(";base64,"):]
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, apperrors.NewInvalidImageError("Base64 payload could not be decoded", err)
	}
	return data, nil
}

// Middleware and helper functions
func requestSizeLimiter(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

func errorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			respondError(c, determineStatusCode(err), "request processing failed", err)
		}
	}
}

func determineStatusCode(err error) int {
	if appErr, ok := err.(*apperrors.AppError); ok {
		return appErr.StatusCode
	}
	switch {
	case goerrors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case goerrors.Is(err, context.Canceled):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func respondAppError(c *gin.Context, message string, err error) {
	respondError(c, apperrors.GetStatusCode(err), message, err)
}

func respondError(c *gin.Context, code int, message string, err error) {
	logger.WithError(err).WithFields(logrus.Fields{
		"status_code": code,
		"message":     message,
		"path":        c.Request.URL.Path,
		"method":      c.Request.Method,
		"ip":          c.ClientIP(),
	}).Error("Request failed")

	c.AbortWithStatusJSON(code, ErrorResponse{
		Error:   http.StatusText(code),
		Message: fmt.Sprintf("%s: %v", message, err),
	})
}
