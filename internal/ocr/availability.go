package ocr

import (
	"os"
	"os/exec"
	"strings"

	"github.com/otiai10/gosseract/v2"
	"github.com/sirupsen/logrus"

	"go-jobpost-verifier/internal/logger"
)

// Availability describes the tesseract installation found at startup.
// Built once, injected everywhere, never mutated afterwards.
type Availability struct {
	Available bool     `json:"available"`
	Path      string   `json:"path,omitempty"`
	Languages string   `json:"languages"`
	Installed []string `json:"installed_languages,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// Probe asks the linked tesseract library which language packs are installed
// and resolves the configured candidate paths to a binary for diagnostics.
// Availability is decided by the library probe alone: gosseract links
// libtesseract directly and never shells out, so a missing binary does not
// block extraction. The resolved path is surfaced on /health for operators.
// preferred is the wanted language string ("ind+eng"); the probe downgrades
// to "eng" when the Indonesian pack is missing.
func Probe(candidatePaths []string, preferred string) Availability {
	path := findBinary(candidatePaths)

	langs, err := gosseract.GetAvailableLanguages()
	if err != nil {
		logger.WithComponent("ocr").WithError(err).Warn("tesseract language probe failed")
		return Availability{
			Available: false,
			Path:      path,
			Error:     "tesseract language data not found: " + err.Error(),
		}
	}

	selected := selectLanguages(langs, preferred)
	logger.WithComponent("ocr").WithFields(logrus.Fields{
		"path":      path,
		"languages": selected,
		"installed": len(langs),
	}).Info("tesseract available")

	return Availability{
		Available: true,
		Path:      path,
		Languages: selected,
		Installed: langs,
	}
}

func findBinary(candidates []string) string {
	for _, c := range candidates {
		if strings.ContainsAny(c, "/\\") {
			if _, err := os.Stat(c); err == nil {
				return c
			}
			continue
		}
		if resolved, err := exec.LookPath(c); err == nil {
			return resolved
		}
	}
	return ""
}

// selectLanguages keeps only the parts of preferred that are installed,
// falling back to plain English
func selectLanguages(installed []string, preferred string) string {
	have := make(map[string]bool, len(installed))
	for _, l := range installed {
		have[l] = true
	}

	var kept []string
	for _, want := range strings.Split(preferred, "+") {
		if have[want] {
			kept = append(kept, want)
		}
	}
	if len(kept) == 0 {
		return "eng"
	}
	return strings.Join(kept, "+")
}
