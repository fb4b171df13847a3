// Package model loads pretrained scoring artifacts and serves them as opaque
// probability functions. The registry is built once during startup and never
// mutated afterwards, so analyzers can read it without locking.
package model

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Model scores a fixed-order numeric feature tuple and returns the
// probability of the genuine class in [0,1].
type Model interface {
	Name() string
	PredictProba(features []float64) (float64, error)
}

// artifact is the on-disk JSON layout of a trained linear model
type artifact struct {
	Name     string    `json:"name"`
	Kind     string    `json:"kind"`
	Bias     float64   `json:"bias"`
	Weights  []float64 `json:"weights"`
	Features []string  `json:"features,omitempty"`
}

// logistic is a serialized logistic-regression scorer
type logistic struct {
	name    string
	bias    float64
	weights []float64
}

func (m *logistic) Name() string { return m.name }

func (m *logistic) PredictProba(features []float64) (float64, error) {
	if len(features) != len(m.weights) {
		return 0, fmt.Errorf("model %s expects %d features, got %d", m.name, len(m.weights), len(features))
	}
	z := m.bias
	for i, w := range m.weights {
		z += w * features[i]
	}
	return 1 / (1 + math.Exp(-z)), nil
}

// Registry is the immutable set of loaded models keyed by name
type Registry struct {
	models map[string]Model
}

// LoadRegistry reads every *.json artifact under dir. A missing directory or
// unreadable artifact is logged and skipped, never fatal: analyzers that need
// an absent model fall back to their heuristic paths.
func LoadRegistry(dir string, log *logrus.Entry) *Registry {
	reg := &Registry{models: map[string]Model{}}

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.WithError(err).WithField("dir", dir).Warn("Model directory unavailable, heuristic fallbacks will be used")
		return reg
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		m, err := loadArtifact(path)
		if err != nil {
			log.WithError(err).WithField("file", entry.Name()).Warn("Skipping unreadable model artifact")
			continue
		}
		reg.models[m.Name()] = m
		log.WithFields(logrus.Fields{"model": m.Name(), "file": entry.Name()}).Info("Loaded model artifact")
	}
	return reg
}

// NewRegistry builds a registry from in-memory models, used by tests and by
// any caller that constructs models without artifact files.
func NewRegistry(models ...Model) *Registry {
	reg := &Registry{models: map[string]Model{}}
	for _, m := range models {
		reg.models[m.Name()] = m
	}
	return reg
}

// Get returns the named model, or nil when it was never loaded
func (r *Registry) Get(name string) Model {
	return r.models[name]
}

// Names lists the loaded model names
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	return names
}

// Len reports how many models loaded successfully
func (r *Registry) Len() int { return len(r.models) }

func loadArtifact(path string) (Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var a artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	if a.Name == "" {
		return nil, fmt.Errorf("artifact %s has no model name", filepath.Base(path))
	}
	switch a.Kind {
	case "", "logistic":
		if len(a.Weights) == 0 {
			return nil, fmt.Errorf("model %s has no weights", a.Name)
		}
		return &logistic{name: a.Name, bias: a.Bias, weights: a.Weights}, nil
	default:
		return nil, fmt.Errorf("model %s has unsupported kind %q", a.Name, a.Kind)
	}
}

// NewLogistic builds an in-memory logistic scorer
func NewLogistic(name string, bias float64, weights []float64) Model {
	return &logistic{name: name, bias: bias, weights: weights}
}
