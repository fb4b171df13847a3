package model

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.PanicLevel)
	return logrus.NewEntry(log)
}

func TestLoadRegistryMissingDir(t *testing.T) {
	reg := LoadRegistry(filepath.Join(t.TempDir(), "nope"), testLogger())
	if reg.Len() != 0 {
		t.Errorf("expected empty registry, got %d models", reg.Len())
	}
	if reg.Get("structural") != nil {
		t.Error("expected nil for unknown model")
	}
}

func TestLoadRegistryFromArtifacts(t *testing.T) {
	dir := t.TempDir()
	artifact := `{"name":"structural","kind":"logistic","bias":0.5,"weights":[1.0,-2.0]}`
	if err := os.WriteFile(filepath.Join(dir, "structural.json"), []byte(artifact), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("ignore me"), 0o644); err != nil {
		t.Fatal(err)
	}

	reg := LoadRegistry(dir, testLogger())
	if reg.Len() != 1 {
		t.Fatalf("expected 1 model, got %d", reg.Len())
	}
	m := reg.Get("structural")
	if m == nil {
		t.Fatal("structural model not loaded")
	}

	p, err := m.PredictProba([]float64{1, 1})
	if err != nil {
		t.Fatal(err)
	}
	want := 1 / (1 + math.Exp(0.5))
	if math.Abs(p-want) > 1e-9 {
		t.Errorf("PredictProba = %f, want %f", p, want)
	}
}

func TestPredictProbaDimensionMismatch(t *testing.T) {
	m := NewLogistic("structural", 0, []float64{1, 2, 3})
	if _, err := m.PredictProba([]float64{1}); err == nil {
		t.Error("expected dimension mismatch error")
	}
}

func TestPredictProbaRange(t *testing.T) {
	m := NewLogistic("structural", -3, []float64{0.5, -0.25, 2})
	for _, features := range [][]float64{{0, 0, 0}, {10, 10, 10}, {-100, 50, 3}} {
		p, err := m.PredictProba(features)
		if err != nil {
			t.Fatal(err)
		}
		if p < 0 || p > 1 {
			t.Errorf("probability %f out of range for %v", p, features)
		}
	}
}
