package classify

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/revelaction/cohmetrix/errs"
	"github.com/revelaction/cohmetrix/index"
)

// writeArtifact writes v as JSON and returns its path and SHA-256.
func writeArtifact(t *testing.T, name string, v any) (string, string) {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	h := sha256.Sum256(data)
	return path, hex.EncodeToString(h[:])
}

// wordCountModel is a binary model that says "long" for more than 5 words.
func wordCountModel() LinearModel {
	row := make([]float64, len(index.Codes()))
	for i, c := range index.Codes() {
		if c == index.DESWC {
			row[i] = 1
		}
	}
	return LinearModel{
		ModelID:      "test",
		Classes:      []string{"short", "long"},
		Coefficients: [][]float64{row},
		Intercepts:   []float64{-5},
	}
}

func indices(wc float64) index.Map {
	m := index.Map{}
	for _, c := range index.Codes() {
		m[c] = 1
	}
	m[index.DESWC] = wc
	return m
}

func TestLoad(t *testing.T) {
	modelPath, modelSum := writeArtifact(t, "model.json", wordCountModel())
	n := len(index.Codes())
	scaler := StandardScaler{Mean: make([]float64, n), Scale: make([]float64, n)}
	scalerPath, scalerSum := writeArtifact(t, "scaler.json", scaler)

	c, err := Load(modelPath, modelSum, scalerPath, scalerSum)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	tests := []struct {
		wc   float64
		want string
	}{
		{7, "long"},
		{3, "short"},
		{5, "short"},
	}
	for _, tt := range tests {
		got, err := c.Classify(indices(tt.wc))
		if err != nil {
			t.Fatalf("classify: %v", err)
		}
		if got != tt.want {
			t.Errorf("DESWC %v: expected %s, got %s", tt.wc, tt.want, got)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	modelPath, _ := writeArtifact(t, "model.json", wordCountModel())

	if _, err := Load(modelPath, "deadbeef", "", ""); !errors.Is(err, errs.ErrInvalidConfiguration) {
		t.Errorf("expected checksum mismatch, got %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json"), "", "", ""); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not exist error, got %v", err)
	}

	small, _ := writeArtifact(t, "small.json", LinearModel{Classes: []string{"a", "b"}, Coefficients: [][]float64{{1}}, Intercepts: []float64{0}})
	if _, err := Load(small, "", "", ""); !errors.Is(err, errs.ErrInvalidConfiguration) {
		t.Errorf("expected feature count error, got %v", err)
	}

	bad, _ := writeArtifact(t, "bad.json", LinearModel{Classes: []string{"a"}, Coefficients: [][]float64{{1}, {2}}, Intercepts: []float64{0, 0}})
	if _, err := LoadModel(bad, ""); !errors.Is(err, errs.ErrInvalidConfiguration) {
		t.Errorf("expected class count error, got %v", err)
	}

	scaler, _ := writeArtifact(t, "scaler.json", StandardScaler{Mean: []float64{1}, Scale: nil})
	if _, err := LoadScaler(scaler, ""); !errors.Is(err, errs.ErrInvalidConfiguration) {
		t.Errorf("expected scaler shape error, got %v", err)
	}
}

func TestClassifyUndefined(t *testing.T) {
	c, err := New(nil, &LinearModel{
		Classes:      []string{"a", "b"},
		Coefficients: [][]float64{{1}},
		Intercepts:   []float64{0},
	}, []string{index.CRFNO1})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if _, err := c.Classify(index.Map{index.CRFNO1: math.NaN()}); !errors.Is(err, errs.ErrUndefinedStatistic) {
		t.Errorf("expected ErrUndefinedStatistic, got %v", err)
	}
	if _, err := c.Classify(index.Map{}); !errors.Is(err, errs.ErrMissingDependency) {
		t.Errorf("expected ErrMissingDependency, got %v", err)
	}

	if _, err := New(nil, nil, nil); !errors.Is(err, errs.ErrInvalidConfiguration) {
		t.Errorf("expected error without predictor, got %v", err)
	}
}

func TestLinearModelMultiClass(t *testing.T) {
	m := &LinearModel{
		Classes:      []string{"A1", "B1", "C1"},
		Coefficients: [][]float64{{1, 0}, {0, 1}, {-1, -1}},
		Intercepts:   []float64{0, 0, 0},
	}
	if err := m.validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	tests := []struct {
		x    []float64
		want string
	}{
		{[]float64{2, 1}, "A1"},
		{[]float64{1, 2}, "B1"},
		{[]float64{-2, -2}, "C1"},
		{[]float64{0, 0}, "A1"},
	}
	for _, tt := range tests {
		got, err := m.Predict(tt.x)
		if err != nil || got != tt.want {
			t.Errorf("%v: expected %s, got %s %v", tt.x, tt.want, got, err)
		}
	}

	if _, err := m.Predict([]float64{1}); !errors.Is(err, errs.ErrInvalidConfiguration) {
		t.Errorf("expected feature count error, got %v", err)
	}
}

func TestStandardScaler(t *testing.T) {
	s := &StandardScaler{Mean: []float64{1, 2}, Scale: []float64{2, 0}}

	got, err := s.Transform([]float64{5, 3})
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	if !reflect.DeepEqual(got, []float64{2, 1}) {
		t.Errorf("expected [2 1], got %v", got)
	}
	if _, err := s.Transform([]float64{1}); err == nil {
		t.Errorf("expected error for wrong length")
	}
}
