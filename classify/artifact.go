package classify

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/revelaction/cohmetrix/errs"
)

// LinearModel is a multi-class linear classifier: the predicted class is the
// one with the highest score W·x + b. A single row of coefficients with two
// classes is a binary model whose positive class is the second one.
type LinearModel struct {
	ModelID      string      `json:"model_id"`
	Version      string      `json:"version"`
	Classes      []string    `json:"classes"`
	Coefficients [][]float64 `json:"coefficients"`
	Intercepts   []float64   `json:"intercepts"`
}

var _ Predictor = (*LinearModel)(nil)

// StandardScaler centers and scales every feature: (x - mean) / scale.
type StandardScaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

var _ Scaler = (*StandardScaler)(nil)

// LoadModel reads a LinearModel artifact. A non empty sum pins the SHA-256
// of the file.
func LoadModel(path, sum string) (*LinearModel, error) {
	var m LinearModel
	if err := load(path, sum, &m); err != nil {
		return nil, err
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("classifier %s: %w", path, err)
	}
	return &m, nil
}

// LoadScaler reads a StandardScaler artifact. A non empty sum pins the
// SHA-256 of the file.
func LoadScaler(path, sum string) (*StandardScaler, error) {
	var s StandardScaler
	if err := load(path, sum, &s); err != nil {
		return nil, err
	}
	if len(s.Mean) != len(s.Scale) {
		return nil, fmt.Errorf("scaler %s: %d means and %d scales: %w", path, len(s.Mean), len(s.Scale), errs.ErrInvalidConfiguration)
	}
	return &s, nil
}

func load(path, sum string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("IO error: %w", err)
	}

	if sum != "" {
		h := sha256.Sum256(data)
		if got := hex.EncodeToString(h[:]); got != sum {
			return fmt.Errorf("artifact %s checksum mismatch: got %s want %s: %w", path, got, sum, errs.ErrInvalidConfiguration)
		}
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("JSON decoding error: %w", err)
	}
	return nil
}

func (m *LinearModel) validate() error {
	if len(m.Coefficients) == 0 {
		return fmt.Errorf("no coefficients: %w", errs.ErrInvalidConfiguration)
	}
	if len(m.Intercepts) != len(m.Coefficients) {
		return fmt.Errorf("%d intercepts for %d coefficient rows: %w", len(m.Intercepts), len(m.Coefficients), errs.ErrInvalidConfiguration)
	}

	binary := len(m.Coefficients) == 1 && len(m.Classes) == 2
	if !binary && len(m.Classes) != len(m.Coefficients) {
		return fmt.Errorf("%d classes for %d coefficient rows: %w", len(m.Classes), len(m.Coefficients), errs.ErrInvalidConfiguration)
	}

	n := len(m.Coefficients[0])
	for i, row := range m.Coefficients {
		if len(row) != n {
			return fmt.Errorf("coefficient row %d has %d features, want %d: %w", i, len(row), n, errs.ErrInvalidConfiguration)
		}
	}
	return nil
}

// Features returns the number of features the model expects.
func (m *LinearModel) Features() int {
	return len(m.Coefficients[0])
}

// Predict implements Predictor.
func (m *LinearModel) Predict(x []float64) (string, error) {
	if len(x) != m.Features() {
		return "", fmt.Errorf("%d features, model expects %d: %w", len(x), m.Features(), errs.ErrInvalidConfiguration)
	}

	scores := make([]float64, len(m.Coefficients))
	for i, row := range m.Coefficients {
		s := m.Intercepts[i]
		for j, w := range row {
			s += w * x[j]
		}
		scores[i] = s
	}

	if len(scores) == 1 {
		if scores[0] > 0 {
			return m.Classes[1], nil
		}
		return m.Classes[0], nil
	}

	best := 0
	for i, s := range scores {
		if s > scores[best] {
			best = i
		}
	}
	return m.Classes[best], nil
}

// Transform implements Scaler. Zero scales leave the centered value as is.
func (s *StandardScaler) Transform(x []float64) ([]float64, error) {
	if len(x) != len(s.Mean) {
		return nil, fmt.Errorf("%d features, scaler expects %d: %w", len(x), len(s.Mean), errs.ErrInvalidConfiguration)
	}

	out := make([]float64, len(x))
	for i, v := range x {
		scale := s.Scale[i]
		if scale == 0 || math.IsNaN(scale) {
			scale = 1
		}
		out[i] = (v - s.Mean[i]) / scale
	}
	return out, nil
}
