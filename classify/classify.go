// Package classify assigns a complexity category to index vectors.
package classify

import (
	"fmt"

	"github.com/revelaction/cohmetrix/errs"
	"github.com/revelaction/cohmetrix/index"
)

// Predictor returns the category of a feature vector.
type Predictor interface {
	Predict(features []float64) (string, error)
}

// Scaler transforms a feature vector before prediction.
type Scaler interface {
	Transform(features []float64) ([]float64, error)
}

// Classifier bundles a scaler and a predictor with the index codes, in
// training order, the predictor expects.
type Classifier struct {
	Scaler    Scaler
	Predictor Predictor
	Codes     []string
}

// New returns a Classifier. Custom artifacts need the ordered list of codes
// they were trained with; a nil codes list means the standard order.
func New(s Scaler, p Predictor, codes []string) (*Classifier, error) {
	if p == nil {
		return nil, fmt.Errorf("classifier without predictor: %w", errs.ErrInvalidConfiguration)
	}
	if codes == nil {
		codes = index.Codes()
	}
	if len(codes) == 0 {
		return nil, fmt.Errorf("classifier without index codes: %w", errs.ErrInvalidConfiguration)
	}
	return &Classifier{Scaler: s, Predictor: p, Codes: codes}, nil
}

// Classify returns the category of the indices.
func (c *Classifier) Classify(m index.Map) (string, error) {
	v, err := m.Vector(c.Codes)
	if err != nil {
		return "", err
	}

	if c.Scaler != nil {
		v, err = c.Scaler.Transform(v)
		if err != nil {
			return "", fmt.Errorf("scale features: %w", err)
		}
	}

	label, err := c.Predictor.Predict(v)
	if err != nil {
		return "", fmt.Errorf("predict: %w", err)
	}
	return label, nil
}

// Load reads the persisted model and, when scalerPath is set, the scaler,
// for the standard index order.
func Load(modelPath, modelSum, scalerPath, scalerSum string) (*Classifier, error) {
	model, err := LoadModel(modelPath, modelSum)
	if err != nil {
		return nil, err
	}

	var scaler Scaler
	if scalerPath != "" {
		s, err := LoadScaler(scalerPath, scalerSum)
		if err != nil {
			return nil, err
		}
		scaler = s
	}

	codes := index.Codes()
	if model.Features() != len(codes) {
		return nil, fmt.Errorf("model %s expects %d features, there are %d indices: %w", modelPath, model.Features(), len(codes), errs.ErrInvalidConfiguration)
	}
	return New(scaler, model, codes)
}
