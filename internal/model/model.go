package model

import (
	"math"

	"github.com/rotisserie/eris"
)

// FeatureOrder is the column order the scaler and classifier are fitted on.
// Serving and training must agree on it; artifacts embed their own copy.
var FeatureOrder = []string{"loan_amnt", "annual_inc", "dti", "open_acc", "credit_age", "revol_util"}

var (
	ErrArtifactMissing  = eris.New("model artifact not found")
	ErrArtifactCorrupt  = eris.New("model artifact is corrupt")
	ErrInferenceFailure = eris.New("model inference failed")
)

// StandardScaler standardizes each feature with the mean and scale captured at fit time.
type StandardScaler struct {
	Mean  []float64
	Scale []float64
}

// Transform returns (x - mean) / scale per feature.
func (s StandardScaler) Transform(x []float64) ([]float64, error) {
	if len(x) != len(s.Mean) || len(x) != len(s.Scale) {
		return nil, eris.Wrapf(ErrInferenceFailure, "scaler expects %d features, got %d", len(s.Mean), len(x))
	}
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = (v - s.Mean[i]) / s.Scale[i]
	}
	return out, nil
}

// LogisticRegression is a fitted binary classifier.
type LogisticRegression struct {
	Coef      []float64
	Intercept float64
}

// PredictProbability returns the positive (default) class probability.
func (l LogisticRegression) PredictProbability(x []float64) (float64, error) {
	if len(x) != len(l.Coef) {
		return 0, eris.Wrapf(ErrInferenceFailure, "classifier expects %d features, got %d", len(l.Coef), len(x))
	}
	z := l.Intercept
	for i, v := range x {
		z += l.Coef[i] * v
	}
	p := Sigmoid(z)
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, eris.Wrapf(ErrInferenceFailure, "non-finite probability for logit %v", z)
	}
	return p, nil
}

// Sigmoid is the logistic function, split by sign to avoid overflow in exp.
func Sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}

// FittedModel pairs a classifier with the scaler it was trained behind.
// It is never mutated after load.
type FittedModel struct {
	Features   []string
	Scaler     StandardScaler
	Classifier LogisticRegression
	Metrics    TrainingMetrics
}

// TrainingMetrics are holdout scores recorded by the training run.
type TrainingMetrics struct {
	Accuracy float64
	ROCAUC   float64
	Samples  int
}

// Predict scales x and returns the default probability.
func (m *FittedModel) Predict(x []float64) (float64, error) {
	scaled, err := m.Scaler.Transform(x)
	if err != nil {
		return 0, err
	}
	return m.Classifier.PredictProbability(scaled)
}

func (m *FittedModel) validate() error {
	if len(m.Features) != len(FeatureOrder) {
		return eris.Wrapf(ErrArtifactCorrupt, "artifact has %d features, expected %d", len(m.Features), len(FeatureOrder))
	}
	for i, name := range FeatureOrder {
		if m.Features[i] != name {
			return eris.Wrapf(ErrArtifactCorrupt, "feature %d is %q, expected %q", i, m.Features[i], name)
		}
	}
	n := len(FeatureOrder)
	if len(m.Scaler.Mean) != n || len(m.Scaler.Scale) != n || len(m.Classifier.Coef) != n {
		return eris.Wrap(ErrArtifactCorrupt, "parameter vectors do not match feature count")
	}
	for i, s := range m.Scaler.Scale {
		if s == 0 || !finite(s) {
			return eris.Wrapf(ErrArtifactCorrupt, "invalid scale for %s", FeatureOrder[i])
		}
		if !finite(m.Scaler.Mean[i]) {
			return eris.Wrapf(ErrArtifactCorrupt, "invalid mean for %s", FeatureOrder[i])
		}
		if !finite(m.Classifier.Coef[i]) {
			return eris.Wrapf(ErrArtifactCorrupt, "invalid coefficient for %s", FeatureOrder[i])
		}
	}
	if !finite(m.Classifier.Intercept) {
		return eris.Wrap(ErrArtifactCorrupt, "invalid intercept")
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
