package training

import (
	"math/rand/v2"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"CreditPathAI/internal/model"
)

// Options control a training run.
type Options struct {
	Samples      int
	PositiveRate float64
	TestSize     float64
	Seed         uint64
	Neighbours   int
	C            float64
	LearningRate float64
	Epochs       int
}

func DefaultOptions() Options {
	return Options{
		Samples:      10000,
		PositiveRate: 0.3,
		TestSize:     0.2,
		Seed:         42,
		Neighbours:   5,
		C:            1.0,
		LearningRate: 0.5,
		Epochs:       1000,
	}
}

func (o Options) validate() error {
	if o.Samples < 10 {
		return eris.Errorf("training: need at least 10 samples, got %d", o.Samples)
	}
	if o.TestSize <= 0 || o.TestSize >= 1 {
		return eris.Errorf("training: test size must be in (0, 1), got %v", o.TestSize)
	}
	if o.PositiveRate <= 0 || o.PositiveRate >= 1 {
		return eris.Errorf("training: positive rate must be in (0, 1), got %v", o.PositiveRate)
	}
	if o.Epochs <= 0 || o.LearningRate <= 0 || o.C <= 0 {
		return eris.New("training: epochs, learning rate and C must be positive")
	}
	return nil
}

// Train generates a dataset, fits scaler and classifier, and scores the holdout.
// The same options always yield the same model.
func Train(opts Options) (*model.FittedModel, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	log := zap.L().With(zap.Uint64("seed", opts.Seed))
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))

	log.Info("generating synthetic dataset", zap.Int("samples", opts.Samples))
	ds := Synthesize(opts.Samples, opts.PositiveRate, rng)

	train, test := StratifiedSplit(ds, opts.TestSize, rng)
	log.Info("split dataset", zap.Int("train", train.Len()), zap.Int("test", test.Len()))

	balanced := Oversample(train, opts.Neighbours, rng)
	log.Info("balanced training set",
		zap.Int("rows", balanced.Len()),
		zap.Int("positives", balanced.Positives()),
	)

	scaler := FitScaler(balanced.X)
	xTrain, err := TransformAll(scaler, balanced.X)
	if err != nil {
		return nil, eris.Wrap(err, "training: scale train set")
	}
	clf := FitLogistic(xTrain, balanced.Y, opts.C, opts.LearningRate, opts.Epochs)

	m := &model.FittedModel{
		Features:   append([]string(nil), model.FeatureOrder...),
		Scaler:     scaler,
		Classifier: clf,
	}

	probs := make([]float64, test.Len())
	for i, row := range test.X {
		p, err := m.Predict(row)
		if err != nil {
			return nil, eris.Wrap(err, "training: score holdout")
		}
		probs[i] = p
	}
	m.Metrics = holdoutMetrics(test.Y, probs, balanced.Len())
	log.Info("model evaluated",
		zap.Float64("accuracy", m.Metrics.Accuracy),
		zap.Float64("roc_auc", m.Metrics.ROCAUC),
	)
	return m, nil
}

// holdoutMetrics bundles holdout accuracy and ROC-AUC.
func holdoutMetrics(y []int, probs []float64, samples int) model.TrainingMetrics {
	return model.TrainingMetrics{
		Accuracy: Accuracy(y, probs),
		ROCAUC:   ROCAUC(y, probs),
		Samples:  samples,
	}
}
