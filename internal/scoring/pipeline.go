package scoring

import (
	"context"
	"runtime"

	"github.com/rotisserie/eris"
	"golang.org/x/sync/errgroup"

	"CreditPathAI/internal/model"
)

// Features are the six numeric borrower attributes the model is fitted on.
// Profile fields such as name or contact details never reach the model.
type Features struct {
	LoanAmnt  float64 `json:"loan_amnt"`
	AnnualInc float64 `json:"annual_inc"`
	DTI       float64 `json:"dti"`
	OpenAcc   int     `json:"open_acc"`
	CreditAge float64 `json:"credit_age"`
	RevolUtil float64 `json:"revol_util"`
}

// Vector returns the features in model.FeatureOrder.
func (f Features) Vector() []float64 {
	return []float64{f.LoanAmnt, f.AnnualInc, f.DTI, float64(f.OpenAcc), f.CreditAge, f.RevolUtil}
}

// Result is the scoring decision for one borrower.
type Result struct {
	Probability float64
	RiskBand    RiskBand
	Action      Action
	Features    Features
}

// ModelLoader supplies the fitted model; *model.Provider satisfies it.
type ModelLoader interface {
	Load() (*model.FittedModel, error)
}

// Sink receives one entry per successfully scored record.
type Sink interface {
	Record(ctx context.Context, r Result)
}

type Pipeline struct {
	models ModelLoader
	sink   Sink
	limit  int
}

// NewPipeline wires a model handle and a log sink. sink may be nil.
func NewPipeline(models ModelLoader, sink Sink) *Pipeline {
	return &Pipeline{models: models, sink: sink, limit: runtime.GOMAXPROCS(0)}
}

// Score scores a single borrower and emits its log entry.
func (p *Pipeline) Score(ctx context.Context, f Features) (Result, error) {
	m, err := p.models.Load()
	if err != nil {
		return Result{}, err
	}
	r, err := score(m, f)
	if err != nil {
		return Result{}, err
	}
	p.emit(ctx, r)
	return r, nil
}

// ScoreBatch scores every record independently and returns results in input
// order. Any failure fails the whole batch and nothing is logged.
func (p *Pipeline) ScoreBatch(ctx context.Context, fs []Features) ([]Result, error) {
	m, err := p.models.Load()
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(fs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.limit)
	for i, f := range fs {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			r, err := score(m, f)
			if err != nil {
				return eris.Wrapf(err, "record %d", i+1)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, r := range results {
		p.emit(ctx, r)
	}
	return results, nil
}

func (p *Pipeline) emit(ctx context.Context, r Result) {
	if p.sink != nil {
		p.sink.Record(ctx, r)
	}
}

func score(m *model.FittedModel, f Features) (Result, error) {
	raw, err := m.Predict(f.Vector())
	if err != nil {
		return Result{}, err
	}
	prob := Round4(raw)
	band, action := Classify(prob)
	return Result{Probability: prob, RiskBand: band, Action: action, Features: f}, nil
}
