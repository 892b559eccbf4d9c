// Package predictionlog records every scored borrower: a text line in the
// application log, a row in the prediction table, and prometheus counters.
package predictionlog

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"CreditPathAI/internal/metrics"
	"CreditPathAI/internal/models"
	"CreditPathAI/internal/scoring"
)

type actorKey struct{}

// WithActor tags ctx with the authenticated user the scoring runs for.
func WithActor(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, actorKey{}, email)
}

// ActorFrom returns the user tagged by WithActor, or "".
func ActorFrom(ctx context.Context) string {
	s, _ := ctx.Value(actorKey{}).(string)
	return s
}

// Line renders a result the way it appears in the application log:
//
//	Input: {loan_amnt: 500000, ...} | Probability: 0.1235 | Risk: Low | Action: Standard Reminder
func Line(r scoring.Result) string {
	f := r.Features
	var b strings.Builder
	b.WriteString("Input: {")
	fields := []struct {
		name  string
		value float64
	}{
		{"loan_amnt", f.LoanAmnt},
		{"annual_inc", f.AnnualInc},
		{"dti", f.DTI},
		{"open_acc", float64(f.OpenAcc)},
		{"credit_age", f.CreditAge},
		{"revol_util", f.RevolUtil},
	}
	for i, fld := range fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fld.name)
		b.WriteString(": ")
		b.WriteString(strconv.FormatFloat(fld.value, 'f', -1, 64))
	}
	fmt.Fprintf(&b, "} | Probability: %.4f | Risk: %s | Action: %s", r.Probability, r.RiskBand, r.Action)
	return b.String()
}

// Fanout forwards each entry to every sink in order.
type Fanout []scoring.Sink

func (f Fanout) Record(ctx context.Context, r scoring.Result) {
	for _, s := range f {
		s.Record(ctx, r)
	}
}

// ZapSink writes the text line to a zap logger.
type ZapSink struct {
	log *zap.Logger
}

func NewZapSink(log *zap.Logger) *ZapSink {
	return &ZapSink{log: log.Named("prediction")}
}

func (z *ZapSink) Record(ctx context.Context, r scoring.Result) {
	fields := []zap.Field{}
	if actor := ActorFrom(ctx); actor != "" {
		fields = append(fields, zap.String("actor", actor))
	}
	z.log.Info(Line(r), fields...)
}

// Inserter persists prediction rows; *storage.Store satisfies it.
type Inserter interface {
	InsertPrediction(models.PredictionRecord) error
}

// StoreSink persists each entry. Write failures are logged and swallowed.
type StoreSink struct {
	store Inserter
	log   *zap.Logger
	now   func() time.Time
}

func NewStoreSink(store Inserter, log *zap.Logger) *StoreSink {
	return &StoreSink{store: store, log: log, now: time.Now}
}

func (s *StoreSink) Record(ctx context.Context, r scoring.Result) {
	rec := models.PredictionRecord{
		ID:          uuid.NewString(),
		Actor:       ActorFrom(ctx),
		LoanAmnt:    r.Features.LoanAmnt,
		AnnualInc:   r.Features.AnnualInc,
		DTI:         r.Features.DTI,
		OpenAcc:     r.Features.OpenAcc,
		CreditAge:   r.Features.CreditAge,
		RevolUtil:   r.Features.RevolUtil,
		Probability: r.Probability,
		RiskBand:    string(r.RiskBand),
		Action:      string(r.Action),
		CreatedAt:   s.now(),
	}
	if err := s.store.InsertPrediction(rec); err != nil {
		s.log.Error("failed to persist prediction", zap.String("id", rec.ID), zap.Error(err))
	}
}

// MetricsSink counts entries by band and observes the probability.
type MetricsSink struct {
	m *metrics.Metrics
}

func NewMetricsSink(m *metrics.Metrics) *MetricsSink {
	return &MetricsSink{m: m}
}

func (s *MetricsSink) Record(_ context.Context, r scoring.Result) {
	s.m.Predictions.WithLabelValues(string(r.RiskBand)).Inc()
	s.m.Probability.Observe(r.Probability)
}
