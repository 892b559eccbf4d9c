package storage

import (
	"database/sql"
	"time"

	"github.com/rotisserie/eris"

	"CreditPathAI/internal/models"
)

// timeLayout sorts lexically in time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func (s *Store) InsertPrediction(r models.PredictionRecord) error {
	stmt, err := s.db.Prepare(`INSERT INTO predictions(
		id, actor, loan_amnt, annual_inc, dti, open_acc, credit_age, revol_util,
		probability, risk_band, action, created_at
	) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return eris.Wrap(err, "storage: prepare insert prediction")
	}
	defer stmt.Close()

	var actor sql.NullString
	if r.Actor != "" {
		actor = sql.NullString{String: r.Actor, Valid: true}
	}
	_, err = stmt.Exec(
		r.ID, actor, r.LoanAmnt, r.AnnualInc, r.DTI, r.OpenAcc, r.CreditAge, r.RevolUtil,
		r.Probability, r.RiskBand, r.Action, r.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return eris.Wrap(err, "storage: insert prediction")
	}
	return nil
}

// ListPredictions returns the most recent log rows, newest first.
func (s *Store) ListPredictions(limit int) ([]models.PredictionRecord, error) {
	query := `
		SELECT id, actor, loan_amnt, annual_inc, dti, open_acc, credit_age, revol_util,
		       probability, risk_band, action, created_at
		FROM predictions
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`
	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, eris.Wrap(err, "storage: query predictions")
	}
	defer rows.Close()

	records := []models.PredictionRecord{}
	for rows.Next() {
		var r models.PredictionRecord
		var actor sql.NullString
		var created string

		if err := rows.Scan(
			&r.ID, &actor, &r.LoanAmnt, &r.AnnualInc, &r.DTI, &r.OpenAcc, &r.CreditAge, &r.RevolUtil,
			&r.Probability, &r.RiskBand, &r.Action, &created,
		); err != nil {
			return nil, eris.Wrap(err, "storage: scan prediction")
		}
		if actor.Valid {
			r.Actor = actor.String
		}
		r.CreatedAt, _ = time.Parse(timeLayout, created)

		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "storage: iterate predictions")
	}
	return records, nil
}
