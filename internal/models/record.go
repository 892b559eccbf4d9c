package models

import "time"

// PredictionRecord is one row of the prediction log.
type PredictionRecord struct {
	ID          string    `json:"id"`
	Actor       string    `json:"actor,omitempty"`
	LoanAmnt    float64   `json:"loan_amnt"`
	AnnualInc   float64   `json:"annual_inc"`
	DTI         float64   `json:"dti"`
	OpenAcc     int       `json:"open_acc"`
	CreditAge   float64   `json:"credit_age"`
	RevolUtil   float64   `json:"revol_util"`
	Probability float64   `json:"probability"`
	RiskBand    string    `json:"risk_band"`
	Action      string    `json:"action"`
	CreatedAt   time.Time `json:"created_at"`
}
