package models

// BorrowerInput is one borrower as submitted for scoring. The six numeric
// fields are scored; the profile fields are echoed back and never scored.
type BorrowerInput struct {
	LoanAmnt  float64 `json:"loan_amnt" binding:"required,gt=0,lte=10000000" example:"500000"`
	AnnualInc float64 `json:"annual_inc" binding:"required,gt=0,lte=10000000" example:"1800000"`
	DTI       float64 `json:"dti" binding:"required,gt=0,lte=100" example:"35.5"`
	OpenAcc   int     `json:"open_acc" binding:"required,gt=0" example:"8"`
	CreditAge float64 `json:"credit_age" binding:"required,gt=0" example:"5.2"`
	RevolUtil float64 `json:"revol_util" binding:"required,gt=0,lte=100" example:"45.3"`

	FullName    string `json:"full_name,omitempty" example:"Asha Rao"`
	Email       string `json:"email,omitempty" example:"asha@example.com"`
	Phone       string `json:"phone,omitempty" example:"+91 98765 43210"`
	LoanPurpose string `json:"loan_purpose,omitempty" example:"home_improvement"`
}

// BatchPrediction is one scored spreadsheet row.
type BatchPrediction struct {
	RowNumber      int     `json:"row_number"`
	Probability    float64 `json:"probability"`
	RiskLevel      string  `json:"risk_level"`
	Recommendation string  `json:"recommendation"`
	LoanAmnt       float64 `json:"loan_amnt"`
	AnnualInc      float64 `json:"annual_inc"`
	DTI            float64 `json:"dti"`
	OpenAcc        int     `json:"open_acc"`
	CreditAge      float64 `json:"credit_age"`
	RevolUtil      float64 `json:"revol_util"`
}
