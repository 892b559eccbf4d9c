package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"CreditPathAI/internal/models"
	"CreditPathAI/internal/scoring"
)

// PredictionResponse is the scoring decision for one borrower plus the
// profile fields echoed back from the request.
type PredictionResponse struct {
	Probability           float64          `json:"probability" example:"0.7512"`
	RiskBand              scoring.RiskBand `json:"risk_band" example:"High"`
	Action                scoring.Action   `json:"action" example:"Priority Collection"`
	InputData             scoring.Features `json:"input_data"`
	ApplicantName         string           `json:"applicant_name,omitempty" example:"Asha Rao"`
	Email                 string           `json:"email,omitempty" example:"asha@example.com"`
	Phone                 string           `json:"phone,omitempty" example:"+91 98765 43210"`
	LoanAmount            float64          `json:"loan_amount" example:"500000"`
	LoanPurpose           string           `json:"loan_purpose,omitempty" example:"home_improvement"`
	RecommendationDetails string           `json:"recommendation_details"`
}

type BatchPredictRequest struct {
	Borrowers []models.BorrowerInput `json:"borrowers" binding:"required,min=1,dive"`
}

type BatchPredictResponse struct {
	Predictions []PredictionResponse `json:"predictions"`
	Total       int                  `json:"total" example:"1"`
}

type HealthResponse struct {
	Status      string `json:"status" example:"ok"`
	ModelLoaded bool   `json:"model_loaded" example:"true"`
}

func featuresOf(in models.BorrowerInput) scoring.Features {
	return scoring.Features{
		LoanAmnt:  in.LoanAmnt,
		AnnualInc: in.AnnualInc,
		DTI:       in.DTI,
		OpenAcc:   in.OpenAcc,
		CreditAge: in.CreditAge,
		RevolUtil: in.RevolUtil,
	}
}

func recommendationDetails(r scoring.Result) string {
	return fmt.Sprintf(
		"Based on financial analysis, the applicant shows a %s probability (%.2f%%) of loan default. %s is recommended.",
		strings.ToLower(string(r.RiskBand)), r.Probability*100, r.Action,
	)
}

func newPredictionResponse(in models.BorrowerInput, r scoring.Result) PredictionResponse {
	return PredictionResponse{
		Probability:           r.Probability,
		RiskBand:              r.RiskBand,
		Action:                r.Action,
		InputData:             r.Features,
		ApplicantName:         in.FullName,
		Email:                 in.Email,
		Phone:                 in.Phone,
		LoanAmount:            in.LoanAmnt,
		LoanPurpose:           in.LoanPurpose,
		RecommendationDetails: recommendationDetails(r),
	}
}

// Predict godoc
// @Summary      Score one borrower
// @Description  Returns the default probability, risk band and recommended collection action.
// @Tags         Prediction
// @Accept       json
// @Produce      json
// @Param        request body models.BorrowerInput true "borrower"
// @Success      200 {object} handler.PredictionResponse
// @Failure      422 {object} handler.ValidationErrorResponse
// @Failure      500 {object} handler.ErrorResponse "artifact corrupt or inference failure"
// @Failure      503 {object} handler.ErrorResponse "model not trained"
// @Router       /api/predict [post]
func (h *Handler) Predict(c *gin.Context) {
	var in models.BorrowerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{Detail: validationDetail(err)})
		return
	}

	result, err := h.Pipeline.Score(h.scoringContext(c), featuresOf(in))
	if err != nil {
		h.scoringError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPredictionResponse(in, result))
}

// PredictBatch godoc
// @Summary      Score several borrowers
// @Description  Scores every borrower in request order. One failure fails the whole batch.
// @Tags         Prediction
// @Accept       json
// @Produce      json
// @Param        request body handler.BatchPredictRequest true "borrowers"
// @Success      200 {object} handler.BatchPredictResponse
// @Failure      422 {object} handler.ValidationErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Failure      503 {object} handler.ErrorResponse
// @Router       /api/predict_batch [post]
func (h *Handler) PredictBatch(c *gin.Context) {
	var req BatchPredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{Detail: validationDetail(err)})
		return
	}

	fs := make([]scoring.Features, len(req.Borrowers))
	for i, b := range req.Borrowers {
		fs[i] = featuresOf(b)
	}
	results, err := h.Pipeline.ScoreBatch(h.scoringContext(c), fs)
	if err != nil {
		h.scoringError(c, err)
		return
	}

	resp := BatchPredictResponse{Predictions: make([]PredictionResponse, len(results)), Total: len(results)}
	for i, r := range results {
		resp.Predictions[i] = newPredictionResponse(req.Borrowers[i], r)
	}
	c.JSON(http.StatusOK, resp)
}

// Health godoc
// @Summary      Health check
// @Description  Reports liveness and whether a trained model artifact is present. Never loads the model.
// @Tags         Health
// @Produce      json
// @Success      200 {object} handler.HealthResponse
// @Router       /api/health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", ModelLoaded: h.Models != nil && h.Models.IsAvailable()})
}
