package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"CreditPathAI/internal/middleware"
	"CreditPathAI/internal/models"
	"CreditPathAI/internal/predictionlog"
	"CreditPathAI/internal/scoring"
	"CreditPathAI/internal/spreadsheet"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type BatchFileResponse struct {
	Predictions []models.BatchPrediction `json:"predictions"`
	Total       int                      `json:"total" example:"1"`
}

type DownloadRequest struct {
	Predictions []models.BatchPrediction `json:"predictions" binding:"required"`
}

// scoringContext tags the request context with the authenticated user, if any.
func (h *Handler) scoringContext(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if u, ok := middleware.CurrentUser(c); ok {
		ctx = predictionlog.WithActor(ctx, u.Email)
	}
	return ctx
}

// PredictBatchFile godoc
// @Summary      Score a spreadsheet
// @Description  Scores every data row of the first sheet of an .xlsx upload. The header row must name the six feature columns.
// @Tags         Batch
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "borrower sheet (.xlsx)"
// @Success      200 {object} handler.BatchFileResponse
// @Failure      400 {object} handler.ErrorResponse "bad file, missing columns or invalid row"
// @Failure      401 {object} handler.ErrorResponse
// @Failure      413 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Failure      503 {object} handler.ErrorResponse
// @Router       /api/batch/predict_batch_file [post]
func (h *Handler) PredictBatchFile(c *gin.Context) {
	header, err := c.FormFile("file")
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "File is too large"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "A spreadsheet must be uploaded in the \"file\" field"})
		return
	}
	if !strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "File must be an Excel file (.xlsx)"})
		return
	}
	if header.Size > h.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "File is too large"})
		return
	}

	f, err := header.Open()
	if err != nil {
		h.Log.Error("PredictBatchFile(): open upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Error processing file"})
		return
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, h.MaxUploadBytes+1))
	if err != nil {
		h.Log.Error("PredictBatchFile(): read upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Error processing file"})
		return
	}

	rows, err := spreadsheet.ReadBorrowers(data)
	if err != nil {
		var missing *spreadsheet.MissingColumnsError
		var cell *spreadsheet.CellError
		switch {
		case errors.As(err, &missing), errors.As(err, &cell):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			h.Log.Warn("PredictBatchFile(): unreadable spreadsheet", zap.Error(err))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "File is not a readable .xlsx spreadsheet"})
		}
		return
	}
	if len(rows) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Spreadsheet has no data rows"})
		return
	}

	fs := make([]scoring.Features, len(rows))
	for i, row := range rows {
		if err := h.validate.Struct(row.Input); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: rowError(row.Number, err)})
			return
		}
		fs[i] = featuresOf(row.Input)
	}

	results, err := h.Pipeline.ScoreBatch(h.scoringContext(c), fs)
	if err != nil {
		h.scoringError(c, err)
		return
	}

	resp := BatchFileResponse{Predictions: make([]models.BatchPrediction, len(results)), Total: len(results)}
	for i, r := range results {
		resp.Predictions[i] = models.BatchPrediction{
			RowNumber:      rows[i].Number,
			Probability:    r.Probability,
			RiskLevel:      string(r.RiskBand),
			Recommendation: string(r.Action),
			LoanAmnt:       r.Features.LoanAmnt,
			AnnualInc:      r.Features.AnnualInc,
			DTI:            r.Features.DTI,
			OpenAcc:        r.Features.OpenAcc,
			CreditAge:      r.Features.CreditAge,
			RevolUtil:      r.Features.RevolUtil,
		}
	}
	h.Log.Info("batch prediction completed", zap.Int("rows", len(results)), zap.String("file", header.Filename))
	c.JSON(http.StatusOK, resp)
}

// rowError turns "body->dti: must be ..." into "row 3: dti: must be ...".
func rowError(number int, err error) string {
	return fmt.Sprintf("row %d: %s", number, strings.ReplaceAll(validationDetail(err), "body->", ""))
}

// DownloadBatchResults godoc
// @Summary      Export batch results
// @Description  Writes scored rows to an .xlsx attachment with a single "Predictions" sheet.
// @Tags         Batch
// @Accept       json
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        request body handler.DownloadRequest true "rows returned by predict_batch_file"
// @Success      200 {file} file
// @Failure      401 {object} handler.ErrorResponse
// @Failure      422 {object} handler.ValidationErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/batch/download_batch_results [post]
func (h *Handler) DownloadBatchResults(c *gin.Context) {
	var req DownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{Detail: validationDetail(err)})
		return
	}

	var buf bytes.Buffer
	if err := spreadsheet.WriteResults(&buf, req.Predictions); err != nil {
		h.Log.Error("DownloadBatchResults(): write xlsx", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Error creating download"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=batch_predictions.xlsx")
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
