package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"CreditPathAI/internal/models"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

type HistoryResponse struct {
	Predictions []models.PredictionRecord `json:"predictions"`
}

// ListPredictions godoc
// @Summary      Prediction log
// @Description  Returns the most recent scored records, newest first.
// @Tags         Prediction
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "maximum rows (1-500)" default(50)
// @Success      200 {object} handler.HistoryResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      401 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/predictions [get]
func (h *Handler) ListPredictions(c *gin.Context) {
	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = min(n, maxHistoryLimit)
	}

	records, err := h.Store.ListPredictions(limit)
	if err != nil {
		h.Log.Error("ListPredictions(): query", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Database error"})
		return
	}
	c.JSON(http.StatusOK, HistoryResponse{Predictions: records})
}
