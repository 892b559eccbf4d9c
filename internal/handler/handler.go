/**
* Name:         handler.go
* Description:  Shared wiring for the gin HTTP handlers
* Workflow:     scoring, spreadsheet batch, auth, prediction history
 */
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"CreditPathAI/internal/auth"
	"CreditPathAI/internal/metrics"
	"CreditPathAI/internal/model"
	"CreditPathAI/internal/scoring"
	"CreditPathAI/internal/storage"
)

// ModelStatus reports whether a trained artifact is present.
type ModelStatus interface {
	IsAvailable() bool
}

// Deps are the collaborators every handler draws on.
type Deps struct {
	Pipeline       *scoring.Pipeline
	Models         ModelStatus
	Store          *storage.Store
	Tokens         *auth.TokenManager
	Metrics        *metrics.Metrics
	Log            *zap.Logger
	MaxUploadBytes int64
}

type Handler struct {
	Deps
	validate *validator.Validate
}

func New(d Deps) *Handler {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.MaxUploadBytes <= 0 {
		d.MaxUploadBytes = 10 << 20
	}
	v := validator.New()
	v.SetTagName("binding")
	v.RegisterTagNameFunc(jsonFieldName)
	return &Handler{Deps: d, validate: v}
}

type ErrorResponse struct {
	Error string `json:"error" example:"error cause and description"`
}

type ValidationErrorResponse struct {
	Detail string `json:"detail" example:"body->dti: must be less than or equal to 100"`
}

var registerOnce sync.Once

// useJSONFieldNames makes gin's validator report json names instead of Go field names.
func useJSONFieldNames() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(jsonFieldName)
		}
	})
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// validationDetail renders binding errors as "body->field: message; ...".
func validationDetail(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s: %s", fieldPath(fe.Namespace()), fieldMessage(fe)))
		}
		return strings.Join(msgs, "; ")
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf("body->%s: must be of type %s", strings.ReplaceAll(typeErr.Field, ".", "->"), typeErr.Type)
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return fmt.Sprintf("body: invalid JSON at offset %d", syntaxErr.Offset)
	}
	return "body: " + err.Error()
}

// fieldPath turns "BatchPredictRequest.borrowers[0].dti" into "body->borrowers->0->dti".
func fieldPath(namespace string) string {
	_, rest, ok := strings.Cut(namespace, ".")
	if !ok {
		rest = namespace
	}
	r := strings.NewReplacer("[", ".", "]", "")
	return "body->" + strings.ReplaceAll(r.Replace(rest), ".", "->")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "min":
		return "must contain at least " + fe.Param() + " item(s)"
	case "email":
		return "must be a valid email address"
	default:
		return "failed on " + fe.Tag()
	}
}

// scoringError maps pipeline failures onto responses that tell a deployment
// fault apart from a per-request one.
func (h *Handler) scoringError(c *gin.Context, err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		h.Log.Warn("scoring abandoned", zap.Error(err))
		c.JSON(http.StatusRequestTimeout, ErrorResponse{Error: "Request was cancelled before scoring finished"})
		return
	}

	kind := "inference"
	status := http.StatusInternalServerError
	msg := "Prediction error"
	switch {
	case eris.Is(err, model.ErrArtifactMissing):
		kind, status = "artifact_missing", http.StatusServiceUnavailable
		msg = "Model is not trained yet. Run the train command to create the model artifact."
	case eris.Is(err, model.ErrArtifactCorrupt):
		kind = "artifact_corrupt"
		msg = "Model artifact is corrupt or incompatible. Retrain the model."
	}
	if h.Metrics != nil {
		h.Metrics.ScoringErrors.WithLabelValues(kind).Inc()
	}
	h.Log.Error("scoring failed", zap.String("kind", kind), zap.Error(err))
	c.JSON(status, ErrorResponse{Error: msg})
}
