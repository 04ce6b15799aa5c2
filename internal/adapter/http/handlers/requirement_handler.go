package handlers

import (
	"errors"
	"net/http"
	"strconv"

	response "procuredesk/internal/adapter/http/dto/response"
	"procuredesk/internal/usecase"
	"procuredesk/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRequirementParam = pkg.NewDomainErrorSimple("INVALID_REQUEST", "req_id must be a positive integer", http.StatusBadRequest)

// RequirementHandler serves the operator-facing read and re-run endpoints.
//
// The scheduler drives the pipeline automatically; these endpoints exist
// for inspection and for manually re-running a requirement whose automatic
// run failed (a failed id is terminal for the scheduler's process lifetime).
type RequirementHandler struct {
	usecase usecase.IEvaluationUseCase
}

func NewRequirementHandler(uc usecase.IEvaluationUseCase) *RequirementHandler {
	return &RequirementHandler{usecase: uc}
}

// GetRequirementContext returns the requirement terms plus items and
// quotations grouped by item, exactly as the evaluator would see them.
func (h *RequirementHandler) GetRequirementContext(c *gin.Context) {
	reqID, ok := parseRequirementID(c)
	if !ok {
		return
	}

	evalCtx, err := h.usecase.BuildContext(c.Request.Context(), reqID)
	if err != nil {
		appErr := mapEvaluationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEvaluationContext(evalCtx))
}

// EvaluateRequirement runs the full evaluation pipeline on demand.
func (h *RequirementHandler) EvaluateRequirement(c *gin.Context) {
	reqID, ok := parseRequirementID(c)
	if !ok {
		return
	}

	report, err := h.usecase.EvaluateRequirement(c.Request.Context(), reqID)
	if err != nil {
		appErr := mapEvaluationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEvaluationReport(report))
}

// parseRequirementID rejects malformed ids at the HTTP boundary so no
// store query is ever issued for them.
func parseRequirementID(c *gin.Context) (int64, bool) {
	raw := c.Param("req_id")
	reqID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || reqID <= 0 {
		c.JSON(errInvalidRequirementParam.HTTPStatus, errInvalidRequirementParam.ToHTTPError())
		return 0, false
	}
	return reqID, true
}

func mapEvaluationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequirementID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "req_id must be a positive integer", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequirementNotFound):
		return pkg.NewDomainErrorSimple("REQUIREMENT_NOT_FOUND", "Requirement not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEvaluationFailed),
		errors.Is(err, usecase.ErrInvalidVerdict),
		errors.Is(err, usecase.ErrScoreOutOfRange):
		return pkg.NewDomainError("EVALUATION_FAILED", "Vendor evaluation failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
