package handlers

import (
	"errors"
	"net/http"

	request "payplan/internal/adapter/http/dto/request"
	response "payplan/internal/adapter/http/dto/response"
	"payplan/internal/domain/allocation"
	"payplan/internal/domain/entities"
	"payplan/internal/usecase"
	"payplan/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

var (
	errInvalidAllocationPayload = pkg.NewDomainErrorSimple("INVALID_ALLOCATION_INPUT", "Invalid allocation payload", http.StatusBadRequest)
)

// AllocationHandler backs the live mix form. Nothing here is persisted.
type AllocationHandler struct {
	usecase usecase.IPaymentPlanUseCase
}

func NewAllocationHandler(uc usecase.IPaymentPlanUseCase) *AllocationHandler {
	return &AllocationHandler{usecase: uc}
}

// Preview godoc
// @Summary      Preview a mix allocation
// @Description  Per-method amounts, allocated total, remaining percentage and whether the mix can be submitted.
// @Tags         allocations
// @Accept       json
// @Produce      json
// @Param        body  body      request.AllocationPreviewRequest  true  "Selected methods and typed percentages"
// @Success      200   {object}  response.AllocationSummaryResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /allocations/preview [post]
func (h *AllocationHandler) Preview(c *gin.Context) {
	var payload request.AllocationPreviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAllocationPayload.HTTPStatus, errInvalidAllocationPayload.ToHTTPError())
		return
	}

	methods, err := payload.ResolveMethods()
	if err != nil {
		writeAllocationError(c, err)
		return
	}
	pct, err := payload.ResolvePercentages()
	if err != nil {
		writeAllocationError(c, err)
		return
	}

	summary, err := h.usecase.PreviewAllocation(methods, pct, decimal.NewFromFloat(payload.TotalPlanAmount))
	if err != nil {
		writeAllocationError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAllocationSummary(summary))
}

// Distribute godoc
// @Summary      Split 100% evenly
// @Tags         allocations
// @Accept       json
// @Produce      json
// @Param        body  body      request.AllocationDistributeRequest  true  "Selected methods"
// @Success      200   {object}  response.DistributionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /allocations/distribute [post]
func (h *AllocationHandler) Distribute(c *gin.Context) {
	var payload request.AllocationDistributeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAllocationPayload.HTTPStatus, errInvalidAllocationPayload.ToHTTPError())
		return
	}

	methods, err := payload.ResolveMethods()
	if err != nil {
		writeAllocationError(c, err)
		return
	}
	pct, err := h.usecase.DistributeEvenly(methods)
	if err != nil {
		writeAllocationError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDistribution(dedupe(methods), pct))
}

func writeAllocationError(c *gin.Context, err error) {
	appErr := mapAllocationError(err)
	if appErr == nil {
		appErr = pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapAllocationError maps mix blocking reasons; nil means err is not one.
func mapAllocationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrUnknownFundingMethod):
		return pkg.NewDomainErrorSimple("INVALID_FUNDING_METHOD", "Unknown funding method", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPlanAmount):
		return pkg.NewDomainErrorSimple("INVALID_PLAN_AMOUNT", "Plan amount must not be negative", http.StatusBadRequest)
	case errors.Is(err, allocation.ErrMethodLimitReached):
		return pkg.NewDomainErrorSimple("MIX_METHOD_LIMIT", err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, allocation.ErrTooFewMethods):
		return pkg.NewDomainErrorSimple("MIX_TOO_FEW_METHODS", err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, allocation.ErrIncompleteAllocations):
		return pkg.NewDomainErrorSimple("MIX_INCOMPLETE", err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, allocation.ErrAllocationTotal):
		return pkg.NewDomainErrorSimple("MIX_TOTAL_NOT_100", err.Error(), http.StatusUnprocessableEntity)
	default:
		return nil
	}
}

func dedupe(methods []entities.FundingMethod) []entities.FundingMethod {
	out := make([]entities.FundingMethod, 0, len(methods))
	seen := make(map[entities.FundingMethod]bool, len(methods))
	for _, m := range methods {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}
