package handlers

import (
	"errors"
	"log"
	"net/http"

	request "payplan/internal/adapter/http/dto/request"
	response "payplan/internal/adapter/http/dto/response"
	"payplan/internal/usecase"
	"payplan/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "principal, annual_rate_percent and term_years are required numbers", http.StatusBadRequest)
)

// MortgageHandler serves mortgage installment quotes.
type MortgageHandler struct {
	usecase usecase.IMortgageUseCase
}

func NewMortgageHandler(uc usecase.IMortgageUseCase) *MortgageHandler {
	return &MortgageHandler{usecase: uc}
}

// Quote godoc
// @Summary      Quote a mortgage installment
// @Description  Fixed monthly payment (PMT) for principal, yearly rate in percent and term in years. Optionally returns the amortization schedule.
// @Tags         mortgages
// @Accept       json
// @Produce      json
// @Param        body  body      request.MortgageQuoteRequest  true  "Loan terms"
// @Success      200   {object}  response.MortgageQuoteResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /mortgages/quote [post]
func (h *MortgageHandler) Quote(c *gin.Context) {
	var payload request.MortgageQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	terms := payload.ToLoanTerms()
	quote, err := h.usecase.Quote(c.Request.Context(), terms, payload.IncludeSchedule)
	if err != nil {
		log.Printf("[mortgage][handler] quote failed principal=%v rate=%v years=%v err=%v", terms.Principal, terms.AnnualRatePercent, terms.TermYears, err)
		appErr := mapMortgageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMortgageQuote(quote))
}

func mapMortgageError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLoanTerms):
		return pkg.NewDomainErrorSimple("INVALID_LOAN_TERMS", "Principal and term must be positive finite numbers", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrLoanTermTooLong):
		return pkg.NewDomainErrorSimple("LOAN_TERM_TOO_LONG", err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrLoanOutOfRange):
		return pkg.NewDomainErrorSimple("LOAN_OUT_OF_RANGE", "Principal or rate out of range", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
