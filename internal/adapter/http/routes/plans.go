package routes

import (
	"payplan/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathMortgages   = "/mortgages"
	PathAllocations = "/allocations"
	PathPlans       = "/plans"
	PathMembers     = "/members"
	PathPayments    = "/payments"
)

func addMortgageRoutes(rg *gin.RouterGroup, h *handlers.MortgageHandler) {
	mortgages := rg.Group(PathMortgages)
	{
		mortgages.POST("/quote", h.Quote)
	}
}

func addAllocationRoutes(rg *gin.RouterGroup, h *handlers.AllocationHandler) {
	allocations := rg.Group(PathAllocations)
	{
		allocations.POST("/preview", h.Preview)
		allocations.POST("/distribute", h.Distribute)
	}
}

func addPlanRoutes(rg *gin.RouterGroup, planHandler *handlers.PaymentPlanHandler, paymentHandler *handlers.PlanPaymentHandler) {
	plans := rg.Group(PathPlans)
	{
		plans.POST("", planHandler.CreatePlan)
		plans.GET("/:id", planHandler.GetPlan)
		plans.PUT("/:id/allocations", planHandler.UpdateMixAllocations)
		plans.PATCH("/:id/approve", planHandler.ApprovePlan)
		plans.PATCH("/:id/reject", planHandler.RejectPlan)
		plans.PATCH("/:id/cancel", planHandler.CancelPlan)

		plans.POST("/:id/payments", paymentHandler.PayCashPortion)
		plans.GET("/:id/payments", paymentHandler.ListPlanPayments)
	}

	rg.GET(PathMembers+"/:member_id/plans", planHandler.ListMemberPlans)
	rg.GET(PathPayments+"/:payment_id", paymentHandler.GetPayment)
}
