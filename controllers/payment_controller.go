package controllers

import (
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/middlewares"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/pkg/resp"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/services"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/utils"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	Payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{Payments: payments}
}

// POST /api/payments/verify-payment
func (pc *PaymentController) Verify(c *gin.Context) {
	defer func() { middlewares.RecordOrderOperation("verify_payment", statusOK(c)) }()

	var req services.VerifyPaymentInput
	if !bindJSON(c, &req) {
		return
	}
	if err := pc.Payments.Verify(c.Request.Context(), utils.CurrentUserID(c), req); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Payment verified successfully"})
}
