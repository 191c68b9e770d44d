package handlers

import (
	"net/http"

	"clinicbook/models"
	"clinicbook/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes the slip verification endpoint.
type PaymentHandler struct {
	Service payment.SlipVerificationService
	Logger  *zap.Logger
}

func NewPaymentHandler(svc payment.SlipVerificationService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Service: svc, Logger: logger}
}

// VerifySlipHandler handles POST /api/payments/slip/verify.
func (h *PaymentHandler) VerifySlipHandler(c *gin.Context) {
	var input models.SlipVerifyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "failed",
			"message": "bookingID, refNbr and amount are required",
		})
		return
	}

	appt, err := h.Service.VerifySlip(c.Request.Context(), input)
	if err != nil {
		h.renderVerifyError(c, input, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "verified",
		"message": "Payment verified successfully",
		"data":    appt,
	})
}

func (h *PaymentHandler) renderVerifyError(c *gin.Context, input models.SlipVerifyInput, err error) {
	verr, ok := payment.AsVerifyError(err)
	if !ok {
		h.Logger.Error("slip verification failed with unexpected error",
			zap.String("bookingId", input.BookingID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "failed",
			"message": "slip verification failed",
		})
		return
	}

	h.Logger.Warn("slip verification failed",
		zap.String("bookingId", input.BookingID),
		zap.String("refNbr", input.RefNbr),
		zap.String("code", verr.Code),
		zap.Error(err))

	resp := gin.H{
		"status":  "failed",
		"message": verr.Message,
	}
	if verr.Debug != nil {
		resp["debug"] = verr.Debug
	}
	c.JSON(verr.Status, resp)
}
