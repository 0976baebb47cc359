package public

import (
	"io"
	"net/http"

	handlershared "github.com/sugarloaf/bakehouse/internal/http/handlers/shared"
	"github.com/sugarloaf/bakehouse/internal/http/response"

	"github.com/gin-gonic/gin"
)

// CreatePaymentLink places the order and requests a hosted Xendit
// invoice for it. The order stays Pending if the provider call fails.
func (h *Handler) CreatePaymentLink(c *gin.Context) {
	var req SaveOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "order lines, total and pickup time are required", err)
		return
	}

	order, err := h.PaymentService.CreateOrderWithPaymentLink(c.Request.Context(), req.toServiceInput())
	if err != nil {
		rules := append(append([]mappedHandlerError{}, orderErrorRules...), paymentErrorRules...)
		respondWithMappedError(c, err, rules, http.StatusInternalServerError, "create payment link failed")
		return
	}

	response.Created(c, gin.H{
		"order_id":     order.OrderID,
		"checkout_url": order.PaymentLink,
	})
}

// XenditWebhook applies an invoice callback. Always acknowledged with
// 200 so the provider stops retrying; the payload is not signature
// checked.
func (h *Handler) XenditWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondError(c, http.StatusBadRequest, "unreadable payload", err)
		return
	}

	if err := h.PaymentService.HandleWebhook(body); err != nil {
		handlershared.RequestLog(c).Warnw("payment_webhook_error", "error", err)
	}
	response.Success(c, gin.H{"received": true})
}
