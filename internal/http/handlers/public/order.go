package public

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sugarloaf/bakehouse/internal/http/handlers/shared"
	"github.com/sugarloaf/bakehouse/internal/http/response"
	"github.com/sugarloaf/bakehouse/internal/models"
	"github.com/sugarloaf/bakehouse/internal/repository"
	"github.com/sugarloaf/bakehouse/internal/service"

	"github.com/gin-gonic/gin"
)

// SaveOrderRequest is an order being placed from the cart.
type SaveOrderRequest struct {
	UserID         uint                     `json:"user_id" binding:"required"`
	Lines          []service.OrderLineInput `json:"lines" binding:"required"`
	TotalAmount    float64                  `json:"total_amount" binding:"required"`
	Quantity       int                      `json:"quantity"`
	PickupDateTime time.Time                `json:"pickup_date_time" binding:"required"`
	PaymentMethod  string                   `json:"payment_method"`
}

func (r SaveOrderRequest) toServiceInput() service.CreateOrderInput {
	return service.CreateOrderInput{
		UserID:         r.UserID,
		Lines:          r.Lines,
		TotalAmount:    models.NewMoneyFromFloat(r.TotalAmount),
		Quantity:       r.Quantity,
		PickupDateTime: r.PickupDateTime,
		PaymentMethod:  r.PaymentMethod,
	}
}

// SaveOrder places an order without a payment link (pay at pickup).
func (h *Handler) SaveOrder(c *gin.Context) {
	var req SaveOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "order lines, total and pickup time are required", err)
		return
	}

	order, err := h.OrderService.CreateOrder(req.toServiceInput())
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, http.StatusInternalServerError, "create order failed")
		return
	}

	response.Created(c, gin.H{
		"order_id": order.OrderID,
		"order":    order,
	})
}

// ListOrders returns orders for the staff dashboard, newest first.
// Pagination kicks in only when page_size is given.
func (h *Handler) ListOrders(c *gin.Context) {
	pageSize, _ := strconv.Atoi(c.Query("page_size"))
	if pageSize <= 0 {
		orders, err := h.OrderService.List()
		if err != nil {
			respondError(c, http.StatusInternalServerError, "load orders failed", err)
			return
		}
		response.Success(c, orders)
		return
	}

	page, _ := strconv.Atoi(c.Query("page"))
	page, pageSize = shared.NormalizePagination(page, pageSize)
	orders, err := h.OrderService.ListFiltered(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   strings.TrimSpace(c.Query("status")),
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "load orders failed", err)
		return
	}
	response.Success(c, orders)
}

// ListUserOrders returns one customer's orders.
func (h *Handler) ListUserOrders(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil || userID == 0 {
		respondError(c, http.StatusBadRequest, "invalid user id", nil)
		return
	}

	orders, err := h.OrderService.ListByUser(uint(userID))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "load orders failed", err)
		return
	}
	response.Success(c, orders)
}

// UpdateOrderRequest moves an order to a new status.
type UpdateOrderRequest struct {
	Status       string `json:"status" binding:"required"`
	CancelReason string `json:"cancel_reason"`
}

// UpdateOrder sets an order's status. Staff only.
func (h *Handler) UpdateOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "invalid order id", nil)
		return
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "status is required", err)
		return
	}

	order, err := h.OrderService.UpdateStatus(uint(id), req.Status, req.CancelReason)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, http.StatusInternalServerError, "update order failed")
		return
	}

	response.Success(c, order)
}
