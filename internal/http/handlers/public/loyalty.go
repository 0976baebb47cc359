package public

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sugarloaf/bakehouse/internal/http/response"
	"github.com/sugarloaf/bakehouse/internal/service"

	"github.com/gin-gonic/gin"
)

// GetLoyalty returns a customer's loyalty standing.
func (h *Handler) GetLoyalty(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil || userID == 0 {
		respondError(c, http.StatusBadRequest, "invalid user id", nil)
		return
	}

	record, err := h.LoyaltyService.GetStatus(uint(userID))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "loyalty record not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "load loyalty failed", err)
		return
	}

	response.Success(c, gin.H{
		"order_count": record.OrderCount,
		"status":      record.Status,
	})
}
