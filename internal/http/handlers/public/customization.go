package public

import (
	"net/http"

	"github.com/sugarloaf/bakehouse/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListCustomizationPrices returns the custom cake price rules.
func (h *Handler) ListCustomizationPrices(c *gin.Context) {
	prices, err := h.CustomizationService.ListPrices(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "load customization prices failed", err)
		return
	}
	response.Success(c, prices)
}
