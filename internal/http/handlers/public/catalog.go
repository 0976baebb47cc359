package public

import (
	"net/http"
	"strings"

	"github.com/sugarloaf/bakehouse/internal/http/response"
	"github.com/sugarloaf/bakehouse/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListItems returns the catalog, optionally narrowed by category or search.
func (h *Handler) ListItems(c *gin.Context) {
	filter := repository.ItemListFilter{
		Category: strings.TrimSpace(c.Query("category")),
		Search:   strings.TrimSpace(c.Query("search")),
	}

	items, err := h.ItemService.List(filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "load items failed", err)
		return
	}

	response.Success(c, gin.H{"data": items})
}
