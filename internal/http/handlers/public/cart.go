package public

import (
	"net/http"
	"strconv"
	"time"

	"github.com/sugarloaf/bakehouse/internal/http/response"
	"github.com/sugarloaf/bakehouse/internal/models"
	"github.com/sugarloaf/bakehouse/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartLineRequest is a catalog item being added to the cart.
type AddCartLineRequest struct {
	UserID      uint    `json:"user_id" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Quantity    int     `json:"quantity"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

// AddCartLine adds a catalog item to the cart, merging with a same
// titled line.
func (h *Handler) AddCartLine(c *gin.Context) {
	var req AddCartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "title, price and userId are required", err)
		return
	}

	line, err := h.CartService.AddLine(service.AddLineInput{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Price:       models.NewMoneyFromFloat(req.Price),
		Quantity:    req.Quantity,
		Category:    req.Category,
		Image:       req.Image,
	})
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, http.StatusInternalServerError, "add to cart failed")
		return
	}

	response.Created(c, line)
}

// AddCustomCartLine adds a made-to-order cake. Multipart so the
// reference image rides along.
func (h *Handler) AddCustomCartLine(c *gin.Context) {
	userID, err := strconv.ParseUint(c.PostForm("user_id"), 10, 64)
	if err != nil || userID == 0 {
		respondError(c, http.StatusBadRequest, "invalid user id", nil)
		return
	}
	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid price", nil)
		return
	}
	quantity, _ := strconv.Atoi(c.PostForm("quantity"))

	input := service.AddCustomLineInput{
		UserID:        uint(userID),
		Title:         c.PostForm("title"),
		CustomRequest: c.PostForm("custom_request"),
		Price:         models.NewMoneyFromFloat(price),
		Quantity:      quantity,
		Flavor:        c.PostForm("flavor"),
		Frosting:      c.PostForm("frosting"),
		Fillings:      c.PostForm("fillings"),
	}
	if raw := c.PostForm("pickup_time"); raw != "" {
		if t, perr := time.Parse(time.RFC3339, raw); perr == nil {
			input.PickupTime = &t
		}
	}

	if file, ferr := c.FormFile("image"); ferr == nil && file != nil {
		path, serr := h.UploadService.SaveFile(file, "custom-cake")
		if serr != nil {
			respondWithMappedError(c, serr, cartErrorRules, http.StatusInternalServerError, "image upload failed")
			return
		}
		input.ImagePath = path
	}

	line, err := h.CartService.AddCustomLine(input)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, http.StatusInternalServerError, "add to cart failed")
		return
	}

	response.Created(c, line)
}

// ListCartLines returns a user's cart.
func (h *Handler) ListCartLines(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil || userID == 0 {
		respondError(c, http.StatusBadRequest, "invalid user id", nil)
		return
	}

	lines, err := h.CartService.ListByUser(uint(userID))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "load cart failed", err)
		return
	}

	response.Success(c, lines)
}

// ClearCart empties a user's cart. Responds 200 whether or not the
// cart held anything.
func (h *Handler) ClearCart(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil || userID == 0 {
		respondError(c, http.StatusBadRequest, "invalid user id", nil)
		return
	}

	if err := h.CartService.Clear(uint(userID)); err != nil {
		respondError(c, http.StatusInternalServerError, "clear cart failed", err)
		return
	}

	response.SuccessWithMsg(c, "cart cleared", nil)
}

// ClearCartStrict empties a user's cart but 404s when it was already
// empty.
func (h *Handler) ClearCartStrict(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil || userID == 0 {
		respondError(c, http.StatusBadRequest, "invalid user id", nil)
		return
	}

	if err := h.CartService.ClearStrict(uint(userID)); err != nil {
		respondWithMappedError(c, err, cartErrorRules, http.StatusInternalServerError, "clear cart failed")
		return
	}

	response.SuccessWithMsg(c, "cart cleared", nil)
}

// DeleteCartLine removes one line.
func (h *Handler) DeleteCartLine(c *gin.Context) {
	lineID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
	if err != nil || lineID == 0 {
		respondError(c, http.StatusBadRequest, "invalid cart item id", nil)
		return
	}

	if err := h.CartService.DeleteLine(uint(lineID)); err != nil {
		respondWithMappedError(c, err, cartErrorRules, http.StatusInternalServerError, "delete cart item failed")
		return
	}

	response.SuccessWithMsg(c, "cart item removed", nil)
}

// IncreaseCartLine bumps a line's quantity by one.
func (h *Handler) IncreaseCartLine(c *gin.Context) {
	lineID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
	if err != nil || lineID == 0 {
		respondError(c, http.StatusBadRequest, "invalid cart item id", nil)
		return
	}

	line, err := h.CartService.IncreaseQuantity(uint(lineID))
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, http.StatusInternalServerError, "update quantity failed")
		return
	}

	response.Success(c, line)
}

// DecreaseCartLine drops a line's quantity by one, deleting the line
// when it reaches zero.
func (h *Handler) DecreaseCartLine(c *gin.Context) {
	lineID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
	if err != nil || lineID == 0 {
		respondError(c, http.StatusBadRequest, "invalid cart item id", nil)
		return
	}

	line, err := h.CartService.DecreaseQuantity(uint(lineID))
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, http.StatusInternalServerError, "update quantity failed")
		return
	}

	if line == nil {
		response.SuccessWithMsg(c, "cart item removed", nil)
		return
	}
	response.Success(c, line)
}
