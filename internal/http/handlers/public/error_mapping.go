package public

import (
	"errors"
	"net/http"

	handlershared "github.com/sugarloaf/bakehouse/internal/http/handlers/shared"
	"github.com/sugarloaf/bakehouse/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError binds a service error to an HTTP response.
type mappedHandlerError struct {
	target  error
	status  int
	message string
}

func respondError(c *gin.Context, status int, msg string, err error) {
	handlershared.RespondError(c, status, msg, err)
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackStatus int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.status, rule.message, nil)
			return
		}
	}
	respondError(c, fallbackStatus, fallbackMsg, err)
}

var captchaErrorRules = []mappedHandlerError{
	{target: service.ErrCaptchaRequired, status: http.StatusBadRequest, message: "captcha required"},
	{target: service.ErrCaptchaInvalid, status: http.StatusBadRequest, message: "captcha invalid"},
	{target: service.ErrCaptchaConfig, status: http.StatusInternalServerError, message: "captcha misconfigured"},
	{target: service.ErrCaptchaVerifyFailed, status: http.StatusInternalServerError, message: "captcha verification failed"},
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidCartLine, status: http.StatusBadRequest, message: "title, price and userId are required"},
	{target: service.ErrInvalidQuantity, status: http.StatusBadRequest, message: "invalid quantity"},
	{target: service.ErrCartLineNotFound, status: http.StatusNotFound, message: "cart item not found"},
	{target: service.ErrCartEmpty, status: http.StatusNotFound, message: "cart is already empty"},
	{target: service.ErrUploadTooLarge, status: http.StatusBadRequest, message: "image too large"},
	{target: service.ErrUploadType, status: http.StatusBadRequest, message: "image type not allowed"},
}

var orderErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidOrder, status: http.StatusBadRequest, message: "order lines are required"},
	{target: service.ErrNotFound, status: http.StatusNotFound, message: "user not found"},
	{target: service.ErrOrderNotFound, status: http.StatusNotFound, message: "order not found"},
	{target: service.ErrInvalidStatus, status: http.StatusBadRequest, message: "invalid order status"},
	{target: service.ErrOrderIDExhausted, status: http.StatusInternalServerError, message: "order number allocation failed"},
}

var paymentErrorRules = []mappedHandlerError{
	{target: service.ErrPaymentLinkFailed, status: http.StatusInternalServerError, message: "payment provider unavailable"},
}
