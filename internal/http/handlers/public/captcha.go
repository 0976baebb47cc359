package public

import (
	"errors"
	"net/http"

	"github.com/sugarloaf/bakehouse/internal/http/response"
	"github.com/sugarloaf/bakehouse/internal/service"

	"github.com/gin-gonic/gin"
)

// GetImageCaptcha generates an image captcha challenge.
func (h *Handler) GetImageCaptcha(c *gin.Context) {
	if h.CaptchaService == nil {
		respondError(c, http.StatusInternalServerError, "captcha unavailable", service.ErrCaptchaConfig)
		return
	}

	challenge, err := h.CaptchaService.GenerateImageChallenge()
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCaptchaConfig):
			respondError(c, http.StatusBadRequest, "captcha unavailable", nil)
		default:
			respondError(c, http.StatusInternalServerError, "captcha generation failed", err)
		}
		return
	}

	response.Success(c, gin.H{
		"captcha_id":   challenge.CaptchaID,
		"image_base64": challenge.ImageBase64,
	})
}
