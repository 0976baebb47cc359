package shared

import (
	"strings"

	"github.com/sugarloaf/bakehouse/internal/service"
)

// CaptchaPayloadRequest is the captcha proof embedded in guarded requests.
type CaptchaPayloadRequest struct {
	CaptchaID      string `json:"captcha_id"`
	CaptchaCode    string `json:"captcha_code"`
	RecaptchaToken string `json:"recaptcha_token"`
}

// ToServicePayload converts to the service layer payload.
func (r CaptchaPayloadRequest) ToServicePayload() service.CaptchaVerifyPayload {
	return service.CaptchaVerifyPayload{
		CaptchaID:      strings.TrimSpace(r.CaptchaID),
		CaptchaCode:    strings.TrimSpace(r.CaptchaCode),
		RecaptchaToken: strings.TrimSpace(r.RecaptchaToken),
	}
}
