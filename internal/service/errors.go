package service

import "errors"

// Sentinel errors shared across services. Handlers map these to HTTP
// statuses via errors.Is.
var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrOAuthNotEnabled    = errors.New("oauth provider not enabled")
	ErrOAuthStateMismatch = errors.New("oauth state mismatch")

	ErrCaptchaRequired     = errors.New("captcha required")
	ErrCaptchaInvalid      = errors.New("captcha invalid")
	ErrCaptchaConfig       = errors.New("captcha config invalid")
	ErrCaptchaVerifyFailed = errors.New("captcha verify failed")

	ErrCartLineNotFound = errors.New("cart line not found")
	ErrCartEmpty        = errors.New("cart is empty")
	ErrInvalidCartLine  = errors.New("invalid cart line")
	ErrInvalidQuantity  = errors.New("invalid quantity")

	ErrOrderNotFound    = errors.New("order not found")
	ErrInvalidOrder     = errors.New("invalid order")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrOrderIDExhausted = errors.New("order id space exhausted")

	ErrPaymentLinkFailed = errors.New("payment link creation failed")

	ErrUploadTooLarge = errors.New("upload exceeds size limit")
	ErrUploadType     = errors.New("upload type not allowed")
)
