package public

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sugarloaf/bakehouse/internal/constants"
	handlershared "github.com/sugarloaf/bakehouse/internal/http/handlers/shared"
	"github.com/sugarloaf/bakehouse/internal/http/response"
	"github.com/sugarloaf/bakehouse/internal/service"

	"github.com/gin-gonic/gin"
)

// UserRegisterRequest is the signup payload.
type UserRegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserRegister creates a local account.
func (h *Handler) UserRegister(c *gin.Context) {
	var req UserRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "email and password are required", err)
		return
	}

	user, err := h.UserAuthService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			respondError(c, http.StatusBadRequest, "invalid email", nil)
		case errors.Is(err, service.ErrEmailExists):
			respondError(c, http.StatusBadRequest, "email already registered", nil)
		default:
			respondError(c, http.StatusInternalServerError, "registration failed", err)
		}
		return
	}

	response.Created(c, user)
}

// UserLoginRequest is the login payload. The captcha fields sit beside
// the credentials; captchaToken maps to the recaptcha proof.
type UserLoginRequest struct {
	Email          string                              `json:"email" binding:"required"`
	Password       string                              `json:"password" binding:"required"`
	CaptchaToken   string                              `json:"captchaToken"`
	CaptchaPayload handlershared.CaptchaPayloadRequest `json:"captcha_payload"`
}

// UserLogin verifies the captcha first, then the credentials.
func (h *Handler) UserLogin(c *gin.Context) {
	var req UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "email and password are required", err)
		return
	}

	payload := req.CaptchaPayload.ToServicePayload()
	if payload.RecaptchaToken == "" {
		payload.RecaptchaToken = req.CaptchaToken
	}
	if h.CaptchaService != nil {
		if captchaErr := h.CaptchaService.Verify(constants.CaptchaSceneLogin, payload, c.ClientIP()); captchaErr != nil {
			respondWithMappedError(c, captchaErr, captchaErrorRules, http.StatusInternalServerError, "captcha verification failed")
			return
		}
	}

	user, token, expiresAt, err := h.UserAuthService.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidEmail):
			respondError(c, http.StatusBadRequest, "invalid email or password", nil)
		default:
			respondError(c, http.StatusInternalServerError, "login failed", err)
		}
		return
	}

	response.Success(c, gin.H{
		"token":      token,
		"expires_at": expiresAt.Format("2006-01-02T15:04:05Z07:00"),
		"user":       user,
	})
}

// VerifyTokenRequest carries a token to validate.
type VerifyTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// VerifyToken validates a JWT and returns its subject.
func (h *Handler) VerifyToken(c *gin.Context) {
	var req VerifyTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "token is required", err)
		return
	}

	user, err := h.UserAuthService.VerifyToken(req.Token)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "invalid token", nil)
		return
	}

	response.Success(c, gin.H{
		"valid":   true,
		"decoded": user,
	})
}

// GetUser returns a user's profile.
func (h *Handler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "invalid user id", nil)
		return
	}

	user, err := h.UserAuthService.GetUserByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "user not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "load user failed", err)
		return
	}

	response.Success(c, user)
}

// UpdateUser updates name and profile image. Multipart so the image
// can ride along.
func (h *Handler) UpdateUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "invalid user id", nil)
		return
	}

	var name, image *string
	if v, ok := c.GetPostForm("name"); ok {
		name = &v
	}
	if file, ferr := c.FormFile("image"); ferr == nil && file != nil {
		path, serr := h.UploadService.SaveFile(file, "profile")
		if serr != nil {
			respondWithMappedError(c, serr, cartErrorRules, http.StatusInternalServerError, "image upload failed")
			return
		}
		image = &path
	}

	user, err := h.UserAuthService.UpdateProfile(uint(id), name, image)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "user not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "update user failed", err)
		return
	}

	response.Success(c, user)
}
