package public

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sugarloaf/bakehouse/internal/service"

	"github.com/gin-gonic/gin"
)

const oauthStateCookie = "oauth_state"

// GoogleLogin redirects to Google's consent page. The state nonce is
// pinned in a short-lived cookie for the callback to compare.
func (h *Handler) GoogleLogin(c *gin.Context) {
	authURL, state, err := h.OAuthService.AuthCodeURL()
	if err != nil {
		if errors.Is(err, service.ErrOAuthNotEnabled) {
			respondError(c, http.StatusNotFound, "google sign-in is not enabled", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "google sign-in unavailable", err)
		return
	}

	c.SetCookie(oauthStateCookie, state, 600, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, authURL)
}

// GoogleCallback exchanges the code, upserts the account and hands the
// browser back to the frontend with the token in the query string.
func (h *Handler) GoogleCallback(c *gin.Context) {
	expectedState, _ := c.Cookie(oauthStateCookie)
	c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

	user, err := h.OAuthService.HandleCallback(c.Request.Context(), c.Query("code"), c.Query("state"), expectedState)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOAuthStateMismatch):
			respondError(c, http.StatusBadRequest, "state mismatch", nil)
		case errors.Is(err, service.ErrOAuthNotEnabled):
			respondError(c, http.StatusNotFound, "google sign-in is not enabled", nil)
		default:
			respondError(c, http.StatusInternalServerError, "google sign-in failed", err)
		}
		return
	}

	token, _, err := h.UserAuthService.GenerateUserJWT(user)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "token generation failed", err)
		return
	}

	redirect := h.Config.FrontendURL + "/oauth/callback" +
		"?token=" + url.QueryEscape(token) +
		"&name=" + url.QueryEscape(user.Name) +
		"&id=" + strconv.FormatUint(uint64(user.ID), 10)
	c.Redirect(http.StatusTemporaryRedirect, redirect)
}
