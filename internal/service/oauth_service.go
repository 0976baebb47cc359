package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sugarloaf/bakehouse/internal/config"
	"github.com/sugarloaf/bakehouse/internal/constants"
	"github.com/sugarloaf/bakehouse/internal/logger"
	"github.com/sugarloaf/bakehouse/internal/models"
	"github.com/sugarloaf/bakehouse/internal/repository"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// OAuthService runs the Google sign-in flow and links Google accounts
// to local users.
type OAuthService struct {
	cfg      *config.Config
	userRepo repository.UserRepository
	oauthCfg *oauth2.Config
}

// NewOAuthService creates the OAuth service. Returns a service with a
// nil oauth config when Google sign-in is disabled.
func NewOAuthService(cfg *config.Config, userRepo repository.UserRepository) *OAuthService {
	s := &OAuthService{cfg: cfg, userRepo: userRepo}
	if cfg.OAuth.Google.Enabled {
		s.oauthCfg = &oauth2.Config{
			ClientID:     cfg.OAuth.Google.ClientID,
			ClientSecret: cfg.OAuth.Google.ClientSecret,
			RedirectURL:  cfg.OAuth.Google.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		}
	}
	return s
}

// Enabled reports whether Google sign-in is configured.
func (s *OAuthService) Enabled() bool {
	return s != nil && s.oauthCfg != nil
}

// AuthCodeURL builds the consent page URL plus the state to pin in a
// cookie for the callback.
func (s *OAuthService) AuthCodeURL() (string, string, error) {
	if !s.Enabled() {
		return "", "", ErrOAuthNotEnabled
	}
	state, err := randomState()
	if err != nil {
		return "", "", err
	}
	return s.oauthCfg.AuthCodeURL(state), state, nil
}

type googleUserinfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// HandleCallback exchanges the authorization code, resolves the Google
// profile and upserts the matching user.
func (s *OAuthService) HandleCallback(ctx context.Context, code, state, expectedState string) (*models.User, error) {
	if !s.Enabled() {
		return nil, ErrOAuthNotEnabled
	}
	if expectedState == "" || state != expectedState {
		return nil, ErrOAuthStateMismatch
	}

	token, err := s.oauthCfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("oauth code exchange failed: %w", err)
	}

	info, err := s.fetchUserinfo(ctx, token)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(info.ID) == "" || strings.TrimSpace(info.Email) == "" {
		return nil, ErrInvalidCredentials
	}

	return s.upsertGoogleUser(info)
}

func (s *OAuthService) fetchUserinfo(ctx context.Context, token *oauth2.Token) (*googleUserinfo, error) {
	client := s.oauthCfg.Client(ctx, token)
	resp, err := client.Get(googleUserinfoURL)
	if err != nil {
		return nil, fmt.Errorf("fetch google userinfo failed: %w", err)
	}
	defer resp.Body.Close()

	var info googleUserinfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode google userinfo failed: %w", err)
	}
	return &info, nil
}

// upsertGoogleUser matches by Google ID first, then links by email,
// then creates a new account.
func (s *OAuthService) upsertGoogleUser(info *googleUserinfo) (*models.User, error) {
	normalized, err := normalizeEmail(info.Email)
	if err != nil {
		return nil, err
	}
	now := time.Now()

	user, err := s.userRepo.GetByGoogleID(info.ID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		user.GoogleName = info.Name
		if info.Picture != "" {
			user.Image = info.Picture
		}
		user.LastLoginAt = &now
		if err := s.userRepo.Update(user); err != nil {
			return nil, err
		}
		return user, nil
	}

	user, err = s.userRepo.GetByEmail(normalized)
	if err != nil {
		return nil, err
	}
	if user != nil {
		user.GoogleID = info.ID
		user.GoogleName = info.Name
		user.LastLoginAt = &now
		if err := s.userRepo.Update(user); err != nil {
			return nil, err
		}
		logger.Infow("google_account_linked", "user_id", user.ID)
		return user, nil
	}

	user = &models.User{
		Name:        info.Name,
		GoogleName:  info.Name,
		Email:       normalized,
		GoogleID:    info.ID,
		AuthType:    constants.AuthTypeGoogle,
		Role:        constants.UserRoleCustomer,
		LastLoginAt: &now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if info.Picture != "" {
		user.Image = info.Picture
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	logger.Infow("google_account_created", "user_id", user.ID)
	return user, nil
}

func randomState() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
