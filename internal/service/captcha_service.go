package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sugarloaf/bakehouse/internal/config"
	"github.com/sugarloaf/bakehouse/internal/constants"

	"github.com/mojocn/base64Captcha"
)

// CaptchaVerifyPayload carries whichever proof the active provider needs.
type CaptchaVerifyPayload struct {
	CaptchaID      string `json:"captcha_id"`
	CaptchaCode    string `json:"captcha_code"`
	RecaptchaToken string `json:"recaptcha_token"`
}

// CaptchaImageChallenge is a generated image challenge.
type CaptchaImageChallenge struct {
	CaptchaID   string `json:"captcha_id"`
	ImageBase64 string `json:"image_base64"`
}

type recaptchaVerifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// CaptchaService verifies human checks before credential handling.
// It wraps the generated image captcha and Google reCAPTCHA behind one
// Verify call, gated per scene.
type CaptchaService struct {
	cfg config.CaptchaConfig

	httpClient *http.Client

	mu                  sync.Mutex
	imageStore          base64Captcha.Store
	imageStoreMaxStore  int
	imageStoreExpireSec int
}

// NewCaptchaService creates the captcha service.
func NewCaptchaService(cfg config.CaptchaConfig) *CaptchaService {
	return &CaptchaService{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 2 * time.Second,
		},
	}
}

// SceneEnabled reports whether the scene requires verification.
func (s *CaptchaService) SceneEnabled(scene string) bool {
	if s == nil {
		return false
	}
	if strings.EqualFold(s.cfg.Provider, constants.CaptchaProviderNone) {
		return false
	}
	switch scene {
	case constants.CaptchaSceneLogin:
		return s.cfg.Scenes.Login
	default:
		return false
	}
}

// GenerateImageChallenge produces an image challenge for the image provider.
func (s *CaptchaService) GenerateImageChallenge() (*CaptchaImageChallenge, error) {
	if !strings.EqualFold(s.cfg.Provider, constants.CaptchaProviderImage) {
		return nil, ErrCaptchaConfig
	}

	store := s.ensureImageStore()
	driver := base64Captcha.NewDriverString(
		s.cfg.Image.Height,
		s.cfg.Image.Width,
		s.cfg.Image.NoiseCount,
		s.cfg.Image.ShowLine,
		s.cfg.Image.Length,
		"0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ",
		nil,
		base64Captcha.DefaultEmbeddedFonts,
		nil,
	)
	captcha := base64Captcha.NewCaptcha(driver, store)
	id, b64s, _, genErr := captcha.Generate()
	if genErr != nil {
		return nil, genErr
	}

	return &CaptchaImageChallenge{
		CaptchaID:   strings.TrimSpace(id),
		ImageBase64: strings.TrimSpace(b64s),
	}, nil
}

// Verify checks the payload for a scene. Scenes with verification
// disabled pass through.
func (s *CaptchaService) Verify(scene string, payload CaptchaVerifyPayload, clientIP string) error {
	if !s.SceneEnabled(scene) {
		return nil
	}

	switch strings.ToLower(strings.TrimSpace(s.cfg.Provider)) {
	case constants.CaptchaProviderImage:
		captchaID := strings.TrimSpace(payload.CaptchaID)
		captchaCode := strings.TrimSpace(payload.CaptchaCode)
		if captchaID == "" || captchaCode == "" {
			return ErrCaptchaRequired
		}
		store := s.ensureImageStore()
		if !store.Verify(captchaID, captchaCode, true) {
			return ErrCaptchaInvalid
		}
		return nil
	case constants.CaptchaProviderRecaptcha:
		token := strings.TrimSpace(payload.RecaptchaToken)
		if token == "" {
			return ErrCaptchaRequired
		}
		return s.verifyRecaptcha(token, strings.TrimSpace(clientIP))
	default:
		return ErrCaptchaConfig
	}
}

func (s *CaptchaService) verifyRecaptcha(token, clientIP string) error {
	secret := strings.TrimSpace(s.cfg.Recaptcha.SecretKey)
	verifyURL := strings.TrimSpace(s.cfg.Recaptcha.VerifyURL)
	if secret == "" || verifyURL == "" {
		return ErrCaptchaConfig
	}

	timeout := s.cfg.Recaptcha.TimeoutMS
	if timeout < 500 || timeout > 10000 {
		timeout = 2000
	}

	client := s.httpClient
	if client == nil || client.Timeout != time.Duration(timeout)*time.Millisecond {
		client = &http.Client{Timeout: time.Duration(timeout) * time.Millisecond}
	}

	form := url.Values{}
	form.Set("secret", secret)
	form.Set("response", token)
	if clientIP != "" {
		form.Set("remoteip", clientIP)
	}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCaptchaVerifyFailed, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCaptchaVerifyFailed, err)
	}
	defer resp.Body.Close()

	var result recaptchaVerifyResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&result); decodeErr != nil {
		return fmt.Errorf("%w: %v", ErrCaptchaVerifyFailed, decodeErr)
	}
	if !result.Success {
		return ErrCaptchaInvalid
	}
	return nil
}

func (s *CaptchaService) ensureImageStore() base64Captcha.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	maxStore := s.cfg.Image.MaxStore
	if maxStore <= 0 {
		maxStore = 10240
	}
	expireSec := s.cfg.Image.ExpireSeconds
	if expireSec <= 0 {
		expireSec = 300
	}
	if s.imageStore != nil && s.imageStoreMaxStore == maxStore && s.imageStoreExpireSec == expireSec {
		return s.imageStore
	}
	s.imageStore = base64Captcha.NewMemoryStore(maxStore, time.Duration(expireSec)*time.Second)
	s.imageStoreMaxStore = maxStore
	s.imageStoreExpireSec = expireSec
	return s.imageStore
}
