package service

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sugarloaf/bakehouse/internal/config"
	"github.com/sugarloaf/bakehouse/internal/constants"
)

func TestVerifySceneDisabledPassesThrough(t *testing.T) {
	// Provider "none" passes through even with the login scene on,
	// which is the shipped default.
	cfg := config.CaptchaConfig{Provider: constants.CaptchaProviderNone}
	cfg.Scenes.Login = true
	svc := NewCaptchaService(cfg)
	if err := svc.Verify(constants.CaptchaSceneLogin, CaptchaVerifyPayload{}, ""); err != nil {
		t.Fatalf("disabled provider should pass through, got %v", err)
	}

	svc = NewCaptchaService(config.CaptchaConfig{Provider: constants.CaptchaProviderImage})
	if err := svc.Verify(constants.CaptchaSceneLogin, CaptchaVerifyPayload{}, ""); err != nil {
		t.Fatalf("disabled login scene should pass through, got %v", err)
	}
}

func TestVerifyImageProvider(t *testing.T) {
	cfg := config.CaptchaConfig{Provider: constants.CaptchaProviderImage}
	cfg.Scenes.Login = true
	svc := NewCaptchaService(cfg)

	if err := svc.Verify(constants.CaptchaSceneLogin, CaptchaVerifyPayload{}, ""); !errors.Is(err, ErrCaptchaRequired) {
		t.Fatalf("empty payload want ErrCaptchaRequired got %v", err)
	}

	challenge, err := svc.GenerateImageChallenge()
	if err != nil {
		t.Fatalf("generate challenge failed: %v", err)
	}
	if challenge.CaptchaID == "" || challenge.ImageBase64 == "" {
		t.Fatalf("challenge incomplete: %+v", challenge)
	}

	payload := CaptchaVerifyPayload{CaptchaID: challenge.CaptchaID, CaptchaCode: "wrong"}
	if err := svc.Verify(constants.CaptchaSceneLogin, payload, ""); !errors.Is(err, ErrCaptchaInvalid) {
		t.Fatalf("wrong code want ErrCaptchaInvalid got %v", err)
	}
}

func TestVerifyRecaptchaProvider(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form failed: %v", err)
		}
		if r.PostFormValue("secret") != "shh" {
			t.Fatalf("secret not forwarded")
		}
		w.Header().Set("Content-Type", "application/json")
		if r.PostFormValue("response") == "good-token" {
			w.Write([]byte(`{"success":true}`))
			return
		}
		w.Write([]byte(`{"success":false,"error-codes":["invalid-input-response"]}`))
	}))
	defer server.Close()

	cfg := config.CaptchaConfig{Provider: constants.CaptchaProviderRecaptcha}
	cfg.Scenes.Login = true
	cfg.Recaptcha.SecretKey = "shh"
	cfg.Recaptcha.VerifyURL = server.URL
	svc := NewCaptchaService(cfg)

	if err := svc.Verify(constants.CaptchaSceneLogin, CaptchaVerifyPayload{}, ""); !errors.Is(err, ErrCaptchaRequired) {
		t.Fatalf("missing token want ErrCaptchaRequired got %v", err)
	}
	if err := svc.Verify(constants.CaptchaSceneLogin, CaptchaVerifyPayload{RecaptchaToken: "good-token"}, "1.2.3.4"); err != nil {
		t.Fatalf("valid token failed: %v", err)
	}
	if err := svc.Verify(constants.CaptchaSceneLogin, CaptchaVerifyPayload{RecaptchaToken: "bad-token"}, ""); !errors.Is(err, ErrCaptchaInvalid) {
		t.Fatalf("rejected token want ErrCaptchaInvalid got %v", err)
	}
}
