package config

import (
	"testing"

	"github.com/sugarloaf/bakehouse/internal/constants"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg := Load()

	if cfg.Captcha.Provider != constants.CaptchaProviderNone {
		t.Fatalf("captcha provider default want none got %q", cfg.Captcha.Provider)
	}
	if !cfg.Captcha.Scenes.Login {
		t.Fatalf("login captcha scene should be on by default")
	}
	if cfg.Redis.Prefix != constants.RedisPrefixDefault {
		t.Fatalf("redis prefix default want %q got %q", constants.RedisPrefixDefault, cfg.Redis.Prefix)
	}
	if cfg.Payment.Xendit.Currency != constants.SiteCurrencyDefault {
		t.Fatalf("currency default want %q got %q", constants.SiteCurrencyDefault, cfg.Payment.Xendit.Currency)
	}
	if cfg.Loyalty.ActiveThreshold != 3 {
		t.Fatalf("loyalty threshold default want 3 got %d", cfg.Loyalty.ActiveThreshold)
	}
}
