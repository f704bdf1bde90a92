package ratelimit

import (
	"time"

	"hotel-storefront/internal/pkg/config"
)

// Policy is the attempt budget of one protected action.
type Policy struct {
	MaxAttempts   int
	Window        time.Duration
	BlockDuration time.Duration
}

var (
	FormPolicy = Policy{
		MaxAttempts:   3,
		Window:        time.Minute,
		BlockDuration: 5 * time.Minute,
	}
	LoginPolicy = Policy{
		MaxAttempts:   5,
		Window:        15 * time.Minute,
		BlockDuration: 30 * time.Minute,
	}
	APIPolicy = Policy{
		MaxAttempts:   100,
		Window:        time.Minute,
		BlockDuration: 10 * time.Minute,
	}
)

type Presets struct {
	Form  Policy
	Login Policy
	API   Policy
}

func DefaultPresets() Presets {
	return Presets{Form: FormPolicy, Login: LoginPolicy, API: APIPolicy}
}

// PresetsFromConfig overrides the default presets with whatever the
// environment sets. Zero values keep the default.
func PresetsFromConfig(cfg config.RateLimitConfig) Presets {
	p := DefaultPresets()
	p.Form = override(p.Form, cfg.FormMaxAttempts, cfg.FormWindow, cfg.FormBlock)
	p.Login = override(p.Login, cfg.LoginMaxAttempts, cfg.LoginWindow, cfg.LoginBlock)
	p.API = override(p.API, cfg.APIMaxAttempts, cfg.APIWindow, cfg.APIBlock)
	return p
}

func override(p Policy, maxAttempts int, window, block time.Duration) Policy {
	if maxAttempts > 0 {
		p.MaxAttempts = maxAttempts
	}
	if window > 0 {
		p.Window = window
	}
	if block > 0 {
		p.BlockDuration = block
	}
	return p
}
