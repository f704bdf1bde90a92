package secureform

import (
	"hotel-storefront/internal/pkg/ratelimit"
)

// Form describes one protected form kind and the guards it runs.
type Form struct {
	Kind            string
	Policy          ratelimit.Policy
	EnableHoneypot  bool
	EnableRateLimit bool
}

const (
	KindLogin         = "login"
	KindRegister      = "register"
	KindContact       = "contact"
	KindPasswordReset = "password_reset"
)

type Forms struct {
	Login         Form
	Register      Form
	Contact       Form
	PasswordReset Form
}

func NewForms(p ratelimit.Presets) Forms {
	return Forms{
		Login:         Form{Kind: KindLogin, Policy: p.Login, EnableHoneypot: true, EnableRateLimit: true},
		Register:      Form{Kind: KindRegister, Policy: p.Form, EnableHoneypot: true, EnableRateLimit: true},
		Contact:       Form{Kind: KindContact, Policy: p.Form, EnableHoneypot: true, EnableRateLimit: true},
		PasswordReset: Form{Kind: KindPasswordReset, Policy: p.Form, EnableHoneypot: true, EnableRateLimit: true},
	}
}

// WithoutHoneypot turns the bot-field check off on every form.
func (f Forms) WithoutHoneypot() Forms {
	f.Login.EnableHoneypot = false
	f.Register.EnableHoneypot = false
	f.Contact.EnableHoneypot = false
	f.PasswordReset.EnableHoneypot = false
	return f
}
