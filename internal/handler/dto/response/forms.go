package response

import (
	"hotel-storefront/internal/usecase/secureform"
)

// FormResult mirrors the SecureForm outcome shown next to the form.
type FormResult struct {
	State             string `json:"state"`
	RemainingAttempts int    `json:"remaining_attempts"`
	RetryAfterSeconds int    `json:"retry_after_seconds,omitempty"`
	Warning           string `json:"warning,omitempty"`
}

func FromFormResult(r secureform.Result) FormResult {
	secs := int(r.RetryAfter.Seconds())
	if r.RetryAfter > 0 && secs == 0 {
		secs = 1
	}
	return FormResult{
		State:             string(r.State),
		RemainingAttempts: r.RemainingAttempts,
		RetryAfterSeconds: secs,
		Warning:           r.Warning,
	}
}

type CSRFTokenResponse struct {
	Token  string `json:"csrf_token"`
	Header string `json:"header"`
}

type HoneypotFieldResponse struct {
	Name           string `json:"name"`
	Value          string `json:"value"`
	Timestamp      int64  `json:"timestamp"`
	TimestampField string `json:"timestamp_field"`
}

type SubmissionResponse struct {
	Message string     `json:"message"`
	Form    FormResult `json:"form"`
}
