package honeypot

import (
	"strconv"
	"time"

	"hotel-storefront/internal/pkg/clock"
	"hotel-storefront/internal/pkg/config"
)

const (
	DefaultFieldName     = "website"
	DefaultMinSubmitTime = 2 * time.Second
	DefaultMaxFormAge    = 30 * time.Minute

	// TimestampField carries the render time (epoch ms) next to the decoy.
	TimestampField = "_form_rendered_at"

	ReasonFilled   = "honeypot field filled"
	ReasonTooFast  = "submitted too quickly"
	ReasonExpired  = "form expired"
	ReasonNoRender = "missing render timestamp"
)

// Field describes the decoy input the client renders hidden from humans.
type Field struct {
	Name      string `json:"name"`
	Value     string `json:"value"`
	Timestamp int64  `json:"timestamp"`
}

type Verdict struct {
	IsBot  bool
	Reason string
}

// Detector is a best-effort bot heuristic: a determined bot that waits and
// leaves the decoy empty passes.
type Detector struct {
	clock         clock.Clock
	fieldName     string
	minSubmitTime time.Duration
	maxFormAge    time.Duration
}

func NewDetector(clk clock.Clock, cfg config.HoneypotConfig) *Detector {
	d := &Detector{
		clock:         clk,
		fieldName:     cfg.FieldName,
		minSubmitTime: cfg.MinSubmitTime,
		maxFormAge:    cfg.MaxFormAge,
	}
	if d.fieldName == "" {
		d.fieldName = DefaultFieldName
	}
	if d.minSubmitTime <= 0 {
		d.minSubmitTime = DefaultMinSubmitTime
	}
	if d.maxFormAge <= 0 {
		d.maxFormAge = DefaultMaxFormAge
	}
	return d
}

func (d *Detector) FieldName() string {
	return d.fieldName
}

func (d *Detector) Create() Field {
	return Field{
		Name:      d.fieldName,
		Value:     "",
		Timestamp: d.clock.Now().UnixMilli(),
	}
}

// Validate judges a submission by the decoy value and the epoch-ms timestamp
// at which the form was rendered.
func (d *Detector) Validate(value string, renderedAt int64) Verdict {
	if value != "" {
		return Verdict{IsBot: true, Reason: ReasonFilled}
	}

	elapsed := clock.SinceMillis(d.clock, renderedAt)
	if elapsed < d.minSubmitTime {
		return Verdict{IsBot: true, Reason: ReasonTooFast}
	}
	if elapsed > d.maxFormAge {
		return Verdict{IsBot: true, Reason: ReasonExpired}
	}
	return Verdict{IsBot: false}
}

// ValidateForm reads the decoy and timestamp out of submitted form values.
// A missing or malformed timestamp counts as a bot.
func (d *Detector) ValidateForm(values map[string]string) Verdict {
	raw, ok := values[TimestampField]
	if !ok || raw == "" {
		return Verdict{IsBot: true, Reason: ReasonNoRender}
	}
	renderedAt, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return Verdict{IsBot: true, Reason: ReasonNoRender}
	}
	return d.Validate(values[d.fieldName], renderedAt)
}
