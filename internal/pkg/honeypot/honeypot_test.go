//go:build unit

package honeypot_test

import (
	"strconv"
	"testing"
	"time"

	"hotel-storefront/internal/pkg/clock"
	"hotel-storefront/internal/pkg/config"
	"hotel-storefront/internal/pkg/honeypot"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func newDetector() (*honeypot.Detector, *clock.MockClock) {
	clk := clock.NewMockClock(now)
	return honeypot.NewDetector(clk, config.HoneypotConfig{}), clk
}

func TestDetector_Create(t *testing.T) {
	d, _ := newDetector()

	field := d.Create()

	assert.Equal(t, "website", field.Name)
	assert.Empty(t, field.Value)
	assert.Equal(t, now.UnixMilli(), field.Timestamp)
}

func TestDetector_Validate(t *testing.T) {
	cases := []struct {
		name       string
		value      string
		renderedAt time.Time
		isBot      bool
		reason     string
	}{
		{name: "即時送信はボット", value: "", renderedAt: now, isBot: true, reason: honeypot.ReasonTooFast},
		{name: "1.9秒はボット", value: "", renderedAt: now.Add(-1900 * time.Millisecond), isBot: true, reason: honeypot.ReasonTooFast},
		{name: "5秒経過は人間", value: "", renderedAt: now.Add(-5 * time.Second), isBot: false},
		{name: "ちょうど2秒は人間", value: "", renderedAt: now.Add(-2 * time.Second), isBot: false},
		{name: "29分は人間", value: "", renderedAt: now.Add(-29 * time.Minute), isBot: false},
		{name: "31分は期限切れ", value: "", renderedAt: now.Add(-31 * time.Minute), isBot: true, reason: honeypot.ReasonExpired},
		{name: "入力済みはボット", value: "spam", renderedAt: now.Add(-5 * time.Second), isBot: true, reason: honeypot.ReasonFilled},
		{name: "入力済みはタイミングより優先", value: "http://spam.example", renderedAt: now, isBot: true, reason: honeypot.ReasonFilled},
		{name: "未来のタイムスタンプは早すぎ扱い", value: "", renderedAt: now.Add(time.Minute), isBot: true, reason: honeypot.ReasonTooFast},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, _ := newDetector()

			verdict := d.Validate(tc.value, tc.renderedAt.UnixMilli())

			assert.Equal(t, tc.isBot, verdict.IsBot)
			assert.Equal(t, tc.reason, verdict.Reason)
		})
	}
}

func TestDetector_ValidateForm(t *testing.T) {
	d, clk := newDetector()
	rendered := strconv.FormatInt(now.UnixMilli(), 10)
	clk.Add(10 * time.Second)

	t.Run("human", func(t *testing.T) {
		v := d.ValidateForm(map[string]string{
			"email":                 "guest@example.com",
			"website":               "",
			honeypot.TimestampField: rendered,
		})
		assert.False(t, v.IsBot)
	})

	t.Run("decoy filled", func(t *testing.T) {
		v := d.ValidateForm(map[string]string{
			"website":               "x",
			honeypot.TimestampField: rendered,
		})
		assert.True(t, v.IsBot)
		assert.Equal(t, honeypot.ReasonFilled, v.Reason)
	})

	t.Run("missing timestamp", func(t *testing.T) {
		v := d.ValidateForm(map[string]string{"website": ""})
		assert.True(t, v.IsBot)
		assert.Equal(t, honeypot.ReasonNoRender, v.Reason)
	})

	t.Run("garbage timestamp", func(t *testing.T) {
		v := d.ValidateForm(map[string]string{honeypot.TimestampField: "yesterday"})
		assert.True(t, v.IsBot)
	})
}

func TestDetector_CustomConfig(t *testing.T) {
	clk := clock.NewMockClock(now)
	d := honeypot.NewDetector(clk, config.HoneypotConfig{
		FieldName:     "company_url",
		MinSubmitTime: 5 * time.Second,
		MaxFormAge:    time.Minute,
	})

	assert.Equal(t, "company_url", d.Create().Name)
	assert.True(t, d.Validate("", now.Add(-3*time.Second).UnixMilli()).IsBot)
	assert.False(t, d.Validate("", now.Add(-6*time.Second).UnixMilli()).IsBot)
	assert.True(t, d.Validate("", now.Add(-2*time.Minute).UnixMilli()).IsBot)
}
