package domain_test

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"chatreport/internal/modules/session/domain"
	apperrors "chatreport/internal/platform/errors"
)

func boolPtr(v bool) *bool { return &v }

func raw(user, ai, errs float64, cta *bool, minutes float64) domain.RawMetrics {
	return domain.RawMetrics{
		UserMessages:     domain.Number(user),
		AIResponses:      domain.Number(ai),
		ValidationErrors: domain.Number(errs),
		SessionTime:      domain.Number(minutes),
		CTALeft:          cta,
	}
}

func TestValidateReportsFirstViolatedConstraint(t *testing.T) {
	t.Parallel()
	f := boolPtr(false)
	cases := []struct {
		name   string
		input  domain.RawMetrics
		reason string
	}{
		{"fractional user messages", raw(1.5, 0, 0, f, 1), "user_messages must be an integer"},
		{"fractional ai responses", raw(10, 0.5, 0, f, 1), "ai_responses must be an integer"},
		{"fractional errors", raw(10, 1, 2.25, f, 1), "validation_errors must be an integer"},
		{"fractional session time", raw(10, 1, 2, f, 0.5), "session_time must be an integer"},
		{"nan session time", raw(10, 1, 2, f, math.NaN()), "session_time must be an integer"},
		{"infinite user messages", raw(math.Inf(1), 1, 2, f, 5), "user_messages must be an integer"},
		{"integrality before sign", raw(-1, 0.5, 0, f, 1), "ai_responses must be an integer"},
		{"negative user messages", raw(-1, 0, 0, f, 1), "user_messages must be >= 0"},
		{"negative ai responses", raw(10, -1, 0, f, 1), "ai_responses must be >= 0"},
		{"negative errors", raw(10, 0, -3, f, 1), "validation_errors must be >= 0"},
		{"sign before max", raw(2000000, -1, 0, f, 1), "ai_responses must be >= 0"},
		{"user messages too large", raw(1000001, 0, 0, f, 1), "user_messages must be <= 1000000"},
		{"ai responses too large", raw(10, 1000001, 0, f, 1), "ai_responses must be <= 1000000"},
		{"errors too large", raw(10, 0, 1000001, f, 1), "validation_errors must be <= 1000000"},
		{"session time too large", raw(10, 0, 0, f, 1000001), "session_time must be <= 1000000"},
		{"max before ratio", raw(10, 20, 0, f, 2000000), "session_time must be <= 1000000"},
		{"more responses than messages", raw(50, 60, 0, f, 10), "ai_responses must be <= user_messages"},
		{"more errors than messages", raw(50, 10, 51, f, 10), "validation_errors must be <= user_messages"},
		{"responses checked before errors", raw(5, 6, 7, f, 10), "ai_responses must be <= user_messages"},
		{"zero session time", raw(50, 10, 0, f, 0), "session_time must be > 0"},
		{"negative session time", raw(50, 10, 0, f, -5), "session_time must be > 0"},
		{"missing cta", raw(50, 10, 0, nil, 5), "cta_left must be true or false"},
		{"session time before cta", raw(50, 10, 0, nil, 0), "session_time must be > 0"},
	}
	for _, tc := range cases {
		_, err := domain.Validate(tc.input)
		if err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s: expected ValidationError, got %T", tc.name, err)
		}
		if verr.Reason != tc.reason {
			t.Fatalf("%s: expected reason %q, got %q", tc.name, tc.reason, verr.Reason)
		}
		if !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("%s: validation errors must match ErrInvalidInput", tc.name)
		}
	}
}

func TestValidateAcceptsAllConsistentInputs(t *testing.T) {
	t.Parallel()
	for user := 0; user <= 12; user++ {
		for ai := 0; ai <= user; ai++ {
			for errs := 0; errs <= user; errs++ {
				for _, cta := range []bool{true, false} {
					got, err := domain.Validate(raw(float64(user), float64(ai), float64(errs), boolPtr(cta), 1))
					if err != nil {
						t.Fatalf("(%d,%d,%d,%t) should validate: %v", user, ai, errs, cta, err)
					}
					want := domain.SessionMetrics{UserMessages: user, AIResponses: ai, ValidationErrors: errs, CTALeft: cta, SessionTime: 1}
					if got != want {
						t.Fatalf("unexpected metrics %+v, want %+v", got, want)
					}
				}
			}
		}
	}
	upper := raw(domain.MaxCount, domain.MaxCount, domain.MaxCount, boolPtr(true), domain.MaxCount)
	if _, err := domain.Validate(upper); err != nil {
		t.Fatalf("inclusive upper bounds should validate: %v", err)
	}
}

func TestErrorRate(t *testing.T) {
	t.Parallel()
	if got := domain.ErrorRate(0, 0); got != 0 {
		t.Fatalf("zero messages must yield 0, got %v", got)
	}
	if got := domain.ErrorRate(10, 100); got != 0.1 {
		t.Fatalf("expected 0.1, got %v", got)
	}
	if got := domain.ErrorRate(1, 3); math.Abs(got-1.0/3.0) > 1e-15 {
		t.Fatalf("expected 1/3, got %v", got)
	}
	for _, total := range []int{1, 7, 100, 999} {
		prev := -1.0
		for errs := 0; errs <= total; errs++ {
			rate := domain.ErrorRate(errs, total)
			if rate < prev {
				t.Fatalf("rate decreased at %d/%d", errs, total)
			}
			if rate < 0 || rate > 1 {
				t.Fatalf("rate out of range at %d/%d: %v", errs, total, rate)
			}
			prev = rate
		}
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()
	cases := []struct {
		rate float64
		cta  bool
		want domain.Status
	}{
		{0, false, "OK"},
		{0.30, false, "OK"},
		{domain.ErrorRate(30, 100), true, "OK (CTA left)"},
		{0.3000001, false, "Problematic"},
		{0.4, true, "Problematic (CTA left)"},
		{1, false, "Problematic"},
	}
	for _, tc := range cases {
		got := domain.Classify(tc.rate, tc.cta)
		if got != tc.want {
			t.Fatalf("Classify(%v, %t) = %q, want %q", tc.rate, tc.cta, got, tc.want)
		}
		if strings.Contains(string(got), "Problematic") != (tc.rate > 0.30) {
			t.Fatalf("problematic label mismatch for rate %v", tc.rate)
		}
		if strings.HasSuffix(string(got), " (CTA left)") != tc.cta {
			t.Fatalf("cta suffix mismatch for %q", got)
		}
	}
}

func TestNewReportScenarios(t *testing.T) {
	t.Parallel()
	at := time.Date(2026, 3, 1, 9, 5, 7, 0, time.UTC)
	cases := []struct {
		metrics domain.SessionMetrics
		percent string
		status  domain.Status
	}{
		{domain.SessionMetrics{UserMessages: 100, AIResponses: 90, ValidationErrors: 10, SessionTime: 30}, "10.00%", "OK"},
		{domain.SessionMetrics{UserMessages: 100, AIResponses: 90, ValidationErrors: 40, SessionTime: 30}, "40.00%", "Problematic"},
		{domain.SessionMetrics{UserMessages: 100, AIResponses: 90, ValidationErrors: 30, CTALeft: true, SessionTime: 30}, "30.00%", "OK (CTA left)"},
		{domain.SessionMetrics{SessionTime: 5}, "0.00%", "OK"},
		{domain.SessionMetrics{UserMessages: 3, ValidationErrors: 1, SessionTime: 5}, "33.33%", "Problematic"},
	}
	for _, tc := range cases {
		report := domain.NewReport(tc.metrics, at)
		if report.Percent() != tc.percent || report.Status != tc.status {
			t.Fatalf("metrics %+v: got %s/%q, want %s/%q", tc.metrics, report.Percent(), report.Status, tc.percent, tc.status)
		}
		if report.Timestamp() != "2026-03-01 09:05:07" {
			t.Fatalf("unexpected timestamp %s", report.Timestamp())
		}
	}
}

func TestFormatBool(t *testing.T) {
	t.Parallel()
	if domain.FormatBool(true) != "True" || domain.FormatBool(false) != "False" {
		t.Fatalf("unexpected boolean rendering")
	}
}

func TestHealthScore(t *testing.T) {
	t.Parallel()
	cases := []struct {
		rate   float64
		errs   int
		score  int
		health domain.Health
	}{
		{0, 0, 100, domain.HealthGood},
		{0.10, 10, 80, domain.HealthGood},
		{0.125, 1, 75, domain.HealthFair},
		{0.20, 20, 60, domain.HealthFair},
		{0.10, 60, 65, domain.HealthFair},
		{0.30, 30, 40, domain.HealthPoor},
		{1, 1000, 0, domain.HealthPoor},
	}
	for _, tc := range cases {
		score := domain.HealthScore(tc.rate, tc.errs)
		if score != tc.score {
			t.Fatalf("rate %v errs %d: expected score %d, got %d", tc.rate, tc.errs, tc.score, score)
		}
		if got := domain.ClassifyHealth(score); got != tc.health {
			t.Fatalf("score %d: expected %s, got %s", score, tc.health, got)
		}
	}
}

func TestNewReportCarriesHealth(t *testing.T) {
	t.Parallel()
	report := domain.NewReport(domain.SessionMetrics{UserMessages: 100, AIResponses: 90, ValidationErrors: 40, SessionTime: 30}, time.Now())
	if report.HealthScore != 20 || report.Health() != domain.HealthPoor {
		t.Fatalf("unexpected health %d %s", report.HealthScore, report.Health())
	}
}
