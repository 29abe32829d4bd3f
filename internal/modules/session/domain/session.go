package domain

import (
	"fmt"
	"math"
	"time"

	apperrors "chatreport/internal/platform/errors"
)

const (
	SchemaVersion = 1

	// MaxCount caps every numeric input.
	MaxCount = 1000000

	// ProblematicThreshold is exclusive: a rate of exactly 0.30 is still OK.
	ProblematicThreshold = 0.30

	TimestampLayout = "2006-01-02 15:04:05"
)

type Status string

const (
	StatusOK          Status = "OK"
	StatusProblematic Status = "Problematic"

	ctaSuffix = " (CTA left)"
)

// Number is a parsed numeric input that may not be integral yet.
type Number float64

func (n Number) IsInteger() bool {
	f := float64(n)
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f == math.Trunc(f)
}

// RawMetrics holds session inputs as received, before validation.
type RawMetrics struct {
	UserMessages     Number
	AIResponses      Number
	ValidationErrors Number
	SessionTime      Number
	CTALeft          *bool
}

// SessionMetrics holds validated session inputs.
type SessionMetrics struct {
	UserMessages     int
	AIResponses      int
	ValidationErrors int
	CTALeft          bool
	SessionTime      int
}

// Report is the full set of values shared by every rendered document.
type Report struct {
	Metrics     SessionMetrics
	ErrorRate   float64
	Status      Status
	HealthScore int
	GeneratedAt time.Time
}

type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) Unwrap() error {
	return apperrors.ErrInvalidInput
}

func invalid(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

type namedNumber struct {
	name  string
	value Number
}

// Validate checks raw inputs in a fixed order and reports the first
// violated constraint.
func Validate(raw RawMetrics) (SessionMetrics, error) {
	all := []namedNumber{
		{"user_messages", raw.UserMessages},
		{"ai_responses", raw.AIResponses},
		{"validation_errors", raw.ValidationErrors},
		{"session_time", raw.SessionTime},
	}
	counts := all[:3]

	for _, field := range all {
		if !field.value.IsInteger() {
			return SessionMetrics{}, invalid("%s must be an integer", field.name)
		}
	}
	for _, field := range counts {
		if field.value < 0 {
			return SessionMetrics{}, invalid("%s must be >= 0", field.name)
		}
	}
	for _, field := range all {
		if field.value > MaxCount {
			return SessionMetrics{}, invalid("%s must be <= %d", field.name, MaxCount)
		}
	}
	if raw.AIResponses > raw.UserMessages {
		return SessionMetrics{}, invalid("ai_responses must be <= user_messages")
	}
	if raw.ValidationErrors > raw.UserMessages {
		return SessionMetrics{}, invalid("validation_errors must be <= user_messages")
	}
	if raw.SessionTime <= 0 {
		return SessionMetrics{}, invalid("session_time must be > 0")
	}
	if raw.CTALeft == nil {
		return SessionMetrics{}, invalid("cta_left must be true or false")
	}

	return SessionMetrics{
		UserMessages:     int(raw.UserMessages),
		AIResponses:      int(raw.AIResponses),
		ValidationErrors: int(raw.ValidationErrors),
		CTALeft:          *raw.CTALeft,
		SessionTime:      int(raw.SessionTime),
	}, nil
}

// ErrorRate returns validationErrors/userMessages, or 0 when there were no
// user messages.
func ErrorRate(validationErrors, userMessages int) float64 {
	if userMessages == 0 {
		return 0
	}
	return float64(validationErrors) / float64(userMessages)
}

func Classify(errorRate float64, ctaLeft bool) Status {
	status := StatusOK
	if errorRate > ProblematicThreshold {
		status = StatusProblematic
	}
	if ctaLeft {
		status += ctaSuffix
	}
	return status
}

// NewReport derives the error rate and status for validated metrics.
func NewReport(metrics SessionMetrics, generatedAt time.Time) Report {
	rate := ErrorRate(metrics.ValidationErrors, metrics.UserMessages)
	return Report{
		Metrics:     metrics,
		ErrorRate:   rate,
		Status:      Classify(rate, metrics.CTALeft),
		HealthScore: HealthScore(rate, metrics.ValidationErrors),
		GeneratedAt: generatedAt,
	}
}

// Health scores run 0..100. Each percent of error rate costs two points and
// more than heavyErrorCount validation errors cost another fifteen.
const (
	HealthGoodMin   = 80
	HealthFairMin   = 60
	heavyErrorCount = 50
	heavyErrorCost  = 15
)

type Health string

const (
	HealthGood Health = "good"
	HealthFair Health = "fair"
	HealthPoor Health = "poor"
)

func HealthScore(errorRate float64, validationErrors int) int {
	score := 100 - errorRate*100*2
	if validationErrors > heavyErrorCount {
		score -= heavyErrorCost
	}
	score = math.Floor(score + 0.5)
	return int(math.Max(0, math.Min(100, score)))
}

func ClassifyHealth(score int) Health {
	switch {
	case score >= HealthGoodMin:
		return HealthGood
	case score >= HealthFairMin:
		return HealthFair
	default:
		return HealthPoor
	}
}

func (r Report) Health() Health {
	return ClassifyHealth(r.HealthScore)
}

func (r Report) Timestamp() string {
	return r.GeneratedAt.Format(TimestampLayout)
}

func (r Report) Percent() string {
	return FormatPercent(r.ErrorRate)
}

func FormatPercent(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate*100)
}

// FormatBool renders booleans as True/False.
func FormatBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}
