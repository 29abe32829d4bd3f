package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"chatreport/internal/modules/session/domain"
	sessionout "chatreport/internal/modules/session/port/out"
)

type summaryDocument struct {
	SchemaVersion int           `yaml:"schema_version" json:"schema_version"`
	RunID         string        `yaml:"run_id" json:"run_id"`
	GeneratedAt   string        `yaml:"generated_at" json:"generated_at"`
	Inputs        summaryInputs `yaml:"inputs" json:"inputs"`
	ErrorRate     float64       `yaml:"error_rate" json:"error_rate"`
	ErrorRatePct  string        `yaml:"error_rate_percent" json:"error_rate_percent"`
	Status        string        `yaml:"status" json:"status"`
	HealthScore   int           `yaml:"health_score" json:"health_score"`
	Health        string        `yaml:"health" json:"health"`
}

type summaryInputs struct {
	UserMessages     int  `yaml:"user_messages" json:"user_messages"`
	AIResponses      int  `yaml:"ai_responses" json:"ai_responses"`
	ValidationErrors int  `yaml:"validation_errors" json:"validation_errors"`
	CTALeft          bool `yaml:"cta_left" json:"cta_left"`
	SessionTime      int  `yaml:"session_time" json:"session_time"`
}

// FileSummaryWriter writes a machine-readable run summary. A .json path
// gets JSON; anything else gets YAML.
type FileSummaryWriter struct{}

func NewFileSummaryWriter() sessionout.SummaryWriter {
	return FileSummaryWriter{}
}

func (FileSummaryWriter) WriteSummary(_ context.Context, path, runID string, report domain.Report) error {
	doc := summaryDocument{
		SchemaVersion: domain.SchemaVersion,
		RunID:         runID,
		GeneratedAt:   report.Timestamp(),
		Inputs: summaryInputs{
			UserMessages:     report.Metrics.UserMessages,
			AIResponses:      report.Metrics.AIResponses,
			ValidationErrors: report.Metrics.ValidationErrors,
			CTALeft:          report.Metrics.CTALeft,
			SessionTime:      report.Metrics.SessionTime,
		},
		ErrorRate:    report.ErrorRate,
		ErrorRatePct: report.Percent(),
		Status:       string(report.Status),
		HealthScore:  report.HealthScore,
		Health:       string(report.Health()),
	}
	payload, err := marshalSummary(path, doc)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create summary dir: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

func marshalSummary(path string, doc summaryDocument) ([]byte, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		payload, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(payload, '\n'), nil
	}
	return yaml.Marshal(doc)
}
