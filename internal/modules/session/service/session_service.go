package service

import (
	"context"
	"fmt"

	"chatreport/internal/modules/session/domain"
	sessionout "chatreport/internal/modules/session/port/out"
	"chatreport/internal/platform/clock"
)

type ArtifactNames struct {
	Text string
	HTML string
}

type SessionService struct {
	clock    clock.Clock
	renderer *Renderer
	writer   sessionout.ArtifactWriter
	summary  sessionout.SummaryWriter
	names    ArtifactNames
}

func NewSessionService(clock clock.Clock, renderer *Renderer, writer sessionout.ArtifactWriter, summary sessionout.SummaryWriter, names ArtifactNames) *SessionService {
	return &SessionService{clock: clock, renderer: renderer, writer: writer, summary: summary, names: names}
}

// Evaluate validates raw inputs and derives the report values. The clock is
// read exactly once so every document shares the same generation time.
func (s *SessionService) Evaluate(_ context.Context, raw domain.RawMetrics) (domain.Report, error) {
	metrics, err := domain.Validate(raw)
	if err != nil {
		return domain.Report{}, err
	}
	return domain.NewReport(metrics, s.clock.Now()), nil
}

// Publish renders both documents and only then hands them to the writer,
// so a render failure never leaves a single document behind.
func (s *SessionService) Publish(ctx context.Context, report domain.Report) (textPath, htmlPath string, err error) {
	text, err := s.renderer.RenderText(report)
	if err != nil {
		return "", "", err
	}
	html, err := s.renderer.RenderHTML(report)
	if err != nil {
		return "", "", err
	}
	paths, err := s.writer.Write(ctx, []sessionout.Artifact{
		{Name: s.names.Text, Content: text},
		{Name: s.names.HTML, Content: html},
	})
	if err != nil {
		return "", "", err
	}
	if len(paths) != 2 {
		return "", "", fmt.Errorf("artifact writer returned %d paths, want 2", len(paths))
	}
	return paths[0], paths[1], nil
}

func (s *SessionService) Summarize(ctx context.Context, path, runID string, report domain.Report) error {
	if s.summary == nil {
		return fmt.Errorf("summary writer is not configured")
	}
	return s.summary.WriteSummary(ctx, path, runID, report)
}
