package out

import (
	"context"

	"chatreport/internal/modules/session/domain"
)

// Artifact is a rendered document ready to be persisted under Name.
type Artifact struct {
	Name    string
	Content []byte
}

// ArtifactWriter persists rendered documents and returns their paths in
// the same order.
type ArtifactWriter interface {
	Write(ctx context.Context, artifacts []Artifact) ([]string, error)
}

type SummaryWriter interface {
	WriteSummary(ctx context.Context, path, runID string, report domain.Report) error
}
