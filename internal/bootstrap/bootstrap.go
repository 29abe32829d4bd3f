package bootstrap

import (
	"fmt"

	"go.uber.org/zap"

	sessioninadapter "chatreport/internal/modules/session/adapter/in"
	sessionoutadapter "chatreport/internal/modules/session/adapter/out"
	sessionservice "chatreport/internal/modules/session/service"
	sessionusecase "chatreport/internal/modules/session/usecase"
	"chatreport/internal/platform/clock"
	"chatreport/internal/platform/config"
	"chatreport/internal/platform/id"
)

type App struct {
	SessionCLI sessioninadapter.CLIHandler
}

func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	return newApp(cfg, logger, clock.SystemClock{}, id.UUID{})
}

func newApp(cfg config.Config, logger *zap.Logger, clk clock.Clock, ids id.Generator) (*App, error) {
	renderer, err := sessionservice.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("new renderer: %w", err)
	}

	sessionSvc := sessionservice.NewSessionService(
		clk,
		renderer,
		sessionoutadapter.NewFileArtifactWriter(cfg.OutputDir),
		sessionoutadapter.NewFileSummaryWriter(),
		sessionservice.ArtifactNames{Text: cfg.Files.Text, HTML: cfg.Files.HTML},
	)
	sessionUC := sessionusecase.NewInteractor(sessionSvc, ids, logger)

	return &App{
		SessionCLI: sessioninadapter.NewCLIHandler(sessionUC),
	}, nil
}
