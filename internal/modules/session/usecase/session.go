package usecase

import (
	"context"

	"go.uber.org/zap"

	"chatreport/internal/modules/session/domain"
	sessiondto "chatreport/internal/modules/session/dto"
	sessionin "chatreport/internal/modules/session/port/in"
	"chatreport/internal/modules/session/service"
	"chatreport/internal/platform/id"
)

type Interactor struct {
	svc    *service.SessionService
	ids    id.Generator
	logger *zap.Logger
}

func NewInteractor(svc *service.SessionService, ids id.Generator, logger *zap.Logger) sessionin.Usecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interactor{svc: svc, ids: ids, logger: logger}
}

func (i *Interactor) Generate(ctx context.Context, input sessiondto.GenerateInput) (sessiondto.GenerateOutput, error) {
	runID := i.ids.New()
	log := i.logger.With(zap.String("run_id", runID))

	report, err := i.svc.Evaluate(ctx, domain.RawMetrics{
		UserMessages:     domain.Number(input.UserMessages),
		AIResponses:      domain.Number(input.AIResponses),
		ValidationErrors: domain.Number(input.ValidationErrors),
		SessionTime:      domain.Number(input.SessionTime),
		CTALeft:          input.CTALeft,
	})
	if err != nil {
		log.Debug("session metrics rejected", zap.Error(err))
		return sessiondto.GenerateOutput{}, err
	}
	log.Debug("session metrics evaluated",
		zap.Float64("error_rate", report.ErrorRate),
		zap.String("status", string(report.Status)),
	)

	textPath, htmlPath, err := i.svc.Publish(ctx, report)
	if err != nil {
		log.Error("publish report", zap.Error(err))
		return sessiondto.GenerateOutput{}, err
	}

	if input.SummaryPath != "" {
		if err := i.svc.Summarize(ctx, input.SummaryPath, runID, report); err != nil {
			log.Error("write summary", zap.Error(err))
			return sessiondto.GenerateOutput{}, err
		}
	}
	log.Info("report generated", zap.String("text", textPath), zap.String("html", htmlPath))

	return sessiondto.GenerateOutput{
		RunID:            runID,
		UserMessages:     report.Metrics.UserMessages,
		AIResponses:      report.Metrics.AIResponses,
		ValidationErrors: report.Metrics.ValidationErrors,
		CTALeft:          report.Metrics.CTALeft,
		SessionTime:      report.Metrics.SessionTime,
		ErrorRate:        report.ErrorRate,
		ErrorRatePercent: report.Percent(),
		Status:           string(report.Status),
		HealthScore:      report.HealthScore,
		Health:           string(report.Health()),
		GeneratedAt:      report.GeneratedAt,
		TextPath:         textPath,
		HTMLPath:         htmlPath,
		SummaryPath:      input.SummaryPath,
	}, nil
}
