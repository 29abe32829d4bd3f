package in

import (
	"context"

	"chatreport/internal/modules/session/dto"
)

type Usecase interface {
	Generate(ctx context.Context, input dto.GenerateInput) (dto.GenerateOutput, error)
}
