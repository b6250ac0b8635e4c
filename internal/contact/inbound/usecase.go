package inbound

import (
	"context"

	"github.com/shandysiswandi/portfolio/internal/contact/usecase"
)

type uc interface {
	Submit(ctx context.Context, in usecase.SubmitInput) error
	Health(ctx context.Context) usecase.HealthOutput
}
