package inbound

import (
	"context"

	"github.com/shandysiswandi/portfolio/internal/portfolio/usecase"
)

type uc interface {
	Home(ctx context.Context) usecase.HomeOutput
}
