package usecase

import (
	"context"

	"github.com/shandysiswandi/portfolio/internal/pkg/clock"
	"github.com/shandysiswandi/portfolio/internal/pkg/instrument"
	"go.opentelemetry.io/otel/trace"
)

type Usecase struct {
	siteName string
	version  string
	clock    clock.Clocker
	ins      instrument.Instrumentation
}

type Dependency struct {
	SiteName   string
	Version    string
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
}

func NewPortfolio(dep Dependency) *Usecase {
	return &Usecase{
		siteName: dep.SiteName,
		version:  dep.Version,
		clock:    dep.Clock,
		ins:      dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("portfolio.usecase").Start(ctx, name)
}
