package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shandysiswandi/portfolio/internal/pkg/clock"
	"github.com/shandysiswandi/portfolio/internal/pkg/instrument"
	"github.com/shandysiswandi/portfolio/internal/portfolio/entity"
	"github.com/stretchr/testify/assert"
)

func TestHome(t *testing.T) {
	uc := NewPortfolio(Dependency{
		SiteName:   "Portfólio",
		Version:    "1.0.0",
		Clock:      clock.Fixed(time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)),
		Instrument: instrument.NewNoop(),
	})

	out := uc.Home(context.Background())

	assert.Equal(t, "Portfólio", out.SiteName)
	assert.Equal(t, "1.0.0", out.Version)
	assert.Equal(t, 2026, out.Year)
	assert.Equal(t, entity.Credentials(), out.Credentials)
	assert.Equal(t, entity.Educations(), out.Educations)
	assert.NotEmpty(t, out.Credentials)
	assert.NotEmpty(t, out.Educations)
}

func TestHome_ListsAreNotShared(t *testing.T) {
	uc := NewPortfolio(Dependency{Clock: clock.New(), Instrument: instrument.NewNoop()})

	first := uc.Home(context.Background())
	first.Credentials[0].Title = "changed"

	second := uc.Home(context.Background())
	assert.NotEqual(t, "changed", second.Credentials[0].Title)
}
