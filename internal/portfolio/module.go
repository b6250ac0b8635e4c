package portfolio

import (
	"html/template"
	"io/fs"

	"github.com/shandysiswandi/portfolio/internal/pkg/clock"
	"github.com/shandysiswandi/portfolio/internal/pkg/config"
	"github.com/shandysiswandi/portfolio/internal/pkg/instrument"
	"github.com/shandysiswandi/portfolio/internal/pkg/router"
	"github.com/shandysiswandi/portfolio/internal/portfolio/inbound"
	"github.com/shandysiswandi/portfolio/internal/portfolio/usecase"
)

type Dependency struct {
	Config     config.Config
	Instrument instrument.Instrumentation
	Clock      clock.Clocker
	Router     *router.Router
	Templates  fs.FS
	Static     fs.FS
}

func New(dep Dependency) error {
	pages, err := template.ParseFS(dep.Templates, "*.html")
	if err != nil {
		return err
	}

	uc := usecase.NewPortfolio(usecase.Dependency{
		SiteName:   dep.Config.GetString("app.site_name"),
		Version:    dep.Config.GetString("app.version"),
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc, pages, dep.Static)

	return nil
}
