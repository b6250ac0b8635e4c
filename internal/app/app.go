package app

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/portfolio/internal/pkg/clock"
	"github.com/shandysiswandi/portfolio/internal/pkg/config"
	"github.com/shandysiswandi/portfolio/internal/pkg/goroutine"
	"github.com/shandysiswandi/portfolio/internal/pkg/instrument"
	"github.com/shandysiswandi/portfolio/internal/pkg/mail"
	"github.com/shandysiswandi/portfolio/internal/pkg/router"
	"github.com/shandysiswandi/portfolio/internal/pkg/uid"
	"github.com/shandysiswandi/portfolio/internal/pkg/validator"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	validator validator.Validator
	clock     clock.Clocker
	uuid      uid.StringID

	// resources
	pool *goroutine.Pool
	mail mail.Mail

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	app := &App{}
	app.initConfig()
	app.build()

	return app
}

func newWithConfig(cfg config.Config) *App {
	app := &App{config: cfg}
	app.build()

	return app
}

func (a *App) build() {
	a.ctx, a.cancel = context.WithCancel(context.Background())

	a.initInstrument()
	a.initLibraries()
	a.initMail()
	a.initPool()
	a.initHTTPServer()
	a.initModules()
	a.initClosers()
}
