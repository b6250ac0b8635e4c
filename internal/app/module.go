package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/portfolio/internal/contact"
	"github.com/shandysiswandi/portfolio/internal/portfolio"
	"github.com/shandysiswandi/portfolio/web"
)

func (a *App) initModules() {
	if err := contact.New(contact.Dependency{
		Config:     a.config,
		Instrument: a.ins,
		Validator:  a.validator,
		Router:     a.router,
		Mail:       a.mail,
		Pool:       a.pool,
	}); err != nil {
		slog.Error("failed to init module contact", "error", err)
		os.Exit(1)
	}

	if err := portfolio.New(portfolio.Dependency{
		Config:     a.config,
		Instrument: a.ins,
		Clock:      a.clock,
		Router:     a.router,
		Templates:  web.Templates(),
		Static:     web.Static(),
	}); err != nil {
		slog.Error("failed to init module portfolio", "error", err)
		os.Exit(1)
	}

	if s := contact.SettingsFromConfig(a.config); s.Sender == "" || s.Password == "" || s.Receiver == "" {
		slog.Warn("mail settings incomplete, contact form will answer with a configuration error")
	}
}
