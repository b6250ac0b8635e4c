package contact

import (
	"github.com/shandysiswandi/portfolio/internal/contact/entity"
	"github.com/shandysiswandi/portfolio/internal/contact/inbound"
	"github.com/shandysiswandi/portfolio/internal/contact/outbound/email"
	"github.com/shandysiswandi/portfolio/internal/contact/usecase"
	"github.com/shandysiswandi/portfolio/internal/pkg/config"
	"github.com/shandysiswandi/portfolio/internal/pkg/goroutine"
	"github.com/shandysiswandi/portfolio/internal/pkg/instrument"
	"github.com/shandysiswandi/portfolio/internal/pkg/mail"
	"github.com/shandysiswandi/portfolio/internal/pkg/router"
	"github.com/shandysiswandi/portfolio/internal/pkg/validator"
)

type Dependency struct {
	Config     config.Config
	Instrument instrument.Instrumentation
	Validator  validator.Validator
	Router     *router.Router
	Mail       mail.Mail
	Pool       *goroutine.Pool
}

func New(dep Dependency) error {
	repoMail := email.New(dep.Mail, dep.Instrument)

	uc := usecase.NewContact(usecase.Dependency{
		Settings:   SettingsFromConfig(dep.Config),
		Validator:  dep.Validator,
		RepoMail:   repoMail,
		Pool:       dep.Pool,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}

// SettingsFromConfig snapshots the contact settings. Later config changes are
// not observed.
func SettingsFromConfig(cfg config.Config) entity.Settings {
	return entity.Settings{
		Sender:   cfg.GetString("mail.sender"),
		Password: cfg.GetString("mail.password"),
		Receiver: cfg.GetString("mail.receiver"),
		Limits: entity.Limits{
			Name:    cfg.GetInt("contact.max_name"),
			Email:   cfg.GetInt("contact.max_email"),
			Message: cfg.GetInt("contact.max_message"),
		},
		Version: cfg.GetString("app.version"),
	}
}
