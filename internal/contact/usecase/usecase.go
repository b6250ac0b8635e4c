package usecase

import (
	"context"

	"github.com/shandysiswandi/portfolio/internal/contact/entity"
	"github.com/shandysiswandi/portfolio/internal/pkg/goroutine"
	"github.com/shandysiswandi/portfolio/internal/pkg/instrument"
	"github.com/shandysiswandi/portfolio/internal/pkg/mail"
	"github.com/shandysiswandi/portfolio/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

const (
	msgFieldsRequired = "Por favor, preencha todos os campos."
	msgNameTooLong    = "Nome muito longo."
	msgEmailTooLong   = "Email muito longo."
	msgMessageTooLong = "Mensagem muito longa."
	msgEmailInvalid   = "Por favor, insira um e-mail válido."
	msgDispatchFailed = "Erro ao enviar mensagem, tente novamente mais tarde."

	healthStatusOK = "ok"
)

type repoMail interface {
	Send(ctx context.Context, msg mail.Message) error
}

type workerPool interface {
	Submit(ctx context.Context, task goroutine.Task) *goroutine.Future
}

type Usecase struct {
	settings  entity.Settings
	validator validator.Validator
	repoMail  repoMail
	pool      workerPool
	ins       instrument.Instrumentation
}

type Dependency struct {
	Settings   entity.Settings
	Validator  validator.Validator
	RepoMail   repoMail
	Pool       workerPool
	Instrument instrument.Instrumentation
}

func NewContact(dep Dependency) *Usecase {
	return &Usecase{
		settings:  dep.Settings,
		validator: dep.Validator,
		repoMail:  dep.RepoMail,
		pool:      dep.Pool,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("contact.usecase").Start(ctx, name)
}
