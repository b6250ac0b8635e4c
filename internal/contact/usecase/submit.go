package usecase

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/shandysiswandi/portfolio/internal/contact/entity"
	"github.com/shandysiswandi/portfolio/internal/pkg/goerror"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type SubmitInput struct {
	Name    string `validate:"required"`
	Email   string `validate:"required"`
	Message string `validate:"required"`
}

// Submit relays one contact form entry to the site owner's mailbox.
//
// Steps run in a fixed order: sanitize, validate, check settings, build the
// email, then hand the send to the worker pool and wait for its outcome.
func (s *Usecase) Submit(ctx context.Context, in SubmitInput) error {
	ctx, span := s.startSpan(ctx, "Submit")
	defer span.End()

	in = SubmitInput{
		Name:    Sanitize(in.Name),
		Email:   Sanitize(in.Email),
		Message: Sanitize(in.Message),
	}

	if err := s.validateSubmission(in); err != nil {
		return err
	}

	if missing := s.MissingSettings(); len(missing) > 0 {
		slog.ErrorContext(ctx, "contact settings missing, email not sent", "missing", missing)
		return goerror.NewMisconfigured(missing...)
	}

	msg := buildMessage(s.settings, entity.Submission(in))
	span.SetAttributes(attribute.Int("contact.message_length", len([]rune(in.Message))))

	err := s.pool.Submit(ctx, func(ctx context.Context) error {
		return s.repoMail.Send(ctx, msg)
	}).Wait(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "dispatch failed")
		slog.ErrorContext(ctx, "failed to send contact email", "reply_to", in.Email, "error", err)
		return goerror.NewServer(err, msgDispatchFailed)
	}

	slog.InfoContext(ctx, "contact email sent", "name_length", len([]rune(in.Name)))

	return nil
}

func (s *Usecase) validateSubmission(in SubmitInput) error {
	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(msgFieldsRequired)
	}

	rules := []struct {
		value string
		tag   string
		msg   string
	}{
		{value: in.Name, tag: "max=" + strconv.Itoa(s.settings.Limits.Name), msg: msgNameTooLong},
		{value: in.Email, tag: "max=" + strconv.Itoa(s.settings.Limits.Email), msg: msgEmailTooLong},
		{value: in.Message, tag: "max=" + strconv.Itoa(s.settings.Limits.Message), msg: msgMessageTooLong},
		{value: in.Email, tag: "looseemail", msg: msgEmailInvalid},
	}

	for _, rule := range rules {
		if err := s.validator.Var(rule.value, rule.tag); err != nil {
			return goerror.NewInvalidInput(rule.msg)
		}
	}

	return nil
}
