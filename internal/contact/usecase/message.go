package usecase

import (
	"github.com/shandysiswandi/portfolio/internal/contact/entity"
	"github.com/shandysiswandi/portfolio/internal/pkg/mail"
)

func buildMessage(settings entity.Settings, sub entity.Submission) mail.Message {
	body := "Você recebeu uma nova mensagem pelo portfólio:\n\n" +
		"Nome: " + sub.Name + "\n" +
		"E-mail: " + sub.Email + "\n\n" +
		"Mensagem:\n" + sub.Message + "\n"

	return mail.Message{
		From:     settings.Sender,
		To:       []string{settings.Receiver},
		ReplyTo:  sub.Email,
		Subject:  "[Portfólio] Contato de " + sub.Name,
		TextBody: body,
	}
}
