package inbound

import (
	"github.com/shandysiswandi/portfolio/internal/contact/usecase"
	"github.com/shandysiswandi/portfolio/internal/pkg/goerror"
	"github.com/shandysiswandi/portfolio/internal/pkg/router"
)

const (
	msgInvalidJSON = "JSON inválido."
	msgSent        = "Mensagem enviada com sucesso!"
)

type HTTPEndpoint struct {
	uc uc
}

// Submit relays a contact form entry by email.
// @Summary Send contact message
// @Description Validates the form fields and emails them to the site owner.
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Contact form payload"
// @Success 200 {object} ContactResponse "Message sent"
// @Failure 400 {object} router.ErrorResponse "Invalid body or field"
// @Failure 500 {object} router.ErrorResponse "Missing settings or relay failure"
// @Router /contato/ [post]
func (h *HTTPEndpoint) Submit(r *router.Request) (any, error) {
	var req ContactRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, goerror.NewInvalidFormat(msgInvalidJSON)
	}

	err := h.uc.Submit(r.Context(), usecase.SubmitInput{
		Name:    req.Nome,
		Email:   req.Email,
		Message: req.Mensagem,
	})
	if err != nil {
		return nil, err
	}

	return ContactResponse{Msg: msgSent}, nil
}

// Health reports liveness and which mail settings are missing.
// @Summary Health check
// @Tags Contact
// @Produce json
// @Success 200 {object} HealthResponse "Service status"
// @Router /healthz [get]
func (h *HTTPEndpoint) Health(r *router.Request) (any, error) {
	out := h.uc.Health(r.Context())

	return HealthResponse{
		Status:      out.Status,
		MissingEnvs: out.MissingEnvs,
		AppVersion:  out.AppVersion,
	}, nil
}
