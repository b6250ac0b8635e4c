package inbound

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/shandysiswandi/portfolio/internal/contact/entity"
	"github.com/shandysiswandi/portfolio/internal/contact/usecase"
	"github.com/shandysiswandi/portfolio/internal/pkg/goerror"
	"github.com/shandysiswandi/portfolio/internal/pkg/goroutine"
	"github.com/shandysiswandi/portfolio/internal/pkg/instrument"
	"github.com/shandysiswandi/portfolio/internal/pkg/mail"
	"github.com/shandysiswandi/portfolio/internal/pkg/router"
	"github.com/shandysiswandi/portfolio/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

type stubUsecase struct {
	submitErr error
	got       []usecase.SubmitInput
	health    usecase.HealthOutput
}

func (s *stubUsecase) Submit(_ context.Context, in usecase.SubmitInput) error {
	s.got = append(s.got, in)
	return s.submitErr
}

func (s *stubUsecase) Health(context.Context) usecase.HealthOutput {
	return s.health
}

type recordingMail struct {
	mu   sync.Mutex
	sent []mail.Message
	err  error
}

func (m *recordingMail) Send(_ context.Context, msg mail.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return m.err
}

func newHandler(u uc) http.Handler {
	r := router.NewRouter(router.Config{UUID: fixedID("cid"), Instrument: instrument.NewNoop()})
	RegisterHTTPEndpoint(r, u)
	return r
}

func post(h http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/contato/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHTTPEndpoint_Submit(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		submitErr error
		wantCode  int
		wantBody  string
		wantCalls int
	}{
		{
			name:      "sent",
			body:      `{"nome":"Ana","email":"ana@example.com","mensagem":"Olá"}`,
			wantCode:  http.StatusOK,
			wantBody:  `{"msg":"Mensagem enviada com sucesso!"}`,
			wantCalls: 1,
		},
		{
			name:     "malformed json",
			body:     `{"nome":`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"detail":"JSON inválido."}`,
		},
		{
			name:     "array body",
			body:     `["Ana"]`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"detail":"JSON inválido."}`,
		},
		{
			name:     "wrong field type",
			body:     `{"nome":1,"email":"ana@example.com","mensagem":"Olá"}`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"detail":"JSON inválido."}`,
		},
		{
			name:      "validation error passes through",
			body:      `{"nome":"","email":"","mensagem":""}`,
			submitErr: goerror.NewInvalidInput("Por favor, preencha todos os campos."),
			wantCode:  http.StatusBadRequest,
			wantBody:  `{"detail":"Por favor, preencha todos os campos."}`,
			wantCalls: 1,
		},
		{
			name:      "misconfigured",
			body:      `{"nome":"Ana","email":"ana@example.com","mensagem":"Olá"}`,
			submitErr: goerror.NewMisconfigured("EMAIL_PASSWORD"),
			wantCode:  http.StatusInternalServerError,
			wantBody:  `{"detail":"Erro de configuração: faltando EMAIL_PASSWORD"}`,
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubUsecase{submitErr: tt.submitErr}
			rec := post(newHandler(stub), tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.Len(t, stub.got, tt.wantCalls)
		})
	}
}

func TestHTTPEndpoint_SubmitMapsFields(t *testing.T) {
	stub := &stubUsecase{}
	rec := post(newHandler(stub), `{"mensagem":"Oi","nome":"Ana","email":"ana@example.com","extra":true}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, stub.got, 1)
	assert.Equal(t, usecase.SubmitInput{Name: "Ana", Email: "ana@example.com", Message: "Oi"}, stub.got[0])
}

func TestHTTPEndpoint_Health(t *testing.T) {
	stub := &stubUsecase{health: usecase.HealthOutput{
		Status:      "ok",
		MissingEnvs: []string{"EMAIL_SENDER", "EMAIL_RECEIVER"},
		AppVersion:  "1.0.0",
	}}

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	newHandler(stub).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","missing_envs":["EMAIL_SENDER","EMAIL_RECEIVER"],"app_version":"1.0.0"}`, rec.Body.String())
}

func TestHTTPEndpoint_EndToEnd(t *testing.T) {
	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	pool := goroutine.NewPool(2, 4)
	t.Cleanup(func() { _ = pool.Close() })

	settings := entity.Settings{
		Sender:   "site@example.com",
		Password: "secret",
		Receiver: "owner@example.com",
		Limits:   entity.Limits{Name: 80, Email: 120, Message: 5000},
		Version:  "1.0.0",
	}

	newUsecase := func(s entity.Settings, m *recordingMail) *usecase.Usecase {
		return usecase.NewContact(usecase.Dependency{
			Settings:   s,
			Validator:  v,
			RepoMail:   m,
			Pool:       pool,
			Instrument: instrument.NewNoop(),
		})
	}

	t.Run("delivered", func(t *testing.T) {
		m := &recordingMail{}
		rec := post(newHandler(newUsecase(settings, m)), `{"nome":"Ana","email":"ana@example.com","mensagem":"Olá"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"msg":"Mensagem enviada com sucesso!"}`, rec.Body.String())
		require.Len(t, m.sent, 1)
		assert.Contains(t, m.sent[0].TextBody, "Olá")
	})

	t.Run("invalid email", func(t *testing.T) {
		m := &recordingMail{}
		rec := post(newHandler(newUsecase(settings, m)), `{"nome":"Ana","email":"ana","mensagem":"Olá"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"detail":"Por favor, insira um e-mail válido."}`, rec.Body.String())
		assert.Empty(t, m.sent)
	})

	t.Run("missing keys", func(t *testing.T) {
		m := &recordingMail{}
		rec := post(newHandler(newUsecase(settings, m)), `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"detail":"Por favor, preencha todos os campos."}`, rec.Body.String())
	})

	t.Run("relay failure", func(t *testing.T) {
		m := &recordingMail{err: errors.New("421 service not available")}
		rec := post(newHandler(newUsecase(settings, m)), `{"nome":"Ana","email":"ana@example.com","mensagem":"Olá"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"detail":"Erro ao enviar mensagem, tente novamente mais tarde."}`, rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "421")
	})

	t.Run("missing settings", func(t *testing.T) {
		m := &recordingMail{}
		s := settings
		s.Password = ""
		rec := post(newHandler(newUsecase(s, m)), `{"nome":"Ana","email":"ana@example.com","mensagem":"Olá"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"detail":"Erro de configuração: faltando EMAIL_PASSWORD"}`, rec.Body.String())
		assert.Empty(t, m.sent)
	})
}
