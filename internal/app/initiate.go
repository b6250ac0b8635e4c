package app

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/shandysiswandi/portfolio/internal/pkg/clock"
	"github.com/shandysiswandi/portfolio/internal/pkg/config"
	"github.com/shandysiswandi/portfolio/internal/pkg/goroutine"
	"github.com/shandysiswandi/portfolio/internal/pkg/instrument"
	"github.com/shandysiswandi/portfolio/internal/pkg/mail"
	"github.com/shandysiswandi/portfolio/internal/pkg/router"
	"github.com/shandysiswandi/portfolio/internal/pkg/uid"
	"github.com/shandysiswandi/portfolio/internal/pkg/validator"
)

// configDefaults apply when neither the config file nor the environment sets a key.
var configDefaults = map[string]any{
	"app.name":                                    "portfolio",
	"app.site_name":                               "Portfólio",
	"app.version":                                 "1.0.0",
	"app.env":                                     "production",
	"app.server.http.address":                     ":8000",
	"app.server.http.read_timeout_seconds":        10,
	"app.server.http.read_header_timeout_seconds": 5,
	"app.server.http.write_timeout_seconds":       30,
	"app.server.http.idle_timeout_seconds":        60,
	"app.server.cors.allowed_origins":             "http://localhost,http://127.0.0.1",
	"app.server.cors.allow_all":                   false,
	"mail.host":                                   "smtp.gmail.com",
	"mail.port":                                   465,
	"mail.implicit_tls":                           true,
	"mail.timeout_seconds":                        20,
	"mail.workers":                                goroutine.DefaultWorkers,
	"mail.queue_size":                             goroutine.DefaultQueueSize,
	"contact.max_name":                            80,
	"contact.max_email":                           120,
	"contact.max_message":                         5000,
	"instrument.enabled":                          false,
	"instrument.trace_sample_ratio":               1.0,
	"instrument.metric_interval_seconds":          60,
	"instrument.log_level":                        "info",
	"instrument.log_mask_fields":                  "authorization,cookie,email,mensagem,password",
	"instrument.log_file.max_size_mb":             50,
	"instrument.log_file.max_backups":             5,
	"instrument.log_file.max_age_days":            14,
	"instrument.log_file.compress":                true,
}

// configEnv maps config keys to the environment variables that override them.
var configEnv = map[string]string{
	"app.name":                        "APP_NAME",
	"app.site_name":                   "SITE_NAME",
	"app.version":                     "APP_VERSION",
	"app.env":                         "APP_ENV",
	"app.server.http.address":         "HTTP_ADDRESS",
	"app.server.cors.allowed_origins": "ALLOWED_ORIGINS",
	"app.server.cors.allow_all":       "ALLOW_ALL_CORS",
	"mail.sender":                     "EMAIL_SENDER",
	"mail.password":                   "EMAIL_PASSWORD",
	"mail.receiver":                   "EMAIL_RECEIVER",
	"mail.host":                       "SMTP_HOST",
	"mail.port":                       "SMTP_PORT",
	"mail.implicit_tls":               "SMTP_IMPLICIT_TLS",
	"mail.timeout_seconds":            "SMTP_TIMEOUT_SECONDS",
	"mail.workers":                    "SMTP_WORKERS",
	"mail.queue_size":                 "SMTP_QUEUE_SIZE",
	"contact.max_name":                "CONTACT_MAX_NAME",
	"contact.max_email":               "CONTACT_MAX_EMAIL",
	"contact.max_message":             "CONTACT_MAX_MESSAGE",
	"instrument.enabled":              "OTEL_ENABLED",
	"instrument.otlp_endpoint":        "OTEL_EXPORTER_OTLP_ENDPOINT",
	"instrument.log_level":            "LOG_LEVEL",
	"instrument.log_file.path":        "LOG_FILE",
}

func (a *App) initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "./config/config.yaml"
	}

	cfg, err := config.NewViper(path, config.WithDefaults(configDefaults), config.WithEnv(configEnv))
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	a.config = cfg
}

func (a *App) initInstrument() {
	ins, err := instrument.New(context.Background(), &instrument.Config{
		Enabled:          a.config.GetBool("instrument.enabled"),
		ServiceName:      a.config.GetString("app.name"),
		ServiceVersion:   a.config.GetString("app.version"),
		Environment:      a.config.GetString("app.env"),
		OTLPEndpoint:     a.config.GetString("instrument.otlp_endpoint"),
		OTLPSecure:       a.config.GetBool("instrument.otlp_secure"),
		TraceSampleRatio: a.config.GetFloat64("instrument.trace_sample_ratio"),
		MetricsInterval:  a.config.GetSecond("instrument.metric_interval_seconds"),
		MaskFields:       a.config.GetArray("instrument.log_mask_fields"),
		LogLevel:         a.config.GetString("instrument.log_level"),
		LogFile: instrument.LogFileConfig{
			Path:       a.config.GetString("instrument.log_file.path"),
			MaxSizeMB:  a.config.GetInt("instrument.log_file.max_size_mb"),
			MaxBackups: a.config.GetInt("instrument.log_file.max_backups"),
			MaxAgeDays: a.config.GetInt("instrument.log_file.max_age_days"),
			Compress:   a.config.GetBool("instrument.log_file.compress"),
		},
	})
	if err != nil {
		slog.Error("failed to init instrumentation", "error", err)
		os.Exit(1)
	}
	a.ins = ins
}

func (a *App) initLibraries() {
	a.clock = clock.New()
	a.uuid = uid.NewUUID()

	validator, err := validator.NewV10Validator()
	if err != nil {
		slog.Error("failed to init validation v10 validator", "error", err)
		os.Exit(1)
	}
	a.validator = validator
}

func (a *App) initMail() {
	mail, err := mail.NewSMTP(mail.SMTPConfig{
		Host:        a.config.GetString("mail.host"),
		Port:        a.config.GetInt("mail.port"),
		Username:    a.config.GetString("mail.sender"),
		Password:    a.config.GetString("mail.password"),
		From:        a.config.GetString("mail.sender"),
		ImplicitTLS: a.config.GetBool("mail.implicit_tls"),
		Timeout:     a.config.GetSecond("mail.timeout_seconds"),
	})
	if err != nil {
		slog.Error("failed to init mail", "error", err)
		os.Exit(1)
	}

	a.mail = mail
}

func (a *App) initPool() {
	a.pool = goroutine.NewPool(a.config.GetInt("mail.workers"), a.config.GetInt("mail.queue_size"))
	slog.Info("mail worker pool started", "workers", a.pool.Workers())
}

func (a *App) initHTTPServer() {
	a.router = router.NewRouter(router.Config{
		Config:     a.config,
		UUID:       a.uuid,
		Instrument: a.ins,
	})

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("app.server.http.address"),
		Handler:           newCORS(a.config).Handler(a.router),
		ReadTimeout:       a.config.GetSecond("app.server.http.read_timeout_seconds"),
		ReadHeaderTimeout: a.config.GetSecond("app.server.http.read_header_timeout_seconds"),
		WriteTimeout:      a.config.GetSecond("app.server.http.write_timeout_seconds"),
		IdleTimeout:       a.config.GetSecond("app.server.http.idle_timeout_seconds"),
	}
}

// newCORS opens the API to every origin when allow_all is set, and to the
// configured origin list otherwise.
func newCORS(cfg config.Config) *cors.Cors {
	if cfg.GetBool("app.server.cors.allow_all") {
		return cors.New(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{
				http.MethodGet,
				http.MethodHead,
				http.MethodPost,
				http.MethodPut,
				http.MethodPatch,
				http.MethodDelete,
				http.MethodOptions,
			},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
		})
	}

	return cors.New(cors.Options{
		AllowedOrigins: cfg.GetArray("app.server.cors.allowed_origins"),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodHead,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
}

func (a *App) initClosers() {
	a.closers = []struct {
		name string
		fn   func(context.Context) error
	}{
		{
			name: "Mail",
			fn: func(context.Context) error {
				return a.mail.Close()
			},
		},
		{
			name: "Instrument",
			fn: func(ctx context.Context) error {
				return a.ins.Shutdown(ctx)
			},
		},
		{
			name: "Config",
			fn: func(context.Context) error {
				return a.config.Close()
			},
		},
	}
}
