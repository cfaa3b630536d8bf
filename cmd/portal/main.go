package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/proyectocucea9-hash/proyectocucea/internal/config"
	"github.com/proyectocucea9-hash/proyectocucea/internal/mail"
	"github.com/proyectocucea9-hash/proyectocucea/internal/observability/logging"
	"github.com/proyectocucea9-hash/proyectocucea/internal/observability/metrics"
	impl "github.com/proyectocucea9-hash/proyectocucea/internal/service/impl"
	"github.com/proyectocucea9-hash/proyectocucea/internal/store"
	httpx "github.com/proyectocucea9-hash/proyectocucea/internal/transport/http"
	"github.com/proyectocucea9-hash/proyectocucea/pkg/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "dev"
	}

	logger := logging.NewLogger(logging.Config{
		ServiceName: "portal",
		Environment: env,
		Level:       os.Getenv("LOG_LEVEL"),
	})
	slog.SetDefault(logger)

	logger.Info("starting service")

	cfg := config.Load()
	metrics.MustRegister("portal")

	gdb, err := db.OpenGorm(db.Config{DSN: cfg.DatabaseURL, LogSQL: cfg.LogSQL})
	if err != nil {
		logger.Error("gorm open", "error", err)
		os.Exit(1)
	}
	if err := store.AutoMigrate(gdb); err != nil {
		logger.Error("migrate", "error", err)
		os.Exit(1)
	}

	st := store.New(gdb)

	pw := impl.NewPasswordServiceArgon2id()
	ts := impl.NewTokenServiceHS256(impl.TokenConfig{
		Issuer:     cfg.Issuer,
		Audience:   cfg.Audience,
		AccessTTL:  cfg.AccessTTL,
		SigningKey: []byte(cfg.SigningKey),
	})
	mailer := mail.NewAsyncMailer(mail.Config{
		Host:    cfg.SMTPHost,
		Port:    cfg.SMTPPort,
		User:    cfg.SMTPUser,
		Pass:    cfg.SMTPPass,
		From:    cfg.MailFrom,
		Workers: cfg.MailWorkers,
		Queue:   cfg.MailQueue,
	})
	defer mailer.Close()

	svcs := httpx.Services{
		Auth: impl.NewAuthServiceImpl(st, pw, ts, cfg.AllowedDomains),
		Registration: impl.NewRegistrationServiceImpl(st, pw, mailer, impl.RegistrationConfig{
			AllowedDomains: cfg.AllowedDomains,
			CodeTTL:        cfg.CodeTTL,
		}),
		Votes:    impl.NewVoteServiceImpl(st),
		Catalog:  impl.NewCatalogServiceImpl(st),
		Comments: impl.NewCommentServiceImpl(st),
		Content:  impl.NewContentServiceImpl(st),
	}

	handler := httpx.NewRouter(svcs, httpx.Options{
		TrustProxy:  cfg.TrustProxy,
		CORSOrigins: splitOrigins(os.Getenv("CORS_ORIGINS")),
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		logger.Info("shutting down")
		_ = srv.Close()
	}()

	logger.Info("portal listening", "addr", srv.Addr, "issuer", cfg.Issuer)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
