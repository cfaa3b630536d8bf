package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"sync"

	"github.com/proyectocucea9-hash/proyectocucea/internal/observability/metrics"
	"github.com/proyectocucea9-hash/proyectocucea/internal/service"
)

type Config struct {
	Host    string
	Port    int
	User    string
	Pass    string
	From    string
	Workers int
	Queue   int
}

type job struct {
	to   string
	body string
}

// SendFunc performs one SMTP delivery. Swappable in tests.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// AsyncMailer dispatches mail through a bounded worker pool. Enqueueing never
// blocks the caller: when the queue is full the message is dropped and
// logged. Delivery is best-effort and observed only through logs and metrics.
type AsyncMailer struct {
	cfg  Config
	send SendFunc

	jobs chan job
	wg   sync.WaitGroup
	once sync.Once
}

var _ service.Mailer = (*AsyncMailer)(nil)

func NewAsyncMailer(cfg Config) *AsyncMailer {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Queue <= 0 {
		cfg.Queue = 16
	}
	m := &AsyncMailer{
		cfg:  cfg,
		send: smtp.SendMail,
		jobs: make(chan job, cfg.Queue),
	}
	for i := 0; i < cfg.Workers; i++ {
		m.wg.Add(1)
		go m.worker()
	}
	return m
}

func (m *AsyncMailer) SendVerificationCode(ctx context.Context, to, code string) {
	body := fmt.Sprintf(
		"Subject: Código de verificación\r\nFrom: %s\r\nTo: %s\r\n\r\nTu código de verificación es: %s\r\n",
		m.cfg.From, to, code,
	)
	select {
	case m.jobs <- job{to: to, body: body}:
	default:
		metrics.MailDispatchTotal.WithLabelValues("dropped").Inc()
		slog.Warn("mail queue full, dropping message", "to", to)
	}
}

// Close stops accepting work and waits for in-flight deliveries.
func (m *AsyncMailer) Close() {
	m.once.Do(func() { close(m.jobs) })
	m.wg.Wait()
}

func (m *AsyncMailer) worker() {
	defer m.wg.Done()
	for j := range m.jobs {
		var auth smtp.Auth
		if m.cfg.User != "" {
			auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
		}
		addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
		if err := m.send(addr, auth, m.cfg.From, []string{j.to}, []byte(j.body)); err != nil {
			metrics.MailDispatchTotal.WithLabelValues("failure").Inc()
			slog.Error("mail delivery failed", "to", j.to, "error", err)
			continue
		}
		metrics.MailDispatchTotal.WithLabelValues("success").Inc()
		slog.Info("mail delivered", "to", j.to)
	}
}
