package notify

import (
	"fmt"
	"net/smtp"

	"go.uber.org/zap"
)

// Notifier is a fire-and-forget message channel. Send failures are the
// caller's to log and swallow; they must never abort the enclosing operation.
type Notifier interface {
	Send(to, subject, body string) error
}

// SMTPConfig holds the outbound mail settings, usually read from env.
// An empty Host means no transport is configured.
type SMTPConfig struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

// FromConfig selects the mail transport at startup: a real SMTP sender when a
// host is configured, otherwise a log-only no-op. Callers never type-check the
// result; absence of a transport degrades silently.
func FromConfig(cfg SMTPConfig, log *zap.SugaredLogger) Notifier {
	if cfg.Host == "" {
		log.Info("no SMTP host configured, notifications will be logged only")
		return &LogNotifier{Log: log}
	}
	return &SMTPNotifier{Config: cfg}
}

// SMTPNotifier sends plain-text mail over a single SMTP hop.
type SMTPNotifier struct {
	Config SMTPConfig
}

func (n *SMTPNotifier) Send(to, subject, body string) error {
	cfg := n.Config
	msg := []byte("From: " + cfg.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" +
		body + "\r\n")

	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	var auth smtp.Auth
	if cfg.User != "" {
		auth = smtp.PlainAuth("", cfg.User, cfg.Pass, cfg.Host)
	}
	return smtp.SendMail(addr, auth, cfg.From, []string{to}, msg)
}

// LogNotifier records sends in the log and always succeeds.
type LogNotifier struct {
	Log *zap.SugaredLogger
}

func (n *LogNotifier) Send(to, subject, body string) error {
	n.Log.Infow("notification (no transport)", "to", to, "subject", subject)
	return nil
}
