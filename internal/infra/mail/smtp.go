package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"interview-scheduler/internal/pkg/config"
	"interview-scheduler/internal/pkg/errs"
)

// SMTPTransport delivers alerts over plain SMTP. No queueing and no
// retry here; the notifier treats delivery as fire-and-forget.
type SMTPTransport struct {
	addr string
	from string
	auth smtp.Auth
}

func NewSMTPTransport(cfg config.SMTPConfig) *SMTPTransport {
	var auth smtp.Auth
	if cfg.User != "" {
		auth = smtp.PlainAuth("", cfg.User, cfg.Pass, cfg.Host)
	}
	return &SMTPTransport{
		addr: cfg.Host + ":" + cfg.Port,
		from: cfg.From,
		auth: auth,
	}
}

func (t *SMTPTransport) Send(ctx context.Context, recipient, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", t.from)
	fmt.Fprintf(&msg, "To: %s\r\n", recipient)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	if err := smtp.SendMail(t.addr, t.auth, t.from, []string{recipient}, []byte(msg.String())); err != nil {
		return errs.Wrap(err, "failed to send mail")
	}
	return nil
}

// LogTransport is used when no SMTP host is configured: alerts are
// written to the structured log instead of being dropped silently.
type LogTransport struct {
	logger *slog.Logger
}

func NewLogTransport(logger *slog.Logger) *LogTransport {
	return &LogTransport{logger: logger}
}

func (t *LogTransport) Send(_ context.Context, recipient, subject, body string) error {
	t.logger.Info("notification (no SMTP host configured)",
		"recipient", recipient,
		"subject", subject,
		"body_bytes", len(body),
	)
	return nil
}
