// ABOUTME: SMTP mailer that emails the site owner about new contact messages
// ABOUTME: Speaks implicit TLS (port 465) and sets Reply-To to the visitor

package notify

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/lwr/portfolio/internal/config"
	"github.com/lwr/portfolio/internal/store"
)

// ErrNotConfigured is returned when the SMTP settings are incomplete.
var ErrNotConfigured = errors.New("notify: smtp configuration incomplete")

// Mailer delivers contact-form notifications over SMTP.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	to       string
	logger   *slog.Logger
}

// NewMailer validates the SMTP settings and returns a mailer. Callers
// should treat ErrNotConfigured as "run without notifications".
func NewMailer(cfg config.SMTPConfig) (*Mailer, error) {
	if cfg.Host == "" || cfg.Username == "" || cfg.Password == "" || cfg.To == "" {
		return nil, ErrNotConfigured
	}
	return &Mailer{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		to:       cfg.To,
		logger:   slog.Default().With("component", "notify"),
	}, nil
}

// ContactReceived emails the owner about a new contact message. Failures
// are logged, not propagated: notification delivery never affects the
// stored message.
func (m *Mailer) ContactReceived(ctx context.Context, msg *store.ContactMessage) {
	if err := m.send(ctx, msg); err != nil {
		m.logger.Error("sending contact notification", "from", msg.Email, "error", err)
		return
	}
	m.logger.Info("contact notification sent", "from", msg.Email)
}

func (m *Mailer) send(ctx context.Context, msg *store.ContactMessage) error {
	addr := net.JoinHostPort(m.host, strconv.Itoa(m.port))

	dialer := &tls.Dialer{Config: &tls.Config{ServerName: m.host}}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dialing %s: %w", addr, err)
	}

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}
	if err := client.Mail(m.username); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(m.to); err != nil {
		return fmt.Errorf("smtp rcpt to: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(m.buildMessage(msg)); err != nil {
		w.Close()
		return fmt.Errorf("writing message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finishing message: %w", err)
	}

	return client.Quit()
}

// buildMessage renders the notification as a plain-text RFC 5322 message.
func (m *Mailer) buildMessage(msg *store.ContactMessage) []byte {
	subject := mime.QEncoding.Encode("utf-8", "[lwr.ro] Mesaj nou: "+msg.Subject)

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.username)
	fmt.Fprintf(&b, "To: %s\r\n", m.to)
	fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.Email)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "Ai primit un mesaj nou prin formularul de contact de pe lwr.ro\r\n\r\n")
	fmt.Fprintf(&b, "De la: %s\r\n", msg.Name)
	fmt.Fprintf(&b, "Email: %s\r\n", msg.Email)
	fmt.Fprintf(&b, "Subiect: %s\r\n\r\n", msg.Subject)
	fmt.Fprintf(&b, "Mesaj:\r\n%s\r\n", msg.Message)
	b.WriteString("\r\n---\r\nAcest email a fost trimis automat de pe site-ul tău.\r\n")

	return []byte(b.String())
}
