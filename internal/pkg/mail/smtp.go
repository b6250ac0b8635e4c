package mail

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/tls"
	"encoding/hex"
	"errors"
	"fmt"
	"mime"
	"mime/quotedprintable"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"
)

// DefaultTimeout bounds a whole SMTP exchange when the context has no deadline.
const DefaultTimeout = 20 * time.Second

var (
	// ErrSMTPHostPortRequired is returned when Host/Port are missing.
	ErrSMTPHostPortRequired = errors.New("smtp host and port are required")
	// ErrSMTPNoRecipients is returned when To/Cc/Bcc are all empty.
	ErrSMTPNoRecipients = errors.New("no recipients provided")
	// ErrSMTPNoSender is returned when both Message.From and the configured default From are empty.
	ErrSMTPNoSender = errors.New("no sender provided")
	// ErrSMTPAuthUnsupported is returned when credentials are configured but the relay offers no AUTH.
	ErrSMTPAuthUnsupported = errors.New("smtp server does not support authentication")
)

// SMTPConfig configures the SMTP implementation.
type SMTPConfig struct {
	// Host is the SMTP server hostname, also used for TLS verification.
	Host string
	// Port is the SMTP server port.
	Port int
	// Username is the SMTP authentication username.
	Username string
	// Password is the SMTP authentication password.
	Password string
	// From is the default sender when Message.From is empty.
	From string
	// ImplicitTLS dials straight into TLS (port 465 style). When false the
	// connection is upgraded with STARTTLS if the server offers it.
	ImplicitTLS bool
	// Timeout bounds the exchange when the context carries no deadline.
	Timeout time.Duration
	// TLSConfig overrides the TLS client configuration.
	TLSConfig *tls.Config
}

// SMTP is a Mail implementation speaking SMTP through net/smtp.
type SMTP struct {
	cfg  SMTPConfig
	addr string
}

// NewSMTP constructs an SMTP mail sender.
func NewSMTP(cfg SMTPConfig) (*SMTP, error) {
	if cfg.Host == "" || cfg.Port == 0 {
		return nil, ErrSMTPHostPortRequired
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	if cfg.TLSConfig == nil {
		cfg.TLSConfig = &tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12}
	}

	return &SMTP{
		cfg:  cfg,
		addr: net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
	}, nil
}

// Send delivers a message over one authenticated SMTP session.
func (s *SMTP) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	recipients := make([]string, 0, len(msg.To)+len(msg.Cc)+len(msg.Bcc))
	recipients = append(recipients, msg.To...)
	recipients = append(recipients, msg.Cc...)
	recipients = append(recipients, msg.Bcc...)
	if len(recipients) == 0 {
		return ErrSMTPNoRecipients
	}

	from := msg.From
	if from == "" {
		from = s.cfg.From
	}
	if from == "" {
		return ErrSMTPNoSender
	}

	raw, err := buildMessage(from, msg)
	if err != nil {
		return err
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	conn, err := s.dial(ctx)
	if err != nil {
		return fmt.Errorf("smtp dial %s: %w", s.addr, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return err
		}
	}
	stop := context.AfterFunc(ctx, func() {
		//nolint:errcheck // unblocks pending reads and writes
		conn.SetDeadline(time.Now())
	})
	defer stop()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer c.Close()

	if err := s.secure(c); err != nil {
		return err
	}

	if err := s.authenticate(c); err != nil {
		return err
	}

	if err := c.Mail(from); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	for _, rcpt := range recipients {
		if err := c.Rcpt(rcpt); err != nil {
			return fmt.Errorf("smtp rcpt to %s: %w", rcpt, err)
		}
	}

	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(raw); err != nil {
		return fmt.Errorf("smtp write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp end data: %w", err)
	}

	return c.Quit()
}

// Close implements io.Closer; every Send uses its own connection.
func (s *SMTP) Close() error {
	return nil
}

func (s *SMTP) dial(ctx context.Context) (net.Conn, error) {
	if s.cfg.ImplicitTLS {
		d := &tls.Dialer{Config: s.cfg.TLSConfig}
		return d.DialContext(ctx, "tcp", s.addr)
	}

	var d net.Dialer
	return d.DialContext(ctx, "tcp", s.addr)
}

func (s *SMTP) secure(c *smtp.Client) error {
	if s.cfg.ImplicitTLS {
		return nil
	}

	if ok, _ := c.Extension("STARTTLS"); !ok {
		return nil
	}

	if err := c.StartTLS(s.cfg.TLSConfig); err != nil {
		return fmt.Errorf("smtp starttls: %w", err)
	}

	return nil
}

func (s *SMTP) authenticate(c *smtp.Client) error {
	if s.cfg.Username == "" && s.cfg.Password == "" {
		return nil
	}

	if ok, _ := c.Extension("AUTH"); !ok {
		return ErrSMTPAuthUnsupported
	}

	if err := c.Auth(smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}

	return nil
}

func buildMessage(from string, msg Message) ([]byte, error) {
	var buf bytes.Buffer

	writeHeader(&buf, "From", from)
	writeHeader(&buf, "To", strings.Join(msg.To, ", "))
	if len(msg.Cc) > 0 {
		writeHeader(&buf, "Cc", strings.Join(msg.Cc, ", "))
	}
	if msg.ReplyTo != "" {
		writeHeader(&buf, "Reply-To", msg.ReplyTo)
	}
	writeHeader(&buf, "Subject", mime.QEncoding.Encode("utf-8", msg.Subject))
	writeHeader(&buf, "Date", time.Now().Format(time.RFC1123Z))
	writeHeader(&buf, "MIME-Version", "1.0")

	if msg.HTMLBody != "" && msg.TextBody != "" {
		boundary := multipartBoundary()
		writeHeader(&buf, "Content-Type", "multipart/alternative; boundary="+boundary)
		buf.WriteString("\r\n")

		for _, part := range []struct{ contentType, body string }{
			{"text/plain; charset=UTF-8", msg.TextBody},
			{"text/html; charset=UTF-8", msg.HTMLBody},
		} {
			fmt.Fprintf(&buf, "--%s\r\n", boundary)
			writeHeader(&buf, "Content-Type", part.contentType)
			writeHeader(&buf, "Content-Transfer-Encoding", "quoted-printable")
			buf.WriteString("\r\n")
			if err := writeQuotedPrintable(&buf, part.body); err != nil {
				return nil, err
			}
			buf.WriteString("\r\n")
		}
		fmt.Fprintf(&buf, "--%s--\r\n", boundary)

		return buf.Bytes(), nil
	}

	body, contentType := msg.TextBody, "text/plain; charset=UTF-8"
	if msg.HTMLBody != "" {
		body, contentType = msg.HTMLBody, "text/html; charset=UTF-8"
	}

	writeHeader(&buf, "Content-Type", contentType)
	writeHeader(&buf, "Content-Transfer-Encoding", "quoted-printable")
	buf.WriteString("\r\n")
	if err := writeQuotedPrintable(&buf, body); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func writeHeader(buf *bytes.Buffer, key, value string) {
	// header values never carry line breaks, whatever the caller passed
	value = strings.NewReplacer("\r", "", "\n", "").Replace(value)
	buf.WriteString(key + ": " + value + "\r\n")
}

func writeQuotedPrintable(buf *bytes.Buffer, body string) error {
	qp := quotedprintable.NewWriter(buf)
	if _, err := qp.Write([]byte(body)); err != nil {
		return err
	}
	return qp.Close()
}

func multipartBoundary() string {
	var b [12]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "portfolio-boundary-fallback"
	}
	return "portfolio-boundary-" + hex.EncodeToString(b[:])
}
