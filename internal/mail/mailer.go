// Package mail sends verification codes and report attachments over SMTP.
// Delivery first tries STARTTLS on the submission port and falls back to
// implicit TLS before surfacing an error.
package mail

import (
	"bytes"
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"
)

const (
	defaultHost       = "smtp.gmail.com"
	defaultSenderName = "Life Minus Work"

	submissionPort  = 587
	implicitTLSPort = 465
)

// Config holds the SMTP relay settings. Sender and AppPassword are hard
// preconditions: without them the mailer refuses to construct.
type Config struct {
	Host        string
	Sender      string
	AppPassword string
	SenderName  string
	ReplyTo     string
}

// Mailer delivers the two transactional messages the app sends.
type Mailer struct {
	cfg Config
}

// New validates the configuration and creates a Mailer.
func New(cfg Config) (*Mailer, error) {
	if cfg.Sender == "" || cfg.AppPassword == "" {
		return nil, fmt.Errorf("mail: sender address and app password are required")
	}
	if cfg.Host == "" {
		cfg.Host = defaultHost
	}
	if cfg.SenderName == "" {
		cfg.SenderName = defaultSenderName
	}
	if cfg.ReplyTo == "" {
		cfg.ReplyTo = cfg.Sender
	}
	return &Mailer{cfg: cfg}, nil
}

// SendVerificationCode emails the one-time code to the given address.
func (m *Mailer) SendVerificationCode(ctx context.Context, to, code, firstName string) error {
	msg, err := m.newMsg(to, "Your Life Minus Work verification code")
	if err != nil {
		return err
	}
	body := fmt.Sprintf("%s\n\nYour code is: %s\nEnter this in the app.\n\n- Life Minus Work", greeting(firstName), code)
	msg.SetBodyString(gomail.TypeTextPlain, body)
	return m.send(ctx, msg)
}

// SendReportAttachment emails the finished report PDF to the given address.
func (m *Mailer) SendReportAttachment(ctx context.Context, to string, pdf []byte, filename, firstName string) error {
	msg, err := m.newMsg(to, "Your Life Minus Work - Reflection Report (PDF)")
	if err != nil {
		return err
	}
	body := fmt.Sprintf("%s\n\nAttached is your Reflection Report (PDF).\n\n- Life Minus Work", greeting(firstName))
	msg.SetBodyString(gomail.TypeTextPlain, body)
	if err := msg.AttachReader(filename, bytes.NewReader(pdf)); err != nil {
		return fmt.Errorf("mail: failed to attach report: %w", err)
	}
	return m.send(ctx, msg)
}

func (m *Mailer) newMsg(to, subject string) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(m.cfg.SenderName, m.cfg.Sender); err != nil {
		return nil, fmt.Errorf("mail: invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("mail: invalid recipient address: %w", err)
	}
	if err := msg.ReplyTo(m.cfg.ReplyTo); err != nil {
		return nil, fmt.Errorf("mail: invalid reply-to address: %w", err)
	}
	msg.Subject(subject)
	return msg, nil
}

// send attempts STARTTLS on the submission port first, then implicit TLS.
// Only the fallback's failure is surfaced.
func (m *Mailer) send(ctx context.Context, msg *gomail.Msg) error {
	if err := m.dial(ctx, msg, false); err == nil {
		return nil
	}
	if err := m.dial(ctx, msg, true); err != nil {
		return fmt.Errorf("mail: delivery failed on both transports: %w", err)
	}
	return nil
}

func (m *Mailer) dial(ctx context.Context, msg *gomail.Msg, implicitTLS bool) error {
	opts := []gomail.Option{
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.Sender),
		gomail.WithPassword(m.cfg.AppPassword),
	}
	if implicitTLS {
		opts = append(opts, gomail.WithSSL(), gomail.WithPort(implicitTLSPort))
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory), gomail.WithPort(submissionPort))
	}

	client, err := gomail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return err
	}
	return client.DialAndSendWithContext(ctx, msg)
}

func greeting(firstName string) string {
	if firstName == "" {
		return "Hi there,"
	}
	return fmt.Sprintf("Hi %s,", firstName)
}
