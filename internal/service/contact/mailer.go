package contact

import (
	"context"
	"crypto/tls"

	"gopkg.in/gomail.v2"

	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
)

// Mail 발송할 메일 한 건입니다.
type Mail struct {
	FromName string
	To       string
	ReplyTo  string
	Subject  string
	Text     string
	HTML     string
}

// Mailer 메일을 발송합니다.
type Mailer interface {
	Send(ctx context.Context, m Mail) error
}

// SMTPConfig SMTP 서버 접속 정보입니다.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string

	// From 발신 주소입니다. 비어 있으면 Username을 사용합니다.
	From string

	InsecureSkipVerify bool
}

// SMTPMailer gomail로 SMTP 서버를 통해 메일을 발송합니다.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

var _ Mailer = (*SMTPMailer)(nil)

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	if cfg.InsecureSkipVerify {
		d.TLSConfig = &tls.Config{InsecureSkipVerify: true, ServerName: cfg.Host} //nolint:gosec
	}

	from := cfg.From
	if from == "" {
		from = cfg.Username
	}

	return &SMTPMailer{dialer: d, from: from}
}

// Send 메일을 발송합니다. gomail은 취소를 지원하지 않으므로 ctx는 발송 전에만 확인합니다.
func (s *SMTPMailer) Send(ctx context.Context, m Mail) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := s.message(m)
	if err := s.dialer.DialAndSend(msg); err != nil {
		return apperrors.Wrap(err, apperrors.Unavailable, "SMTP 서버로 메일을 발송하지 못했습니다")
	}
	return nil
}

func (s *SMTPMailer) message(m Mail) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", s.from, m.FromName)
	msg.SetHeader("To", m.To)
	if m.ReplyTo != "" {
		msg.SetHeader("Reply-To", m.ReplyTo)
	}
	msg.SetHeader("Subject", m.Subject)
	msg.SetBody("text/plain", m.Text)
	if m.HTML != "" {
		msg.AddAlternative("text/html", m.HTML)
	}
	return msg
}
