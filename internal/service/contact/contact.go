// Package contact 문의 양식 접수를 처리합니다.
//
// 접수된 문의는 영업 담당자에게 메일로 발송되고, 설정된 경우 텔레그램으로도 전달됩니다.
// 응답에는 방문자가 WhatsApp으로 바로 문의할 수 있는 링크가 포함됩니다.
package contact

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/go-playground/validator/v10"

	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
	applog "github.com/darkkaiser/catalog-server/pkg/log"
	"github.com/darkkaiser/catalog-server/pkg/strutil"
)

const component = "contact"

// ErrMissingRequiredFields 필수 항목(name, email, subject, message)이 비어 있습니다.
var ErrMissingRequiredFields = apperrors.New(apperrors.InvalidInput, "Missing required fields")

// Request 문의 양식 입력입니다.
type Request struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Phone       string `json:"phone,omitempty"`
	Company     string `json:"company,omitempty"`
	Subject     string `json:"subject" validate:"required"`
	Message     string `json:"message" validate:"required"`
	ServiceType string `json:"serviceType,omitempty"`
}

// Submission 접수 결과입니다. 메일 발송 실패는 접수 실패가 아니며 EmailError로 보고됩니다.
type Submission struct {
	EmailSent    bool    `json:"emailSent"`
	WhatsAppURL  string  `json:"whatsappUrl"`
	SubmissionID string  `json:"submissionId"`
	EmailError   *string `json:"emailError"`
}

// Config 문의 접수 설정입니다.
type Config struct {
	// SiteName 메일 본문에 표시할 사이트 이름
	SiteName string

	// Recipient 문의 메일을 받을 주소
	Recipient string

	// WhatsAppNumber 국가 번호를 포함한 WhatsApp 번호
	WhatsAppNumber string

	// NodeID 접수 번호 생성기의 노드 번호 (0-1023)
	NodeID int64
}

// Service 문의 접수를 처리합니다.
type Service struct {
	cfg      Config
	mailer   Mailer
	notifier Notifier
	ids      *snowflake.Node
	validate *validator.Validate

	now func() time.Time
}

// New Service를 생성합니다. notifier는 nil일 수 있습니다.
func New(cfg Config, mailer Mailer, notifier Notifier) (*Service, error) {
	if mailer == nil {
		panic("contact: Mailer가 nil입니다")
	}

	node, err := snowflake.NewNode(cfg.NodeID)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "접수 번호 생성기를 초기화할 수 없습니다 (node_id: %d)", cfg.NodeID)
	}

	return &Service{
		cfg:      cfg,
		mailer:   mailer,
		notifier: notifier,
		ids:      node,
		validate: validator.New(),
		now:      time.Now,
	}, nil
}

// Submit 문의를 접수합니다. 필수 항목이 비어 있으면 ErrMissingRequiredFields를 반환합니다.
func (s *Service) Submit(ctx context.Context, req Request) (*Submission, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, ErrMissingRequiredFields
	}

	submissionID := "SUB_" + s.ids.Generate().Base58()
	at := s.now()

	fields := applog.Fields{
		"submission_id": submissionID,
		"email":         req.Email,
		"subject":       req.Subject,
		"service_type":  req.ServiceType,
	}
	applog.WithComponentAndFields(component, fields).Info("문의가 접수되었습니다")

	body := emailBody(s.cfg.SiteName, req, at)
	result := &Submission{SubmissionID: submissionID}

	err := s.mailer.Send(ctx, Mail{
		FromName: req.Name,
		To:       s.cfg.Recipient,
		ReplyTo:  req.Email,
		Subject:  "Contact Form: " + strutil.NormalizeSpaces(req.Subject),
		Text:     body,
		HTML:     emailHTML(body),
	})
	if err != nil {
		msg := err.Error()
		result.EmailError = &msg

		applog.WithComponentAndFields(component, fields).WithError(err).Error("문의 메일 발송에 실패했습니다")
	} else {
		result.EmailSent = true
	}

	chat := chatMessage(s.cfg.SiteName, req)
	result.WhatsAppURL = whatsAppURL(s.cfg.WhatsAppNumber, chat)

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, chat); err != nil {
			applog.WithComponentAndFields(component, fields).WithError(err).Warn("문의 내용을 텔레그램으로 전달하지 못했습니다")
		}
	}

	return result, nil
}
