package contact

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	notProvided  = "Not provided"
	notSpecified = "Not specified"
)

// dubai 회사 소재지(UAE)의 표준시입니다. 일광 절약 시간이 없으므로 고정 오프셋을 사용합니다.
var dubai = time.FixedZone("GST", 4*60*60)

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// emailBody 영업 담당자에게 보내는 메일 본문(텍스트)을 만듭니다.
func emailBody(siteName string, r Request, at time.Time) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "New Contact Form Submission from %s Website\n\n", siteName)
	sb.WriteString("Contact Details:\n")
	fmt.Fprintf(&sb, "- Name: %s\n", r.Name)
	fmt.Fprintf(&sb, "- Email: %s\n", r.Email)
	fmt.Fprintf(&sb, "- Phone: %s\n", orDefault(r.Phone, notProvided))
	fmt.Fprintf(&sb, "- Company: %s\n", orDefault(r.Company, notProvided))
	fmt.Fprintf(&sb, "- Service Interest: %s\n\n", orDefault(r.ServiceType, notSpecified))
	fmt.Fprintf(&sb, "Subject: %s\n\n", r.Subject)
	fmt.Fprintf(&sb, "Message:\n%s\n\n", r.Message)
	sb.WriteString("---\n")
	fmt.Fprintf(&sb, "This message was sent from the %s website contact form.\n", siteName)
	fmt.Fprintf(&sb, "Timestamp: %s", at.In(dubai).Format("02/01/2006, 3:04:05 pm"))

	return sb.String()
}

// emailHTML 텍스트 본문의 줄바꿈을 <br>로 바꾼 HTML 본문입니다.
func emailHTML(body string) string {
	return strings.ReplaceAll(body, "\n", "<br>")
}

// chatMessage WhatsApp 링크와 텔레그램 전달에 사용하는 요약 메시지를 만듭니다.
func chatMessage(siteName string, r Request) string {
	var sb strings.Builder

	sb.WriteString("*New Contact Form Submission*\n\n")
	fmt.Fprintf(&sb, "👤 *Name:* %s\n", r.Name)
	fmt.Fprintf(&sb, "📧 *Email:* %s\n", r.Email)
	fmt.Fprintf(&sb, "📱 *Phone:* %s\n", orDefault(r.Phone, notProvided))
	fmt.Fprintf(&sb, "🏢 *Company:* %s\n", orDefault(r.Company, notProvided))
	fmt.Fprintf(&sb, "🔧 *Service:* %s\n\n", orDefault(r.ServiceType, notSpecified))
	fmt.Fprintf(&sb, "📋 *Subject:* %s\n\n", r.Subject)
	fmt.Fprintf(&sb, "💬 *Message:*\n%s\n\n", r.Message)
	fmt.Fprintf(&sb, "_Sent from %s website_", siteName)

	return sb.String()
}

// whatsAppURL number로 text를 보내는 WhatsApp 링크를 만듭니다. number에서 숫자 이외의 문자는 제거합니다.
func whatsAppURL(number, text string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)

	return "https://wa.me/" + digits + "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
