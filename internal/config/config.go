package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "catalog-server"

	// DefaultFilename 실행 인자로 경로가 주어지지 않을 때 읽는 기본 설정 파일명입니다.
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정을 덮어쓰는 환경 변수의 접두사입니다.
	EnvPrefix = "CATALOG_"

	// DefaultMaxRetries HTTP 요청 실패 시 최대 재시도 횟수 기본값
	DefaultMaxRetries = 2

	// DefaultRetryDelay 재시도 사이의 대기 시간 기본값
	DefaultRetryDelay = time.Second
)

// AppConfig 애플리케이션의 모든 설정을 포함하는 최상위 구조체
type AppConfig struct {
	Debug     bool            `json:"debug"`
	HTTPRetry HTTPRetryConfig `json:"http_retry"`
	Catalog   CatalogConfig   `json:"catalog"`
	Contact   ContactConfig   `json:"contact"`
	API       APIConfig       `json:"api"`
}

// newDefaultConfig 설정 파일과 환경 변수에 값이 없을 때 사용하는 기본 설정입니다.
func newDefaultConfig() AppConfig {
	return AppConfig{
		Debug: false,
		HTTPRetry: HTTPRetryConfig{
			MaxRetries: DefaultMaxRetries,
			RetryDelay: DefaultRetryDelay,
		},
		Catalog: CatalogConfig{
			BaseURL:     "",
			SourceID:    "/products.csv",
			IDStrategy:  "hash",
			StripHTML:   false,
			LoadTimeout: 30 * time.Second,
			MaxBytes:    10 * 1024 * 1024,
			Reload: ReloadConfig{
				Enabled:  false,
				TimeSpec: "0 0 */6 * * *",
				WarmUp:   true,
			},
		},
		Contact: ContactConfig{
			SiteName:       "Beats Medical",
			Recipient:      "sales@beatsmed.com",
			WhatsAppNumber: "971565225437",
			NodeID:         1,
			SMTP: SMTPConfig{
				Host: "smtp.gmail.com",
				Port: 587,
			},
			Telegram: TelegramConfig{
				Timeout: 10 * time.Second,
			},
		},
		API: APIConfig{
			ListenPort:     8080,
			BodyLimit:      "1M",
			RequestTimeout: 60 * time.Second,
			CORS:           CORSConfig{AllowOrigins: []string{"*"}},
			RateLimit: RateLimitConfig{
				RequestsPerSecond: 20,
				Burst:             40,
			},
		},
	}
}

// validate 설정 파일 로드 직후, 각 설정 항목의 정합성과 필수 값의 유효성을 검증합니다.
func (c *AppConfig) validate(v *validator.Validate) error {
	if err := c.HTTPRetry.validate(v); err != nil {
		return err
	}
	if err := c.Catalog.validate(v); err != nil {
		return err
	}
	if err := c.Contact.validate(v); err != nil {
		return err
	}
	return c.API.validate(v)
}

// VerifyRecommendations 운영 환경에서 권장되지 않는 설정에 대한 경고 메시지를 반환합니다.
// 서비스 실행을 막지는 않습니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string
	warnings = append(warnings, c.Catalog.VerifyRecommendations()...)
	warnings = append(warnings, c.Contact.VerifyRecommendations()...)
	warnings = append(warnings, c.API.VerifyRecommendations()...)
	return warnings
}

// HTTPRetryConfig 카탈로그 원본 다운로드 실패 시 재시도 정책
type HTTPRetryConfig struct {
	MaxRetries int           `json:"max_retries" validate:"min=0,max=10"`
	RetryDelay time.Duration `json:"retry_delay" validate:"gt=0"`
}

func (c *HTTPRetryConfig) validate(v *validator.Validate) error {
	return checkStruct(v, c, "HTTP 재시도(http_retry)")
}

// CatalogConfig 카탈로그 원본과 로드 정책
type CatalogConfig struct {
	// BaseURL 원본 위치의 기준입니다. http(s) URL 또는 디렉토리이며, 비어 있으면 현재 디렉토리입니다.
	BaseURL string `json:"base_url" validate:"base_location"`

	SourceID    string        `json:"source_id" validate:"required"`
	IDStrategy  string        `json:"id_strategy" validate:"id_strategy"`
	StripHTML   bool          `json:"strip_html"`
	LoadTimeout time.Duration `json:"load_timeout" validate:"gt=0"`
	MaxBytes    int64         `json:"max_bytes" validate:"gt=0"`
	Reload      ReloadConfig  `json:"reload"`
}

func (c *CatalogConfig) validate(v *validator.Validate) error {
	return checkStruct(v, c, "카탈로그(catalog)")
}

func (c *CatalogConfig) VerifyRecommendations() []string {
	var warnings []string
	if !c.Reload.Enabled {
		warnings = append(warnings, "카탈로그 주기적 다시 로드(catalog.reload.enabled)가 비활성화되어 있습니다. 원본이 갱신되어도 캐시를 비우기 전까지 반영되지 않습니다")
	}
	if c.IDStrategy == "row" {
		warnings = append(warnings, "행 번호 기반 상품 ID(catalog.id_strategy=row)는 원본의 행 순서가 바뀌면 ID가 달라집니다. hash 또는 reject 사용을 권장합니다")
	}
	return warnings
}

// ReloadConfig 카탈로그 주기적 다시 로드 스케줄
type ReloadConfig struct {
	Enabled  bool   `json:"enabled"`
	TimeSpec string `json:"time_spec" validate:"required_if=Enabled true,omitempty,cron_spec"`
	WarmUp   bool   `json:"warm_up"`
}

// ContactConfig 문의 양식 전달 설정
type ContactConfig struct {
	SiteName       string         `json:"site_name" validate:"required"`
	Recipient      string         `json:"recipient" validate:"required,email"`
	WhatsAppNumber string         `json:"whatsapp_number" validate:"required,e164|numeric"`
	NodeID         int64          `json:"node_id" validate:"min=0,max=1023"`
	SMTP           SMTPConfig     `json:"smtp"`
	Telegram       TelegramConfig `json:"telegram"`
}

func (c *ContactConfig) validate(v *validator.Validate) error {
	return checkStruct(v, c, "문의 양식(contact)")
}

func (c *ContactConfig) VerifyRecommendations() []string {
	var warnings []string
	if c.SMTP.Username == "" {
		warnings = append(warnings, "SMTP 계정(contact.smtp.username)이 설정되지 않았습니다. 문의 메일 발송이 실패할 수 있습니다")
	}
	if c.SMTP.InsecureSkipVerify {
		warnings = append(warnings, "SMTP 서버 인증서 검증(contact.smtp.insecure_skip_verify)이 비활성화되어 있습니다")
	}
	return warnings
}

// SMTPConfig 문의 메일 발송에 사용하는 SMTP 서버
type SMTPConfig struct {
	Host               string `json:"host" validate:"required,hostname_rfc1123"`
	Port               int    `json:"port" validate:"min=1,max=65535"`
	Username           string `json:"username"`
	Password           string `json:"password"`
	From               string `json:"from" validate:"omitempty,email"`
	InsecureSkipVerify bool   `json:"insecure_skip_verify"`
}

// TelegramConfig 문의 내용을 전달할 텔레그램 봇
type TelegramConfig struct {
	Enabled  bool          `json:"enabled"`
	BotToken string        `json:"bot_token" validate:"required_if=Enabled true,omitempty,telegram_bot_token"`
	ChatID   int64         `json:"chat_id" validate:"required_if=Enabled true"`
	Timeout  time.Duration `json:"timeout" validate:"gt=0"`
}

// APIConfig HTTP API 서버 설정
type APIConfig struct {
	ListenPort     int             `json:"listen_port" validate:"min=1,max=65535"`
	TLSServer      bool            `json:"tls_server"`
	TLSCertFile    string          `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,file"`
	TLSKeyFile     string          `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,file"`
	BodyLimit      string          `json:"body_limit" validate:"required"`
	RequestTimeout time.Duration   `json:"request_timeout" validate:"gt=0"`
	CORS           CORSConfig      `json:"cors"`
	RateLimit      RateLimitConfig `json:"rate_limit"`
}

func (c *APIConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c, "API 서버(api)"); err != nil {
		return err
	}
	return c.CORS.validate()
}

func (c *APIConfig) VerifyRecommendations() []string {
	var warnings []string
	if c.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.ListenPort))
	}
	if c.RateLimit.RequestsPerSecond == 0 {
		warnings = append(warnings, "API 요청 속도 제한(api.rate_limit.requests_per_second)이 비활성화되어 있습니다")
	}
	return warnings
}

// CORSConfig 교차 출처 리소스 공유(CORS) 허용 도메인
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"dive,cors_origin"`
}

// validate 태그 검증 이후의 조합 규칙을 확인합니다.
func (c *CORSConfig) validate() error {
	if len(c.AllowOrigins) == 0 {
		return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(allow_origins) 목록이 비어있습니다")
	}
	for _, origin := range c.AllowOrigins {
		if origin == "*" && len(c.AllowOrigins) > 1 {
			return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
		}
	}
	return nil
}

// RateLimitConfig 클라이언트 IP별 요청 속도 제한. RequestsPerSecond가 0이면 제한하지 않습니다.
type RateLimitConfig struct {
	RequestsPerSecond float64 `json:"requests_per_second" validate:"gte=0"`
	Burst             int     `json:"burst" validate:"required_unless=RequestsPerSecond 0,gte=0"`
}
