package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/darkkaiser/catalog-server/internal/catalog/mapper"
	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
	"github.com/darkkaiser/catalog-server/pkg/cronx"
	"github.com/darkkaiser/catalog-server/pkg/validation"
)

var (
	// 텔레그램 봇 토큰 검증을 위한 정규식 (예: 123456:ABC-DEF1234ghIkl-zyx57W2v1u123ew11)
	telegramBotTokenRegex = regexp.MustCompile(`^\d{3,20}:[a-zA-Z0-9_-]{30,50}$`)
)

// newValidator 새로운 Validator 인스턴스를 생성하고 커스텀 유효성 검사 함수를 등록합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	// 검증 에러 메시지에 Go 구조체 필드명 대신 JSON 이름(예: allow_origins)을 보여준다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	custom := map[string]validator.Func{
		"cors_origin":        validateCORSOrigin,
		"cron_spec":          validateCronSpec,
		"id_strategy":        validateIDStrategy,
		"telegram_bot_token": validateTelegramBotToken,
		"base_location":      validateBaseLocation,
	}
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("초기화 치명적 오류: '%s' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", tag, err))
		}
	}

	return v
}

// validateCORSOrigin 실제 검증은 validation.ValidateCORSOrigin 함수로 위임합니다.
func validateCORSOrigin(fl validator.FieldLevel) bool {
	return validation.ValidateCORSOrigin(fl.Field().String()) == nil
}

// validateCronSpec 초 단위를 포함한 6필드 Cron 표현식 또는 @every 같은 기술자인지 검증합니다.
func validateCronSpec(fl validator.FieldLevel) bool {
	return cronx.Validate(fl.Field().String()) == nil
}

func validateIDStrategy(fl validator.FieldLevel) bool {
	return mapper.IDStrategy(fl.Field().String()).Valid()
}

// validateTelegramBotToken 텔레그램 봇 토큰은 식별자(숫자)와 비밀키(문자열)가 콜론(:)으로 구분된 형태여야 합니다.
func validateTelegramBotToken(fl validator.FieldLevel) bool {
	return telegramBotTokenRegex.MatchString(fl.Field().String())
}

func validateBaseLocation(fl validator.FieldLevel) bool {
	return validation.ValidateBaseLocation(fl.Field().String()) == nil
}

// checkStruct 구조체의 유효성을 검사하고, 사용자 친화적인 에러 메시지를 반환합니다.
func checkStruct(v *validator.Validate, s any, contextName string) error {
	if err := v.Struct(s); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			// 첫 번째 에러만 상세히 보고
			firstErr := validationErrors[0]

			switch firstErr.Tag() {
			case "cors_origin":
				return apperrors.Newf(apperrors.InvalidInput, "CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", firstErr.Value())
			case "cron_spec":
				return apperrors.Newf(apperrors.InvalidInput, "%s의 Cron 표현식이 올바르지 않습니다: '%v' (형식: 초 분 시 일 월 요일)", contextName, firstErr.Value())
			case "id_strategy":
				return apperrors.Newf(apperrors.InvalidInput, "%s의 상품 ID 결정 방식이 올바르지 않습니다: '%v' (hash, row, reject 중 하나)", contextName, firstErr.Value())
			case "base_location":
				return apperrors.Newf(apperrors.InvalidInput, "%s의 원본 위치가 올바르지 않습니다: '%v' (http(s) URL 또는 존재하는 디렉토리)", contextName, firstErr.Value())
			}

			return apperrors.Newf(apperrors.InvalidInput, "%s의 설정이 올바르지 않습니다: %s (조건: %s)", contextName, firstErr.Field(), firstErr.Tag())
		}
		return apperrors.Wrapf(err, apperrors.InvalidInput, "%s 유효성 검증에 실패했습니다", contextName)
	}
	return nil
}
