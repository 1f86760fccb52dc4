package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStd = errors.New("standard error")

func TestNewAndWrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantType ErrorType
		wantMsg  string
	}{
		{
			name:     "New",
			err:      New(NotFound, "상품 없음"),
			wantType: NotFound,
			wantMsg:  "[NotFound] 상품 없음",
		},
		{
			name:     "Newf",
			err:      Newf(InvalidInput, "필드 %d개 누락", 2),
			wantType: InvalidInput,
			wantMsg:  "[InvalidInput] 필드 2개 누락",
		},
		{
			name:     "Wrap 표준 에러",
			err:      Wrap(errStd, System, "파일 읽기 실패"),
			wantType: System,
			wantMsg:  "[System] 파일 읽기 실패: standard error",
		},
		{
			name:     "Wrapf AppError",
			err:      Wrapf(New(ParsingFailed, "헤더 누락"), Unavailable, "카탈로그 %s 로드 실패", "products.csv"),
			wantType: Unavailable,
			wantMsg:  "[Unavailable] 카탈로그 products.csv 로드 실패: [ParsingFailed] 헤더 누락",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var appErr *AppError
			require.True(t, As(tt.err, &appErr))
			assert.Equal(t, tt.wantType, appErr.Type())
			assert.Equal(t, tt.wantMsg, tt.err.Error())
			assert.NotEmpty(t, appErr.Stack())
		})
	}
}

func TestWrap_NilError(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Wrap(nil, Internal, "무시"))
	assert.Nil(t, Wrapf(nil, Internal, "무시 %d", 1))
}

func TestIsAndUnderlyingType(t *testing.T) {
	t.Parallel()

	inner := New(ParsingFailed, "헤더 누락")
	outer := Wrap(inner, Unavailable, "로드 실패")
	external := fmt.Errorf("context: %w", outer)

	assert.True(t, Is(external, Unavailable))
	assert.True(t, Is(external, ParsingFailed))
	assert.False(t, Is(external, NotFound))
	assert.Equal(t, ParsingFailed, UnderlyingType(external))
	assert.Equal(t, Unknown, UnderlyingType(errStd))
	assert.Equal(t, Unknown, UnderlyingType(nil))
}

func TestRootCause(t *testing.T) {
	t.Parallel()

	err := Wrap(Wrap(errStd, System, "1단계"), Internal, "2단계")
	assert.Same(t, errStd, RootCause(err))
	assert.Nil(t, RootCause(nil))
}

func TestFormat_StackAndCause(t *testing.T) {
	t.Parallel()

	err := Wrap(Wrap(errStd, System, "읽기 실패"), Unavailable, "로드 실패")
	out := fmt.Sprintf("%+v", err)

	assert.Contains(t, out, "[Unavailable] 로드 실패")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "[System] 읽기 실패")
	assert.Contains(t, out, "Stack trace:")
	assert.Contains(t, out, "standard error")
	assert.Equal(t, err.Error(), fmt.Sprintf("%s", err))
	assert.Equal(t, fmt.Sprintf("%q", err.Error()), fmt.Sprintf("%q", err))
}

func TestErrorType_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ParsingFailed", ParsingFailed.String())
	assert.Equal(t, "ErrorType(99)", ErrorType(99).String())
}
