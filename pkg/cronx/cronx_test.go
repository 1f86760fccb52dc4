package cronx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		spec          string
		errorContains string
	}{
		{name: "6시간마다", spec: "0 0 */6 * * *"},
		{name: "평일 업무 시간", spec: "0 0-30/15 9-17 * * MON-FRI"},
		{name: "앞뒤 공백", spec: "  0 0 3 * * *  "},
		{name: "@daily", spec: "@daily"},
		{name: "@every", spec: "@every 30m"},

		{name: "5필드", spec: "*/5 * * * *", errorContains: "expected exactly 6 fields"},
		{name: "7필드", spec: "0 * * * * * *", errorContains: "expected exactly 6 fields"},
		{name: "초 범위 초과", spec: "70 * * * * *", errorContains: "above maximum"},
		{name: "빈 문자열", spec: "", errorContains: "empty spec string"},
		{name: "잘못된 문자열", spec: "reload-often", errorContains: "Cron 표현식 파싱 실패"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tt.spec)
			if tt.errorContains == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorContains)
			assert.Contains(t, err.Error(), "Cron 표현식 파싱 실패")
		})
	}
}

func TestStandardParser_Next(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		spec string
		want time.Time
	}{
		{"*/30 * * * * *", base.Add(30 * time.Second)},
		{"0 0 */6 * * *", base.Add(6 * time.Hour)},
		{"@every 30m", base.Add(30 * time.Minute)},
		{"@daily", base.Add(24 * time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			t.Parallel()

			schedule, err := StandardParser().Parse(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, schedule.Next(base))
		})
	}
}
