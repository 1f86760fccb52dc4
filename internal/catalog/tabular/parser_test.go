package tabular

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    [][]string
	}{
		{
			name:    "기본 행",
			content: "a,b,c\n1,2,3\n",
			want:    [][]string{{"a", "b", "c"}, {"1", "2", "3"}},
		},
		{
			name:    "마지막 줄바꿈이 없어도 마지막 행을 반환",
			content: "a,b\n1,2",
			want:    [][]string{{"a", "b"}, {"1", "2"}},
		},
		{
			name:    "따옴표 안의 쉼표",
			content: "name,desc\nChair,\"Comfortable, reclining\"",
			want:    [][]string{{"name", "desc"}, {"Chair", "Comfortable, reclining"}},
		},
		{
			name:    "따옴표 안의 줄바꿈은 값으로 보존",
			content: "name,desc\nChair,\"line1\n\nline3\"\nLamp,bright\n",
			want:    [][]string{{"name", "desc"}, {"Chair", "line1\n\nline3"}, {"Lamp", "bright"}},
		},
		{
			name:    "두 번 쓴 따옴표는 따옴표 하나",
			content: "a\n\"say \"\"hi\"\"\"",
			want:    [][]string{{"a"}, {`say "hi"`}},
		},
		{
			name:    "빈 행과 공백만 있는 행은 제거",
			content: "a,b\n\n , \n1,2\n\n",
			want:    [][]string{{"a", "b"}, {"1", "2"}},
		},
		{
			name:    "필드 앞뒤 공백 제거",
			content: "DEPARTMENT ,DESCRIPTION \n Woson , chair ",
			want:    [][]string{{"DEPARTMENT", "DESCRIPTION"}, {"Woson", "chair"}},
		},
		{
			name:    "CRLF 줄바꿈",
			content: "a,b\r\n1,2\r\n",
			want:    [][]string{{"a", "b"}, {"1", "2"}},
		},
		{
			name:    "따옴표 안의 CRLF는 보존",
			content: "a,b\r\n1,\"x\r\ny\"\r\n2,\"z\"\r\n",
			want:    [][]string{{"a", "b"}, {"1", "x\r\ny"}, {"2", "z"}},
		},
		{
			name:    "필드 수가 다른 행도 그대로 반환",
			content: "a,b,c\n1,2\n",
			want:    [][]string{{"a", "b", "c"}, {"1", "2"}},
		},
		{
			name:    "빈 입력",
			content: "",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Parse(tt.content))
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	values := []string{
		"plain",
		"with, comma",
		`with "quotes"`,
		"multi\nline\nvalue",
		"crlf\r\nvalue",
		`all, of "them"` + "\n" + `together,""`,
		`"`,
		",,,",
	}

	for _, v := range values {
		t.Run(v, func(t *testing.T) {
			t.Parallel()

			content := "header\n" + Quote(v) + "\n"
			rows := Parse(content)

			require.Len(t, rows, 2)
			require.Len(t, rows[1], 1)
			assert.Equal(t, v, rows[1][0])
		})
	}
}

func TestJoinRow_ParseRoundTrip(t *testing.T) {
	t.Parallel()

	row := []string{"D100", "Dental Chair, Deluxe", "say \"hi\"", "a\r\nb"}
	rows := Parse(strings.Join([]string{JoinRow([]string{"h1", "h2", "h3", "h4"}), JoinRow(row)}, "\r\n"))

	require.Len(t, rows, 2)
	assert.Equal(t, row, rows[1])
}

func TestCompact(t *testing.T) {
	t.Parallel()

	rows := Compact([][]string{{" a ", "b"}, {"", " "}, {"1", " 2"}})
	assert.Equal(t, [][]string{{"a", "b"}, {"1", "2"}}, rows)
}
