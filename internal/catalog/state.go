package catalog

// State 카탈로그 캐시의 수명 주기 상태입니다.
type State int

const (
	// StateEmpty 아직 로드되지 않았거나 캐시가 비워진 상태
	StateEmpty State = iota

	// StateLoading 원본을 로드하는 중인 상태
	StateLoading

	// StatePopulated 원본에서 읽은 상품 목록이 캐시된 상태
	StatePopulated

	// StateFallback 로드에 실패하여 내장 샘플 목록이 캐시된 상태
	StateFallback
)

var stateNames = [...]string{
	StateEmpty:     "empty",
	StateLoading:   "loading",
	StatePopulated: "populated",
	StateFallback:  "fallback",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// MarshalText 상태를 JSON 등에서 문자열로 표현합니다.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
