// Package catalog 로드한 상품 목록을 캐시하고 조회, 검색, 정렬 기능을 제공합니다.
//
// Service는 카탈로그에 접근하는 유일한 진입점입니다. 로드 실패는 Service 안에서 로그로 남기고
// 내장 샘플 목록으로 대체하므로, 공개 메서드는 에러 없이 항상 상품 목록을 반환합니다.
package catalog

import (
	"context"
	"slices"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/darkkaiser/catalog-server/internal/catalog/domain"
	"github.com/darkkaiser/catalog-server/internal/catalog/loader"
	applog "github.com/darkkaiser/catalog-server/pkg/log"
)

const component = "catalog.service"

// DefaultLoadTimeout 한 번의 원본 로드에 허용하는 기본 시간입니다.
const DefaultLoadTimeout = 30 * time.Second

// Loader 원본 하나를 상품 목록으로 변환합니다.
type Loader interface {
	Load(ctx context.Context, sourceID string) (*loader.Result, error)
}

var _ Loader = (*loader.Loader)(nil)

// Snapshot 캐시의 현재 상태를 요약합니다.
type Snapshot struct {
	State        State        `json:"state"`
	SourceID     string       `json:"sourceId"`
	ProductCount int          `json:"productCount"`
	Generation   uint64       `json:"generation"`
	LoadedAt     time.Time    `json:"loadedAt,omitzero"`
	LastError    string       `json:"lastError,omitempty"`
	Stats        loader.Stats `json:"stats"`
}

// Option Service 설정을 변경합니다.
type Option func(*Service)

// WithLoadTimeout 원본 로드 제한 시간을 지정합니다. 0 이하의 값은 무시됩니다.
func WithLoadTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.loadTimeout = d
		}
	}
}

// Service 카탈로그 캐시입니다. 여러 고루틴에서 동시에 사용해도 안전합니다.
type Service struct {
	loader      Loader
	sourceID    string
	loadTimeout time.Duration

	// loads 같은 세대의 동시 로드 요청을 하나로 합칩니다.
	loads singleflight.Group

	mu         sync.RWMutex
	state      State
	generation uint64
	products   []domain.Product // nil이면 캐시 없음
	categories []string
	loadedAt   time.Time
	lastErr    error
	stats      loader.Stats

	now func() time.Time
}

// New sourceID의 원본을 l로 로드하는 Service를 생성합니다. 생성 시점에는 로드하지 않습니다.
func New(l Loader, sourceID string, opts ...Option) *Service {
	if l == nil {
		panic("catalog: Loader가 nil입니다")
	}

	s := &Service{
		loader:      l,
		sourceID:    sourceID,
		loadTimeout: DefaultLoadTimeout,
		state:       StateEmpty,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Products 상품 목록의 복사본을 반환합니다.
//
// 캐시가 있고 forceReload가 false이면 캐시를 반환하고, 그 외에는 원본을 로드합니다.
// 로드에 실패하면 샘플 목록을 캐시하고 반환합니다.
func (s *Service) Products(ctx context.Context, forceReload bool) []domain.Product {
	return domain.CloneAll(s.cached(ctx, forceReload))
}

// cached 캐시된 목록 자체를 반환합니다. 호출자는 결과를 수정하면 안 됩니다.
func (s *Service) cached(ctx context.Context, forceReload bool) []domain.Product {
	if !forceReload {
		s.mu.RLock()
		products := s.products
		s.mu.RUnlock()

		if products != nil {
			return products
		}
	}

	return s.load(ctx, forceReload)
}

// Reload 원본을 다시 로드하고 로드 후의 상태를 반환합니다.
func (s *Service) Reload(ctx context.Context) Snapshot {
	s.load(ctx, true)
	return s.Snapshot()
}

// ClearCache 상품과 카테고리 캐시를 비웁니다. 진행 중인 로드의 결과는 캐시되지 않습니다.
func (s *Service) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.products = nil
	s.categories = nil
	s.state = StateEmpty

	applog.WithComponentAndFields(component, applog.Fields{
		"generation": s.generation,
	}).Info("카탈로그 캐시를 비웠습니다")
}

// State 현재 캐시 상태를 반환합니다.
func (s *Service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// Snapshot 현재 캐시 상태의 요약을 반환합니다.
func (s *Service) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		State:        s.state,
		SourceID:     s.sourceID,
		ProductCount: len(s.products),
		Generation:   s.generation,
		LoadedAt:     s.loadedAt,
		Stats:        s.stats,
	}
	if s.lastErr != nil {
		snap.LastError = s.lastErr.Error()
	}
	return snap
}

func (s *Service) load(ctx context.Context, force bool) []domain.Product {
	s.mu.Lock()
	if !force && s.products != nil {
		products := s.products
		s.mu.Unlock()
		return products
	}
	if force {
		s.generation++
	}
	gen := s.generation
	s.state = StateLoading
	s.mu.Unlock()

	v, _, _ := s.loads.Do(strconv.FormatUint(gen, 10), func() (any, error) {
		return s.fetch(ctx, gen), nil
	})

	return v.([]domain.Product)
}

// fetch 원본을 로드하고, 그 사이 세대가 바뀌지 않았으면 결과를 캐시합니다.
func (s *Service) fetch(ctx context.Context, gen uint64) []domain.Product {
	// 요청한 호출자의 취소가 같은 로드를 기다리는 다른 호출자에게 전파되지 않도록 한다.
	loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.loadTimeout)
	defer cancel()

	started := s.now()
	res, err := s.loader.Load(loadCtx, s.sourceID)

	var (
		products []domain.Product
		state    State
		stats    loader.Stats
	)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"source":     s.sourceID,
			"generation": gen,
			"error":      err,
		}).Error("카탈로그 로드에 실패하여 샘플 상품 목록으로 대체합니다")

		products, state = fallbackProducts(), StateFallback
	} else {
		products, state, stats = res.Products, StatePopulated, res.Stats
		if products == nil {
			products = []domain.Product{}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		applog.WithComponentAndFields(component, applog.Fields{
			"source":             s.sourceID,
			"generation":         gen,
			"current_generation": s.generation,
		}).Debug("캐시 세대가 바뀌어 로드 결과를 캐시하지 않습니다")
		return products
	}

	s.products = products
	s.categories = deriveCategories(products)
	s.state = state
	s.loadedAt = s.now()
	s.lastErr = err
	if err == nil {
		s.stats = stats
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"source":     s.sourceID,
		"generation": gen,
		"state":      state.String(),
		"products":   len(products),
		"categories": len(s.categories) - 1,
		"elapsed_ms": s.now().Sub(started).Milliseconds(),
	}).Info("카탈로그 캐시 갱신 완료")

	return products
}

// Categories 카테고리 목록을 반환합니다. 첫 번째 항목은 항상 "All"이고 나머지는 정렬되어 중복이 없습니다.
func (s *Service) Categories(ctx context.Context, forceReload bool) []string {
	if !forceReload {
		s.mu.RLock()
		categories := s.categories
		s.mu.RUnlock()

		if categories != nil {
			return slices.Clone(categories)
		}
	}

	return deriveCategories(s.load(ctx, forceReload))
}

func deriveCategories(products []domain.Product) []string {
	seen := make(map[string]struct{}, len(products))
	categories := make([]string, 0, len(products))
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	slices.Sort(categories)

	return append([]string{domain.AllCategories}, categories...)
}
