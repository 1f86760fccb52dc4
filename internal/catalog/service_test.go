package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkkaiser/catalog-server/internal/catalog/domain"
	"github.com/darkkaiser/catalog-server/internal/catalog/loader"
	"github.com/darkkaiser/catalog-server/internal/catalog/source"
	"github.com/darkkaiser/catalog-server/internal/pkg/fetcher"
)

// fakeLoader 호출 횟수를 세고, gate가 있으면 닫힐 때까지 대기합니다.
type fakeLoader struct {
	products []domain.Product
	err      error

	started chan struct{}
	gate    chan struct{}
	calls   atomic.Int32
	ctxErr  atomic.Value
}

func (f *fakeLoader) Load(ctx context.Context, _ string) (*loader.Result, error) {
	if f.calls.Add(1) == 1 && f.started != nil {
		close(f.started)
	}
	if f.gate != nil {
		<-f.gate
	}
	if err := ctx.Err(); err != nil {
		f.ctxErr.Store(err)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &loader.Result{Products: domain.CloneAll(f.products), Stats: loader.Stats{Accepted: len(f.products)}}, nil
}

func sampleProducts() []domain.Product {
	return []domain.Product{
		{ID: "D1", Name: "Dental Chair", Category: "Dental", Brand: "DENT", Description: "Ergonomic chair", Price: 50, Rating: domain.Float64Ptr(4.1), Reviews: domain.IntPtr(3)},
		{ID: "D2", Name: "curing light", Category: "Dental", Brand: "DENT", Description: "LED light", Price: 10, Reviews: domain.IntPtr(40)},
		{ID: "I1", Name: "X-Ray Unit", Category: "Imaging", Brand: "RAD", Description: "Portable dental x-ray", Price: 30, Rating: domain.Float64Ptr(4.8)},
	}
}

func TestService_Products_Cache(t *testing.T) {
	t.Parallel()

	l := &fakeLoader{products: sampleProducts()}
	s := New(l, "/products.csv")
	assert.Equal(t, StateEmpty, s.State())

	first := s.Products(context.Background(), false)
	require.Len(t, first, 3)
	assert.Equal(t, StatePopulated, s.State())

	// 반환된 목록을 수정해도 캐시에 영향이 없다.
	first[0].Name = "changed"
	*first[0].Rating = 0

	second := s.Products(context.Background(), false)
	assert.Equal(t, "Dental Chair", second[0].Name)
	assert.InDelta(t, 4.1, *second[0].Rating, 1e-9)
	assert.EqualValues(t, 1, l.calls.Load())

	s.Products(context.Background(), true)
	assert.EqualValues(t, 2, l.calls.Load())

	s.ClearCache()
	assert.Equal(t, StateEmpty, s.State())
	s.Products(context.Background(), false)
	assert.EqualValues(t, 3, l.calls.Load())

	snap := s.Snapshot()
	assert.Equal(t, StatePopulated, snap.State)
	assert.Equal(t, 3, snap.ProductCount)
	assert.Equal(t, 3, snap.Stats.Accepted)
	assert.Empty(t, snap.LastError)
	assert.False(t, snap.LoadedAt.IsZero())
}

func TestService_Fallback(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)

	r, err := source.NewResolver(srv.URL, source.NewHTTPSource(fetcher.NewFromConfig(fetcher.Config{DisableLogging: true})))
	require.NoError(t, err)

	s := New(loader.New(r), "/products.csv")

	products := s.Products(context.Background(), false)
	require.Len(t, products, 3)
	assert.Equal(t, []string{"FALLBACK1", "FALLBACK2", "FALLBACK3"}, []string{products[0].ID, products[1].ID, products[2].ID})
	for _, p := range products {
		assert.Equal(t, domain.PlaceholderImage, p.Image)
		assert.True(t, p.InStock)
	}

	snap := s.Snapshot()
	assert.Equal(t, StateFallback, snap.State)
	assert.NotEmpty(t, snap.LastError)

	assert.Equal(t, []string{"All", "DENTAL", "LABORATORY", "MEDICAL"}, s.Categories(context.Background(), false))
}

func TestService_Categories(t *testing.T) {
	t.Parallel()

	l := &fakeLoader{products: []domain.Product{
		{ID: "1", Category: "Dental"},
		{ID: "2", Category: "Imaging"},
		{ID: "3", Category: "Dental"},
	}}
	s := New(l, "/products.csv")

	assert.Equal(t, []string{"All", "Dental", "Imaging"}, s.Categories(context.Background(), false))
	assert.Equal(t, []string{"All", "Dental", "Imaging"}, s.Categories(context.Background(), false))
	assert.EqualValues(t, 1, l.calls.Load())

	s.Categories(context.Background(), true)
	assert.EqualValues(t, 2, l.calls.Load())
}

func TestService_EmptyCatalog(t *testing.T) {
	t.Parallel()

	s := New(&fakeLoader{}, "/products.csv")

	products := s.Products(context.Background(), false)
	assert.NotNil(t, products)
	assert.Empty(t, products)
	assert.Equal(t, StatePopulated, s.State())
	assert.Equal(t, []string{"All"}, s.Categories(context.Background(), false))
}

func TestService_LoadDeduplication(t *testing.T) {
	t.Parallel()

	l := &fakeLoader{products: sampleProducts(), started: make(chan struct{}), gate: make(chan struct{})}
	s := New(l, "/products.csv")

	var wg sync.WaitGroup
	results := make([][]domain.Product, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = s.Products(context.Background(), false)
		}()
	}

	<-l.started
	assert.Equal(t, StateLoading, s.State())
	close(l.gate)
	wg.Wait()

	assert.EqualValues(t, 1, l.calls.Load())
	for _, r := range results {
		assert.Len(t, r, 3)
	}
}

func TestService_CallerCancellation(t *testing.T) {
	t.Parallel()

	l := &fakeLoader{products: sampleProducts()}
	s := New(l, "/products.csv")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Len(t, s.Products(ctx, false), 3)
	assert.Nil(t, l.ctxErr.Load())
	assert.Equal(t, StatePopulated, s.State())
}

func TestService_ClearCacheDuringLoad(t *testing.T) {
	t.Parallel()

	l := &fakeLoader{products: sampleProducts(), started: make(chan struct{}), gate: make(chan struct{})}
	s := New(l, "/products.csv")

	done := make(chan []domain.Product)
	go func() { done <- s.Products(context.Background(), false) }()

	<-l.started
	s.ClearCache()
	close(l.gate)

	// 로드를 요청한 호출자는 결과를 받지만 캐시되지는 않는다.
	assert.Len(t, <-done, 3)
	assert.Equal(t, StateEmpty, s.State())
	assert.Zero(t, s.Snapshot().ProductCount)

	s.Products(context.Background(), false)
	assert.EqualValues(t, 2, l.calls.Load())
	assert.Equal(t, StatePopulated, s.State())
}

func TestService_Queries(t *testing.T) {
	t.Parallel()

	s := New(&fakeLoader{products: sampleProducts()}, "/products.csv")
	ctx := context.Background()

	t.Run("카테고리", func(t *testing.T) {
		t.Parallel()

		assert.Len(t, s.ProductsByCategory(ctx, "All"), 3)
		assert.Len(t, s.ProductsByCategory(ctx, "Dental"), 2)
		assert.Empty(t, s.ProductsByCategory(ctx, "dental"))
		assert.NotNil(t, s.ProductsByCategory(ctx, "Unknown"))
	})

	t.Run("ID 조회", func(t *testing.T) {
		t.Parallel()

		p, ok := s.ProductByID(ctx, "I1")
		require.True(t, ok)
		assert.Equal(t, "X-Ray Unit", p.Name)

		_, ok = s.ProductByID(ctx, "i1")
		assert.False(t, ok)
	})

	t.Run("검색", func(t *testing.T) {
		t.Parallel()

		ids := func(products []domain.Product) []string {
			out := make([]string, 0, len(products))
			for _, p := range products {
				out = append(out, p.ID)
			}
			return out
		}

		assert.Equal(t, []string{"D1", "I1"}, ids(s.Search(ctx, "DENTAL")))
		assert.Equal(t, []string{"I1"}, ids(s.Search(ctx, "rad")))
		assert.Equal(t, []string{"D2"}, ids(s.Search(ctx, "  led ")))
		assert.Len(t, s.Search(ctx, ""), 3)
		assert.Empty(t, s.Search(ctx, "ventilator"))
	})

	t.Run("조건 조합", func(t *testing.T) {
		t.Parallel()

		ids := func(products []domain.Product) []string {
			out := make([]string, 0, len(products))
			for _, p := range products {
				out = append(out, p.ID)
			}
			return out
		}

		assert.Equal(t, []string{"D1", "D2", "I1"}, ids(s.Find(ctx, Query{})))
		assert.Equal(t, []string{"D1"}, ids(s.Find(ctx, Query{Category: "Dental", Search: "chair"})))
		assert.Equal(t, []string{"D2", "D1"}, ids(s.Find(ctx, Query{Category: "Dental", Sort: domain.SortPriceAsc})))
		assert.Equal(t, []string{"I1", "D1"}, ids(s.Find(ctx, Query{Category: "All", Search: "dental", Sort: domain.SortRatingDesc})))
		assert.NotNil(t, s.Find(ctx, Query{Category: "Surgical"}))
	})
}

func TestSortProducts(t *testing.T) {
	t.Parallel()

	names := func(products []domain.Product) []string {
		out := make([]string, 0, len(products))
		for _, p := range products {
			out = append(out, p.Name)
		}
		return out
	}

	input := sampleProducts()

	tests := []struct {
		key  domain.SortKey
		want []string
	}{
		{domain.SortPriceAsc, []string{"curing light", "X-Ray Unit", "Dental Chair"}},
		{domain.SortPriceDesc, []string{"Dental Chair", "X-Ray Unit", "curing light"}},
		{domain.SortNameAsc, []string{"curing light", "Dental Chair", "X-Ray Unit"}},
		{domain.SortNameDesc, []string{"X-Ray Unit", "Dental Chair", "curing light"}},
		{domain.SortRatingDesc, []string{"X-Ray Unit", "Dental Chair", "curing light"}},
		{domain.SortPopularity, []string{"curing light", "Dental Chair", "X-Ray Unit"}},
		{"unknown", []string{"Dental Chair", "curing light", "X-Ray Unit"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, names(SortProducts(input, tt.key)))
		})
	}

	t.Run("입력 목록은 변경되지 않음", func(t *testing.T) {
		t.Parallel()

		prices := []domain.Product{{Price: 50}, {Price: 10}, {Price: 30}}
		asc := SortProducts(prices, domain.SortPriceAsc)

		assert.Equal(t, []float64{10, 30, 50}, []float64{asc[0].Price, asc[1].Price, asc[2].Price})
		assert.Equal(t, []float64{50, 10, 30}, []float64{prices[0].Price, prices[1].Price, prices[2].Price})
	})

	t.Run("쿼리 문자열 그대로의 정렬 기준", func(t *testing.T) {
		t.Parallel()

		prices := []domain.Product{{Price: 50}, {Price: 10}, {Price: 30}}
		asc := SortProducts(prices, domain.SortKey("price-asc"))
		desc := SortProducts(prices, domain.SortKey("price-desc"))

		assert.Equal(t, []float64{10, 30, 50}, []float64{asc[0].Price, asc[1].Price, asc[2].Price})
		assert.Equal(t, []float64{50, 30, 10}, []float64{desc[0].Price, desc[1].Price, desc[2].Price})
	})

	t.Run("같은 값은 입력 순서 유지", func(t *testing.T) {
		t.Parallel()

		same := []domain.Product{{ID: "a", Price: 1}, {ID: "b", Price: 1}, {ID: "c", Price: 0}}
		got := SortProducts(same, domain.SortPriceDesc)
		assert.Equal(t, []string{"a", "b", "c"}, []string{got[0].ID, got[1].ID, got[2].ID})
	})
}

func TestService_ExportCSV(t *testing.T) {
	t.Parallel()

	products := sampleProducts()
	products[0].Description = "Ergonomic chair, \"premium\"\nwith headrest"
	products[0].Image = domain.PlaceholderImage
	products[1].Image = domain.PlaceholderImage
	products[2].Image = domain.PlaceholderImage

	s := New(&fakeLoader{products: products}, "/products.csv")

	data, err := s.ExportCSV(context.Background())
	require.NoError(t, err)

	f := source.FetcherFunc(func(_ context.Context, location string) (*source.Resource, error) {
		return &source.Resource{Location: location, ContentType: source.ContentTypeCSV, Body: data}, nil
	})
	res, err := loader.New(f).Load(context.Background(), "/export.csv")
	require.NoError(t, err)

	require.Len(t, res.Products, len(products))
	for i, p := range res.Products {
		assert.Equal(t, products[i].ID, p.ID)
		assert.Equal(t, products[i].Name, p.Name)
		assert.Equal(t, products[i].Category, p.Category)
		assert.Equal(t, products[i].Brand, p.Brand)
		assert.Equal(t, products[i].Description, p.Description)
		assert.InDelta(t, products[i].Price, p.Price, 1e-9)
	}
}
