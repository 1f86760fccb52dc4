package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/darkkaiser/catalog-server/internal/catalog/domain"
)

var (
	chair = domain.Product{ID: "D1", Name: "Dental Chair", Price: 1299.99}
	lamp  = domain.Product{ID: "L1", Name: "Lamp", Price: 10.10}
)

func TestCart(t *testing.T) {
	t.Parallel()

	var empty Cart
	c := empty.Add(chair).Add(lamp).Add(chair)

	assert.Empty(t, empty.Items())
	require.Len(t, c.Items(), 2)
	assert.Equal(t, 2, c.Items()[0].Quantity)
	assert.Equal(t, 3, c.Count())
	assert.InDelta(t, 2610.08, c.Total(), 1e-9)

	updated := c.UpdateQuantity("L1", 5)
	assert.Equal(t, 5, updated.Items()[1].Quantity)
	assert.Equal(t, 1, c.Items()[1].Quantity)

	assert.Len(t, c.UpdateQuantity("L1", 0).Items(), 1)
	assert.Len(t, c.Remove("D1").Items(), 1)
	assert.Equal(t, c.Items(), c.UpdateQuantity("missing", 3).Items())
	assert.Zero(t, c.Clear().Count())
	assert.Zero(t, c.Clear().Total())
}

type mockLookup struct {
	mock.Mock
}

func (m *mockLookup) ProductByID(ctx context.Context, id string) (domain.Product, bool) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Bool(1)
}

func TestNewQuote(t *testing.T) {
	t.Parallel()

	lookup := &mockLookup{}
	lookup.On("ProductByID", mock.Anything, "D1").Return(chair, true)
	lookup.On("ProductByID", mock.Anything, "L1").Return(lamp, true)
	lookup.On("ProductByID", mock.Anything, "X9").Return(domain.Product{}, false)

	q := NewQuote(context.Background(), lookup, []Line{
		{ID: "D1", Quantity: 1},
		{ID: "X9", Quantity: 2},
		{ID: "L1", Quantity: 3},
		{ID: "D1", Quantity: 2},
		{ID: "X9", Quantity: 1},
		{ID: "L1", Quantity: 0},
	})

	require.Len(t, q.Items, 2)
	assert.Equal(t, "D1", q.Items[0].ID)
	assert.Equal(t, 3, q.Items[0].Quantity)
	assert.Equal(t, 3, q.Items[1].Quantity)
	assert.Equal(t, []string{"X9"}, q.UnknownIDs)
	assert.Equal(t, 6, q.ItemCount)
	assert.InDelta(t, 3930.27, q.Total, 1e-9)

	lookup.AssertNumberOfCalls(t, "ProductByID", 5)
}

func TestNewQuote_Empty(t *testing.T) {
	t.Parallel()

	q := NewQuote(context.Background(), &mockLookup{}, nil)
	assert.NotNil(t, q.Items)
	assert.NotNil(t, q.UnknownIDs)
	assert.Zero(t, q.Total)
}
