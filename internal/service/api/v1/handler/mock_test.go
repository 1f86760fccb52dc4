package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/darkkaiser/catalog-server/internal/catalog"
	"github.com/darkkaiser/catalog-server/internal/catalog/domain"
	"github.com/darkkaiser/catalog-server/internal/service/contact"
)

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) Find(ctx context.Context, q catalog.Query) []domain.Product {
	args := m.Called(ctx, q)
	return args.Get(0).([]domain.Product)
}

func (m *mockCatalog) ProductByID(ctx context.Context, id string) (domain.Product, bool) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Bool(1)
}

func (m *mockCatalog) Categories(ctx context.Context, forceReload bool) []string {
	args := m.Called(ctx, forceReload)
	return args.Get(0).([]string)
}

func (m *mockCatalog) ExportCSV(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *mockCatalog) Snapshot() catalog.Snapshot {
	return m.Called().Get(0).(catalog.Snapshot)
}

func (m *mockCatalog) Reload(ctx context.Context) catalog.Snapshot {
	return m.Called(ctx).Get(0).(catalog.Snapshot)
}

func (m *mockCatalog) ClearCache() {
	m.Called()
}

type mockContact struct {
	mock.Mock
}

func (m *mockContact) Submit(ctx context.Context, req contact.Request) (*contact.Submission, error) {
	args := m.Called(ctx, req)
	sub, _ := args.Get(0).(*contact.Submission)
	return sub, args.Error(1)
}
