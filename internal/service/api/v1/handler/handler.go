// Package handler 카탈로그, 장바구니 견적, 문의 접수 API(v1)의 요청 핸들러를 제공합니다.
package handler

import (
	"context"

	"github.com/darkkaiser/catalog-server/internal/catalog"
	"github.com/darkkaiser/catalog-server/internal/catalog/domain"
	"github.com/darkkaiser/catalog-server/internal/service/contact"
)

// CatalogService 핸들러가 사용하는 카탈로그 기능입니다.
type CatalogService interface {
	Find(ctx context.Context, q catalog.Query) []domain.Product
	ProductByID(ctx context.Context, id string) (domain.Product, bool)
	Categories(ctx context.Context, forceReload bool) []string
	ExportCSV(ctx context.Context) ([]byte, error)
	Snapshot() catalog.Snapshot
	Reload(ctx context.Context) catalog.Snapshot
	ClearCache()
}

// ContactService 문의 접수 기능입니다.
type ContactService interface {
	Submit(ctx context.Context, req contact.Request) (*contact.Submission, error)
}

var (
	_ CatalogService = (*catalog.Service)(nil)
	_ ContactService = (*contact.Service)(nil)
)

// Handler v1 API 요청을 처리합니다.
type Handler struct {
	catalog CatalogService
	contact ContactService
}

// NewHandler Handler를 생성합니다.
func NewHandler(catalogService CatalogService, contactService ContactService) *Handler {
	if catalogService == nil {
		panic("CatalogService는 필수입니다")
	}
	if contactService == nil {
		panic("ContactService는 필수입니다")
	}

	return &Handler{catalog: catalogService, contact: contactService}
}
