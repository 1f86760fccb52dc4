// Package cart 장바구니 상태와 견적 계산을 제공합니다.
//
// Cart는 값 타입이며 모든 연산은 변경된 새 Cart를 반환합니다. 상태는 저장하지 않습니다.
package cart

import (
	"context"
	"math"
	"slices"

	"github.com/darkkaiser/catalog-server/internal/catalog/domain"
)

// Cart 장바구니 상태입니다. 같은 상품은 한 항목으로 합쳐지고 추가된 순서를 유지합니다.
type Cart struct {
	items []domain.CartItem
}

// Items 항목 목록의 복사본을 반환합니다.
func (c Cart) Items() []domain.CartItem {
	return slices.Clone(c.items)
}

// Add 상품을 1개 담습니다. 이미 담긴 상품이면 수량을 1 늘립니다.
func (c Cart) Add(p domain.Product) Cart {
	items := slices.Clone(c.items)
	if i := c.index(p.ID); i >= 0 {
		items[i].Quantity++
		return Cart{items: items}
	}
	return Cart{items: append(items, domain.CartItem{Product: p.Clone(), Quantity: 1})}
}

// Remove id의 상품을 뺍니다.
func (c Cart) Remove(id string) Cart {
	return Cart{items: slices.DeleteFunc(slices.Clone(c.items), func(it domain.CartItem) bool { return it.ID == id })}
}

// UpdateQuantity id의 수량을 quantity로 바꿉니다. 0 이하이면 상품을 뺍니다.
func (c Cart) UpdateQuantity(id string, quantity int) Cart {
	if quantity <= 0 {
		return c.Remove(id)
	}

	items := slices.Clone(c.items)
	if i := c.index(id); i >= 0 {
		items[i].Quantity = quantity
	}
	return Cart{items: items}
}

// Clear 빈 장바구니를 반환합니다.
func (c Cart) Clear() Cart {
	return Cart{}
}

// Total 모든 항목의 금액 합계입니다.
func (c Cart) Total() float64 {
	var total float64
	for _, it := range c.items {
		total += it.Subtotal()
	}
	return roundCents(total)
}

// Count 모든 항목의 수량 합계입니다.
func (c Cart) Count() int {
	var n int
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

func (c Cart) index(id string) int {
	return slices.IndexFunc(c.items, func(it domain.CartItem) bool { return it.ID == id })
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// Line 견적을 요청하는 한 줄입니다.
type Line struct {
	ID       string `json:"id" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=1"`
}

// Quote 견적 결과입니다.
type Quote struct {
	Items      []domain.CartItem `json:"items"`
	UnknownIDs []string          `json:"unknownIds"`
	ItemCount  int               `json:"itemCount"`
	Total      float64           `json:"total"`
}

// ProductLookup 상품 ID로 상품을 찾습니다.
type ProductLookup interface {
	ProductByID(ctx context.Context, id string) (domain.Product, bool)
}

// NewQuote lines를 카탈로그 가격으로 계산합니다. 카탈로그에 없는 ID는 UnknownIDs로 보고합니다.
// 같은 ID가 여러 줄에 있으면 수량을 합칩니다.
func NewQuote(ctx context.Context, lookup ProductLookup, lines []Line) Quote {
	var (
		c       Cart
		unknown = make([]string, 0)
	)
	for _, line := range lines {
		if line.Quantity <= 0 {
			continue
		}

		p, ok := lookup.ProductByID(ctx, line.ID)
		if !ok {
			if !slices.Contains(unknown, line.ID) {
				unknown = append(unknown, line.ID)
			}
			continue
		}

		quantity := line.Quantity
		if i := c.index(p.ID); i >= 0 {
			quantity += c.items[i].Quantity
		} else {
			c = c.Add(p)
		}
		c = c.UpdateQuantity(p.ID, quantity)
	}

	items := c.Items()
	if items == nil {
		items = []domain.CartItem{}
	}
	return Quote{Items: items, UnknownIDs: unknown, ItemCount: c.Count(), Total: c.Total()}
}
