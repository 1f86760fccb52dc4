package domain

// CartItem 장바구니에 담긴 상품과 수량입니다. Quantity는 양수입니다.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal 단가와 수량의 곱입니다.
func (i CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}
