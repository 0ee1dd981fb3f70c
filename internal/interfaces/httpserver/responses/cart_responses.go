package responses

import (
	"lumina-server/concierge-api/internal/domain/cart"
)

// CartLineResponse is one cart line as served to the frontend.
type CartLineResponse struct {
	InstanceID string  `json:"instance_id"`
	ItemID     string  `json:"item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	LineTotal  float64 `json:"line_total"`
}

// CartResponse is the full cart view.
type CartResponse struct {
	Lines      []CartLineResponse `json:"lines"`
	TotalItems int                `json:"total_items"`
	TotalPrice float64            `json:"total_price"`
}

// MapCartToResponse renders a cart snapshot.
func MapCartToResponse(lines []cart.Line, totalItems int, totalPrice float64) CartResponse {
	out := CartResponse{
		Lines:      make([]CartLineResponse, 0, len(lines)),
		TotalItems: totalItems,
		TotalPrice: totalPrice,
	}
	for _, line := range lines {
		out.Lines = append(out.Lines, MapCartLineToResponse(line))
	}
	return out
}

// MapCartLineToResponse renders one cart line.
func MapCartLineToResponse(line cart.Line) CartLineResponse {
	return CartLineResponse{
		InstanceID: line.InstanceID,
		ItemID:     line.Item.ID,
		Name:       line.Item.Name,
		Price:      line.Item.Price,
		Quantity:   line.Quantity,
		LineTotal:  line.Item.Price * float64(line.Quantity),
	}
}
