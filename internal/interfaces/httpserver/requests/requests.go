// Package requests holds the HTTP request payload shapes.
package requests

// ChatRequest submits one user message. SessionID is optional; a new
// session is created when it is absent or unknown.
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required"`
}

// AddCartItemRequest adds a catalog item to the cart.
type AddCartItemRequest struct {
	ItemID   string `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity"`
}

// UpdateCartLineRequest adjusts one cart line's quantity by a delta.
type UpdateCartLineRequest struct {
	Delta int `json:"delta" binding:"required"`
}
