package responses

import (
	"lumina-server/concierge-api/internal/domain/menu"
)

// MenuItemResponse is one catalog entry.
type MenuItemResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Calories    int      `json:"calories"`
}

// MenuResponse is the full menu listing.
type MenuResponse struct {
	Items []MenuItemResponse `json:"items"`
}

// FactResponse carries one rotating menu fact.
type FactResponse struct {
	Fact string `json:"fact"`
}

// MapMenuToResponse renders a list of catalog items.
func MapMenuToResponse(items []menu.Item) MenuResponse {
	out := MenuResponse{Items: make([]MenuItemResponse, 0, len(items))}
	for _, item := range items {
		out.Items = append(out.Items, MenuItemResponse{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			Category:    string(item.Category),
			Tags:        item.Tags,
			Calories:    item.Calories,
		})
	}
	return out
}
