package menu

import (
	"math/rand"
	"sort"
)

// Category groups menu items the way the dining room presents them.
type Category string

const (
	CategoryStarter Category = "Starters"
	CategoryMain    Category = "Mains"
	CategoryDessert Category = "Desserts"
	CategoryDrink   Category = "Wine & Cocktails"
)

// Item is an immutable catalog entry. Items are built once at process start
// and never mutated afterwards.
type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	Tags        []string `json:"tags"`
	Calories    int      `json:"calories"`
}

// Catalog is the read-only menu reference data.
type Catalog struct {
	items []Item
	byID  map[string]Item
	facts []string
}

// NewCatalog builds the catalog from the static Lumina menu.
func NewCatalog() *Catalog {
	return newCatalog(menuItems, didYouKnowFacts)
}

func newCatalog(items []Item, facts []string) *Catalog {
	byID := make(map[string]Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	return &Catalog{
		items: items,
		byID:  byID,
		facts: facts,
	}
}

// FindByID looks up a single item by its catalog id.
func (c *Catalog) FindByID(id string) (Item, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// List returns all items in menu order.
func (c *Catalog) List() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// ListByCategory returns the items belonging to one category, in menu order.
func (c *Catalog) ListByCategory(category Category) []Item {
	var out []Item
	for _, item := range c.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// Categories returns the distinct categories present in the catalog, sorted.
func (c *Catalog) Categories() []Category {
	seen := make(map[Category]bool)
	var out []Category
	for _, item := range c.items {
		if !seen[item.Category] {
			seen[item.Category] = true
			out = append(out, item.Category)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Facts returns the full "did you know" rotation shown while assets load.
func (c *Catalog) Facts() []string {
	out := make([]string, len(c.facts))
	copy(out, c.facts)
	return out
}

// RandomFact picks one fact from the rotation.
func (c *Catalog) RandomFact() string {
	if len(c.facts) == 0 {
		return ""
	}
	return c.facts[rand.Intn(len(c.facts))]
}
