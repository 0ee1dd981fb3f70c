package menu_test

import (
	"testing"

	"lumina-server/concierge-api/internal/domain/menu"
)

func TestCatalog_FindByID(t *testing.T) {
	catalog := menu.NewCatalog()

	tests := []struct {
		name     string
		id       string
		found    bool
		wantName string
	}{
		{"signature main", "m1", true, "Miso Glazed Black Cod"},
		{"starter", "s1", true, "Heirloom Burrata"},
		{"drink", "dr3", true, "Saffron & Rose Elixir"},
		{"unknown id", "zz9", false, ""},
		{"empty id", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, ok := catalog.FindByID(tt.id)
			if ok != tt.found {
				t.Fatalf("FindByID(%q) ok = %v, want %v", tt.id, ok, tt.found)
			}
			if ok && item.Name != tt.wantName {
				t.Errorf("FindByID(%q) name = %q, want %q", tt.id, item.Name, tt.wantName)
			}
		})
	}
}

func TestCatalog_List(t *testing.T) {
	catalog := menu.NewCatalog()

	items := catalog.List()
	if len(items) != 14 {
		t.Fatalf("List() returned %d items, want 14", len(items))
	}

	for _, item := range items {
		if item.ID == "" || item.Name == "" {
			t.Errorf("item %+v missing id or name", item)
		}
		if item.Price <= 0 {
			t.Errorf("item %s has non-positive price %v", item.ID, item.Price)
		}
		if item.Calories < 0 {
			t.Errorf("item %s has negative calories %d", item.ID, item.Calories)
		}
	}

	// Returned slice must not alias catalog internals.
	items[0].Name = "mutated"
	fresh, _ := catalog.FindByID(items[0].ID)
	if fresh.Name == "mutated" {
		t.Error("List() leaked a mutable reference to catalog data")
	}
}

func TestCatalog_ListByCategory(t *testing.T) {
	catalog := menu.NewCatalog()

	tests := []struct {
		category menu.Category
		count    int
	}{
		{menu.CategoryStarter, 3},
		{menu.CategoryMain, 5},
		{menu.CategoryDessert, 3},
		{menu.CategoryDrink, 3},
		{menu.Category("Brunch"), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			items := catalog.ListByCategory(tt.category)
			if len(items) != tt.count {
				t.Errorf("ListByCategory(%q) = %d items, want %d", tt.category, len(items), tt.count)
			}
			for _, item := range items {
				if item.Category != tt.category {
					t.Errorf("item %s has category %q, want %q", item.ID, item.Category, tt.category)
				}
			}
		})
	}
}

func TestCatalog_RandomFact(t *testing.T) {
	catalog := menu.NewCatalog()

	known := make(map[string]bool)
	for _, fact := range catalog.Facts() {
		known[fact] = true
	}
	if len(known) == 0 {
		t.Fatal("catalog has no facts")
	}

	for i := 0; i < 20; i++ {
		if fact := catalog.RandomFact(); !known[fact] {
			t.Fatalf("RandomFact() returned unknown fact %q", fact)
		}
	}
}
