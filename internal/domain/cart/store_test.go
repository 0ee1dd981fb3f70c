package cart_test

import (
	"sync"
	"testing"

	"lumina-server/concierge-api/internal/domain/cart"
	"lumina-server/concierge-api/internal/domain/menu"
)

func testItem(id, name string, price float64) menu.Item {
	return menu.Item{ID: id, Name: name, Price: price, Category: menu.CategoryMain}
}

func TestStore_AddMergesByItemID(t *testing.T) {
	store := cart.NewStore()
	cod := testItem("m1", "Miso Glazed Black Cod", 48)

	first := store.Add(cod, 1)
	second := store.Add(cod, 2)

	if second.Quantity != 3 {
		t.Errorf("merged quantity = %d, want 3", second.Quantity)
	}
	if second.InstanceID != first.InstanceID {
		t.Errorf("merge changed instance id: %q -> %q", first.InstanceID, second.InstanceID)
	}

	lines := store.Snapshot()
	if len(lines) != 1 {
		t.Fatalf("cart has %d lines, want 1", len(lines))
	}
	if store.TotalItems() != 3 {
		t.Errorf("TotalItems() = %d, want 3", store.TotalItems())
	}
}

func TestStore_AddQuantitySummation(t *testing.T) {
	store := cart.NewStore()
	item := testItem("m3", "Wild Mushroom Risotto", 36)

	quantities := []int{1, 4, 2, 1}
	want := 0
	for _, q := range quantities {
		store.Add(item, q)
		want += q
	}

	if got := store.TotalItems(); got != want {
		t.Errorf("total quantity after adds = %d, want %d", got, want)
	}
}

func TestStore_AddFloorsQuantityAtOne(t *testing.T) {
	store := cart.NewStore()
	line := store.Add(testItem("d1", "Valrhona Chocolate Sphere", 22), 0)
	if line.Quantity != 1 {
		t.Errorf("Add with quantity 0 produced quantity %d, want 1", line.Quantity)
	}
}

func TestStore_RemoveByItemID(t *testing.T) {
	store := cart.NewStore()
	store.Add(testItem("m1", "Miso Glazed Black Cod", 48), 2)
	store.Add(testItem("d2", "Yuzu & Basil Tart", 18), 1)

	if !store.RemoveByItemID("m1") {
		t.Error("RemoveByItemID on present id reported no removal")
	}
	if len(store.Snapshot()) != 1 {
		t.Errorf("cart has %d lines after removal, want 1", len(store.Snapshot()))
	}

	// Idempotent no-op on absent id: cart unchanged.
	before := store.Snapshot()
	if store.RemoveByItemID("m1") {
		t.Error("RemoveByItemID on absent id reported a removal")
	}
	after := store.Snapshot()
	if len(before) != len(after) {
		t.Errorf("cart changed on no-op removal: %d -> %d lines", len(before), len(after))
	}
}

func TestStore_UpdateQuantity(t *testing.T) {
	store := cart.NewStore()
	line := store.Add(testItem("dr1", "Smoked Zero-Proof Old Fashioned", 18), 2)

	tests := []struct {
		name  string
		delta int
		want  int
	}{
		{"increment", 1, 3},
		{"decrement", -1, 2},
		{"floors at one", -10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated, ok := store.UpdateQuantity(line.InstanceID, tt.delta)
			if !ok {
				t.Fatal("UpdateQuantity did not find the line")
			}
			if updated.Quantity != tt.want {
				t.Errorf("quantity = %d, want %d", updated.Quantity, tt.want)
			}
		})
	}

	if _, ok := store.UpdateQuantity("missing-instance", 1); ok {
		t.Error("UpdateQuantity on unknown instance id reported success")
	}
}

func TestStore_Totals(t *testing.T) {
	store := cart.NewStore()
	store.Add(testItem("m2", "Herb-Crusted Lamb Rack", 52), 2)
	store.Add(testItem("d3", "Pistachio Soufflé", 20), 1)

	if got := store.TotalPrice(); got != 124 {
		t.Errorf("TotalPrice() = %v, want 124", got)
	}

	store.Clear()
	if store.TotalItems() != 0 || store.TotalPrice() != 0 {
		t.Errorf("after Clear: items=%d price=%v, want zeroes", store.TotalItems(), store.TotalPrice())
	}
}

func TestStore_ConcurrentMutations(t *testing.T) {
	store := cart.NewStore()
	item := testItem("m5", "Truffle Tagliolini", 42)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Add(item, 1)
		}()
	}
	wg.Wait()

	if got := store.TotalItems(); got != 50 {
		t.Errorf("TotalItems() after concurrent adds = %d, want 50", got)
	}
	if lines := store.Snapshot(); len(lines) != 1 {
		t.Errorf("concurrent adds produced %d lines, want 1", len(lines))
	}
}
