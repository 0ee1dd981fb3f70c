package cart

import (
	"sync"

	"github.com/google/uuid"

	"lumina-server/concierge-api/internal/domain/menu"
)

// Line is one entry in the cart: a catalog item snapshot plus quantity.
// InstanceID is a stable per-line handle used by the checkout view for
// per-line quantity edits; lines themselves merge by catalog item id.
type Line struct {
	Item       menu.Item `json:"item"`
	Quantity   int       `json:"quantity"`
	InstanceID string    `json:"instance_id"`
}

// Store holds the in-memory cart for one session. All mutations are atomic
// with respect to each other; UI-originated and assistant-originated edits
// go through the same methods.
type Store struct {
	mu    sync.Mutex
	lines []Line
}

// NewStore creates an empty cart.
func NewStore() *Store {
	return &Store{}
}

// Add merges quantity into an existing line for the same catalog id, or
// appends a new line with a fresh instance id. Quantities below 1 are
// treated as 1.
func (s *Store) Add(item menu.Item, quantity int) Line {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Item.ID == item.ID {
			s.lines[i].Quantity += quantity
			return s.lines[i]
		}
	}

	line := Line{
		Item:       item,
		Quantity:   quantity,
		InstanceID: uuid.NewString(),
	}
	s.lines = append(s.lines, line)
	return line
}

// RemoveByItemID drops the line matching the catalog id. Removing an id
// with no matching line is a no-op; the bool reports whether a line was
// actually removed.
func (s *Store) RemoveByItemID(itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Item.ID == itemID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveByInstanceID drops the line with the given instance handle.
func (s *Store) RemoveByInstanceID(instanceID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].InstanceID == instanceID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateQuantity applies a delta to the line with the given instance
// handle. The resulting quantity floors at 1; explicit removal is the only
// way to drop a line from the checkout view.
func (s *Store) UpdateQuantity(instanceID string, delta int) (Line, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].InstanceID == instanceID {
			next := s.lines[i].Quantity + delta
			if next < 1 {
				next = 1
			}
			s.lines[i].Quantity = next
			return s.lines[i], true
		}
	}
	return Line{}, false
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// Snapshot returns a copy of the current lines, safe to read without
// holding the store lock.
func (s *Store) Snapshot() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// TotalItems is the summed quantity across all lines.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice is the summed price across all lines.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, line := range s.lines {
		total += line.Item.Price * float64(line.Quantity)
	}
	return total
}
