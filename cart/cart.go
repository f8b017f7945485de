// Package cart holds the in-memory shopping cart of one storefront view.
//
// A Store is an insertion-ordered list of line items keyed by name. Quantities
// never drop below one; removing an item deletes it outright. Every mutating
// call notifies subscribed listeners with a Snapshot so dependent views (badge,
// line list, running total, checkout button) can re-render. The store keeps no
// rendering logic of its own.
//
// A Store is not safe for concurrent use. It is meant to be owned by a single
// event-dispatch loop.
package cart

// LineItem is one product entry in the cart.
type LineItem struct {
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

// Subtotal is UnitPrice * Quantity.
func (i LineItem) Subtotal() int64 { return i.UnitPrice * int64(i.Quantity) }

// Snapshot is a copy of the cart state handed to listeners.
type Snapshot struct {
	Items         []LineItem
	TotalQuantity int
	TotalPrice    int64
	Empty         bool
}

// Listener receives a Snapshot after each mutating call.
type Listener func(Snapshot)

type subscription struct {
	id int
	fn Listener
}

// Store is the cart state container.
type Store struct {
	items     []*LineItem
	listeners []subscription
	nextID    int
}

// New returns an empty cart.
func New() *Store {
	return &Store{}
}

func (s *Store) find(name string) (int, *LineItem) {
	for i, it := range s.items {
		if it.Name == name {
			return i, it
		}
	}
	return -1, nil
}

// AddItem increments the quantity of the item called name, or appends a new
// item with quantity 1. The unit price of an existing item is left untouched;
// negative prices are stored as 0.
func (s *Store) AddItem(name string, unitPrice int64) {
	if _, it := s.find(name); it != nil {
		it.Quantity++
	} else {
		if unitPrice < 0 {
			unitPrice = 0
		}
		s.items = append(s.items, &LineItem{Name: name, UnitPrice: unitPrice, Quantity: 1})
	}
	s.notify()
}

// IncrementItem adds one to the quantity of name. Unknown names are ignored.
func (s *Store) IncrementItem(name string) {
	if _, it := s.find(name); it != nil {
		it.Quantity++
	}
	s.notify()
}

// DecrementItem subtracts one from the quantity of name, stopping at 1.
// Unknown names are ignored.
func (s *Store) DecrementItem(name string) {
	if _, it := s.find(name); it != nil && it.Quantity > 1 {
		it.Quantity--
	}
	s.notify()
}

// RemoveItem deletes name from the cart. Unknown names are ignored.
func (s *Store) RemoveItem(name string) {
	if i, it := s.find(name); it != nil {
		s.items = append(s.items[:i], s.items[i+1:]...)
	}
	s.notify()
}

// TotalQuantity is the sum of all quantities, shown on the cart badge.
func (s *Store) TotalQuantity() int {
	n := 0
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

// TotalPrice is the sum of UnitPrice * Quantity over all items.
func (s *Store) TotalPrice() int64 {
	var total int64
	for _, it := range s.items {
		total += it.Subtotal()
	}
	return total
}

// IsEmpty reports whether the cart has no items.
func (s *Store) IsEmpty() bool { return len(s.items) == 0 }

// Len is the number of distinct items.
func (s *Store) Len() int { return len(s.items) }

// Items returns a copy of the items in insertion order.
func (s *Store) Items() []LineItem {
	out := make([]LineItem, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, *it)
	}
	return out
}

// Item looks up a single item by name.
func (s *Store) Item(name string) (LineItem, bool) {
	if _, it := s.find(name); it != nil {
		return *it, true
	}
	return LineItem{}, false
}

// Snapshot captures the current state.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Items:         s.Items(),
		TotalQuantity: s.TotalQuantity(),
		TotalPrice:    s.TotalPrice(),
		Empty:         s.IsEmpty(),
	}
}

// Subscribe registers fn to be called after every mutating call, in
// subscription order. The returned func removes it; calling it more than once
// is harmless.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})
	return func() {
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify() {
	if len(s.listeners) == 0 {
		return
	}
	snap := s.Snapshot()
	// a listener may unsubscribe while we iterate
	ls := append([]subscription(nil), s.listeners...)
	for _, l := range ls {
		l.fn(snap)
	}
}
