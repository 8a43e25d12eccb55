// Package cart keeps the shopping cart in memory, hydrated from and
// persisted to local storage on every change.
package cart

import (
	"sync"

	"alwanstore/internal/domain"
	"alwanstore/internal/localstore"
)

type Manager struct {
	ls *localstore.Store

	mu    sync.Mutex
	items []domain.CartItem
}

func NewManager(ls *localstore.Store) (*Manager, error) {
	m := &Manager{ls: ls, items: []domain.CartItem{}}
	var saved []domain.CartItem
	ok, err := ls.Get(localstore.KeyCart, &saved)
	if err != nil {
		return nil, err
	}
	if ok && saved != nil {
		m.items = saved
	}
	return m, nil
}

// Add merges by product id: an existing line gains quantity instead of
// duplicating.
func (m *Manager) Add(item domain.CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ProductID == item.ProductID {
			m.items[i].Quantity += item.Quantity
			m.persist()
			return
		}
	}
	m.items = append(m.items, item)
	m.persist()
}

// UpdateQuantity sets a line's quantity. Quantities below 1 are silently
// ignored; remove the line instead.
func (m *Manager) UpdateQuantity(productID string, qty int) {
	if qty < 1 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ProductID == productID {
			m.items[i].Quantity = qty
			m.persist()
			return
		}
	}
}

func (m *Manager) Remove(productID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ProductID == productID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			m.persist()
			return
		}
	}
}

func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = []domain.CartItem{}
	m.persist()
}

func (m *Manager) Items() []domain.CartItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.CartItem, len(m.items))
	copy(out, m.items)
	return out
}

func (m *Manager) TotalItems() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, it := range m.items {
		n += it.Quantity
	}
	return n
}

func (m *Manager) TotalPrice() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0.0
	for _, it := range m.items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// persist is called with the lock held.
func (m *Manager) persist() {
	_ = m.ls.Put(localstore.KeyCart, m.items)
}
