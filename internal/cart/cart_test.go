package cart_test

import (
	"testing"

	"alwanstore/internal/cart"
	"alwanstore/internal/domain"
	"alwanstore/internal/localstore"
)

func memstore(t *testing.T) *localstore.Store {
	t.Helper()
	ls, err := localstore.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = ls.Close() })
	return ls
}

func item(id string, price float64, qty int) domain.CartItem {
	return domain.CartItem{ProductID: id, Name: "paint " + id, Price: price, Quantity: qty}
}

func TestAdd_MergesByProductID(t *testing.T) {
	m, err := cart.NewManager(memstore(t))
	if err != nil {
		t.Fatal(err)
	}

	m.Add(item("p-1", 10, 1))
	m.Add(item("p-1", 10, 2))
	m.Add(item("p-2", 5, 1))

	items := m.Items()
	if len(items) != 2 {
		t.Fatalf("same product should merge into one line, got %d lines", len(items))
	}
	if items[0].Quantity != 3 {
		t.Fatalf("want merged quantity 3, got %d", items[0].Quantity)
	}
	if m.TotalItems() != 4 {
		t.Fatalf("total items should sum quantities, got %d", m.TotalItems())
	}
	if m.TotalPrice() != 35 {
		t.Fatalf("total price should be sum(price*qty)=35, got %v", m.TotalPrice())
	}
}

func TestUpdateQuantity_RejectsBelowOne(t *testing.T) {
	m, err := cart.NewManager(memstore(t))
	if err != nil {
		t.Fatal(err)
	}
	m.Add(item("p-1", 10, 2))

	m.UpdateQuantity("p-1", 0)
	if got := m.Items()[0].Quantity; got != 2 {
		t.Fatalf("quantity 0 must be ignored, got %d", got)
	}
	m.UpdateQuantity("p-1", -3)
	if got := m.Items()[0].Quantity; got != 2 {
		t.Fatalf("negative quantity must be ignored, got %d", got)
	}
	m.UpdateQuantity("p-1", 5)
	if got := m.Items()[0].Quantity; got != 5 {
		t.Fatalf("valid quantity should apply, got %d", got)
	}
}

func TestRemoveAndClear(t *testing.T) {
	m, err := cart.NewManager(memstore(t))
	if err != nil {
		t.Fatal(err)
	}
	m.Add(item("p-1", 10, 1))
	m.Add(item("p-2", 5, 1))

	m.Remove("p-1")
	if len(m.Items()) != 1 || m.Items()[0].ProductID != "p-2" {
		t.Fatalf("remove left wrong items: %+v", m.Items())
	}
	m.Clear()
	if len(m.Items()) != 0 || m.TotalItems() != 0 || m.TotalPrice() != 0 {
		t.Fatal("clear should empty the cart")
	}
}

func TestCart_PersistsAcrossManagers(t *testing.T) {
	ls := memstore(t)
	m, err := cart.NewManager(ls)
	if err != nil {
		t.Fatal(err)
	}
	m.Add(item("p-1", 12.5, 2))

	// A fresh manager over the same store hydrates the saved cart.
	m2, err := cart.NewManager(ls)
	if err != nil {
		t.Fatal(err)
	}
	items := m2.Items()
	if len(items) != 1 || items[0].ProductID != "p-1" || items[0].Quantity != 2 {
		t.Fatalf("cart not hydrated from local storage: %+v", items)
	}
}
