package currency_test

import (
	"testing"

	"alwanstore/internal/currency"
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

func TestFormatPrice_USD(t *testing.T) {
	m := currency.NewManager(memstore(t))
	if got := m.FormatPrice(10); got != "$10.00" {
		t.Fatalf("want $10.00, got %q", got)
	}
	if got := m.FormatPrice(1234.5); got != "$1234.50" {
		t.Fatalf("want $1234.50, got %q", got)
	}
}

func TestFormatPrice_IQD(t *testing.T) {
	m := currency.NewManager(memstore(t))
	if err := m.SetCurrency(currency.IQD); err != nil {
		t.Fatal(err)
	}
	if err := m.SetExchangeRate(1450); err != nil {
		t.Fatal(err)
	}
	if got := m.FormatPrice(10); got != "14,500 د.ع" {
		t.Fatalf("want 14,500 د.ع, got %q", got)
	}
	if got := m.FormatPrice(1000); got != "1,450,000 د.ع" {
		t.Fatalf("want 1,450,000 د.ع, got %q", got)
	}
	// Rounded to the nearest dinar, not truncated.
	if got := m.FormatPrice(0.001); got != "1 د.ع" {
		t.Fatalf("want 1 د.ع, got %q", got)
	}
}

func TestConvertPrice(t *testing.T) {
	m := currency.NewManager(memstore(t))
	if got := m.ConvertPrice(10); got != 10 {
		t.Fatalf("USD conversion should be identity, got %v", got)
	}
	_ = m.SetCurrency(currency.IQD)
	_ = m.SetExchangeRate(1450)
	if got := m.ConvertPrice(10); got != 14500 {
		t.Fatalf("want 14500, got %v", got)
	}
}

func TestSetCurrency_RejectsUnknown(t *testing.T) {
	m := currency.NewManager(memstore(t))
	if err := m.SetCurrency("EUR"); err == nil {
		t.Fatal("unknown currency should be rejected")
	}
	if m.Code() != currency.USD {
		t.Fatalf("rejected set must not change state, got %q", m.Code())
	}
}

func TestCurrency_PersistsAcrossManagers(t *testing.T) {
	ls := memstore(t)
	m := currency.NewManager(ls)
	_ = m.SetCurrency(currency.IQD)
	_ = m.SetExchangeRate(1500)

	m2 := currency.NewManager(ls)
	if m2.Code() != currency.IQD || m2.Rate() != 1500 {
		t.Fatalf("currency state not hydrated: %s %v", m2.Code(), m2.Rate())
	}
}
