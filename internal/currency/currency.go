// Package currency holds the selected display currency and exchange rate,
// persisted to local storage, and renders prices for the storefront.
package currency

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"sync"

	"alwanstore/internal/localstore"
)

const (
	USD = "USD"
	IQD = "IQD"

	// DefaultExchangeRate is IQD per USD until an admin sets one.
	DefaultExchangeRate = 1450
)

var ErrUnknownCurrency = errors.New("unknown currency code")

type Manager struct {
	ls *localstore.Store

	mu   sync.RWMutex
	code string
	rate float64
}

func NewManager(ls *localstore.Store) *Manager {
	m := &Manager{ls: ls, code: USD, rate: DefaultExchangeRate}
	var code string
	if ok, err := ls.Get(localstore.KeyCurrency, &code); err == nil && ok {
		if code == USD || code == IQD {
			m.code = code
		}
	}
	var rate float64
	if ok, err := ls.Get(localstore.KeyExchangeRate, &rate); err == nil && ok && rate > 0 {
		m.rate = rate
	}
	return m
}

func (m *Manager) Code() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.code
}

func (m *Manager) Rate() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rate
}

func (m *Manager) SetCurrency(code string) error {
	if code != USD && code != IQD {
		return ErrUnknownCurrency
	}
	m.mu.Lock()
	m.code = code
	m.mu.Unlock()
	return m.ls.Put(localstore.KeyCurrency, code)
}

func (m *Manager) SetExchangeRate(rate float64) error {
	if rate <= 0 {
		return errors.New("exchange rate must be positive")
	}
	m.mu.Lock()
	m.rate = rate
	m.mu.Unlock()
	return m.ls.Put(localstore.KeyExchangeRate, rate)
}

// ConvertPrice returns the numeric value in the selected currency, without
// formatting. Base prices are stored in USD.
func (m *Manager) ConvertPrice(usd float64) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.code == IQD {
		return math.Round(usd * m.rate)
	}
	return usd
}

// FormatPrice renders a USD base price in the selected currency:
// "$10.00" for USD, "14,500 د.ع" for IQD (rounded, thousands-separated).
func (m *Manager) FormatPrice(usd float64) string {
	m.mu.RLock()
	code, rate := m.code, m.rate
	m.mu.RUnlock()

	if code == IQD {
		n := int64(math.Round(usd * rate))
		return groupThousands(n) + " د.ع"
	}
	return fmt.Sprintf("$%.2f", usd)
}

func groupThousands(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}
