package services

import (
	"context"
	"errors"

	"alwanstore/internal/domain"
	"alwanstore/internal/log"
	"alwanstore/internal/mapper"
	"alwanstore/internal/metrics"
	"alwanstore/internal/remote"
	"alwanstore/internal/session"
)

type Customer struct {
	Name    string
	Phone   string
	Address string
}

type SalesService struct {
	rc   *remote.Client
	auth *session.Store
}

func NewSalesService(rc *remote.Client, auth *session.Store) *SalesService {
	return &SalesService{rc: rc, auth: auth}
}

// CreateSale records a checkout: the sale row plus its line items. Customers
// check out without an account, so this write is public. The two inserts are
// separate remote calls; if the items insert fails, the orphaned sale row is
// deleted so a retry starts clean. Callers keep the cart intact on any error.
func (s *SalesService) CreateSale(ctx context.Context, cust Customer, items []domain.CartItem) (domain.Sale, error) {
	if cust.Name == "" || len(items) == 0 {
		return domain.Sale{}, ErrValidation
	}

	total := 0.0
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}

	saleRow := map[string]any{
		"customer_name":    cust.Name,
		"customer_phone":   cust.Phone,
		"customer_address": cust.Address,
		"total":            total,
	}
	var saleRows []domain.DbSale
	if err := s.rc.Insert(ctx, "sales", saleRow, &saleRows); err != nil {
		metrics.CheckoutsTotal.WithLabelValues("error").Inc()
		return domain.Sale{}, err
	}
	if len(saleRows) == 0 {
		metrics.CheckoutsTotal.WithLabelValues("error").Inc()
		return domain.Sale{}, errors.New("sale insert returned no row")
	}
	sale := saleRows[0]

	itemRows := make([]domain.DbSaleItem, 0, len(items))
	for _, it := range items {
		name := it.Name
		itemRows = append(itemRows, domain.DbSaleItem{
			SaleID:      sale.ID,
			ProductID:   it.ProductID,
			ProductName: &name,
			Quantity:    it.Quantity,
			UnitPrice:   it.Price,
			TotalPrice:  it.Price * float64(it.Quantity),
		})
	}
	var inserted []domain.DbSaleItem
	if err := s.rc.Insert(ctx, "sale_items", itemRows, &inserted); err != nil {
		// Compensate: drop the orphaned sale so the checkout can retry.
		if derr := s.rc.Delete(ctx, "sales", remote.NewQuery().Eq("id", sale.ID)); derr != nil {
			log.Error(nil, "checkout.compensate.fail", derr, map[string]any{"sale_id": sale.ID})
		}
		metrics.CheckoutsTotal.WithLabelValues("error").Inc()
		return domain.Sale{}, err
	}

	metrics.CheckoutsTotal.WithLabelValues("ok").Inc()
	return mapper.MapDbSaleToSale(sale, inserted), nil
}

// FetchSales lists completed sales with their line items for the admin
// screen.
func (s *SalesService) FetchSales(ctx context.Context) ([]domain.Sale, error) {
	if err := s.auth.RequireAuth(); err != nil {
		return nil, err
	}
	var saleRows []domain.DbSale
	q := remote.NewQuery().Order("created_at", "desc")
	if err := s.rc.Select(ctx, "sales", q, &saleRows); err != nil {
		return nil, err
	}
	var itemRows []domain.DbSaleItem
	if err := s.rc.Select(ctx, "sale_items", remote.NewQuery(), &itemRows); err != nil {
		return nil, err
	}
	bySale := map[string][]domain.DbSaleItem{}
	for _, it := range itemRows {
		bySale[it.SaleID] = append(bySale[it.SaleID], it)
	}
	out := make([]domain.Sale, 0, len(saleRows))
	for _, r := range saleRows {
		out = append(out, mapper.MapDbSaleToSale(r, bySale[r.ID]))
	}
	return out, nil
}

// FetchSaleByID returns one sale with items, nil when absent. Used by the
// receipt page, so it is public: the sale id acts as the receipt token.
func (s *SalesService) FetchSaleByID(ctx context.Context, id string) (*domain.Sale, error) {
	var saleRows []domain.DbSale
	if err := s.rc.Select(ctx, "sales", remote.NewQuery().Eq("id", id), &saleRows); err != nil {
		return nil, err
	}
	if len(saleRows) == 0 {
		return nil, nil
	}
	var itemRows []domain.DbSaleItem
	if err := s.rc.Select(ctx, "sale_items", remote.NewQuery().Eq("sale_id", id), &itemRows); err != nil {
		return nil, err
	}
	sale := mapper.MapDbSaleToSale(saleRows[0], itemRows)
	return &sale, nil
}
