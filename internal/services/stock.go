package services

import (
	"context"
	"errors"

	"alwanstore/internal/domain"
	"alwanstore/internal/mapper"
	"alwanstore/internal/remote"
	"alwanstore/internal/session"
)

type StockService struct {
	rc   *remote.Client
	auth *session.Store
}

func NewStockService(rc *remote.Client, auth *session.Store) *StockService {
	return &StockService{rc: rc, auth: auth}
}

func (s *StockService) FetchTransactions(ctx context.Context) ([]domain.StockTransaction, error) {
	var rows []domain.DbStockTransaction
	q := remote.NewQuery().Order("created_at", "desc")
	if err := s.rc.Select(ctx, "stock_transactions", q, &rows); err != nil {
		return nil, err
	}
	out := make([]domain.StockTransaction, 0, len(rows))
	for _, r := range rows {
		out = append(out, mapper.MapDbStockTransactionToStockTransaction(r))
	}
	return out, nil
}

func (s *StockService) FetchTransactionsByProduct(ctx context.Context, productID string) ([]domain.StockTransaction, error) {
	var rows []domain.DbStockTransaction
	q := remote.NewQuery().Eq("product_id", productID).Order("created_at", "desc")
	if err := s.rc.Select(ctx, "stock_transactions", q, &rows); err != nil {
		return nil, err
	}
	out := make([]domain.StockTransaction, 0, len(rows))
	for _, r := range rows {
		out = append(out, mapper.MapDbStockTransactionToStockTransaction(r))
	}
	return out, nil
}

func (s *StockService) RecordTransaction(ctx context.Context, productID, txType string, qty int, notes string) (domain.StockTransaction, error) {
	if err := s.auth.RequireAuth(); err != nil {
		return domain.StockTransaction{}, err
	}
	if productID == "" || qty < 1 || (txType != "in" && txType != "out") {
		return domain.StockTransaction{}, ErrValidation
	}
	row := map[string]any{
		"product_id":       productID,
		"quantity":         qty,
		"transaction_type": txType,
	}
	if notes != "" {
		row["notes"] = notes
	}
	var rows []domain.DbStockTransaction
	if err := s.rc.Insert(ctx, "stock_transactions", row, &rows); err != nil {
		return domain.StockTransaction{}, err
	}
	if len(rows) == 0 {
		return domain.StockTransaction{}, errors.New("insert returned no row")
	}
	return mapper.MapDbStockTransactionToStockTransaction(rows[0]), nil
}

// RunningStock reduces a transaction list into the current quantity:
// "in" adds, "out" subtracts.
func RunningStock(txs []domain.StockTransaction) int {
	qty := 0
	for _, t := range txs {
		if t.TransactionType == "out" {
			qty -= t.Quantity
		} else {
			qty += t.Quantity
		}
	}
	return qty
}

// StockLevels groups the running quantity per product id.
func StockLevels(txs []domain.StockTransaction) map[string]int {
	levels := map[string]int{}
	for _, t := range txs {
		if t.TransactionType == "out" {
			levels[t.ProductID] -= t.Quantity
		} else {
			levels[t.ProductID] += t.Quantity
		}
	}
	return levels
}
