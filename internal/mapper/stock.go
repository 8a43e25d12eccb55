package mapper

import "alwanstore/internal/domain"

func MapDbStockTransactionToStockTransaction(row domain.DbStockTransaction) domain.StockTransaction {
	t := domain.StockTransaction{
		ID:              row.ID,
		ProductID:       row.ProductID,
		Quantity:        row.Quantity,
		TransactionType: row.TransactionType,
		CreatedAt:       row.CreatedAt,
	}
	if t.TransactionType != "out" {
		t.TransactionType = "in"
	}
	if row.Notes != nil {
		t.Notes = *row.Notes
	}
	return t
}
