package mapper

import "alwanstore/internal/domain"

func MapDbSaleItemToSaleItem(row domain.DbSaleItem) domain.SaleItem {
	it := domain.SaleItem{
		ProductID:  row.ProductID,
		Quantity:   row.Quantity,
		UnitPrice:  row.UnitPrice,
		TotalPrice: row.TotalPrice,
	}
	if row.ProductName != nil {
		it.ProductName = *row.ProductName
	}
	if it.TotalPrice == 0 {
		it.TotalPrice = it.UnitPrice * float64(it.Quantity)
	}
	return it
}

func MapDbSaleToSale(row domain.DbSale, items []domain.DbSaleItem) domain.Sale {
	s := domain.Sale{
		ID:           row.ID,
		CustomerName: row.CustomerName,
		Total:        row.Total,
		CreatedAt:    row.CreatedAt,
		Items:        []domain.SaleItem{},
	}
	if row.CustomerPhone != nil {
		s.CustomerPhone = *row.CustomerPhone
	}
	if row.CustomerAddress != nil {
		s.CustomerAddress = *row.CustomerAddress
	}
	for _, it := range items {
		s.Items = append(s.Items, MapDbSaleItemToSaleItem(it))
	}
	return s
}
