package mapper

import "alwanstore/internal/domain"

func MapDbReviewToReview(row domain.DbReview) domain.Review {
	r := domain.Review{
		ID:           row.ID,
		CustomerName: row.CustomerName,
		CreatedAt:    row.CreatedAt,
	}
	if row.ProductID != nil {
		r.ProductID = *row.ProductID
	}
	if row.Rating != nil {
		r.Rating = *row.Rating
	}
	if row.Comment != nil {
		r.Comment = *row.Comment
	}
	if row.Approved != nil {
		r.Approved = *row.Approved
	}
	return r
}

func MapReviewPatchToRow(p domain.ReviewPatch) map[string]any {
	row := map[string]any{}
	if p.CustomerName != nil {
		row["customer_name"] = *p.CustomerName
	}
	if p.Rating != nil {
		row["rating"] = *p.Rating
	}
	if p.Comment != nil {
		row["comment"] = *p.Comment
	}
	if p.Approved != nil {
		row["approved"] = *p.Approved
	}
	return row
}
