package services

import (
	"context"
	"errors"

	"alwanstore/internal/domain"
	"alwanstore/internal/log"
	"alwanstore/internal/mapper"
	"alwanstore/internal/remote"
	"alwanstore/internal/session"
)

type ReviewService struct {
	rc   *remote.Client
	auth *session.Store
}

func NewReviewService(rc *remote.Client, auth *session.Store) *ReviewService {
	return &ReviewService{rc: rc, auth: auth}
}

// FetchAllReviews tries the get_all_reviews server function first (it
// bypasses per-row policies for the admin screen) and falls back to a
// direct table read when the RPC is missing or fails.
func (s *ReviewService) FetchAllReviews(ctx context.Context) ([]domain.Review, error) {
	var rows []domain.DbReview
	if err := s.rc.RPC(ctx, "get_all_reviews", nil, &rows); err != nil {
		log.Info(nil, "reviews.rpc.fallback", map[string]any{"reason": err.Error()})
		q := remote.NewQuery().Order("created_at", "desc")
		if err := s.rc.Select(ctx, "reviews", q, &rows); err != nil {
			return nil, err
		}
	}
	out := make([]domain.Review, 0, len(rows))
	for _, r := range rows {
		out = append(out, mapper.MapDbReviewToReview(r))
	}
	return out, nil
}

// FetchReviewsByProduct returns approved reviews for the storefront.
func (s *ReviewService) FetchReviewsByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	var rows []domain.DbReview
	q := remote.NewQuery().Eq("product_id", productID).Eq("approved", "true").Order("created_at", "desc")
	if err := s.rc.Select(ctx, "reviews", q, &rows); err != nil {
		return nil, err
	}
	out := make([]domain.Review, 0, len(rows))
	for _, r := range rows {
		out = append(out, mapper.MapDbReviewToReview(r))
	}
	return out, nil
}

// CreateReview is the one public write: customers submit reviews without an
// account. New reviews start unapproved.
func (s *ReviewService) CreateReview(ctx context.Context, productID, customerName string, rating int, comment string) (domain.Review, error) {
	if customerName == "" || rating < 1 || rating > 5 {
		return domain.Review{}, ErrValidation
	}
	row := map[string]any{
		"product_id":    productID,
		"customer_name": customerName,
		"rating":        rating,
		"comment":       comment,
		"approved":      false,
	}
	var rows []domain.DbReview
	if err := s.rc.Insert(ctx, "reviews", row, &rows); err != nil {
		return domain.Review{}, err
	}
	if len(rows) == 0 {
		return domain.Review{}, errors.New("insert returned no row")
	}
	return mapper.MapDbReviewToReview(rows[0]), nil
}

func (s *ReviewService) UpdateReview(ctx context.Context, id string, patch domain.ReviewPatch) (domain.Review, error) {
	if err := s.auth.RequireAuth(); err != nil {
		return domain.Review{}, err
	}
	row := mapper.MapReviewPatchToRow(patch)
	if len(row) == 0 {
		return domain.Review{}, ErrValidation
	}
	var rows []domain.DbReview
	if err := s.rc.Update(ctx, "reviews", remote.NewQuery().Eq("id", id), row, &rows); err != nil {
		return domain.Review{}, err
	}
	if len(rows) == 0 {
		return domain.Review{}, errors.New("no review updated")
	}
	return mapper.MapDbReviewToReview(rows[0]), nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, id string) error {
	if err := s.auth.RequireAuth(); err != nil {
		return err
	}
	return s.rc.Delete(ctx, "reviews", remote.NewQuery().Eq("id", id))
}
