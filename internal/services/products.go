// Package services holds one canonical service per entity. Reads go to the
// remote backend and map rows into view models; a read that fails with the
// recognized RLS misconfiguration degrades to the bundled sample catalog.
// Mutations require an active session and always propagate errors.
package services

import (
	"context"
	"errors"

	"alwanstore/internal/domain"
	"alwanstore/internal/fallback"
	"alwanstore/internal/log"
	"alwanstore/internal/mapper"
	"alwanstore/internal/metrics"
	"alwanstore/internal/remote"
	"alwanstore/internal/session"
)

var ErrValidation = errors.New("missing required fields")

type ProductService struct {
	rc   *remote.Client
	auth *session.Store
}

func NewProductService(rc *remote.Client, auth *session.Store) *ProductService {
	return &ProductService{rc: rc, auth: auth}
}

func (s *ProductService) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	var rows []domain.DbProduct
	q := remote.NewQuery().Order("created_at", "desc")
	if err := s.rc.Select(ctx, "products", q, &rows); err != nil {
		if remote.IsRLSPolicyError(err) {
			metrics.FallbackActivations.Inc()
			log.Security(nil, "products.fetch.fallback", map[string]any{"reason": err.Error()})
			return fallback.Products(), nil
		}
		return nil, err
	}
	out := make([]domain.Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, mapper.MapDbProductToProduct(r))
	}
	return out, nil
}

func (s *ProductService) FetchProductsByCategory(ctx context.Context, categoryID string) ([]domain.Product, error) {
	var rows []domain.DbProduct
	q := remote.NewQuery().Eq("category_id", categoryID).Order("created_at", "desc")
	if err := s.rc.Select(ctx, "products", q, &rows); err != nil {
		if remote.IsRLSPolicyError(err) {
			metrics.FallbackActivations.Inc()
			log.Security(nil, "products.fetch.fallback", map[string]any{"reason": err.Error(), "category": categoryID})
			return fallback.ProductsByCategory(categoryID), nil
		}
		return nil, err
	}
	out := make([]domain.Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, mapper.MapDbProductToProduct(r))
	}
	return out, nil
}

// FetchProductByID returns nil without error when no such product exists.
func (s *ProductService) FetchProductByID(ctx context.Context, id string) (*domain.Product, error) {
	var rows []domain.DbProduct
	if err := s.rc.Select(ctx, "products", remote.NewQuery().Eq("id", id), &rows); err != nil {
		if remote.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	p := mapper.MapDbProductToProduct(rows[0])
	return &p, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, patch domain.ProductPatch) (domain.Product, error) {
	if err := s.auth.RequireAuth(); err != nil {
		return domain.Product{}, err
	}
	if patch.Name == nil || *patch.Name == "" || patch.Price == nil {
		return domain.Product{}, ErrValidation
	}
	var rows []domain.DbProduct
	if err := s.rc.Insert(ctx, "products", mapper.MapProductPatchToRow(patch), &rows); err != nil {
		return domain.Product{}, err
	}
	if len(rows) == 0 {
		return domain.Product{}, errors.New("insert returned no row")
	}
	return mapper.MapDbProductToProduct(rows[0]), nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (domain.Product, error) {
	if err := s.auth.RequireAuth(); err != nil {
		return domain.Product{}, err
	}
	row := mapper.MapProductPatchToRow(patch)
	if len(row) == 0 {
		return domain.Product{}, ErrValidation
	}
	var rows []domain.DbProduct
	if err := s.rc.Update(ctx, "products", remote.NewQuery().Eq("id", id), row, &rows); err != nil {
		return domain.Product{}, err
	}
	if len(rows) == 0 {
		return domain.Product{}, errors.New("no product updated")
	}
	return mapper.MapDbProductToProduct(rows[0]), nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.auth.RequireAuth(); err != nil {
		return err
	}
	return s.rc.Delete(ctx, "products", remote.NewQuery().Eq("id", id))
}
