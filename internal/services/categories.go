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

type CategoryService struct {
	rc   *remote.Client
	auth *session.Store
}

func NewCategoryService(rc *remote.Client, auth *session.Store) *CategoryService {
	return &CategoryService{rc: rc, auth: auth}
}

func (s *CategoryService) FetchCategories(ctx context.Context) ([]domain.Category, error) {
	var rows []domain.DbCategory
	q := remote.NewQuery().Order("name", "asc")
	if err := s.rc.Select(ctx, "categories", q, &rows); err != nil {
		if remote.IsRLSPolicyError(err) {
			metrics.FallbackActivations.Inc()
			log.Security(nil, "categories.fetch.fallback", map[string]any{"reason": err.Error()})
			return fallback.Categories(), nil
		}
		return nil, err
	}
	out := make([]domain.Category, 0, len(rows))
	for _, r := range rows {
		out = append(out, mapper.MapDbCategoryToCategory(r))
	}
	return out, nil
}

func (s *CategoryService) FetchCategoryByID(ctx context.Context, id string) (*domain.Category, error) {
	var rows []domain.DbCategory
	if err := s.rc.Select(ctx, "categories", remote.NewQuery().Eq("id", id), &rows); err != nil {
		if remote.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	c := mapper.MapDbCategoryToCategory(rows[0])
	return &c, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, patch domain.CategoryPatch) (domain.Category, error) {
	if err := s.auth.RequireAuth(); err != nil {
		return domain.Category{}, err
	}
	if patch.Name == nil || *patch.Name == "" {
		return domain.Category{}, ErrValidation
	}
	var rows []domain.DbCategory
	if err := s.rc.Insert(ctx, "categories", mapper.MapCategoryPatchToRow(patch), &rows); err != nil {
		return domain.Category{}, err
	}
	if len(rows) == 0 {
		return domain.Category{}, errors.New("insert returned no row")
	}
	return mapper.MapDbCategoryToCategory(rows[0]), nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id string, patch domain.CategoryPatch) (domain.Category, error) {
	if err := s.auth.RequireAuth(); err != nil {
		return domain.Category{}, err
	}
	row := mapper.MapCategoryPatchToRow(patch)
	if len(row) == 0 {
		return domain.Category{}, ErrValidation
	}
	var rows []domain.DbCategory
	if err := s.rc.Update(ctx, "categories", remote.NewQuery().Eq("id", id), row, &rows); err != nil {
		return domain.Category{}, err
	}
	if len(rows) == 0 {
		return domain.Category{}, errors.New("no category updated")
	}
	return mapper.MapDbCategoryToCategory(rows[0]), nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.auth.RequireAuth(); err != nil {
		return err
	}
	return s.rc.Delete(ctx, "categories", remote.NewQuery().Eq("id", id))
}
