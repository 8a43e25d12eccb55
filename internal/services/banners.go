package services

import (
	"context"
	"errors"
	"sort"

	"alwanstore/internal/domain"
	"alwanstore/internal/mapper"
	"alwanstore/internal/remote"
	"alwanstore/internal/session"
)

type BannerService struct {
	rc   *remote.Client
	auth *session.Store
}

func NewBannerService(rc *remote.Client, auth *session.Store) *BannerService {
	return &BannerService{rc: rc, auth: auth}
}

// FetchBanners returns banners in display order.
func (s *BannerService) FetchBanners(ctx context.Context) ([]domain.Banner, error) {
	var rows []domain.DbBanner
	q := remote.NewQuery().Order("order_index", "asc")
	if err := s.rc.Select(ctx, "banners", q, &rows); err != nil {
		return nil, err
	}
	out := make([]domain.Banner, 0, len(rows))
	for _, r := range rows {
		out = append(out, mapper.MapDbBannerToBanner(r))
	}
	// Rows with a null order_index come back in arbitrary position.
	sort.SliceStable(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })
	return out, nil
}

func (s *BannerService) CreateBanner(ctx context.Context, patch domain.BannerPatch) (domain.Banner, error) {
	if err := s.auth.RequireAuth(); err != nil {
		return domain.Banner{}, err
	}
	if patch.Title == nil || *patch.Title == "" {
		return domain.Banner{}, ErrValidation
	}
	var rows []domain.DbBanner
	if err := s.rc.Insert(ctx, "banners", mapper.MapBannerPatchToRow(patch), &rows); err != nil {
		return domain.Banner{}, err
	}
	if len(rows) == 0 {
		return domain.Banner{}, errors.New("insert returned no row")
	}
	return mapper.MapDbBannerToBanner(rows[0]), nil
}

func (s *BannerService) UpdateBanner(ctx context.Context, id string, patch domain.BannerPatch) (domain.Banner, error) {
	if err := s.auth.RequireAuth(); err != nil {
		return domain.Banner{}, err
	}
	row := mapper.MapBannerPatchToRow(patch)
	if len(row) == 0 {
		return domain.Banner{}, ErrValidation
	}
	var rows []domain.DbBanner
	if err := s.rc.Update(ctx, "banners", remote.NewQuery().Eq("id", id), row, &rows); err != nil {
		return domain.Banner{}, err
	}
	if len(rows) == 0 {
		return domain.Banner{}, errors.New("no banner updated")
	}
	return mapper.MapDbBannerToBanner(rows[0]), nil
}

func (s *BannerService) DeleteBanner(ctx context.Context, id string) error {
	if err := s.auth.RequireAuth(); err != nil {
		return err
	}
	return s.rc.Delete(ctx, "banners", remote.NewQuery().Eq("id", id))
}
