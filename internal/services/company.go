package services

import (
	"context"
	"errors"

	"alwanstore/internal/domain"
	"alwanstore/internal/mapper"
	"alwanstore/internal/remote"
	"alwanstore/internal/session"
)

type CompanyService struct {
	rc   *remote.Client
	auth *session.Store
}

func NewCompanyService(rc *remote.Client, auth *session.Store) *CompanyService {
	return &CompanyService{rc: rc, auth: auth}
}

// FetchCompanyInfo returns the single company_info row, or a usable default
// shape when the table is empty.
func (s *CompanyService) FetchCompanyInfo(ctx context.Context) (domain.CompanyInfo, error) {
	var rows []domain.DbCompanyInfo
	if err := s.rc.Select(ctx, "company_info", remote.NewQuery().Limit(1), &rows); err != nil {
		return domain.CompanyInfo{}, err
	}
	if len(rows) == 0 {
		return domain.CompanyInfo{
			Contact:      domain.ContactInfo{SocialMedia: map[string]string{}},
			ExchangeRate: mapper.DefaultExchangeRate,
		}, nil
	}
	return mapper.MapDbCompanyInfoToCompanyInfo(rows[0]), nil
}

func (s *CompanyService) UpdateCompanyInfo(ctx context.Context, id string, patch domain.CompanyInfoPatch) (domain.CompanyInfo, error) {
	if err := s.auth.RequireAuth(); err != nil {
		return domain.CompanyInfo{}, err
	}
	row := mapper.MapCompanyInfoPatchToRow(patch)
	if len(row) == 0 {
		return domain.CompanyInfo{}, ErrValidation
	}
	var rows []domain.DbCompanyInfo
	if err := s.rc.Update(ctx, "company_info", remote.NewQuery().Eq("id", id), row, &rows); err != nil {
		return domain.CompanyInfo{}, err
	}
	if len(rows) == 0 {
		return domain.CompanyInfo{}, errors.New("no company info updated")
	}
	return mapper.MapDbCompanyInfoToCompanyInfo(rows[0]), nil
}
