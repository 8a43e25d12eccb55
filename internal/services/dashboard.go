package services

import (
	"context"

	"alwanstore/internal/domain"
	"alwanstore/internal/log"
	"alwanstore/internal/remote"
	"alwanstore/internal/session"
)

type DashboardService struct {
	rc   *remote.Client
	auth *session.Store
}

func NewDashboardService(rc *remote.Client, auth *session.Store) *DashboardService {
	return &DashboardService{rc: rc, auth: auth}
}

// Stats tries the get_dashboard_stats server function and falls back to
// counting over direct table reads when the RPC is missing or fails.
func (s *DashboardService) Stats(ctx context.Context) (domain.DashboardStats, error) {
	if err := s.auth.RequireAuth(); err != nil {
		return domain.DashboardStats{}, err
	}

	var stats domain.DashboardStats
	err := s.rc.RPC(ctx, "get_dashboard_stats", nil, &stats)
	if err == nil {
		return stats, nil
	}
	log.Info(nil, "dashboard.rpc.fallback", map[string]any{"reason": err.Error()})

	var products []domain.DbProduct
	if err := s.rc.Select(ctx, "products", remote.NewQuery(), &products); err != nil {
		return domain.DashboardStats{}, err
	}
	var categories []domain.DbCategory
	if err := s.rc.Select(ctx, "categories", remote.NewQuery(), &categories); err != nil {
		return domain.DashboardStats{}, err
	}
	var sales []domain.DbSale
	if err := s.rc.Select(ctx, "sales", remote.NewQuery(), &sales); err != nil {
		return domain.DashboardStats{}, err
	}

	stats = domain.DashboardStats{
		Products:   len(products),
		Categories: len(categories),
		Sales:      len(sales),
	}
	for _, sl := range sales {
		stats.Revenue += sl.Total
	}
	return stats, nil
}
