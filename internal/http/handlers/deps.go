package handlers

import (
	"alwanstore/internal/cart"
	"alwanstore/internal/config"
	"alwanstore/internal/currency"
	"alwanstore/internal/localstore"
	"alwanstore/internal/remote"
	"alwanstore/internal/services"
	"alwanstore/internal/session"
)

type Deps struct {
	CatalogHandler  *CatalogHandler
	CartHandler     *CartHandler
	CheckoutHandler *CheckoutHandler
	AuthHandler     *AuthHandler
	AdminHandler    *AdminHandler
	CalcHandler     *CalcHandler
	CurrencyHandler *CurrencyHandler

	Auth *session.Store
}

func NewDeps(cfg config.Config, rc *remote.Client, ls *localstore.Store, auth *session.Store) (*Deps, error) {
	cartMgr, err := cart.NewManager(ls)
	if err != nil {
		return nil, err
	}
	curMgr := currency.NewManager(ls)

	prodSvc := services.NewProductService(rc, auth)
	catSvc := services.NewCategoryService(rc, auth)
	compSvc := services.NewCompanyService(rc, auth)
	bannerSvc := services.NewBannerService(rc, auth)
	reviewSvc := services.NewReviewService(rc, auth)
	stockSvc := services.NewStockService(rc, auth)
	salesSvc := services.NewSalesService(rc, auth)
	mediaSvc := services.NewMediaService(rc, auth, cfg.MediaBucket)
	dashSvc := services.NewDashboardService(rc, auth)

	return &Deps{
		CatalogHandler: &CatalogHandler{
			Products:   prodSvc,
			Categories: catSvc,
			Company:    compSvc,
			Banners:    bannerSvc,
			Reviews:    reviewSvc,
		},
		CartHandler: &CartHandler{Cart: cartMgr, Products: prodSvc},
		CheckoutHandler: &CheckoutHandler{
			Cart:     cartMgr,
			Sales:    salesSvc,
			Currency: curMgr,
			Company:  compSvc,
		},
		AuthHandler: &AuthHandler{Auth: auth},
		AdminHandler: &AdminHandler{
			Products:   prodSvc,
			Categories: catSvc,
			Company:    compSvc,
			Banners:    bannerSvc,
			Reviews:    reviewSvc,
			Stock:      stockSvc,
			Sales:      salesSvc,
			Media:      mediaSvc,
			Dashboard:  dashSvc,
		},
		CalcHandler:     &CalcHandler{},
		CurrencyHandler: &CurrencyHandler{Currency: curMgr},
		Auth:            auth,
	}, nil
}
