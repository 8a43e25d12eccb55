package services_test

import (
	"context"
	"testing"

	"alwanstore/internal/services"
)

func TestFetchBanners_DisplayOrder(t *testing.T) {
	backend := newFakeBackend()
	// Shuffled insertion order, one row with a null order_index, and two
	// rows sharing an index.
	backend.tables["banners"] = []map[string]any{
		{"id": "b-summer", "title": "عرض الصيف", "order_index": 3},
		{"id": "b-plain", "title": "بدون ترتيب"},
		{"id": "b-new", "title": "وصل حديثا", "order_index": 1},
		{"id": "b-sale", "title": "تخفيضات", "order_index": 1},
	}
	svc := services.NewBannerService(testClient(t, backend), testSession(t, false))

	banners, err := svc.FetchBanners(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(banners) != 4 {
		t.Fatalf("want 4 banners, got %d", len(banners))
	}

	for i := 1; i < len(banners); i++ {
		if banners[i-1].OrderIndex > banners[i].OrderIndex {
			t.Fatalf("banners not in ascending display order: %+v", banners)
		}
	}
	// Null order_index maps to 0 and sorts first.
	if banners[0].ID != "b-plain" {
		t.Fatalf("null order_index should lead, got %q", banners[0].ID)
	}
	// Equal indexes keep their relative order.
	if banners[1].ID != "b-new" || banners[2].ID != "b-sale" {
		t.Fatalf("tied indexes must stay stable: %q, %q", banners[1].ID, banners[2].ID)
	}
	if banners[3].ID != "b-summer" {
		t.Fatalf("highest index should come last, got %q", banners[3].ID)
	}
}
