package service

import (
	"errors"
	"testing"
)

func TestProductServicePagination(t *testing.T) {
	svc := NewProductService(openTestDB(t))

	page1, totalPages, err := svc.List(1)
	if err != nil {
		t.Fatalf("List(1): %v", err)
	}
	if len(page1) != ProductsPerPage {
		t.Fatalf("expected a full first page of %d products, got %d", ProductsPerPage, len(page1))
	}
	if totalPages != 2 {
		t.Fatalf("expected 2 pages for the demo catalog, got %d", totalPages)
	}

	page2, _, err := svc.List(2)
	if err != nil {
		t.Fatalf("List(2): %v", err)
	}
	if len(page2) == 0 {
		t.Fatalf("expected second page to have products")
	}
	if page1[0].ID == page2[0].ID {
		t.Fatalf("pages should not overlap")
	}

	// Out-of-range pages are empty, not an error.
	beyond, _, err := svc.List(99)
	if err != nil {
		t.Fatalf("List(99): %v", err)
	}
	if len(beyond) != 0 {
		t.Fatalf("expected empty slice beyond the last page, got %d products", len(beyond))
	}

	// Non-positive pages clamp to page 1.
	clamped, _, err := svc.List(0)
	if err != nil {
		t.Fatalf("List(0): %v", err)
	}
	if len(clamped) != len(page1) || clamped[0].ID != page1[0].ID {
		t.Fatalf("expected page 0 to clamp to page 1")
	}
}

func TestProductServiceGet(t *testing.T) {
	svc := NewProductService(openTestDB(t))

	product, err := svc.Get("p1")
	if err != nil {
		t.Fatalf("Get(p1): %v", err)
	}
	if product.ID != "p1" || product.Name == "" || product.Stock <= 0 {
		t.Fatalf("unexpected product: %+v", product)
	}

	if _, err := svc.Get("nope"); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
