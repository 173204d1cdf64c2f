package memory

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/hogardeco/hogar/internal/domain"
)

func TestGetAll_ReturnsFullSeedCatalog(t *testing.T) {
	repo := NewProductRepo()
	list, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 8 {
		t.Fatalf("expected 8 products, got %d", len(list))
	}
	if list[0].Code != "SOF-OSL-001" || list[7].Code != "EST-FLO-008" {
		t.Errorf("catalog order broken: first %s last %s", list[0].Code, list[7].Code)
	}
}

func TestGetByCode(t *testing.T) {
	repo := NewProductRepo()
	p, err := repo.GetByCode(context.Background(), "JAR-ART-005")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Jarrón Cerámico Artesanal" || p.Price != 89 {
		t.Errorf("wrong product: %+v", p)
	}
}

func TestGetByCode_UnknownCodeIsNotFound(t *testing.T) {
	repo := NewProductRepo()
	p, err := repo.GetByCode(context.Background(), "DOES-NOT-EXIST")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if p != nil {
		t.Errorf("expected nil product, got %+v", p)
	}
}

func TestSearch_TwoRangeScenario(t *testing.T) {
	// [0,50) plus [200,inf) over the 8 seed products.
	repo := NewProductRepo()
	got, err := repo.Search(context.Background(), domain.SearchFilters{
		PriceRanges: []domain.PriceRange{
			{Min: 0, Max: 50},
			{Min: 200, Max: math.Inf(1)},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"SOF-OSL-001", "LAM-ARC-002", "MES-NOR-003", "SIL-COM-004", "EST-FLO-008"}
	if len(got) != len(want) {
		t.Fatalf("expected %d products, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].Code != w {
			t.Errorf("position %d: expected %s, got %s", i, w, got[i].Code)
		}
	}
}

func TestSearch_EmptyCategoryListBeatsQuery(t *testing.T) {
	repo := NewProductRepo()
	got, err := repo.Search(context.Background(), domain.SearchFilters{
		Categories: []string{},
		Query:      "sofá",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %d products", len(got))
	}
}

func TestSearch_DoesNotMutateCatalog(t *testing.T) {
	repo := NewProductRepo()
	_, err := repo.Search(context.Background(), domain.SearchFilters{Sort: domain.SortPriceDesc})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list, _ := repo.GetAll(context.Background())
	if list[0].Code != "SOF-OSL-001" {
		t.Errorf("sorting a search result reordered the catalog: first is %s", list[0].Code)
	}
}

func TestSearch_CancelledContext(t *testing.T) {
	repo := NewProductRepo()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := repo.Search(ctx, domain.SearchFilters{}); err == nil {
		t.Error("expected context error")
	}
}

func TestReferenceRepos(t *testing.T) {
	ctx := context.Background()

	cats, err := NewCategoryRepo().GetAll(ctx)
	if err != nil || len(cats) != 4 {
		t.Fatalf("expected 4 categories, got %d (err %v)", len(cats), err)
	}

	ranges, err := NewPriceRangeRepo().GetAll(ctx)
	if err != nil || len(ranges) != 4 {
		t.Fatalf("expected 4 price ranges, got %d (err %v)", len(ranges), err)
	}
	last := ranges[len(ranges)-1]
	if !math.IsInf(last.Max, 1) {
		t.Errorf("last price range should be open-ended, got max %v", last.Max)
	}

	designers, err := NewDesignerRepo().GetAll(ctx)
	if err != nil || len(designers) != 3 {
		t.Fatalf("expected 3 designers, got %d (err %v)", len(designers), err)
	}
}
