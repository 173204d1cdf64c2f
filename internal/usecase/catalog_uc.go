package usecase

import (
	"context"
	"strings"

	"github.com/hogardeco/hogar/internal/domain"
)

// CatalogUC exposes the read side of the store: products plus the three
// reference collections the filter UI is built from.
type CatalogUC struct {
	Products    domain.ProductRepo
	Categories  domain.CategoryRepo
	PriceRanges domain.PriceRangeRepo
	Designers   domain.DesignerRepo
}

func (uc *CatalogUC) List(ctx context.Context) ([]domain.Product, error) {
	return uc.Products.GetAll(ctx)
}

func (uc *CatalogUC) GetByCode(ctx context.Context, code string) (*domain.Product, error) {
	if strings.TrimSpace(code) == "" {
		return nil, domain.ErrNotFound
	}
	return uc.Products.GetByCode(ctx, code)
}

func (uc *CatalogUC) Search(ctx context.Context, f domain.SearchFilters) ([]domain.Product, error) {
	return uc.Products.Search(ctx, f)
}

func (uc *CatalogUC) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return uc.Categories.GetAll(ctx)
}

func (uc *CatalogUC) ListPriceRanges(ctx context.Context) ([]domain.PriceRange, error) {
	return uc.PriceRanges.GetAll(ctx)
}

func (uc *CatalogUC) ListDesigners(ctx context.Context) ([]domain.Designer, error) {
	return uc.Designers.GetAll(ctx)
}
