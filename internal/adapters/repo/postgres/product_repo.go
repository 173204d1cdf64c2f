package postgres

import (
	"context"
	"errors"
	"math"
	"strings"

	"gorm.io/gorm"

	"github.com/hogardeco/hogar/internal/domain"
)

// ProductRepo is the real-backend variant of the catalog. Same contract as
// the in-memory mock, so the rest of the code cannot tell them apart.
type ProductRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) GetAll(ctx context.Context) ([]domain.Product, error) {
	var list []domain.Product
	if err := r.db.WithContext(ctx).Order("rank asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ProductRepo) GetByCode(ctx context.Context, code string) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.WithContext(ctx).First(&p, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) Search(ctx context.Context, f domain.SearchFilters) ([]domain.Product, error) {
	if f.Categories != nil && len(f.Categories) == 0 {
		// Every category deselected: nothing can match.
		return []domain.Product{}, nil
	}

	q := r.db.WithContext(ctx).Model(&domain.Product{})
	if len(f.Categories) > 0 {
		q = q.Where("category IN ?", f.Categories)
	}
	if len(f.PriceRanges) > 0 {
		conds := make([]string, 0, len(f.PriceRanges))
		args := make([]interface{}, 0, 2*len(f.PriceRanges))
		for _, rng := range f.PriceRanges {
			if math.IsInf(rng.Max, 1) {
				conds = append(conds, "price >= ?")
				args = append(args, rng.Min)
			} else {
				conds = append(conds, "(price >= ? AND price < ?)")
				args = append(args, rng.Min, rng.Max)
			}
		}
		q = q.Where(strings.Join(conds, " OR "), args...)
	}
	if query := strings.TrimSpace(f.Query); query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?) OR LOWER(category) LIKE LOWER(?)", like, like, like)
	}

	switch f.Sort {
	case domain.SortPriceAsc:
		q = q.Order("price asc, rank asc")
	case domain.SortPriceDesc:
		q = q.Order("price desc, rank asc")
	default:
		q = q.Order("rank asc")
	}

	var list []domain.Product
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	// Name order is collation-sensitive, so it is done here rather than
	// trusting the database locale.
	if f.Sort == domain.SortName {
		domain.SortProducts(list, domain.SortName)
	}
	return list, nil
}
