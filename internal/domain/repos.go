package domain

import (
	"context"
	"errors"
)

// ErrNotFound is returned by repositories when a code matches nothing.
var ErrNotFound = errors.New("not found")

// ErrNoSession is returned when the cart API is used with a session that
// was never created (or has been discarded).
var ErrNoSession = errors.New("cart session not initialized")

// ProductRepo is the catalog read surface. Implementations are free to be
// in-memory mocks or real backends; callers only depend on this contract.
type ProductRepo interface {
	GetAll(ctx context.Context) ([]Product, error)
	GetByCode(ctx context.Context, code string) (*Product, error)
	Search(ctx context.Context, f SearchFilters) ([]Product, error)
}

type CategoryRepo interface {
	GetAll(ctx context.Context) ([]Category, error)
}

type PriceRangeRepo interface {
	GetAll(ctx context.Context) ([]PriceRange, error)
}

type DesignerRepo interface {
	GetAll(ctx context.Context) ([]Designer, error)
}
