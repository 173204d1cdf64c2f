package app

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/hogardeco/hogar/internal/adapters/httpserver"
	"github.com/hogardeco/hogar/internal/adapters/repo/memory"
	"github.com/hogardeco/hogar/internal/adapters/repo/postgres"
	"github.com/hogardeco/hogar/internal/domain"
	"github.com/hogardeco/hogar/internal/usecase"
)

// App wires repositories and use cases. With a database handle the catalog
// comes from postgres; without one the in-memory mock serves it. Reference
// data and carts are always in-memory.
type App struct {
	DB      *gorm.DB
	Catalog *usecase.CatalogUC
	Carts   *usecase.CartUC
}

func NewApp(db *gorm.DB) (*App, error) {
	var products domain.ProductRepo
	if db != nil {
		products = postgres.NewProductRepo(db)
	} else {
		products = memory.NewProductRepo()
	}

	app := &App{
		DB: db,
		Catalog: &usecase.CatalogUC{
			Products:    products,
			Categories:  memory.NewCategoryRepo(),
			PriceRanges: memory.NewPriceRangeRepo(),
			Designers:   memory.NewDesignerRepo(),
		},
		Carts: usecase.NewCartUC(),
	}
	return app, nil
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.Catalog, a.Carts)
}

// MigrateAndSeed creates the products table and loads the mock dataset on
// an empty database. No-op in memory mode.
func (a *App) MigrateAndSeed() error {
	if a.DB == nil {
		return nil
	}
	if err := a.DB.AutoMigrate(&domain.Product{}); err != nil {
		return err
	}
	var count int64
	if err := a.DB.Model(&domain.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, p := range memory.SeedProducts() {
		if err := a.DB.Create(&p).Error; err != nil {
			return err
		}
	}
	return nil
}
