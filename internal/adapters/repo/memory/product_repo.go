package memory

import (
	"context"

	"github.com/hogardeco/hogar/internal/domain"
)

// ProductRepo serves the catalog from a static in-memory dataset. It stands
// in for a real backend while keeping the exact domain.ProductRepo contract
// the rest of the code depends on.
type ProductRepo struct {
	products []domain.Product
}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{products: SeedProducts()}
}

// NewProductRepoWith builds a repo over an explicit dataset, mostly for tests.
func NewProductRepoWith(products []domain.Product) *ProductRepo {
	list := make([]domain.Product, len(products))
	copy(list, products)
	return &ProductRepo{products: list}
}

func (r *ProductRepo) GetAll(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *ProductRepo) GetByCode(ctx context.Context, code string) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, p := range r.products {
		if p.Code == code {
			found := p
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *ProductRepo) Search(ctx context.Context, f domain.SearchFilters) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return domain.SearchProducts(r.products, f), nil
}

// SeedProducts is the mock catalog. The postgres adapter seeds its table
// from the same dataset so both backends answer identically.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			Code:        "SOF-OSL-001",
			Name:        "Sofá Moderno Oslo",
			Description: "Sofá de tres plazas con diseño escandinavo minimalista. Tapizado en tela de alta calidad con patas de madera de roble natural. Perfecto para espacios contemporáneos.",
			Price:       1299.0,
			Image:       "/products/sofa.jpg",
			Category:    "Muebles",
			Stock:       15,
			Discount:    10,
			Rank:        1,
		},
		{
			Code:        "LAM-ARC-002",
			Name:        "Lámpara de Pie Arco",
			Description: "Elegante lámpara de pie con brazo arqueado y base de mármol. Pantalla de lino natural que proporciona una luz cálida y acogedora.",
			Price:       349.0,
			Image:       "/products/lamp.jpg",
			Category:    "Iluminación",
			Stock:       23,
			Discount:    0,
			Rank:        2,
		},
		{
			Code:        "MES-NOR-003",
			Name:        "Mesa de Centro Nórdica",
			Description: "Mesa de centro redonda con superficie de mármol blanco y patas de metal dorado. Combina elegancia clásica con diseño moderno.",
			Price:       589.0,
			Image:       "/products/table.jpg",
			Category:    "Muebles",
			Stock:       8,
			Discount:    15,
			Rank:        3,
		},
		{
			Code:        "SIL-COM-004",
			Name:        "Sillón Lectura Comfort",
			Description: "Sillón individual perfecto para rincones de lectura. Respaldo alto ergonómico con tapizado de terciopelo suave en tonos neutros.",
			Price:       749.0,
			Image:       "/products/chair.jpg",
			Category:    "Muebles",
			Stock:       12,
			Discount:    20,
			Rank:        4,
		},
		{
			Code:        "JAR-ART-005",
			Name:        "Jarrón Cerámico Artesanal",
			Description: "Jarrón hecho a mano por artesanos locales. Acabado mate en tonos tierra con textura única. Cada pieza es ligeramente diferente.",
			Price:       89.0,
			Image:       "/products/vase.jpg",
			Category:    "Decoración",
			Stock:       45,
			Discount:    0,
			Rank:        5,
		},
		{
			Code:        "ESP-DOR-006",
			Name:        "Espejo Circular Dorado",
			Description: "Espejo decorativo con marco de metal dorado cepillado. Diámetro de 80cm, ideal para ampliar visualmente cualquier espacio.",
			Price:       199.0,
			Image:       "/products/mirror.jpg",
			Category:    "Decoración",
			Stock:       18,
			Discount:    5,
			Rank:        6,
		},
		{
			Code:        "COJ-SET-007",
			Name:        "Cojines Set de 3",
			Description: "Set de tres cojines decorativos en tonos neutros y texturas variadas. Incluye fundas de lino, terciopelo y algodón orgánico.",
			Price:       129.0,
			Image:       "/products/cushions.jpg",
			Category:    "Textiles",
			Stock:       32,
			Discount:    0,
			Rank:        7,
		},
		{
			Code:        "EST-FLO-008",
			Name:        "Estantería Flotante",
			Description: "Sistema de estantes flotantes modulares en madera de nogal. Set de 3 estantes de diferentes tamaños con herrajes ocultos.",
			Price:       279.0,
			Image:       "/products/shelves.jpg",
			Category:    "Muebles",
			Stock:       20,
			Discount:    0,
			Rank:        8,
		},
	}
}
