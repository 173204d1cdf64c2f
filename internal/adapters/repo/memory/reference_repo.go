package memory

import (
	"context"
	"math"

	"github.com/hogardeco/hogar/internal/domain"
)

// Static reference data: filter vocabulary and display metadata. One small
// repo per collection, same shape as the catalog repo.

type CategoryRepo struct{ categories []domain.Category }

func NewCategoryRepo() *CategoryRepo {
	return &CategoryRepo{categories: seedCategories()}
}

func (r *CategoryRepo) GetAll(ctx context.Context) ([]domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]domain.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

type PriceRangeRepo struct{ ranges []domain.PriceRange }

func NewPriceRangeRepo() *PriceRangeRepo {
	return &PriceRangeRepo{ranges: seedPriceRanges()}
}

func (r *PriceRangeRepo) GetAll(ctx context.Context) ([]domain.PriceRange, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]domain.PriceRange, len(r.ranges))
	copy(out, r.ranges)
	return out, nil
}

type DesignerRepo struct{ designers []domain.Designer }

func NewDesignerRepo() *DesignerRepo {
	return &DesignerRepo{designers: seedDesigners()}
}

func (r *DesignerRepo) GetAll(ctx context.Context) ([]domain.Designer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]domain.Designer, len(r.designers))
	copy(out, r.designers)
	return out, nil
}

func seedCategories() []domain.Category {
	return []domain.Category{
		{Code: "CAT-001", Name: "Muebles", Description: "Sofás, mesas y más", Image: "/categories/furniture.jpg"},
		{Code: "CAT-002", Name: "Decoración", Description: "Jarrones, espejos y accesorios", Image: "/categories/decor.jpg"},
		{Code: "CAT-003", Name: "Iluminación", Description: "Lámparas y luminarias", Image: "/categories/lighting.jpg"},
		{Code: "CAT-004", Name: "Textiles", Description: "Cojines y mantas", Image: "/categories/textiles.jpg"},
	}
}

func seedPriceRanges() []domain.PriceRange {
	return []domain.PriceRange{
		{Label: "Menos de 150€", Min: 0, Max: 150},
		{Label: "150€ - 400€", Min: 150, Max: 400},
		{Label: "400€ - 800€", Min: 400, Max: 800},
		{Label: "Más de 800€", Min: 800, Max: math.Inf(1)},
	}
}

func seedDesigners() []domain.Designer {
	return []domain.Designer{
		{
			Code:        "DES-ELN-001",
			Name:        "Elena Vance",
			Role:        "Diseñadora de Mobiliario",
			Quote:       `"El diseño es silencio visual."`,
			Description: "Especialista en estructuras de madera nórdica. Elena busca el equilibrio entre la calidez orgánica y las líneas industriales limpias.",
			Image:       "https://img.freepik.com/foto-gratis/mujer-morena-sonriendo-brazos-cruzados-mirando-camara-sobre-gris_171337-987.jpg",
			Alt:         "Elena Vance, Diseñadora Senior",
		},
		{
			Code:        "DES-JUL-002",
			Name:        "Julian Arcas",
			Role:        "Arquitecto de Interiores",
			Quote:       `"Menos, pero con mejor intención."`,
			Description: "Con más de 15 años de experiencia, Julian lidera nuestra visión arquitectónica, integrando mobiliario y espacio de forma indivisible.",
			Image:       "https://img.freepik.com/foto-gratis/apuesto-joven-brazos-cruzados-sobre-fondo-blanco_23-2148222620.jpg",
			Alt:         "Julian Arcas, Arquitecto de Interiores",
		},
		{
			Code:        "DES-SOF-003",
			Name:        "Sofia Martens",
			Role:        "Curadora de Textiles",
			Quote:       `"La textura es el alma del hogar."`,
			Description: "Sofia se encarga de la selección de fibras naturales, asegurando que cada pieza de HOGAR sea tan placentera al tacto como a la vista.",
			Image:       "https://img.freepik.com/foto-gratis/hermosa-mujer-sonriente-que-ve-amistosa-lista-ayudar-al-cliente-o-al-cliente-tomandose-mano-mirando-fondo-blanco-camara_176420-53436.jpg",
			Alt:         "Sofia Martens, Curadora de Arte y Textil",
		},
	}
}
