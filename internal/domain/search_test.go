package domain

import (
	"math"
	"testing"
)

func sampleCatalog() []Product {
	return []Product{
		{Code: "SOF-OSL-001", Name: "Sofá Moderno Oslo", Description: "Sofá de tres plazas", Price: 1299, Category: "Muebles"},
		{Code: "LAM-ARC-002", Name: "Lámpara de Pie Arco", Description: "Lámpara con base de mármol", Price: 349, Category: "Iluminación"},
		{Code: "JAR-ART-005", Name: "Jarrón Cerámico Artesanal", Description: "Jarrón hecho a mano", Price: 89, Category: "Decoración"},
		{Code: "COJ-SET-007", Name: "Cojines Set de 3", Description: "Set de tres cojines", Price: 129, Category: "Textiles"},
		{Code: "EST-FLO-008", Name: "Estantería Flotante", Description: "Estantes flotantes modulares", Price: 279, Category: "Muebles"},
	}
}

func codes(list []Product) []string {
	out := make([]string, len(list))
	for i, p := range list {
		out[i] = p.Code
	}
	return out
}

func TestFilterProducts_NoFiltersKeepsCatalogOrder(t *testing.T) {
	got := FilterProducts(sampleCatalog(), SearchFilters{})
	want := []string{"SOF-OSL-001", "LAM-ARC-002", "JAR-ART-005", "COJ-SET-007", "EST-FLO-008"}
	assertCodes(t, got, want)
}

func TestFilterProducts_ExplicitlyEmptyCategoriesMatchesNothing(t *testing.T) {
	got := FilterProducts(sampleCatalog(), SearchFilters{
		Categories: []string{},
		Query:      "sofá",
	})
	if len(got) != 0 {
		t.Errorf("deselected categories must return nothing, got %v", codes(got))
	}
}

func TestFilterProducts_CategoryList(t *testing.T) {
	got := FilterProducts(sampleCatalog(), SearchFilters{Categories: []string{"Muebles"}})
	assertCodes(t, got, []string{"SOF-OSL-001", "EST-FLO-008"})
}

func TestFilterProducts_PriceRangesAreHalfOpenAnyOf(t *testing.T) {
	// 129 hits the upper bound of [89, 129) and must be excluded there,
	// but the second range picks up everything from 279 on.
	got := FilterProducts(sampleCatalog(), SearchFilters{
		PriceRanges: []PriceRange{
			{Min: 89, Max: 129},
			{Min: 279, Max: math.Inf(1)},
		},
	})
	assertCodes(t, got, []string{"SOF-OSL-001", "LAM-ARC-002", "JAR-ART-005", "EST-FLO-008"})
}

func TestFilterProducts_BlankQueryIsNoFilter(t *testing.T) {
	for _, q := range []string{"", "   ", "\t\n"} {
		got := FilterProducts(sampleCatalog(), SearchFilters{Query: q})
		if len(got) != len(sampleCatalog()) {
			t.Errorf("query %q: expected all products, got %d", q, len(got))
		}
	}
}

func TestFilterProducts_QueryMatchesNameDescriptionCategory(t *testing.T) {
	byName := FilterProducts(sampleCatalog(), SearchFilters{Query: "OSLO"})
	assertCodes(t, byName, []string{"SOF-OSL-001"})

	byDescription := FilterProducts(sampleCatalog(), SearchFilters{Query: "mármol"})
	assertCodes(t, byDescription, []string{"LAM-ARC-002"})

	byCategory := FilterProducts(sampleCatalog(), SearchFilters{Query: "textil"})
	assertCodes(t, byCategory, []string{"COJ-SET-007"})
}

func TestFilterProducts_StagesCompose(t *testing.T) {
	got := FilterProducts(sampleCatalog(), SearchFilters{
		Categories:  []string{"Muebles", "Decoración"},
		PriceRanges: []PriceRange{{Min: 0, Max: 300}},
		Query:       "jarrón",
	})
	assertCodes(t, got, []string{"JAR-ART-005"})
}

func TestSortProducts_PriceAscending(t *testing.T) {
	list := sampleCatalog()
	SortProducts(list, SortPriceAsc)
	assertCodes(t, list, []string{"JAR-ART-005", "COJ-SET-007", "EST-FLO-008", "LAM-ARC-002", "SOF-OSL-001"})
}

func TestSortProducts_PriceDescending(t *testing.T) {
	list := sampleCatalog()
	SortProducts(list, SortPriceDesc)
	assertCodes(t, list, []string{"SOF-OSL-001", "LAM-ARC-002", "EST-FLO-008", "COJ-SET-007", "JAR-ART-005"})
}

func TestSortProducts_NameIsLocaleAware(t *testing.T) {
	list := sampleCatalog()
	SortProducts(list, SortName)
	assertCodes(t, list, []string{"COJ-SET-007", "EST-FLO-008", "JAR-ART-005", "LAM-ARC-002", "SOF-OSL-001"})
}

func TestSearchProducts_FilterThenSort(t *testing.T) {
	got := SearchProducts(sampleCatalog(), SearchFilters{
		Categories: []string{"Muebles", "Textiles"},
		Sort:       SortPriceAsc,
	})
	assertCodes(t, got, []string{"COJ-SET-007", "EST-FLO-008", "SOF-OSL-001"})
}

func assertCodes(t *testing.T, got []Product, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, codes(got))
	}
	for i := range want {
		if got[i].Code != want[i] {
			t.Fatalf("expected %v, got %v", want, codes(got))
		}
	}
}
