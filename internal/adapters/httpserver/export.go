package httpserver

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// handleCatalogExport streams the catalog as an xlsx workbook.
func (s *Server) handleCatalogExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", http.StatusMethodNotAllowed)
		return
	}
	list, err := s.catalog.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("catalog export")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "export failed"})
		return
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Catalogo"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "export failed"})
		return
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	header := []interface{}{"Code", "Name", "Category", "Price", "Discount %", "Stock"}
	_ = f.SetSheetRow(sheet, "A1", &header)
	for i, p := range list {
		cell := fmt.Sprintf("A%d", i+2)
		row := []interface{}{p.Code, p.Name, p.Category, p.Price, p.Discount, p.Stock}
		_ = f.SetSheetRow(sheet, cell, &row)
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="catalogo.xlsx"`)
	if err := f.Write(w); err != nil {
		log.Error().Err(err).Msg("write xlsx")
	}
}
