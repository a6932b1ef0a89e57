package infra

// pdf.go — liquidation report generation using go-pdf/fpdf.
// One A4 page per route: header, payment tally and financial summary.
// The output file is saved to storagePath/liquidacion_{ruta_activada_id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"magictravel/internal/dto"

	"github.com/go-pdf/fpdf"
)

// GenerarReporteLiquidacion writes the liquidation PDF for one scheduled route.
// storagePath is created if needed. Returns the absolute path of the file.
func GenerarReporteLiquidacion(rutaActivadaID, ruta, fecha string, conteo dto.ConteoPagos, resumen dto.ResumenFinanciero, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("liquidacion_%s.pdf", rutaActivadaID)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Magic Travel", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentW, 6, "Reporte de Liquidacion", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 6, ruta, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 5, "Fecha del servicio: "+fecha, "", 1, "L", false, 0, "")
	pdf.Ln(3)

	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(4)

	// ── Payment tally ─────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 6, "Reservas de venta directa", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)

	colLabel := contentW * 0.6
	colValue := contentW * 0.4
	tally := []struct {
		label string
		value int
	}{
		{"Total", conteo.Total},
		{"Confirmadas", conteo.Confirmados},
		{"Por confirmar", conteo.PorConfirmar},
		{"Pendientes", conteo.Pendientes},
		{"Sin clasificar", conteo.Desconocidos},
	}
	for _, row := range tally {
		pdf.CellFormat(colLabel, 6, row.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(colValue, 6, fmt.Sprintf("%d", row.value), "", 1, "R", false, 0, "")
	}
	pdf.Ln(3)

	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(4)

	// ── Financial summary ─────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 6, "Resumen financiero", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)

	money := []struct {
		label string
		value string
	}{
		{"Ingreso bruto", "Q " + resumen.IngresoBruto.StringFixed(2)},
		{"Total egresos", "-Q " + resumen.TotalEgresos.StringFixed(2)},
		{"Pago conductor", "-Q " + resumen.PagoConductor.StringFixed(2)},
	}
	for _, row := range money {
		pdf.CellFormat(colLabel, 6, row.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(colValue, 6, row.value, "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(colLabel, 8, "NETO:", "T", 0, "L", false, 0, "")
	pdf.CellFormat(colValue, 8, "Q "+resumen.Neto.StringFixed(2), "T", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(colLabel, 6, "Margen", "", 0, "L", false, 0, "")
	pdf.CellFormat(colValue, 6, resumen.MargenPct.StringFixed(2)+" %", "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
