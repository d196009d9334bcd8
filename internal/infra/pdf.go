package infra

// pdf.go — boleta (simple sales receipt) generation using go-pdf/fpdf.
// The document is rendered to memory so handlers can stream it directly
// and the email worker can attach it without touching disk.

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/enzofs112/roxfarma-sistema-gestion/internal/model"
)

// NumeroBoleta formats the receipt number for a sale: series B001 plus the
// zero-padded sale id.
func NumeroBoleta(ventaID int64) string {
	return fmt.Sprintf("B001-%08d", ventaID)
}

// GenerarBoletaPDF renders the boleta for a completed Venta and returns the
// PDF bytes. The Venta must come preloaded with Cliente and Detalles.Producto.
func GenerarBoletaPDF(venta *model.Venta) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "LABORATORIO ROXFARMA", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Boleta de Venta", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, NumeroBoleta(venta.ID), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Sale info ─────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Fecha: "+venta.Fecha.Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	if venta.Cliente != nil {
		pdf.CellFormat(contentW, 5, "Cliente: "+venta.Cliente.Nombre, "", 1, "L", false, 0, "")
		pdf.CellFormat(contentW, 5, "Documento: "+venta.Cliente.Documento, "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	// ── Items header ──────────────────────────────────────────────────────────
	col1 := contentW * 0.50 // product name
	col2 := contentW * 0.14 // qty
	col3 := contentW * 0.18 // unit price
	col4 := contentW * 0.18 // line subtotal

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Producto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 6, "P. Unit", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, "Importe", "B", 1, "R", false, 0, "")

	// ── Item rows ─────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	for _, det := range venta.Detalles {
		nombre := ""
		if det.Producto != nil {
			nombre = det.Producto.Nombre
		}
		if len(nombre) > 38 {
			nombre = nombre[:37] + "…"
		}
		importe := det.Precio.Mul(decimal.NewFromInt(int64(det.Cantidad)))
		pdf.CellFormat(col1, 6, nombre, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, fmt.Sprintf("x%d", det.Cantidad), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 6, "S/ "+det.Precio.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 6, "S/ "+importe.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	// ── Totals ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(col1+col2+col3, 6, "Subtotal:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, "S/ "+venta.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.CellFormat(col1+col2+col3, 6, "IGV (18%):", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, "S/ "+venta.IGV.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(col1+col2+col3, 8, "TOTAL:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 8, "S/ "+venta.Total.StringFixed(2), "", 1, "R", false, 0, "")

	// ── Footer ────────────────────────────────────────────────────────────────
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 5, "Gracias por su compra", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render boleta: %w", err)
	}
	return buf.Bytes(), nil
}
