package domain

import "github.com/shopspring/decimal"

// TasaIGV is the Peruvian sales tax. It is the only rate the pharmacy
// operates under and is deliberately not configurable.
var TasaIGV = decimal.RequireFromString("0.18")

// Totales are the derived monetary figures of a sale draft.
type Totales struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	IGV      decimal.Decimal `json:"igv"`
	Total    decimal.Decimal `json:"total"`
}

// CalcularTotales computes subtotal, IGV and total over the given lines.
// Monetary rounding to two decimals happens on the final figures only, never
// per line, so rounding error cannot compound across a large ticket.
func CalcularTotales(lineas []Linea) Totales {
	subtotal := decimal.Zero
	for _, l := range lineas {
		subtotal = subtotal.Add(l.Precio.Mul(decimal.NewFromInt(int64(l.Cantidad))))
	}
	subtotal = subtotal.Round(2)
	igv := subtotal.Mul(TasaIGV).Round(2)
	return Totales{
		Subtotal: subtotal,
		IGV:      igv,
		Total:    subtotal.Add(igv),
	}
}
