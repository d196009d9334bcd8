package domain

import "time"

const (
	// UmbralStockBajo: products with stock strictly below this appear in the
	// low-stock alert (stock=9 alerts, stock=10 does not).
	UmbralStockBajo = 10

	// DiasVentanaVencimiento is the forward window for the near-expiry alert.
	// Products already expired stay in the list until pulled from the shelf —
	// hiding them from the dashboard would be worse than showing them late.
	DiasVentanaVencimiento = 30
)

// Alertas are the dashboard alert lists, derived on demand from a catalog
// snapshot and never stored.
type Alertas struct {
	StockBajo       []ProductoCatalogo `json:"stockBajo"`
	ProximosAVencer []ProductoCatalogo `json:"proximosVencer"`
}

// Estadisticas are the dashboard summary counters.
type Estadisticas struct {
	TotalProductos     int `json:"totalProductos"`
	StockTotal         int `json:"stockTotal"`
	AlertasStockBajo   int `json:"alertasStockBajo"`
	AlertasVencimiento int `json:"alertasVencimiento"`
}

// CalcularAlertas derives both alert lists, preserving the snapshot's
// iteration order.
func CalcularAlertas(cat *Catalogo, ahora time.Time) Alertas {
	limite := ahora.AddDate(0, 0, DiasVentanaVencimiento)
	a := Alertas{
		StockBajo:       []ProductoCatalogo{},
		ProximosAVencer: []ProductoCatalogo{},
	}
	for _, p := range cat.Productos() {
		if p.Stock < UmbralStockBajo {
			a.StockBajo = append(a.StockBajo, p)
		}
		if !p.FechaVencimiento.After(limite) {
			a.ProximosAVencer = append(a.ProximosAVencer, p)
		}
	}
	return a
}

// CalcularEstadisticas derives the summary counters. Pure and cheap — safe to
// recompute on every dashboard load.
func CalcularEstadisticas(cat *Catalogo, ahora time.Time) Estadisticas {
	alertas := CalcularAlertas(cat, ahora)
	stockTotal := 0
	for _, p := range cat.Productos() {
		stockTotal += p.Stock
	}
	return Estadisticas{
		TotalProductos:     len(cat.Productos()),
		StockTotal:         stockTotal,
		AlertasStockBajo:   len(alertas.StockBajo),
		AlertasVencimiento: len(alertas.ProximosAVencer),
	}
}
