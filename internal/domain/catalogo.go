// Package domain holds the pure transaction-building rules of the system:
// catalog snapshots, draft accumulation, stock validation, pricing, the pedido
// state machine, and the dashboard aggregates. Nothing here touches
// persistence or the network; services feed it snapshots and drafts and act on
// the results.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductoCatalogo is the read-only product view the core operates on.
type ProductoCatalogo struct {
	ID               int64
	Nombre           string
	Precio           decimal.Decimal
	Stock            int
	FechaVencimiento time.Time
	CategoriaID      int64
}

// Catalogo is a point-in-time snapshot of the product catalog. It is fetched
// once per editing session and deliberately NOT refreshed while lines are
// added: the client-side stock check is advisory, the authoritative check
// happens inside the commit transaction.
type Catalogo struct {
	productos []ProductoCatalogo
	porID     map[int64]int
}

// NuevoCatalogo builds a snapshot preserving the given iteration order.
func NuevoCatalogo(productos []ProductoCatalogo) *Catalogo {
	c := &Catalogo{
		productos: productos,
		porID:     make(map[int64]int, len(productos)),
	}
	for i, p := range productos {
		c.porID[p.ID] = i
	}
	return c
}

// Buscar resolves a product by id within the snapshot.
func (c *Catalogo) Buscar(productoID int64) (ProductoCatalogo, bool) {
	i, ok := c.porID[productoID]
	if !ok {
		return ProductoCatalogo{}, false
	}
	return c.productos[i], true
}

// Productos returns the snapshot in its original iteration order.
func (c *Catalogo) Productos() []ProductoCatalogo { return c.productos }

// ValidarStock checks a requested quantity against the snapshot's available
// stock. Sales only — pedidos order FROM a supplier and consume no stock.
func ValidarStock(c *Catalogo, productoID int64, cantidad int) error {
	if cantidad <= 0 {
		return ErrEntradaInvalida
	}
	p, ok := c.Buscar(productoID)
	if !ok {
		return ErrEntradaInvalida
	}
	if cantidad > p.Stock {
		return &StockInsuficienteError{
			ProductoID: p.ID,
			Nombre:     p.Nombre,
			Disponible: p.Stock,
			Solicitado: cantidad,
		}
	}
	return nil
}
