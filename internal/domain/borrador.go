package domain

import "github.com/shopspring/decimal"

// Linea is one (producto, cantidad[, precio]) entry in an in-progress draft.
// Precio is zero for pedido lines — supplier orders carry no unit price.
type Linea struct {
	ProductoID int64
	Cantidad   int
	Precio     decimal.Decimal
}

// BorradorVenta is a sale being assembled in an editing session. Lines keep
// insertion order; at most one line exists per product.
type BorradorVenta struct {
	ClienteID int64
	Lineas    []Linea
}

// AgregarLinea accumulates a candidate line into the draft. A repeated product
// merges by summing cantidad; the unit price captured at the first add is
// retained — later catalog price changes never re-price existing lines.
// The caller is expected to have run ValidarStock first.
func (b *BorradorVenta) AgregarLinea(cat *Catalogo, productoID int64, cantidad int) error {
	p, err := resolver(cat, productoID, cantidad)
	if err != nil {
		return err
	}
	for i := range b.Lineas {
		if b.Lineas[i].ProductoID == productoID {
			b.Lineas[i].Cantidad += cantidad
			return nil
		}
	}
	b.Lineas = append(b.Lineas, Linea{ProductoID: productoID, Cantidad: cantidad, Precio: p.Precio})
	return nil
}

// QuitarLinea removes the line for productoID; absent lines are a no-op.
func (b *BorradorVenta) QuitarLinea(productoID int64) {
	b.Lineas = quitar(b.Lineas, productoID)
}

// ValidarEnvio is the submission gate: a client must be selected before the
// line check runs, so an empty draft without a client reports the missing
// client first.
func (b *BorradorVenta) ValidarEnvio() error {
	if b.ClienteID == 0 {
		return ErrSinCliente
	}
	if len(b.Lineas) == 0 {
		return ErrSinLineas
	}
	return nil
}

// Totales recomputes subtotal/IGV/total from the current lines. Pure — safe
// to call on every draft change.
func (b *BorradorVenta) Totales() Totales {
	return CalcularTotales(b.Lineas)
}

// BorradorPedido is a purchase order being assembled. Same accumulation rules
// as a sale draft, minus prices and stock validation.
type BorradorPedido struct {
	ProveedorID int64
	Lineas      []Linea
}

func (b *BorradorPedido) AgregarLinea(cat *Catalogo, productoID int64, cantidad int) error {
	if _, err := resolver(cat, productoID, cantidad); err != nil {
		return err
	}
	for i := range b.Lineas {
		if b.Lineas[i].ProductoID == productoID {
			b.Lineas[i].Cantidad += cantidad
			return nil
		}
	}
	b.Lineas = append(b.Lineas, Linea{ProductoID: productoID, Cantidad: cantidad})
	return nil
}

func (b *BorradorPedido) QuitarLinea(productoID int64) {
	b.Lineas = quitar(b.Lineas, productoID)
}

func (b *BorradorPedido) ValidarEnvio() error {
	if b.ProveedorID == 0 {
		return ErrSinProveedor
	}
	if len(b.Lineas) == 0 {
		return ErrSinLineas
	}
	return nil
}

func resolver(cat *Catalogo, productoID int64, cantidad int) (ProductoCatalogo, error) {
	if cantidad <= 0 {
		return ProductoCatalogo{}, ErrEntradaInvalida
	}
	p, ok := cat.Buscar(productoID)
	if !ok {
		return ProductoCatalogo{}, ErrEntradaInvalida
	}
	return p, nil
}

func quitar(lineas []Linea, productoID int64) []Linea {
	for i := range lineas {
		if lineas[i].ProductoID == productoID {
			return append(lineas[:i], lineas[i+1:]...)
		}
	}
	return lineas
}
