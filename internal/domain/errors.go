package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for draft building and submission. Handlers map these to
// HTTP statuses; they are always resolved locally, before any store call.
var (
	ErrEntradaInvalida = errors.New("producto o cantidad invalida")
	ErrSinCliente      = errors.New("debe seleccionar un cliente")
	ErrSinProveedor    = errors.New("debe seleccionar un proveedor")
	ErrSinLineas       = errors.New("debe agregar al menos un producto")
)

// StockInsuficienteError carries the available quantity so the caller can show
// "Disponible: N" the way the sale form does.
type StockInsuficienteError struct {
	ProductoID int64
	Nombre     string
	Disponible int
	Solicitado int
}

func (e *StockInsuficienteError) Error() string {
	return fmt.Sprintf("Stock insuficiente para %s. Disponible: %d, Solicitado: %d",
		e.Nombre, e.Disponible, e.Solicitado)
}

// TransicionInvalidaError is returned for any pedido state change outside the
// fixed PENDIENTE → ENVIADO → RECIBIDO progression.
type TransicionInvalidaError struct {
	Desde EstadoPedido
	Hacia EstadoPedido
}

func (e *TransicionInvalidaError) Error() string {
	return fmt.Sprintf("Transicion de estado invalida: %s → %s. Las transiciones validas son: PENDIENTE → ENVIADO → RECIBIDO",
		e.Desde, e.Hacia)
}
