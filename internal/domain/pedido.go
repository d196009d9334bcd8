package domain

import "fmt"

// EstadoPedido is the lifecycle state of a purchase order.
//
// PENDIENTE → ENVIADO → RECIBIDO, strictly in sequence. RECIBIDO is terminal:
// once stock has been received and credited, the order can never change again.
type EstadoPedido string

const (
	EstadoPendiente EstadoPedido = "PENDIENTE"
	EstadoEnviado   EstadoPedido = "ENVIADO"
	EstadoRecibido  EstadoPedido = "RECIBIDO"
)

// ParseEstadoPedido validates a wire value.
func ParseEstadoPedido(s string) (EstadoPedido, error) {
	switch EstadoPedido(s) {
	case EstadoPendiente, EstadoEnviado, EstadoRecibido:
		return EstadoPedido(s), nil
	}
	return "", fmt.Errorf("estado de pedido desconocido: %q", s)
}

// ValidarTransicion enforces the allowed progression. Skipping a state, going
// backwards, or touching a RECIBIDO order all fail.
func ValidarTransicion(desde, hacia EstadoPedido) error {
	if desde == EstadoPendiente && hacia == EstadoEnviado {
		return nil
	}
	if desde == EstadoEnviado && hacia == EstadoRecibido {
		return nil
	}
	return &TransicionInvalidaError{Desde: desde, Hacia: hacia}
}
