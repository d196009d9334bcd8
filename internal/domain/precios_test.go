package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalcularTotales_Determinista(t *testing.T) {
	lineas := []Linea{
		{ProductoID: 1, Cantidad: 2, Precio: decimal.RequireFromString("10.00")},
		{ProductoID: 2, Cantidad: 1, Precio: decimal.RequireFromString("5.00")},
	}

	tot := CalcularTotales(lineas)
	assert.Equal(t, "25", tot.Subtotal.String())
	assert.Equal(t, "4.5", tot.IGV.String())
	assert.Equal(t, "29.5", tot.Total.String())

	// Idempotent: repeated calls over the same value yield identical results.
	assert.True(t, tot.Total.Equal(CalcularTotales(lineas).Total))
}

func TestCalcularTotales_Vacio(t *testing.T) {
	tot := CalcularTotales(nil)
	assert.True(t, tot.Subtotal.IsZero())
	assert.True(t, tot.IGV.IsZero())
	assert.True(t, tot.Total.IsZero())
}

func TestCalcularTotales_RedondeoAlFinal(t *testing.T) {
	// 3 × 3.333 = 9.999 → subtotal rounds once to 10.00, not per line.
	lineas := []Linea{
		{ProductoID: 1, Cantidad: 3, Precio: decimal.RequireFromString("3.333")},
	}
	tot := CalcularTotales(lineas)
	assert.Equal(t, "10", tot.Subtotal.String())
	assert.Equal(t, "1.8", tot.IGV.String())
	assert.Equal(t, "11.8", tot.Total.String())
}
