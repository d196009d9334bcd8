package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enzofs112/roxfarma-sistema-gestion/internal/model"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/service"
)

func productoConVencimiento(id int64, nombre string, stock int, vencimiento time.Time) *model.Producto {
	return &model.Producto{
		ID:               id,
		Nombre:           nombre,
		Precio:           decimal.RequireFromString("10"),
		Stock:            stock,
		FechaVencimiento: vencimiento,
		CategoriaID:      1,
	}
}

func TestDashboard_Resumen(t *testing.T) {
	ahora := time.Now()
	prodRepo := newStubProductoRepo(
		// stock 9 alerts, stock 10 does not
		productoConVencimiento(1, "Paracetamol 500mg", 9, ahora.AddDate(1, 0, 0)),
		productoConVencimiento(2, "Ibuprofeno 400mg", 10, ahora.AddDate(1, 0, 0)),
		// inside the 30-day window
		productoConVencimiento(3, "Amoxicilina 500mg", 50, ahora.AddDate(0, 0, 10)),
		// already expired — stays listed until pulled from the shelf
		productoConVencimiento(4, "Omeprazol 20mg", 50, ahora.AddDate(0, 0, -5)),
	)
	productoSvc := service.NewProductoService(prodRepo, nil, 0, nil)
	svc := service.NewDashboardService(productoSvc)

	resumen, err := svc.Resumen(context.Background())
	require.NoError(t, err)

	require.Len(t, resumen.Alertas.StockBajo, 1)
	assert.Equal(t, int64(1), resumen.Alertas.StockBajo[0].ID)

	require.Len(t, resumen.Alertas.ProximosAVencer, 2)
	assert.Equal(t, int64(3), resumen.Alertas.ProximosAVencer[0].ID)
	assert.Equal(t, int64(4), resumen.Alertas.ProximosAVencer[1].ID)

	assert.Equal(t, 4, resumen.Estadisticas.TotalProductos)
	assert.Equal(t, 119, resumen.Estadisticas.StockTotal)
	assert.Equal(t, 1, resumen.Estadisticas.AlertasStockBajo)
	assert.Equal(t, 2, resumen.Estadisticas.AlertasVencimiento)
}

func TestDashboard_AlertasVacias(t *testing.T) {
	ahora := time.Now()
	prodRepo := newStubProductoRepo(
		productoConVencimiento(1, "Paracetamol 500mg", 100, ahora.AddDate(1, 0, 0)),
	)
	productoSvc := service.NewProductoService(prodRepo, nil, 0, nil)
	svc := service.NewDashboardService(productoSvc)

	alertas, err := svc.Alertas(context.Background())
	require.NoError(t, err)

	// Empty slices, not nil — the frontend iterates both unconditionally
	assert.NotNil(t, alertas.StockBajo)
	assert.NotNil(t, alertas.ProximosAVencer)
	assert.Empty(t, alertas.StockBajo)
	assert.Empty(t, alertas.ProximosAVencer)
}

func TestDashboard_Estadisticas(t *testing.T) {
	ahora := time.Now()
	prodRepo := newStubProductoRepo(
		productoConVencimiento(1, "Paracetamol 500mg", 5, ahora.AddDate(0, 0, 15)),
	)
	productoSvc := service.NewProductoService(prodRepo, nil, 0, nil)
	svc := service.NewDashboardService(productoSvc)

	est, err := svc.Estadisticas(context.Background())
	require.NoError(t, err)

	// A product can be in both alert lists at once
	assert.Equal(t, 1, est.TotalProductos)
	assert.Equal(t, 5, est.StockTotal)
	assert.Equal(t, 1, est.AlertasStockBajo)
	assert.Equal(t, 1, est.AlertasVencimiento)
}
