package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enzofs112/roxfarma-sistema-gestion/internal/domain"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/dto"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/model"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/service"
)

func buildReporteSvc(ventaRepo *stubVentaRepo, prodRepo *stubProductoRepo) service.ReporteService {
	productoSvc := service.NewProductoService(prodRepo, nil, 0, nil)
	return service.NewReporteService(ventaRepo, productoSvc)
}

func TestReporteVentas_PromedioRedondeado(t *testing.T) {
	ventaRepo := newStubVentaRepo()
	for _, total := range []string{"29.50", "35.40", "10.00"} {
		require.NoError(t, ventaRepo.Create(context.Background(), nil, &model.Venta{
			Fecha: time.Now(),
			Total: decimal.RequireFromString(total),
		}))
	}
	svc := buildReporteSvc(ventaRepo, newStubProductoRepo())

	resp, err := svc.ReporteVentas(context.Background(), dto.ReporteFilter{
		Inicio: "2026-01-01",
		Fin:    "2026-12-31",
	})
	require.NoError(t, err)

	assert.True(t, resp.TotalVentas.Equal(decimal.RequireFromString("74.90")))
	assert.Equal(t, int64(3), resp.CantidadTransacciones)
	// 74.90 / 3 = 24.966… → rounded to 2 decimals
	assert.True(t, resp.PromedioVenta.Equal(decimal.RequireFromString("24.97")))
}

func TestReporteVentas_SinVentas(t *testing.T) {
	svc := buildReporteSvc(newStubVentaRepo(), newStubProductoRepo())

	resp, err := svc.ReporteVentas(context.Background(), dto.ReporteFilter{
		Inicio: "2026-01-01",
		Fin:    "2026-01-31",
	})
	require.NoError(t, err)

	assert.True(t, resp.TotalVentas.IsZero())
	assert.Equal(t, int64(0), resp.CantidadTransacciones)
	assert.True(t, resp.PromedioVenta.IsZero())
}

func TestReporteVentas_FechaInvalida(t *testing.T) {
	svc := buildReporteSvc(newStubVentaRepo(), newStubProductoRepo())

	_, err := svc.ReporteVentas(context.Background(), dto.ReporteFilter{
		Inicio: "31/01/2026",
		Fin:    "2026-01-31",
	})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestReporteInventario_Valoracion(t *testing.T) {
	prodRepo := newStubProductoRepo(
		producto(1, "Paracetamol 500mg", "10.50", 20), // 210.00
		producto(2, "Ibuprofeno 400mg", "5", 4),       //  20.00, stock bajo
	)
	svc := buildReporteSvc(newStubVentaRepo(), prodRepo)

	resp, err := svc.ReporteInventario(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, resp.TotalProductos)
	assert.Equal(t, 24, resp.StockTotal)
	assert.True(t, resp.ValorInventario.Equal(decimal.RequireFromString("230.00")))
	assert.Equal(t, 1, resp.ProductosStockBajo)
	assert.Equal(t, 0, resp.ProductosPorVencer)
}
