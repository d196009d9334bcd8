package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/enzofs112/roxfarma-sistema-gestion/internal/domain"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/dto"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/repository"
)

type ReporteService interface {
	ReporteVentas(ctx context.Context, filter dto.ReporteFilter) (*dto.ReporteVentasResponse, error)
	ReporteInventario(ctx context.Context) (*dto.ReporteInventarioResponse, error)
}

type reporteService struct {
	ventas    repository.VentaRepository
	productos ProductoService
	ahora     func() time.Time
}

func NewReporteService(ventas repository.VentaRepository, productos ProductoService) ReporteService {
	return &reporteService{ventas: ventas, productos: productos, ahora: time.Now}
}

// ReporteVentas aggregates total, transaction count and average ticket over an
// inclusive date range.
func (s *reporteService) ReporteVentas(ctx context.Context, filter dto.ReporteFilter) (*dto.ReporteVentasResponse, error) {
	inicio, fin, err := rangoFechas(filter.Inicio, filter.Fin)
	if err != nil {
		return nil, err
	}

	resumen, err := s.ventas.Resumen(ctx, inicio, fin)
	if err != nil {
		return nil, err
	}

	promedio := decimal.Zero
	if resumen.Numero > 0 {
		promedio = resumen.Total.Div(decimal.NewFromInt(resumen.Numero)).Round(2)
	}

	return &dto.ReporteVentasResponse{
		TotalVentas:           resumen.Total,
		CantidadTransacciones: resumen.Numero,
		PromedioVenta:         promedio,
	}, nil
}

// ReporteInventario values the current catalog: units on hand, sale value of
// the shelf stock, plus the alert counts the dashboard shows.
func (s *reporteService) ReporteInventario(ctx context.Context) (*dto.ReporteInventarioResponse, error) {
	cat, err := s.productos.Catalogo(ctx)
	if err != nil {
		return nil, err
	}

	valor := decimal.Zero
	for _, p := range cat.Productos() {
		valor = valor.Add(p.Precio.Mul(decimal.NewFromInt(int64(p.Stock))))
	}

	est := domain.CalcularEstadisticas(cat, s.ahora())
	return &dto.ReporteInventarioResponse{
		TotalProductos:     est.TotalProductos,
		StockTotal:         est.StockTotal,
		ValorInventario:    valor.Round(2),
		ProductosStockBajo: est.AlertasStockBajo,
		ProductosPorVencer: est.AlertasVencimiento,
	}, nil
}
