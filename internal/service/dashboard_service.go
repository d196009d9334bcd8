package service

import (
	"context"
	"time"

	"github.com/enzofs112/roxfarma-sistema-gestion/internal/domain"
)

// DashboardResumen is the admin landing-page payload: alert lists plus the
// summary counters, derived from the same catalog snapshot so they agree.
type DashboardResumen struct {
	Alertas      domain.Alertas      `json:"alertas"`
	Estadisticas domain.Estadisticas `json:"estadisticas"`
}

type DashboardService interface {
	Resumen(ctx context.Context) (*DashboardResumen, error)
	Alertas(ctx context.Context) (*domain.Alertas, error)
	Estadisticas(ctx context.Context) (*domain.Estadisticas, error)
}

type dashboardService struct {
	productos ProductoService
	ahora     func() time.Time
}

func NewDashboardService(productos ProductoService) DashboardService {
	return &dashboardService{productos: productos, ahora: time.Now}
}

func (s *dashboardService) Resumen(ctx context.Context) (*DashboardResumen, error) {
	cat, err := s.productos.Catalogo(ctx)
	if err != nil {
		return nil, err
	}
	now := s.ahora()
	return &DashboardResumen{
		Alertas:      domain.CalcularAlertas(cat, now),
		Estadisticas: domain.CalcularEstadisticas(cat, now),
	}, nil
}

func (s *dashboardService) Alertas(ctx context.Context) (*domain.Alertas, error) {
	cat, err := s.productos.Catalogo(ctx)
	if err != nil {
		return nil, err
	}
	a := domain.CalcularAlertas(cat, s.ahora())
	return &a, nil
}

func (s *dashboardService) Estadisticas(ctx context.Context) (*domain.Estadisticas, error) {
	cat, err := s.productos.Catalogo(ctx)
	if err != nil {
		return nil, err
	}
	e := domain.CalcularEstadisticas(cat, s.ahora())
	return &e, nil
}
