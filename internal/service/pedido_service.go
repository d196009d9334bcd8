package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/enzofs112/roxfarma-sistema-gestion/internal/domain"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/dto"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/model"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/repository"
)

type PedidoService interface {
	Crear(ctx context.Context, req dto.CrearPedidoRequest) (*dto.PedidoResponse, error)
	ObtenerPorID(ctx context.Context, id int64) (*dto.PedidoResponse, error)
	Listar(ctx context.Context, filter dto.PedidoFilter) ([]dto.PedidoResponse, error)
	ActualizarEstado(ctx context.Context, id int64, estado string) (*dto.PedidoResponse, error)
}

type pedidoService struct {
	repo          repository.PedidoRepository
	proveedorRepo repository.ProveedorRepository
	prodRepo      repository.ProductoRepository
	productos     ProductoService
	auditoria     AuditoriaDispatcher
}

func NewPedidoService(
	repo repository.PedidoRepository,
	proveedorRepo repository.ProveedorRepository,
	prodRepo repository.ProductoRepository,
	productos ProductoService,
	auditoria AuditoriaDispatcher,
) PedidoService {
	return &pedidoService{
		repo:          repo,
		proveedorRepo: proveedorRepo,
		prodRepo:      prodRepo,
		productos:     productos,
		auditoria:     auditoria,
	}
}

// Crear registers a purchase order in PENDIENTE. Stock is untouched — units
// are only credited when the order reaches RECIBIDO.
func (s *pedidoService) Crear(ctx context.Context, req dto.CrearPedidoRequest) (*dto.PedidoResponse, error) {
	proveedor, err := s.proveedorRepo.FindByID(ctx, req.IDProveedor)
	if err != nil {
		return nil, noEncontrado("Proveedor", req.IDProveedor)
	}

	cat, err := s.productos.Catalogo(ctx)
	if err != nil {
		return nil, err
	}

	borrador := domain.BorradorPedido{ProveedorID: req.IDProveedor}
	for _, det := range req.Detalles {
		if err := borrador.AgregarLinea(cat, det.IDProducto, det.Cantidad); err != nil {
			return nil, err
		}
	}
	if err := borrador.ValidarEnvio(); err != nil {
		return nil, err
	}

	pedido := model.Pedido{
		Fecha:       time.Now(),
		Estado:      string(domain.EstadoPendiente),
		ProveedorID: req.IDProveedor,
	}
	for _, l := range borrador.Lineas {
		pedido.Detalles = append(pedido.Detalles, model.DetallePedido{
			ProductoID: l.ProductoID,
			Cantidad:   l.Cantidad,
		})
	}

	if err := s.repo.Create(ctx, &pedido); err != nil {
		return nil, err
	}

	s.auditar(ctx, "CREAR", pedido.ID, "Pedido registrado en PENDIENTE")

	resp := s.pedidoToResponse(&pedido, cat)
	resp.Proveedor = proveedor.Nombre
	return resp, nil
}

func (s *pedidoService) ObtenerPorID(ctx context.Context, id int64) (*dto.PedidoResponse, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, noEncontrado("Pedido", id)
	}
	return pedidoModelToResponse(pedido), nil
}

func (s *pedidoService) Listar(ctx context.Context, filter dto.PedidoFilter) ([]dto.PedidoResponse, error) {
	pedidos, err := s.repo.List(ctx, filter.Estado)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PedidoResponse, len(pedidos))
	for i := range pedidos {
		resp[i] = *pedidoModelToResponse(&pedidos[i])
	}
	return resp, nil
}

// ActualizarEstado advances the order along PENDIENTE → ENVIADO → RECIBIDO.
// The RECIBIDO transition credits every line's units to stock in the same
// transaction that records the state change: either both happen or neither.
func (s *pedidoService) ActualizarEstado(ctx context.Context, id int64, estado string) (*dto.PedidoResponse, error) {
	hacia, err := domain.ParseEstadoPedido(estado)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrEntradaInvalida, err)
	}

	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, noEncontrado("Pedido", id)
	}

	desde, err := domain.ParseEstadoPedido(pedido.Estado)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidarTransicion(desde, hacia); err != nil {
		return nil, err
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.UpdateEstadoTx(tx, id, string(hacia)); err != nil {
			return err
		}
		if hacia == domain.EstadoRecibido {
			for _, det := range pedido.Detalles {
				if err := s.prodRepo.IncrementarStockTx(tx, det.ProductoID, det.Cantidad); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if hacia == domain.EstadoRecibido {
		s.productos.InvalidarCatalogo(ctx)
	}
	s.auditar(ctx, "ACTUALIZAR", id, fmt.Sprintf("Estado %s → %s", desde, hacia))

	pedido.Estado = string(hacia)
	return pedidoModelToResponse(pedido), nil
}

func (s *pedidoService) auditar(ctx context.Context, operacion string, id int64, detalle string) {
	if s.auditoria == nil {
		return
	}
	_ = s.auditoria.EnqueueAuditoria(ctx, map[string]interface{}{
		"operacion":  operacion,
		"entidad":    "PEDIDO",
		"entidad_id": id,
		"usuario":    usuarioDesdeCtx(ctx),
		"detalles":   detalle,
	})
}

func (s *pedidoService) pedidoToResponse(p *model.Pedido, cat *domain.Catalogo) *dto.PedidoResponse {
	detalles := make([]dto.DetallePedidoResponse, 0, len(p.Detalles))
	for _, d := range p.Detalles {
		nombre := ""
		if prod, ok := cat.Buscar(d.ProductoID); ok {
			nombre = prod.Nombre
		}
		detalles = append(detalles, dto.DetallePedidoResponse{
			IDProducto: d.ProductoID,
			Producto:   nombre,
			Cantidad:   d.Cantidad,
		})
	}
	return &dto.PedidoResponse{
		ID:       p.ID,
		Fecha:    p.Fecha.Format(time.RFC3339),
		Estado:   p.Estado,
		Detalles: detalles,
	}
}

func pedidoModelToResponse(p *model.Pedido) *dto.PedidoResponse {
	detalles := make([]dto.DetallePedidoResponse, 0, len(p.Detalles))
	for _, d := range p.Detalles {
		nombre := ""
		if d.Producto != nil {
			nombre = d.Producto.Nombre
		}
		detalles = append(detalles, dto.DetallePedidoResponse{
			IDProducto: d.ProductoID,
			Producto:   nombre,
			Cantidad:   d.Cantidad,
		})
	}
	resp := &dto.PedidoResponse{
		ID:       p.ID,
		Fecha:    p.Fecha.Format(time.RFC3339),
		Estado:   p.Estado,
		Detalles: detalles,
	}
	if p.Proveedor != nil {
		resp.Proveedor = p.Proveedor.Nombre
	}
	return resp
}
