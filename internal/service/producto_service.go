package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/enzofs112/roxfarma-sistema-gestion/internal/domain"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/dto"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/model"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/repository"
)

const catalogoCacheKey = "cache:catalogo"

type ProductoService interface {
	Crear(ctx context.Context, req dto.ProductoRequest) (*model.Producto, error)
	ObtenerPorID(ctx context.Context, id int64) (*model.Producto, error)
	Listar(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, error)
	Actualizar(ctx context.Context, id int64, req dto.ProductoRequest) (*model.Producto, error)
	Eliminar(ctx context.Context, id int64) error

	// Catalogo returns the read-only snapshot the domain core operates on,
	// cached in Redis for a short TTL so draft editing and the dashboard do
	// not hammer the productos table.
	Catalogo(ctx context.Context) (*domain.Catalogo, error)

	// InvalidarCatalogo drops the cached snapshot. Called after any stock
	// movement committed outside this service (ventas, pedidos recibidos).
	InvalidarCatalogo(ctx context.Context)
}

type productoService struct {
	repo       repository.ProductoRepository
	rdb        *redis.Client
	cacheTTL   time.Duration
	dispatcher AuditoriaDispatcher
}

func NewProductoService(repo repository.ProductoRepository, rdb *redis.Client, cacheTTLSeconds int, dispatcher AuditoriaDispatcher) ProductoService {
	return &productoService{
		repo:       repo,
		rdb:        rdb,
		cacheTTL:   time.Duration(cacheTTLSeconds) * time.Second,
		dispatcher: dispatcher,
	}
}

func (s *productoService) Crear(ctx context.Context, req dto.ProductoRequest) (*model.Producto, error) {
	venc, err := time.Parse("2006-01-02", req.FechaVencimiento)
	if err != nil {
		return nil, domain.ErrEntradaInvalida
	}
	p := &model.Producto{
		Nombre:           req.Nombre,
		Presentacion:     req.Presentacion,
		Descripcion:      req.Descripcion,
		Precio:           req.Precio,
		Stock:            req.Stock,
		FechaVencimiento: venc,
		CategoriaID:      req.IDCategoria,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.InvalidarCatalogo(ctx)
	s.auditar(ctx, "CREAR", p.ID, p.Nombre)
	return p, nil
}

func (s *productoService) ObtenerPorID(ctx context.Context, id int64) (*model.Producto, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, noEncontrado("Producto", id)
	}
	return p, nil
}

func (s *productoService) Listar(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, error) {
	return s.repo.List(ctx, filter)
}

func (s *productoService) Actualizar(ctx context.Context, id int64, req dto.ProductoRequest) (*model.Producto, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, noEncontrado("Producto", id)
	}
	venc, err := time.Parse("2006-01-02", req.FechaVencimiento)
	if err != nil {
		return nil, domain.ErrEntradaInvalida
	}
	p.Nombre = req.Nombre
	p.Presentacion = req.Presentacion
	p.Descripcion = req.Descripcion
	p.Precio = req.Precio
	p.Stock = req.Stock
	p.FechaVencimiento = venc
	p.CategoriaID = req.IDCategoria
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.InvalidarCatalogo(ctx)
	s.auditar(ctx, "ACTUALIZAR", p.ID, p.Nombre)
	return p, nil
}

func (s *productoService) Eliminar(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return noEncontrado("Producto", id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.InvalidarCatalogo(ctx)
	s.auditar(ctx, "ELIMINAR", id, "")
	return nil
}

func (s *productoService) Catalogo(ctx context.Context) (*domain.Catalogo, error) {
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, catalogoCacheKey).Bytes(); err == nil {
			var productos []domain.ProductoCatalogo
			if err := json.Unmarshal(raw, &productos); err == nil {
				return domain.NuevoCatalogo(productos), nil
			}
		}
	}

	modelos, err := s.repo.List(ctx, dto.ProductoFilter{})
	if err != nil {
		return nil, err
	}
	productos := make([]domain.ProductoCatalogo, len(modelos))
	for i, m := range modelos {
		productos[i] = domain.ProductoCatalogo{
			ID:               m.ID,
			Nombre:           m.Nombre,
			Precio:           m.Precio,
			Stock:            m.Stock,
			FechaVencimiento: m.FechaVencimiento,
			CategoriaID:      m.CategoriaID,
		}
	}

	if s.rdb != nil && s.cacheTTL > 0 {
		if raw, err := json.Marshal(productos); err == nil {
			if err := s.rdb.Set(ctx, catalogoCacheKey, raw, s.cacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("catalogo: cache set failed")
			}
		}
	}

	return domain.NuevoCatalogo(productos), nil
}

func (s *productoService) InvalidarCatalogo(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, catalogoCacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("catalogo: cache invalidation failed")
	}
}

func (s *productoService) auditar(ctx context.Context, operacion string, id int64, detalle string) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.EnqueueAuditoria(ctx, map[string]interface{}{
		"operacion":  operacion,
		"entidad":    "PRODUCTO",
		"entidad_id": id,
		"usuario":    usuarioDesdeCtx(ctx),
		"detalles":   detalle,
	})
}
