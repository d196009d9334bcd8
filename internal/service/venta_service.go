package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/enzofs112/roxfarma-sistema-gestion/internal/domain"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/dto"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/infra"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/model"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/repository"
)

type VentaService interface {
	RegistrarVenta(ctx context.Context, usuarioID int64, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error)
	ObtenerPorID(ctx context.Context, id int64) (*dto.VentaResponse, error)
	Listar(ctx context.Context, filter dto.VentaFilter) ([]dto.VentaResponse, error)

	// GenerarBoleta renders the receipt PDF. Returns bytes plus the boleta
	// number for the Content-Disposition filename.
	GenerarBoleta(ctx context.Context, id int64) ([]byte, string, error)
}

type ventaService struct {
	repo        repository.VentaRepository
	clienteRepo repository.ClienteRepository
	prodRepo    repository.ProductoRepository
	productos   ProductoService
	auditoria   AuditoriaDispatcher
	email       EmailDispatcher
}

func NewVentaService(
	repo repository.VentaRepository,
	clienteRepo repository.ClienteRepository,
	prodRepo repository.ProductoRepository,
	productos ProductoService,
	auditoria AuditoriaDispatcher,
	email EmailDispatcher,
) VentaService {
	return &ventaService{
		repo:        repo,
		clienteRepo: clienteRepo,
		prodRepo:    prodRepo,
		productos:   productos,
		auditoria:   auditoria,
		email:       email,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── RegistrarVenta ────────────────────────────────────────────────────────────
// 1. Resolve client and take a catalog snapshot.
// 2. Accumulate the requested lines into a draft: duplicates merge, prices are
//    captured from the snapshot, quantities are validated against it.
// 3. Gate + price the draft.
// 4. BEGIN TX: create venta with lines, conditionally decrement stock per
//    line. The decrement's WHERE stock >= cantidad is the authoritative check;
//    the snapshot validation in step 2 is advisory.
// 5. COMMIT, drop the catalog cache, dispatch audit and boleta-email jobs.

func (s *ventaService) RegistrarVenta(ctx context.Context, usuarioID int64, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	cliente, err := s.clienteRepo.FindByID(ctx, req.IDCliente)
	if err != nil {
		return nil, noEncontrado("Cliente", req.IDCliente)
	}

	cat, err := s.productos.Catalogo(ctx)
	if err != nil {
		return nil, err
	}

	borrador := domain.BorradorVenta{ClienteID: req.IDCliente}
	for _, det := range req.Detalles {
		if err := borrador.AgregarLinea(cat, det.IDProducto, det.Cantidad); err != nil {
			return nil, err
		}
	}
	// Validate against the merged quantities: two lines of 6 for a product
	// with stock 10 must fail even though each add looked fine.
	for _, l := range borrador.Lineas {
		if err := domain.ValidarStock(cat, l.ProductoID, l.Cantidad); err != nil {
			return nil, err
		}
	}
	if err := borrador.ValidarEnvio(); err != nil {
		return nil, err
	}

	tot := borrador.Totales()

	venta := model.Venta{
		Fecha:     time.Now(),
		ClienteID: req.IDCliente,
		UsuarioID: usuarioID,
		Subtotal:  tot.Subtotal,
		IGV:       tot.IGV,
		Total:     tot.Total,
	}
	for _, l := range borrador.Lineas {
		venta.Detalles = append(venta.Detalles, model.DetalleVenta{
			ProductoID: l.ProductoID,
			Cantidad:   l.Cantidad,
			Precio:     l.Precio,
		})
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Create(ctx, tx, &venta); err != nil {
			return err
		}
		for _, l := range borrador.Lineas {
			rows, err := s.prodRepo.DecrementarStockTx(tx, l.ProductoID, l.Cantidad)
			if err != nil {
				return err
			}
			if rows == 0 {
				// Stock moved between snapshot and commit — rebuild the
				// domain error with whatever the snapshot knew.
				p, _ := cat.Buscar(l.ProductoID)
				return &domain.StockInsuficienteError{
					ProductoID: l.ProductoID,
					Nombre:     p.Nombre,
					Disponible: p.Stock,
					Solicitado: l.Cantidad,
				}
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.productos.InvalidarCatalogo(ctx)

	if s.auditoria != nil {
		_ = s.auditoria.EnqueueAuditoria(ctx, map[string]interface{}{
			"operacion":  "CREAR",
			"entidad":    "VENTA",
			"entidad_id": venta.ID,
			"usuario":    usuarioDesdeCtx(ctx),
			"detalles":   "Total " + tot.Total.StringFixed(2),
		})
	}
	if s.email != nil && cliente.Email != nil && *cliente.Email != "" {
		_ = s.email.EnqueueEmail(ctx, map[string]interface{}{
			"venta_id": venta.ID,
			"to_email": *cliente.Email,
		})
	}

	resp := s.ventaToResponse(&venta, cat)
	resp.Cliente = cliente.Nombre
	resp.Cajero = usuarioDesdeCtx(ctx)
	return resp, nil
}

func (s *ventaService) ObtenerPorID(ctx context.Context, id int64) (*dto.VentaResponse, error) {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, noEncontrado("Venta", id)
	}
	return ventaModelToResponse(venta), nil
}

func (s *ventaService) Listar(ctx context.Context, filter dto.VentaFilter) ([]dto.VentaResponse, error) {
	var (
		ventas []model.Venta
		err    error
	)
	if filter.Inicio != "" || filter.Fin != "" {
		inicio, fin, perr := rangoFechas(filter.Inicio, filter.Fin)
		if perr != nil {
			return nil, perr
		}
		ventas, err = s.repo.ListPorFecha(ctx, inicio, fin)
	} else {
		ventas, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	resp := make([]dto.VentaResponse, len(ventas))
	for i := range ventas {
		resp[i] = *ventaModelToResponse(&ventas[i])
	}
	return resp, nil
}

func (s *ventaService) GenerarBoleta(ctx context.Context, id int64) ([]byte, string, error) {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, "", noEncontrado("Venta", id)
	}
	pdfBytes, err := infra.GenerarBoletaPDF(venta)
	if err != nil {
		return nil, "", err
	}
	return pdfBytes, infra.NumeroBoleta(venta.ID), nil
}

// rangoFechas parses inclusive YYYY-MM-DD bounds into a half-open [inicio, fin)
// timestamp range. A missing bound defaults to today.
func rangoFechas(inicio, fin string) (time.Time, time.Time, error) {
	hoy := time.Now().Truncate(24 * time.Hour)
	desde, hasta := hoy, hoy

	var err error
	if inicio != "" {
		if desde, err = time.Parse("2006-01-02", inicio); err != nil {
			return time.Time{}, time.Time{}, domain.ErrEntradaInvalida
		}
	}
	if fin != "" {
		if hasta, err = time.Parse("2006-01-02", fin); err != nil {
			return time.Time{}, time.Time{}, domain.ErrEntradaInvalida
		}
	}
	return desde, hasta.AddDate(0, 0, 1), nil
}

func decimalDesdeInt(n int) decimal.Decimal { return decimal.NewFromInt(int64(n)) }

// ventaToResponse builds the response for a just-committed sale using the
// catalog snapshot for product names (the model has no preloads yet).
func (s *ventaService) ventaToResponse(v *model.Venta, cat *domain.Catalogo) *dto.VentaResponse {
	detalles := make([]dto.DetalleVentaResponse, 0, len(v.Detalles))
	for _, d := range v.Detalles {
		nombre := ""
		if p, ok := cat.Buscar(d.ProductoID); ok {
			nombre = p.Nombre
		}
		detalles = append(detalles, dto.DetalleVentaResponse{
			IDProducto: d.ProductoID,
			Producto:   nombre,
			Cantidad:   d.Cantidad,
			Precio:     d.Precio,
			Subtotal:   d.Precio.Mul(decimalDesdeInt(d.Cantidad)),
		})
	}
	return &dto.VentaResponse{
		ID:       v.ID,
		Fecha:    v.Fecha.Format(time.RFC3339),
		Detalles: detalles,
		Subtotal: v.Subtotal,
		IGV:      v.IGV,
		Total:    v.Total,
	}
}

// ventaModelToResponse maps a preloaded Venta row.
func ventaModelToResponse(v *model.Venta) *dto.VentaResponse {
	detalles := make([]dto.DetalleVentaResponse, 0, len(v.Detalles))
	for _, d := range v.Detalles {
		nombre := ""
		if d.Producto != nil {
			nombre = d.Producto.Nombre
		}
		detalles = append(detalles, dto.DetalleVentaResponse{
			IDProducto: d.ProductoID,
			Producto:   nombre,
			Cantidad:   d.Cantidad,
			Precio:     d.Precio,
			Subtotal:   d.Precio.Mul(decimalDesdeInt(d.Cantidad)),
		})
	}
	resp := &dto.VentaResponse{
		ID:       v.ID,
		Fecha:    v.Fecha.Format(time.RFC3339),
		Detalles: detalles,
		Subtotal: v.Subtotal,
		IGV:      v.IGV,
		Total:    v.Total,
	}
	if v.Cliente != nil {
		resp.Cliente = v.Cliente.Nombre
	}
	if v.Usuario != nil {
		resp.Cajero = v.Usuario.Nombre
	}
	return resp
}
