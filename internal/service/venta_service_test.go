package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/enzofs112/roxfarma-sistema-gestion/internal/domain"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/dto"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/model"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/repository"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/service"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubProductoRepo is an in-memory ProductoRepository. Stock mutations honor
// the conditional-decrement contract: zero rows affected on insufficient stock.
type stubProductoRepo struct {
	productos map[int64]*model.Producto
	orden     []int64
}

func newStubProductoRepo(productos ...*model.Producto) *stubProductoRepo {
	r := &stubProductoRepo{productos: make(map[int64]*model.Producto)}
	for _, p := range productos {
		r.productos[p.ID] = p
		r.orden = append(r.orden, p.ID)
	}
	return r
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	r.orden = append(r.orden, p.ID)
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id int64) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return p, nil
}

func (r *stubProductoRepo) List(_ context.Context, _ dto.ProductoFilter) ([]model.Producto, error) {
	out := make([]model.Producto, 0, len(r.orden))
	for _, id := range r.orden {
		out = append(out, *r.productos[id])
	}
	return out, nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) Delete(_ context.Context, id int64) error {
	delete(r.productos, id)
	return nil
}

func (r *stubProductoRepo) DecrementarStockTx(_ *gorm.DB, id int64, cantidad int) (int64, error) {
	p, ok := r.productos[id]
	if !ok || p.Stock < cantidad {
		return 0, nil
	}
	p.Stock -= cantidad
	return 1, nil
}

func (r *stubProductoRepo) IncrementarStockTx(_ *gorm.DB, id int64, cantidad int) error {
	p, ok := r.productos[id]
	if !ok {
		return errors.New("not found")
	}
	p.Stock += cantidad
	return nil
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

type stubClienteRepo struct {
	clientes map[int64]*model.Cliente
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id int64) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return c, nil
}

func (r *stubClienteRepo) FindByDocumento(_ context.Context, _ string) (*model.Cliente, error) {
	return nil, errors.New("not found")
}

func (r *stubClienteRepo) List(_ context.Context) ([]model.Cliente, error) { return nil, nil }
func (r *stubClienteRepo) Update(_ context.Context, _ *model.Cliente) error { return nil }
func (r *stubClienteRepo) Delete(_ context.Context, _ int64) error          { return nil }

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

type stubVentaRepo struct {
	ventas map[int64]*model.Venta
	seq    int64
}

func newStubVentaRepo() *stubVentaRepo {
	return &stubVentaRepo{ventas: make(map[int64]*model.Venta)}
}

func (r *stubVentaRepo) Create(_ context.Context, _ *gorm.DB, v *model.Venta) error {
	if v.ID == 0 {
		r.seq++
		v.ID = r.seq
	}
	r.ventas[v.ID] = v
	return nil
}

func (r *stubVentaRepo) FindByID(_ context.Context, id int64) (*model.Venta, error) {
	v, ok := r.ventas[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return v, nil
}

func (r *stubVentaRepo) List(_ context.Context) ([]model.Venta, error) {
	out := make([]model.Venta, 0, len(r.ventas))
	for _, v := range r.ventas {
		out = append(out, *v)
	}
	return out, nil
}

func (r *stubVentaRepo) ListPorFecha(_ context.Context, _, _ time.Time) ([]model.Venta, error) {
	return r.List(context.Background())
}

func (r *stubVentaRepo) Resumen(_ context.Context, _, _ time.Time) (repository.ResumenVentas, error) {
	total := decimal.Zero
	for _, v := range r.ventas {
		total = total.Add(v.Total)
	}
	return repository.ResumenVentas{Total: total, Numero: int64(len(r.ventas))}, nil
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

var _ repository.VentaRepository = (*stubVentaRepo)(nil)

// stubDispatcher captures enqueued async payloads.
type stubDispatcher struct {
	auditorias []interface{}
	emails     []interface{}
}

func (d *stubDispatcher) EnqueueAuditoria(_ context.Context, payload interface{}) error {
	d.auditorias = append(d.auditorias, payload)
	return nil
}

func (d *stubDispatcher) EnqueueEmail(_ context.Context, payload interface{}) error {
	d.emails = append(d.emails, payload)
	return nil
}

// ── Fixtures ──────────────────────────────────────────────────────────────────

func producto(id int64, nombre, precio string, stock int) *model.Producto {
	return &model.Producto{
		ID:               id,
		Nombre:           nombre,
		Precio:           decimal.RequireFromString(precio),
		Stock:            stock,
		FechaVencimiento: time.Now().AddDate(1, 0, 0),
		CategoriaID:      1,
	}
}

func emailCliente(s string) *string { return &s }

func buildVentaSvc(prodRepo *stubProductoRepo, clienteRepo *stubClienteRepo) (service.VentaService, *stubVentaRepo, *stubDispatcher) {
	ventaRepo := newStubVentaRepo()
	disp := &stubDispatcher{}
	productoSvc := service.NewProductoService(prodRepo, nil, 0, nil)
	svc := service.NewVentaService(ventaRepo, clienteRepo, prodRepo, productoSvc, disp, disp)
	return svc, ventaRepo, disp
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestRegistrarVenta_TotalesYStock(t *testing.T) {
	prodRepo := newStubProductoRepo(
		producto(1, "Paracetamol 500mg", "10", 50),
		producto(2, "Ibuprofeno 400mg", "5", 20),
	)
	clienteRepo := &stubClienteRepo{clientes: map[int64]*model.Cliente{
		7: {ID: 7, Nombre: "Juan Perez", Documento: "45678912"},
	}}
	svc, ventaRepo, disp := buildVentaSvc(prodRepo, clienteRepo)

	resp, err := svc.RegistrarVenta(context.Background(), 3, dto.RegistrarVentaRequest{
		IDCliente: 7,
		Detalles: []dto.DetalleVentaRequest{
			{IDProducto: 1, Cantidad: 2},
			{IDProducto: 2, Cantidad: 1},
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.Subtotal.Equal(decimal.RequireFromString("25")))
	assert.True(t, resp.IGV.Equal(decimal.RequireFromString("4.50")))
	assert.True(t, resp.Total.Equal(decimal.RequireFromString("29.50")))

	// Stock decremented inside the commit
	assert.Equal(t, 48, prodRepo.productos[1].Stock)
	assert.Equal(t, 19, prodRepo.productos[2].Stock)

	// Persisted with lines
	require.Len(t, ventaRepo.ventas, 1)
	assert.Len(t, ventaRepo.ventas[resp.ID].Detalles, 2)

	// Audit job enqueued; no email without a customer address
	assert.Len(t, disp.auditorias, 1)
	assert.Empty(t, disp.emails)
}

func TestRegistrarVenta_LineasDuplicadasSeFusionan(t *testing.T) {
	prodRepo := newStubProductoRepo(producto(1, "Amoxicilina 500mg", "8", 30))
	clienteRepo := &stubClienteRepo{clientes: map[int64]*model.Cliente{
		7: {ID: 7, Nombre: "Juan Perez", Documento: "45678912"},
	}}
	svc, ventaRepo, _ := buildVentaSvc(prodRepo, clienteRepo)

	resp, err := svc.RegistrarVenta(context.Background(), 3, dto.RegistrarVentaRequest{
		IDCliente: 7,
		Detalles: []dto.DetalleVentaRequest{
			{IDProducto: 1, Cantidad: 2},
			{IDProducto: 1, Cantidad: 3},
		},
	})
	require.NoError(t, err)

	venta := ventaRepo.ventas[resp.ID]
	require.Len(t, venta.Detalles, 1)
	assert.Equal(t, 5, venta.Detalles[0].Cantidad)
	assert.Equal(t, 25, prodRepo.productos[1].Stock)
}

func TestRegistrarVenta_StockInsuficienteTrasFusion(t *testing.T) {
	// Each line alone fits in stock 10; merged they do not.
	prodRepo := newStubProductoRepo(producto(1, "Omeprazol 20mg", "12", 10))
	clienteRepo := &stubClienteRepo{clientes: map[int64]*model.Cliente{
		7: {ID: 7, Nombre: "Juan Perez", Documento: "45678912"},
	}}
	svc, ventaRepo, _ := buildVentaSvc(prodRepo, clienteRepo)

	_, err := svc.RegistrarVenta(context.Background(), 3, dto.RegistrarVentaRequest{
		IDCliente: 7,
		Detalles: []dto.DetalleVentaRequest{
			{IDProducto: 1, Cantidad: 6},
			{IDProducto: 1, Cantidad: 6},
		},
	})

	var stockErr *domain.StockInsuficienteError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 10, stockErr.Disponible)
	assert.Equal(t, 12, stockErr.Solicitado)

	// Nothing persisted, stock untouched
	assert.Empty(t, ventaRepo.ventas)
	assert.Equal(t, 10, prodRepo.productos[1].Stock)
}

func TestRegistrarVenta_ClienteInexistente(t *testing.T) {
	prodRepo := newStubProductoRepo(producto(1, "Paracetamol 500mg", "10", 50))
	clienteRepo := &stubClienteRepo{clientes: map[int64]*model.Cliente{}}
	svc, _, _ := buildVentaSvc(prodRepo, clienteRepo)

	_, err := svc.RegistrarVenta(context.Background(), 3, dto.RegistrarVentaRequest{
		IDCliente: 99,
		Detalles:  []dto.DetalleVentaRequest{{IDProducto: 1, Cantidad: 1}},
	})

	var notFound *service.NoEncontradoError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Cliente", notFound.Recurso)
}

func TestRegistrarVenta_SinLineas(t *testing.T) {
	prodRepo := newStubProductoRepo(producto(1, "Paracetamol 500mg", "10", 50))
	clienteRepo := &stubClienteRepo{clientes: map[int64]*model.Cliente{
		7: {ID: 7, Nombre: "Juan Perez", Documento: "45678912"},
	}}
	svc, _, _ := buildVentaSvc(prodRepo, clienteRepo)

	_, err := svc.RegistrarVenta(context.Background(), 3, dto.RegistrarVentaRequest{
		IDCliente: 7,
		Detalles:  []dto.DetalleVentaRequest{},
	})
	assert.ErrorIs(t, err, domain.ErrSinLineas)
}

func TestRegistrarVenta_ProductoDesconocido(t *testing.T) {
	prodRepo := newStubProductoRepo(producto(1, "Paracetamol 500mg", "10", 50))
	clienteRepo := &stubClienteRepo{clientes: map[int64]*model.Cliente{
		7: {ID: 7, Nombre: "Juan Perez", Documento: "45678912"},
	}}
	svc, _, _ := buildVentaSvc(prodRepo, clienteRepo)

	_, err := svc.RegistrarVenta(context.Background(), 3, dto.RegistrarVentaRequest{
		IDCliente: 7,
		Detalles:  []dto.DetalleVentaRequest{{IDProducto: 42, Cantidad: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestRegistrarVenta_EmailEncoladoConDireccion(t *testing.T) {
	prodRepo := newStubProductoRepo(producto(1, "Paracetamol 500mg", "10", 50))
	clienteRepo := &stubClienteRepo{clientes: map[int64]*model.Cliente{
		7: {ID: 7, Nombre: "Juan Perez", Documento: "45678912", Email: emailCliente("juan@example.com")},
	}}
	svc, _, disp := buildVentaSvc(prodRepo, clienteRepo)

	_, err := svc.RegistrarVenta(context.Background(), 3, dto.RegistrarVentaRequest{
		IDCliente: 7,
		Detalles:  []dto.DetalleVentaRequest{{IDProducto: 1, Cantidad: 1}},
	})
	require.NoError(t, err)
	require.Len(t, disp.emails, 1)
}
