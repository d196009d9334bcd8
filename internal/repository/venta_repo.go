package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/enzofs112/roxfarma-sistema-gestion/internal/model"
)

// ResumenVentas aggregates a date range for the sales report.
type ResumenVentas struct {
	Total  decimal.Decimal
	Numero int64
}

type VentaRepository interface {
	// Create persists the sale with its lines inside a caller-owned tx.
	Create(ctx context.Context, tx *gorm.DB, v *model.Venta) error
	FindByID(ctx context.Context, id int64) (*model.Venta, error)
	List(ctx context.Context) ([]model.Venta, error)
	ListPorFecha(ctx context.Context, inicio, fin time.Time) ([]model.Venta, error)
	Resumen(ctx context.Context, inicio, fin time.Time) (ResumenVentas, error)
	DB() *gorm.DB // exposes the DB for transaction creation in the service layer
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) DB() *gorm.DB { return r.db }

func (r *ventaRepo) Create(ctx context.Context, tx *gorm.DB, v *model.Venta) error {
	return tx.WithContext(ctx).Create(v).Error
}

func (r *ventaRepo) FindByID(ctx context.Context, id int64) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).
		Preload("Cliente").Preload("Usuario").Preload("Detalles.Producto").
		First(&v, id).Error
	return &v, err
}

func (r *ventaRepo) List(ctx context.Context) ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.WithContext(ctx).
		Preload("Cliente").Preload("Usuario").Preload("Detalles.Producto").
		Order("fecha DESC").
		Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) ListPorFecha(ctx context.Context, inicio, fin time.Time) ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.WithContext(ctx).
		Preload("Cliente").Preload("Usuario").Preload("Detalles.Producto").
		Where("fecha >= ? AND fecha < ?", inicio, fin).
		Order("fecha DESC").
		Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) Resumen(ctx context.Context, inicio, fin time.Time) (ResumenVentas, error) {
	var row struct {
		Total  decimal.Decimal
		Numero int64
	}
	err := r.db.WithContext(ctx).Model(&model.Venta{}).
		Select("COALESCE(SUM(total), 0) AS total, COUNT(*) AS numero").
		Where("fecha >= ? AND fecha < ?", inicio, fin).
		Scan(&row).Error
	return ResumenVentas{Total: row.Total, Numero: row.Numero}, err
}
