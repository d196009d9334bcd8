package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/enzofs112/roxfarma-sistema-gestion/internal/model"
)

type PedidoRepository interface {
	Create(ctx context.Context, p *model.Pedido) error
	FindByID(ctx context.Context, id int64) (*model.Pedido, error)
	List(ctx context.Context, estado string) ([]model.Pedido, error)

	// UpdateEstadoTx persists the state change inside a caller-owned tx so the
	// RECIBIDO stock increments land atomically with it.
	UpdateEstadoTx(tx *gorm.DB, id int64, estado string) error

	DB() *gorm.DB
}

type pedidoRepo struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepo{db: db} }

func (r *pedidoRepo) DB() *gorm.DB { return r.db }

func (r *pedidoRepo) Create(ctx context.Context, p *model.Pedido) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *pedidoRepo) FindByID(ctx context.Context, id int64) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).
		Preload("Proveedor").Preload("Detalles.Producto").
		First(&p, id).Error
	return &p, err
}

func (r *pedidoRepo) List(ctx context.Context, estado string) ([]model.Pedido, error) {
	var pedidos []model.Pedido

	q := r.db.WithContext(ctx).
		Preload("Proveedor").Preload("Detalles.Producto")

	if estado != "" {
		q = q.Where("estado = ?", estado)
	}

	err := q.Order("fecha DESC").Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) UpdateEstadoTx(tx *gorm.DB, id int64, estado string) error {
	return tx.Model(&model.Pedido{}).Where("id = ?", id).Update("estado", estado).Error
}
