package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/enzofs112/roxfarma-sistema-gestion/internal/model"
)

type AuditoriaRepository interface {
	Create(ctx context.Context, a *model.Auditoria) error
	ListPorEntidad(ctx context.Context, entidad string, entidadID int64) ([]model.Auditoria, error)
	ListRecientes(ctx context.Context, limit int) ([]model.Auditoria, error)
}

type auditoriaRepo struct{ db *gorm.DB }

func NewAuditoriaRepository(db *gorm.DB) AuditoriaRepository { return &auditoriaRepo{db: db} }

func (r *auditoriaRepo) Create(ctx context.Context, a *model.Auditoria) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *auditoriaRepo) ListPorEntidad(ctx context.Context, entidad string, entidadID int64) ([]model.Auditoria, error) {
	var registros []model.Auditoria
	err := r.db.WithContext(ctx).
		Where("entidad = ? AND id_entidad = ?", entidad, entidadID).
		Order("created_at DESC").
		Find(&registros).Error
	return registros, err
}

func (r *auditoriaRepo) ListRecientes(ctx context.Context, limit int) ([]model.Auditoria, error) {
	if limit <= 0 {
		limit = 50
	}
	var registros []model.Auditoria
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&registros).Error
	return registros, err
}
