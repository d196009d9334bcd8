package service

import (
	"context"

	"github.com/enzofs112/roxfarma-sistema-gestion/internal/dto"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/model"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/repository"
)

type ProveedorService interface {
	Crear(ctx context.Context, req dto.ProveedorRequest) (*model.Proveedor, error)
	ObtenerPorID(ctx context.Context, id int64) (*model.Proveedor, error)
	Listar(ctx context.Context) ([]model.Proveedor, error)
	Actualizar(ctx context.Context, id int64, req dto.ProveedorRequest) (*model.Proveedor, error)
	Eliminar(ctx context.Context, id int64) error
}

type proveedorService struct {
	repo repository.ProveedorRepository
}

func NewProveedorService(repo repository.ProveedorRepository) ProveedorService {
	return &proveedorService{repo: repo}
}

func (s *proveedorService) Crear(ctx context.Context, req dto.ProveedorRequest) (*model.Proveedor, error) {
	p := &model.Proveedor{
		Nombre:    req.Nombre,
		Contacto:  req.Contacto,
		Direccion: req.Direccion,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *proveedorService) ObtenerPorID(ctx context.Context, id int64) (*model.Proveedor, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, noEncontrado("Proveedor", id)
	}
	return p, nil
}

func (s *proveedorService) Listar(ctx context.Context) ([]model.Proveedor, error) {
	return s.repo.List(ctx)
}

func (s *proveedorService) Actualizar(ctx context.Context, id int64, req dto.ProveedorRequest) (*model.Proveedor, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, noEncontrado("Proveedor", id)
	}
	p.Nombre = req.Nombre
	p.Contacto = req.Contacto
	p.Direccion = req.Direccion
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *proveedorService) Eliminar(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return noEncontrado("Proveedor", id)
	}
	return s.repo.Delete(ctx, id)
}
