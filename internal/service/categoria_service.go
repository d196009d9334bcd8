package service

import (
	"context"

	"github.com/enzofs112/roxfarma-sistema-gestion/internal/dto"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/model"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/repository"
)

type CategoriaService interface {
	Crear(ctx context.Context, req dto.CategoriaRequest) (*model.Categoria, error)
	ObtenerPorID(ctx context.Context, id int64) (*model.Categoria, error)
	Listar(ctx context.Context) ([]model.Categoria, error)
	Actualizar(ctx context.Context, id int64, req dto.CategoriaRequest) (*model.Categoria, error)
	Eliminar(ctx context.Context, id int64) error
}

type categoriaService struct {
	repo repository.CategoriaRepository
}

func NewCategoriaService(repo repository.CategoriaRepository) CategoriaService {
	return &categoriaService{repo: repo}
}

func (s *categoriaService) Crear(ctx context.Context, req dto.CategoriaRequest) (*model.Categoria, error) {
	c := &model.Categoria{Nombre: req.Nombre, Descripcion: req.Descripcion}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *categoriaService) ObtenerPorID(ctx context.Context, id int64) (*model.Categoria, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, noEncontrado("Categoria", id)
	}
	return c, nil
}

func (s *categoriaService) Listar(ctx context.Context) ([]model.Categoria, error) {
	return s.repo.List(ctx)
}

func (s *categoriaService) Actualizar(ctx context.Context, id int64, req dto.CategoriaRequest) (*model.Categoria, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, noEncontrado("Categoria", id)
	}
	c.Nombre = req.Nombre
	c.Descripcion = req.Descripcion
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *categoriaService) Eliminar(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return noEncontrado("Categoria", id)
	}
	return s.repo.Delete(ctx, id)
}
