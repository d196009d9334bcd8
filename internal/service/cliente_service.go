package service

import (
	"context"

	"github.com/enzofs112/roxfarma-sistema-gestion/internal/dto"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/model"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/repository"
)

type ClienteService interface {
	Crear(ctx context.Context, req dto.ClienteRequest) (*model.Cliente, error)
	ObtenerPorID(ctx context.Context, id int64) (*model.Cliente, error)
	Listar(ctx context.Context) ([]model.Cliente, error)
	Actualizar(ctx context.Context, id int64, req dto.ClienteRequest) (*model.Cliente, error)
	Eliminar(ctx context.Context, id int64) error
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Crear(ctx context.Context, req dto.ClienteRequest) (*model.Cliente, error) {
	c := &model.Cliente{
		Nombre:    req.Nombre,
		Documento: req.Documento,
		Direccion: req.Direccion,
		Email:     req.Email,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *clienteService) ObtenerPorID(ctx context.Context, id int64) (*model.Cliente, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, noEncontrado("Cliente", id)
	}
	return c, nil
}

func (s *clienteService) Listar(ctx context.Context) ([]model.Cliente, error) {
	return s.repo.List(ctx)
}

func (s *clienteService) Actualizar(ctx context.Context, id int64, req dto.ClienteRequest) (*model.Cliente, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, noEncontrado("Cliente", id)
	}
	c.Nombre = req.Nombre
	c.Documento = req.Documento
	c.Direccion = req.Direccion
	c.Email = req.Email
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *clienteService) Eliminar(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return noEncontrado("Cliente", id)
	}
	return s.repo.Delete(ctx, id)
}
