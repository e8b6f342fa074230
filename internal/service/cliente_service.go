package service

import (
	"context"
	"errors"

	"github.com/mo826440-cpu/sistema-kioscos/internal/dto"
	"github.com/mo826440-cpu/sistema-kioscos/internal/model"
	"github.com/mo826440-cpu/sistema-kioscos/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrClienteNoEncontrado = errors.New("cliente no encontrado")
	ErrClienteDuplicado    = errors.New("ya existe un cliente con ese nombre")
)

// ClienteService defines business operations for customers. Customers are
// never hard-deleted because past sales may reference them; they are
// deactivated instead.
type ClienteService interface {
	Crear(ctx context.Context, req dto.CrearClienteRequest) (dto.ClienteResponse, error)
	Listar(ctx context.Context, estado string) ([]dto.ClienteResponse, error)
	Buscar(ctx context.Context, term string) ([]dto.ClienteResponse, error)
	ObtenerPorID(ctx context.Context, id int64) (dto.ClienteResponse, error)
	Actualizar(ctx context.Context, id int64, req dto.ActualizarClienteRequest) (dto.ClienteResponse, error)
	Desactivar(ctx context.Context, id int64) error
	Reactivar(ctx context.Context, id int64) error
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func mapCliente(c model.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{
		ID:            c.ID,
		NombreCliente: c.NombreCliente,
		Contacto:      c.Contacto,
		Descripcion:   c.Descripcion,
		Activo:        c.Activo,
	}
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (dto.ClienteResponse, error) {
	dup, err := s.repo.ExistsNombre(ctx, req.NombreCliente, 0)
	if err != nil {
		return dto.ClienteResponse{}, err
	}
	if dup {
		return dto.ClienteResponse{}, ErrClienteDuplicado
	}

	c := &model.Cliente{
		NombreCliente: req.NombreCliente,
		Contacto:      req.Contacto,
		Descripcion:   req.Descripcion,
		Activo:        true,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return dto.ClienteResponse{}, err
	}
	return mapCliente(*c), nil
}

func (s *clienteService) Listar(ctx context.Context, estado string) ([]dto.ClienteResponse, error) {
	list, err := s.repo.List(ctx, estado)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		result = append(result, mapCliente(c))
	}
	return result, nil
}

func (s *clienteService) Buscar(ctx context.Context, term string) ([]dto.ClienteResponse, error) {
	list, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		result = append(result, mapCliente(c))
	}
	return result, nil
}

func (s *clienteService) ObtenerPorID(ctx context.Context, id int64) (dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ClienteResponse{}, ErrClienteNoEncontrado
		}
		return dto.ClienteResponse{}, err
	}
	return mapCliente(*c), nil
}

func (s *clienteService) Actualizar(ctx context.Context, id int64, req dto.ActualizarClienteRequest) (dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ClienteResponse{}, ErrClienteNoEncontrado
		}
		return dto.ClienteResponse{}, err
	}

	dup, err := s.repo.ExistsNombre(ctx, req.NombreCliente, id)
	if err != nil {
		return dto.ClienteResponse{}, err
	}
	if dup {
		return dto.ClienteResponse{}, ErrClienteDuplicado
	}

	c.NombreCliente = req.NombreCliente
	c.Contacto = req.Contacto
	c.Descripcion = req.Descripcion

	if err := s.repo.Update(ctx, c); err != nil {
		return dto.ClienteResponse{}, err
	}
	return mapCliente(*c), nil
}

func (s *clienteService) Desactivar(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClienteNoEncontrado
		}
		return err
	}
	return s.repo.SetEstado(ctx, id, false)
}

func (s *clienteService) Reactivar(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClienteNoEncontrado
		}
		return err
	}
	return s.repo.SetEstado(ctx, id, true)
}
