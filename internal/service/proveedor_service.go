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
	ErrProveedorNoEncontrado = errors.New("proveedor no encontrado")
	ErrProveedorDuplicado    = errors.New("ya existe un proveedor con ese nombre")
	ErrProveedorEnUso        = errors.New("el proveedor tiene compras asociadas y no puede eliminarse")
)

// ProveedorService defines business operations for suppliers.
type ProveedorService interface {
	Crear(ctx context.Context, req dto.CrearProveedorRequest) (dto.ProveedorResponse, error)
	Listar(ctx context.Context) ([]dto.ProveedorResponse, error)
	Buscar(ctx context.Context, term string) ([]dto.ProveedorResponse, error)
	ObtenerPorID(ctx context.Context, id int64) (dto.ProveedorResponse, error)
	Actualizar(ctx context.Context, id int64, req dto.ActualizarProveedorRequest) (dto.ProveedorResponse, error)
	Eliminar(ctx context.Context, id int64) error
}

type proveedorService struct {
	repo       repository.ProveedorRepository
	compraRepo repository.CompraRepository
}

func NewProveedorService(repo repository.ProveedorRepository, compraRepo repository.CompraRepository) ProveedorService {
	return &proveedorService{repo: repo, compraRepo: compraRepo}
}

func mapProveedor(p model.Proveedor) dto.ProveedorResponse {
	return dto.ProveedorResponse{
		ID:              p.ID,
		NombreProveedor: p.NombreProveedor,
		Contacto:        p.Contacto,
		Descripcion:     p.Descripcion,
	}
}

func (s *proveedorService) Crear(ctx context.Context, req dto.CrearProveedorRequest) (dto.ProveedorResponse, error) {
	dup, err := s.repo.ExistsNombre(ctx, req.NombreProveedor, 0)
	if err != nil {
		return dto.ProveedorResponse{}, err
	}
	if dup {
		return dto.ProveedorResponse{}, ErrProveedorDuplicado
	}

	p := &model.Proveedor{
		NombreProveedor: req.NombreProveedor,
		Contacto:        req.Contacto,
		Descripcion:     req.Descripcion,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return dto.ProveedorResponse{}, err
	}
	return mapProveedor(*p), nil
}

func (s *proveedorService) Listar(ctx context.Context) ([]dto.ProveedorResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProveedorResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapProveedor(p))
	}
	return result, nil
}

func (s *proveedorService) Buscar(ctx context.Context, term string) ([]dto.ProveedorResponse, error) {
	list, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProveedorResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapProveedor(p))
	}
	return result, nil
}

func (s *proveedorService) ObtenerPorID(ctx context.Context, id int64) (dto.ProveedorResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProveedorResponse{}, ErrProveedorNoEncontrado
		}
		return dto.ProveedorResponse{}, err
	}
	return mapProveedor(*p), nil
}

func (s *proveedorService) Actualizar(ctx context.Context, id int64, req dto.ActualizarProveedorRequest) (dto.ProveedorResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProveedorResponse{}, ErrProveedorNoEncontrado
		}
		return dto.ProveedorResponse{}, err
	}

	dup, err := s.repo.ExistsNombre(ctx, req.NombreProveedor, id)
	if err != nil {
		return dto.ProveedorResponse{}, err
	}
	if dup {
		return dto.ProveedorResponse{}, ErrProveedorDuplicado
	}

	p.NombreProveedor = req.NombreProveedor
	p.Contacto = req.Contacto
	p.Descripcion = req.Descripcion

	if err := s.repo.Update(ctx, p); err != nil {
		return dto.ProveedorResponse{}, err
	}
	return mapProveedor(*p), nil
}

// Eliminar removes a supplier only when no purchase detail references it.
func (s *proveedorService) Eliminar(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProveedorNoEncontrado
		}
		return err
	}

	compras, err := s.compraRepo.CountByProveedor(ctx, id)
	if err != nil {
		return err
	}
	if compras > 0 {
		return ErrProveedorEnUso
	}

	return s.repo.Delete(ctx, id)
}
