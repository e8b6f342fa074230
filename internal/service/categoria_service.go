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
	// ErrCategoriaEnUso signals that the category still has products or brands
	// attached and cannot be deleted.
	ErrCategoriaEnUso = errors.New("la categoría tiene productos o marcas asociadas y no puede eliminarse")

	ErrCategoriaNoEncontrada = errors.New("categoría no encontrada")
	ErrCategoriaDuplicada    = errors.New("ya existe una categoría con ese nombre")
)

// CategoriaService defines business operations for product categories.
type CategoriaService interface {
	Crear(ctx context.Context, req dto.CrearCategoriaRequest) (dto.CategoriaResponse, error)
	Listar(ctx context.Context) ([]dto.CategoriaResponse, error)
	ObtenerPorID(ctx context.Context, id int64) (dto.CategoriaResponse, error)
	Actualizar(ctx context.Context, id int64, req dto.ActualizarCategoriaRequest) (dto.CategoriaResponse, error)
	Eliminar(ctx context.Context, id int64) error
}

type categoriaService struct {
	repo         repository.CategoriaRepository
	productoRepo repository.ProductoRepository
	marcaRepo    repository.MarcaRepository
}

func NewCategoriaService(
	repo repository.CategoriaRepository,
	productoRepo repository.ProductoRepository,
	marcaRepo repository.MarcaRepository,
) CategoriaService {
	return &categoriaService{repo: repo, productoRepo: productoRepo, marcaRepo: marcaRepo}
}

func mapCategoria(c model.Categoria) dto.CategoriaResponse {
	return dto.CategoriaResponse{
		ID:              c.ID,
		NombreCategoria: c.NombreCategoria,
		Descripcion:     c.Descripcion,
	}
}

func (s *categoriaService) Crear(ctx context.Context, req dto.CrearCategoriaRequest) (dto.CategoriaResponse, error) {
	existing, err := s.repo.FindByNombre(ctx, req.NombreCategoria)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.CategoriaResponse{}, err
	}
	if existing != nil {
		return dto.CategoriaResponse{}, ErrCategoriaDuplicada
	}

	c := &model.Categoria{
		NombreCategoria: req.NombreCategoria,
		Descripcion:     req.Descripcion,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return dto.CategoriaResponse{}, err
	}
	return mapCategoria(*c), nil
}

func (s *categoriaService) Listar(ctx context.Context) ([]dto.CategoriaResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		result = append(result, mapCategoria(c))
	}
	return result, nil
}

func (s *categoriaService) ObtenerPorID(ctx context.Context, id int64) (dto.CategoriaResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CategoriaResponse{}, ErrCategoriaNoEncontrada
		}
		return dto.CategoriaResponse{}, err
	}
	return mapCategoria(*c), nil
}

func (s *categoriaService) Actualizar(ctx context.Context, id int64, req dto.ActualizarCategoriaRequest) (dto.CategoriaResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CategoriaResponse{}, ErrCategoriaNoEncontrada
		}
		return dto.CategoriaResponse{}, err
	}

	if req.NombreCategoria != c.NombreCategoria {
		existing, err := s.repo.FindByNombre(ctx, req.NombreCategoria)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CategoriaResponse{}, err
		}
		if existing != nil && existing.ID != id {
			return dto.CategoriaResponse{}, ErrCategoriaDuplicada
		}
	}

	c.NombreCategoria = req.NombreCategoria
	c.Descripcion = req.Descripcion

	if err := s.repo.Update(ctx, c); err != nil {
		return dto.CategoriaResponse{}, err
	}
	return mapCategoria(*c), nil
}

// Eliminar removes a category only when no product or brand references it.
func (s *categoriaService) Eliminar(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoriaNoEncontrada
		}
		return err
	}

	productos, err := s.productoRepo.CountByCategoria(ctx, id)
	if err != nil {
		return err
	}
	marcas, err := s.marcaRepo.CountByCategoria(ctx, id)
	if err != nil {
		return err
	}
	if productos > 0 || marcas > 0 {
		return ErrCategoriaEnUso
	}

	return s.repo.Delete(ctx, id)
}
