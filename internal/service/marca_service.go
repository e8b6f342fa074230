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
	ErrMarcaNoEncontrada = errors.New("marca no encontrada")
	ErrMarcaDuplicada    = errors.New("ya existe una marca con ese nombre en la categoría")
	ErrMarcaEnUso        = errors.New("la marca tiene productos asociados y no puede eliminarse")
)

// MarcaService defines business operations for brands. A brand name is
// unique within its category, not globally.
type MarcaService interface {
	Crear(ctx context.Context, req dto.CrearMarcaRequest) (dto.MarcaResponse, error)
	Listar(ctx context.Context) ([]dto.MarcaResponse, error)
	ListarPorCategoria(ctx context.Context, categoriaID int64) ([]dto.MarcaResponse, error)
	Actualizar(ctx context.Context, id int64, req dto.ActualizarMarcaRequest) (dto.MarcaResponse, error)
	Eliminar(ctx context.Context, id int64) error
}

type marcaService struct {
	repo          repository.MarcaRepository
	categoriaRepo repository.CategoriaRepository
	productoRepo  repository.ProductoRepository
}

func NewMarcaService(
	repo repository.MarcaRepository,
	categoriaRepo repository.CategoriaRepository,
	productoRepo repository.ProductoRepository,
) MarcaService {
	return &marcaService{repo: repo, categoriaRepo: categoriaRepo, productoRepo: productoRepo}
}

func mapMarca(m model.Marca) dto.MarcaResponse {
	resp := dto.MarcaResponse{
		ID:          m.ID,
		NombreMarca: m.NombreMarca,
		CategoriaID: m.CategoriaID,
		Descripcion: m.Descripcion,
	}
	if m.Categoria != nil {
		resp.Categoria = m.Categoria.NombreCategoria
	}
	return resp
}

func (s *marcaService) Crear(ctx context.Context, req dto.CrearMarcaRequest) (dto.MarcaResponse, error) {
	if _, err := s.categoriaRepo.FindByID(ctx, req.CategoriaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.MarcaResponse{}, ErrCategoriaNoEncontrada
		}
		return dto.MarcaResponse{}, err
	}

	dup, err := s.repo.ExistsNombreEnCategoria(ctx, req.NombreMarca, req.CategoriaID, 0)
	if err != nil {
		return dto.MarcaResponse{}, err
	}
	if dup {
		return dto.MarcaResponse{}, ErrMarcaDuplicada
	}

	m := &model.Marca{
		NombreMarca: req.NombreMarca,
		CategoriaID: req.CategoriaID,
		Descripcion: req.Descripcion,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return dto.MarcaResponse{}, err
	}
	return mapMarca(*m), nil
}

func (s *marcaService) Listar(ctx context.Context) ([]dto.MarcaResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.MarcaResponse, 0, len(list))
	for _, m := range list {
		result = append(result, mapMarca(m))
	}
	return result, nil
}

func (s *marcaService) ListarPorCategoria(ctx context.Context, categoriaID int64) ([]dto.MarcaResponse, error) {
	list, err := s.repo.ListByCategoria(ctx, categoriaID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.MarcaResponse, 0, len(list))
	for _, m := range list {
		result = append(result, mapMarca(m))
	}
	return result, nil
}

func (s *marcaService) Actualizar(ctx context.Context, id int64, req dto.ActualizarMarcaRequest) (dto.MarcaResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.MarcaResponse{}, ErrMarcaNoEncontrada
		}
		return dto.MarcaResponse{}, err
	}

	if _, err := s.categoriaRepo.FindByID(ctx, req.CategoriaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.MarcaResponse{}, ErrCategoriaNoEncontrada
		}
		return dto.MarcaResponse{}, err
	}

	dup, err := s.repo.ExistsNombreEnCategoria(ctx, req.NombreMarca, req.CategoriaID, id)
	if err != nil {
		return dto.MarcaResponse{}, err
	}
	if dup {
		return dto.MarcaResponse{}, ErrMarcaDuplicada
	}

	m.NombreMarca = req.NombreMarca
	m.CategoriaID = req.CategoriaID
	m.Descripcion = req.Descripcion

	if err := s.repo.Update(ctx, m); err != nil {
		return dto.MarcaResponse{}, err
	}
	return mapMarca(*m), nil
}

// Eliminar removes a brand only when no product references it.
func (s *marcaService) Eliminar(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMarcaNoEncontrada
		}
		return err
	}

	productos, err := s.productoRepo.CountByMarca(ctx, id)
	if err != nil {
		return err
	}
	if productos > 0 {
		return ErrMarcaEnUso
	}

	return s.repo.Delete(ctx, id)
}
