package service

import (
	"context"
	"errors"

	"floristeria/internal/dto"
	"floristeria/internal/model"
	"floristeria/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ArregloService interface {
	Crear(ctx context.Context, req dto.CrearArregloRequest) (*dto.ArregloResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.CrearArregloRequest) (*dto.ArregloResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ArregloResponse, error)
	Listar(ctx context.Context) ([]dto.ArregloResponse, error)
	Buscar(ctx context.Context, q string) ([]dto.ArregloBusquedaItem, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type arregloService struct {
	repo repository.ArregloRepository
}

func NewArregloService(repo repository.ArregloRepository) ArregloService {
	return &arregloService{repo: repo}
}

func (s *arregloService) Crear(ctx context.Context, req dto.CrearArregloRequest) (*dto.ArregloResponse, error) {
	if req.Precio.LessThanOrEqual(decimal.Zero) {
		return nil, errors.New("el precio debe ser mayor a cero")
	}
	arreglo := &model.Arreglo{
		NombreFlor:   req.NombreFlor,
		TipoProducto: req.TipoProducto,
		Descripcion:  req.Descripcion,
		Precio:       req.Precio,
		ImagenURL:    req.ImagenURL,
	}
	if err := s.repo.Create(ctx, arreglo); err != nil {
		return nil, err
	}
	return arregloToResponse(arreglo), nil
}

func (s *arregloService) Actualizar(ctx context.Context, id uuid.UUID, req dto.CrearArregloRequest) (*dto.ArregloResponse, error) {
	arreglo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("arreglo no encontrado")
	}
	if req.Precio.LessThanOrEqual(decimal.Zero) {
		return nil, errors.New("el precio debe ser mayor a cero")
	}

	arreglo.NombreFlor = req.NombreFlor
	arreglo.TipoProducto = req.TipoProducto
	arreglo.Descripcion = req.Descripcion
	arreglo.Precio = req.Precio
	arreglo.ImagenURL = req.ImagenURL

	if err := s.repo.Update(ctx, arreglo); err != nil {
		return nil, err
	}
	return arregloToResponse(arreglo), nil
}

func (s *arregloService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ArregloResponse, error) {
	arreglo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("arreglo no encontrado")
	}
	return arregloToResponse(arreglo), nil
}

func (s *arregloService) Listar(ctx context.Context) ([]dto.ArregloResponse, error) {
	arreglos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ArregloResponse, 0, len(arreglos))
	for i := range arreglos {
		out = append(out, *arregloToResponse(&arreglos[i]))
	}
	return out, nil
}

func (s *arregloService) Buscar(ctx context.Context, q string) ([]dto.ArregloBusquedaItem, error) {
	arreglos, err := s.repo.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ArregloBusquedaItem, 0, len(arreglos))
	for _, a := range arreglos {
		items = append(items, dto.ArregloBusquedaItem{
			ID:         a.ID.String(),
			NombreFlor: a.NombreFlor,
			Precio:     a.Precio,
		})
	}
	return items, nil
}

func (s *arregloService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("arreglo no encontrado")
	}
	return s.repo.Delete(ctx, id)
}

func arregloToResponse(a *model.Arreglo) *dto.ArregloResponse {
	return &dto.ArregloResponse{
		ID:           a.ID.String(),
		NombreFlor:   a.NombreFlor,
		TipoProducto: a.TipoProducto,
		Descripcion:  a.Descripcion,
		Precio:       a.Precio,
		ImagenURL:    a.ImagenURL,
	}
}
