package service

import (
	"context"
	"errors"

	"floristeria/internal/dto"
	"floristeria/internal/model"
	"floristeria/internal/repository"

	"github.com/google/uuid"
)

var ErrProveedorConCompras = errors.New("el proveedor tiene compras registradas y no puede eliminarse")

type ProveedorService interface {
	Crear(ctx context.Context, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProveedorResponse, error)
	Listar(ctx context.Context) ([]dto.ProveedorResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type proveedorService struct {
	repo       repository.ProveedorRepository
	compraRepo repository.CompraRepository
}

func NewProveedorService(repo repository.ProveedorRepository, compraRepo repository.CompraRepository) ProveedorService {
	return &proveedorService{repo: repo, compraRepo: compraRepo}
}

func (s *proveedorService) Crear(ctx context.Context, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error) {
	proveedor := &model.Proveedor{
		TipoDocumento:   req.TipoDocumento,
		NumeroDocumento: req.NumeroDocumento,
		Nombre:          req.Nombre,
		Direccion:       req.Direccion,
		Telefono:        req.Telefono,
		Correo:          req.Correo,
		Ciudad:          req.Ciudad,
		Activo:          true,
	}
	if err := s.repo.Create(ctx, proveedor); err != nil {
		return nil, err
	}
	return proveedorToResponse(proveedor), nil
}

func (s *proveedorService) Actualizar(ctx context.Context, id uuid.UUID, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error) {
	proveedor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("proveedor no encontrado")
	}

	proveedor.TipoDocumento = req.TipoDocumento
	proveedor.NumeroDocumento = req.NumeroDocumento
	proveedor.Nombre = req.Nombre
	proveedor.Direccion = req.Direccion
	proveedor.Telefono = req.Telefono
	proveedor.Correo = req.Correo
	proveedor.Ciudad = req.Ciudad

	if err := s.repo.Update(ctx, proveedor); err != nil {
		return nil, err
	}
	return proveedorToResponse(proveedor), nil
}

func (s *proveedorService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProveedorResponse, error) {
	proveedor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("proveedor no encontrado")
	}
	return proveedorToResponse(proveedor), nil
}

func (s *proveedorService) Listar(ctx context.Context) ([]dto.ProveedorResponse, error) {
	proveedores, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProveedorResponse, 0, len(proveedores))
	for i := range proveedores {
		out = append(out, *proveedorToResponse(&proveedores[i]))
	}
	return out, nil
}

// Eliminar deactivates the proveedor instead of deleting the row, and
// only when no compras reference it.
func (s *proveedorService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("proveedor no encontrado")
	}
	n, err := s.compraRepo.CountByProveedor(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrProveedorConCompras
	}
	return s.repo.SoftDelete(ctx, id)
}

func proveedorToResponse(p *model.Proveedor) *dto.ProveedorResponse {
	return &dto.ProveedorResponse{
		ID:              p.ID.String(),
		TipoDocumento:   p.TipoDocumento,
		NumeroDocumento: p.NumeroDocumento,
		Nombre:          p.Nombre,
		Direccion:       p.Direccion,
		Telefono:        p.Telefono,
		Correo:          p.Correo,
		Ciudad:          p.Ciudad,
		Activo:          p.Activo,
	}
}
