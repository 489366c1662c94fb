package service

import (
	"context"
	"errors"

	"floristeria/internal/dto"
	"floristeria/internal/model"
	"floristeria/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrDocumentoDuplicado = errors.New("ya existe un cliente con ese documento")
	ErrClienteConVentas   = errors.New("el cliente tiene ventas registradas y no puede eliminarse")
)

type ClienteService interface {
	Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.CrearClienteRequest) (*dto.ClienteResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error)
	Listar(ctx context.Context) ([]dto.ClienteResponse, error)
	Buscar(ctx context.Context, q string) ([]dto.ClienteBusquedaItem, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type clienteService struct {
	repo      repository.ClienteRepository
	ventaRepo repository.VentaRepository
}

func NewClienteService(repo repository.ClienteRepository, ventaRepo repository.VentaRepository) ClienteService {
	return &clienteService{repo: repo, ventaRepo: ventaRepo}
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	if existente, err := s.repo.FindByDocumento(ctx, req.Documento); err == nil && existente != nil && existente.ID != uuid.Nil {
		return nil, ErrDocumentoDuplicado
	}

	cliente := &model.Cliente{
		Documento:     req.Documento,
		TipoDocumento: req.TipoDocumento,
		Nombre:        req.Nombre,
		Apellido:      req.Apellido,
		Telefono:      req.Telefono,
		Correo:        req.Correo,
		Direccion:     req.Direccion,
		Ciudad:        req.Ciudad,
		Departamento:  req.Departamento,
	}
	if err := s.repo.Create(ctx, cliente); err != nil {
		return nil, err
	}
	return clienteToResponse(cliente), nil
}

func (s *clienteService) Actualizar(ctx context.Context, id uuid.UUID, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("cliente no encontrado")
	}

	// A changed documento must not collide with another cliente.
	if req.Documento != cliente.Documento {
		if otro, err := s.repo.FindByDocumento(ctx, req.Documento); err == nil && otro != nil && otro.ID != id {
			return nil, ErrDocumentoDuplicado
		}
	}

	cliente.Documento = req.Documento
	cliente.TipoDocumento = req.TipoDocumento
	cliente.Nombre = req.Nombre
	cliente.Apellido = req.Apellido
	cliente.Telefono = req.Telefono
	cliente.Correo = req.Correo
	cliente.Direccion = req.Direccion
	cliente.Ciudad = req.Ciudad
	cliente.Departamento = req.Departamento

	if err := s.repo.Update(ctx, cliente); err != nil {
		return nil, err
	}
	return clienteToResponse(cliente), nil
}

func (s *clienteService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error) {
	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("cliente no encontrado")
	}
	return clienteToResponse(cliente), nil
}

func (s *clienteService) Listar(ctx context.Context) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		out = append(out, *clienteToResponse(&clientes[i]))
	}
	return out, nil
}

func (s *clienteService) Buscar(ctx context.Context, q string) ([]dto.ClienteBusquedaItem, error) {
	clientes, err := s.repo.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClienteBusquedaItem, 0, len(clientes))
	for _, c := range clientes {
		items = append(items, dto.ClienteBusquedaItem{
			ID:        c.ID.String(),
			Nombre:    c.Nombre + " " + c.Apellido,
			Direccion: c.Direccion,
		})
	}
	return items, nil
}

// Eliminar refuses to drop a cliente that sales still reference; the
// history would become unreadable otherwise.
func (s *clienteService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("cliente no encontrado")
	}
	n, err := s.ventaRepo.CountByCliente(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrClienteConVentas
	}
	return s.repo.Delete(ctx, id)
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:            c.ID.String(),
		Documento:     c.Documento,
		TipoDocumento: c.TipoDocumento,
		Nombre:        c.Nombre,
		Apellido:      c.Apellido,
		Telefono:      c.Telefono,
		Correo:        c.Correo,
		Direccion:     c.Direccion,
		Ciudad:        c.Ciudad,
		Departamento:  c.Departamento,
	}
}
