package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"floristeria/internal/dto"
	"floristeria/internal/model"
	"floristeria/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const busquedaTTL = 5 * time.Minute

type CatalogoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error)
	Listar(ctx context.Context, categoria string) ([]dto.ProductoResponse, error)
	Buscar(ctx context.Context, q string) ([]dto.ProductoBusquedaItem, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type catalogoService struct {
	repo  repository.ProductoRepository
	cache *redis.Client
}

// NewCatalogoService builds the catalog service. cache may be nil; the
// search endpoint then always hits the database.
func NewCatalogoService(repo repository.ProductoRepository, cache *redis.Client) CatalogoService {
	return &catalogoService{repo: repo, cache: cache}
}

func (s *catalogoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if req.Precio.LessThanOrEqual(decimal.Zero) {
		return nil, errors.New("el precio debe ser mayor a cero")
	}
	producto := &model.Producto{
		Nombre:      req.Nombre,
		Categoria:   req.Categoria,
		Precio:      req.Precio,
		Tamano:      req.Tamano,
		Descripcion: req.Descripcion,
		ImagenURL:   req.ImagenURL,
	}
	if err := s.repo.Create(ctx, producto); err != nil {
		return nil, err
	}
	return productoToResponse(producto), nil
}

func (s *catalogoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}
	if req.Precio.LessThanOrEqual(decimal.Zero) {
		return nil, errors.New("el precio debe ser mayor a cero")
	}

	producto.Nombre = req.Nombre
	producto.Categoria = req.Categoria
	producto.Precio = req.Precio
	producto.Tamano = req.Tamano
	producto.Descripcion = req.Descripcion
	producto.ImagenURL = req.ImagenURL

	if err := s.repo.Update(ctx, producto); err != nil {
		return nil, err
	}
	return productoToResponse(producto), nil
}

func (s *catalogoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error) {
	producto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}
	return productoToResponse(producto), nil
}

func (s *catalogoService) Listar(ctx context.Context, categoria string) ([]dto.ProductoResponse, error) {
	productos, err := s.repo.List(ctx, categoria)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		out = append(out, *productoToResponse(&productos[i]))
	}
	return out, nil
}

// Buscar serves the purchase-entry autocomplete. Results are cached in
// Redis per query with a short TTL; cache failures fall through to the
// database and are only logged.
func (s *catalogoService) Buscar(ctx context.Context, q string) ([]dto.ProductoBusquedaItem, error) {
	key := "productos:buscar:" + q

	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key).Result(); err == nil {
			var items []dto.ProductoBusquedaItem
			if json.Unmarshal([]byte(raw), &items) == nil {
				return items, nil
			}
		}
	}

	productos, err := s.repo.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoBusquedaItem, 0, len(productos))
	for _, p := range productos {
		items = append(items, dto.ProductoBusquedaItem{
			ID:          p.ID.String(),
			Nombre:      p.Nombre,
			Precio:      p.Precio,
			Descripcion: p.Descripcion,
			ImagenURL:   p.ImagenURL,
		})
	}

	if s.cache != nil {
		if raw, err := json.Marshal(items); err == nil {
			if err := s.cache.Set(ctx, key, raw, busquedaTTL).Err(); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("no se pudo cachear la busqueda")
			}
		}
	}
	return items, nil
}

func (s *catalogoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("producto no encontrado")
	}
	return s.repo.Delete(ctx, id)
}

func productoToResponse(p *model.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:          p.ID.String(),
		Nombre:      p.Nombre,
		Categoria:   p.Categoria,
		Precio:      p.Precio,
		Tamano:      p.Tamano,
		Descripcion: p.Descripcion,
		ImagenURL:   p.ImagenURL,
	}
}
