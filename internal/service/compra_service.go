package service

import (
	"context"
	"errors"
	"time"

	"floristeria/internal/dto"
	"floristeria/internal/model"
	"floristeria/internal/pedido"
	"floristeria/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CompraService interface {
	Crear(ctx context.Context, req dto.CrearCompraRequest) (*dto.CompraResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.CrearCompraRequest) (*dto.CompraResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.CompraResponse, error)
	Listar(ctx context.Context, filter dto.CompraFilter) (*dto.CompraListResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type compraService struct {
	repo          repository.CompraRepository
	proveedorRepo repository.ProveedorRepository
	productoRepo  repository.ProductoRepository
}

func NewCompraService(
	repo repository.CompraRepository,
	proveedorRepo repository.ProveedorRepository,
	productoRepo repository.ProductoRepository,
) CompraService {
	return &compraService{repo: repo, proveedorRepo: proveedorRepo, productoRepo: productoRepo}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Crear ─────────────────────────────────────────────────────────────────────
// Creation pipeline:
//  1. Validate header fields and parse the parallel detail arrays; field and
//     row errors are combined into one report — nothing persisted on failure.
//  2. BEGIN TX: resolve every referenced product (unknown id aborts the
//     whole transaction), insert the header, insert the detalles, recompute
//     the derived totals from the inserted lines, persist only those three
//     fields.
//  3. COMMIT — a crash at any point leaves no partial compra visible.

func (s *compraService) Crear(ctx context.Context, req dto.CrearCompraRequest) (*dto.CompraResponse, error) {
	compra, candidatos, err := s.validar(req)
	if err != nil {
		return nil, err
	}
	if _, err := s.proveedorRepo.FindByID(ctx, compra.ProveedorID); err != nil {
		return nil, &pedido.ErrorReferencia{Referencia: compra.ProveedorID.String()}
	}

	nombres := make(map[uuid.UUID]string, len(candidatos))
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		detalles, err := s.resolverDetalles(tx, candidatos, nombres)
		if err != nil {
			return err
		}
		if err := s.repo.Create(ctx, tx, compra); err != nil {
			return err
		}
		for i := range detalles {
			detalles[i].CompraID = compra.ID
		}
		if err := s.repo.CreateDetalles(ctx, tx, detalles); err != nil {
			return err
		}
		compra.Detalles = detalles
		compra.RecalcularTotales()
		return s.repo.UpdateTotales(ctx, tx, compra)
	})
	if txErr != nil {
		return nil, txErr
	}

	return compraToResponse(compra, nombres), nil
}

// ── Actualizar ────────────────────────────────────────────────────────────────
// Edits replace the detail set wholesale: every existing detalle is deleted
// and the submitted rows are inserted fresh, then totals are recomputed.
// Reordering, removing or adding lines all take this same path.

func (s *compraService) Actualizar(ctx context.Context, id uuid.UUID, req dto.CrearCompraRequest) (*dto.CompraResponse, error) {
	existente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("compra no encontrada")
	}

	compra, candidatos, err := s.validar(req)
	if err != nil {
		return nil, err
	}
	if _, err := s.proveedorRepo.FindByID(ctx, compra.ProveedorID); err != nil {
		return nil, &pedido.ErrorReferencia{Referencia: compra.ProveedorID.String()}
	}
	compra.ID = existente.ID
	compra.CreatedAt = existente.CreatedAt

	nombres := make(map[uuid.UUID]string, len(candidatos))
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		detalles, err := s.resolverDetalles(tx, candidatos, nombres)
		if err != nil {
			return err
		}
		if err := s.repo.UpdateHeader(ctx, tx, compra); err != nil {
			return err
		}
		if err := s.repo.DeleteDetalles(ctx, tx, compra.ID); err != nil {
			return err
		}
		for i := range detalles {
			detalles[i].CompraID = compra.ID
		}
		if err := s.repo.CreateDetalles(ctx, tx, detalles); err != nil {
			return err
		}
		compra.Detalles = detalles
		compra.RecalcularTotales()
		return s.repo.UpdateTotales(ctx, tx, compra)
	})
	if txErr != nil {
		return nil, txErr
	}

	return compraToResponse(compra, nombres), nil
}

func (s *compraService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.CompraResponse, error) {
	compra, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("compra no encontrada")
	}
	return compraToResponse(compra, nil), nil
}

func (s *compraService) Listar(ctx context.Context, filter dto.CompraFilter) (*dto.CompraListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	compras, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.CompraResponse, 0, len(compras))
	for i := range compras {
		data = append(data, *compraToResponse(&compras[i], nil))
	}
	return &dto.CompraListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *compraService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("compra no encontrada")
	}
	return s.repo.Delete(ctx, id)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// validar checks the header fields and parses the detail arrays, combining
// every problem into a single ReporteValidacion. On success it returns the
// unsaved compra plus the parsed detail candidates.
func (s *compraService) validar(req dto.CrearCompraRequest) (*model.Compra, []pedido.Detalle, error) {
	reporte := &pedido.ReporteValidacion{}

	proveedorID, err := uuid.Parse(req.ProveedorID)
	if err != nil {
		reporte.AgregarCampo("proveedor_id", "identificador invalido")
	}

	fechaEmision, err := time.Parse("2006-01-02", req.FechaEmision)
	if err != nil {
		reporte.AgregarCampo("fecha_emision", "fecha invalida, formato AAAA-MM-DD")
	}

	var fechaVencimiento *time.Time
	if req.FechaVencimiento != nil && *req.FechaVencimiento != "" {
		fv, err := time.Parse("2006-01-02", *req.FechaVencimiento)
		if err != nil {
			reporte.AgregarCampo("fecha_vencimiento", "fecha invalida, formato AAAA-MM-DD")
		} else if fv.Before(fechaEmision) {
			reporte.AgregarCampo("fecha_vencimiento", "no puede ser anterior a la fecha de emision")
		} else {
			fechaVencimiento = &fv
		}
	}

	if req.DescuentoPct.IsNegative() || req.DescuentoPct.GreaterThan(decimal.NewFromInt(100)) {
		reporte.AgregarCampo("descuento_pct", "debe estar entre 0 y 100")
	}

	candidatos, errFilas := pedido.ParseDetalles(req.Referencias, req.Precios, req.Cantidades)
	reporte.Filas = errFilas

	if !reporte.Vacio() {
		return nil, nil, reporte
	}
	if len(candidatos) == 0 {
		return nil, nil, pedido.ErrPedidoVacio
	}

	return &model.Compra{
		ProveedorID:      proveedorID,
		FormaPago:        req.FormaPago,
		MedioPago:        req.MedioPago,
		FechaEmision:     fechaEmision,
		FechaVencimiento: fechaVencimiento,
		Descripcion:      req.Descripcion,
		Departamento:     req.Departamento,
		Ciudad:           req.Ciudad,
		DescuentoPct:     req.DescuentoPct,
	}, candidatos, nil
}

// resolverDetalles turns parsed candidates into persistable detalles,
// verifying inside the transaction that every referenced product exists.
// A missing product aborts the whole operation with ErrorReferencia.
func (s *compraService) resolverDetalles(tx *gorm.DB, candidatos []pedido.Detalle, nombres map[uuid.UUID]string) ([]model.DetalleCompra, error) {
	detalles := make([]model.DetalleCompra, 0, len(candidatos))
	for _, c := range candidatos {
		pid, err := uuid.Parse(c.Referencia)
		if err != nil {
			return nil, &pedido.ErrorReferencia{Referencia: c.Referencia}
		}
		producto, err := s.productoRepo.FindByIDTx(tx, pid)
		if err != nil {
			return nil, &pedido.ErrorReferencia{Referencia: c.Referencia}
		}
		nombres[pid] = producto.Nombre
		detalles = append(detalles, model.DetalleCompra{
			ProductoID:     pid,
			PrecioUnitario: c.Precio,
			Cantidad:       c.Cantidad,
			Subtotal:       c.Subtotal(),
		})
	}
	return detalles, nil
}

func compraToResponse(c *model.Compra, nombres map[uuid.UUID]string) *dto.CompraResponse {
	detalles := make([]dto.DetalleCompraResponse, 0, len(c.Detalles))
	for _, det := range c.Detalles {
		nombre := nombres[det.ProductoID]
		if nombre == "" && det.Producto != nil {
			nombre = det.Producto.Nombre
		}
		detalles = append(detalles, dto.DetalleCompraResponse{
			ProductoID:     det.ProductoID.String(),
			Producto:       nombre,
			PrecioUnitario: det.PrecioUnitario,
			Cantidad:       det.Cantidad,
			Subtotal:       det.Subtotal,
		})
	}

	var vencimiento *string
	if c.FechaVencimiento != nil {
		fv := c.FechaVencimiento.Format("2006-01-02")
		vencimiento = &fv
	}
	proveedor := ""
	if c.Proveedor != nil {
		proveedor = c.Proveedor.Nombre
	}

	return &dto.CompraResponse{
		ID:               c.ID.String(),
		ProveedorID:      c.ProveedorID.String(),
		Proveedor:        proveedor,
		FormaPago:        c.FormaPago,
		MedioPago:        c.MedioPago,
		FechaEmision:     c.FechaEmision.Format("2006-01-02"),
		FechaVencimiento: vencimiento,
		Descripcion:      c.Descripcion,
		Departamento:     c.Departamento,
		Ciudad:           c.Ciudad,
		DescuentoPct:     c.DescuentoPct,
		Subtotal:         c.Subtotal,
		DescuentoTotal:   c.DescuentoTotal,
		Total:            c.Total,
		Detalles:         detalles,
		CreatedAt:        c.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
