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
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ivaPermitido is the closed set of IVA rates billable in Colombia for
// this business: exento, reducido y general.
var ivaPermitido = map[string]bool{"0": true, "5": true, "19": true}

// ReciboEncolador queues receipt generation after a sale commits. The
// worker pool implements it; tests stub it.
type ReciboEncolador interface {
	EnqueueRecibo(ctx context.Context, ventaID uuid.UUID) error
}

type VentaService interface {
	Crear(ctx context.Context, req dto.CrearVentaRequest) (*dto.VentaResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.CrearVentaRequest) (*dto.VentaResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error)
	Listar(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type ventaService struct {
	repo        repository.VentaRepository
	clienteRepo repository.ClienteRepository
	arregloRepo repository.ArregloRepository
	encolador   ReciboEncolador
}

// NewVentaService builds the sales service. encolador may be nil when no
// worker pool is running (tests, seed tools).
func NewVentaService(
	repo repository.VentaRepository,
	clienteRepo repository.ClienteRepository,
	arregloRepo repository.ArregloRepository,
	encolador ReciboEncolador,
) VentaService {
	return &ventaService{repo: repo, clienteRepo: clienteRepo, arregloRepo: arregloRepo, encolador: encolador}
}

func (s *ventaService) Crear(ctx context.Context, req dto.CrearVentaRequest) (*dto.VentaResponse, error) {
	venta, candidatos, err := s.validar(req)
	if err != nil {
		return nil, err
	}
	if _, err := s.clienteRepo.FindByID(ctx, venta.ClienteID); err != nil {
		return nil, &pedido.ErrorReferencia{Referencia: venta.ClienteID.String()}
	}

	nombres := make(map[uuid.UUID]string, len(candidatos))
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		detalles, err := s.resolverDetalles(tx, candidatos, nombres)
		if err != nil {
			return err
		}
		if err := s.repo.Create(ctx, tx, venta); err != nil {
			return err
		}
		for i := range detalles {
			detalles[i].VentaID = venta.ID
		}
		if err := s.repo.CreateDetalles(ctx, tx, detalles); err != nil {
			return err
		}
		venta.Detalles = detalles
		venta.RecalcularTotales()
		return s.repo.UpdateTotales(ctx, tx, venta)
	})
	if txErr != nil {
		return nil, txErr
	}

	// Receipt generation is best-effort and strictly post-commit: the sale
	// stands even when the queue is down.
	if s.encolador != nil {
		if err := s.encolador.EnqueueRecibo(ctx, venta.ID); err != nil {
			log.Warn().Err(err).Str("venta_id", venta.ID.String()).Msg("no se pudo encolar el recibo")
		}
	}

	return ventaToResponse(venta, nombres), nil
}

func (s *ventaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.CrearVentaRequest) (*dto.VentaResponse, error) {
	existente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("venta no encontrada")
	}

	venta, candidatos, err := s.validar(req)
	if err != nil {
		return nil, err
	}
	if _, err := s.clienteRepo.FindByID(ctx, venta.ClienteID); err != nil {
		return nil, &pedido.ErrorReferencia{Referencia: venta.ClienteID.String()}
	}
	venta.ID = existente.ID
	venta.FechaEmision = existente.FechaEmision
	venta.CreatedAt = existente.CreatedAt

	nombres := make(map[uuid.UUID]string, len(candidatos))
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		detalles, err := s.resolverDetalles(tx, candidatos, nombres)
		if err != nil {
			return err
		}
		if err := s.repo.UpdateHeader(ctx, tx, venta); err != nil {
			return err
		}
		if err := s.repo.DeleteDetalles(ctx, tx, venta.ID); err != nil {
			return err
		}
		for i := range detalles {
			detalles[i].VentaID = venta.ID
		}
		if err := s.repo.CreateDetalles(ctx, tx, detalles); err != nil {
			return err
		}
		venta.Detalles = detalles
		venta.RecalcularTotales()
		return s.repo.UpdateTotales(ctx, tx, venta)
	})
	if txErr != nil {
		return nil, txErr
	}

	return ventaToResponse(venta, nombres), nil
}

func (s *ventaService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error) {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("venta no encontrada")
	}
	return ventaToResponse(venta, nil), nil
}

func (s *ventaService) Listar(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	ventas, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.VentaResponse, 0, len(ventas))
	for i := range ventas {
		data = append(data, *ventaToResponse(&ventas[i], nil))
	}
	return &dto.VentaListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *ventaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("venta no encontrada")
	}
	return s.repo.Delete(ctx, id)
}

// validar checks the sale header and parses the detail arrays. IvaPct is
// checked here against the closed rate set so an out-of-set rate surfaces
// as a field error next to any row errors.
func (s *ventaService) validar(req dto.CrearVentaRequest) (*model.Venta, []pedido.Detalle, error) {
	reporte := &pedido.ReporteValidacion{}

	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		reporte.AgregarCampo("cliente_id", "identificador invalido")
	}

	if !ivaPermitido[req.IvaPct.String()] {
		reporte.AgregarCampo("iva_pct", "debe ser 0, 5 o 19")
	}
	if req.PrecioEnvio.IsNegative() {
		reporte.AgregarCampo("precio_envio", "no puede ser negativo")
	}
	if req.ManoObra.IsNegative() {
		reporte.AgregarCampo("mano_obra", "no puede ser negativa")
	}
	if req.ConDomicilio && (req.Direccion == nil || *req.Direccion == "") {
		reporte.AgregarCampo("direccion", "requerida cuando la venta es con domicilio")
	}

	candidatos, errFilas := pedido.ParseDetalles(req.Referencias, req.Precios, req.Cantidades)
	reporte.Filas = errFilas

	if !reporte.Vacio() {
		return nil, nil, reporte
	}
	if len(candidatos) == 0 {
		return nil, nil, pedido.ErrPedidoVacio
	}

	var direccion *string
	if req.ConDomicilio {
		direccion = req.Direccion
	}

	return &model.Venta{
		ClienteID:    clienteID,
		TipoVenta:    req.TipoVenta,
		FormaPago:    req.FormaPago,
		MedioPago:    req.MedioPago,
		FechaEmision: time.Now().Truncate(24 * time.Hour),
		Descripcion:  req.Descripcion,
		ConDomicilio: req.ConDomicilio,
		Direccion:    direccion,
		PrecioEnvio:  req.PrecioEnvio,
		ManoObra:     req.ManoObra,
		IvaPct:       req.IvaPct,
	}, candidatos, nil
}

func (s *ventaService) resolverDetalles(tx *gorm.DB, candidatos []pedido.Detalle, nombres map[uuid.UUID]string) ([]model.DetalleVenta, error) {
	detalles := make([]model.DetalleVenta, 0, len(candidatos))
	for _, c := range candidatos {
		aid, err := uuid.Parse(c.Referencia)
		if err != nil {
			return nil, &pedido.ErrorReferencia{Referencia: c.Referencia}
		}
		arreglo, err := s.arregloRepo.FindByIDTx(tx, aid)
		if err != nil {
			return nil, &pedido.ErrorReferencia{Referencia: c.Referencia}
		}
		nombres[aid] = arreglo.NombreFlor
		detalles = append(detalles, model.DetalleVenta{
			ArregloID:      aid,
			PrecioUnitario: c.Precio,
			Cantidad:       c.Cantidad,
			Subtotal:       c.Subtotal(),
		})
	}
	return detalles, nil
}

func ventaToResponse(v *model.Venta, nombres map[uuid.UUID]string) *dto.VentaResponse {
	detalles := make([]dto.DetalleVentaResponse, 0, len(v.Detalles))
	for _, det := range v.Detalles {
		nombre := nombres[det.ArregloID]
		if nombre == "" && det.Arreglo != nil {
			nombre = det.Arreglo.NombreFlor
		}
		detalles = append(detalles, dto.DetalleVentaResponse{
			ArregloID:      det.ArregloID.String(),
			Arreglo:        nombre,
			PrecioUnitario: det.PrecioUnitario,
			Cantidad:       det.Cantidad,
			Subtotal:       det.Subtotal,
		})
	}

	cliente := ""
	if v.Cliente != nil {
		cliente = v.Cliente.Nombre + " " + v.Cliente.Apellido
	}

	return &dto.VentaResponse{
		ID:           v.ID.String(),
		ClienteID:    v.ClienteID.String(),
		Cliente:      cliente,
		TipoVenta:    v.TipoVenta,
		FormaPago:    v.FormaPago,
		MedioPago:    v.MedioPago,
		FechaEmision: v.FechaEmision.Format("2006-01-02"),
		Descripcion:  v.Descripcion,
		ConDomicilio: v.ConDomicilio,
		Direccion:    v.Direccion,
		PrecioEnvio:  v.PrecioEnvio,
		ManoObra:     v.ManoObra,
		IvaPct:       v.IvaPct,
		Subtotal:     v.Subtotal,
		IvaTotal:     v.IvaTotal,
		Total:        v.Total,
		Detalles:     detalles,
		CreatedAt:    v.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
