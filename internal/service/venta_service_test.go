package service_test

import (
	"context"
	"errors"
	"testing"

	"floristeria/internal/dto"
	"floristeria/internal/model"
	"floristeria/internal/pedido"
	"floristeria/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ service.ReciboEncolador = (*stubEncolador)(nil)

type ventaFixture struct {
	svc       service.VentaService
	repo      *stubVentaRepo
	clientes  *stubClienteRepo
	arreglos  *stubArregloRepo
	encolador *stubEncolador
	clienteID uuid.UUID
	ramo      uuid.UUID
	corona    uuid.UUID
}

func newVentaFixture(t *testing.T) *ventaFixture {
	t.Helper()
	repo := newStubVentaRepo()
	clientes := newStubClienteRepo()
	arreglos := newStubArregloRepo()
	encolador := &stubEncolador{}

	cliente := &model.Cliente{Documento: "1020304050", TipoDocumento: "CC", Nombre: "Laura", Apellido: "Gomez"}
	require.NoError(t, clientes.Create(context.Background(), cliente))

	ramo := &model.Arreglo{NombreFlor: "Ramo de girasoles", TipoProducto: "ramo", Precio: d("100")}
	corona := &model.Arreglo{NombreFlor: "Corona fucsia", TipoProducto: "corona", Precio: d("50")}
	require.NoError(t, arreglos.Create(context.Background(), ramo))
	require.NoError(t, arreglos.Create(context.Background(), corona))

	return &ventaFixture{
		svc:       service.NewVentaService(repo, clientes, arreglos, encolador),
		repo:      repo,
		clientes:  clientes,
		arreglos:  arreglos,
		encolador: encolador,
		clienteID: cliente.ID,
		ramo:      ramo.ID,
		corona:    corona.ID,
	}
}

func (f *ventaFixture) baseRequest() dto.CrearVentaRequest {
	direccion := "Calle 45 #12-34"
	return dto.CrearVentaRequest{
		ClienteID:    f.clienteID.String(),
		TipoVenta:    "BP",
		FormaPago:    "nequi",
		MedioPago:    model.PagoTransferencia,
		ConDomicilio: true,
		Direccion:    &direccion,
		PrecioEnvio:  d("30"),
		ManoObra:     d("30"),
		IvaPct:       d("19"),
		Referencias:  []string{f.ramo.String(), f.corona.String()},
		Precios:      []string{"100", "50"},
		Cantidades:   []string{"1", "1"},
	}
}

func TestCrearVenta_CalculaTotalesConIva(t *testing.T) {
	f := newVentaFixture(t)

	resp, err := f.svc.Crear(context.Background(), f.baseRequest())
	require.NoError(t, err)

	// Detalles 150 + mano de obra 30 + envio 30 = 210; IVA 19% = 39.90.
	assert.True(t, resp.Subtotal.Equal(d("210")), "subtotal = %s", resp.Subtotal)
	assert.True(t, resp.IvaTotal.Equal(d("39.90")), "iva = %s", resp.IvaTotal)
	assert.True(t, resp.Total.Equal(d("249.90")), "total = %s", resp.Total)
	assert.Len(t, resp.Detalles, 2)

	// Receipt queued once the sale committed.
	require.Len(t, f.encolador.encolados, 1)
	assert.Equal(t, resp.ID, f.encolador.encolados[0].String())
}

func TestCrearVenta_SinDomicilioIgnoraEnvio(t *testing.T) {
	f := newVentaFixture(t)

	req := f.baseRequest()
	req.ConDomicilio = false
	req.Direccion = nil

	resp, err := f.svc.Crear(context.Background(), req)
	require.NoError(t, err)

	// 150 + 30 de mano de obra; el envio queda fuera de la base.
	assert.True(t, resp.Subtotal.Equal(d("180")), "subtotal = %s", resp.Subtotal)
	assert.True(t, resp.Total.Equal(d("214.20")), "total = %s", resp.Total)
	assert.Nil(t, resp.Direccion)
}

func TestCrearVenta_IvaFueraDelConjunto(t *testing.T) {
	f := newVentaFixture(t)

	req := f.baseRequest()
	req.IvaPct = d("16")

	_, err := f.svc.Crear(context.Background(), req)
	var reporte *pedido.ReporteValidacion
	require.True(t, errors.As(err, &reporte))
	assert.Contains(t, reporte.Campos, "iva_pct")
	assert.Empty(t, f.repo.ventas)
	assert.Empty(t, f.encolador.encolados)
}

func TestCrearVenta_DomicilioSinDireccion(t *testing.T) {
	f := newVentaFixture(t)

	req := f.baseRequest()
	req.Direccion = nil

	_, err := f.svc.Crear(context.Background(), req)
	var reporte *pedido.ReporteValidacion
	require.True(t, errors.As(err, &reporte))
	assert.Contains(t, reporte.Campos, "direccion")
}

func TestCrearVenta_ArregloInexistenteAbortaTodo(t *testing.T) {
	f := newVentaFixture(t)

	req := f.baseRequest()
	req.Referencias = []string{f.ramo.String(), uuid.NewString()}

	_, err := f.svc.Crear(context.Background(), req)
	var refErr *pedido.ErrorReferencia
	require.True(t, errors.As(err, &refErr))
	assert.Empty(t, f.repo.ventas)
	assert.Empty(t, f.repo.detalles)
	assert.Empty(t, f.encolador.encolados)
}

func TestCrearVenta_ClienteInexistente(t *testing.T) {
	f := newVentaFixture(t)

	req := f.baseRequest()
	req.ClienteID = uuid.NewString()

	_, err := f.svc.Crear(context.Background(), req)
	var refErr *pedido.ErrorReferencia
	require.True(t, errors.As(err, &refErr))
	assert.Empty(t, f.repo.ventas)
}

func TestCrearVenta_SinDetalles(t *testing.T) {
	f := newVentaFixture(t)

	req := f.baseRequest()
	req.Referencias = []string{""}
	req.Precios = []string{""}
	req.Cantidades = []string{""}

	_, err := f.svc.Crear(context.Background(), req)
	require.ErrorIs(t, err, pedido.ErrPedidoVacio)
	assert.Empty(t, f.repo.ventas)
}

func TestActualizarVenta_ReemplazaDetallesYRecalcula(t *testing.T) {
	f := newVentaFixture(t)

	creada, err := f.svc.Crear(context.Background(), f.baseRequest())
	require.NoError(t, err)
	id := uuid.MustParse(creada.ID)

	req := f.baseRequest()
	req.ConDomicilio = false
	req.Direccion = nil
	req.ManoObra = decimal.Zero
	req.IvaPct = decimal.Zero
	req.Referencias = []string{f.corona.String()}
	req.Precios = []string{"33,33"}
	req.Cantidades = []string{"3"}

	resp, err := f.svc.Actualizar(context.Background(), id, req)
	require.NoError(t, err)
	assert.Len(t, resp.Detalles, 1)
	assert.True(t, resp.Subtotal.Equal(d("99.99")), "subtotal = %s", resp.Subtotal)
	assert.True(t, resp.IvaTotal.Equal(decimal.Zero))
	assert.True(t, resp.Total.Equal(d("99.99")))

	guardada, err := f.repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Len(t, guardada.Detalles, 1)
	assert.True(t, guardada.Total.Equal(d("99.99")))
}

func TestCrearVenta_TotalesIdempotentes(t *testing.T) {
	f := newVentaFixture(t)

	resp, err := f.svc.Crear(context.Background(), f.baseRequest())
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	guardada, err := f.repo.FindByID(context.Background(), id)
	require.NoError(t, err)

	antes := guardada.Total
	guardada.RecalcularTotales()
	assert.True(t, guardada.Total.Equal(antes))
	guardada.RecalcularTotales()
	assert.True(t, guardada.Total.Equal(antes))
}
