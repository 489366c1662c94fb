package service_test

import (
	"context"
	"testing"

	"floristeria/internal/dto"
	"floristeria/internal/model"
	"floristeria/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func crearClienteRequest() dto.CrearClienteRequest {
	return dto.CrearClienteRequest{
		Documento:     "1020304050",
		TipoDocumento: "CC",
		Nombre:        "Laura",
		Apellido:      "Gomez",
	}
}

func TestCrearCliente_DocumentoDuplicado(t *testing.T) {
	repo := newStubClienteRepo()
	svc := service.NewClienteService(repo, newStubVentaRepo())

	_, err := svc.Crear(context.Background(), crearClienteRequest())
	require.NoError(t, err)

	otro := crearClienteRequest()
	otro.Nombre = "Carlos"
	_, err = svc.Crear(context.Background(), otro)
	assert.ErrorIs(t, err, service.ErrDocumentoDuplicado)
}

func TestActualizarCliente_PermiteMismoDocumento(t *testing.T) {
	repo := newStubClienteRepo()
	svc := service.NewClienteService(repo, newStubVentaRepo())

	creado, err := svc.Crear(context.Background(), crearClienteRequest())
	require.NoError(t, err)

	req := crearClienteRequest()
	req.Nombre = "Laura Maria"
	resp, err := svc.Actualizar(context.Background(), uuid.MustParse(creado.ID), req)
	require.NoError(t, err)
	assert.Equal(t, "Laura Maria", resp.Nombre)
}

func TestEliminarCliente_BloqueadoConVentas(t *testing.T) {
	repo := newStubClienteRepo()
	ventas := newStubVentaRepo()
	svc := service.NewClienteService(repo, ventas)

	creado, err := svc.Crear(context.Background(), crearClienteRequest())
	require.NoError(t, err)
	id := uuid.MustParse(creado.ID)

	require.NoError(t, ventas.Create(context.Background(), nil, &model.Venta{ClienteID: id}))

	err = svc.Eliminar(context.Background(), id)
	assert.ErrorIs(t, err, service.ErrClienteConVentas)
	assert.Contains(t, repo.clientes, id)
}

func TestEliminarCliente_SinVentas(t *testing.T) {
	repo := newStubClienteRepo()
	svc := service.NewClienteService(repo, newStubVentaRepo())

	creado, err := svc.Crear(context.Background(), crearClienteRequest())
	require.NoError(t, err)
	id := uuid.MustParse(creado.ID)

	require.NoError(t, svc.Eliminar(context.Background(), id))
	assert.NotContains(t, repo.clientes, id)
}

func TestEliminarProveedor_BloqueadoConCompras(t *testing.T) {
	proveedores := newStubProveedorRepo()
	compras := newStubCompraRepo()
	svc := service.NewProveedorService(proveedores, compras)

	creado, err := svc.Crear(context.Background(), dto.CrearProveedorRequest{
		TipoDocumento:   "NIT",
		NumeroDocumento: "900123456",
		Nombre:          "Flores del Valle",
	})
	require.NoError(t, err)
	id := uuid.MustParse(creado.ID)

	require.NoError(t, compras.Create(context.Background(), nil, &model.Compra{ProveedorID: id}))

	err = svc.Eliminar(context.Background(), id)
	assert.ErrorIs(t, err, service.ErrProveedorConCompras)
	assert.True(t, proveedores.proveedores[id].Activo)
}

func TestEliminarProveedor_DesactivaSinCompras(t *testing.T) {
	proveedores := newStubProveedorRepo()
	svc := service.NewProveedorService(proveedores, newStubCompraRepo())

	creado, err := svc.Crear(context.Background(), dto.CrearProveedorRequest{
		TipoDocumento:   "CC",
		NumeroDocumento: "79123456",
		Nombre:          "Vivero El Jardin",
	})
	require.NoError(t, err)
	id := uuid.MustParse(creado.ID)

	require.NoError(t, svc.Eliminar(context.Background(), id))

	// Soft delete: the row stays, flagged inactive.
	require.Contains(t, proveedores.proveedores, id)
	assert.False(t, proveedores.proveedores[id].Activo)
}
