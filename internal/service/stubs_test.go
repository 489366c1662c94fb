package service_test

import (
	"context"
	"errors"

	"floristeria/internal/dto"
	"floristeria/internal/model"
	"floristeria/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubCompraRepo is an in-memory CompraRepository. DB() returns nil so the
// service runs its transaction closure directly.
type stubCompraRepo struct {
	compras  map[uuid.UUID]*model.Compra
	detalles map[uuid.UUID][]model.DetalleCompra
}

func newStubCompraRepo() *stubCompraRepo {
	return &stubCompraRepo{
		compras:  make(map[uuid.UUID]*model.Compra),
		detalles: make(map[uuid.UUID][]model.DetalleCompra),
	}
}

func (r *stubCompraRepo) Create(_ context.Context, _ *gorm.DB, c *model.Compra) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	copia := *c
	r.compras[c.ID] = &copia
	return nil
}

func (r *stubCompraRepo) CreateDetalles(_ context.Context, _ *gorm.DB, detalles []model.DetalleCompra) error {
	for i := range detalles {
		if detalles[i].ID == uuid.Nil {
			detalles[i].ID = uuid.New()
		}
		r.detalles[detalles[i].CompraID] = append(r.detalles[detalles[i].CompraID], detalles[i])
	}
	return nil
}

func (r *stubCompraRepo) DeleteDetalles(_ context.Context, _ *gorm.DB, compraID uuid.UUID) error {
	delete(r.detalles, compraID)
	return nil
}

func (r *stubCompraRepo) UpdateTotales(_ context.Context, _ *gorm.DB, c *model.Compra) error {
	stored, ok := r.compras[c.ID]
	if !ok {
		return errors.New("not found")
	}
	stored.Subtotal = c.Subtotal
	stored.DescuentoTotal = c.DescuentoTotal
	stored.Total = c.Total
	return nil
}

func (r *stubCompraRepo) UpdateHeader(_ context.Context, _ *gorm.DB, c *model.Compra) error {
	copia := *c
	r.compras[c.ID] = &copia
	return nil
}

func (r *stubCompraRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Compra, error) {
	c, ok := r.compras[id]
	if !ok {
		return nil, errors.New("not found")
	}
	copia := *c
	copia.Detalles = r.detalles[id]
	return &copia, nil
}

func (r *stubCompraRepo) List(_ context.Context, _ dto.CompraFilter) ([]model.Compra, int64, error) {
	out := make([]model.Compra, 0, len(r.compras))
	for id, c := range r.compras {
		copia := *c
		copia.Detalles = r.detalles[id]
		out = append(out, copia)
	}
	return out, int64(len(out)), nil
}

func (r *stubCompraRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.compras, id)
	delete(r.detalles, id)
	return nil
}

func (r *stubCompraRepo) CountByProveedor(_ context.Context, proveedorID uuid.UUID) (int64, error) {
	var n int64
	for _, c := range r.compras {
		if c.ProveedorID == proveedorID {
			n++
		}
	}
	return n, nil
}

func (r *stubCompraRepo) DB() *gorm.DB { return nil }

var _ repository.CompraRepository = (*stubCompraRepo)(nil)

// stubVentaRepo mirrors stubCompraRepo for ventas.
type stubVentaRepo struct {
	ventas   map[uuid.UUID]*model.Venta
	detalles map[uuid.UUID][]model.DetalleVenta
}

func newStubVentaRepo() *stubVentaRepo {
	return &stubVentaRepo{
		ventas:   make(map[uuid.UUID]*model.Venta),
		detalles: make(map[uuid.UUID][]model.DetalleVenta),
	}
}

func (r *stubVentaRepo) Create(_ context.Context, _ *gorm.DB, v *model.Venta) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	copia := *v
	r.ventas[v.ID] = &copia
	return nil
}

func (r *stubVentaRepo) CreateDetalles(_ context.Context, _ *gorm.DB, detalles []model.DetalleVenta) error {
	for i := range detalles {
		if detalles[i].ID == uuid.Nil {
			detalles[i].ID = uuid.New()
		}
		r.detalles[detalles[i].VentaID] = append(r.detalles[detalles[i].VentaID], detalles[i])
	}
	return nil
}

func (r *stubVentaRepo) DeleteDetalles(_ context.Context, _ *gorm.DB, ventaID uuid.UUID) error {
	delete(r.detalles, ventaID)
	return nil
}

func (r *stubVentaRepo) UpdateTotales(_ context.Context, _ *gorm.DB, v *model.Venta) error {
	stored, ok := r.ventas[v.ID]
	if !ok {
		return errors.New("not found")
	}
	stored.Subtotal = v.Subtotal
	stored.IvaTotal = v.IvaTotal
	stored.Total = v.Total
	return nil
}

func (r *stubVentaRepo) UpdateHeader(_ context.Context, _ *gorm.DB, v *model.Venta) error {
	copia := *v
	r.ventas[v.ID] = &copia
	return nil
}

func (r *stubVentaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venta, error) {
	v, ok := r.ventas[id]
	if !ok {
		return nil, errors.New("not found")
	}
	copia := *v
	copia.Detalles = r.detalles[id]
	return &copia, nil
}

func (r *stubVentaRepo) List(_ context.Context, _ dto.VentaFilter) ([]model.Venta, int64, error) {
	out := make([]model.Venta, 0, len(r.ventas))
	for id, v := range r.ventas {
		copia := *v
		copia.Detalles = r.detalles[id]
		out = append(out, copia)
	}
	return out, int64(len(out)), nil
}

func (r *stubVentaRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.ventas, id)
	delete(r.detalles, id)
	return nil
}

func (r *stubVentaRepo) CountByCliente(_ context.Context, clienteID uuid.UUID) (int64, error) {
	var n int64
	for _, v := range r.ventas {
		if v.ClienteID == clienteID {
			n++
		}
	}
	return n, nil
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

var _ repository.VentaRepository = (*stubVentaRepo)(nil)

// stubProveedorRepo keeps proveedores in memory.
type stubProveedorRepo struct {
	proveedores map[uuid.UUID]*model.Proveedor
}

func newStubProveedorRepo() *stubProveedorRepo {
	return &stubProveedorRepo{proveedores: make(map[uuid.UUID]*model.Proveedor)}
}

func (r *stubProveedorRepo) Create(_ context.Context, p *model.Proveedor) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.proveedores[p.ID] = p
	return nil
}

func (r *stubProveedorRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Proveedor, error) {
	p, ok := r.proveedores[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return p, nil
}

func (r *stubProveedorRepo) List(_ context.Context) ([]model.Proveedor, error) {
	out := make([]model.Proveedor, 0, len(r.proveedores))
	for _, p := range r.proveedores {
		if p.Activo {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProveedorRepo) Update(_ context.Context, p *model.Proveedor) error {
	r.proveedores[p.ID] = p
	return nil
}

func (r *stubProveedorRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	p, ok := r.proveedores[id]
	if !ok {
		return errors.New("not found")
	}
	p.Activo = false
	return nil
}

var _ repository.ProveedorRepository = (*stubProveedorRepo)(nil)

// stubProductoRepo keeps catalog products in memory.
type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return p, nil
}

func (r *stubProductoRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return p, nil
}

func (r *stubProductoRepo) List(_ context.Context, categoria string) ([]model.Producto, error) {
	out := make([]model.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		if categoria == "" || p.Categoria == categoria {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductoRepo) Search(_ context.Context, _ string) ([]model.Producto, error) {
	out := make([]model.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.productos, id)
	return nil
}

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// stubClienteRepo keeps clientes in memory with a documento index.
type stubClienteRepo struct {
	clientes map[uuid.UUID]*model.Cliente
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uuid.UUID]*model.Cliente)}
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return c, nil
}

func (r *stubClienteRepo) FindByDocumento(_ context.Context, documento string) (*model.Cliente, error) {
	for _, c := range r.clientes {
		if c.Documento == documento {
			return c, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubClienteRepo) List(_ context.Context) ([]model.Cliente, error) {
	out := make([]model.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubClienteRepo) Search(_ context.Context, _ string) ([]model.Cliente, error) {
	return r.List(context.Background())
}

func (r *stubClienteRepo) Update(_ context.Context, c *model.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.clientes, id)
	return nil
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

// stubArregloRepo keeps arreglos in memory.
type stubArregloRepo struct {
	arreglos map[uuid.UUID]*model.Arreglo
}

func newStubArregloRepo() *stubArregloRepo {
	return &stubArregloRepo{arreglos: make(map[uuid.UUID]*model.Arreglo)}
}

func (r *stubArregloRepo) Create(_ context.Context, a *model.Arreglo) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.arreglos[a.ID] = a
	return nil
}

func (r *stubArregloRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Arreglo, error) {
	a, ok := r.arreglos[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return a, nil
}

func (r *stubArregloRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Arreglo, error) {
	a, ok := r.arreglos[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return a, nil
}

func (r *stubArregloRepo) List(_ context.Context) ([]model.Arreglo, error) {
	out := make([]model.Arreglo, 0, len(r.arreglos))
	for _, a := range r.arreglos {
		out = append(out, *a)
	}
	return out, nil
}

func (r *stubArregloRepo) Search(_ context.Context, _ string) ([]model.Arreglo, error) {
	return r.List(context.Background())
}

func (r *stubArregloRepo) Update(_ context.Context, a *model.Arreglo) error {
	r.arreglos[a.ID] = a
	return nil
}

func (r *stubArregloRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.arreglos, id)
	return nil
}

var _ repository.ArregloRepository = (*stubArregloRepo)(nil)

// stubUsuarioRepo records the perfil handed to CreateConPerfil so tests can
// assert both rows were written together.
type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
	perfiles map[uuid.UUID]*model.Perfil // keyed by UsuarioID
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{
		usuarios: make(map[uuid.UUID]*model.Usuario),
		perfiles: make(map[uuid.UUID]*model.Perfil),
	}
}

func (r *stubUsuarioRepo) CreateConPerfil(_ context.Context, u *model.Usuario, p *model.Perfil) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.UsuarioID = u.ID
	r.usuarios[u.ID] = u
	r.perfiles[u.ID] = p
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, errors.New("not found")
	}
	u.Perfil = r.perfiles[id]
	return u, nil
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	for id, u := range r.usuarios {
		if u.Username == username {
			u.Perfil = r.perfiles[id]
			return u, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		if u.Activo {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUsuarioRepo) ListAll(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) UpdatePerfil(_ context.Context, p *model.Perfil) error {
	r.perfiles[p.UsuarioID] = p
	return nil
}

func (r *stubUsuarioRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	u, ok := r.usuarios[id]
	if !ok {
		return errors.New("not found")
	}
	u.Activo = false
	return nil
}

func (r *stubUsuarioRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	u, ok := r.usuarios[id]
	if !ok {
		return errors.New("not found")
	}
	u.Activo = true
	return nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

// stubEncolador records receipt enqueue calls.
type stubEncolador struct {
	encolados []uuid.UUID
}

func (e *stubEncolador) EnqueueRecibo(_ context.Context, ventaID uuid.UUID) error {
	e.encolados = append(e.encolados, ventaID)
	return nil
}
