package repository

import (
	"context"

	"floristeria/internal/dto"
	"floristeria/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompraRepository persists purchase headers and their detalles. The tx
// parameter lets the service own the transaction boundary: header, lines
// and derived totals are written as one atomic unit.
type CompraRepository interface {
	Create(ctx context.Context, tx *gorm.DB, c *model.Compra) error
	CreateDetalles(ctx context.Context, tx *gorm.DB, detalles []model.DetalleCompra) error
	DeleteDetalles(ctx context.Context, tx *gorm.DB, compraID uuid.UUID) error
	UpdateTotales(ctx context.Context, tx *gorm.DB, c *model.Compra) error
	UpdateHeader(ctx context.Context, tx *gorm.DB, c *model.Compra) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Compra, error)
	List(ctx context.Context, filter dto.CompraFilter) ([]model.Compra, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountByProveedor(ctx context.Context, proveedorID uuid.UUID) (int64, error)
	DB() *gorm.DB // exposes the DB for transaction creation in the service layer
}

type compraRepo struct{ db *gorm.DB }

func NewCompraRepository(db *gorm.DB) CompraRepository { return &compraRepo{db: db} }

func (r *compraRepo) DB() *gorm.DB { return r.db }

func (r *compraRepo) Create(ctx context.Context, tx *gorm.DB, c *model.Compra) error {
	// Detalles are inserted separately; Omit prevents gorm from
	// cascade-creating them out of order.
	return tx.WithContext(ctx).Omit("Detalles", "Proveedor").Create(c).Error
}

func (r *compraRepo) CreateDetalles(ctx context.Context, tx *gorm.DB, detalles []model.DetalleCompra) error {
	return tx.WithContext(ctx).Omit("Producto").Create(&detalles).Error
}

func (r *compraRepo) DeleteDetalles(ctx context.Context, tx *gorm.DB, compraID uuid.UUID) error {
	return tx.WithContext(ctx).Where("compra_id = ?", compraID).Delete(&model.DetalleCompra{}).Error
}

func (r *compraRepo) UpdateTotales(ctx context.Context, tx *gorm.DB, c *model.Compra) error {
	return tx.WithContext(ctx).Model(&model.Compra{}).Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"subtotal":        c.Subtotal,
			"descuento_total": c.DescuentoTotal,
			"total":           c.Total,
		}).Error
}

func (r *compraRepo) UpdateHeader(ctx context.Context, tx *gorm.DB, c *model.Compra) error {
	return tx.WithContext(ctx).Omit("Detalles", "Proveedor").Save(c).Error
}

func (r *compraRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Compra, error) {
	var c model.Compra
	err := r.db.WithContext(ctx).Preload("Detalles.Producto").Preload("Proveedor").First(&c, id).Error
	return &c, err
}

func (r *compraRepo) List(ctx context.Context, filter dto.CompraFilter) ([]model.Compra, int64, error) {
	var compras []model.Compra
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Compra{})
	if filter.ProveedorID != "" {
		q = q.Where("proveedor_id = ?", filter.ProveedorID)
	}
	if filter.Fecha != "" {
		q = q.Where("fecha_emision = ?", filter.Fecha)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Detalles.Producto").Preload("Proveedor").
		Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&compras).Error

	return compras, total, err
}

func (r *compraRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// Detalles cascade with the header.
	return r.db.WithContext(ctx).Select("Detalles").Delete(&model.Compra{ID: id}).Error
}

func (r *compraRepo) CountByProveedor(ctx context.Context, proveedorID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Compra{}).Where("proveedor_id = ?", proveedorID).Count(&n).Error
	return n, err
}
