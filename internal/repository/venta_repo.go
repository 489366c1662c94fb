package repository

import (
	"context"

	"floristeria/internal/dto"
	"floristeria/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VentaRepository mirrors CompraRepository for the sales side.
type VentaRepository interface {
	Create(ctx context.Context, tx *gorm.DB, v *model.Venta) error
	CreateDetalles(ctx context.Context, tx *gorm.DB, detalles []model.DetalleVenta) error
	DeleteDetalles(ctx context.Context, tx *gorm.DB, ventaID uuid.UUID) error
	UpdateTotales(ctx context.Context, tx *gorm.DB, v *model.Venta) error
	UpdateHeader(ctx context.Context, tx *gorm.DB, v *model.Venta) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error)
	List(ctx context.Context, filter dto.VentaFilter) ([]model.Venta, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountByCliente(ctx context.Context, clienteID uuid.UUID) (int64, error)
	DB() *gorm.DB
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) DB() *gorm.DB { return r.db }

func (r *ventaRepo) Create(ctx context.Context, tx *gorm.DB, v *model.Venta) error {
	return tx.WithContext(ctx).Omit("Detalles", "Cliente").Create(v).Error
}

func (r *ventaRepo) CreateDetalles(ctx context.Context, tx *gorm.DB, detalles []model.DetalleVenta) error {
	return tx.WithContext(ctx).Omit("Arreglo").Create(&detalles).Error
}

func (r *ventaRepo) DeleteDetalles(ctx context.Context, tx *gorm.DB, ventaID uuid.UUID) error {
	return tx.WithContext(ctx).Where("venta_id = ?", ventaID).Delete(&model.DetalleVenta{}).Error
}

func (r *ventaRepo) UpdateTotales(ctx context.Context, tx *gorm.DB, v *model.Venta) error {
	return tx.WithContext(ctx).Model(&model.Venta{}).Where("id = ?", v.ID).
		Updates(map[string]interface{}{
			"subtotal":  v.Subtotal,
			"iva_total": v.IvaTotal,
			"total":     v.Total,
		}).Error
}

func (r *ventaRepo) UpdateHeader(ctx context.Context, tx *gorm.DB, v *model.Venta) error {
	return tx.WithContext(ctx).Omit("Detalles", "Cliente").Save(v).Error
}

func (r *ventaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).Preload("Detalles.Arreglo").Preload("Cliente").First(&v, id).Error
	return &v, err
}

func (r *ventaRepo) List(ctx context.Context, filter dto.VentaFilter) ([]model.Venta, int64, error) {
	var ventas []model.Venta
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Venta{})
	if filter.ClienteID != "" {
		q = q.Where("cliente_id = ?", filter.ClienteID)
	}
	if filter.Fecha != "" {
		q = q.Where("fecha_emision = ?", filter.Fecha)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Detalles.Arreglo").Preload("Cliente").
		Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&ventas).Error

	return ventas, total, err
}

func (r *ventaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Select("Detalles").Delete(&model.Venta{ID: id}).Error
}

func (r *ventaRepo) CountByCliente(ctx context.Context, clienteID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Venta{}).Where("cliente_id = ?", clienteID).Count(&n).Error
	return n, err
}
