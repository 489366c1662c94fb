package repository

import (
	"context"

	"floristeria/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArregloRepository interface {
	Create(ctx context.Context, a *model.Arreglo) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Arreglo, error)
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Arreglo, error)
	List(ctx context.Context) ([]model.Arreglo, error)
	Search(ctx context.Context, nombre string) ([]model.Arreglo, error)
	Update(ctx context.Context, a *model.Arreglo) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type arregloRepo struct{ db *gorm.DB }

func NewArregloRepository(db *gorm.DB) ArregloRepository { return &arregloRepo{db: db} }

func (r *arregloRepo) Create(ctx context.Context, a *model.Arreglo) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *arregloRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Arreglo, error) {
	var a model.Arreglo
	err := r.db.WithContext(ctx).First(&a, id).Error
	return &a, err
}

func (r *arregloRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Arreglo, error) {
	var a model.Arreglo
	err := tx.First(&a, id).Error
	return &a, err
}

// List returns arrangements newest first, matching the management screen.
func (r *arregloRepo) List(ctx context.Context) ([]model.Arreglo, error) {
	var arreglos []model.Arreglo
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&arreglos).Error
	return arreglos, err
}

func (r *arregloRepo) Search(ctx context.Context, nombre string) ([]model.Arreglo, error) {
	var arreglos []model.Arreglo
	err := r.db.WithContext(ctx).
		Where("nombre_flor ILIKE ?", "%"+nombre+"%").
		Order("nombre_flor").Limit(20).
		Find(&arreglos).Error
	return arreglos, err
}

func (r *arregloRepo) Update(ctx context.Context, a *model.Arreglo) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *arregloRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Arreglo{}, id).Error
}
