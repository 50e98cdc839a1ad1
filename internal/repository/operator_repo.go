package repository

import (
	"go-pix-ranking/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OperatorRepository interface {
	Create(operator *model.Operator) error
	Update(operator *model.Operator) error
	Delete(id uuid.UUID) error
	FindByID(id uuid.UUID) (*model.Operator, error)
	FindAll(limit, skip int) ([]model.Operator, error)
	Count() (int64, error)
	FindByRegistration(registration string) (*model.Operator, error)
	// FindByRegistrations resolves ledger rows in one round trip instead of
	// one lookup per row.
	FindByRegistrations(registrations []string) ([]model.Operator, error)
}

type operatorRepo struct {
	db *gorm.DB
}

func NewOperatorRepo(db *gorm.DB) OperatorRepository {
	return &operatorRepo{db}
}

func (r *operatorRepo) Create(operator *model.Operator) error {
	return r.db.Create(operator).Error
}

func (r *operatorRepo) Update(operator *model.Operator) error {
	return r.db.Save(operator).Error
}

func (r *operatorRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Operator{}, "id = ?", id).Error
}

func (r *operatorRepo) FindByID(id uuid.UUID) (*model.Operator, error) {
	var operator model.Operator
	if err := r.db.First(&operator, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &operator, nil
}

func (r *operatorRepo) FindAll(limit, skip int) ([]model.Operator, error) {
	var operators []model.Operator
	err := r.db.Order("created_at DESC").Limit(limit).Offset(skip).Find(&operators).Error
	return operators, err
}

func (r *operatorRepo) Count() (int64, error) {
	var total int64
	err := r.db.Model(&model.Operator{}).Count(&total).Error
	return total, err
}

func (r *operatorRepo) FindByRegistration(registration string) (*model.Operator, error) {
	var operator model.Operator
	if err := r.db.First(&operator, "registration_number = ?", registration).Error; err != nil {
		return nil, err
	}
	return &operator, nil
}

func (r *operatorRepo) FindByRegistrations(registrations []string) ([]model.Operator, error) {
	if len(registrations) == 0 {
		return nil, nil
	}
	var operators []model.Operator
	err := r.db.Where("registration_number IN ?", registrations).Find(&operators).Error
	return operators, err
}
