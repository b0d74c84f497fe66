package repository

import (
	"site-portal/internal/model"

	"gorm.io/gorm"
)

type FacilitatorRepository interface {
	GetCoordinators() ([]model.FieldCoordinator, error)
	UpdateCoordinator(coordinator *model.FieldCoordinator) error
	GetFacilitators(fcID string) ([]model.FieldFacilitator, error)
	GetAllFacilitators() ([]model.FieldFacilitator, error)
	CreateFacilitator(facilitator *model.FieldFacilitator) error
	CreateManyFacilitators(facilitators []model.FieldFacilitator) error
	UpdateFacilitator(facilitator *model.FieldFacilitator) error
	DeleteFacilitator(id string) error
}

type facilitatorRepository struct {
	db *gorm.DB
}

func NewFacilitatorRepository(db *gorm.DB) FacilitatorRepository {
	return &facilitatorRepository{db}
}

func (r *facilitatorRepository) GetCoordinators() ([]model.FieldCoordinator, error) {
	var coordinators []model.FieldCoordinator
	err := r.db.Order("name").Find(&coordinators).Error
	return coordinators, err
}

func (r *facilitatorRepository) UpdateCoordinator(coordinator *model.FieldCoordinator) error {
	return r.db.Save(coordinator).Error
}

func (r *facilitatorRepository) GetFacilitators(fcID string) ([]model.FieldFacilitator, error) {
	var facilitators []model.FieldFacilitator
	err := r.db.Preload("FieldCoordinator").
		Where("fc_id = ?", fcID).
		Order("name").Limit(100).Find(&facilitators).Error
	return facilitators, err
}

func (r *facilitatorRepository) GetAllFacilitators() ([]model.FieldFacilitator, error) {
	var facilitators []model.FieldFacilitator
	err := r.db.Preload("FieldCoordinator").Order("name").Limit(500).Find(&facilitators).Error
	return facilitators, err
}

func (r *facilitatorRepository) CreateFacilitator(facilitator *model.FieldFacilitator) error {
	return r.db.Create(facilitator).Error
}

func (r *facilitatorRepository) CreateManyFacilitators(facilitators []model.FieldFacilitator) error {
	return r.db.Create(&facilitators).Error
}

func (r *facilitatorRepository) UpdateFacilitator(facilitator *model.FieldFacilitator) error {
	return r.db.Save(facilitator).Error
}

func (r *facilitatorRepository) DeleteFacilitator(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.FieldFacilitator{}).Error
}
