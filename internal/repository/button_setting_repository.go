package repository

import (
	"site-portal/internal/model"

	"gorm.io/gorm"
)

type ButtonSettingRepository interface {
	GetAll(category string, enabledOnly bool) ([]model.ButtonSetting, error)
	GetByID(id string) (*model.ButtonSetting, error)
	UpdateEnabled(id string, isEnabled bool) error
}

type buttonSettingRepository struct {
	db *gorm.DB
}

func NewButtonSettingRepository(db *gorm.DB) ButtonSettingRepository {
	return &buttonSettingRepository{db}
}

func (r *buttonSettingRepository) GetAll(category string, enabledOnly bool) ([]model.ButtonSetting, error) {
	var buttons []model.ButtonSetting
	query := r.db.Order("category, button_name")

	if category != "" {
		query = query.Where("category = ?", category)
	}
	if enabledOnly {
		query = query.Where("is_enabled = ?", true)
	}

	err := query.Find(&buttons).Error
	return buttons, err
}

func (r *buttonSettingRepository) GetByID(id string) (*model.ButtonSetting, error) {
	var button model.ButtonSetting
	err := r.db.Where("id = ?", id).First(&button).Error
	if err != nil {
		return nil, err
	}
	return &button, nil
}

func (r *buttonSettingRepository) UpdateEnabled(id string, isEnabled bool) error {
	return r.db.Model(&model.ButtonSetting{}).Where("id = ?", id).
		Update("is_enabled", isEnabled).Error
}
