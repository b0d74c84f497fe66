package repository

import (
	"site-portal/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AppSettingRepository interface {
	GetAll() ([]model.AppSetting, error)
	GetByKey(key string) (*model.AppSetting, error)
	Upsert(key string, value string) error
}

type appSettingRepository struct {
	db *gorm.DB
}

func NewAppSettingRepository(db *gorm.DB) AppSettingRepository {
	return &appSettingRepository{db}
}

func (r *appSettingRepository) GetAll() ([]model.AppSetting, error) {
	var settings []model.AppSetting
	err := r.db.Find(&settings).Error
	return settings, err
}

func (r *appSettingRepository) GetByKey(key string) (*model.AppSetting, error) {
	var setting model.AppSetting
	err := r.db.Where("setting_key = ?", key).First(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *appSettingRepository) Upsert(key string, value string) error {
	setting := model.AppSetting{SettingKey: key, SettingValue: value}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"setting_value", "updated_at"}),
	}).Create(&setting).Error
}
