package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FieldCoordinator struct {
	ID        string    `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	PhotoURL  string    `json:"photo_url" gorm:"type:longtext"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *FieldCoordinator) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

type FieldFacilitator struct {
	ID            string    `json:"id" gorm:"type:char(36);primaryKey"`
	FCID          string    `json:"fc_id" gorm:"type:char(36);index;not null"`
	Name          string    `json:"name" gorm:"not null"`
	NIK           string    `json:"nik" gorm:"column:nik"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	BirthPlace    string    `json:"birth_place"`
	BirthDate     string    `json:"birth_date"` // Format YYYY-MM-DD
	AccountNumber string    `json:"account_number"`
	BankName      string    `json:"bank_name"`
	AccountHolder string    `json:"account_holder"`
	Username      string    `json:"username"`
	Password      string    `json:"-"`
	PhotoURL      string    `json:"photo_url" gorm:"type:longtext"`
	CreatedAt     time.Time `json:"created_at"`

	FieldCoordinator *FieldCoordinator `json:"field_coordinators,omitempty" gorm:"foreignKey:FCID"`
}

func (f *FieldFacilitator) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
