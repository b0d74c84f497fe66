package repository

import (
	"site-portal/internal/model"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	GetAll(search string) ([]model.Employee, error)
	GetByID(id string) (*model.Employee, error)
	Create(employee *model.Employee) error
	Update(employee *model.Employee) error
	Delete(id string) error
}

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db}
}

func (r *employeeRepository) GetAll(search string) ([]model.Employee, error) {
	var employees []model.Employee
	query := r.db.Order("name")

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name LIKE ? OR position LIKE ? OR unit LIKE ?", pattern, pattern, pattern)
	}

	err := query.Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) GetByID(id string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.Where("id = ?", id).First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) Create(employee *model.Employee) error {
	return r.db.Create(employee).Error
}

func (r *employeeRepository) Update(employee *model.Employee) error {
	return r.db.Save(employee).Error
}

func (r *employeeRepository) Delete(id string) error {
	// Hard delete, tanpa cascade: record absensi milik karyawan ini dibiarkan (yatim)
	return r.db.Where("id = ?", id).Delete(&model.Employee{}).Error
}
