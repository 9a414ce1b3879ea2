package repositories

import (
	"gorm.io/gorm"

	"smartparker-api/models"
	"smartparker-api/specifications"
)

type PatioRepository struct {
	db *gorm.DB
}

func NewPatioRepository(db *gorm.DB) *PatioRepository {
	return &PatioRepository{db: db}
}

func (r *PatioRepository) FindByID(id uint) (*models.Patio, error) {
	var patio models.Patio
	if err := r.db.First(&patio, id).Error; err != nil {
		return nil, err
	}
	return &patio, nil
}

func (r *PatioRepository) FindAll(spec specifications.Specification, page PageRequest) ([]models.Patio, int64, error) {
	var total int64
	if err := spec.Apply(r.db.Model(&models.Patio{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var patios []models.Patio
	err := spec.Apply(r.db).
		Order(page.Order("nome")).
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&patios).Error
	return patios, total, err
}

func (r *PatioRepository) Save(patio *models.Patio) error {
	return r.db.Save(patio).Error
}

func (r *PatioRepository) DeleteByID(id uint) error {
	return r.db.Delete(&models.Patio{}, id).Error
}
