package repositories

import (
	"gorm.io/gorm"

	"smartparker-api/models"
	"smartparker-api/specifications"
)

type MotoRepository struct {
	db *gorm.DB
}

func NewMotoRepository(db *gorm.DB) *MotoRepository {
	return &MotoRepository{db: db}
}

func (r *MotoRepository) FindByID(id uint) (*models.Moto, error) {
	var moto models.Moto
	if err := r.db.First(&moto, id).Error; err != nil {
		return nil, err
	}
	return &moto, nil
}

func (r *MotoRepository) FindAll(spec specifications.Specification, page PageRequest) ([]models.Moto, int64, error) {
	var total int64
	if err := spec.Apply(r.db.Model(&models.Moto{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var motos []models.Moto
	err := spec.Apply(r.db).
		Order(page.Order("nome")).
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&motos).Error
	return motos, total, err
}

// Save inserts when the moto has no id and updates in place otherwise.
func (r *MotoRepository) Save(moto *models.Moto) error {
	return r.db.Save(moto).Error
}

// DeleteByID succeeds even when the row is already gone.
func (r *MotoRepository) DeleteByID(id uint) error {
	return r.db.Delete(&models.Moto{}, id).Error
}
