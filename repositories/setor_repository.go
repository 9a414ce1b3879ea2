package repositories

import (
	"gorm.io/gorm"

	"smartparker-api/models"
	"smartparker-api/specifications"
)

type SetorRepository struct {
	db *gorm.DB
}

func NewSetorRepository(db *gorm.DB) *SetorRepository {
	return &SetorRepository{db: db}
}

func (r *SetorRepository) FindByID(id uint) (*models.Setor, error) {
	var setor models.Setor
	if err := r.db.Preload("Patio").First(&setor, id).Error; err != nil {
		return nil, err
	}
	return &setor, nil
}

func (r *SetorRepository) FindAll(spec specifications.Specification, page PageRequest) ([]models.Setor, int64, error) {
	var total int64
	if err := spec.Apply(r.db.Model(&models.Setor{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var setores []models.Setor
	err := spec.Apply(r.db.Preload("Patio")).
		Order(page.Order("nome")).
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&setores).Error
	return setores, total, err
}

// Save persists the setor itself; the referenced pátio is resolved by the
// caller and never written through here.
func (r *SetorRepository) Save(setor *models.Setor) error {
	return r.db.Omit("Patio").Save(setor).Error
}

func (r *SetorRepository) DeleteByID(id uint) error {
	return r.db.Delete(&models.Setor{}, id).Error
}
