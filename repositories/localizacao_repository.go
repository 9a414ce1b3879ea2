package repositories

import (
	"gorm.io/gorm"

	"smartparker-api/models"
	"smartparker-api/specifications"
)

type LocalizacaoRepository struct {
	db *gorm.DB
}

func NewLocalizacaoRepository(db *gorm.DB) *LocalizacaoRepository {
	return &LocalizacaoRepository{db: db}
}

func (r *LocalizacaoRepository) FindByID(id uint) (*models.LocalizacaoMoto, error) {
	var localizacao models.LocalizacaoMoto
	if err := r.db.Preload("Moto").Preload("Setor").First(&localizacao, id).Error; err != nil {
		return nil, err
	}
	return &localizacao, nil
}

// FindByMotoID returns the location record of a single moto.
func (r *LocalizacaoRepository) FindByMotoID(motoID uint) (*models.LocalizacaoMoto, error) {
	var localizacao models.LocalizacaoMoto
	err := r.db.Preload("Moto").Preload("Setor").
		Where("moto_id = ?", motoID).
		First(&localizacao).Error
	if err != nil {
		return nil, err
	}
	return &localizacao, nil
}

func (r *LocalizacaoRepository) FindAll(spec specifications.Specification, page PageRequest) ([]models.LocalizacaoMoto, int64, error) {
	var total int64
	if err := spec.Apply(r.db.Model(&models.LocalizacaoMoto{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var localizacoes []models.LocalizacaoMoto
	err := spec.Apply(r.db.Preload("Moto").Preload("Setor")).
		Order(page.Order("data_atualizada")).
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&localizacoes).Error
	return localizacoes, total, err
}

func (r *LocalizacaoRepository) Save(localizacao *models.LocalizacaoMoto) error {
	return r.db.Omit("Moto", "Setor").Save(localizacao).Error
}

func (r *LocalizacaoRepository) DeleteByID(id uint) error {
	return r.db.Delete(&models.LocalizacaoMoto{}, id).Error
}
