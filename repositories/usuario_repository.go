package repositories

import (
	"gorm.io/gorm"

	"smartparker-api/models"
	"smartparker-api/specifications"
)

type UsuarioRepository struct {
	db *gorm.DB
}

func NewUsuarioRepository(db *gorm.DB) *UsuarioRepository {
	return &UsuarioRepository{db: db}
}

func (r *UsuarioRepository) FindByID(id uint) (*models.Usuario, error) {
	var usuario models.Usuario
	if err := r.db.Preload("Moto").First(&usuario, id).Error; err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *UsuarioRepository) FindAll(spec specifications.Specification, page PageRequest) ([]models.Usuario, int64, error) {
	var total int64
	if err := spec.Apply(r.db.Model(&models.Usuario{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var usuarios []models.Usuario
	err := spec.Apply(r.db.Preload("Moto")).
		Order(page.Order("nome")).
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&usuarios).Error
	return usuarios, total, err
}

// Save persists every field, including a cleared moto link. The referenced
// moto row itself is never written through here.
func (r *UsuarioRepository) Save(usuario *models.Usuario) error {
	return r.db.Omit("Moto").Save(usuario).Error
}

func (r *UsuarioRepository) DeleteByID(id uint) error {
	return r.db.Delete(&models.Usuario{}, id).Error
}
