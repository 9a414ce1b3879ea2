package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"smartparker-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		// Duplicate unique keys surface as gorm.ErrDuplicatedKey.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Patio{},
		&models.Setor{},
		&models.Moto{},
		&models.Usuario{},
		&models.LocalizacaoMoto{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}

// SeedData populates the database with initial rows for development/testing.
func SeedData(db *gorm.DB) error {
	var patioCount int64
	db.Model(&models.Patio{}).Count(&patioCount)

	if patioCount > 0 {
		fmt.Println("Database already has data, skipping seed")
		return nil
	}

	patio := models.Patio{Nome: "Pátio Central", Localizacao: "Av. Paulista, 1000"}
	if err := db.Create(&patio).Error; err != nil {
		return fmt.Errorf("failed to seed patio: %w", err)
	}

	setores := []models.Setor{
		{Nome: "A1", Fileira: 1, Vaga: 1, PatioID: patio.ID},
		{Nome: "A2", Fileira: 1, Vaga: 2, PatioID: patio.ID},
		{Nome: "B1", Fileira: 2, Vaga: 1, PatioID: patio.ID},
	}
	for _, setor := range setores {
		if err := db.Create(&setor).Error; err != nil {
			fmt.Printf("Warning: Could not create test setor %s: %v\n", setor.Nome, err)
		}
	}

	motos := []models.Moto{
		{Nome: "Biz", Fabricante: "Honda", Cilindrada: 125, Placa: "ABC1D23", Status: models.StatusDisponivel},
		{Nome: "Fazer", Fabricante: "Yamaha", Cilindrada: 250, Placa: "XYZ9K87", Status: models.StatusEmUso},
	}
	for _, moto := range motos {
		if err := db.Create(&moto).Error; err != nil {
			fmt.Printf("Warning: Could not create test moto %s: %v\n", moto.Nome, err)
		}
	}

	fmt.Println("Database seeded with test data")
	return nil
}
