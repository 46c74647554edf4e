// internal/repository/contact_repo.go
package repository

import (
	"territorial-admin-bot/internal/models"

	"gorm.io/gorm"
)

type ContactRepository interface {
	LoadAll() ([]models.Contact, error)
	ReplaceAll(contacts []models.Contact) error
}

type GormContactRepository struct {
	db *gorm.DB
}

func NewGormContactRepository(db *gorm.DB) (ContactRepository, error) {
	if err := db.AutoMigrate(&models.Contact{}); err != nil {
		return nil, err
	}
	return &GormContactRepository{db: db}, nil
}

func (r *GormContactRepository) LoadAll() ([]models.Contact, error) {
	var contacts []models.Contact
	err := r.db.Order("id").Find(&contacts).Error
	return contacts, err
}

func (r *GormContactRepository) ReplaceAll(contacts []models.Contact) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Contact{}).Error; err != nil {
			return err
		}
		for i := range contacts {
			row := contacts[i]
			row.ID = 0
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
