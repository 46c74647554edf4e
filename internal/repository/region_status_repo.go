// internal/repository/region_status_repo.go
package repository

import (
	"errors"

	"territorial-admin-bot/internal/models"

	"gorm.io/gorm"
)

// BranchStatusRepository keeps one row per region. Rows are seeded empty for
// the whole region list on construction and updated in place by region name.
type BranchStatusRepository interface {
	LoadAll() ([]models.BranchStatus, error)
	GetByRegion(region string) (*models.BranchStatus, error)
	Upsert(status *models.BranchStatus) error
	ClearAll() error
}

type GormBranchStatusRepository struct {
	db *gorm.DB
}

func NewGormBranchStatusRepository(db *gorm.DB) (BranchStatusRepository, error) {
	if err := db.AutoMigrate(&models.BranchStatus{}); err != nil {
		return nil, err
	}
	repo := &GormBranchStatusRepository{db: db}
	if err := repo.seed(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *GormBranchStatusRepository) seed() error {
	for _, region := range models.Regions {
		var count int64
		if err := r.db.Model(&models.BranchStatus{}).Where("region = ?", region).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := r.db.Create(&models.BranchStatus{Region: region}).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *GormBranchStatusRepository) LoadAll() ([]models.BranchStatus, error) {
	var rows []models.BranchStatus
	err := r.db.Order("id").Find(&rows).Error
	return rows, err
}

func (r *GormBranchStatusRepository) GetByRegion(region string) (*models.BranchStatus, error) {
	var row models.BranchStatus
	err := r.db.Where("region = ?", region).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *GormBranchStatusRepository) Upsert(status *models.BranchStatus) error {
	existing, err := r.GetByRegion(status.Region)
	if err != nil {
		return err
	}
	if existing != nil {
		status.ID = existing.ID
	}
	return r.db.Save(status).Error
}

// ClearAll blanks every row but keeps the region list.
func (r *GormBranchStatusRepository) ClearAll() error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.BranchStatus{}).Error; err != nil {
			return err
		}
		for _, region := range models.Regions {
			if err := tx.Create(&models.BranchStatus{Region: region}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// EmergencyStatusRepository mirrors BranchStatusRepository for the
// emergency table.
type EmergencyStatusRepository interface {
	LoadAll() ([]models.EmergencyStatus, error)
	GetByRegion(region string) (*models.EmergencyStatus, error)
	Upsert(status *models.EmergencyStatus) error
	ClearAll() error
}

type GormEmergencyStatusRepository struct {
	db *gorm.DB
}

func NewGormEmergencyStatusRepository(db *gorm.DB) (EmergencyStatusRepository, error) {
	if err := db.AutoMigrate(&models.EmergencyStatus{}); err != nil {
		return nil, err
	}
	repo := &GormEmergencyStatusRepository{db: db}
	if err := repo.seed(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *GormEmergencyStatusRepository) seed() error {
	for _, region := range models.Regions {
		var count int64
		if err := r.db.Model(&models.EmergencyStatus{}).Where("region = ?", region).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := r.db.Create(&models.EmergencyStatus{Region: region}).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *GormEmergencyStatusRepository) LoadAll() ([]models.EmergencyStatus, error) {
	var rows []models.EmergencyStatus
	err := r.db.Order("id").Find(&rows).Error
	return rows, err
}

func (r *GormEmergencyStatusRepository) GetByRegion(region string) (*models.EmergencyStatus, error) {
	var row models.EmergencyStatus
	err := r.db.Where("region = ?", region).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *GormEmergencyStatusRepository) Upsert(status *models.EmergencyStatus) error {
	existing, err := r.GetByRegion(status.Region)
	if err != nil {
		return err
	}
	if existing != nil {
		status.ID = existing.ID
	}
	return r.db.Save(status).Error
}

func (r *GormEmergencyStatusRepository) ClearAll() error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.EmergencyStatus{}).Error; err != nil {
			return err
		}
		for _, region := range models.Regions {
			if err := tx.Create(&models.EmergencyStatus{Region: region}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
