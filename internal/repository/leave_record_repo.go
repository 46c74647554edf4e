// internal/repository/leave_record_repo.go
package repository

import (
	"territorial-admin-bot/internal/models"

	"gorm.io/gorm"
)

// LeaveRecordRepository persists the full leave-record list. The table is
// always written whole: the session list is the source of truth and the
// store mirrors it after every mutation.
type LeaveRecordRepository interface {
	LoadAll() ([]models.LeaveRecord, error)
	ReplaceAll(records []models.LeaveRecord) error
}

type GormLeaveRecordRepository struct {
	db *gorm.DB
}

func NewGormLeaveRecordRepository(db *gorm.DB) (LeaveRecordRepository, error) {
	if err := db.AutoMigrate(&models.LeaveRecord{}); err != nil {
		return nil, err
	}
	return &GormLeaveRecordRepository{db: db}, nil
}

func (r *GormLeaveRecordRepository) LoadAll() ([]models.LeaveRecord, error) {
	var records []models.LeaveRecord
	err := r.db.Order("id").Find(&records).Error
	return records, err
}

func (r *GormLeaveRecordRepository) ReplaceAll(records []models.LeaveRecord) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.LeaveRecord{}).Error; err != nil {
			return err
		}
		for i := range records {
			row := records[i]
			row.ID = 0 // reassigned on insert; list order is the identity
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
