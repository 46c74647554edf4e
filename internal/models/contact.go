// internal/models/contact.go
package models

import (
	"strings"
	"time"
)

type Contact struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Name              string    `gorm:"type:varchar(100)" json:"name"`
	Position          string    `gorm:"type:varchar(120)" json:"position"`
	Department        string    `gorm:"type:varchar(60)" json:"department"`
	DirectPhone       string    `gorm:"type:varchar(30)" json:"direct_phone"`
	InstitutionalCell string    `gorm:"type:varchar(30)" json:"institutional_cell"`
	PersonalCell      string    `gorm:"type:varchar(30)" json:"personal_cell"`
	Email             string    `gorm:"type:varchar(120)" json:"email"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	Selected bool `gorm:"-" json:"selected"`
}

func (Contact) TableName() string {
	return "contactos"
}

// Matches reports whether the contact's name contains the query,
// case-insensitively.
func (c *Contact) Matches(query string) bool {
	return strings.Contains(strings.ToLower(c.Name), strings.ToLower(strings.TrimSpace(query)))
}
