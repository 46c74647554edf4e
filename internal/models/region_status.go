// internal/models/region_status.go
package models

import "time"

// BranchStatus is one row of the operational-continuity table kept during
// mobilizations: strike adhesion and staffing per branch for one region.
type BranchStatus struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Region       string    `gorm:"type:varchar(30);uniqueIndex" json:"region"`
	AdhesionPct  string    `gorm:"type:varchar(10)" json:"adhesion_pct"`
	Branch1      string    `gorm:"type:varchar(60)" json:"branch1"`
	Branch2      string    `gorm:"type:varchar(60)" json:"branch2"`
	Branch3      string    `gorm:"type:varchar(60)" json:"branch3"`
	Branch4      string    `gorm:"type:varchar(60)" json:"branch4"`
	Branch5      string    `gorm:"type:varchar(60)" json:"branch5"`
	Branch6      string    `gorm:"type:varchar(60)" json:"branch6"`
	Observations string    `json:"observations"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (BranchStatus) TableName() string {
	return "paro_sucursales"
}

// EmergencyStatus is one row of the emergency table: basic services and
// systems availability for one region during an emergency event.
type EmergencyStatus struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	Region               string    `gorm:"type:varchar(30);uniqueIndex" json:"region"`
	Water                string    `gorm:"type:varchar(30)" json:"water"`
	Electricity          string    `gorm:"type:varchar(30)" json:"electricity"`
	Internet             string    `gorm:"type:varchar(30)" json:"internet"`
	SystemsAccess        string    `gorm:"type:varchar(10)" json:"systems_access"`
	ITReport             string    `gorm:"type:varchar(10)" json:"it_report"`
	SystemsDown          string    `json:"systems_down"`
	BranchesDown         string    `json:"branches_down"`
	HasVPN               string    `gorm:"type:varchar(10)" json:"has_vpn"`
	CareProvided         string    `gorm:"type:varchar(10)" json:"care_provided"`
	StaffAffected        string    `gorm:"type:varchar(30)" json:"staff_affected"`
	SeremiInstructed     string    `gorm:"type:varchar(10)" json:"seremi_instructed"`
	SeremiInstructions   string    `json:"seremi_instructions"`
	DirectorObservations string    `json:"director_observations"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func (EmergencyStatus) TableName() string {
	return "emergencias"
}
