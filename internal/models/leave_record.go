// internal/models/leave_record.go
package models

import "time"

type LeaveRecord struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	PersonName string     `gorm:"type:varchar(100)" json:"person_name"`
	LeaveType  string     `gorm:"type:varchar(30)" json:"leave_type"`
	StartDate  *time.Time `gorm:"type:date" json:"start_date"`
	EndDate    *time.Time `gorm:"type:date" json:"end_date"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	// Selected is row-selection state for the current edit session only.
	Selected bool `gorm:"-" json:"selected"`
}

func (LeaveRecord) TableName() string {
	return "vacaciones"
}

const (
	LeaveTypePrimary    = "Director Regional"
	LeaveTypeSubstitute = "Subrogante"
)

// Calendar cell labels derived from the leave type.
const (
	LabelVacation   = "Vacaciones"
	LabelSubstitute = "Subrogante"
)

// HasDates reports whether both period bounds are present.
func (r *LeaveRecord) HasDates() bool {
	return r.StartDate != nil && r.EndDate != nil
}

// OnCalendar reports whether the record can contribute calendar cells:
// both dates present and chronologically ordered.
func (r *LeaveRecord) OnCalendar() bool {
	return r.HasDates() && !r.EndDate.Before(*r.StartDate)
}

// Label returns the calendar cell label for the record's leave type,
// or "" for an unknown type.
func (r *LeaveRecord) Label() string {
	switch r.LeaveType {
	case LeaveTypePrimary:
		return LabelVacation
	case LeaveTypeSubstitute:
		return LabelSubstitute
	}
	return ""
}

// Equal compares the persisted fields, ignoring ID, timestamps and the
// transient selection flag. Used by the import round-trip checks.
func (r *LeaveRecord) Equal(other *LeaveRecord) bool {
	if r.PersonName != other.PersonName || r.LeaveType != other.LeaveType {
		return false
	}
	return sameDate(r.StartDate, other.StartDate) && sameDate(r.EndDate, other.EndDate)
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
