// Package session holds the editable leave-record table as an explicit
// state value. Handlers never mutate shared state: every user action goes
// through Reduce, which returns the next state and whether the record list
// changed (and therefore must be persisted and re-projected).
package session

import (
	"time"

	"territorial-admin-bot/internal/models"
)

// Form is the staged field set of the registration form.
type Form struct {
	PersonName string
	LeaveType  string
	StartDate  *time.Time
	EndDate    *time.Time
}

// IsZero reports whether nothing is staged.
func (f Form) IsZero() bool {
	return f.PersonName == "" && f.LeaveType == "" && f.StartDate == nil && f.EndDate == nil
}

// State is the whole edit-session state: the authoritative ordered record
// list, the staged form, the edit-mode index and the suggestion roster.
type State struct {
	Records []models.LeaveRecord

	// EditingIndex is the row being edited, or -1 in create mode.
	EditingIndex int

	Form Form

	// Roster is the suggestion list offered for the person field. It starts
	// as the fixed roster and grows with newly typed names for the rest of
	// the session. Calendar matching always uses the fixed roster, not this.
	Roster []string
}

// NewState builds the initial state around records loaded from the store.
func NewState(records []models.LeaveRecord) State {
	roster := make([]string, len(models.RegionalHeads))
	copy(roster, models.RegionalHeads)
	return State{
		Records:      records,
		EditingIndex: -1,
		Roster:       roster,
	}
}

// AddedNames returns the names appended to the suggestion roster during
// this session, beyond the fixed list.
func (s State) AddedNames() []string {
	if len(s.Roster) <= len(models.RegionalHeads) {
		return nil
	}
	return s.Roster[len(models.RegionalHeads):]
}

// SelectedIndices returns the indices of selected rows, in order.
func (s State) SelectedIndices() []int {
	var selected []int
	for i := range s.Records {
		if s.Records[i].Selected {
			selected = append(selected, i)
		}
	}
	return selected
}

// Editing reports whether the form is in edit mode.
func (s State) Editing() bool {
	return s.EditingIndex >= 0 && s.EditingIndex < len(s.Records)
}

// cloneRecords copies the record slice so a reduced state never aliases its
// predecessor's backing array.
func cloneRecords(records []models.LeaveRecord) []models.LeaveRecord {
	out := make([]models.LeaveRecord, len(records))
	copy(out, records)
	return out
}
