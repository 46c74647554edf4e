package session

import (
	"strings"

	"territorial-admin-bot/internal/models"
)

// Warning is a non-fatal validation message shown to the user. A Warning
// from Reduce means the state was returned unchanged.
type Warning struct {
	Message string
}

func (w *Warning) Error() string {
	return w.Message
}

func warnf(message string) *Warning {
	return &Warning{Message: message}
}

// Action is one user interaction with the record table or the form.
type Action interface {
	isAction()
}

// Stage replaces the staged form fields.
type Stage struct {
	Form Form
}

// Save commits the staged form: appends a record in create mode, rewrites
// the edited row in edit mode. Requires a non-empty person name.
type Save struct{}

// Modify enters edit mode for the single selected row, loading its values
// into the form.
type Modify struct{}

// Cancel discards the staged form and exits edit mode.
type Cancel struct{}

// Select marks exactly the given row as selected.
type Select struct {
	Index int
}

// Deselect clears all row selections.
type Deselect struct{}

// Delete removes all selected rows.
type Delete struct{}

// Replace swaps in an imported record list wholesale.
type Replace struct {
	Records []models.LeaveRecord
}

func (Stage) isAction()    {}
func (Save) isAction()     {}
func (Modify) isAction()   {}
func (Cancel) isAction()   {}
func (Select) isAction()   {}
func (Deselect) isAction() {}
func (Delete) isAction()   {}
func (Replace) isAction()  {}

// Reduce applies one action and returns the next state. The bool is true
// when the record list changed and the caller must persist and rebuild the
// calendar. On a *Warning the input state is returned as-is.
func Reduce(s State, action Action) (State, bool, error) {
	switch a := action.(type) {
	case Stage:
		s.Form = a.Form
		return s, false, nil

	case Save:
		return reduceSave(s)

	case Modify:
		return reduceModify(s)

	case Cancel:
		s.Form = Form{}
		s.EditingIndex = -1
		return s, false, nil

	case Select:
		if a.Index < 0 || a.Index >= len(s.Records) {
			return s, false, warnf("Número de registro fuera de rango")
		}
		s.Records = cloneRecords(s.Records)
		for i := range s.Records {
			s.Records[i].Selected = i == a.Index
		}
		return s, false, nil

	case Deselect:
		s.Records = cloneRecords(s.Records)
		for i := range s.Records {
			s.Records[i].Selected = false
		}
		return s, false, nil

	case Delete:
		return reduceDelete(s)

	case Replace:
		s.Records = cloneRecords(a.Records)
		for i := range s.Records {
			s.Records[i].Selected = false
		}
		s.Form = Form{}
		s.EditingIndex = -1
		return s, true, nil
	}

	return s, false, nil
}

func reduceSave(s State) (State, bool, error) {
	name := strings.TrimSpace(s.Form.PersonName)
	if name == "" {
		return s, false, warnf("Debe indicar una jefatura regional")
	}

	if !rosterContains(s.Roster, name) {
		roster := make([]string, len(s.Roster), len(s.Roster)+1)
		copy(roster, s.Roster)
		s.Roster = append(roster, name)
	}

	record := models.LeaveRecord{
		PersonName: name,
		LeaveType:  s.Form.LeaveType,
		StartDate:  s.Form.StartDate,
		EndDate:    s.Form.EndDate,
	}

	s.Records = cloneRecords(s.Records)
	if s.Editing() {
		s.Records[s.EditingIndex] = record
	} else if s.EditingIndex >= 0 {
		// Stale edit index (row deleted underneath): drop the save silently,
		// matching the out-of-range no-op of the table model.
		s.Form = Form{}
		s.EditingIndex = -1
		return s, false, nil
	} else {
		s.Records = append(s.Records, record)
	}

	s.Form = Form{}
	s.EditingIndex = -1
	return s, true, nil
}

func reduceModify(s State) (State, bool, error) {
	selected := s.SelectedIndices()
	if len(selected) != 1 {
		return s, false, warnf("Seleccione exactamente un registro para modificar")
	}

	idx := selected[0]
	row := s.Records[idx]
	s.EditingIndex = idx
	s.Form = Form{
		PersonName: row.PersonName,
		LeaveType:  row.LeaveType,
		StartDate:  row.StartDate,
		EndDate:    row.EndDate,
	}
	return s, false, nil
}

func reduceDelete(s State) (State, bool, error) {
	selected := s.SelectedIndices()
	if len(selected) == 0 {
		return s, false, warnf("Seleccione al menos un registro para eliminar")
	}

	remaining := make([]models.LeaveRecord, 0, len(s.Records)-len(selected))
	editingDeleted := false
	shift := 0
	for i := range s.Records {
		if s.Records[i].Selected {
			if i == s.EditingIndex {
				editingDeleted = true
			}
			if i < s.EditingIndex {
				shift++
			}
			continue
		}
		remaining = append(remaining, s.Records[i])
	}

	s.Records = remaining
	if editingDeleted {
		s.EditingIndex = -1
		s.Form = Form{}
	} else if s.EditingIndex >= 0 {
		s.EditingIndex -= shift
	}
	return s, true, nil
}

func rosterContains(roster []string, name string) bool {
	for _, entry := range roster {
		if entry == name {
			return true
		}
	}
	return false
}
