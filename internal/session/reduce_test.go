package session

import (
	"errors"
	"testing"
	"time"

	"territorial-admin-bot/internal/models"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	return &t
}

func record(name, leaveType string, start, end *time.Time) models.LeaveRecord {
	return models.LeaveRecord{PersonName: name, LeaveType: leaveType, StartDate: start, EndDate: end}
}

func mustReduce(t *testing.T, s State, a Action) (State, bool) {
	t.Helper()
	next, dirty, err := Reduce(s, a)
	if err != nil {
		t.Fatalf("Reduce(%T) failed: %v", a, err)
	}
	return next, dirty
}

func TestSaveCreatesRecord(t *testing.T) {
	s := NewState(nil)
	s, _ = mustReduce(t, s, Stage{Form: Form{
		PersonName: "Sergio Martínez",
		LeaveType:  models.LeaveTypePrimary,
		StartDate:  date(2025, time.January, 10),
		EndDate:    date(2025, time.January, 12),
	}})
	s, dirty := mustReduce(t, s, Save{})

	if !dirty {
		t.Error("Save should mark the record list dirty")
	}
	if len(s.Records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(s.Records))
	}
	if s.Records[0].PersonName != "Sergio Martínez" {
		t.Errorf("Unexpected person name: %q", s.Records[0].PersonName)
	}
	if !s.Form.IsZero() {
		t.Error("Form should be cleared after save")
	}
	if s.Editing() {
		t.Error("Save should leave create mode")
	}
}

func TestSaveWithoutNameWarns(t *testing.T) {
	s := NewState(nil)
	s, _ = mustReduce(t, s, Stage{Form: Form{LeaveType: models.LeaveTypePrimary}})

	next, dirty, err := Reduce(s, Save{})
	var warning *Warning
	if !errors.As(err, &warning) {
		t.Fatalf("Expected a warning, got %v", err)
	}
	if dirty {
		t.Error("A warned save must not be dirty")
	}
	if len(next.Records) != 0 {
		t.Error("A warned save must not change the record list")
	}
}

func TestSaveAppendsUnknownNameToRoster(t *testing.T) {
	s := NewState(nil)
	rosterBefore := len(s.Roster)

	s, _ = mustReduce(t, s, Stage{Form: Form{PersonName: "Nombre Nuevo"}})
	s, _ = mustReduce(t, s, Save{})

	if len(s.Roster) != rosterBefore+1 {
		t.Fatalf("Roster should grow by one, got %d -> %d", rosterBefore, len(s.Roster))
	}
	if s.Roster[len(s.Roster)-1] != "Nombre Nuevo" {
		t.Errorf("New name should be appended last, got %q", s.Roster[len(s.Roster)-1])
	}

	// Saving the same name again must not duplicate it.
	s, _ = mustReduce(t, s, Stage{Form: Form{PersonName: "Nombre Nuevo"}})
	s, _ = mustReduce(t, s, Save{})
	if len(s.Roster) != rosterBefore+1 {
		t.Errorf("Roster must not grow on a repeated name, got %d", len(s.Roster))
	}
}

func TestAddedNamesListsOnlySessionAdditions(t *testing.T) {
	s := NewState(nil)
	if added := s.AddedNames(); len(added) != 0 {
		t.Fatalf("Fresh state should have no added names, got %v", added)
	}

	s, _ = mustReduce(t, s, Stage{Form: Form{PersonName: models.RegionalHeads[0]}})
	s, _ = mustReduce(t, s, Save{})
	if added := s.AddedNames(); len(added) != 0 {
		t.Errorf("Known roster names are not additions, got %v", added)
	}

	s, _ = mustReduce(t, s, Stage{Form: Form{PersonName: "Nombre Nuevo"}})
	s, _ = mustReduce(t, s, Save{})
	added := s.AddedNames()
	if len(added) != 1 || added[0] != "Nombre Nuevo" {
		t.Errorf("Expected the typed name as the only addition, got %v", added)
	}
}

func TestSelectKeepsAtMostOne(t *testing.T) {
	s := NewState([]models.LeaveRecord{
		record("A", models.LeaveTypePrimary, nil, nil),
		record("B", models.LeaveTypePrimary, nil, nil),
		record("C", models.LeaveTypeSubstitute, nil, nil),
	})

	s, _ = mustReduce(t, s, Select{Index: 0})
	s, _ = mustReduce(t, s, Select{Index: 2})

	selected := s.SelectedIndices()
	if len(selected) != 1 || selected[0] != 2 {
		t.Fatalf("Expected only index 2 selected, got %v", selected)
	}

	// Re-selecting the same row is a no-op on the selection set.
	s, _ = mustReduce(t, s, Select{Index: 2})
	selected = s.SelectedIndices()
	if len(selected) != 1 || selected[0] != 2 {
		t.Fatalf("Idempotent re-selection broken, got %v", selected)
	}
}

func TestSelectOutOfRangeWarns(t *testing.T) {
	s := NewState([]models.LeaveRecord{record("A", "", nil, nil)})
	_, _, err := Reduce(s, Select{Index: 5})
	var warning *Warning
	if !errors.As(err, &warning) {
		t.Fatalf("Expected a warning, got %v", err)
	}
}

func TestModifyRequiresExactlyOneSelection(t *testing.T) {
	s := NewState([]models.LeaveRecord{
		record("A", models.LeaveTypePrimary, nil, nil),
		record("B", models.LeaveTypeSubstitute, nil, nil),
	})

	// Zero selected: warning, nothing changes.
	next, dirty, err := Reduce(s, Modify{})
	var warning *Warning
	if !errors.As(err, &warning) {
		t.Fatalf("Expected a warning with no selection, got %v", err)
	}
	if dirty || next.Editing() || !next.Form.IsZero() {
		t.Error("Warned modify must leave form and edit mode untouched")
	}

	// Exactly one selected: edit mode with loaded fields.
	s, _ = mustReduce(t, s, Select{Index: 1})
	s, _ = mustReduce(t, s, Modify{})
	if !s.Editing() || s.EditingIndex != 1 {
		t.Fatalf("Expected edit mode on index 1, got %d", s.EditingIndex)
	}
	if s.Form.PersonName != "B" || s.Form.LeaveType != models.LeaveTypeSubstitute {
		t.Errorf("Form should hold the selected record's fields, got %+v", s.Form)
	}
}

func TestSaveInEditModeRewritesRow(t *testing.T) {
	s := NewState([]models.LeaveRecord{
		record("A", models.LeaveTypePrimary, nil, nil),
		record("B", models.LeaveTypePrimary, nil, nil),
	})
	s, _ = mustReduce(t, s, Select{Index: 0})
	s, _ = mustReduce(t, s, Modify{})

	form := s.Form
	form.LeaveType = models.LeaveTypeSubstitute
	form.StartDate = date(2025, time.March, 1)
	form.EndDate = date(2025, time.March, 5)
	s, _ = mustReduce(t, s, Stage{Form: form})
	s, dirty := mustReduce(t, s, Save{})

	if !dirty {
		t.Error("Edit save should be dirty")
	}
	if len(s.Records) != 2 {
		t.Fatalf("Edit must not change list length, got %d", len(s.Records))
	}
	if s.Records[0].LeaveType != models.LeaveTypeSubstitute {
		t.Errorf("Row 0 should be rewritten, got %+v", s.Records[0])
	}
	if s.Records[1].PersonName != "B" {
		t.Error("Row 1 must be untouched")
	}
	if s.Editing() {
		t.Error("Save should exit edit mode")
	}
}

func TestCancelDiscardsFormAndEditMode(t *testing.T) {
	s := NewState([]models.LeaveRecord{record("A", models.LeaveTypePrimary, nil, nil)})
	s, _ = mustReduce(t, s, Select{Index: 0})
	s, _ = mustReduce(t, s, Modify{})

	s, dirty := mustReduce(t, s, Cancel{})
	if dirty {
		t.Error("Cancel must not be dirty")
	}
	if s.Editing() || !s.Form.IsZero() {
		t.Error("Cancel should clear form and edit mode")
	}
	if len(s.Records) != 1 {
		t.Error("Cancel must not touch records")
	}
}

func TestDeleteRemovesSelectedAndReindexes(t *testing.T) {
	s := NewState([]models.LeaveRecord{
		record("A", "", nil, nil),
		record("B", "", nil, nil),
		record("C", "", nil, nil),
		record("D", "", nil, nil),
	})
	// Select is single-row; mark two rows directly as an imported UI would.
	s.Records[1].Selected = true
	s.Records[3].Selected = true

	s, dirty := mustReduce(t, s, Delete{})
	if !dirty {
		t.Error("Delete should be dirty")
	}
	if len(s.Records) != 2 {
		t.Fatalf("Expected 2 records after deleting 2 of 4, got %d", len(s.Records))
	}
	if s.Records[0].PersonName != "A" || s.Records[1].PersonName != "C" {
		t.Errorf("Remaining records must keep relative order, got %q, %q",
			s.Records[0].PersonName, s.Records[1].PersonName)
	}
}

func TestDeleteWithNothingSelectedWarns(t *testing.T) {
	s := NewState([]models.LeaveRecord{record("A", "", nil, nil)})
	_, dirty, err := Reduce(s, Delete{})
	var warning *Warning
	if !errors.As(err, &warning) {
		t.Fatalf("Expected a warning, got %v", err)
	}
	if dirty {
		t.Error("Warned delete must not be dirty")
	}
}

func TestDeleteEditedRowExitsEditMode(t *testing.T) {
	s := NewState([]models.LeaveRecord{
		record("A", "", nil, nil),
		record("B", "", nil, nil),
	})
	s, _ = mustReduce(t, s, Select{Index: 1})
	s, _ = mustReduce(t, s, Modify{})

	s, _ = mustReduce(t, s, Delete{})
	if s.Editing() || !s.Form.IsZero() {
		t.Error("Deleting the edited row should exit edit mode and clear the form")
	}
}

func TestDeleteBeforeEditedRowShiftsIndex(t *testing.T) {
	s := NewState([]models.LeaveRecord{
		record("A", "", nil, nil),
		record("B", "", nil, nil),
		record("C", "", nil, nil),
	})
	s, _ = mustReduce(t, s, Select{Index: 2})
	s, _ = mustReduce(t, s, Modify{})

	// Move the selection to row 0 and delete it; the edited row C shifts.
	s, _ = mustReduce(t, s, Select{Index: 0})
	s, _ = mustReduce(t, s, Delete{})

	if s.EditingIndex != 1 {
		t.Fatalf("Edited index should shift from 2 to 1, got %d", s.EditingIndex)
	}
	if s.Records[s.EditingIndex].PersonName != "C" {
		t.Error("Edit index should still track record C")
	}
}

func TestReplaceSwapsListAndResetsSession(t *testing.T) {
	s := NewState([]models.LeaveRecord{record("A", "", nil, nil)})
	s, _ = mustReduce(t, s, Select{Index: 0})
	s, _ = mustReduce(t, s, Modify{})

	imported := []models.LeaveRecord{
		{PersonName: "X", Selected: true},
		{PersonName: "Y"},
	}
	s, dirty := mustReduce(t, s, Replace{Records: imported})

	if !dirty {
		t.Error("Replace should be dirty")
	}
	if len(s.Records) != 2 {
		t.Fatalf("Expected the imported list, got %d records", len(s.Records))
	}
	if len(s.SelectedIndices()) != 0 {
		t.Error("Import must clear selections")
	}
	if s.Editing() {
		t.Error("Import must exit edit mode")
	}
}
