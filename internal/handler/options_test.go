package handler

import (
	"strconv"
	"strings"
	"testing"

	"territorial-admin-bot/internal/models"
)

func TestPickOptionResolvesNumberToListValue(t *testing.T) {
	if got := pickOption(models.LeaveTypes, "2"); got != models.LeaveTypeSubstitute {
		t.Errorf("pickOption(LeaveTypes, \"2\") = %q, want %q", got, models.LeaveTypeSubstitute)
	}
	if got := pickOption(models.ContactPositions, "1"); got != models.ContactPositions[0] {
		t.Errorf("pickOption(ContactPositions, \"1\") = %q, want %q", got, models.ContactPositions[0])
	}
	last := len(models.ContactDepartments)
	want := models.ContactDepartments[last-1]
	if got := pickOption(models.ContactDepartments, " "+strconv.Itoa(last)+" "); got != want {
		t.Errorf("pickOption(ContactDepartments, %d) = %q, want %q", last, got, want)
	}
}

func TestPickOptionKeepsFreeText(t *testing.T) {
	if got := pickOption(models.ContactPositions, "Asesor Externo"); got != "Asesor Externo" {
		t.Errorf("free text should pass through, got %q", got)
	}
}

func TestPickOptionOutOfRangeFallsBackToFreeText(t *testing.T) {
	if got := pickOption(models.LeaveTypes, "0"); got != "0" {
		t.Errorf("option 0 should not resolve, got %q", got)
	}
	if got := pickOption(models.LeaveTypes, "99"); got != "99" {
		t.Errorf("option 99 should not resolve, got %q", got)
	}
}

func TestNumberedListRendersEveryOption(t *testing.T) {
	list := numberedList(models.LeaveTypes)
	if !strings.Contains(list, "1 — "+models.LeaveTypePrimary) {
		t.Errorf("list missing first option:\n%s", list)
	}
	if !strings.Contains(list, "2 — "+models.LeaveTypeSubstitute) {
		t.Errorf("list missing second option:\n%s", list)
	}
}
