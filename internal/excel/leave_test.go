package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"territorial-admin-bot/internal/calendar"
	"territorial-admin-bot/internal/models"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	return &t
}

func testRecords() []models.LeaveRecord {
	return []models.LeaveRecord{
		{
			PersonName: "SERGIO MARTINEZ",
			LeaveType:  models.LeaveTypePrimary,
			StartDate:  date(2025, time.January, 10),
			EndDate:    date(2025, time.January, 12),
		},
		{
			PersonName: "Larry Alegría",
			LeaveType:  models.LeaveTypeSubstitute,
			StartDate:  date(2025, time.February, 1),
			EndDate:    date(2025, time.February, 5),
		},
		{
			PersonName: "Jenny Toledo",
			LeaveType:  models.LeaveTypePrimary,
			// no dates: stays off the calendar but must survive round trips
		},
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	records := testRecords()
	roster := []string{"SERGIO MARTINEZ", "Larry Alegría", "Jenny Toledo"}
	projection := calendar.Build(records, roster, 2025)

	data, err := ExportLeave(records, projection)
	if err != nil {
		t.Fatalf("ExportLeave failed: %v", err)
	}

	imported, err := ImportLeave(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ImportLeave failed: %v", err)
	}

	if len(imported) != len(records) {
		t.Fatalf("Expected %d records, got %d", len(records), len(imported))
	}
	for i := range records {
		if !records[i].Equal(&imported[i]) {
			t.Errorf("Record %d does not round-trip:\nwant %+v\ngot  %+v", i, records[i], imported[i])
		}
	}
}

func TestExportWritesBothSheets(t *testing.T) {
	records := testRecords()
	roster := []string{"SERGIO MARTINEZ"}
	projection := calendar.Build(records, roster, 2025)

	data, err := ExportLeave(records, projection)
	if err != nil {
		t.Fatalf("ExportLeave failed: %v", err)
	}

	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Workbook does not open: %v", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) != 2 || sheets[0] != SheetRecords || sheets[1] != SheetCalendar {
		t.Fatalf("Expected sheets [%s %s], got %v", SheetRecords, SheetCalendar, sheets)
	}

	// Calendar matrix: B1 is Jan 1, the row for the roster name carries the
	// projected label on Jan 10 (column K = day 10).
	value, err := file.GetCellValue(SheetCalendar, "A2")
	if err != nil || value != "SERGIO MARTINEZ" {
		t.Errorf("Expected roster name in A2, got %q (%v)", value, err)
	}
	label, err := file.GetCellValue(SheetCalendar, "K2")
	if err != nil || label != models.LabelVacation {
		t.Errorf("Expected %q on 2025-01-10, got %q (%v)", models.LabelVacation, label, err)
	}
}

func buildWorkbook(t *testing.T, rows [][]string) *bytes.Reader {
	t.Helper()
	file := excelize.NewFile()
	defer file.Close()
	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatal(err)
			}
			if err := file.SetCellValue("Sheet1", cell, value); err != nil {
				t.Fatal(err)
			}
		}
	}
	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		t.Fatal(err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestImportBackfillsMissingColumns(t *testing.T) {
	// Only a person column: everything else synthesized empty.
	r := buildWorkbook(t, [][]string{
		{"Jefatura Regional"},
		{"MARCELA OSORIO"},
	})

	imported, err := ImportLeave(r)
	if err != nil {
		t.Fatalf("ImportLeave failed: %v", err)
	}
	if len(imported) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(imported))
	}
	record := imported[0]
	if record.PersonName != "MARCELA OSORIO" || record.LeaveType != "" || record.HasDates() {
		t.Errorf("Missing columns should back-fill empty, got %+v", record)
	}
}

func TestImportCoercesMalformedDates(t *testing.T) {
	r := buildWorkbook(t, [][]string{
		{"Jefatura Regional", "Director Regional/Subrogante", "Fecha Inicio", "Fecha Término"},
		{"PAULINA URIZAR", models.LeaveTypePrimary, "no es fecha", "2025/03/05"},
	})

	imported, err := ImportLeave(r)
	if err != nil {
		t.Fatalf("Malformed cells must not abort the import: %v", err)
	}
	if len(imported) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(imported))
	}
	record := imported[0]
	if record.StartDate != nil {
		t.Errorf("Malformed date should coerce to absent, got %v", record.StartDate)
	}
	if record.EndDate == nil || record.EndDate.Format("2006-01-02") != "2025-03-05" {
		t.Errorf("Slash date should parse, got %v", record.EndDate)
	}
}

func TestImportHandlesExcelSerialDates(t *testing.T) {
	// 45658 is 2025-01-01 in Excel's 1900 epoch.
	r := buildWorkbook(t, [][]string{
		{"Jefatura Regional", "Fecha Inicio"},
		{"ANDRÉS VERA", "45658"},
	})

	imported, err := ImportLeave(r)
	if err != nil {
		t.Fatalf("ImportLeave failed: %v", err)
	}
	record := imported[0]
	if record.StartDate == nil || record.StartDate.Format("2006-01-02") != "2025-01-01" {
		t.Errorf("Serial date should parse to 2025-01-01, got %v", record.StartDate)
	}
}

func TestImportSkipsBlankRowsAndExtraColumns(t *testing.T) {
	r := buildWorkbook(t, [][]string{
		{"Columna Extra", "Jefatura Regional", "Fecha Inicio"},
		{"ignorada", "ROBERTO LAU", "2025-05-01"},
		{"", "", ""},
	})

	imported, err := ImportLeave(r)
	if err != nil {
		t.Fatalf("ImportLeave failed: %v", err)
	}
	if len(imported) != 1 {
		t.Fatalf("Blank rows should be skipped, got %d records", len(imported))
	}
	if imported[0].PersonName != "ROBERTO LAU" {
		t.Errorf("Extra columns should be ignored, got %+v", imported[0])
	}
}

func TestImportLeaveFileMissing(t *testing.T) {
	_, err := ImportLeaveFile(t.TempDir() + "/" + LeaveFileName)
	if err == nil {
		t.Fatal("Expected an error for a missing file")
	}
	if !errorsIsFileMissing(err) {
		t.Errorf("Expected ErrFileMissing, got %v", err)
	}
}
