package excel

import (
	"io"

	"github.com/xuri/excelize/v2"

	"territorial-admin-bot/internal/calendar"
	"territorial-admin-bot/internal/models"
	"territorial-admin-bot/pkg/dates"
)

// Column headers of the vacation workbook, as the original spreadsheets
// carry them.
const (
	headerSelected  = "Seleccionar"
	headerPerson    = "Jefatura Regional"
	headerLeaveType = "Director Regional/Subrogante"
	headerStart     = "Fecha Inicio"
	headerEnd       = "Fecha Término"
)

const (
	SheetRecords  = "Registros"
	SheetCalendar = "Calendario"
)

// LeaveFileName is the well-known import file looked up in DATA_DIR.
const LeaveFileName = "vacaciones_permisos.xlsx"

// ExportLeave serializes the record list and the current calendar
// projection as the two-sheet vacation workbook.
func ExportLeave(records []models.LeaveRecord, projection *calendar.Projection) ([]byte, error) {
	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	if err := file.SetSheetName("Sheet1", SheetRecords); err != nil {
		return nil, err
	}
	header := []string{headerSelected, headerPerson, headerLeaveType, headerStart, headerEnd}
	if err := writeRow(file, SheetRecords, 1, header); err != nil {
		return nil, err
	}
	for i := range records {
		record := &records[i]
		selected := "FALSO"
		if record.Selected {
			selected = "VERDADERO"
		}
		row := []string{
			selected,
			record.PersonName,
			record.LeaveType,
			dates.Format(record.StartDate),
			dates.Format(record.EndDate),
		}
		if err := writeRow(file, SheetRecords, i+2, row); err != nil {
			return nil, err
		}
	}

	if _, err := file.NewSheet(SheetCalendar); err != nil {
		return nil, err
	}
	days := dates.YearDays(projection.Year)
	calendarHeader := append([]string{"Nombre"}, days...)
	if err := writeRow(file, SheetCalendar, 1, calendarHeader); err != nil {
		return nil, err
	}
	for i, name := range projection.Names {
		row := make([]string, 0, len(days)+1)
		row = append(row, name)
		for _, day := range days {
			row = append(row, projection.Label(name, day))
		}
		if err := writeRow(file, SheetCalendar, i+2, row); err != nil {
			return nil, err
		}
	}

	return workbookBytes(file)
}

// ImportLeave reads leave records from the first sheet of a workbook.
// Missing columns are back-filled empty, extra columns ignored, and
// unparseable dates coerced to absent instead of failing the row.
func ImportLeave(r io.Reader) ([]models.LeaveRecord, error) {
	rows, err := firstSheetRows(r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	index := headerIndex(rows[0])
	personCol := column(index, normalizeHeader(headerPerson), "jefatura", "nombre")
	typeCol := column(index, normalizeHeader(headerLeaveType), "tipo")
	startCol := column(index, normalizeHeader(headerStart), "fecha inicio")
	endCol := column(index, normalizeHeader(headerEnd), "fecha termino")

	var records []models.LeaveRecord
	for _, row := range rows[1:] {
		record := models.LeaveRecord{
			PersonName: cellValue(row, personCol),
			LeaveType:  cellValue(row, typeCol),
			StartDate:  parseCellDate(cellValue(row, startCol)),
			EndDate:    parseCellDate(cellValue(row, endCol)),
		}
		if record.PersonName == "" && record.LeaveType == "" && !record.HasDates() {
			continue // fully blank row
		}
		records = append(records, record)
	}
	return records, nil
}

// ImportLeaveFile imports from the well-known file location, returning
// ErrFileMissing (wrapped) when the file is not there.
func ImportLeaveFile(path string) ([]models.LeaveRecord, error) {
	f, err := openDataFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ImportLeave(f)
}
