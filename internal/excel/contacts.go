package excel

import (
	"io"

	"github.com/xuri/excelize/v2"

	"territorial-admin-bot/internal/models"
)

// ContactsFileName is the well-known import file for the directory.
const ContactsFileName = "contactos.xlsx"

const SheetContacts = "Contactos"

var contactHeader = []string{
	"Nombre", "Cargo", "Dpto./Región",
	"Teléfono Directo/Anexo", "Celular Institucional",
	"Celular Particular", "Correo",
}

// ExportContacts serializes the directory as a single-sheet workbook.
func ExportContacts(contacts []models.Contact) ([]byte, error) {
	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	if err := file.SetSheetName("Sheet1", SheetContacts); err != nil {
		return nil, err
	}
	if err := writeRow(file, SheetContacts, 1, contactHeader); err != nil {
		return nil, err
	}
	for i := range contacts {
		c := &contacts[i]
		row := []string{
			c.Name, c.Position, c.Department,
			c.DirectPhone, c.InstitutionalCell, c.PersonalCell, c.Email,
		}
		if err := writeRow(file, SheetContacts, i+2, row); err != nil {
			return nil, err
		}
	}
	return workbookBytes(file)
}

// ImportContacts reads the directory from the first sheet. Phone-like
// columns are normalized to plain digit strings (numeric cells come back
// from spreadsheets with a trailing ".0").
func ImportContacts(r io.Reader) ([]models.Contact, error) {
	rows, err := firstSheetRows(r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	index := headerIndex(rows[0])
	nameCol := column(index, "nombre")
	positionCol := column(index, "cargo")
	departmentCol := column(index, "dpto./región", "dpto./region", "departamento")
	phoneCol := column(index, "teléfono directo/anexo", "telefono directo/anexo", "teléfono", "telefono")
	instCol := column(index, "celular institucional")
	persCol := column(index, "celular particular")
	emailCol := column(index, "correo", "email")

	var contacts []models.Contact
	for _, row := range rows[1:] {
		contact := models.Contact{
			Name:              cellValue(row, nameCol),
			Position:          cellValue(row, positionCol),
			Department:        cellValue(row, departmentCol),
			DirectPhone:       normalizePhone(cellValue(row, phoneCol)),
			InstitutionalCell: normalizePhone(cellValue(row, instCol)),
			PersonalCell:      normalizePhone(cellValue(row, persCol)),
			Email:             cellValue(row, emailCol),
		}
		if contact.Name == "" && contact.Position == "" && contact.Email == "" {
			continue
		}
		contacts = append(contacts, contact)
	}
	return contacts, nil
}

// ImportContactsFile imports from the well-known file location.
func ImportContactsFile(path string) ([]models.Contact, error) {
	f, err := openDataFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ImportContacts(f)
}
