package excel

import (
	"bytes"
	"testing"

	"territorial-admin-bot/internal/models"
)

func TestContactsRoundTrip(t *testing.T) {
	contacts := []models.Contact{
		{
			Name:              "MARCELA OSORIO",
			Position:          "DIRECTOR/A REGIONAL",
			Department:        "COQUIMBO",
			DirectPhone:       "223456789",
			InstitutionalCell: "56911112222",
			Email:             "mosorio@example.gob.cl",
		},
		{
			Name:       "Patricio Caballero",
			Position:   "DIRECTOR/A REGIONAL(S)",
			Department: "COQUIMBO",
		},
	}

	data, err := ExportContacts(contacts)
	if err != nil {
		t.Fatalf("ExportContacts failed: %v", err)
	}

	imported, err := ImportContacts(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ImportContacts failed: %v", err)
	}
	if len(imported) != len(contacts) {
		t.Fatalf("Expected %d contacts, got %d", len(contacts), len(imported))
	}
	for i := range contacts {
		want, got := contacts[i], imported[i]
		if want.Name != got.Name || want.Position != got.Position ||
			want.Department != got.Department || want.DirectPhone != got.DirectPhone ||
			want.InstitutionalCell != got.InstitutionalCell || want.Email != got.Email {
			t.Errorf("Contact %d does not round-trip:\nwant %+v\ngot  %+v", i, want, got)
		}
	}
}

func TestImportContactsNormalizesPhones(t *testing.T) {
	r := buildWorkbook(t, [][]string{
		{"Nombre", "Teléfono Directo/Anexo", "Celular Institucional"},
		{"ROBERTO LAU", "223456.0", "56987654321.0"},
	})

	imported, err := ImportContacts(r)
	if err != nil {
		t.Fatalf("ImportContacts failed: %v", err)
	}
	contact := imported[0]
	if contact.DirectPhone != "223456" {
		t.Errorf("Expected .0 artifact stripped, got %q", contact.DirectPhone)
	}
	if contact.InstitutionalCell != "56987654321" {
		t.Errorf("Expected .0 artifact stripped, got %q", contact.InstitutionalCell)
	}
}
