// internal/service/contacts.go
package service

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"territorial-admin-bot/internal/excel"
	"territorial-admin-bot/internal/models"
	"territorial-admin-bot/internal/repository"
)

// ContactsService keeps the contacts directory in memory and mirrors it to
// the store whole after every mutation, same discipline as the leave table.
type ContactsService struct {
	repo     repository.ContactRepository
	contacts []models.Contact
	dataDir  string
	logger   *logrus.Logger
}

func NewContactsService(repo repository.ContactRepository, dataDir string) (*ContactsService, error) {
	contacts, err := repo.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("error cargando contactos: %w", err)
	}
	return &ContactsService{
		repo:     repo,
		contacts: contacts,
		dataDir:  dataDir,
		logger:   logrus.New(),
	}, nil
}

// List returns the directory in insertion order.
func (s *ContactsService) List() []models.Contact {
	out := make([]models.Contact, len(s.contacts))
	copy(out, s.contacts)
	return out
}

// Search returns contacts whose name contains the query.
func (s *ContactsService) Search(query string) []models.Contact {
	if strings.TrimSpace(query) == "" {
		return s.List()
	}
	var out []models.Contact
	for i := range s.contacts {
		if s.contacts[i].Matches(query) {
			out = append(out, s.contacts[i])
		}
	}
	return out
}

// Add appends a contact. The name is the only required field.
func (s *ContactsService) Add(contact models.Contact) error {
	if strings.TrimSpace(contact.Name) == "" {
		return fmt.Errorf("el contacto debe tener un nombre")
	}
	next := append(s.List(), contact)
	return s.commit(next)
}

// Update rewrites the contact at the given position. Out-of-range indices
// are a no-op.
func (s *ContactsService) Update(index int, contact models.Contact) error {
	if index < 0 || index >= len(s.contacts) {
		return nil
	}
	next := s.List()
	next[index] = contact
	return s.commit(next)
}

// Delete removes the contact at the given position; remaining contacts keep
// their relative order.
func (s *ContactsService) Delete(index int) error {
	if index < 0 || index >= len(s.contacts) {
		return fmt.Errorf("número de contacto fuera de rango")
	}
	current := s.List()
	next := append(current[:index], current[index+1:]...)
	return s.commit(next)
}

// Import replaces the directory from the well-known spreadsheet.
func (s *ContactsService) Import() (int, error) {
	contacts, err := excel.ImportContactsFile(filepath.Join(s.dataDir, excel.ContactsFileName))
	if err != nil {
		return 0, err
	}
	if err := s.commit(contacts); err != nil {
		return 0, err
	}
	return len(contacts), nil
}

// ImportFrom replaces the directory from an uploaded workbook.
func (s *ContactsService) ImportFrom(r io.Reader) (int, error) {
	contacts, err := excel.ImportContacts(r)
	if err != nil {
		return 0, err
	}
	if err := s.commit(contacts); err != nil {
		return 0, err
	}
	return len(contacts), nil
}

// Export serializes the directory for download.
func (s *ContactsService) Export() ([]byte, error) {
	return excel.ExportContacts(s.contacts)
}

func (s *ContactsService) commit(next []models.Contact) error {
	if err := s.repo.ReplaceAll(next); err != nil {
		return fmt.Errorf("error guardando contactos: %w", err)
	}
	s.contacts = next
	s.logger.WithField("contacts", len(next)).Info("Contacts persisted")
	return nil
}
