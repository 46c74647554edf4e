// internal/service/faq.go
package service

import (
	"path/filepath"

	"github.com/sirupsen/logrus"

	"territorial-admin-bot/internal/excel"
	"territorial-admin-bot/internal/models"
)

// FAQService serves the question/answer pairs of the FAQ page, read from
// preguntas.xlsx in the data directory. The file is reloadable at runtime;
// a missing file simply leaves the list empty.
type FAQService struct {
	dataDir string
	entries []models.FAQEntry
	logger  *logrus.Logger
}

func NewFAQService(dataDir string) *FAQService {
	s := &FAQService{
		dataDir: dataDir,
		logger:  logrus.New(),
	}
	if err := s.Reload(); err != nil {
		s.logger.WithError(err).Warn("FAQ file not loaded")
	}
	return s
}

// Reload re-reads the question file.
func (s *FAQService) Reload() error {
	entries, err := excel.ImportFAQFile(filepath.Join(s.dataDir, excel.FAQFileName))
	if err != nil {
		return err
	}
	s.entries = entries
	s.logger.WithField("entries", len(entries)).Info("FAQ loaded")
	return nil
}

// List returns every loaded entry.
func (s *FAQService) List() []models.FAQEntry {
	out := make([]models.FAQEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Search returns entries whose question or answer contains the query.
func (s *FAQService) Search(query string) []models.FAQEntry {
	var out []models.FAQEntry
	for i := range s.entries {
		if s.entries[i].Matches(query) {
			out = append(out, s.entries[i])
		}
	}
	return out
}
