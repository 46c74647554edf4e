// internal/service/leave.go
package service

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"territorial-admin-bot/internal/calendar"
	"territorial-admin-bot/internal/excel"
	"territorial-admin-bot/internal/models"
	"territorial-admin-bot/internal/repository"
	"territorial-admin-bot/internal/session"
)

// LeaveService owns the vacation form's session state. Every action goes
// through Dispatch; actions that change the record list are persisted whole
// to the store and the calendar projection is rebuilt from scratch, in that
// order, before the new state is adopted. A persist failure therefore
// leaves the in-memory state exactly as it was.
type LeaveService struct {
	repo       repository.LeaveRecordRepository
	state      session.State
	projection *calendar.Projection
	year       int
	dataDir    string
	logger     *logrus.Logger
}

func NewLeaveService(repo repository.LeaveRecordRepository, year int, dataDir string) (*LeaveService, error) {
	records, err := repo.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("error cargando registros: %w", err)
	}

	state := session.NewState(records)
	return &LeaveService{
		repo:       repo,
		state:      state,
		projection: calendar.Build(state.Records, models.RegionalHeads, year),
		year:       year,
		dataDir:    dataDir,
		logger:     logrus.New(),
	}, nil
}

// State returns the current session state snapshot.
func (s *LeaveService) State() session.State {
	return s.state
}

// Projection returns the current calendar projection.
func (s *LeaveService) Projection() *calendar.Projection {
	return s.projection
}

// Year returns the projection's target year.
func (s *LeaveService) Year() int {
	return s.year
}

// Dispatch applies one action. A *session.Warning is returned for
// validation problems and means nothing changed.
func (s *LeaveService) Dispatch(action session.Action) error {
	next, dirty, err := session.Reduce(s.state, action)
	if err != nil {
		return err
	}

	if dirty {
		if err := s.repo.ReplaceAll(next.Records); err != nil {
			return fmt.Errorf("error guardando en la base de datos: %w", err)
		}
		s.projection = calendar.Build(next.Records, models.RegionalHeads, s.year)
		s.logger.WithField("records", len(next.Records)).Info("Leave records persisted")
	}

	s.state = next
	return nil
}

// Save stages the form and commits it in one step.
func (s *LeaveService) Save(form session.Form) error {
	if err := s.Dispatch(session.Stage{Form: form}); err != nil {
		return err
	}
	return s.Dispatch(session.Save{})
}

// Import replaces the record list from the well-known spreadsheet in the
// data directory.
func (s *LeaveService) Import() (int, error) {
	records, err := excel.ImportLeaveFile(filepath.Join(s.dataDir, excel.LeaveFileName))
	if err != nil {
		return 0, err
	}
	if err := s.Dispatch(session.Replace{Records: records}); err != nil {
		return 0, err
	}
	return len(records), nil
}

// ImportFrom replaces the record list from an uploaded workbook.
func (s *LeaveService) ImportFrom(r io.Reader) (int, error) {
	records, err := excel.ImportLeave(r)
	if err != nil {
		return 0, err
	}
	if err := s.Dispatch(session.Replace{Records: records}); err != nil {
		return 0, err
	}
	return len(records), nil
}

// Export serializes the record list and calendar as a workbook for
// download. No persistence side effect.
func (s *LeaveService) Export() ([]byte, error) {
	return excel.ExportLeave(s.state.Records, s.projection)
}
