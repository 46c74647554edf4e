// internal/service/status.go
package service

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"territorial-admin-bot/internal/excel"
	"territorial-admin-bot/internal/models"
	"territorial-admin-bot/internal/repository"
)

// StatusService manages the two fixed-row regional tables: operational
// continuity during mobilizations, and the emergency table. Rows exist for
// every region from the start; only their fields change.
type StatusService struct {
	branchRepo    repository.BranchStatusRepository
	emergencyRepo repository.EmergencyStatusRepository
	logger        *logrus.Logger
}

func NewStatusService(
	branchRepo repository.BranchStatusRepository,
	emergencyRepo repository.EmergencyStatusRepository,
) *StatusService {
	return &StatusService{
		branchRepo:    branchRepo,
		emergencyRepo: emergencyRepo,
		logger:        logrus.New(),
	}
}

// ResolveRegion matches user input against the fixed region list,
// case-insensitive substring, first match wins.
func ResolveRegion(input string) (string, bool) {
	needle := strings.ToUpper(strings.TrimSpace(input))
	if needle == "" {
		return "", false
	}
	for _, region := range models.Regions {
		candidate := strings.ToUpper(region)
		if strings.Contains(candidate, needle) || strings.Contains(needle, candidate) {
			return region, true
		}
	}
	return "", false
}

// Branch table -----------------------------------------------------------

func (s *StatusService) BranchRows() ([]models.BranchStatus, error) {
	return s.branchRepo.LoadAll()
}

// SetBranchField updates one column of one region's continuity row.
func (s *StatusService) SetBranchField(region, field, value string) error {
	resolved, ok := ResolveRegion(region)
	if !ok {
		return fmt.Errorf("región no reconocida: %q", region)
	}
	row, err := s.branchRepo.GetByRegion(resolved)
	if err != nil {
		return err
	}
	if row == nil {
		row = &models.BranchStatus{Region: resolved}
	}

	switch strings.ToLower(strings.TrimSpace(field)) {
	case "adhesion", "adhesión", "% adhesión":
		row.AdhesionPct = value
	case "suc1":
		row.Branch1 = value
	case "suc2":
		row.Branch2 = value
	case "suc3":
		row.Branch3 = value
	case "suc4":
		row.Branch4 = value
	case "suc5":
		row.Branch5 = value
	case "suc6":
		row.Branch6 = value
	case "observaciones", "obs":
		row.Observations = value
	default:
		return fmt.Errorf("campo no reconocido: %q (use adhesion, suc1..suc6, observaciones)", field)
	}

	if err := s.branchRepo.Upsert(row); err != nil {
		return fmt.Errorf("error guardando la tabla de sucursales: %w", err)
	}
	s.logger.WithField("region", resolved).Info("Branch status updated")
	return nil
}

// ClearBranchTable blanks every continuity row.
func (s *StatusService) ClearBranchTable() error {
	return s.branchRepo.ClearAll()
}

// ExportBranchTable serializes the continuity table for download.
func (s *StatusService) ExportBranchTable() ([]byte, error) {
	rows, err := s.branchRepo.LoadAll()
	if err != nil {
		return nil, err
	}
	return excel.ExportBranchStatus(rows)
}

// Emergency table --------------------------------------------------------

func (s *StatusService) EmergencyRows() ([]models.EmergencyStatus, error) {
	return s.emergencyRepo.LoadAll()
}

// SetEmergencyField updates one column of one region's emergency row.
func (s *StatusService) SetEmergencyField(region, field, value string) error {
	resolved, ok := ResolveRegion(region)
	if !ok {
		return fmt.Errorf("región no reconocida: %q", region)
	}
	row, err := s.emergencyRepo.GetByRegion(resolved)
	if err != nil {
		return err
	}
	if row == nil {
		row = &models.EmergencyStatus{Region: resolved}
	}

	switch strings.ToLower(strings.TrimSpace(field)) {
	case "agua":
		row.Water = value
	case "electricidad", "luz":
		row.Electricity = value
	case "internet":
		row.Internet = value
	case "sistemas":
		row.SystemsAccess = value
	case "ti":
		row.ITReport = value
	case "sistemas_caidos":
		row.SystemsDown = value
	case "sucursales_caidas":
		row.BranchesDown = value
	case "vpn":
		row.HasVPN = value
	case "atencion", "atención":
		row.CareProvided = value
	case "funcionarios":
		row.StaffAffected = value
	case "seremi":
		row.SeremiInstructed = value
	case "instrucciones":
		row.SeremiInstructions = value
	case "observaciones", "obs":
		row.DirectorObservations = value
	default:
		return fmt.Errorf("campo no reconocido: %q", field)
	}

	if err := s.emergencyRepo.Upsert(row); err != nil {
		return fmt.Errorf("error guardando la tabla de emergencias: %w", err)
	}
	s.logger.WithField("region", resolved).Info("Emergency status updated")
	return nil
}

// ClearEmergencyTable blanks every emergency row.
func (s *StatusService) ClearEmergencyTable() error {
	return s.emergencyRepo.ClearAll()
}

// ExportEmergencyTable serializes the emergency table for download.
func (s *StatusService) ExportEmergencyTable() ([]byte, error) {
	rows, err := s.emergencyRepo.LoadAll()
	if err != nil {
		return nil, err
	}
	return excel.ExportEmergencyStatus(rows)
}
