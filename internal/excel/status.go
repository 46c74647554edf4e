package excel

import (
	"github.com/xuri/excelize/v2"

	"territorial-admin-bot/internal/models"
)

const (
	SheetBranches    = "Sucursales"
	SheetEmergencies = "Emergencias"
)

// ExportBranchStatus serializes the operational-continuity table.
func ExportBranchStatus(rows []models.BranchStatus) ([]byte, error) {
	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	if err := file.SetSheetName("Sheet1", SheetBranches); err != nil {
		return nil, err
	}
	header := []string{
		"Región", "% Adhesión",
		"T.E. Suc1", "T.E. Suc2", "T.E. Suc3",
		"T.E. Suc4", "T.E. Suc5", "T.E. Suc6",
		"Observaciones",
	}
	if err := writeRow(file, SheetBranches, 1, header); err != nil {
		return nil, err
	}
	for i := range rows {
		row := &rows[i]
		cells := []string{
			row.Region, row.AdhesionPct,
			row.Branch1, row.Branch2, row.Branch3,
			row.Branch4, row.Branch5, row.Branch6,
			row.Observations,
		}
		if err := writeRow(file, SheetBranches, i+2, cells); err != nil {
			return nil, err
		}
	}
	return workbookBytes(file)
}

// ExportEmergencyStatus serializes the emergency table.
func ExportEmergencyStatus(rows []models.EmergencyStatus) ([]byte, error) {
	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	if err := file.SetSheetName("Sheet1", SheetEmergencies); err != nil {
		return nil, err
	}
	header := []string{
		"Región", "Agua", "Electricidad", "Internet",
		"Acceso a Sistemas (Si/No)", "Reporte de TI (Si/No)",
		"Sistemas NO operativos", "Sucursales NO operativas",
		"Cuenta con VPN", "Atención recibida (Si/No)",
		"Funcionarios afectados", "Instrucciones SEREMI (Si/No)",
		"Instrucciones SEREMI", "Observ/Propuesta DR",
	}
	if err := writeRow(file, SheetEmergencies, 1, header); err != nil {
		return nil, err
	}
	for i := range rows {
		row := &rows[i]
		cells := []string{
			row.Region, row.Water, row.Electricity, row.Internet,
			row.SystemsAccess, row.ITReport,
			row.SystemsDown, row.BranchesDown,
			row.HasVPN, row.CareProvided,
			row.StaffAffected, row.SeremiInstructed,
			row.SeremiInstructions, row.DirectorObservations,
		}
		if err := writeRow(file, SheetEmergencies, i+2, cells); err != nil {
			return nil, err
		}
	}
	return workbookBytes(file)
}
