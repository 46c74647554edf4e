// internal/handler/status.go
package handler

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (h *Handler) showBranchTable(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	rows, err := h.statusService.BranchRows()
	if err != nil {
		h.replyError(chatID, err)
		return
	}

	var b strings.Builder
	b.WriteString("🏢 *Situación de Sucursales*\n\n")
	for i := range rows {
		row := &rows[i]
		b.WriteString(fmt.Sprintf("*%s* — Adhesión: %s\n", row.Region, orDash(row.AdhesionPct)))
		branches := []string{row.Branch1, row.Branch2, row.Branch3, row.Branch4, row.Branch5, row.Branch6}
		var filled []string
		for j, branch := range branches {
			if branch != "" {
				filled = append(filled, fmt.Sprintf("Suc%d: %s", j+1, branch))
			}
		}
		if len(filled) > 0 {
			b.WriteString("    " + strings.Join(filled, " · ") + "\n")
		}
		if row.Observations != "" {
			b.WriteString("    📝 " + row.Observations + "\n")
		}
	}
	b.WriteString("\nUse /setsucursal región | campo | valor para actualizar.")
	h.sendMarkdown(chatID, b.String())
}

// parseFieldArgs splits "región | campo | valor" (value may be empty to
// blank the cell).
func parseFieldArgs(args string) (region, field, value string, ok bool) {
	parts := strings.SplitN(args, "|", 3)
	if len(parts) < 2 {
		return "", "", "", false
	}
	region = strings.TrimSpace(parts[0])
	field = strings.TrimSpace(parts[1])
	if len(parts) == 3 {
		value = strings.TrimSpace(parts[2])
	}
	return region, field, value, region != "" && field != ""
}

func (h *Handler) setBranchField(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID
	region, field, value, ok := parseFieldArgs(args)
	if !ok {
		h.send(chatID, "Uso: /setsucursal región | campo | valor\nCampos: adhesion, suc1..suc6, observaciones")
		return
	}
	if err := h.statusService.SetBranchField(region, field, value); err != nil {
		h.replyError(chatID, err)
		return
	}
	h.send(chatID, "✅ Tabla de sucursales actualizada.")
}

func (h *Handler) clearBranchTable(message *tgbotapi.Message) {
	if err := h.statusService.ClearBranchTable(); err != nil {
		h.replyError(message.Chat.ID, err)
		return
	}
	h.send(message.Chat.ID, "🧹 Tabla de sucursales reiniciada.")
}

func (h *Handler) exportBranchTable(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	data, err := h.statusService.ExportBranchTable()
	if err != nil {
		h.replyError(chatID, err)
		return
	}
	h.sendDocument(chatID, "situacion_sucursales.xlsx", data)
}

func (h *Handler) showEmergencyTable(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	rows, err := h.statusService.EmergencyRows()
	if err != nil {
		h.replyError(chatID, err)
		return
	}

	var b strings.Builder
	b.WriteString("🚨 *Tabla de Emergencias*\n\n")
	for i := range rows {
		row := &rows[i]
		b.WriteString(fmt.Sprintf("*%s*\n", row.Region))
		pairs := []struct{ label, value string }{
			{"Agua", row.Water},
			{"Electricidad", row.Electricity},
			{"Internet", row.Internet},
			{"Acceso a sistemas", row.SystemsAccess},
			{"Reporte TI", row.ITReport},
			{"Sistemas caídos", row.SystemsDown},
			{"Sucursales caídas", row.BranchesDown},
			{"VPN", row.HasVPN},
			{"Atención", row.CareProvided},
			{"Funcionarios afectados", row.StaffAffected},
			{"SEREMI", row.SeremiInstructed},
			{"Instrucciones", row.SeremiInstructions},
			{"Observaciones", row.DirectorObservations},
		}
		empty := true
		for _, pair := range pairs {
			if pair.value != "" {
				b.WriteString(fmt.Sprintf("    %s: %s\n", pair.label, pair.value))
				empty = false
			}
		}
		if empty {
			b.WriteString("    sin novedades\n")
		}
	}
	b.WriteString("\nUse /setemergencia región | campo | valor para actualizar.")
	h.sendMarkdown(chatID, b.String())
}

func (h *Handler) setEmergencyField(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID
	region, field, value, ok := parseFieldArgs(args)
	if !ok {
		h.send(chatID, "Uso: /setemergencia región | campo | valor\nCampos: agua, electricidad, internet, sistemas, ti, sistemas_caidos, sucursales_caidas, vpn, atencion, funcionarios, seremi, instrucciones, observaciones")
		return
	}
	if err := h.statusService.SetEmergencyField(region, field, value); err != nil {
		h.replyError(chatID, err)
		return
	}
	h.send(chatID, "✅ Tabla de emergencias actualizada.")
}

func (h *Handler) clearEmergencyTable(message *tgbotapi.Message) {
	if err := h.statusService.ClearEmergencyTable(); err != nil {
		h.replyError(message.Chat.ID, err)
		return
	}
	h.send(message.Chat.ID, "🧹 Tabla de emergencias reiniciada.")
}

func (h *Handler) exportEmergencyTable(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	data, err := h.statusService.ExportEmergencyTable()
	if err != nil {
		h.replyError(chatID, err)
		return
	}
	h.sendDocument(chatID, "emergencias.xlsx", data)
}
