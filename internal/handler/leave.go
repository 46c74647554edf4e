// internal/handler/leave.go
package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"territorial-admin-bot/internal/calendar"
	"territorial-admin-bot/internal/excel"
	"territorial-admin-bot/internal/models"
	"territorial-admin-bot/internal/session"
	"territorial-admin-bot/pkg/dates"
)

// replyError maps the error taxonomy to user messages: validation warnings
// are non-fatal notices, everything else is an error. State is never left
// half-changed by either.
func (h *Handler) replyError(chatID int64, err error) {
	var warning *session.Warning
	if errors.As(err, &warning) {
		h.send(chatID, "⚠️ "+warning.Message)
		return
	}
	if errors.Is(err, excel.ErrFileMissing) {
		h.send(chatID, "⚠️ "+err.Error())
		return
	}
	logrus.WithError(err).Error("Operation failed")
	h.send(chatID, "❌ "+err.Error())
}

func (h *Handler) showLeaveRecords(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	state := h.leaveService.State()

	if len(state.Records) == 0 {
		h.send(chatID, "No hay registros de vacaciones ni permisos.")
		return
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("📅 *Registros de Vacaciones* (%d)\n\n", len(state.Records)))
	for i := range state.Records {
		record := &state.Records[i]
		marker := "▫️"
		if record.Selected {
			marker = "🔘"
		}
		b.WriteString(fmt.Sprintf("%s %d. %s — %s\n    %s → %s\n",
			marker, i+1, record.PersonName, orDash(record.LeaveType),
			orDash(dates.Format(record.StartDate)), orDash(dates.Format(record.EndDate))))
	}
	if state.Editing() {
		b.WriteString(fmt.Sprintf("\n✏️ Editando el registro %d", state.EditingIndex+1))
	}
	h.sendMarkdown(chatID, b.String())
}

func orDash(value string) string {
	if value == "" {
		return "—"
	}
	return value
}

// startLeaveForm begins the step-by-step registration form. When the table
// model is in edit mode the form comes prefilled and "-" keeps each value.
func (h *Handler) startLeaveForm(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	h.userStates[chatID] = stateSavePerson

	state := h.leaveService.State()
	prompt := "👤 *Jefatura Regional*\n\nEscriba el nombre de la jefatura."
	prompt += "\nSugerencias: " + strings.Join(state.Roster[:4], ", ") + ", …"
	if added := state.AddedNames(); len(added) > 0 {
		prompt += "\nAgregados en esta sesión: " + strings.Join(added, ", ")
	}
	if state.Editing() {
		prompt += fmt.Sprintf("\nActual: %s (envíe %q para mantener)", state.Form.PersonName, skipValue)
	}
	h.sendMarkdown(chatID, prompt)
}

func (h *Handler) continueLeaveForm(message *tgbotapi.Message, state string) {
	chatID := message.Chat.ID
	input := strings.TrimSpace(message.Text)
	form := h.leaveService.State().Form

	switch state {
	case stateSavePerson:
		if input != skipValue {
			form.PersonName = input
		}
		if err := h.leaveService.Dispatch(session.Stage{Form: form}); err != nil {
			h.replyError(chatID, err)
			return
		}
		h.userStates[chatID] = stateSaveType
		h.sendMarkdown(chatID, fmt.Sprintf(
			"🏷️ *Tipo*\n\n%s\nEnvíe el número, el texto o %q para omitir.",
			numberedList(models.LeaveTypes), skipValue))

	case stateSaveType:
		if input != skipValue {
			form.LeaveType = pickOption(models.LeaveTypes, input)
		}
		if err := h.leaveService.Dispatch(session.Stage{Form: form}); err != nil {
			h.replyError(chatID, err)
			return
		}
		h.userStates[chatID] = stateSaveStart
		h.sendMarkdown(chatID, fmt.Sprintf(
			"📆 *Fecha Inicio*\n\nFormato 2006-01-02. Envíe %q para dejarla vacía.", skipValue))

	case stateSaveStart:
		if input != skipValue {
			parsed, err := dates.Parse(input)
			if err != nil {
				h.send(chatID, "⚠️ "+err.Error()+". Intente de nuevo.")
				return
			}
			form.StartDate = parsed
		}
		if err := h.leaveService.Dispatch(session.Stage{Form: form}); err != nil {
			h.replyError(chatID, err)
			return
		}
		h.userStates[chatID] = stateSaveEnd
		h.sendMarkdown(chatID, fmt.Sprintf(
			"📆 *Fecha Término*\n\nFormato 2006-01-02. Envíe %q para dejarla vacía.", skipValue))

	case stateSaveEnd:
		if input != skipValue {
			parsed, err := dates.Parse(input)
			if err != nil {
				h.send(chatID, "⚠️ "+err.Error()+". Intente de nuevo.")
				return
			}
			form.EndDate = parsed
		}
		if err := h.leaveService.Dispatch(session.Stage{Form: form}); err != nil {
			h.replyError(chatID, err)
			return
		}
		delete(h.userStates, chatID)
		if err := h.leaveService.Dispatch(session.Save{}); err != nil {
			h.replyError(chatID, err)
			return
		}
		h.send(chatID, "✅ Registro guardado.")
	}
}

func (h *Handler) selectLeaveRecord(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID
	n, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil {
		h.send(chatID, "Uso: /seleccionar N (número del registro en /registros)")
		return
	}
	if err := h.leaveService.Dispatch(session.Select{Index: n - 1}); err != nil {
		h.replyError(chatID, err)
		return
	}
	h.send(chatID, fmt.Sprintf("🔘 Registro %d seleccionado.", n))
}

func (h *Handler) deselectLeaveRecords(message *tgbotapi.Message) {
	if err := h.leaveService.Dispatch(session.Deselect{}); err != nil {
		h.replyError(message.Chat.ID, err)
		return
	}
	h.send(message.Chat.ID, "Selección limpiada.")
}

func (h *Handler) modifyLeaveRecord(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if err := h.leaveService.Dispatch(session.Modify{}); err != nil {
		h.replyError(chatID, err)
		return
	}
	h.startLeaveForm(message)
}

func (h *Handler) cancelForm(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	delete(h.userStates, chatID)
	delete(h.draftContacts, chatID)
	delete(h.contactEdits, chatID)
	if err := h.leaveService.Dispatch(session.Cancel{}); err != nil {
		h.replyError(chatID, err)
		return
	}
	h.send(chatID, "Formulario descartado.")
}

func (h *Handler) deleteLeaveRecords(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	before := len(h.leaveService.State().Records)
	if err := h.leaveService.Dispatch(session.Delete{}); err != nil {
		h.replyError(chatID, err)
		return
	}
	removed := before - len(h.leaveService.State().Records)
	h.send(chatID, fmt.Sprintf("🗑️ %d registro(s) eliminado(s).", removed))
}

// showCalendar renders the year projection: the full occupancy summary, or
// one person's days when a name is given.
func (h *Handler) showCalendar(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID
	projection := h.leaveService.Projection()

	if strings.TrimSpace(args) != "" {
		name, ok := calendar.MatchRosterName(args, projection.Names)
		if !ok {
			h.send(chatID, fmt.Sprintf("⚠️ %q no coincide con ninguna jefatura del calendario.", args))
			return
		}
		days := projection.DaysFor(name)
		if len(days) == 0 {
			h.send(chatID, fmt.Sprintf("%s no tiene días marcados en %d.", name, projection.Year))
			return
		}
		var b strings.Builder
		b.WriteString(fmt.Sprintf("📅 *%s — %d*\n\n", name, projection.Year))
		for _, day := range days {
			b.WriteString(fmt.Sprintf("%s: %s\n", day, projection.Label(name, day)))
		}
		h.sendMarkdown(chatID, b.String())
		return
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("📅 *Calendario %d*\n\n", projection.Year))
	occupied := 0
	for _, name := range projection.Names {
		days := projection.DaysFor(name)
		if len(days) == 0 {
			continue
		}
		occupied++
		b.WriteString(fmt.Sprintf("%s: %d día(s) — %s a %s\n",
			name, len(days), days[0], days[len(days)-1]))
	}
	if occupied == 0 {
		h.send(chatID, fmt.Sprintf("El calendario %d no tiene días marcados.", projection.Year))
		return
	}
	b.WriteString("\nUse /calendario nombre para el detalle, o /exportar para el Excel completo.")
	h.sendMarkdown(chatID, b.String())
}

func (h *Handler) importLeave(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	if strings.TrimSpace(args) == "adjunto" {
		h.userStates[chatID] = stateAwaitLeaveFile
		h.send(chatID, "📎 Adjunte el archivo .xlsx con los registros.")
		return
	}

	count, err := h.leaveService.Import()
	if err != nil {
		h.replyError(chatID, err)
		return
	}
	h.send(chatID, fmt.Sprintf("📥 %d registro(s) importado(s). La tabla anterior fue reemplazada.", count))
}

func (h *Handler) exportLeave(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if len(h.leaveService.State().Records) == 0 {
		h.send(chatID, "⚠️ No hay registros para exportar.")
		return
	}
	data, err := h.leaveService.Export()
	if err != nil {
		h.replyError(chatID, err)
		return
	}
	h.sendDocument(chatID, excel.LeaveFileName, data)
}
