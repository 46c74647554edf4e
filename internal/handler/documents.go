// internal/handler/documents.go
package handler

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// handleDocument routes an uploaded file to whichever import is waiting for
// one. Uploads outside an import conversation are ignored with a hint.
func (h *Handler) handleDocument(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	state := h.userStates[chatID]

	if state != stateAwaitLeaveFile && state != stateAwaitContactsFile {
		h.send(chatID, "Use /importar adjunto o /importarcontactos adjunto antes de enviar un archivo.")
		return
	}
	delete(h.userStates, chatID)

	resp, err := h.downloadDocument(message.Document)
	if err != nil {
		logrus.WithError(err).Error("Failed to download document")
		h.send(chatID, "❌ No se pudo descargar el archivo. Intente nuevamente.")
		return
	}
	defer resp.Body.Close()

	switch state {
	case stateAwaitLeaveFile:
		count, err := h.leaveService.ImportFrom(resp.Body)
		if err != nil {
			h.replyError(chatID, err)
			return
		}
		h.send(chatID, fmt.Sprintf("📥 %d registro(s) importado(s). La tabla anterior fue reemplazada.", count))
	case stateAwaitContactsFile:
		count, err := h.contactsService.ImportFrom(resp.Body)
		if err != nil {
			h.replyError(chatID, err)
			return
		}
		h.send(chatID, fmt.Sprintf("📥 %d contacto(s) importado(s). El directorio anterior fue reemplazado.", count))
	}
}
