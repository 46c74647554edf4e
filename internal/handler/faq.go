// internal/handler/faq.go
package handler

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (h *Handler) showFAQ(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	entries := h.faqService.List()
	query := strings.TrimSpace(args)
	if query != "" {
		entries = h.faqService.Search(query)
	}

	if len(entries) == 0 {
		if query != "" {
			h.send(chatID, fmt.Sprintf("Sin resultados para %q.", query))
			return
		}
		h.send(chatID, "⚠️ No hay preguntas cargadas. Verifique preguntas.xlsx y use /recargarfaq.")
		return
	}

	var b strings.Builder
	b.WriteString("❓ *Preguntas Frecuentes*\n\n")
	for i := range entries {
		b.WriteString(fmt.Sprintf("*%s*\n%s\n\n", entries[i].Question, entries[i].Answer))
	}
	h.sendMarkdown(chatID, b.String())
}

func (h *Handler) reloadFAQ(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if err := h.faqService.Reload(); err != nil {
		h.replyError(chatID, err)
		return
	}
	h.send(chatID, fmt.Sprintf("🔄 %d pregunta(s) cargada(s).", len(h.faqService.List())))
}
