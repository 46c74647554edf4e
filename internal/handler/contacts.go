// internal/handler/contacts.go
package handler

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"territorial-admin-bot/internal/excel"
	"territorial-admin-bot/internal/models"
)

func (h *Handler) showContacts(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID
	contacts := h.contactsService.Search(args)

	if len(contacts) == 0 {
		if strings.TrimSpace(args) == "" {
			h.send(chatID, "El directorio de contactos está vacío.")
		} else {
			h.send(chatID, fmt.Sprintf("Sin resultados para %q.", args))
		}
		return
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("📇 *Directorio de Contactos* (%d)\n\n", len(contacts)))
	for i := range contacts {
		c := &contacts[i]
		b.WriteString(fmt.Sprintf("%d. *%s*\n    %s — %s\n", i+1, c.Name, orDash(c.Position), orDash(c.Department)))
		if c.DirectPhone != "" {
			b.WriteString("    ☎️ " + c.DirectPhone + "\n")
		}
		if c.InstitutionalCell != "" {
			b.WriteString("    📱 " + c.InstitutionalCell + "\n")
		}
		if c.Email != "" {
			b.WriteString("    ✉️ " + c.Email + "\n")
		}
	}
	h.sendMarkdown(chatID, b.String())
}

func (h *Handler) startContactForm(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	h.draftContacts[chatID] = &models.Contact{}
	delete(h.contactEdits, chatID)
	h.userStates[chatID] = stateContactName
	h.sendMarkdown(chatID, "👤 *Nuevo contacto*\n\nEscriba el nombre completo.")
}

func (h *Handler) startContactEdit(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID
	n, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil {
		h.send(chatID, "Uso: /modificarcontacto N (número en /contactos)")
		return
	}
	contacts := h.contactsService.List()
	if n < 1 || n > len(contacts) {
		h.send(chatID, fmt.Sprintf("⚠️ No existe el contacto %d.", n))
		return
	}
	draft := contacts[n-1]
	h.draftContacts[chatID] = &draft
	h.contactEdits[chatID] = n - 1
	h.userStates[chatID] = stateContactName
	h.sendMarkdown(chatID, fmt.Sprintf(
		"✏️ *Modificando contacto %d*\n\nNombre actual: %s\nEscriba el nuevo valor o envíe %q para mantenerlo.",
		n, draft.Name, skipValue))
}

func (h *Handler) continueContactForm(message *tgbotapi.Message, state string) {
	chatID := message.Chat.ID
	input := strings.TrimSpace(message.Text)
	skip := input == skipValue

	draft, ok := h.draftContacts[chatID]
	if !ok {
		delete(h.userStates, chatID)
		h.send(chatID, "⚠️ El formulario expiró, use /agregarcontacto de nuevo.")
		return
	}

	prompt := func(next, text, current string) {
		h.userStates[chatID] = next
		if current != "" {
			text += "\nValor actual: " + current
		}
		h.sendMarkdown(chatID, text+fmt.Sprintf("\nEnvíe %q para omitir.", skipValue))
	}

	switch state {
	case stateContactName:
		if !skip {
			draft.Name = input
		}
		if draft.Name == "" {
			h.send(chatID, "⚠️ El nombre es obligatorio.")
			return
		}
		prompt(stateContactPosition,
			"💼 *Cargo*\n"+numberedList(models.ContactPositions)+"Envíe el número o el texto.",
			draft.Position)
	case stateContactPosition:
		if !skip {
			draft.Position = pickOption(models.ContactPositions, input)
		}
		prompt(stateContactDepartment,
			"🏢 *Dpto./Región*\n"+numberedList(models.ContactDepartments)+"Envíe el número o el texto.",
			draft.Department)
	case stateContactDepartment:
		if !skip {
			draft.Department = pickOption(models.ContactDepartments, input)
		}
		prompt(stateContactPhone, "☎️ *Teléfono Directo/Anexo*", draft.DirectPhone)
	case stateContactPhone:
		if !skip {
			draft.DirectPhone = input
		}
		prompt(stateContactCellInst, "📱 *Celular Institucional*", draft.InstitutionalCell)
	case stateContactCellInst:
		if !skip {
			draft.InstitutionalCell = input
		}
		prompt(stateContactCellPers, "📱 *Celular Particular*", draft.PersonalCell)
	case stateContactCellPers:
		if !skip {
			draft.PersonalCell = input
		}
		prompt(stateContactEmail, "✉️ *Correo*", draft.Email)
	case stateContactEmail:
		if !skip {
			draft.Email = input
		}
		delete(h.userStates, chatID)
		delete(h.draftContacts, chatID)
		if index, editing := h.contactEdits[chatID]; editing {
			delete(h.contactEdits, chatID)
			if err := h.contactsService.Update(index, *draft); err != nil {
				h.replyError(chatID, err)
				return
			}
			h.send(chatID, "✏️ Contacto actualizado: "+draft.Name)
			return
		}
		if err := h.contactsService.Add(*draft); err != nil {
			h.replyError(chatID, err)
			return
		}
		h.send(chatID, "✅ Contacto agregado: "+draft.Name)
	}
}

func (h *Handler) deleteContact(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID
	n, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil {
		h.send(chatID, "Uso: /eliminarcontacto N (número en /contactos)")
		return
	}
	if err := h.contactsService.Delete(n - 1); err != nil {
		h.replyError(chatID, err)
		return
	}
	h.send(chatID, fmt.Sprintf("🗑️ Contacto %d eliminado.", n))
}

func (h *Handler) importContacts(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	if strings.TrimSpace(args) == "adjunto" {
		h.userStates[chatID] = stateAwaitContactsFile
		h.send(chatID, "📎 Adjunte el archivo .xlsx con el directorio.")
		return
	}

	count, err := h.contactsService.Import()
	if err != nil {
		h.replyError(chatID, err)
		return
	}
	h.send(chatID, fmt.Sprintf("📥 %d contacto(s) importado(s). El directorio anterior fue reemplazado.", count))
}

func (h *Handler) exportContacts(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if len(h.contactsService.List()) == 0 {
		h.send(chatID, "⚠️ No hay contactos para exportar.")
		return
	}
	data, err := h.contactsService.Export()
	if err != nil {
		h.replyError(chatID, err)
		return
	}
	h.sendDocument(chatID, excel.ContactsFileName, data)
}
