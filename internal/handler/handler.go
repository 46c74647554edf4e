package handler

import (
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"territorial-admin-bot/internal/config"
	"territorial-admin-bot/internal/models"
	"territorial-admin-bot/internal/service"
	"territorial-admin-bot/pkg/telegram"
)

// Conversation states of the multi-step forms.
const (
	stateSavePerson = "save_person"
	stateSaveType   = "save_type"
	stateSaveStart  = "save_start"
	stateSaveEnd    = "save_end"

	stateContactName       = "contact_name"
	stateContactPosition   = "contact_position"
	stateContactDepartment = "contact_department"
	stateContactPhone      = "contact_phone"
	stateContactCellInst   = "contact_cell_inst"
	stateContactCellPers   = "contact_cell_pers"
	stateContactEmail      = "contact_email"

	stateAwaitLeaveFile    = "await_leave_file"
	stateAwaitContactsFile = "await_contacts_file"
)

// skipValue keeps the current/empty value during a conversation step.
const skipValue = "-"

type Handler struct {
	client          *telegram.Client
	leaveService    *service.LeaveService
	contactsService *service.ContactsService
	statusService   *service.StatusService
	faqService      *service.FAQService
	userStates      map[int64]string
	draftContacts   map[int64]*models.Contact
	contactEdits    map[int64]int
	config          *config.BotConfig
}

func NewHandler(
	client *telegram.Client,
	leaveService *service.LeaveService,
	contactsService *service.ContactsService,
	statusService *service.StatusService,
	faqService *service.FAQService,
	cfg *config.BotConfig,
) *Handler {
	return &Handler{
		client:          client,
		leaveService:    leaveService,
		contactsService: contactsService,
		statusService:   statusService,
		faqService:      faqService,
		userStates:      make(map[int64]string),
		draftContacts:   make(map[int64]*models.Contact),
		contactEdits:    make(map[int64]int),
		config:          cfg,
	}
}

func (h *Handler) HandleUpdates(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		if update.Message == nil {
			continue
		}
		h.handleMessage(update.Message)
	}
}

func (h *Handler) handleMessage(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if !h.isAuthorized(chatID) {
		logrus.WithField("chat_id", chatID).Warn("Unauthorized chat")
		h.send(chatID, "⛔ Este bot es de uso interno de la Sección de Coordinación Territorial.")
		return
	}

	if message.Document != nil {
		h.handleDocument(message)
		return
	}

	if message.IsCommand() {
		// Commands interrupt any conversation in progress.
		delete(h.userStates, chatID)
		h.handleCommand(message)
		return
	}

	if state, ok := h.userStates[chatID]; ok {
		h.handleConversation(message, state)
		return
	}

	h.send(chatID, "Use /help para ver los comandos disponibles.")
}

// isAuthorized restricts the bot to the configured section chat.
func (h *Handler) isAuthorized(chatID int64) bool {
	return chatID == h.config.BaseAdminChatID
}

func (h *Handler) handleConversation(message *tgbotapi.Message, state string) {
	switch state {
	case stateSavePerson, stateSaveType, stateSaveStart, stateSaveEnd:
		h.continueLeaveForm(message, state)
	case stateContactName, stateContactPosition, stateContactDepartment,
		stateContactPhone, stateContactCellInst, stateContactCellPers, stateContactEmail:
		h.continueContactForm(message, state)
	case stateAwaitLeaveFile, stateAwaitContactsFile:
		h.send(message.Chat.ID, "📎 Adjunte el archivo .xlsx o use /cancelar.")
	default:
		delete(h.userStates, message.Chat.ID)
	}
}

func (h *Handler) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.client.Bot.Send(msg); err != nil {
		logrus.WithError(err).Error("Failed to send message")
	}
}

func (h *Handler) sendMarkdown(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	if _, err := h.client.Bot.Send(msg); err != nil {
		logrus.WithError(err).Error("Failed to send message")
	}
}

func (h *Handler) sendDocument(chatID int64, name string, data []byte) {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: name, Bytes: data})
	if _, err := h.client.Bot.Send(doc); err != nil {
		logrus.WithError(err).Error("Failed to send document")
		h.send(chatID, "❌ No se pudo enviar el archivo.")
	}
}

// downloadDocument fetches an uploaded Telegram document's bytes.
func (h *Handler) downloadDocument(doc *tgbotapi.Document) (*http.Response, error) {
	url, err := h.client.Bot.GetFileDirectURL(doc.FileID)
	if err != nil {
		return nil, err
	}
	return http.Get(url)
}
