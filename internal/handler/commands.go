// internal/handler/commands.go
package handler

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (h *Handler) handleCommand(message *tgbotapi.Message) {
	command := message.Command()
	args := message.CommandArguments()

	switch command {
	case "start":
		h.sendStartMessage(message)
	case "help":
		h.sendHelpMessage(message)

	// Vacaciones y permisos
	case "registros":
		h.showLeaveRecords(message)
	case "guardar":
		h.startLeaveForm(message)
	case "seleccionar":
		h.selectLeaveRecord(message, args)
	case "deseleccionar":
		h.deselectLeaveRecords(message)
	case "modificar":
		h.modifyLeaveRecord(message)
	case "cancelar":
		h.cancelForm(message)
	case "eliminar":
		h.deleteLeaveRecords(message)
	case "calendario":
		h.showCalendar(message, args)
	case "importar":
		h.importLeave(message, args)
	case "exportar":
		h.exportLeave(message)

	// Directorio de contactos
	case "contactos":
		h.showContacts(message, args)
	case "agregarcontacto":
		h.startContactForm(message)
	case "modificarcontacto":
		h.startContactEdit(message, args)
	case "eliminarcontacto":
		h.deleteContact(message, args)
	case "importarcontactos":
		h.importContacts(message, args)
	case "exportarcontactos":
		h.exportContacts(message)

	// Tabla de sucursales (movilizaciones)
	case "sucursales":
		h.showBranchTable(message)
	case "setsucursal":
		h.setBranchField(message, args)
	case "limpiarsucursales":
		h.clearBranchTable(message)
	case "exportarsucursales":
		h.exportBranchTable(message)

	// Tabla de emergencias
	case "emergencias":
		h.showEmergencyTable(message)
	case "setemergencia":
		h.setEmergencyField(message, args)
	case "limpiaremergencias":
		h.clearEmergencyTable(message)
	case "exportaremergencias":
		h.exportEmergencyTable(message)

	// Preguntas frecuentes
	case "faq":
		h.showFAQ(message, args)
	case "recargarfaq":
		h.reloadFAQ(message)

	default:
		h.send(message.Chat.ID, "Comando no reconocido. Use /help.")
	}
}

func (h *Handler) sendStartMessage(message *tgbotapi.Message) {
	h.sendMarkdown(message.Chat.ID,
		`*Sección de Coordinación Territorial*

Formularios disponibles:
📅 Vacaciones y permisos — /registros
📇 Directorio de contactos — /contactos
🏢 Situación de sucursales — /sucursales
🚨 Tabla de emergencias — /emergencias
❓ Preguntas frecuentes — /faq

Use /help para el detalle de comandos.`)
}

func (h *Handler) sendHelpMessage(message *tgbotapi.Message) {
	h.sendMarkdown(message.Chat.ID,
		`*Comandos*

*Vacaciones y permisos*
/registros — lista de registros
/guardar — nuevo registro (formulario paso a paso)
/seleccionar N — selecciona el registro N
/deseleccionar — limpia la selección
/modificar — edita el registro seleccionado
/cancelar — descarta el formulario en curso
/eliminar — elimina los registros seleccionados
/calendario [nombre] — calendario anual
/importar [adjunto] — importa desde Excel
/exportar — descarga Registros + Calendario

*Contactos*
/contactos [texto] — lista o busca
/agregarcontacto — formulario paso a paso
/modificarcontacto N
/eliminarcontacto N
/importarcontactos [adjunto] · /exportarcontactos

*Sucursales (movilizaciones)*
/sucursales — estado por región
/setsucursal región | campo | valor
/limpiarsucursales · /exportarsucursales

*Emergencias*
/emergencias — estado por región
/setemergencia región | campo | valor
/limpiaremergencias · /exportaremergencias

*FAQ*
/faq [texto] · /recargarfaq`)
}
