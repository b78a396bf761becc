package telegram

const (
	commandStart = "/start"
	commandHelp  = "/help"

	callbackYes = "confirm:yes"
	callbackNo  = "confirm:no"
)

const (
	msgWelcome = "👋 ¡Hola! Soy tu asistente para cargar horas.\n\n" +
		"Escribime lo que necesitás en lenguaje natural, por ejemplo:\n" +
		"• Cargá 8h de Desarrollo Web al proyecto Alfa hoy\n" +
		"• Mostrame las horas de Juan en proyecto Alfa esta semana\n\n" +
		"Usá /help para ver todo lo que puedo hacer."
	msgNothingPending = "ℹ️ No hay ninguna operación pendiente de confirmar."
	msgRateLimited    = "⏳ Estás enviando mensajes muy rápido. Esperá un momento y volvé a intentar."
	msgFailed         = "❌ Ocurrió un error al procesar tu mensaje. Intentá nuevamente."

	buttonYes = "✅ Sí"
	buttonNo  = "❌ No"
)
