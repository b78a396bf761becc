package orchestrator

const (
	logPrefixHandle  = "internal.orchestrator.HandleMessage"
	logPrefixResolve = "internal.orchestrator.Resolve"
	logPrefixEmit    = "internal.orchestrator.emit"
)

const (
	// HelpText is sent when no command matches.
	HelpText = "No pude entender tu solicitud. Puedo ayudarte a:\n\n" +
		"• Cargar horas diarias: \"Cargá 8h de Desarrollo Web al proyecto Alfa hoy\"\n" +
		"• Cargar horas en bloque: \"Cargá 4h de Reunión con el Cliente en proyecto Alfa de lunes a viernes\"\n" +
		"• Editar horas: \"Cambiá las horas de la tarea Planificación de ayer en proyecto Beta a 3h\"\n" +
		"• Eliminar horas: \"Eliminá las horas de la tarea Planificación del martes en proyecto Gamma\" o \"Eliminá todas las horas de todas las tareas de esta semana\"\n" +
		"• Duplicar horas de la semana pasada a esta semana: \"Copiá mis horas de la semana pasada en proyecto Delta\"\n" +
		"• Completar el mes restante con las horas del proyecto Delta de esta semana: \"Completá el mes restante con las horas del proyecto Delta de esta semana\"\n\n" +
		"¿Puedes reformular tu pedido?"

	msgPendingReminder = "ℹ️ Tenés una confirmación pendiente. Respondé \"Sí\" o \"No\" antes de enviar otro pedido."
	msgInternalError   = "❌ Ocurrió un error al procesar tu solicitud. Intentá nuevamente."
)

const (
	defaultSessionCacheSize = 1024
)
