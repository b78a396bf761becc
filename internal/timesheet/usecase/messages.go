package usecase

const (
	msgCancelled = "Operación cancelada. ¿Hay algo más en lo que pueda ayudarte?"
	msgHoliday   = `❌ No se puede cargar horas en %s porque es un feriado: "%s".`

	msgLoadDailyConfirm = `¿Confirmás cargar %sh de "%s" al proyecto "%s" para %s (%s)?`
	msgLoadDailyDone    = `✅ Perfecto! He cargado %sh de "%s" al proyecto "%s" para %s (%s).`

	msgLoadBlockConfirm = `¿Confirmás cargar %sh de "%s" al proyecto "%s" de %s a %s (%d días)?`
	msgLoadBlockDone    = `✅ Perfecto! He cargado %sh de "%s" al proyecto "%s" para %d %s`
	msgLoadBlockRange   = ` (de %s a %s).`

	msgTaskNotFound = `❌ No encontré la tarea "%s" en el proyecto "%s" para %s (%s).`
	msgEditConfirm  = `¿Confirmás cambiar las horas de la tarea "%s" del proyecto "%s" de %s (%s) de %sh a %sh?`
	msgEditDone     = `✅ Perfecto! He cambiado las horas de la tarea "%s" del proyecto "%s" de %s (%s) de %sh a %sh.`

	msgDeleteConfirm = `¿Confirmás eliminar las horas de la tarea "%s" del proyecto "%s" de %s (%s)?`
	msgDeleteDone    = `✅ Perfecto! He eliminado las horas de la tarea "%s" del proyecto "%s" de %s (%s).`

	msgBulkEmpty   = `❌ No encontré horas cargadas para %s.`
	msgBulkConfirm = `¿Confirmás eliminar todas las horas de todas las tareas de %s? (%d %s)`
	msgBulkDone    = `✅ Perfecto! He eliminado todas las horas de todas las tareas de %s (%d %s %s).`

	msgDuplicateEmpty   = `❌ No encontré horas en la semana pasada para el proyecto "%s".`
	msgDuplicateConfirm = `¿Confirmás copiar %d %s del proyecto "%s" de la semana pasada (desde %s) a esta semana (desde %s)?`
	msgDuplicateDone    = `✅ Listo. Copié %d %s de la semana pasada para el proyecto "%s" a esta semana.`

	msgFillEmpty   = `❌ No encontré horas en esta semana para el proyecto "%s".`
	msgFillNoWeeks = "ℹ️ No quedan semanas completas en el mes para completar."
	msgFillConfirm = `¿Confirmás completar el mes con %d %s del proyecto "%s" replicadas en las semanas restantes del mes?`
	msgFillDone    = `✅ Listo. Completé el mes con %d %s %s del proyecto "%s".`

	msgSkippedHolidays = `%sSe omitieron %d %s por ser %s.`
)
