package usecase

const (
	msgDownloadDetail  = "¿Querés descargar el detalle en Excel (CSV)?"
	msgDownloadListing = "¿Querés descargar el listado en Excel (CSV)?"
	msgExportDone      = "✅ Archivo CSV generado y descargado."
	msgExportDeclined  = "De acuerdo. ¿Te ayudo con otra consulta?"

	msgLeaderHoursHeader = `Resumen de horas en proyecto "%s" (%s, %s):`
	msgLeaderHoursTotal  = `Total: %sh`

	msgTeamEmpty  = `No se encontraron horas cargadas en el proyecto "%s" para %s (%s).`
	msgTeamHeader = `Resumen de horas del equipo en proyecto "%s" (%s, %s):`

	msgMissingAllDone = "✅ Todos los miembros del equipo completaron sus horas en el proyecto \"%s\" para %s (%s).\n\nDías laborables: %d (%sh esperadas)"
	msgMissingHeader  = `Miembros con horas faltantes en proyecto "%s" (%s, %s):`
	msgMissingDays    = `Días laborables: %d (%sh esperadas por persona)`
	msgMissingLine    = `• %s: %sh cargadas, %sh faltantes`
	msgMissingTotal   = `Total de horas faltantes: %sh`

	msgHistoryNotFound = `No se encontró al colaborador "%s" en la base de datos.`
	msgHistoryEmpty    = `No se encontraron horas cargadas por %s en el proyecto "%s" en los %s (%s).`
	msgHistoryHeader   = `Historial de %s en proyecto "%s" (%s, %s):`
	msgHistoryLine     = `• %s: %sh (%d %s)`
	msgHistoryTotal    = `Total: %sh en %d %s`

	msgMonthlyEmpty  = `No se encontraron horas cargadas en el proyecto "%s" para %s.`
	msgMonthlyHeader = `Resumen mensual de horas del equipo en proyecto "%s" (%s):`

	msgNoHoursAllDone = `✅ Todos los miembros asignados al proyecto "%s" cargaron horas %s (%s).`
	msgNoHoursHeader  = `Miembros sin horas cargadas en el proyecto "%s" %s (%s):`

	msgReportLeaderNotFound = `No se encontró al líder "%s" en la base de usuarios.`
	msgReportNoTeam         = `No se encontraron colaboradores asociados al líder "%s".`
	msgReportEmpty          = `No se encontraron horas cargadas para %s.`
	msgReportHeader         = `Resumen de horas para %s:`
	msgReportTotal          = `Total acumulado: %sh`
	msgReportCostCenter     = `el Centro de Costo "%s"`
	msgReportProject        = `el proyecto "%s"`
	msgReportTeam           = `el equipo de %s`

	msgUserLine  = `• %s: %sh`
	msgNameLine  = `• %s`
	msgTeamTotal = `Total del equipo: %sh`
	msgTaskCount = `%d %s %s`
)
