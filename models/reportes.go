package models

// Tipos de reporte expuestos por ORDS bajo /reportes/{tipo}. Todos comparten la
// convención de parámetros: periodo obligatorio y cod_programa, cod_asignatura
// o cohorte según el tipo.
const (
	ReporteRendimientoPeriodo   = "rendimiento-periodo"
	ReporteEstudiantesRiesgo    = "estudiantes-riesgo"
	ReporteDesercion            = "desercion"
	ReportePromediosPrograma    = "promedios-programa"
	ReporteAsistenciaGrupo      = "asistencia-grupo"
	ReporteCreditosAprobados    = "creditos-aprobados"
	ReporteGraduadosCohorte     = "graduados-cohorte"
	ReporteMatriculasPeriodo    = "matriculas-periodo"
	ReporteCancelaciones        = "cancelaciones"
	ReporteCargaDocente         = "carga-docente"
	ReporteOcupacionGrupos      = "ocupacion-grupos"
	ReporteHistoricoPromedios   = "historico-promedios"
	ReporteResumenAlertas       = "resumen-alertas"
	ReporteUsoVentanas          = "uso-ventanas"
	ReporteEstudiantesPrograma  = "estudiantes-programa"
	ReporteAvanceCohorte        = "avance-cohorte"
	ReporteRepitenciaAsignatura = "repitencia-asignatura"
	ReporteCierreNotas          = "cierre-notas"
)

// TiposReporte es el catálogo completo de reportes disponibles.
var TiposReporte = []string{
	ReporteRendimientoPeriodo,
	ReporteEstudiantesRiesgo,
	ReporteDesercion,
	ReportePromediosPrograma,
	ReporteAsistenciaGrupo,
	ReporteCreditosAprobados,
	ReporteGraduadosCohorte,
	ReporteMatriculasPeriodo,
	ReporteCancelaciones,
	ReporteCargaDocente,
	ReporteOcupacionGrupos,
	ReporteHistoricoPromedios,
	ReporteResumenAlertas,
	ReporteUsoVentanas,
	ReporteEstudiantesPrograma,
	ReporteAvanceCohorte,
	ReporteRepitenciaAsignatura,
	ReporteCierreNotas,
}

// EsTipoReporte valida que el tipo pertenezca al catálogo.
func EsTipoReporte(tipo string) bool {
	for _, t := range TiposReporte {
		if t == tipo {
			return true
		}
	}
	return false
}
