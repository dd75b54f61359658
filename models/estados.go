package models

// Estados de estudiante según la columna estado del esquema académico.
const (
	EstudianteActivo   = "ACTIVO"
	EstudianteInactivo = "INACTIVO"
	EstudianteRetirado = "RETIRADO"
	EstudianteGraduado = "GRADUADO"
)

// Estados de período. El backend garantiza que a lo sumo uno está ACTIVO;
// activar un período cierra implícitamente el anterior.
const (
	PeriodoActivo  = "ACTIVO"
	PeriodoCerrado = "CERRADO"
	PeriodoProximo = "PROXIMO"
)

// Tipos de ventana de calendario.
const (
	VentanaMatricula    = "MATRICULA"
	VentanaCancelacion  = "CANCELACION"
	VentanaModificacion = "MODIFICACION"
	VentanaCierreNotas  = "CIERRE_NOTAS"
)

// Estado derivado de una ventana respecto a la fecha actual.
const (
	VentanaEstadoActiva  = "ACTIVA"
	VentanaEstadoProxima = "PROXIMA"
	VentanaEstadoCerrada = "CERRADA"
)

// Prioridades de alerta.
const (
	AlertaPrioridadCritica = "CRÍTICA"
	AlertaPrioridadAlta    = "ALTA"
	AlertaPrioridadMedia   = "MEDIA"
	AlertaPrioridadBaja    = "BAJA"
)

// TiposVentana lista los tipos de ventana reconocidos.
var TiposVentana = []string{
	VentanaMatricula,
	VentanaCancelacion,
	VentanaModificacion,
	VentanaCierreNotas,
}

// EsTipoVentana indica si el tipo recibido corresponde a una ventana conocida.
func EsTipoVentana(tipo string) bool {
	for _, t := range TiposVentana {
		if t == tipo {
			return true
		}
	}
	return false
}
