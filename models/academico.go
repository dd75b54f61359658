package models

import "encoding/json"

// Estudiante es la proyección del registro de estudiante que entrega ORDS.
type Estudiante struct {
	CodEstudiante    string  `json:"cod_estudiante"`
	TipoDocumento    string  `json:"tipo_documento"`
	NumeroDocumento  string  `json:"numero_documento"`
	Nombres          string  `json:"nombres"`
	Apellidos        string  `json:"apellidos"`
	EmailInstitucion string  `json:"email_institucional"`
	EmailPersonal    string  `json:"email_personal,omitempty"`
	CodPrograma      string  `json:"cod_programa"`
	Estado           string  `json:"estado"`
	FechaIngreso     string  `json:"fecha_ingreso"`
	PromedioAcum     float64 `json:"promedio_acumulado"`
	CreditosAprob    int     `json:"creditos_aprobados"`
	NivelRiesgo      int     `json:"nivel_riesgo"`
}

// Periodo representa un período académico con código compuesto, ej. "2025-1".
type Periodo struct {
	CodPeriodo      string    `json:"cod_periodo"`
	FechaInicio     string    `json:"fecha_inicio"`
	FechaFin        string    `json:"fecha_fin"`
	Estado          string    `json:"estado"`
	VentanasActivas []Ventana `json:"ventanas_activas,omitempty"`
}

// Ventana es una franja del calendario académico; solo lectura desde el cliente.
type Ventana struct {
	TipoVentana     string `json:"tipo_ventana"`
	Nombre          string `json:"nombre"`
	FechaInicio     string `json:"fecha_inicio"`
	FechaFin        string `json:"fecha_fin"`
	Estado          string `json:"estado"`
	DiasRestantes   int    `json:"dias_restantes"`
	HorasRestantes  int    `json:"horas_restantes"`
}

// Alerta es una notificación generada por el backend sobre un estudiante o grupo.
// El estado de lectura viene duplicado (fecha_lectura y leida); ver Leida().
type Alerta struct {
	Id            int64  `json:"id"`
	TipoAlerta    string `json:"tipo_alerta"`
	Prioridad     string `json:"prioridad"`
	Mensaje       string `json:"mensaje"`
	CodEstudiante string `json:"cod_estudiante,omitempty"`
	CodGrupo      string `json:"cod_grupo,omitempty"`
	FechaCreacion string `json:"fecha_creacion"`
	FechaLectura  string `json:"fecha_lectura,omitempty"`
	LeidaFlag     bool   `json:"leida"`
}

// Leida considera la alerta leída si cualquiera de los dos marcadores lo indica.
// El backend no ha definido cuál es autoritativo, así que se revisan ambos.
func (a Alerta) Leida() bool {
	return a.FechaLectura != "" || a.LeidaFlag
}

// Grupo describe la sección de una asignatura con su cupo.
type Grupo struct {
	CodGrupo      string `json:"cod_grupo"`
	CodAsignatura string `json:"cod_asignatura"`
	NombreGrupo   string `json:"nombre_grupo"`
	CupoMaximo    int    `json:"cupo_maximo"`
	Inscritos     int    `json:"inscritos"`
}

// Reporte envuelve el payload opaco de un reporte junto a su metadata de generación.
type Reporte struct {
	TipoReporte     string          `json:"tipo_reporte"`
	FechaGeneracion string          `json:"fecha_generacion"`
	Datos           json.RawMessage `json:"datos"`
}

// ListaPaginada es el contrato de todos los endpoints de listado de ORDS.
type ListaPaginada[T any] struct {
	Items   []T  `json:"items"`
	HasMore bool `json:"hasMore"`
	Count   int  `json:"count"`
}
