package dto

// EstudianteReq es el cuerpo de creación/actualización de estudiante.
type EstudianteReq struct {
	CodEstudiante    string  `json:"cod_estudiante" validate:"required"`
	TipoDocumento    string  `json:"tipo_documento" validate:"required"`
	NumeroDocumento  string  `json:"numero_documento" validate:"required"`
	Nombres          string  `json:"nombres" validate:"required"`
	Apellidos        string  `json:"apellidos" validate:"required"`
	EmailInstitucion string  `json:"email_institucional" validate:"required,email"`
	EmailPersonal    string  `json:"email_personal,omitempty" validate:"omitempty,email"`
	CodPrograma      string  `json:"cod_programa" validate:"required"`
	Estado           string  `json:"estado" validate:"required,oneof=ACTIVO INACTIVO RETIRADO GRADUADO"`
	FechaIngreso     string  `json:"fecha_ingreso" validate:"required"`
	PromedioAcum     float64 `json:"promedio_acumulado" validate:"gte=0,lte=5"`
	CreditosAprob    int     `json:"creditos_aprobados" validate:"gte=0"`
}

// PeriodoReq es el cuerpo de creación/actualización de período.
type PeriodoReq struct {
	CodPeriodo  string `json:"cod_periodo" validate:"required"`
	FechaInicio string `json:"fecha_inicio" validate:"required"`
	FechaFin    string `json:"fecha_fin" validate:"required"`
	Estado      string `json:"estado" validate:"omitempty,oneof=ACTIVO CERRADO PROXIMO"`
}

// AsignacionReq es el lote de estudiantes a inscribir en un grupo.
type AsignacionReq struct {
	CodGrupo    string   `json:"cod_grupo" validate:"required"`
	Estudiantes []string `json:"estudiantes" validate:"required,min=1,dive,required"`
}
