package services

import (
	"sync"

	"github.com/udistrital/academico_mid/internal/ords"
	rootservices "github.com/udistrital/academico_mid/services"
)

var (
	regOnce     sync.Once
	cliente     *ords.Cliente
	estudiantes *EstudiantesService
	periodos    *PeriodosService
	alertas     *AlertasService
	reportes    *ReportesService
	grupos      *GruposService
)

// inicializar arma el cliente ORDS y los servicios una sola vez por proceso.
func inicializar() {
	regOnce.Do(func() {
		cfg := rootservices.GetConfig()
		var sesion *ords.Sesion
		if cfg.SesionArchivo != "" {
			sesion = ords.NuevaSesionArchivo(cfg.SesionArchivo)
		} else {
			sesion = ords.NuevaSesion()
		}
		cliente = ords.NuevoCliente(cfg.ORDSBaseURL, cfg.RequestTimeout, sesion)
		estudiantes = NuevosEstudiantes(cliente)
		periodos = NuevosPeriodos(cliente)
		alertas = NuevasAlertas(cliente)
		reportes = NuevosReportes(cliente)
		grupos = NuevosGrupos(cliente)
	})
}

// Cliente devuelve el adaptador de transporte compartido.
func Cliente() *ords.Cliente {
	inicializar()
	return cliente
}

// Sesion devuelve la sesión única del proceso.
func Sesion() *ords.Sesion {
	inicializar()
	return cliente.Sesion()
}

// Estudiantes devuelve el servicio de estudiantes compartido.
func Estudiantes() *EstudiantesService {
	inicializar()
	return estudiantes
}

// Periodos devuelve el servicio de períodos compartido.
func Periodos() *PeriodosService {
	inicializar()
	return periodos
}

// Alertas devuelve el servicio de alertas compartido.
func Alertas() *AlertasService {
	inicializar()
	return alertas
}

// Reportes devuelve el servicio de reportes compartido.
func Reportes() *ReportesService {
	inicializar()
	return reportes
}

// Grupos devuelve el servicio de grupos compartido.
func Grupos() *GruposService {
	inicializar()
	return grupos
}
