package routers

import (
	"github.com/udistrital/academico_mid/controllers/errorhandler"
	internalcontrollers "github.com/udistrital/academico_mid/internal/controllers"

	beego "github.com/beego/beego/v2/server/web"
)

func init() {
	// Manejador de errores
	beego.ErrorController(&errorhandler.ErrorHandlerController{})

	beego.Router("/v1/estudiantes", &internalcontrollers.EstudiantesController{}, "get:GetListado;post:Post")
	beego.Router("/v1/estudiantes/:cod/historial", &internalcontrollers.EstudiantesController{}, "get:GetHistorial")
	beego.Router("/v1/estudiantes/:cod", &internalcontrollers.EstudiantesController{}, "get:GetById;put:Put;delete:Delete")

	beego.Router("/v1/periodos", &internalcontrollers.PeriodosController{}, "get:GetListado;post:Post")
	beego.Router("/v1/periodos/activo", &internalcontrollers.PeriodosController{}, "get:GetActivo")
	beego.Router("/v1/periodos/:cod/estadisticas", &internalcontrollers.PeriodosController{}, "get:GetEstadisticas")
	beego.Router("/v1/periodos/:cod/activar", &internalcontrollers.PeriodosController{}, "post:PostActivar")
	beego.Router("/v1/periodos/:cod/cerrar", &internalcontrollers.PeriodosController{}, "post:PostCerrar")
	beego.Router("/v1/periodos/:cod", &internalcontrollers.PeriodosController{}, "get:GetById;put:Put;delete:Delete")

	beego.Router("/v1/alertas/reporte-general", &internalcontrollers.AlertasController{}, "get:GetReporteGeneral")
	beego.Router("/v1/alertas/asistencia-baja/:cod", &internalcontrollers.AlertasController{}, "get:GetAsistenciaBaja")
	beego.Router("/v1/alertas/ventanas-calendario", &internalcontrollers.AlertasController{}, "get:GetVentanas")
	beego.Router("/v1/alertas/ventana-activa/:tipo", &internalcontrollers.AlertasController{}, "get:GetVentanaActiva")
	beego.Router("/v1/alertas/todas-leidas", &internalcontrollers.AlertasController{}, "put:PutTodasLeidas")
	beego.Router("/v1/alertas/:id/leida", &internalcontrollers.AlertasController{}, "put:PutLeida")

	beego.Router("/v1/reportes/:tipo/pdf", &internalcontrollers.ReportesController{}, "get:GetPDF")
	beego.Router("/v1/reportes/:tipo/excel", &internalcontrollers.ReportesController{}, "get:GetExcel")
	beego.Router("/v1/reportes/:tipo", &internalcontrollers.ReportesController{}, "get:GetReporte")

	beego.Router("/v1/grupos/asignar", &internalcontrollers.GruposController{}, "post:PostAsignar")
	beego.Router("/v1/grupos/:id/estudiantes/:cod", &internalcontrollers.GruposController{}, "delete:DeleteEstudiante")
	beego.Router("/v1/grupos/:id/estudiantes", &internalcontrollers.GruposController{}, "get:GetEstudiantes")
	beego.Router("/v1/grupos/:id/estadisticas", &internalcontrollers.GruposController{}, "get:GetEstadisticas")

	beego.Router("/v1/dashboard", &internalcontrollers.DashboardController{}, "get:GetResumen")
}
