package controllers

import (
	"net/http"

	"github.com/beego/beego/v2/core/logs"

	rootcontrollers "github.com/udistrital/academico_mid/controllers"
	"github.com/udistrital/academico_mid/helpers"
	internalhelpers "github.com/udistrital/academico_mid/internal/helpers"
	internalservices "github.com/udistrital/academico_mid/internal/services"
	"github.com/udistrital/academico_mid/internal/stores"
	"github.com/udistrital/academico_mid/models"
)

// AlertasController expone las alertas académicas y las ventanas de calendario.
type AlertasController struct {
	rootcontrollers.BaseController
}

// GetReporteGeneral devuelve todas las alertas vigentes junto con el conteo
// de no leídas.
// @router /v1/alertas/reporte-general [get]
func (c *AlertasController) GetReporteGeneral() {
	store := stores.NuevoAlertasStore(internalservices.Alertas())
	if res := store.Cargar(requestContext(c.Ctx)); !res.Exito {
		c.RespondError(helpers.NewAppError(http.StatusBadGateway, res.Error, nil), "")
		return
	}
	c.RespondSuccess(http.StatusOK, "", map[string]interface{}{
		"items":            store.Items(),
		"conteo_no_leidas": store.ConteoNoLeidas(),
	})
}

// GetAsistenciaBaja devuelve las alertas de inasistencia del período.
// @router /v1/alertas/asistencia-baja/:cod [get]
func (c *AlertasController) GetAsistenciaBaja() {
	cod, err := internalhelpers.ParamStr(c.Ctx, ":cod")
	if err != nil {
		c.RespondError(helpers.NewAppError(http.StatusBadRequest, "cod_periodo requerido", err), "")
		return
	}

	lista, err := internalservices.Alertas().AsistenciaBaja(requestContext(c.Ctx), cod)
	if err != nil {
		c.RespondError(err, "error consultando alertas de asistencia")
		return
	}
	c.RespondSuccess(http.StatusOK, "", lista)
}

// GetVentanas devuelve las ventanas del calendario académico.
// @router /v1/alertas/ventanas-calendario [get]
func (c *AlertasController) GetVentanas() {
	lista, err := internalservices.Alertas().VentanasCalendario(requestContext(c.Ctx))
	if err != nil {
		c.RespondError(err, "error consultando ventanas de calendario")
		return
	}
	c.RespondSuccess(http.StatusOK, "", lista)
}

// GetVentanaActiva devuelve la ventana vigente del tipo indicado.
// @router /v1/alertas/ventana-activa/:tipo [get]
func (c *AlertasController) GetVentanaActiva() {
	tipo, err := internalhelpers.ParamStr(c.Ctx, ":tipo")
	if err != nil {
		c.RespondError(helpers.NewAppError(http.StatusBadRequest, "tipo de ventana requerido", err), "")
		return
	}
	if !models.EsTipoVentana(tipo) {
		c.RespondError(helpers.NewAppError(http.StatusBadRequest, "tipo de ventana desconocido: "+tipo, nil), "")
		return
	}

	v, err := internalservices.Alertas().VentanaActiva(requestContext(c.Ctx), tipo)
	if err != nil {
		c.RespondError(err, "error consultando la ventana activa")
		return
	}
	c.RespondSuccess(http.StatusOK, "", v)
}

// PutLeida marca una alerta como leída.
// @router /v1/alertas/:id/leida [put]
func (c *AlertasController) PutLeida() {
	id, err := internalhelpers.ParamInt64(c.Ctx, ":id")
	if err != nil {
		c.RespondError(helpers.NewAppError(http.StatusBadRequest, "id de alerta inválido", err), "")
		return
	}

	resp, err := internalservices.Alertas().MarcarLeida(requestContext(c.Ctx), id)
	if err != nil {
		c.RespondError(err, "error marcando la alerta")
		return
	}
	if doc, errDoc := internalhelpers.DocumentoUsuario(c.Ctx); errDoc == nil {
		logs.Info("alertas: alerta", id, "marcada como leída por", doc)
	}
	c.RespondSuccess(http.StatusOK, "alerta marcada como leída", resp)
}

// PutTodasLeidas marca todas las alertas no leídas; el fallo parcial se
// reporta con los conteos exitosas/total, no como error duro.
// @router /v1/alertas/todas-leidas [put]
func (c *AlertasController) PutTodasLeidas() {
	ctx := requestContext(c.Ctx)
	store := stores.NuevoAlertasStore(internalservices.Alertas())
	if res := store.Cargar(ctx); !res.Exito {
		c.RespondError(helpers.NewAppError(http.StatusBadGateway, res.Error, nil), "")
		return
	}

	res := store.MarcarTodasLeidas(ctx)
	mensaje := "todas las alertas fueron marcadas"
	if !res.Exito {
		mensaje = "algunas alertas no pudieron marcarse"
	}
	c.RespondSuccess(http.StatusOK, mensaje, res.Datos)
}
