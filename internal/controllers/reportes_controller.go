package controllers

import (
	stdctx "context"
	"net/http"
	"strings"

	rootcontrollers "github.com/udistrital/academico_mid/controllers"
	"github.com/udistrital/academico_mid/helpers"
	internalhelpers "github.com/udistrital/academico_mid/internal/helpers"
	internalservices "github.com/udistrital/academico_mid/internal/services"
	"github.com/udistrital/academico_mid/models"
)

// ReportesController expone los 18 reportes analíticos y sus exportaciones.
type ReportesController struct {
	rootcontrollers.BaseController
}

func (c *ReportesController) tipoReporte() (string, bool) {
	tipo, err := internalhelpers.ParamStr(c.Ctx, ":tipo")
	if err != nil {
		c.RespondError(helpers.NewAppError(http.StatusBadRequest, "tipo de reporte requerido", err), "")
		return "", false
	}
	if !models.EsTipoReporte(tipo) {
		c.RespondError(helpers.NewAppError(http.StatusBadRequest, "tipo de reporte desconocido: "+tipo, nil), "")
		return "", false
	}
	return tipo, true
}

func (c *ReportesController) params() (internalservices.ParamsReporte, bool) {
	params := internalservices.ParamsReporte{
		Periodo:       strings.TrimSpace(c.GetString("periodo")),
		CodPrograma:   strings.TrimSpace(c.GetString("cod_programa")),
		CodAsignatura: strings.TrimSpace(c.GetString("cod_asignatura")),
		Cohorte:       strings.TrimSpace(c.GetString("cohorte")),
	}
	if params.Periodo == "" {
		c.RespondError(helpers.NewAppError(http.StatusBadRequest, "periodo requerido", nil), "")
		return params, false
	}
	return params, true
}

// GetReporte devuelve el dataset JSON del reporte.
// @router /v1/reportes/:tipo [get]
func (c *ReportesController) GetReporte() {
	tipo, ok := c.tipoReporte()
	if !ok {
		return
	}
	params, ok := c.params()
	if !ok {
		return
	}

	rep, err := internalservices.Reportes().Generar(requestContext(c.Ctx), tipo, params)
	if err != nil {
		c.RespondError(err, "error generando el reporte")
		return
	}
	c.RespondSuccess(http.StatusOK, "", rep)
}

// GetPDF devuelve el blob PDF del reporte.
// @router /v1/reportes/:tipo/pdf [get]
func (c *ReportesController) GetPDF() {
	c.servirBlob(internalservices.Reportes().DescargarPDF, "application/pdf")
}

// GetExcel devuelve el blob Excel del reporte.
// @router /v1/reportes/:tipo/excel [get]
func (c *ReportesController) GetExcel() {
	c.servirBlob(internalservices.Reportes().DescargarExcel,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

func (c *ReportesController) servirBlob(descargar func(ctx stdctx.Context, tipo string, params internalservices.ParamsReporte) ([]byte, error), contentType string) {
	tipo, ok := c.tipoReporte()
	if !ok {
		return
	}
	params, ok := c.params()
	if !ok {
		return
	}

	blob, err := descargar(requestContext(c.Ctx), tipo, params)
	if err != nil {
		c.RespondError(err, "error exportando el reporte")
		return
	}

	c.Ctx.Output.Header("Content-Type", contentType)
	c.Ctx.Output.Header("Content-Disposition", "attachment; filename="+tipo)
	_ = c.Ctx.Output.Body(blob)
}
