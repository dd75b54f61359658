package controllers

import (
	"net/http"

	rootcontrollers "github.com/udistrital/academico_mid/controllers"
	"github.com/udistrital/academico_mid/helpers"
	"github.com/udistrital/academico_mid/internal/dto"
	internalhelpers "github.com/udistrital/academico_mid/internal/helpers"
	internalservices "github.com/udistrital/academico_mid/internal/services"
)

// PeriodosController expone la gestión de períodos académicos.
type PeriodosController struct {
	rootcontrollers.BaseController
}

func (c *PeriodosController) codPeriodo() (string, bool) {
	cod, err := internalhelpers.ParamStr(c.Ctx, ":cod")
	if err != nil {
		c.RespondError(helpers.NewAppError(http.StatusBadRequest, "cod_periodo requerido", err), "")
		return "", false
	}
	return cod, true
}

// GetListado devuelve todos los períodos.
// @router /v1/periodos [get]
func (c *PeriodosController) GetListado() {
	lista, err := internalservices.Periodos().Listar(requestContext(c.Ctx))
	if err != nil {
		c.RespondError(err, "error consultando períodos")
		return
	}
	c.RespondSuccess(http.StatusOK, "", lista)
}

// GetActivo devuelve el período vigente.
// @router /v1/periodos/activo [get]
func (c *PeriodosController) GetActivo() {
	p, err := internalservices.Periodos().Activo(requestContext(c.Ctx))
	if err != nil {
		c.RespondError(err, "error consultando el período activo")
		return
	}
	c.RespondSuccess(http.StatusOK, "", p)
}

// GetById devuelve un período puntual.
// @router /v1/periodos/:cod [get]
func (c *PeriodosController) GetById() {
	cod, ok := c.codPeriodo()
	if !ok {
		return
	}
	p, err := internalservices.Periodos().Obtener(requestContext(c.Ctx), cod)
	if err != nil {
		c.RespondError(err, "error consultando el período")
		return
	}
	c.RespondSuccess(http.StatusOK, "", p)
}

// GetEstadisticas devuelve los agregados del período.
// @router /v1/periodos/:cod/estadisticas [get]
func (c *PeriodosController) GetEstadisticas() {
	cod, ok := c.codPeriodo()
	if !ok {
		return
	}
	stats, err := internalservices.Periodos().Estadisticas(requestContext(c.Ctx), cod)
	if err != nil {
		c.RespondError(err, "error consultando estadísticas del período")
		return
	}
	c.RespondSuccess(http.StatusOK, "", stats)
}

// Post crea un período.
// @router /v1/periodos [post]
func (c *PeriodosController) Post() {
	if err := permisoGestion(c.Ctx); err != nil {
		c.RespondError(err, "")
		return
	}
	var body dto.PeriodoReq
	if err := c.ParseValidJSONBody(&body); err != nil {
		c.RespondError(err, "cuerpo inválido")
		return
	}
	resp, err := internalservices.Periodos().Crear(requestContext(c.Ctx), body)
	if err != nil {
		c.RespondError(err, "error creando el período")
		return
	}
	c.RespondSuccess(http.StatusCreated, "período creado", resp)
}

// Put actualiza un período.
// @router /v1/periodos/:cod [put]
func (c *PeriodosController) Put() {
	cod, ok := c.codPeriodo()
	if !ok {
		return
	}
	var body dto.PeriodoReq
	if err := c.ParseValidJSONBody(&body); err != nil {
		c.RespondError(err, "cuerpo inválido")
		return
	}
	resp, err := internalservices.Periodos().Actualizar(requestContext(c.Ctx), cod, body)
	if err != nil {
		c.RespondError(err, "error actualizando el período")
		return
	}
	c.RespondSuccess(http.StatusOK, "período actualizado", resp)
}

// Delete elimina un período.
// @router /v1/periodos/:cod [delete]
func (c *PeriodosController) Delete() {
	if err := permisoGestion(c.Ctx); err != nil {
		c.RespondError(err, "")
		return
	}
	cod, ok := c.codPeriodo()
	if !ok {
		return
	}
	resp, err := internalservices.Periodos().Eliminar(requestContext(c.Ctx), cod)
	if err != nil {
		c.RespondError(err, "error eliminando el período")
		return
	}
	c.RespondSuccess(http.StatusOK, "período eliminado", resp)
}

// PostActivar marca el período como vigente; el backend cierra el anterior.
// @router /v1/periodos/:cod/activar [post]
func (c *PeriodosController) PostActivar() {
	if err := permisoGestion(c.Ctx); err != nil {
		c.RespondError(err, "")
		return
	}
	cod, ok := c.codPeriodo()
	if !ok {
		return
	}
	resp, err := internalservices.Periodos().Activar(requestContext(c.Ctx), cod)
	if err != nil {
		c.RespondError(err, "error activando el período")
		return
	}
	c.RespondSuccess(http.StatusOK, "período activado", resp)
}

// PostCerrar marca el período como cerrado.
// @router /v1/periodos/:cod/cerrar [post]
func (c *PeriodosController) PostCerrar() {
	if err := permisoGestion(c.Ctx); err != nil {
		c.RespondError(err, "")
		return
	}
	cod, ok := c.codPeriodo()
	if !ok {
		return
	}
	resp, err := internalservices.Periodos().Cerrar(requestContext(c.Ctx), cod)
	if err != nil {
		c.RespondError(err, "error cerrando el período")
		return
	}
	c.RespondSuccess(http.StatusOK, "período cerrado", resp)
}
