package controllers

import (
	"net/http"
	"strings"

	rootcontrollers "github.com/udistrital/academico_mid/controllers"
	"github.com/udistrital/academico_mid/helpers"
	"github.com/udistrital/academico_mid/internal/dto"
	internalhelpers "github.com/udistrital/academico_mid/internal/helpers"
	internalservices "github.com/udistrital/academico_mid/internal/services"
)

// EstudiantesController expone la gestión de estudiantes al dashboard.
type EstudiantesController struct {
	rootcontrollers.BaseController
}

// GetListado devuelve la página de estudiantes según los filtros recibidos.
// @router /v1/estudiantes [get]
func (c *EstudiantesController) GetListado() {
	limit, offset := internalhelpers.QueryLimitOffset(c.GetString("limit"), c.GetString("offset"))
	filtro := internalservices.FiltroEstudiantes{
		Limit:       limit,
		Offset:      offset,
		Estado:      strings.TrimSpace(c.GetString("estado")),
		CodPrograma: strings.TrimSpace(c.GetString("cod_programa")),
		Busqueda:    strings.TrimSpace(c.GetString("q")),
	}

	lista, err := internalservices.Estudiantes().Listar(requestContext(c.Ctx), filtro)
	if err != nil {
		c.RespondError(err, "error consultando estudiantes")
		return
	}
	resp := internalhelpers.Ok(lista)
	c.Ctx.Output.SetStatus(resp.Status)
	c.Data["json"] = resp
	_ = c.ServeJSON()
}

// GetById devuelve el detalle de un estudiante.
// @router /v1/estudiantes/:cod [get]
func (c *EstudiantesController) GetById() {
	cod, err := internalhelpers.ParamStr(c.Ctx, ":cod")
	if err != nil {
		c.RespondError(helpers.NewAppError(http.StatusBadRequest, "cod_estudiante requerido", err), "")
		return
	}

	est, err := internalservices.Estudiantes().Obtener(requestContext(c.Ctx), cod)
	if err != nil {
		c.RespondError(err, "error consultando el estudiante")
		return
	}
	c.RespondSuccess(http.StatusOK, "", est)
}

// GetHistorial devuelve el histórico académico del estudiante.
// @router /v1/estudiantes/:cod/historial [get]
func (c *EstudiantesController) GetHistorial() {
	cod, err := internalhelpers.ParamStr(c.Ctx, ":cod")
	if err != nil {
		c.RespondError(helpers.NewAppError(http.StatusBadRequest, "cod_estudiante requerido", err), "")
		return
	}

	historial, err := internalservices.Estudiantes().Historial(requestContext(c.Ctx), cod)
	if err != nil {
		c.RespondError(err, "error consultando el historial")
		return
	}
	c.RespondSuccess(http.StatusOK, "", historial)
}

// Post crea un estudiante.
// @router /v1/estudiantes [post]
func (c *EstudiantesController) Post() {
	var body dto.EstudianteReq
	if err := c.ParseValidJSONBody(&body); err != nil {
		c.RespondError(err, "cuerpo inválido")
		return
	}

	resp, err := internalservices.Estudiantes().Crear(requestContext(c.Ctx), body)
	if err != nil {
		c.RespondError(err, "error creando el estudiante")
		return
	}
	c.RespondSuccess(http.StatusCreated, "estudiante creado", resp)
}

// Put actualiza un estudiante.
// @router /v1/estudiantes/:cod [put]
func (c *EstudiantesController) Put() {
	cod, err := internalhelpers.ParamStr(c.Ctx, ":cod")
	if err != nil {
		c.RespondError(helpers.NewAppError(http.StatusBadRequest, "cod_estudiante requerido", err), "")
		return
	}

	var body dto.EstudianteReq
	if err := c.ParseValidJSONBody(&body); err != nil {
		c.RespondError(err, "cuerpo inválido")
		return
	}

	resp, err := internalservices.Estudiantes().Actualizar(requestContext(c.Ctx), cod, body)
	if err != nil {
		c.RespondError(err, "error actualizando el estudiante")
		return
	}
	c.RespondSuccess(http.StatusOK, "estudiante actualizado", resp)
}

// Delete elimina un estudiante.
// @router /v1/estudiantes/:cod [delete]
func (c *EstudiantesController) Delete() {
	if err := permisoGestion(c.Ctx); err != nil {
		c.RespondError(err, "")
		return
	}
	cod, err := internalhelpers.ParamStr(c.Ctx, ":cod")
	if err != nil {
		c.RespondError(helpers.NewAppError(http.StatusBadRequest, "cod_estudiante requerido", err), "")
		return
	}

	resp, err := internalservices.Estudiantes().Eliminar(requestContext(c.Ctx), cod)
	if err != nil {
		c.RespondError(err, "error eliminando el estudiante")
		return
	}
	c.RespondSuccess(http.StatusOK, "estudiante eliminado", resp)
}
