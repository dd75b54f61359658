package controllers

import (
	"net/http"

	rootcontrollers "github.com/udistrital/academico_mid/controllers"
	"github.com/udistrital/academico_mid/helpers"
	"github.com/udistrital/academico_mid/internal/dto"
	internalhelpers "github.com/udistrital/academico_mid/internal/helpers"
	internalservices "github.com/udistrital/academico_mid/internal/services"
	"github.com/udistrital/academico_mid/internal/stores"
)

// GruposController expone la consulta de grupos y el flujo de asignación.
type GruposController struct {
	rootcontrollers.BaseController
}

func (c *GruposController) codGrupo() (string, bool) {
	cod, err := internalhelpers.ParamStr(c.Ctx, ":id")
	if err != nil {
		c.RespondError(helpers.NewAppError(http.StatusBadRequest, "cod_grupo requerido", err), "")
		return "", false
	}
	return cod, true
}

// GetEstudiantes devuelve los estudiantes inscritos en el grupo.
// @router /v1/grupos/:id/estudiantes [get]
func (c *GruposController) GetEstudiantes() {
	cod, ok := c.codGrupo()
	if !ok {
		return
	}
	lista, err := internalservices.Grupos().Estudiantes(requestContext(c.Ctx), cod)
	if err != nil {
		c.RespondError(err, "error consultando estudiantes del grupo")
		return
	}
	c.RespondSuccess(http.StatusOK, "", lista)
}

// GetEstadisticas devuelve el cupo y la ocupación del grupo.
// @router /v1/grupos/:id/estadisticas [get]
func (c *GruposController) GetEstadisticas() {
	cod, ok := c.codGrupo()
	if !ok {
		return
	}
	grupo, err := internalservices.Grupos().Estadisticas(requestContext(c.Ctx), cod)
	if err != nil {
		c.RespondError(err, "error consultando estadísticas del grupo")
		return
	}
	c.RespondSuccess(http.StatusOK, "", grupo)
}

// PostAsignar somete el lote de asignación a través del flujo de pantalla:
// carga concurrente del grupo, validación consultiva de cupo y envío. El
// rechazo del servidor, incluso bajo cupo, se devuelve con su mensaje intacto.
// @router /v1/grupos/asignar [post]
func (c *GruposController) PostAsignar() {
	if err := permisoGestion(c.Ctx); err != nil {
		c.RespondError(err, "")
		return
	}
	var body dto.AsignacionReq
	if err := c.ParseValidJSONBody(&body); err != nil {
		c.RespondError(err, "cuerpo inválido")
		return
	}

	ctx := requestContext(c.Ctx)
	store := stores.NuevoGrupoAsignacionStore(internalservices.Grupos(), internalservices.Estudiantes(), body.CodGrupo)
	if res := store.Cargar(ctx); !res.Exito {
		c.RespondError(helpers.NewAppError(http.StatusBadGateway, res.Error, nil), "")
		return
	}
	for _, cod := range body.Estudiantes {
		store.ToggleSeleccion(cod)
	}

	res := store.Enviar(ctx)
	if !res.Exito {
		c.RespondError(helpers.NewAppError(http.StatusConflict, res.Error, nil), "")
		return
	}
	c.RespondSuccess(http.StatusOK, "estudiantes asignados", res.Datos)
}

// DeleteEstudiante retira un único estudiante del grupo.
// @router /v1/grupos/:id/estudiantes/:cod [delete]
func (c *GruposController) DeleteEstudiante() {
	if err := permisoGestion(c.Ctx); err != nil {
		c.RespondError(err, "")
		return
	}
	codGrupo, ok := c.codGrupo()
	if !ok {
		return
	}
	codEstudiante, err := internalhelpers.ParamStr(c.Ctx, ":cod")
	if err != nil {
		c.RespondError(helpers.NewAppError(http.StatusBadRequest, "cod_estudiante requerido", err), "")
		return
	}

	resp, err := internalservices.Grupos().Retirar(requestContext(c.Ctx), codGrupo, codEstudiante)
	if err != nil {
		c.RespondError(err, "error retirando el estudiante")
		return
	}
	c.RespondSuccess(http.StatusOK, "estudiante retirado", resp)
}
