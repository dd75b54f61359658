package controllers

import (
	stdctx "context"
	"net/http"

	webctx "github.com/beego/beego/v2/server/web/context"

	"github.com/udistrital/academico_mid/helpers"
	internalhelpers "github.com/udistrital/academico_mid/internal/helpers"
	"github.com/udistrital/academico_mid/internal/ords"
)

// rolesGestion son los roles con permiso de escritura sobre el catálogo
// académico; la autorización fina sigue siendo del backend.
var rolesGestion = []string{"ADMIN", "COORDINADOR"}

// permisoGestion valida el rol del token para las operaciones de mutación.
func permisoGestion(ctx *webctx.Context) error {
	if err := internalhelpers.RequireRole(ctx, rolesGestion...); err != nil {
		return helpers.NewAppError(http.StatusForbidden, ords.MensajePermisos, err)
	}
	return nil
}

// requestContext convierte el contexto de Beego en un context.Context estándar
// propagando el id de correlación del request entrante.
func requestContext(ctx *webctx.Context) stdctx.Context {
	base := stdctx.Background()
	if ctx != nil && ctx.Request != nil {
		base = ctx.Request.Context()
	}
	if ctx != nil {
		if corr := ctx.Input.Header("X-Correlation-Id"); corr != "" {
			base = ords.ConCorrelacion(base, corr)
		}
	}
	return base
}
