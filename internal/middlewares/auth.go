package middlewares

import (
	"sync"

	internalhelpers "github.com/udistrital/academico_mid/internal/helpers"

	beego "github.com/beego/beego/v2/server/web"
	"github.com/beego/beego/v2/server/web/context"
)

var (
	authOnce sync.Once
)

// UseAuth registra el middleware de autenticación una sola vez.
func UseAuth() {
	authOnce.Do(func() {
		beego.InsertFilter("/*", beego.BeforeRouter, authFilter)
	})
}

// AuthFilter expone el filtro para escenarios donde el registro manual sea preferido.
func AuthFilter(ctx *context.Context) {
	authFilter(ctx)
}

func authFilter(ctx *context.Context) {
	// Cargar y cachear los claims; la ausencia de header no es un error aquí,
	// cada operación decide si exige roles.
	if _, err := internalhelpers.Claims(ctx); err != nil && err != internalhelpers.ErrNoAuthHeader {
		ctx.Input.SetData("auth_error", err)
	}
}
