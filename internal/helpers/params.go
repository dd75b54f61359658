package helpers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beego/beego/v2/server/web/context"
)

// ParamStr extrae un parámetro de ruta no vacío.
func ParamStr(ctx *context.Context, name string) (string, error) {
	if ctx == nil {
		return "", fmt.Errorf("contexto nil")
	}
	raw := strings.TrimSpace(ctx.Input.Param(name))
	if raw == "" {
		return "", fmt.Errorf("parametro %s vacío", name)
	}
	return raw, nil
}

// ParamInt64 extrae un parámetro de ruta como entero.
func ParamInt64(ctx *context.Context, name string) (int64, error) {
	raw, err := ParamStr(ctx, name)
	if err != nil {
		return 0, err
	}
	val, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parametro %s inválido", name)
	}
	return val, nil
}

// QueryLimitOffset aplica los defaults de paginación del cliente (25/0).
func QueryLimitOffset(limitStr, offsetStr string) (int, int) {
	limit := 25
	offset := 0
	if v, err := strconv.Atoi(strings.TrimSpace(limitStr)); err == nil && v > 0 {
		limit = v
	}
	if v, err := strconv.Atoi(strings.TrimSpace(offsetStr)); err == nil && v >= 0 {
		offset = v
	}
	return limit, offset
}
