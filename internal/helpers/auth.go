package helpers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beego/beego/v2/server/web/context"
	"github.com/golang-jwt/jwt/v5"
)

const ctxClaimsKey = "__academico_mid_jwt_claims"

var (
	// ErrNoAuthHeader se devuelve cuando no se encuentra el header Authorization.
	ErrNoAuthHeader = errors.New("authorization header missing")
	// ErrInvalidToken se devuelve cuando el token no es un JWT válido.
	ErrInvalidToken = errors.New("invalid bearer token")
	// ErrClaimNotFound indica que el claim requerido no está presente.
	ErrClaimNotFound = errors.New("claim not found")
)

// Claims obtiene y cachea en el request los claims del JWT de Authorization.
// El MID no verifica firmas; la validación criptográfica es del backend.
func Claims(ctx *context.Context) (jwt.MapClaims, error) {
	if cached := ctx.Input.GetData(ctxClaimsKey); cached != nil {
		if claims, ok := cached.(jwt.MapClaims); ok {
			return claims, nil
		}
	}

	token, err := extractBearer(ctx)
	if err != nil {
		return nil, err
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, ErrInvalidToken
	}
	ctx.Input.SetData(ctxClaimsKey, claims)
	return claims, nil
}

// DocumentoUsuario retorna el claim documento del token.
func DocumentoUsuario(ctx *context.Context) (string, error) {
	return getStringClaim(ctx, "documento")
}

// RequireRole valida que el token contenga alguno de los roles requeridos.
func RequireRole(ctx *context.Context, roles ...string) error {
	if len(roles) == 0 {
		return nil
	}
	claims, err := Claims(ctx)
	if err != nil {
		return err
	}

	userRoles := extractRoles(claims)
	if len(userRoles) == 0 {
		return fmt.Errorf("%w: roles", ErrClaimNotFound)
	}

	roleSet := make(map[string]struct{}, len(userRoles))
	for _, r := range userRoles {
		roleSet[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}
	for _, required := range roles {
		if _, ok := roleSet[strings.ToLower(strings.TrimSpace(required))]; ok {
			return nil
		}
	}
	return errors.New("insufficient roles")
}

func getStringClaim(ctx *context.Context, key string) (string, error) {
	claims, err := Claims(ctx)
	if err != nil {
		return "", err
	}
	value, ok := claims[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrClaimNotFound, key)
	}
	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("%w: %s", ErrClaimNotFound, key)
	}
	return strings.TrimSpace(s), nil
}

func extractBearer(ctx *context.Context) (string, error) {
	header := strings.TrimSpace(ctx.Input.Header("Authorization"))
	if header == "" {
		return "", ErrNoAuthHeader
	}
	if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return "", ErrInvalidToken
	}
	return strings.TrimSpace(header[7:]), nil
}

func extractRoles(claims jwt.MapClaims) []string {
	if roles := parseRolesValue(claims["roles"]); len(roles) > 0 {
		return roles
	}
	if roles := parseRolesValue(claims["role"]); len(roles) > 0 {
		return roles
	}
	if realm, ok := claims["realm_access"].(map[string]interface{}); ok {
		if roles := parseRolesValue(realm["roles"]); len(roles) > 0 {
			return roles
		}
	}
	return nil
}

func parseRolesValue(raw interface{}) []string {
	switch v := raw.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		split := strings.Split(v, ",")
		result := make([]string, 0, len(split))
		for _, part := range split {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	case []interface{}:
		result := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				if trimmed := strings.TrimSpace(s); trimmed != "" {
					result = append(result, trimmed)
				}
			}
		}
		return result
	case []string:
		result := make([]string, 0, len(v))
		for _, item := range v {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	default:
		return nil
	}
}
