package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/beego/beego/v2/server/web/context"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func contextoCon(t *testing.T, authorization string) *context.Context {
	t.Helper()
	req := httptest.NewRequest("GET", "/v1/periodos", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	ctx := context.NewContext()
	ctx.Reset(httptest.NewRecorder(), req)
	return ctx
}

func bearerCon(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secreto"))
	if err != nil {
		t.Fatalf("no se pudo firmar el token: %v", err)
	}
	return "Bearer " + token
}

func TestClaims(t *testing.T) {
	ctx := contextoCon(t, bearerCon(t, jwt.MapClaims{"documento": "100200300"}))

	claims, err := Claims(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "100200300", claims["documento"])

	// segunda llamada usa el cache del request
	otra, err := Claims(ctx)
	assert.NoError(t, err)
	assert.Equal(t, claims, otra)
}

func TestClaimsSinHeader(t *testing.T) {
	_, err := Claims(contextoCon(t, ""))
	assert.ErrorIs(t, err, ErrNoAuthHeader)
}

func TestClaimsTokenInvalido(t *testing.T) {
	_, err := Claims(contextoCon(t, "Bearer no-es-un-jwt"))
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = Claims(contextoCon(t, "Basic dXNlcjpwYXNz"))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDocumentoUsuario(t *testing.T) {
	doc, err := DocumentoUsuario(contextoCon(t, bearerCon(t, jwt.MapClaims{"documento": " 100 "})))
	assert.NoError(t, err)
	assert.Equal(t, "100", doc)

	_, err = DocumentoUsuario(contextoCon(t, bearerCon(t, jwt.MapClaims{"otro": "x"})))
	assert.ErrorIs(t, err, ErrClaimNotFound)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name    string
		claims  jwt.MapClaims
		roles   []string
		wantErr bool
	}{
		{name: "rol en lista", claims: jwt.MapClaims{"roles": []interface{}{"ADMIN"}}, roles: []string{"ADMIN"}},
		{name: "rol como cadena", claims: jwt.MapClaims{"role": "coordinador,docente"}, roles: []string{"COORDINADOR"}},
		{name: "realm_access", claims: jwt.MapClaims{"realm_access": map[string]interface{}{"roles": []interface{}{"ADMIN"}}}, roles: []string{"ADMIN"}},
		{name: "sin roles", claims: jwt.MapClaims{"documento": "1"}, roles: []string{"ADMIN"}, wantErr: true},
		{name: "rol insuficiente", claims: jwt.MapClaims{"roles": []interface{}{"ESTUDIANTE"}}, roles: []string{"ADMIN"}, wantErr: true},
		{name: "sin roles requeridos", claims: jwt.MapClaims{}, roles: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireRole(contextoCon(t, bearerCon(t, tt.claims)), tt.roles...)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
