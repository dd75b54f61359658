package ords

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func tokenDePrueba(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secreto"))
	if err != nil {
		t.Fatalf("no se pudo firmar el token de prueba: %v", err)
	}
	return token
}

func TestSesionCicloDeVida(t *testing.T) {
	s := NuevaSesion()
	assert.Empty(t, s.Token())
	assert.Nil(t, s.Usuario())

	s.Iniciar("  tok-1  ", &Usuario{Documento: "100", Nombre: "Ana"})
	assert.Equal(t, "tok-1", s.Token())
	assert.Equal(t, "Ana", s.Usuario().Nombre)

	s.Cerrar()
	assert.Empty(t, s.Token())
	assert.Nil(t, s.Usuario())
}

func TestCerrarForzadoIdempotente(t *testing.T) {
	s := NuevaSesion()
	var cierres int32
	s.AlCerrarForzado(func() { atomic.AddInt32(&cierres, 1) })

	s.Iniciar("tok", &Usuario{Documento: "100"})
	s.CerrarForzado()
	s.CerrarForzado() // ya limpia: no dispara de nuevo

	assert.Empty(t, s.Token())
	assert.Equal(t, int32(1), atomic.LoadInt32(&cierres))
}

func TestCerrarForzadoSinSesionNoDispara(t *testing.T) {
	s := NuevaSesion()
	var cierres int32
	s.AlCerrarForzado(func() { atomic.AddInt32(&cierres, 1) })

	s.CerrarForzado()
	assert.Equal(t, int32(0), atomic.LoadInt32(&cierres))
}

func TestSesionArchivoPersisteYRecarga(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "sesion.json")

	s := NuevaSesionArchivo(ruta)
	s.Iniciar("tok-persistido", &Usuario{Documento: "100", Email: "ana@udistrital.edu.co"})

	recargada := NuevaSesionArchivo(ruta)
	assert.Equal(t, "tok-persistido", recargada.Token())
	assert.Equal(t, "ana@udistrital.edu.co", recargada.Usuario().Email)

	recargada.Cerrar()
	vacia := NuevaSesionArchivo(ruta)
	assert.Empty(t, vacia.Token())
	assert.Nil(t, vacia.Usuario())
}

func TestSesionArchivoCorruptoSeIgnora(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "sesion.json")
	assert.NoError(t, os.WriteFile(ruta, []byte("{no es json"), 0o600))

	s := NuevaSesionArchivo(ruta)
	assert.Empty(t, s.Token())
	assert.Nil(t, s.Usuario())
}

func TestClaims(t *testing.T) {
	s := NuevaSesion()
	s.Iniciar(tokenDePrueba(t, jwt.MapClaims{"documento": "100", "role": "ADMIN"}), nil)

	claims, err := s.Claims()
	assert.NoError(t, err)
	assert.Equal(t, "100", claims["documento"])

	vacia := NuevaSesion()
	_, err = vacia.Claims()
	assert.Error(t, err)
}

func TestExpirado(t *testing.T) {
	s := NuevaSesion()

	s.Iniciar(tokenDePrueba(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}), nil)
	assert.False(t, s.Expirado())

	s.Iniciar(tokenDePrueba(t, jwt.MapClaims{"exp": time.Now().Add(-time.Hour).Unix()}), nil)
	assert.True(t, s.Expirado())

	// sin claim exp se considera expirado
	s.Iniciar(tokenDePrueba(t, jwt.MapClaims{"documento": "100"}), nil)
	assert.True(t, s.Expirado())

	s.Iniciar("no-es-un-jwt", nil)
	assert.True(t, s.Expirado())
}
