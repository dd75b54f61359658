package ords

import (
	"encoding/json"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/beego/beego/v2/core/logs"
	"github.com/golang-jwt/jwt/v5"
)

// Usuario es la identidad cacheada junto al token.
type Usuario struct {
	Documento string `json:"documento"`
	Nombre    string `json:"nombre"`
	Email     string `json:"email"`
	Rol       string `json:"rol"`
}

// Sesion guarda el token bearer y la identidad del usuario autenticado.
// Es única por proceso y toda mutación pasa por esta interfaz estrecha:
// Iniciar en el login, Cerrar en el logout y CerrarForzado ante un 401.
type Sesion struct {
	mu              sync.Mutex
	token           string
	usuario         *Usuario
	archivo         string
	alCerrarForzado func()
}

// estadoSesion es el formato persistido; conserva las llaves del cliente web.
type estadoSesion struct {
	Token   string   `json:"token"`
	Usuario *Usuario `json:"user,omitempty"`
}

// NuevaSesion crea una sesión vacía sin persistencia.
func NuevaSesion() *Sesion {
	return &Sesion{}
}

// NuevaSesionArchivo crea una sesión respaldada en un archivo JSON y carga el
// estado previo si existe. Un archivo ilegible se trata como sesión vacía.
func NuevaSesionArchivo(ruta string) *Sesion {
	s := &Sesion{archivo: ruta}
	raw, err := os.ReadFile(ruta)
	if err != nil {
		return s
	}
	var estado estadoSesion
	if err := json.Unmarshal(raw, &estado); err != nil {
		logs.Warn("sesión: archivo corrupto, se ignora:", err)
		return s
	}
	s.token = estado.Token
	s.usuario = estado.Usuario
	return s
}

// AlCerrarForzado registra el callback que dispara el cierre por 401
// (el análogo de redirigir al login). Se invoca a lo sumo una vez por cierre.
func (s *Sesion) AlCerrarForzado(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alCerrarForzado = fn
}

// Iniciar establece credenciales tras un login exitoso.
func (s *Sesion) Iniciar(token string, usuario *Usuario) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = strings.TrimSpace(token)
	s.usuario = usuario
	s.persistir()
}

// Token devuelve el bearer token vigente, vacío si no hay sesión.
func (s *Sesion) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Usuario devuelve la identidad cacheada, nil si no hay sesión.
func (s *Sesion) Usuario() *Usuario {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.usuario
}

// Cerrar limpia el token y la identidad (logout voluntario).
func (s *Sesion) Cerrar() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limpiar()
}

// CerrarForzado limpia la sesión ante un 401 y dispara el callback registrado.
// Si la sesión ya estaba limpia no hace nada, de modo que varios 401
// concurrentes producen un único cierre.
func (s *Sesion) CerrarForzado() {
	s.mu.Lock()
	if s.token == "" && s.usuario == nil {
		s.mu.Unlock()
		return
	}
	s.limpiar()
	fn := s.alCerrarForzado
	s.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Claims decodifica sin verificar el payload del token vigente. El MID no valida
// firmas; eso es responsabilidad del backend.
func (s *Sesion) Claims() (jwt.MapClaims, error) {
	token := s.Token()
	if token == "" {
		return nil, jwt.ErrTokenMalformed
	}
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// Expirado indica si el claim exp del token quedó en el pasado. Un token sin
// exp o indescifrable se considera expirado.
func (s *Sesion) Expirado() bool {
	claims, err := s.Claims()
	if err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.Before(time.Now())
}

func (s *Sesion) limpiar() {
	s.token = ""
	s.usuario = nil
	s.persistir()
}

// persistir escribe el estado al archivo configurado; requiere mu tomado.
func (s *Sesion) persistir() {
	if s.archivo == "" {
		return
	}
	estado := estadoSesion{Token: s.token, Usuario: s.usuario}
	raw, err := json.Marshal(estado)
	if err != nil {
		return
	}
	if err := os.WriteFile(s.archivo, raw, 0o600); err != nil {
		logs.Warn("sesión: no se pudo persistir:", err)
	}
}
