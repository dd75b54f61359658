package ords

import (
	"errors"
	"fmt"
	"net/http"
)

// Mensajes por defecto para cada categoría de fallo. El detalle que entregue el
// servidor en el cuerpo {"error": "..."} tiene prioridad sobre estos.
const (
	MensajeConexion     = "No se pudo conectar con el servidor. Verifique su conexión."
	MensajeDatos        = "Datos inválidos en la solicitud"
	MensajeSesion       = "Sesión expirada, inicie sesión nuevamente"
	MensajePermisos     = "No tiene permisos para realizar esta operación"
	MensajeNoEncontrado = "Recurso no encontrado"
	MensajeServidor     = "Error interno del servidor, intente nuevamente"
)

// Error es el error normalizado que produce el adaptador de transporte.
// Status 0 indica fallo de red sin respuesta del servidor.
type Error struct {
	Status  int
	Mensaje string
	Detalle string
	Err     error
}

// Error imprime el mensaje funcional y la causa cuando existe.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Mensaje, e.Err)
	}
	return e.Mensaje
}

// Unwrap expone la causa original.
func (e *Error) Unwrap() error { return e.Err }

// StatusHTTP devuelve el código de estado remoto (0 si no hubo respuesta).
func (e *Error) StatusHTTP() int { return e.Status }

// MensajeUsuario devuelve el texto apto para mostrar en pantalla.
func (e *Error) MensajeUsuario() string { return e.Mensaje }

// EsStatus permite consultar si el error corresponde a un status específico.
func EsStatus(err error, status int) bool {
	var oe *Error
	if errors.As(err, &oe) {
		return oe.Status == status
	}
	return false
}

// MensajeDe extrae el mensaje funcional de cualquier error; para errores ajenos
// al transporte cae en el fallback recibido.
func MensajeDe(err error, fallback string) string {
	var oe *Error
	if errors.As(err, &oe) && oe.Mensaje != "" {
		return oe.Mensaje
	}
	if fallback != "" {
		return fallback
	}
	return "error inesperado"
}

func mensajePorStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return MensajeDatos
	case http.StatusUnauthorized:
		return MensajeSesion
	case http.StatusForbidden:
		return MensajePermisos
	case http.StatusNotFound:
		return MensajeNoEncontrado
	default:
		return MensajeServidor
	}
}
