package helpers

import (
	"net/http"

	"github.com/udistrital/academico_mid/models/requestresponse"
)

// Ok construye una respuesta estándar exitosa.
func Ok(data interface{}) requestresponse.APIResponseDTO {
	return requestresponse.NewSuccess(http.StatusOK, "OK", data)
}

// Fail construye una respuesta estándar de error.
func Fail(status int, message string) requestresponse.APIResponseDTO {
	if status <= 0 {
		status = http.StatusInternalServerError
	}
	return requestresponse.NewError(status, message, nil)
}
