// Package stores contiene los contenedores de estado por pantalla del
// dashboard. Cada store liga uno o más servicios a estado local (items,
// selección, flag de carga, mensaje de error) y expone acciones imperativas
// que siguen siempre el mismo protocolo: marcar carga, invocar servicios,
// actualizar estado y devolver un Resultado etiquetado. La consistencia tras
// una mutación se logra recargando la lista completa, nunca parchando en
// sitio.
package stores

import "sync"

// Resultado es el resultado etiquetado de toda acción de un store: éxito con
// payload o fallo con mensaje apto para pantalla, nunca un panic ni un error
// sin manejar.
type Resultado[T any] struct {
	Exito bool
	Datos T
	Error string
}

func exito[T any](datos T) Resultado[T] {
	return Resultado[T]{Exito: true, Datos: datos}
}

func fallo[T any](mensaje string) Resultado[T] {
	return Resultado[T]{Exito: false, Error: mensaje}
}

// estadoBase agrupa los flags compartidos por todos los stores junto con el
// contador de generación que descarta respuestas tardías: una acción disparada
// después invalida las escrituras de cualquier acción anterior aún en vuelo.
type estadoBase struct {
	mu         sync.Mutex
	cargando   bool
	errorMsg   string
	generacion uint64
}

// iniciar marca el comienzo de una acción y devuelve su generación.
func (b *estadoBase) iniciar() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cargando = true
	b.errorMsg = ""
	b.generacion++
	return b.generacion
}

// vigente indica si la generación sigue siendo la actual. Requiere mu tomado.
func (b *estadoBase) vigente(gen uint64) bool {
	return b.generacion == gen
}

// terminar cierra la acción dejando el mensaje de error (vacío en éxito).
// Una acción obsoleta no toca los flags: pertenecen a la acción más reciente.
func (b *estadoBase) terminar(gen uint64, errMsg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.vigente(gen) {
		return
	}
	b.cargando = false
	b.errorMsg = errMsg
}

// Cargando indica si hay una acción en curso.
func (b *estadoBase) Cargando() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cargando
}

// Error devuelve el mensaje de la última acción fallida, vacío si no hay.
func (b *estadoBase) Error() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.errorMsg
}
