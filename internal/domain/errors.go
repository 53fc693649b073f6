package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrForbidden     = errors.New("acceso denegado")
	ErrInvalidPeriod = errors.New("período de reporte desconocido")
)

// DatasetMissingError indica que uno o más archivos CSV de datos no existen.
// Es recuperable: basta con volver a ejecutar el bootstrap. Los handlers lo
// presentan como aviso bloqueante nombrando los archivos ausentes.
type DatasetMissingError struct {
	Files []string
}

func (e *DatasetMissingError) Error() string {
	return fmt.Sprintf("datasets ausentes: %s (ejecute el bootstrap de datos)",
		strings.Join(e.Files, ", "))
}

// IsDatasetMissing es un helper para los handlers HTTP.
func IsDatasetMissing(err error) (*DatasetMissingError, bool) {
	var dm *DatasetMissingError
	if errors.As(err, &dm) {
		return dm, true
	}
	return nil, false
}
