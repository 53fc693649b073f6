// Package csvstore implementa los repositorios de datasets sobre archivos
// CSV planos (una cabecera + filas, fechas ISO YYYY-MM-DD). Es la capa de
// persistencia completa de la aplicación demo: no hay base de datos.
package csvstore

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Store agrupa el directorio de datos y las primitivas de lectura/escritura.
// La escritura es atómica por archivo: se escribe a un temporal en el mismo
// directorio y se renombra, de modo que nunca queda un dataset a medias.
type Store struct {
	dir string
}

// NewStore crea el Store sobre el directorio indicado. No crea el directorio;
// eso ocurre en la primera escritura.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir devuelve el directorio de datos.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *Store) exists(name string) bool {
	info, err := os.Stat(s.path(name))
	return err == nil && !info.IsDir()
}

// read carga un CSV completo y devuelve cabecera y filas por separado.
func (s *Store) read(name string) (header []string, rows [][]string, err error) {
	f, err := os.Open(s.path(name))
	if err != nil {
		return nil, nil, fmt.Errorf("csvstore: abrir %s: %w", name, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerar filas cortas en archivos legados
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("csvstore: leer %s: %w", name, err)
	}
	if len(records) == 0 {
		return nil, nil, nil
	}
	return records[0], records[1:], nil
}

// write reemplaza el archivo de forma atómica (tmp + rename).
func (s *Store) write(name string, header []string, rows [][]string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("csvstore: crear directorio %s: %w", s.dir, err)
	}
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("csvstore: temporal para %s: %w", name, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op si el rename tuvo éxito

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		tmp.Close()
		return fmt.Errorf("csvstore: cabecera de %s: %w", name, err)
	}
	if err := w.WriteAll(rows); err != nil {
		tmp.Close()
		return fmt.Errorf("csvstore: filas de %s: %w", name, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("csvstore: escribir %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("csvstore: cerrar temporal de %s: %w", name, err)
	}
	if err := os.Rename(tmpName, s.path(name)); err != nil {
		return fmt.Errorf("csvstore: renombrar %s: %w", name, err)
	}
	return nil
}
