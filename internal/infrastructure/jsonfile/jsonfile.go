// Package jsonfile persiste el snapshot del inventario como un único
// documento JSON en disco, con escritura atómica (archivo temporal + rename).
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/outletaseo/outlet-api/internal/store"
	"github.com/outletaseo/outlet-api/pkg/logger"
)

// Repository lee y escribe el documento de inventario en una ruta fija.
type Repository struct {
	path string
	log  *logger.Logger
}

// NewRepository construye el repositorio de archivo.
func NewRepository(path string, log *logger.Logger) *Repository {
	return &Repository{path: path, log: log}
}

// Load lee el snapshot desde disco. Si el archivo no existe devuelve
// (nil, nil): primer arranque, estado vacío.
func (r *Repository) Load() (*store.Snapshot, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			r.log.Info().Str("path", r.path).Msg("sin archivo de inventario; arranque con estado vacío")
			return nil, nil
		}
		return nil, fmt.Errorf("jsonfile: leer %s: %w", r.path, err)
	}

	var snap store.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("jsonfile: deserializar %s: %w", r.path, err)
	}
	r.log.Info().
		Str("path", r.path).
		Int("products", len(snap.Products)).
		Int("movements", len(snap.Movements)).
		Msg("inventario cargado desde disco")
	return &snap, nil
}

// Save escribe el snapshot de forma atómica: primero a un archivo temporal en
// el mismo directorio y luego rename sobre el definitivo. Un corte a mitad de
// escritura nunca deja el documento corrupto.
func (r *Repository) Save(snap store.Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("jsonfile: crear directorio: %w", err)
	}

	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonfile: serializar snapshot: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("jsonfile: escribir temporal: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("jsonfile: renombrar temporal: %w", err)
	}

	r.log.Debug().
		Str("path", r.path).
		Int("products", len(snap.Products)).
		Int("movements", len(snap.Movements)).
		Msg("inventario guardado")
	return nil
}
