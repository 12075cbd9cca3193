package usecase

import (
	"encoding/json"
	"fmt"

	"github.com/outletaseo/outlet-api/internal/domain"
	"github.com/outletaseo/outlet-api/internal/store"
)

// BackupUseCase exporta e importa el documento completo de inventario.
type BackupUseCase struct {
	store *store.Store
}

// NewBackupUseCase construye el caso de uso.
func NewBackupUseCase(s *store.Store) *BackupUseCase {
	return &BackupUseCase{store: s}
}

// Export devuelve el snapshot actual (catálogo + libro de movimientos).
func (uc *BackupUseCase) Export() store.Snapshot {
	return uc.store.Snapshot()
}

// Import deserializa un documento exportado y reemplaza el estado en memoria.
// Un documento ilegible o sin ninguna colección reconocible devuelve
// ErrImportMalformed y deja el estado intacto.
func (uc *BackupUseCase) Import(raw []byte) error {
	var snap store.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrImportMalformed, err)
	}
	return uc.store.Restore(snap)
}
