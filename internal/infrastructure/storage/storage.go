package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/duplo-darren/ecomm-workshopv2/pkg/config"
)

// Storage puerto del almacenamiento de imágenes del catálogo. Exactamente un backend
// está activo por proceso, elegido una sola vez al arrancar; los callers nunca
// distinguen cuál es.
type Storage interface {
	// Save persiste los bytes y devuelve la ruta relativa a guardar en el producto.
	Save(ctx context.Context, filename, contentType string, data io.Reader) (string, error)
	// URL resuelve una ruta relativa almacenada a una URL consultable.
	// Ruta vacía resuelve a URL vacía.
	URL(path string) string
	// Delete elimina el asset. Ruta vacía es un no-op. Los callers lo tratan como
	// best-effort: un fallo se registra pero no aborta la operación que lo envuelve.
	Delete(ctx context.Context, path string) error
}

// New construye el backend activo según configuración: S3 si USE_OBJECT_STORAGE
// está definido junto con el bucket, filesystem local en caso contrario.
func New(ctx context.Context, cfg config.StorageConfig) (Storage, error) {
	if cfg.UseObjectStore {
		return NewS3Storage(ctx, cfg.Bucket)
	}
	return NewLocalStorage(cfg.UploadDir), nil
}

// objectName genera un nombre único conservando la extensión original (".jpg" si no hay).
func objectName(filename string) string {
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".jpg"
	}
	name := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "uploads/" + name + ext
}
