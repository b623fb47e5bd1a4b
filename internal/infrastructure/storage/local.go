package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var _ Storage = (*LocalStorage)(nil)

// LocalStorage backend de imágenes sobre el filesystem local. Las rutas se sirven
// como estáticos bajo /static por el propio servicio de catálogo.
type LocalStorage struct {
	root string // directorio de uploads (UPLOAD_DIR)
}

// NewLocalStorage construye el backend local.
func NewLocalStorage(root string) *LocalStorage {
	return &LocalStorage{root: root}
}

// Save escribe el archivo bajo el directorio de uploads y devuelve "uploads/<nombre>".
func (s *LocalStorage) Save(ctx context.Context, filename, contentType string, data io.Reader) (string, error) {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", fmt.Errorf("crear directorio de uploads: %w", err)
	}
	relPath := objectName(filename)
	dst := filepath.Join(s.root, filepath.Base(relPath))
	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("crear archivo: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, data); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("escribir archivo: %w", err)
	}
	return relPath, nil
}

// URL resuelve la ruta relativa a la ruta estática local.
func (s *LocalStorage) URL(path string) string {
	if path == "" {
		return ""
	}
	return "/static/" + path
}

// Delete elimina el archivo local. Ruta vacía o archivo inexistente no son error.
func (s *LocalStorage) Delete(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}
	dst := filepath.Join(s.root, filepath.Base(path))
	if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("eliminar archivo: %w", err)
	}
	return nil
}
