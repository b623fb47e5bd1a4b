// Package serviceclient contiene los clientes HTTP del frontend hacia los
// servicios de catálogo e inventario. Cada llamada lleva un doble límite: el
// Timeout del http.Client y un context.WithTimeout por request — una llamada que
// ni responde ni falla dentro del límite se trata como fallo, nunca queda colgada.
// Sin reintentos: el primer fallo sube tal cual al caller.
package serviceclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/duplo-darren/ecomm-workshopv2/internal/domain"
)

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// joinURL concatena base y ruta evitando la doble barra.
func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + path
}

// decodeJSON valida el estado HTTP y decodifica el cuerpo en out (out nil = descartar).
// 404 mapea a domain.ErrNotFound y 400 a domain.ErrInvalidInput (el backend rechazó
// la entrada); cualquier otro estado no exitoso a domain.ErrUnavailable.
func decodeJSON(service string, resp *http.Response, out any) error {
	defer resp.Body.Close()
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode == http.StatusBadRequest:
		return domain.ErrInvalidInput
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%s devolvió estado %d: %w", service, resp.StatusCode, domain.ErrUnavailable)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decodificar respuesta de %s: %w", service, err)
	}
	return nil
}
