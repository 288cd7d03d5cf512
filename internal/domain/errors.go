package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrSourceUnavailable fallo de transporte/autenticación/timeout contra un backend.
	// La fachada lo recupera localmente vía fallback; nunca llega al renderizado.
	ErrSourceUnavailable = errors.New("fuente de catálogo no disponible")
	// ErrSourceMisconfigured la fuente está habilitada pero le faltan credenciales.
	// Se trata igual que ErrSourceUnavailable en el momento de la llamada.
	ErrSourceMisconfigured = errors.New("fuente de catálogo mal configurada")
	// ErrMapping un registro del backend no pudo convertirse a la forma normalizada.
	// Se maneja por registro: se descarta y se continúa con el resto del lote.
	ErrMapping = errors.New("registro no mapeable a la forma normalizada")

	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
)
