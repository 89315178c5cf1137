package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Taxonomía: entrada inválida, conflicto/duplicado, no encontrado y
// transición de estado inválida. Todos se reportan síncronamente al caller;
// ninguno es fatal para el proceso.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrInvalidState      = errors.New("la transacción ya fue decidida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
)
