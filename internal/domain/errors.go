package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrAlreadyCompleted  = errors.New("el movimiento ya fue completado")
	ErrAlreadyCancelled  = errors.New("el movimiento ya fue cancelado")
	ErrInsufficientStock = errors.New("stock insuficiente")
)
