package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")

	// ErrPrecondicion señala una violación de precondición del motor de
	// facturación (líneas vacías, cantidad < 1). Es un error de programación
	// del caller, no una condición recuperable: los casos de uso validan
	// antes de invocar el motor y nunca deberían dispararlo.
	ErrPrecondicion = errors.New("violación de precondición")
)
