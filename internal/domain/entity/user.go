package entity

import "time"

// User representa un usuario del sistema (cajero o administrador).
type User struct {
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de registrar
	CreatedAt    time.Time
}
