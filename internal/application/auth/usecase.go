package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Libreria-pos/internal/domain"
	"github.com/jhoicas/Libreria-pos/internal/domain/entity"
	"github.com/jhoicas/Libreria-pos/internal/domain/repository"
)

// AuthUseCase registro y login de usuarios, con puntero a la sesión actual.
// Solo el shell interactivo lo consulta; los stores y el motor de facturación
// nunca dependen de él.
type AuthUseCase struct {
	userRepo repository.UserRepository
	current  string // username de la sesión activa; vacío = sin sesión
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(userRepo repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo}
}

// Register crea un usuario: hashea el password con bcrypt y persiste.
// ErrInvalidInput con campos vacíos; ErrDuplicate si el username existe.
func (uc *AuthUseCase) Register(username, password string) error {
	if username == "" || password == "" {
		return domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.userRepo.Create(&entity.User{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	})
}

// Login verifica username/password y fija la sesión actual.
// ErrUnauthorized tanto para usuario inexistente como para password incorrecto.
func (uc *AuthUseCase) Login(username, password string) error {
	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.ErrUnauthorized
	}
	uc.current = username
	return nil
}

// CurrentUser retorna el username de la sesión activa, o false si no hay login.
func (uc *AuthUseCase) CurrentUser() (string, bool) {
	return uc.current, uc.current != ""
}
