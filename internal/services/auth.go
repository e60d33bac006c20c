// Package services содержит логику бизнес-уровня для работы с пользователями,
// записями дневника и агрегированием.
package services

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/journal-service/internal/lib/jwt"
	"github.com/magabrotheeeer/journal-service/internal/lib/password"
	"github.com/magabrotheeeer/journal-service/internal/models"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его UID.
	RegisterUser(ctx context.Context, user models.User) (string, error)

	// GetUserByEmail возвращает пользователя по email или ErrNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUser возвращает пользователя по UID или ErrNotFound.
	GetUser(ctx context.Context, userUID string) (*models.User, error)

	// UpdateUser применяет частичное обновление профиля.
	UpdateUser(ctx context.Context, req models.UpdateProfile, userUID string) error
}

// AuthService отвечает за регистрацию, авторизацию и обновление профиля.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
	hasher   *password.Hasher
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker, hasher *password.Hasher) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
		hasher:   hasher,
	}
}

// Register создает нового пользователя с хэшированием пароля, возвращает его UID.
func (s *AuthService) Register(ctx context.Context, username, email, rawPassword string) (string, error) {
	hashed, err := s.hasher.Hash(rawPassword)
	if err != nil {
		return "", err
	}
	user := models.User{
		Email:        email,
		Username:     username,
		PasswordHash: hashed,
	}
	return s.users.RegisterUser(ctx, user)
}

// Login проверяет пароль пользователя по email и генерирует JWT.
//
// Возвращает ErrNotFound хранилища, если пользователь не существует,
// и ErrInvalidCredentials, если пароль не подошёл.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if err := s.hasher.Compare(user.PasswordHash, rawPassword); err != nil {
		return "", ErrInvalidCredentials
	}
	token, err := s.jwtMaker.GenerateToken(user.UUID)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}

// UpdateProfile меняет имя пользователя и/или пароль.
// Пустой запрос отклоняется с ErrNoFieldsToUpdate, новый пароль хэшируется.
func (s *AuthService) UpdateProfile(ctx context.Context, userUID string, username, rawPassword *string) error {
	if username == nil && rawPassword == nil {
		return ErrNoFieldsToUpdate
	}
	if _, err := s.users.GetUser(ctx, userUID); err != nil {
		return err
	}

	req := models.UpdateProfile{Username: username}
	if rawPassword != nil {
		hashed, err := s.hasher.Hash(*rawPassword)
		if err != nil {
			return err
		}
		req.PasswordHash = &hashed
	}
	return s.users.UpdateUser(ctx, req, userUID)
}
