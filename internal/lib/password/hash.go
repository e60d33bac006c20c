// Package password реализует функции для безопасного хеширования и проверки паролей.
//
// Hasher создает bcrypt-хеши с настраиваемой стоимостью и сравнивает их
// с введёнными паролями. Соль встроена в хэш, поэтому один и тот же пароль,
// захэшированный дважды, даёт разные значения, но оба проходят проверку.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher хэширует пароли с заданной стоимостью bcrypt.
type Hasher struct {
	cost int
}

// NewHasher создаёт Hasher. Стоимость вне диапазона bcrypt заменяется на bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash принимает пароль пользователя и возвращает его bcrypt‑хэш.
//
// Используется для безопасного хранения паролей в базе данных.
func (h *Hasher) Hash(password string) (string, error) {
	const op = "password.Hash"
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashedPassword), nil
}

// Compare сравнивает bcrypt‑хэш с введённым паролем.
//
// Возвращает nil, если пароль соответствует хэшу, иначе — ошибку.
func (h *Hasher) Compare(originalHash, externalPassword string) error {
	const op = "password.Compare"
	if err := bcrypt.CompareHashAndPassword([]byte(originalHash), []byte(externalPassword)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
