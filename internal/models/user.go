// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля и дату создания.
// Структура используется в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
type User struct {
	UUID         string    // Уникальный идентификатор пользователя
	Email        string    // Электронная почта (уникальная)
	Username     string    // Имя пользователя (уникальное)
	PasswordHash string    // Хэш пароля пользователя, открытый пароль не хранится
	CreatedAt    time.Time // Дата регистрации
}

// UpdateProfile описывает частичное обновление профиля пользователя.
// nil означает, что поле не меняется. PasswordHash содержит уже захэшированный пароль.
type UpdateProfile struct {
	Username     *string
	PasswordHash *string
}
