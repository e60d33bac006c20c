// Package models содержит доменные структуры, описывающие запись дневника,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import (
	"strings"
	"time"
)

// Categories перечисляет допустимые категории записи дневника.
var Categories = []string{"Personal", "Work", "Travel"}

// NormalizeCategory сопоставляет значение с допустимыми категориями без учёта регистра
// и возвращает каноническую форму. Второе значение false, если категория неизвестна.
func NormalizeCategory(raw string) (string, bool) {
	for _, c := range Categories {
		if strings.EqualFold(raw, c) {
			return c, true
		}
	}
	return "", false
}

// JournalEntry представляет собой основную модель записи дневника,
// используемую в бизнес-логике и хранилище. Поле Date хранит календарную
// дату записи без компоненты времени.
type JournalEntry struct {
	ID        string    `json:"id"`        // Уникальный идентификатор записи (UUID)
	Title     string    `json:"title"`     // Заголовок записи
	Content   string    `json:"content"`   // Текст записи
	Category  string    `json:"category"`  // Категория: Personal, Work или Travel
	Date      time.Time `json:"date"`      // Дата записи
	UserUID   string    `json:"userId"`    // Идентификатор пользователя-владельца
	CreatedAt time.Time `json:"createdAt"` // Время создания
	UpdatedAt time.Time `json:"updatedAt"` // Время последнего обновления
}

// DummyEntry используется для приёма данных из JSON-запроса на создание записи,
// прежде чем конвертировать их в JournalEntry.
// Дата приходит строкой, чтобы её можно было валидировать и парсить вручную.
type DummyEntry struct {
	Title    string `json:"title" validate:"required"`    // Заголовок
	Content  string `json:"content" validate:"required"`  // Текст записи
	Category string `json:"category" validate:"required"` // Категория
	Date     string `json:"date" validate:"required"`     // Дата в формате 2006-01-02
}

// DummyUpdateEntry используется для приёма данных частичного обновления записи.
// Поля-указатели: nil означает, что поле в запросе не передано и не меняется.
type DummyUpdateEntry struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Category *string `json:"category,omitempty"`
	Date     *string `json:"date,omitempty"`
}

// UpdateEntry представляет частичное обновление на уровне хранилища,
// уже после валидации и парсинга дат.
type UpdateEntry struct {
	Title    *string
	Content  *string
	Category *string
	Date     *time.Time
}
