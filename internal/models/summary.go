// Package models содержит структуры данных, используемые для агрегирования
// записей дневника по периодам (день, ISO-неделя, месяц).
package models

import "time"

// SummaryFilter представляет параметры агрегирования, которые передаются в бизнес-логику.
// Записи фильтруются по дате в закрытом интервале [StartDate, EndDate].
type SummaryFilter struct {
	Period    string    // Период группировки: daily, weekly или monthly
	StartDate time.Time // Дата начала периода
	EndDate   time.Time // Дата окончания периода
}

// DummySummaryFilter используется для приёма параметров агрегирования из query-строки
// до их валидации и преобразования в SummaryFilter. Даты приходят строками.
type DummySummaryFilter struct {
	Period    string `json:"period" validate:"required"`     // Период группировки
	StartDate string `json:"start_date" validate:"required"` // Дата начала в формате 2006-01-02
	EndDate   string `json:"end_date" validate:"required"`   // Дата окончания в формате 2006-01-02
}

// SummaryBucket представляет одну корзину агрегирования: ключ периода,
// количество записей и заголовки, склеенные через запятую в порядке совпадения.
type SummaryBucket struct {
	Bucket     string `json:"period"`     // Ключ корзины, например 2024-01-02, 2024-W01 или 2024-01
	EntryCount int    `json:"entryCount"` // Количество записей в корзине
	Titles     string `json:"titles"`     // Заголовки записей через запятую
}
