// Package period содержит вычисление ключей корзин для агрегирования
// записей дневника по периодам.
package period

import (
	"fmt"
	"time"
)

// Допустимые значения периода группировки.
const (
	Daily   = "daily"
	Weekly  = "weekly"
	Monthly = "monthly"
)

// IsValid проверяет, что период — одно из допустимых значений.
func IsValid(period string) bool {
	return period == Daily || period == Weekly || period == Monthly
}

// Key возвращает ключ корзины для даты записи. Ключи сортируются
// лексикографически в хронологическом порядке:
//
//	daily   → 2024-01-02
//	weekly  → 2024-W01 (ISO 8601, неделя начинается с понедельника)
//	monthly → 2024-01 (по паре год-месяц, без слияния одинаковых месяцев разных лет)
func Key(periodKind string, date time.Time) string {
	switch periodKind {
	case Weekly:
		year, week := date.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case Monthly:
		return date.Format("2006-01")
	default:
		return date.Format("2006-01-02")
	}
}
