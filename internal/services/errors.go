// Ошибки валидации бизнес-уровня. Обработчики сопоставляют их через errors.Is
// и превращают в ответы с корректными статусами.
package services

import "errors"

var (
	// ErrInvalidCredentials пароль не подошёл к хэшу пользователя
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidCategory категория вне допустимого набора
	ErrInvalidCategory = errors.New("category must be one of the following: Personal, Work, Travel")
	// ErrInvalidDateFormat дата не разбирается как календарная дата 2006-01-02
	ErrInvalidDateFormat = errors.New("invalid date format")
	// ErrInvalidPeriod период агрегирования вне набора daily/weekly/monthly
	ErrInvalidPeriod = errors.New("invalid period specified")
	// ErrNoFieldsToUpdate в запросе обновления не передано ни одного поля
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)

// DateLayout формат календарной даты записи, без компоненты времени.
const DateLayout = "2006-01-02"
