// Типизированные ошибки хранилища. Вызывающий код сопоставляет их через
// errors.Is / errors.As вместо разбора текстов ошибок драйвера.
package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound запись или пользователь не найдены по идентификатору.
var ErrNotFound = errors.New("not found")

// UniqueViolationError нарушение уникального ограничения в базе данных.
// Содержит человеко-читаемые сообщения по каждому нарушенному ограничению.
type UniqueViolationError struct {
	Messages []string
}

func (e *UniqueViolationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// uniqueMessages сообщения по именам уникальных ограничений схемы.
var uniqueMessages = map[string]string{
	"users_username_key": "username must be unique",
	"users_email_key":    "email must be unique",
}

// translateError переводит ошибки драйвера в типизированные ошибки хранилища.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		msg, ok := uniqueMessages[pgErr.ConstraintName]
		if !ok {
			msg = fmt.Sprintf("%s must be unique", pgErr.ConstraintName)
		}
		return &UniqueViolationError{Messages: []string{msg}}
	}
	return err
}
